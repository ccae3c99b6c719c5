// Package config loads the evaluation configuration file: where the
// system under test lives and how the judge service is reached.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/giantswarm/sut-eval/internal/judge"
	"github.com/giantswarm/sut-eval/internal/sut"
)

// JudgeSettings configures the judge service connection and grading.
type JudgeSettings struct {
	Endpoint    string  `yaml:"endpoint"`
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	Verbosity   string  `yaml:"verbosity"` // brief or detailed
}

// EvalConfig is the full evaluation configuration, owned by the caller
// and immutable for the duration of a batch run.
type EvalConfig struct {
	SUT   sut.Config    `yaml:"sut"`
	Judge JudgeSettings `yaml:"judge"`
}

// Load reads and validates a YAML configuration file. The judge API key
// falls back to OPENAI_API_KEY when absent from the file.
func Load(path string) (*EvalConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.Judge.APIKey == "" {
		cfg.Judge.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a configuration with sensible defaults applied.
func Default() *EvalConfig {
	return &EvalConfig{
		SUT: sut.Config{
			Method: "POST",
			// Timeout stays zero: unbounded, matching historical behavior.
		},
		Judge: JudgeSettings{
			Model:       judge.DefaultModel,
			Temperature: 0.0,
			Verbosity:   string(judge.VerbosityBrief),
		},
	}
}

// Validate checks the configuration for use in a batch run.
func (c *EvalConfig) Validate() error {
	if err := c.SUT.Validate(); err != nil {
		return err
	}
	if c.Judge.Temperature < 0 || c.Judge.Temperature > 1 {
		return fmt.Errorf("judge temperature must be within [0,1], got %v", c.Judge.Temperature)
	}
	switch judge.Verbosity(c.Judge.Verbosity) {
	case judge.VerbosityBrief, judge.VerbosityDetailed:
	default:
		return fmt.Errorf("judge verbosity must be %q or %q, got %q",
			judge.VerbosityBrief, judge.VerbosityDetailed, c.Judge.Verbosity)
	}
	return nil
}

// HasJudgeCredentials reports whether judge credentials are present.
// Batch runs refuse to start without them.
func (c *EvalConfig) HasJudgeCredentials() bool {
	return c.Judge.APIKey != ""
}

// JudgeConfig returns the judging configuration for the judge package.
func (c *EvalConfig) JudgeConfig() judge.Config {
	return judge.Config{
		Model:       c.Judge.Model,
		Temperature: c.Judge.Temperature,
		Verbosity:   judge.Verbosity(c.Judge.Verbosity),
	}
}

// NewJudgeClient creates the judge transport client from the settings.
func (c *EvalConfig) NewJudgeClient() judge.Client {
	var opts []judge.Option
	if c.Judge.Endpoint != "" {
		opts = append(opts, judge.WithBaseURL(c.Judge.Endpoint))
	}
	if c.Judge.APIKey != "" {
		opts = append(opts, judge.WithAPIKey(c.Judge.APIKey))
	}
	return judge.NewOpenAIClient(opts...)
}
