package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/giantswarm/sut-eval/internal/config"
	"github.com/giantswarm/sut-eval/internal/judge"
	"github.com/giantswarm/sut-eval/internal/report"
	"github.com/giantswarm/sut-eval/internal/runner"
	"github.com/giantswarm/sut-eval/internal/sut"
)

// loadEvalConfig reads the evaluation config named by the persistent
// --config flag.
func loadEvalConfig(cmd *cobra.Command) (*config.EvalConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newCaseRunner builds the per-case runner from a loaded configuration:
// the SUT HTTP client plus the judge with its transport.
func newCaseRunner(cfg *config.EvalConfig) *runner.CaseRunner {
	return runner.NewCaseRunner(
		sut.NewClient(cfg.SUT),
		judge.New(cfg.NewJudgeClient(), cfg.JudgeConfig()),
	)
}

// ensureTemplate creates the report template workbook at path when it does
// not exist yet, so first runs work without manual setup.
func ensureTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat report template: %w", err)
	}

	tmpl, err := report.NewTemplate()
	if err != nil {
		return err
	}
	if err := tmpl.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write report template %s: %w", path, err)
	}
	fmt.Printf("Created report template: %s\n", path)
	return nil
}
