package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/giantswarm/sut-eval/internal/evalcase"
)

// DefaultModel is the judge model used when none is configured.
const DefaultModel = "gpt-4o-mini"

// Config holds judging configuration. Credentials and endpoint belong to
// the transport client, not here.
type Config struct {
	Model       string
	Temperature float64
	Verbosity   Verbosity
}

// Verdict is the judge's typed reply for one test case: one score per
// criterion plus the judge's own final verdict and comment. The judge's
// verdict is kept verbatim; the locally recomputed average may disagree
// with it and the two are never reconciled.
type Verdict struct {
	Scores       map[evalcase.Criterion]evalcase.CriterionScore
	FinalVerdict evalcase.Verdict
	FinalComment string
}

// Judge grades obtained answers against expected answers.
type Judge struct {
	client Client
	config Config
}

// New creates a Judge.
func New(client Client, config Config) *Judge {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Verbosity == "" {
		config.Verbosity = VerbosityBrief
	}
	return &Judge{client: client, config: config}
}

// Evaluate grades one obtained answer. It returns *TransportError when the
// judge call fails and *ProtocolError when the reply cannot be parsed and
// validated against the expected schema. A single parse attempt is made.
func (j *Judge) Evaluate(ctx context.Context, question, expected, obtained string) (*Verdict, error) {
	prompt := BuildPrompt(question, expected, obtained, j.config.Verbosity)

	resp, err := j.client.ChatCompletion(ctx, ChatRequest{
		Model:       j.config.Model,
		Prompt:      prompt,
		Temperature: j.config.Temperature,
		MaxTokens:   j.config.Verbosity.MaxTokens(),
	})
	if err != nil {
		return nil, err
	}

	verdict, err := ParseReply(resp.Content)
	if err != nil {
		return nil, err
	}

	slog.Debug("judge verdict parsed",
		"verdict", verdict.FinalVerdict,
		"model", j.config.Model,
	)

	return verdict, nil
}

// ParseReply parses and validates the judge's raw reply text. The reply is
// untrusted: it is decoded into a loose document first, then every
// expected field is checked for presence and type before any typed score
// is constructed.
func ParseReply(raw string) (*Verdict, error) {
	trimmed := strings.TrimSpace(raw)

	var doc map[string]any
	if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
		return nil, &ProtocolError{
			Reason: fmt.Sprintf("not a JSON object: %v", err),
			Raw:    raw,
		}
	}

	scores := make(map[evalcase.Criterion]evalcase.CriterionScore, 5)
	for _, criterion := range evalcase.Criteria() {
		score, err := scoreField(doc, string(criterion)+"_score")
		if err != nil {
			return nil, &ProtocolError{Reason: err.Error(), Raw: raw}
		}
		comment, err := stringField(doc, string(criterion)+"_comment")
		if err != nil {
			return nil, &ProtocolError{Reason: err.Error(), Raw: raw}
		}
		scores[criterion] = evalcase.CriterionScore{Score: score, Comment: comment}
	}

	verdictText, err := stringField(doc, "final_verdict")
	if err != nil {
		return nil, &ProtocolError{Reason: err.Error(), Raw: raw}
	}
	verdict := evalcase.Verdict(strings.ToUpper(strings.TrimSpace(verdictText)))
	if verdict != evalcase.VerdictPass && verdict != evalcase.VerdictFail {
		return nil, &ProtocolError{
			Reason: fmt.Sprintf("final_verdict must be PASS or FAIL, got %q", verdictText),
			Raw:    raw,
		}
	}

	comment, err := stringField(doc, "final_comment")
	if err != nil {
		return nil, &ProtocolError{Reason: err.Error(), Raw: raw}
	}

	return &Verdict{
		Scores:       scores,
		FinalVerdict: verdict,
		FinalComment: comment,
	}, nil
}

func scoreField(doc map[string]any, key string) (float64, error) {
	v, ok := doc[key]
	if !ok {
		return 0, fmt.Errorf("missing field %q", key)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("field %q is not a number", key)
	}
	if f < 0 || f > 1 {
		return 0, fmt.Errorf("field %q is out of range [0,1]: %v", key, f)
	}
	return f, nil
}

func stringField(doc map[string]any, key string) (string, error) {
	v, ok := doc[key]
	if !ok {
		return "", fmt.Errorf("missing field %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q is not a string", key)
	}
	return s, nil
}
