package runner

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/giantswarm/sut-eval/internal/evalcase"
	"github.com/giantswarm/sut-eval/internal/extract"
	"github.com/giantswarm/sut-eval/internal/judge"
	"github.com/giantswarm/sut-eval/internal/sut"
)

// excerptLen bounds the raw-body excerpt included in malformed-JSON
// errors.
const excerptLen = 120

// CaseRunner drives a single test case end-to-end: call the SUT, extract
// the answer, judge it, and assemble the result. It is the unit used by
// both batch execution and isolated re-evaluation; there is no separate
// code path for the two.
type CaseRunner struct {
	sutClient *sut.Client
	judge     *judge.Judge
}

// NewCaseRunner creates a CaseRunner.
func NewCaseRunner(sutClient *sut.Client, j *judge.Judge) *CaseRunner {
	return &CaseRunner{sutClient: sutClient, judge: j}
}

// Run evaluates one test case. Every error is returned as a *CaseError
// wrapping the underlying SUT or judge error kind. Given identical SUT
// and judge responses the function is idempotent.
func (r *CaseRunner) Run(ctx context.Context, tc evalcase.TestCase) (*evalcase.EvaluationResult, error) {
	start := time.Now()

	raw, err := r.sutClient.Ask(ctx, tc.Question)
	if err != nil {
		return nil, &CaseError{CaseID: tc.ID, Err: err}
	}

	// Batch results require structured data: unlike the probe, a body
	// that fails to parse as JSON is fatal here.
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &CaseError{CaseID: tc.ID, Err: &sut.MalformedJSONError{
			Excerpt: truncate(string(raw), excerptLen),
			Err:     err,
		}}
	}

	obtained := extract.FromValue(payload)

	verdict, err := r.judge.Evaluate(ctx, tc.Question, tc.ExpectedAnswer, obtained)
	if err != nil {
		return nil, &CaseError{CaseID: tc.ID, Err: err}
	}

	slog.Debug("case evaluated",
		"case", tc.ID,
		"verdict", verdict.FinalVerdict,
		"duration", time.Since(start),
	)

	return &evalcase.EvaluationResult{
		ID:             tc.ID,
		Question:       tc.Question,
		ExpectedAnswer: tc.ExpectedAnswer,
		ObtainedAnswer: obtained,
		Scores:         verdict.Scores,
		// The average is always recomputed locally, never taken from
		// the judge's reply.
		AverageScore: evalcase.AverageScore(verdict.Scores),
		FinalVerdict: verdict.FinalVerdict,
		FinalComment: verdict.FinalComment,
	}, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
