package runner

import (
	"context"
	"log/slog"

	"github.com/giantswarm/sut-eval/internal/evalcase"
)

// ReEvaluate re-runs a single test case and returns an updated results
// list where the new result replaces any existing entry with the same case
// ID (or is appended if none existed). Batch preconditions do not apply
// here except for judge credentials. On failure the existing list is
// returned untouched alongside the error.
func ReEvaluate(ctx context.Context, runner *CaseRunner, existing []evalcase.EvaluationResult, tc evalcase.TestCase, judgeCredentials bool) ([]evalcase.EvaluationResult, error) {
	if !judgeCredentials {
		return existing, &PreconditionError{Reason: "judge credentials are missing"}
	}

	result, err := runner.Run(ctx, tc)
	if err != nil {
		return existing, err
	}

	slog.Info("case re-evaluated", "case", tc.ID, "verdict", result.FinalVerdict)

	return evalcase.ReplaceOrAppend(existing, *result), nil
}
