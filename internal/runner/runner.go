// Package runner orchestrates the evaluation pipeline: single-case
// execution, sequential batch runs, and in-place re-evaluation.
package runner

import (
	"context"
	"log/slog"

	"github.com/giantswarm/sut-eval/internal/evalcase"
)

// ProgressFunc is invoked before each case with the 1-based current index,
// the total case count, and a truncated question preview.
type ProgressFunc func(current, total int, questionPreview string)

// questionPreviewLen bounds the question text passed to ProgressFunc.
const questionPreviewLen = 60

// State is the batch execution state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Preconditions are checked before a batch enters the running state.
// Violation of any of them fails fast without making a network call.
type Preconditions struct {
	// Probed is true when a prior connection probe succeeded.
	Probed bool
	// JudgeCredentials is true when judge credentials are present.
	JudgeCredentials bool
}

// Batch runs an ordered list of test cases sequentially through a
// CaseRunner. Cases are processed strictly in input order, one at a time;
// no two SUT or judge calls are ever in flight concurrently from the same
// run. Failure of any case aborts the whole batch and discards results
// already computed in that run.
type Batch struct {
	runner   *CaseRunner
	pre      Preconditions
	state    State
	progress ProgressFunc
}

// NewBatch creates a batch orchestrator.
func NewBatch(runner *CaseRunner, pre Preconditions) *Batch {
	return &Batch{runner: runner, pre: pre}
}

// SetProgressFunc sets the progress callback.
func (b *Batch) SetProgressFunc(fn ProgressFunc) {
	b.progress = fn
}

// State returns the current batch state. Batches have a single logical
// thread of control, so no locking is involved.
func (b *Batch) State() State { return b.state }

// RunAll evaluates every case in input order and returns one result per
// case. On any failure the run aborts: the error identifies the offending
// case and no partial result list is returned.
func (b *Batch) RunAll(ctx context.Context, cases []evalcase.TestCase) ([]evalcase.EvaluationResult, error) {
	if err := b.checkPreconditions(cases); err != nil {
		return nil, err
	}

	b.state = StateRunning
	slog.Info("evaluation batch started", "cases", len(cases))

	results := make([]evalcase.EvaluationResult, 0, len(cases))
	for i, tc := range cases {
		if err := ctx.Err(); err != nil {
			b.state = StateAborted
			return nil, &CaseError{CaseID: tc.ID, Err: err}
		}

		if b.progress != nil {
			b.progress(i+1, len(cases), truncate(tc.Question, questionPreviewLen))
		}

		result, err := b.runner.Run(ctx, tc)
		if err != nil {
			// All-or-nothing: results computed so far are discarded.
			b.state = StateAborted
			slog.Error("evaluation batch aborted", "failed_case", tc.ID, "completed", i, "error", err)
			return nil, err
		}
		results = append(results, *result)
	}

	b.state = StateCompleted
	slog.Info("evaluation batch completed", "cases", len(results))
	return results, nil
}

func (b *Batch) checkPreconditions(cases []evalcase.TestCase) error {
	if len(cases) == 0 {
		return &PreconditionError{Reason: "no test cases configured"}
	}
	if !b.pre.Probed {
		return &PreconditionError{Reason: "SUT connection has not been probed successfully"}
	}
	if !b.pre.JudgeCredentials {
		return &PreconditionError{Reason: "judge credentials are missing"}
	}
	return nil
}
