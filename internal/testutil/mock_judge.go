// Package testutil provides shared test helpers.
package testutil

import (
	"context"
	"fmt"

	"github.com/giantswarm/sut-eval/internal/judge"
)

// MockJudgeClient is a configurable mock for judge.Client used across test
// packages.
type MockJudgeClient struct {
	// Reply is the canned reply content returned for every request.
	Reply string

	// Err, when set, is returned instead of a reply.
	Err error

	// FailOnCall, when > 0, makes that invocation (1-based) fail with
	// Err while other calls succeed.
	FailOnCall int

	// Calls tracks the number of ChatCompletion invocations.
	Calls int

	// Requests stores every ChatRequest for inspection.
	Requests []judge.ChatRequest
}

func (m *MockJudgeClient) ChatCompletion(_ context.Context, req judge.ChatRequest) (*judge.ChatResponse, error) {
	m.Calls++
	m.Requests = append(m.Requests, req)

	if m.FailOnCall > 0 {
		if m.Calls == m.FailOnCall {
			return nil, m.errOrDefault()
		}
	} else if m.Err != nil {
		return nil, m.errOrDefault()
	}

	return &judge.ChatResponse{Content: m.Reply}, nil
}

func (m *MockJudgeClient) errOrDefault() error {
	if m.Err != nil {
		return m.Err
	}
	return &judge.TransportError{Err: fmt.Errorf("mock judge failure")}
}

// JudgeReply builds a schema-valid judge reply with the given five scores
// in criteria order (correctness, coverage, relevance, faithfulness,
// clarity).
func JudgeReply(scores [5]float64, verdict, comment string) string {
	return fmt.Sprintf(`{
		"correctness_score": %g, "correctness_comment": "c1",
		"coverage_score": %g, "coverage_comment": "c2",
		"relevance_score": %g, "relevance_comment": "c3",
		"faithfulness_score": %g, "faithfulness_comment": "c4",
		"clarity_score": %g, "clarity_comment": "c5",
		"final_verdict": %q,
		"final_comment": %q
	}`, scores[0], scores[1], scores[2], scores[3], scores[4], verdict, comment)
}
