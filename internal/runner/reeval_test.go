package runner

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/sut-eval/internal/evalcase"
	"github.com/giantswarm/sut-eval/internal/testutil"
)

func existingResults() []evalcase.EvaluationResult {
	return []evalcase.EvaluationResult{
		{ID: 1, ObtainedAnswer: "old-1", FinalVerdict: evalcase.VerdictFail},
		{ID: 2, ObtainedAnswer: "old-2", FinalVerdict: evalcase.VerdictFail},
		{ID: 3, ObtainedAnswer: "old-3", FinalVerdict: evalcase.VerdictFail},
	}
}

func TestReEvaluateReplacesInPlace(t *testing.T) {
	mock := &testutil.MockJudgeClient{Reply: testutil.JudgeReply([5]float64{1, 1, 1, 1, 1}, "PASS", "better now")}
	r, cleanup := newTestRunner(t, func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"answer":"fresh"}`))
	}, mock)
	defer cleanup()

	existing := existingResults()
	tc := evalcase.TestCase{ID: 2, Question: "q2", ExpectedAnswer: "fresh"}

	updated, err := ReEvaluate(context.Background(), r, existing, tc, true)
	require.NoError(t, err)

	require.Len(t, updated, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{updated[0].ID, updated[1].ID, updated[2].ID})
	assert.Equal(t, "fresh", updated[1].ObtainedAnswer)
	assert.Equal(t, evalcase.VerdictPass, updated[1].FinalVerdict)
	assert.Equal(t, "old-1", updated[0].ObtainedAnswer)
	assert.Equal(t, "old-3", updated[2].ObtainedAnswer)
}

func TestReEvaluateAppendsWhenAbsent(t *testing.T) {
	mock := &testutil.MockJudgeClient{Reply: testutil.JudgeReply([5]float64{1, 1, 1, 1, 1}, "PASS", "ok")}
	r, cleanup := newTestRunner(t, func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"answer":"new"}`))
	}, mock)
	defer cleanup()

	updated, err := ReEvaluate(context.Background(), r, existingResults(), evalcase.TestCase{ID: 9, Question: "q"}, true)
	require.NoError(t, err)
	require.Len(t, updated, 4)
	assert.Equal(t, 9, updated[3].ID)
}

func TestReEvaluateFailureLeavesResultsUntouched(t *testing.T) {
	mock := &testutil.MockJudgeClient{Reply: "garbage"}
	r, cleanup := newTestRunner(t, func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"answer":"x"}`))
	}, mock)
	defer cleanup()

	existing := existingResults()
	updated, err := ReEvaluate(context.Background(), r, existing, evalcase.TestCase{ID: 2, Question: "q"}, true)

	require.Error(t, err)
	assert.Equal(t, existing, updated)
	assert.Equal(t, "old-2", updated[1].ObtainedAnswer)
}

func TestReEvaluateRequiresJudgeCredentials(t *testing.T) {
	mock := &testutil.MockJudgeClient{}
	r, cleanup := newTestRunner(t, func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"answer":"x"}`))
	}, mock)
	defer cleanup()

	existing := existingResults()
	updated, err := ReEvaluate(context.Background(), r, existing, evalcase.TestCase{ID: 1}, false)

	var preErr *PreconditionError
	require.ErrorAs(t, err, &preErr)
	assert.Equal(t, existing, updated)
	assert.Zero(t, mock.Calls)
}
