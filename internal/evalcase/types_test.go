package evalcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteriaOrder(t *testing.T) {
	assert.Equal(t, []Criterion{Correctness, Coverage, Relevance, Faithfulness, Clarity}, Criteria())
}

func TestAverageScore(t *testing.T) {
	scores := map[Criterion]CriterionScore{
		Correctness:  {Score: 1.0},
		Coverage:     {Score: 0.8},
		Relevance:    {Score: 0.9},
		Faithfulness: {Score: 0.7},
		Clarity:      {Score: 0.6},
	}
	assert.InDelta(t, 0.8, AverageScore(scores), 1e-9)
}

func TestAverageScoreAllZero(t *testing.T) {
	scores := map[Criterion]CriterionScore{}
	assert.InDelta(t, 0.0, AverageScore(scores), 1e-9)
}

func TestReplaceOrAppendReplacesInPlace(t *testing.T) {
	results := []EvaluationResult{
		{ID: 1, ObtainedAnswer: "a"},
		{ID: 2, ObtainedAnswer: "b"},
		{ID: 3, ObtainedAnswer: "c"},
	}

	updated := ReplaceOrAppend(results, EvaluationResult{ID: 2, ObtainedAnswer: "b2"})

	require.Len(t, updated, 3)
	assert.Equal(t, 1, updated[0].ID)
	assert.Equal(t, 2, updated[1].ID)
	assert.Equal(t, "b2", updated[1].ObtainedAnswer)
	assert.Equal(t, 3, updated[2].ID)

	// The original list is untouched.
	assert.Equal(t, "b", results[1].ObtainedAnswer)
}

func TestReplaceOrAppendAppendsWhenAbsent(t *testing.T) {
	results := []EvaluationResult{{ID: 1}}
	updated := ReplaceOrAppend(results, EvaluationResult{ID: 9})

	require.Len(t, updated, 2)
	assert.Equal(t, 9, updated[1].ID)
	assert.Len(t, results, 1)
}

func TestReplaceOrAppendEmptyList(t *testing.T) {
	updated := ReplaceOrAppend(nil, EvaluationResult{ID: 1})
	require.Len(t, updated, 1)
	assert.Equal(t, 1, updated[0].ID)
}
