package runner

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/sut-eval/internal/evalcase"
	"github.com/giantswarm/sut-eval/internal/report"
)

func writeTemplate(t *testing.T) string {
	t.Helper()
	f, err := report.NewTemplate()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), report.DefaultTemplateFile)
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func artifactResults() []evalcase.EvaluationResult {
	scores := map[evalcase.Criterion]evalcase.CriterionScore{
		evalcase.Correctness:  {Score: 1, Comment: "a"},
		evalcase.Coverage:     {Score: 1, Comment: "b"},
		evalcase.Relevance:    {Score: 1, Comment: "c"},
		evalcase.Faithfulness: {Score: 1, Comment: "d"},
		evalcase.Clarity:      {Score: 1, Comment: "e"},
	}
	return []evalcase.EvaluationResult{
		{ID: 1, Question: "q1", ExpectedAnswer: "e1", ObtainedAnswer: "o1", Scores: scores, AverageScore: 1, FinalVerdict: evalcase.VerdictPass, FinalComment: "ok"},
		{ID: 2, Question: "q2", ExpectedAnswer: "e2", ObtainedAnswer: "o2", Scores: scores, AverageScore: 1, FinalVerdict: evalcase.VerdictFail, FinalComment: "no"},
	}
}

func TestWriteAndLoadRunArtifacts(t *testing.T) {
	outputDir := t.TempDir()
	template := writeTemplate(t)

	run, err := WriteRunArtifacts(outputDir, "Capitals Demo", template, artifactResults(), time.Now())
	require.NoError(t, err)

	assert.Contains(t, run.ID, "Capitals_Demo_")
	assert.FileExists(t, run.ResultsFile)
	assert.FileExists(t, run.ReportFile)

	loaded, err := LoadRun(outputDir, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "Capitals Demo", loaded.CaseSet)
	require.Len(t, loaded.Results, 2)
	assert.Equal(t, "o1", loaded.Results[0].ObtainedAnswer)
	assert.Equal(t, evalcase.VerdictFail, loaded.Results[1].FinalVerdict)
	assert.InDelta(t, 1.0, loaded.Results[0].Scores[evalcase.Correctness].Score, 1e-9)
}

func TestLoadRunMissing(t *testing.T) {
	_, err := LoadRun(t.TempDir(), "nope")
	assert.Error(t, err)
}

func TestRewriteRunReplacesResults(t *testing.T) {
	outputDir := t.TempDir()
	template := writeTemplate(t)

	run, err := WriteRunArtifacts(outputDir, "set", template, artifactResults(), time.Now())
	require.NoError(t, err)

	updated := artifactResults()
	updated[1].ObtainedAnswer = "o2-new"
	updated[1].FinalVerdict = evalcase.VerdictPass
	require.NoError(t, RewriteRun(run, template, updated))

	loaded, err := LoadRun(outputDir, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "o2-new", loaded.Results[1].ObtainedAnswer)
	assert.Equal(t, evalcase.VerdictPass, loaded.Results[1].FinalVerdict)
}

func TestListRuns(t *testing.T) {
	outputDir := t.TempDir()
	template := writeTemplate(t)

	run, err := WriteRunArtifacts(outputDir, "set-a", template, artifactResults(), time.Now())
	require.NoError(t, err)

	ids, err := ListRuns(outputDir)
	require.NoError(t, err)
	assert.Contains(t, ids, run.ID)
}

func TestListRunsMissingDirIsEmpty(t *testing.T) {
	ids, err := ListRuns(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "a_b_c", sanitizeFilename("a/b:c"))
}
