package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/giantswarm/sut-eval/internal/evalcase"
	"github.com/giantswarm/sut-eval/internal/report"
)

const resultsFileName = "results.json"

// Run holds the artifacts of one completed batch.
type Run struct {
	ID          string                      `json:"id"`
	CaseSet     string                      `json:"case_set"`
	Timestamp   time.Time                   `json:"timestamp"`
	Duration    float64                     `json:"duration_seconds"`
	Results     []evalcase.EvaluationResult `json:"results"`
	ResultsFile string                      `json:"-"`
	ReportFile  string                      `json:"-"`
}

// WriteRunArtifacts creates a run directory under outputDir and writes the
// results JSON plus the spreadsheet report.
func WriteRunArtifacts(outputDir, caseSetName, templatePath string, results []evalcase.EvaluationResult, started time.Time) (*Run, error) {
	sanitized := sanitizeFilename(strings.ReplaceAll(caseSetName, " ", "_"))
	runID := fmt.Sprintf("%s_%s", sanitized, started.Format("20060102-150405"))

	runPath := filepath.Join(outputDir, runID)
	if err := os.MkdirAll(runPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}

	run := &Run{
		ID:          runID,
		CaseSet:     caseSetName,
		Timestamp:   started,
		Duration:    time.Since(started).Seconds(),
		Results:     results,
		ResultsFile: filepath.Join(runPath, resultsFileName),
		ReportFile:  filepath.Join(runPath, report.DefaultOutputFile),
	}

	if err := writeResultsFile(run.ResultsFile, run); err != nil {
		return nil, err
	}

	if err := report.ExportToFile(results, templatePath, run.ReportFile); err != nil {
		return nil, err
	}

	return run, nil
}

// LoadRun reads a previously written run directory.
func LoadRun(outputDir, runID string) (*Run, error) {
	runPath := filepath.Join(outputDir, runID)

	data, err := os.ReadFile(filepath.Join(runPath, resultsFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read results for run %q: %w", runID, err)
	}

	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to parse results for run %q: %w", runID, err)
	}
	run.ResultsFile = filepath.Join(runPath, resultsFileName)
	run.ReportFile = filepath.Join(runPath, report.DefaultOutputFile)

	return &run, nil
}

// RewriteRun replaces a run's results and regenerates its report, for
// re-evaluation. The run files are only touched after the new result list
// is fully known.
func RewriteRun(run *Run, templatePath string, results []evalcase.EvaluationResult) error {
	run.Results = results
	if err := writeResultsFile(run.ResultsFile, run); err != nil {
		return err
	}
	return report.ExportToFile(results, templatePath, run.ReportFile)
}

// ListRuns returns the run IDs under outputDir, newest last in directory
// order.
func ListRuns(outputDir string) ([]string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	return ids, nil
}

func writeResultsFile(path string, run *Run) error {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}
	return nil
}

// sanitizeFilename replaces characters unsafe for filenames with
// underscores.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	return replacer.Replace(name)
}
