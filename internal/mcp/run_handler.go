package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/sut-eval/internal/evalcase"
	"github.com/giantswarm/sut-eval/internal/judge"
	"github.com/giantswarm/sut-eval/internal/runner"
	"github.com/giantswarm/sut-eval/internal/server"
	"github.com/giantswarm/sut-eval/internal/sut"
)

func handleRunEvaluation(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	caseSetName, ok := args["case_set"].(string)
	if !ok || caseSetName == "" {
		return mcp.NewToolResultError("case_set is required"), nil
	}

	cs, err := evalcase.Load(caseSetName, sc.CaseSetsDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load case set: %v", err)), nil
	}

	caseRunner := runner.NewCaseRunner(
		sut.NewClient(sc.Config.SUT),
		judge.New(sc.JudgeClient, sc.Config.JudgeConfig()),
	)
	batch := runner.NewBatch(caseRunner, runner.Preconditions{
		Probed:           sc.Probed(),
		JudgeCredentials: sc.Config.HasJudgeCredentials(),
	})
	batch.SetProgressFunc(func(current, total int, questionPreview string) {
		slog.Info("evaluating case", "current", current, "total", total, "question", questionPreview)
	})

	started := time.Now()
	results, err := batch.RunAll(ctx, cs.Cases)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}

	run, err := runner.WriteRunArtifacts(sc.OutputDir, cs.Name, sc.TemplatePath, results, started)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to write run artifacts: %v", err)), nil
	}

	return mcp.NewToolResultText(runSummaryJSON(run)), nil
}

// runSummaryJSON renders the compact run summary returned by run_evaluation
// and reevaluate_case.
func runSummaryJSON(run *runner.Run) string {
	passed := 0
	for _, r := range run.Results {
		if r.FinalVerdict == evalcase.VerdictPass {
			passed++
		}
	}

	summary := map[string]interface{}{
		"run_id":       run.ID,
		"case_set":     run.CaseSet,
		"cases":        len(run.Results),
		"passed":       passed,
		"failed":       len(run.Results) - passed,
		"duration":     fmt.Sprintf("%.1fs", run.Duration),
		"results_file": run.ResultsFile,
		"report_file":  run.ReportFile,
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"run_id": %q}`, run.ID)
	}
	return string(data)
}
