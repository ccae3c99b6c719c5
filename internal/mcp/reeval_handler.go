package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/sut-eval/internal/evalcase"
	"github.com/giantswarm/sut-eval/internal/judge"
	"github.com/giantswarm/sut-eval/internal/runner"
	"github.com/giantswarm/sut-eval/internal/server"
	"github.com/giantswarm/sut-eval/internal/sut"
)

func handleReEvaluateCase(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	runID, ok := args["run_id"].(string)
	if !ok || runID == "" {
		return mcp.NewToolResultError("run_id is required"), nil
	}
	if _, err := resolveRunPath(sc.OutputDir, runID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid run_id: %v", err)), nil
	}

	caseIDFloat, ok := args["case_id"].(float64)
	if !ok {
		return mcp.NewToolResultError("case_id is required"), nil
	}
	caseID := int(caseIDFloat)

	run, err := runner.LoadRun(sc.OutputDir, runID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load run: %v", err)), nil
	}

	cs, err := evalcase.Load(run.CaseSet, sc.CaseSetsDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load case set %q: %v", run.CaseSet, err)), nil
	}

	var tc *evalcase.TestCase
	for i := range cs.Cases {
		if cs.Cases[i].ID == caseID {
			tc = &cs.Cases[i]
			break
		}
	}
	if tc == nil {
		return mcp.NewToolResultError(fmt.Sprintf("case %d not found in case set %q", caseID, run.CaseSet)), nil
	}

	caseRunner := runner.NewCaseRunner(
		sut.NewClient(sc.Config.SUT),
		judge.New(sc.JudgeClient, sc.Config.JudgeConfig()),
	)

	results, err := runner.ReEvaluate(ctx, caseRunner, run.Results, *tc, sc.Config.HasJudgeCredentials())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("re-evaluation failed: %v", err)), nil
	}

	if err := runner.RewriteRun(run, sc.TemplatePath, results); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to rewrite run artifacts: %v", err)), nil
	}

	return mcp.NewToolResultText(runSummaryJSON(run)), nil
}
