package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/sut-eval/internal/evalcase"
	"github.com/giantswarm/sut-eval/internal/runner"
	"github.com/giantswarm/sut-eval/internal/server"
)

func handleGetResults(_ context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	runID, _ := args["run_id"].(string)

	if runID != "" {
		return getSpecificRun(sc.OutputDir, runID)
	}
	return listPastRuns(sc.OutputDir)
}

func listPastRuns(outputDir string) (*mcp.CallToolResult, error) {
	ids, err := runner.ListRuns(outputDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list runs: %v", err)), nil
	}
	if len(ids) == 0 {
		return mcp.NewToolResultText("[]"), nil
	}

	var runs []map[string]interface{}
	for _, id := range ids {
		run, err := runner.LoadRun(outputDir, id)
		if err != nil {
			continue
		}
		passed := 0
		for _, r := range run.Results {
			if r.FinalVerdict == evalcase.VerdictPass {
				passed++
			}
		}
		runs = append(runs, map[string]interface{}{
			"run_id":    run.ID,
			"case_set":  run.CaseSet,
			"timestamp": run.Timestamp,
			"cases":     len(run.Results),
			"passed":    passed,
		})
	}

	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal runs: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func getSpecificRun(outputDir, runID string) (*mcp.CallToolResult, error) {
	if _, err := resolveRunPath(outputDir, runID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid run_id: %v", err)), nil
	}

	run, err := runner.LoadRun(outputDir, runID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("run %q not found: %v", runID, err)), nil
	}

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal run: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
