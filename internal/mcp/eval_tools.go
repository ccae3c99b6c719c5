package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/sut-eval/internal/server"
)

func registerEvaluationTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// list_case_sets
	listTool := mcp.NewTool("list_case_sets",
		mcp.WithDescription("List available evaluation case sets with metadata"),
	)
	s.AddTool(listTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListCaseSets(ctx, request, sc)
	})

	// probe_sut
	probeTool := mcp.NewTool("probe_sut",
		mcp.WithDescription("Send a sample question to the configured service under test and report whether it answers. A successful probe is required before run_evaluation."),
	)
	s.AddTool(probeTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleProbeSUT(ctx, request, sc)
	})

	// run_evaluation
	runTool := mcp.NewTool("run_evaluation",
		mcp.WithDescription("Evaluate every case in a case set against the service under test, scoring each answer with the LLM judge. Writes a results file and a spreadsheet report."),
		mcp.WithString("case_set",
			mcp.Required(),
			mcp.Description("Name of the case set to run (e.g. 'capitals-demo')"),
		),
	)
	s.AddTool(runTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleRunEvaluation(ctx, request, sc)
	})

	// reevaluate_case
	reevalTool := mcp.NewTool("reevaluate_case",
		mcp.WithDescription("Re-run a single case from a past run and replace its result in place"),
		mcp.WithString("run_id",
			mcp.Required(),
			mcp.Description("ID of the run whose result should be replaced"),
		),
		mcp.WithNumber("case_id",
			mcp.Required(),
			mcp.Description("Numeric ID of the case to re-evaluate"),
		),
	)
	s.AddTool(reevalTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleReEvaluateCase(ctx, request, sc)
	})

	// get_results
	getResultsTool := mcp.NewTool("get_results",
		mcp.WithDescription("Retrieve results of past evaluation runs"),
		mcp.WithString("run_id",
			mcp.Description("Specific run ID to retrieve (optional, lists all if omitted)"),
		),
	)
	s.AddTool(getResultsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetResults(ctx, request, sc)
	})

	return nil
}
