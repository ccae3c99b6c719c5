package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/sut-eval/internal/evalcase"
	"github.com/giantswarm/sut-eval/internal/server"
)

func handleListCaseSets(_ context.Context, _ mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	names, err := evalcase.List(sc.CaseSetsDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list case sets: %v", err)), nil
	}

	// ID is the directory identifier accepted by run_evaluation's case_set
	// argument; Name is the human-readable display name.
	type caseSetInfo struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Version     string `json:"version"`
		CaseCount   int    `json:"case_count"`
	}

	var sets []caseSetInfo
	for _, name := range names {
		cs, err := evalcase.Load(name, sc.CaseSetsDir)
		if err != nil {
			continue
		}
		sets = append(sets, caseSetInfo{
			ID:          name,
			Name:        cs.Name,
			Description: cs.Description,
			Version:     cs.Version,
			CaseCount:   len(cs.Cases),
		})
	}

	data, err := json.MarshalIndent(sets, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal case sets: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
