package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/sut-eval/internal/server"
	"github.com/giantswarm/sut-eval/internal/sut"
)

func handleProbeSUT(ctx context.Context, _ mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client := sut.NewClient(sc.Config.SUT)
	probed := sut.Probe(ctx, client)

	// A later successful probe unlocks batch runs for the whole session,
	// a failed one locks them again.
	sc.SetProbed(probed.Reachable)

	slog.Info("probed service under test",
		"endpoint", sc.Config.SUT.Endpoint(),
		"reachable", probed.Reachable,
	)

	data, err := json.MarshalIndent(map[string]interface{}{
		"reachable": probed.Reachable,
		"message":   probed.Message,
	}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal probe result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
