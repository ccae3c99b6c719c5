package sut

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/giantswarm/sut-eval/internal/extract"
)

// probeQuestion is the synthetic question sent to verify connectivity.
// The SUT does not need to answer it correctly, only to respond.
const probeQuestion = "Hello, are you available?"

// previewLen is the maximum length of the extracted-answer preview
// included in a successful probe message.
const previewLen = 80

// Probed is the outcome of a connection probe.
type Probed struct {
	Reachable bool
	Message   string
}

// Probe sends one synthetic request to the configured SUT endpoint and
// classifies the result. It never returns an error: every failure mode is
// folded into an unreachable Probed for display.
func Probe(ctx context.Context, client *Client) Probed {
	raw, err := client.Ask(ctx, probeQuestion)
	if err != nil {
		return classifyProbeError(err)
	}

	// Non-JSON bodies are not an error for the probe: the raw text is
	// treated as the answer itself.
	answer := extract.Extract(raw)

	slog.Debug("connection probe succeeded", "endpoint", client.Config().Endpoint())

	return Probed{
		Reachable: true,
		Message:   fmt.Sprintf("Connection OK. Sample response: %s", truncate(answer, previewLen)),
	}
}

func classifyProbeError(err error) Probed {
	var transportErr *TransportError
	if errors.As(err, &transportErr) && transportErr.Status != 0 {
		return Probed{Message: fmt.Sprintf("SUT unreachable: HTTP %d (%s)", transportErr.Status, transportErr.Reason)}
	}

	var emptyErr *EmptyResponseError
	if errors.As(err, &emptyErr) {
		return Probed{Message: "SUT responded with an empty body; check the endpoint path and method"}
	}

	return Probed{Message: fmt.Sprintf("SUT unreachable: %v", err)}
}

// truncate shortens s to at most n characters, marking cut-off text with
// an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
