package server

import (
	"sync"

	"github.com/giantswarm/sut-eval/internal/config"
	"github.com/giantswarm/sut-eval/internal/judge"
)

// ServerContext holds shared dependencies for MCP tool handlers.
type ServerContext struct {
	// Config is the evaluation configuration (SUT endpoint + judge).
	Config *config.EvalConfig

	// JudgeClient is the judge transport, built once from Config.
	JudgeClient judge.Client

	// OutputDir is where run artifacts (results, reports) are written.
	OutputDir string

	// CaseSetsDir is an optional external case sets directory.
	CaseSetsDir string

	// TemplatePath is the spreadsheet template used for report export.
	TemplatePath string

	// probed records whether a connection probe has succeeded in this
	// session. Batch runs refuse to start until one has. Tool calls may
	// run concurrently, so access goes through SetProbed and Probed.
	mu     sync.Mutex
	probed bool
}

// SetProbed records the outcome of the latest connection probe.
func (sc *ServerContext) SetProbed(v bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.probed = v
}

// Probed reports whether the latest connection probe succeeded.
func (sc *ServerContext) Probed() bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.probed
}
