package mcp

import (
	"fmt"
	"path/filepath"
	"strings"
)

// resolveRunPath validates a client-supplied run ID and resolves it to a
// directory under outputDir. Run IDs never contain path separators, so
// anything that would escape the output directory is rejected.
func resolveRunPath(outputDir, runID string) (string, error) {
	if strings.TrimSpace(runID) == "" {
		return "", fmt.Errorf("run_id is required")
	}
	if strings.Contains(runID, string(filepath.Separator)) || strings.Contains(runID, "/") {
		return "", fmt.Errorf("path separators are not allowed")
	}
	if runID == "." || runID == ".." {
		return "", fmt.Errorf("path traversal is not allowed")
	}

	baseAbs, err := filepath.Abs(outputDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output directory: %w", err)
	}
	target := filepath.Join(baseAbs, runID)

	rel, err := filepath.Rel(baseAbs, target)
	if err != nil {
		return "", fmt.Errorf("failed to resolve run path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("run path must be within the output directory")
	}
	return target, nil
}
