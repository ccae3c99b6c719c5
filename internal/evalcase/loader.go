package evalcase

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed all:testdata
var embeddedSets embed.FS

// CaseSet is a named, ordered collection of test cases.
type CaseSet struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Version     string     `yaml:"version"`
	CasesFile   string     `yaml:"cases_file"`
	Cases       []TestCase `yaml:"-"` // loaded separately from CSV
}

// Load loads a case set by name, searching first in the external directory
// (if provided), then in the embedded case sets.
func Load(name string, externalDir string) (*CaseSet, error) {
	if externalDir != "" {
		dir := filepath.Join(externalDir, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return loadFromFS(os.DirFS(dir), name)
		}
	}

	// Use path.Join (not filepath.Join) because embed.FS always uses
	// forward slashes.
	subFS, err := fs.Sub(embeddedSets, path.Join("testdata", name))
	if err != nil {
		return nil, fmt.Errorf("case set %q not found: %w", name, err)
	}
	return loadFromFS(subFS, name)
}

// List returns the names of all available case sets.
func List(externalDir string) ([]string, error) {
	seen := make(map[string]bool)
	var names []string

	entries, err := fs.ReadDir(embeddedSets, "testdata")
	if err == nil {
		for _, e := range entries {
			if e.IsDir() {
				seen[e.Name()] = true
				names = append(names, e.Name())
			}
		}
	}

	if externalDir != "" {
		entries, err := os.ReadDir(externalDir)
		if err == nil {
			for _, e := range entries {
				if e.IsDir() && !seen[e.Name()] {
					names = append(names, e.Name())
				}
			}
		}
	}

	return names, nil
}

func loadFromFS(fsys fs.FS, name string) (*CaseSet, error) {
	configData, err := fs.ReadFile(fsys, "config.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read config.yaml for case set %q: %w", name, err)
	}

	var set CaseSet
	if err := yaml.Unmarshal(configData, &set); err != nil {
		return nil, fmt.Errorf("failed to parse config.yaml for case set %q: %w", name, err)
	}

	if set.CasesFile == "" {
		set.CasesFile = "cases.csv"
	}

	cases, err := loadCasesFromFS(fsys, set.CasesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load cases for case set %q: %w", name, err)
	}
	set.Cases = cases

	return &set, nil
}

func loadCasesFromFS(fsys fs.FS, filename string) ([]TestCase, error) {
	f, err := fsys.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // Allow variable field counts.

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}

	for _, required := range []string{"ID", "Question", "ExpectedAnswer"} {
		if _, ok := colIndex[required]; !ok {
			return nil, fmt.Errorf("missing required CSV column: %s", required)
		}
	}

	minCols := 0
	for _, idx := range colIndex {
		if idx >= minCols {
			minCols = idx + 1
		}
	}

	seen := make(map[int]bool)
	var cases []TestCase
	for lineNum := 2; ; lineNum++ { // lineNum starts at 2 (1-indexed, after header).
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", lineNum, err)
		}
		if len(record) < minCols {
			return nil, fmt.Errorf("CSV row %d has %d columns, expected at least %d", lineNum, len(record), minCols)
		}

		id, err := strconv.Atoi(strings.TrimSpace(record[colIndex["ID"]]))
		if err != nil {
			return nil, fmt.Errorf("CSV row %d: case ID must be numeric: %w", lineNum, err)
		}
		if seen[id] {
			return nil, fmt.Errorf("CSV row %d: duplicate case ID %d", lineNum, id)
		}
		seen[id] = true

		cases = append(cases, TestCase{
			ID:             id,
			Question:       record[colIndex["Question"]],
			ExpectedAnswer: record[colIndex["ExpectedAnswer"]],
		})
	}

	return cases, nil
}
