package evalcase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedSet(t *testing.T) {
	set, err := Load("capitals-demo", "")
	require.NoError(t, err)

	assert.Equal(t, "Capitals Demo", set.Name)
	assert.Equal(t, "1", set.Version)
	assert.Len(t, set.Cases, 5)

	first := set.Cases[0]
	assert.Equal(t, 1, first.ID)
	assert.Contains(t, first.Question, "France")
	assert.Equal(t, "Paris", first.ExpectedAnswer)
}

func TestLoadNonexistentSet(t *testing.T) {
	_, err := Load("nonexistent-set", "")
	assert.Error(t, err)
}

func TestLoadExternalSetTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	setDir := filepath.Join(dir, "capitals-demo")
	require.NoError(t, os.MkdirAll(setDir, 0o755))

	config := "name: External Capitals\nversion: \"2\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(setDir, "config.yaml"), []byte(config), 0o644))
	cases := "ID,Question,ExpectedAnswer\n7,Q?,A\n"
	require.NoError(t, os.WriteFile(filepath.Join(setDir, "cases.csv"), []byte(cases), 0o644))

	set, err := Load("capitals-demo", dir)
	require.NoError(t, err)
	assert.Equal(t, "External Capitals", set.Name)
	require.Len(t, set.Cases, 1)
	assert.Equal(t, 7, set.Cases[0].ID)
}

func TestLoadRejectsNonNumericID(t *testing.T) {
	dir := t.TempDir()
	setDir := filepath.Join(dir, "bad-ids")
	require.NoError(t, os.MkdirAll(setDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(setDir, "config.yaml"), []byte("name: Bad\n"), 0o644))
	cases := "ID,Question,ExpectedAnswer\nabc,Q?,A\n"
	require.NoError(t, os.WriteFile(filepath.Join(setDir, "cases.csv"), []byte(cases), 0o644))

	_, err := Load("bad-ids", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "numeric")
}

func TestLoadRejectsDuplicateID(t *testing.T) {
	dir := t.TempDir()
	setDir := filepath.Join(dir, "dup-ids")
	require.NoError(t, os.MkdirAll(setDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(setDir, "config.yaml"), []byte("name: Dup\n"), 0o644))
	cases := "ID,Question,ExpectedAnswer\n1,Q1?,A\n1,Q2?,B\n"
	require.NoError(t, os.WriteFile(filepath.Join(setDir, "cases.csv"), []byte(cases), 0o644))

	_, err := Load("dup-ids", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestListIncludesEmbedded(t *testing.T) {
	names, err := List("")
	require.NoError(t, err)
	assert.Contains(t, names, "capitals-demo")
}

func TestCasesFileDefault(t *testing.T) {
	set, err := Load("capitals-demo", "")
	require.NoError(t, err)
	assert.Equal(t, "cases.csv", set.CasesFile)
}
