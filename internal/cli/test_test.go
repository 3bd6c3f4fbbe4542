package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const harnessScenarios = "../harness/testdata/scenarios"

func TestTestCommandRunsHarnessScenarios(t *testing.T) {
	out, err := execute(t, "test", harnessScenarios)
	require.NoError(t, err, out)
	assert.Contains(t, out, "✓ example_ada_bob")
	assert.Contains(t, out, "✓ duplicates_first_match")
	assert.Contains(t, out, "3 passed, 0 failed, 3 total")
}

func TestTestCommandFilterJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "test", harnessScenarios, "--filter", "dup*")
	require.NoError(t, err)

	var result TestResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.Passed)
	require.Len(t, result.Scenarios, 1)
	assert.Equal(t, "duplicates_first_match", result.Scenarios[0].Name)
}

func TestTestCommandFailingScenario(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scenarios")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	scenario := `
name: wrong_count
description: "expects too many contacts"
steps:
  - op: add
    name: Ada
    phone: "1"
    expect: { count: 2 }
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wrong.yaml"), []byte(scenario), 0o644))

	out, err := execute(t, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ wrong_count")
	assert.Contains(t, out, "expected count 2, got 1")
}

func TestTestCommandUpdateWritesGolden(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "scenarios")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	scenario := "name: one\ndescription: d\nsteps:\n  - op: add\n    name: Ada\n    phone: \"1\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.yaml"), []byte(scenario), 0o644))

	_, err := execute(t, "test", dir, "--update")
	require.NoError(t, err)

	golden, err := os.ReadFile(filepath.Join(root, "golden", "one.golden"))
	require.NoError(t, err)
	assert.Equal(t, "1 add name=\"Ada\" phone=\"1\" -> ok count=1\n", string(golden))

	// A tampered golden file now fails the run.
	require.NoError(t, os.WriteFile(filepath.Join(root, "golden", "one.golden"), []byte("nope\n"), 0o644))
	out, err := execute(t, "test", dir)
	require.Error(t, err)
	assert.Contains(t, out, "trace differs")
}

func TestTestCommandMissingDir(t *testing.T) {
	_, err := execute(t, "test", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
