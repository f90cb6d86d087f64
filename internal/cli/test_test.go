package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestCommand_Pass(t *testing.T) {
	stdout, _, code := execute(t, "test", "testdata/scenarios")
	require.Equal(t, ExitSuccess, code, stdout)

	assert.Contains(t, stdout, "✓ bhu_lat\n")
	assert.Contains(t, stdout, "✓ edh_lut\n")
	assert.Contains(t, stdout, "Test Summary: 2 passed, 0 failed, 2 total")
}

func TestTestCommand_Filter(t *testing.T) {
	stdout, _, code := execute(t, "test", "testdata/scenarios", "--filter", "bhu_*", "--format", "json")
	require.Equal(t, ExitSuccess, code)

	var result TestResult
	decodeData(t, stdout, &result)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "bhu_lat", result.Scenarios[0].Name)
}

func TestTestCommand_Failure(t *testing.T) {
	stdout, _, code := execute(t, "test", "testdata/failing", "--format", "json")
	assert.Equal(t, ExitFailure, code)

	var result TestResult
	resp := decodeData(t, stdout, &result)
	assert.Equal(t, "E_TEST_FAILED", resp.Error.Code)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, result.Scenarios[0].Errors[0], "expected form Bavate")
}

func TestTestCommand_GoldenMismatchAndUpdate(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile("testdata/scenarios/bhu_lat.yaml")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bhu_lat.yaml"), data, 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "golden"), 0o755))
	golden := filepath.Join(dir, "golden", "bhu_lat.golden")
	require.NoError(t, os.WriteFile(golden, []byte(`{"stale":true}`), 0o644))

	stdout, _, code := execute(t, "test", dir)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stdout, "snapshot does not match golden file")

	_, _, code = execute(t, "test", dir, "--update")
	require.Equal(t, ExitSuccess, code)

	want, err := os.ReadFile("testdata/scenarios/golden/bhu_lat.golden")
	require.NoError(t, err)
	got, err := os.ReadFile(golden)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))

	_, _, code = execute(t, "test", dir)
	assert.Equal(t, ExitSuccess, code)
}

func TestTestCommand_Errors(t *testing.T) {
	_, stderr, code := execute(t, "test", "testdata/nope")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "scenarios directory not found")

	_, _, code = execute(t, "test")
	assert.Equal(t, ExitCommandError, code, "exactly one argument")

	stdout, _, code := execute(t, "test", t.TempDir())
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "No scenarios found.\n", stdout)
}
