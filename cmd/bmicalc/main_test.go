package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/bmicalc/internal/cli"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(context.Background(), args, strings.NewReader(stdin), out, errOut)
	return out.String(), errOut.String(), err
}

func TestRun_Single(t *testing.T) {
	t.Parallel()

	out, _, err := runArgs(t, "", "-height", "180", "-weight", "70")
	require.NoError(t, err)
	require.Equal(t, "Your BMI: 21.60\nStatus: Normal\n", out)
}

func TestRun_InvalidInputExitsWithOne(t *testing.T) {
	t.Parallel()

	out, _, err := runArgs(t, "", "-height", "abc", "-weight", "70")
	require.Error(t, err)

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 1, exitErr.Code)
	require.Equal(t, "Height must be a number > 0\n", out)
}

func TestRun_BatchHCL(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	path := filepath.Join(dir, "main.hcl")
	err := os.WriteFile(path, []byte(`
measurement "alice" {
  height = 180
  weight = 70
}
`), 0600)
	require.NoError(t, err, "failed to set up test file")

	// --- Act ---
	out, _, err := runArgs(t, "", "-format", "hcl", path)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out, `result "alice"`)
	require.Contains(t, out, `"21.60"`)
}

func TestRun_BatchSyntaxError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`measurement "a" {`), 0600))

	_, _, err := runArgs(t, "", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse HCL file")
}

func TestRun_Interactive(t *testing.T) {
	t.Parallel()

	out, _, err := runArgs(t, "180 70\nquit\n", "-interactive")
	require.NoError(t, err)
	require.Contains(t, out, "Your BMI: 21.60")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out, _, err := runArgs(t, "", "-h")
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out, "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	_, _, err := runArgs(t, "", "--this-is-not-a-valid-flag")
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
