package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/trfilter/internal/charset"
	"github.com/specialistvlad/trfilter/internal/cli"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func TestRun_Translate(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	in := strings.NewReader("hello world\n")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(in, out, errOut, []string{"a-z", "A-Z"}, noEnv)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "HELLO WORLD\n", out.String())
	require.Empty(t, errOut.String(), "nothing should be logged at the default level")
}

func TestRun_Truncate(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(strings.NewReader("abcd"), out, &bytes.Buffer{}, []string{"-t", "abcd", "xy"}, noEnv)

	require.NoError(t, err)
	require.Equal(t, "xycd", out.String())
}

func TestRun_Delete(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(strings.NewReader("hello world"), out, &bytes.Buffer{}, []string{"-d", "aeiou"}, noEnv)

	require.NoError(t, err)
	require.Equal(t, "hll wrld", out.String())
}

func TestRun_UsageError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A single positional argument matches none of the accepted shapes.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(strings.NewReader("abc"), out, &bytes.Buffer{}, []string{"abc"}, noEnv)

	// --- Assert ---
	require.Error(t, err)
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.Code)
	require.Contains(t, exitErr.Message, "usage:")
	require.Empty(t, out.String())
}

func TestRun_IllegalRangeProducesNoOutput(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(strings.NewReader("12345"), out, &bytes.Buffer{}, []string{"5-3", "abc"}, noEnv)

	// --- Assert ---
	require.ErrorIs(t, err, charset.ErrIllegalRange)
	require.Contains(t, err.Error(), "ERROR: Illegal range")
	require.Empty(t, out.String(), "no output may be produced when a set is invalid")
}

func TestRun_SettingsFileFromEnv(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "tr.hcl")
	settings := "log {\n  level  = \"debug\"\n  format = \"json\"\n}\nstream {\n  buffer_size = 2\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(settings), 0600), "failed to set up test file")
	getenv := func(k string) string {
		if k == cli.EnvSettings {
			return path
		}
		return ""
	}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(strings.NewReader("banana"), out, errOut, []string{"an", "AN"}, getenv)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "bANANA", out.String())
	require.Contains(t, errOut.String(), `"run_id"`, "debug logs should be JSON and carry the run id")
	require.Contains(t, errOut.String(), `"bytes_in":6`)
}

func TestRun_BadSettingsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tr.hcl")
	require.NoError(t, os.WriteFile(path, []byte("log {\n level = \n"), 0600))
	getenv := func(k string) string {
		if k == cli.EnvSettings {
			return path
		}
		return ""
	}

	err := run(strings.NewReader("x"), &bytes.Buffer{}, &bytes.Buffer{}, []string{"a", "b"}, getenv)

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load settings")
}
