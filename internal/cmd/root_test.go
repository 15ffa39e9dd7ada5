package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py2toml/cli/internal/testutil"
)

const sampleSetupPy = `
setup(
    name="mytool",
    version="1.0",
    install_requires=["requests", "click"],
    scripts=["bin/mytool"],
)
`

// execute runs a fresh root command with the given args and captures output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// package-level flag vars survive between runs; reset them
	configFlag, readmeFlag, pythonFlag = "", "", ""
	verboseFlag, timestampsFlag = false, false

	var buf bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootArgumentValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", []string{}},
		{"one argument", []string{"setup.py"}},
		{"three arguments", []string{"setup.py", "pyproject.toml", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			args := make([]string, len(tt.args))
			for i, a := range tt.args {
				args[i] = filepath.Join(dir, a)
			}

			_, err := execute(t, args...)
			require.Error(t, err)
			assert.Equal(t, ExitGeneralError, ExitCodeFromError(err))
			assert.Contains(t, err.Error(), "usage:")

			// a usage error must not touch the filesystem
			entries, readErr := os.ReadDir(dir)
			require.NoError(t, readErr)
			assert.Empty(t, entries)
		})
	}
}

func TestRootConvert(t *testing.T) {
	t.Run("converts source to destination", func(t *testing.T) {
		dir := t.TempDir()
		src := testutil.WriteFile(t, dir, "setup.py", sampleSetupPy)
		dest := filepath.Join(dir, "pyproject.toml")

		_, err := execute(t, src, dest)
		require.NoError(t, err)

		written, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Contains(t, string(written), "name = \"mytool\"")
		assert.Contains(t, string(written), "mytool = \"bin/mytool.__main__:main\"")
	})

	t.Run("missing source is fatal", func(t *testing.T) {
		dir := t.TempDir()
		dest := filepath.Join(dir, "pyproject.toml")

		_, err := execute(t, filepath.Join(dir, "missing.py"), dest)
		require.Error(t, err)
		assert.Equal(t, ExitGeneralError, ExitCodeFromError(err))

		_, statErr := os.Stat(dest)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("renderer flags override defaults", func(t *testing.T) {
		dir := t.TempDir()
		src := testutil.WriteFile(t, dir, "setup.py", sampleSetupPy)
		dest := filepath.Join(dir, "pyproject.toml")

		_, err := execute(t, src, dest, "--readme", "README.rst", "--python", ">=3.10")
		require.NoError(t, err)

		written, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Contains(t, string(written), "readme = \"README.rst\"")
		assert.Contains(t, string(written), "python = \">=3.10\"")
	})
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "py2toml")
	assert.Contains(t, out, "Version:")
}

func TestInspectCmd(t *testing.T) {
	t.Run("json output round-trips", func(t *testing.T) {
		src := testutil.WriteSetupPy(t, sampleSetupPy)

		out, err := execute(t, "inspect", src, "-o", "json")
		require.NoError(t, err)

		var md map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &md))
		assert.Equal(t, "mytool", md["name"])
		assert.Equal(t, "1.0", md["version"])
	})

	t.Run("table output lists fields", func(t *testing.T) {
		src := testutil.WriteSetupPy(t, sampleSetupPy)

		out, err := execute(t, "inspect", src)
		require.NoError(t, err)
		assert.Contains(t, out, "name")
		assert.Contains(t, out, "mytool")
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		src := testutil.WriteSetupPy(t, sampleSetupPy)

		_, err := execute(t, "inspect", src, "-o", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})
}
