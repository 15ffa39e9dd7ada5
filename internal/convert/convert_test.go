package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py2toml/cli/internal/manifest"
	"github.com/py2toml/cli/internal/testutil"
)

const sampleSetupPy = `
from setuptools import setup

setup(
    name="mytool",
    version="1.2.3",
    author="Alice",
    author_email="a@x.com",
    install_requires=["requests"],
)
`

func TestRun(t *testing.T) {
	t.Run("writes the rendered manifest", func(t *testing.T) {
		dir := t.TempDir()
		src := testutil.WriteFile(t, dir, "setup.py", sampleSetupPy)
		dest := filepath.Join(dir, "pyproject.toml")

		result, err := Run(Options{SourcePath: src, DestPath: dest, Manifest: manifest.DefaultOptions()})
		require.NoError(t, err)

		written, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, result.Manifest, string(written))
		assert.Contains(t, string(written), "name = \"mytool\"")
		assert.Contains(t, string(written), "authors = [\"Alice <a@x.com>\"]")
		assert.Contains(t, string(written), "requests = \"*\"")
	})

	t.Run("overwrites an existing destination", func(t *testing.T) {
		dir := t.TempDir()
		src := testutil.WriteFile(t, dir, "setup.py", sampleSetupPy)
		dest := testutil.WriteFile(t, dir, "pyproject.toml", "stale content")

		_, err := Run(Options{SourcePath: src, DestPath: dest, Manifest: manifest.DefaultOptions()})
		require.NoError(t, err)

		written, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.NotContains(t, string(written), "stale")
	})

	t.Run("identical input produces identical output", func(t *testing.T) {
		dir := t.TempDir()
		src := testutil.WriteFile(t, dir, "setup.py", sampleSetupPy)
		destA := filepath.Join(dir, "a.toml")
		destB := filepath.Join(dir, "b.toml")

		_, err := Run(Options{SourcePath: src, DestPath: destA, Manifest: manifest.DefaultOptions()})
		require.NoError(t, err)
		_, err = Run(Options{SourcePath: src, DestPath: destB, Manifest: manifest.DefaultOptions()})
		require.NoError(t, err)

		a, err := os.ReadFile(destA)
		require.NoError(t, err)
		b, err := os.ReadFile(destB)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("missing source is an error", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Run(Options{
			SourcePath: filepath.Join(dir, "nope.py"),
			DestPath:   filepath.Join(dir, "out.toml"),
		})
		assert.Error(t, err)
	})
}

func TestRenderWithoutSetupCall(t *testing.T) {
	result, err := Render(`print("no packaging here")`, manifest.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Detail, "no setup call")
	assert.Contains(t, result.Manifest, "name = \"\"")
	assert.Contains(t, result.Manifest, "python = \">=3.5\"")
}

func TestRenderLexicalError(t *testing.T) {
	_, err := Render(`setup(name="broken`, manifest.DefaultOptions())
	assert.Error(t, err)
}

func TestExtract(t *testing.T) {
	md, warns, err := Extract(sampleSetupPy)
	require.NoError(t, err)
	assert.Empty(t, warns)
	assert.Equal(t, "mytool", md.Name)
	assert.Equal(t, []string{"Alice <a@x.com>"}, md.Author)
}
