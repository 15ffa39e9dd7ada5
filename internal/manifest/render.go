// Package manifest renders a normalized metadata record into pyproject.toml
// text using the Poetry layout.
package manifest

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/py2toml/cli/internal/extract"
)

// Options controls the fixed parts of the rendered manifest. Zero values are
// filled from DefaultOptions.
type Options struct {
	// Readme is the readme filename written into the project block.
	Readme string

	// PythonConstraint is the python dependency constraint used when the
	// source declared no python_requires.
	PythonConstraint string
}

// DefaultOptions returns the renderer defaults.
func DefaultOptions() Options {
	return Options{
		Readme:           "README.md",
		PythonConstraint: ">=3.5",
	}
}

// manifestData is the substitution payload for the template.
type manifestData struct {
	Name             string
	Version          string
	Description      string
	License          string
	Authors          string
	Readme           string
	Repository       string
	Keywords         string
	ClassifiersBlock string
	Python           string
	DependencyLines  string
	ScriptLines      string
}

// manifestTemplate is the fixed target document shape. Section bodies arrive
// pre-joined so that empty sections leave a double blank line for the
// collapse pass, exactly like the generated sections in the legacy layout.
const manifestTemplate = `[tool.poetry]
name = "{{ .Name }}"
version = "{{ .Version }}"
description = "{{ .Description }}"
license = "{{ .License }}"
authors = {{ .Authors }}
readme = "{{ .Readme }}"
repository = "{{ .Repository }}"
keywords = {{ .Keywords }}
classifiers = {{ .ClassifiersBlock }}

[tool.poetry.dependencies]
python = "{{ .Python }}"
{{ .DependencyLines }}

[tool.poetry.scripts]
{{ .ScriptLines }}

[build-system]
requires = ["poetry-core"]
build-backend = "poetry.core.masonry.api"
`

var tmpl = template.Must(template.New("pyproject").Parse(manifestTemplate))

// Render produces the pyproject.toml text for the given metadata. Output is
// deterministic: the same record and options always yield identical bytes.
func Render(md extract.Metadata, opts Options) (string, error) {
	if opts.Readme == "" {
		opts.Readme = DefaultOptions().Readme
	}
	if opts.PythonConstraint == "" {
		opts.PythonConstraint = DefaultOptions().PythonConstraint
	}

	python := md.PythonRequires
	if python == "" {
		python = opts.PythonConstraint
	}

	data := manifestData{
		Name:             md.Name,
		Version:          md.Version,
		Description:      md.Description,
		License:          md.License,
		Authors:          inlineList(md.Author),
		Readme:           opts.Readme,
		Repository:       md.URL,
		Keywords:         inlineList(md.Keywords),
		ClassifiersBlock: classifiersBlock(md.Classifiers),
		Python:           python,
		DependencyLines:  dependencyLines(md.InstallRequires),
		ScriptLines:      scriptLines(md.Scripts),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering manifest: %w", err)
	}

	// single pass: two consecutive blank lines become one
	return strings.ReplaceAll(buf.String(), "\n\n\n", "\n\n"), nil
}

// inlineList renders a string slice as a one-line quoted list literal.
func inlineList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// classifiersBlock renders classifiers as a multi-line list literal, one
// quoted entry per line, or an empty list literal when there are none.
func classifiersBlock(classifiers []string) string {
	if len(classifiers) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	for _, c := range classifiers {
		fmt.Fprintf(&b, "    %q,\n", c)
	}
	b.WriteString("]")
	return b.String()
}

// dependencyLines pins each install_requires entry to the unconstrained
// version marker.
func dependencyLines(requires []string) string {
	lines := make([]string, len(requires))
	for i, req := range requires {
		lines[i] = fmt.Sprintf("%s = \"*\"", req)
	}
	return strings.Join(lines, "\n")
}

// scriptLines maps each script path to an entry point targeting the module's
// __main__:main, keyed by the file's base name without extension.
func scriptLines(scripts []string) string {
	lines := make([]string, len(scripts))
	for i, script := range scripts {
		base := filepath.Base(script)
		base = strings.TrimSuffix(base, filepath.Ext(base))
		lines[i] = fmt.Sprintf("%s = \"%s.__main__:main\"", base, script)
	}
	return strings.Join(lines, "\n")
}
