// Package convert ties the conversion stages together: parse the source
// script, extract metadata, render the manifest, write it out.
package convert

import (
	"errors"
	"fmt"
	"os"

	"github.com/py2toml/cli/internal/extract"
	"github.com/py2toml/cli/internal/manifest"
	"github.com/py2toml/cli/internal/output"
	"github.com/py2toml/cli/internal/parser"
)

// Options configures a conversion run.
type Options struct {
	// SourcePath is the setup.py file to read.
	SourcePath string

	// DestPath is the pyproject.toml file to write. Existing content is
	// overwritten.
	DestPath string

	// Manifest holds the renderer defaults.
	Manifest manifest.Options
}

// Result carries the outcome of a conversion for callers that want to show
// what happened.
type Result struct {
	// Metadata is the extracted record; empty when no setup call was found.
	Metadata extract.Metadata

	// Warnings are the non-fatal diagnostics the pipeline produced.
	Warnings []extract.Warning

	// Manifest is the rendered document text.
	Manifest string
}

// Extract parses source text and extracts the metadata record without
// rendering. A source with no setup call yields an empty record and a
// warning, not an error.
func Extract(src string) (extract.Metadata, []extract.Warning, error) {
	call, err := parser.FindSetupCall(src)
	if errors.Is(err, parser.ErrNoSetupCall) {
		output.Warn("could not find a setup call in the source")
		return extract.Metadata{}, []extract.Warning{{Detail: "no setup call found, metadata is empty"}}, nil
	}
	if err != nil {
		return extract.Metadata{}, nil, err
	}

	output.Debug("matched setup call", "callee", call.Callee, "keywords", len(call.Keywords))
	md, warns := extract.FromCall(call)
	return md, warns, nil
}

// Render runs parse, extract, and render over source text, with no file I/O.
func Render(src string, opts manifest.Options) (*Result, error) {
	md, warns, err := Extract(src)
	if err != nil {
		return nil, err
	}

	text, err := manifest.Render(md, opts)
	if err != nil {
		return nil, err
	}

	return &Result{Metadata: md, Warnings: warns, Manifest: text}, nil
}

// Run executes the full pipeline: read the source file, convert, and write
// the destination file. I/O errors are returned as-is and are fatal to the
// caller; conversion-level conditions only surface as Result warnings.
func Run(opts Options) (*Result, error) {
	src, err := os.ReadFile(opts.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", opts.SourcePath, err)
	}

	result, err := Render(string(src), opts.Manifest)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", opts.SourcePath, err)
	}

	if err := os.WriteFile(opts.DestPath, []byte(result.Manifest), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", opts.DestPath, err)
	}

	return result, nil
}
