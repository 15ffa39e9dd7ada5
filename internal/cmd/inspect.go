package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/py2toml/cli/internal/convert"
	"github.com/py2toml/cli/internal/extract"
	"github.com/py2toml/cli/internal/output"
)

// NewInspectCmd creates the inspect command. It runs the parse and extract
// stages only and prints the metadata record, which is useful for checking
// what a conversion would pick up before writing anything.
func NewInspectCmd() *cobra.Command {
	var outputFlag string

	c := &cobra.Command{
		Use:   "inspect <setup.py>",
		Short: "Show the metadata a conversion would extract",
		Long: `Parse a setup.py file and print the extracted metadata record without
writing a manifest.

Examples:
  # Show extracted metadata as a table
  py2toml inspect ./setup.py

  # Show extracted metadata as JSON
  py2toml inspect ./setup.py -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runInspect(c, args[0], outputFlag)
		},
	}

	c.Flags().StringVarP(&outputFlag, "output", "o", "table",
		"Output format: "+strings.Join(output.ValidFormats(), ", "))
	return c
}

func runInspect(c *cobra.Command, sourcePath, outputFmt string) error {
	format, valid := output.ParseFormat(outputFmt)
	if !valid {
		return fmt.Errorf("invalid output format %q (valid: %s)",
			outputFmt, strings.Join(output.ValidFormats(), ", "))
	}

	src, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", sourcePath, err)
	}

	md, warns, err := convert.Extract(string(src))
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	switch format {
	case output.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(md); err != nil {
			return fmt.Errorf("encoding metadata: %w", err)
		}
	case output.FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(md); err != nil {
			return fmt.Errorf("encoding metadata: %w", err)
		}
		if err := enc.Close(); err != nil {
			return err
		}
	default:
		fmt.Fprintln(out, metadataTable(md))
	}

	if len(warns) > 0 {
		output.Info("extraction finished with warnings", "count", len(warns))
	}
	return nil
}

// metadataTable renders the record as a two-column table in field precedence
// order, with Extra fields last.
func metadataTable(md extract.Metadata) string {
	t := output.NewFieldTable()

	row := func(field, value string) {
		if value != "" {
			t.Row(field, value)
		}
	}

	row("name", md.Name)
	row("version", md.Version)
	row("description", md.Description)
	row("license", md.License)
	row("url", md.URL)
	row("python_requires", md.PythonRequires)
	row("author", strings.Join(md.Author, ", "))
	row("author_email", strings.Join(md.AuthorEmail, ", "))
	row("keywords", strings.Join(md.Keywords, ", "))
	row("classifiers", strings.Join(md.Classifiers, ", "))
	row("install_requires", strings.Join(md.InstallRequires, ", "))
	row("scripts", strings.Join(md.Scripts, ", "))

	for _, k := range md.ExtraKeys() {
		row(k, fmt.Sprintf("%v", md.Extra[k]))
	}

	return t.String()
}
