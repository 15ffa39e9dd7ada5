// Package extract normalizes the keyword arguments of a setup(...) call into
// an explicit metadata record plus a list of warnings for everything the
// best-effort rules had to skip or leave alone.
package extract

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Metadata holds the recognized setup arguments after normalization. Fields
// the source never sets stay zero; the renderer supplies defaults.
type Metadata struct {
	Name           string `json:"name,omitempty" yaml:"name,omitempty"`
	Version        string `json:"version,omitempty" yaml:"version,omitempty"`
	Description    string `json:"description,omitempty" yaml:"description,omitempty"`
	License        string `json:"license,omitempty" yaml:"license,omitempty"`
	URL            string `json:"url,omitempty" yaml:"url,omitempty"`
	PythonRequires string `json:"pythonRequires,omitempty" yaml:"pythonRequires,omitempty"`

	// Author holds author names, or "Name <email>" strings once the merger
	// paired them with AuthorEmail.
	Author      []string `json:"author,omitempty" yaml:"author,omitempty"`
	AuthorEmail []string `json:"authorEmail,omitempty" yaml:"authorEmail,omitempty"`

	Keywords        []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Classifiers     []string `json:"classifiers,omitempty" yaml:"classifiers,omitempty"`
	InstallRequires []string `json:"installRequires,omitempty" yaml:"installRequires,omitempty"`
	Scripts         []string `json:"scripts,omitempty" yaml:"scripts,omitempty"`

	// Extra collects recognized value shapes under keyword names the record
	// has no field for (long_description, zip_safe, ...). Values are strings,
	// string slices, or pass-through scalars.
	Extra map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// ExtraKeys returns the Extra map's keys in sorted order, for deterministic
// output.
func (m *Metadata) ExtraKeys() []string {
	keys := make([]string, 0, len(m.Extra))
	for k := range m.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// set assigns a normalized value to the record field matching the keyword
// name, or to Extra for unrecognized names. Later writes win.
func (m *Metadata) set(key string, value any) {
	switch key {
	case "name":
		m.Name = scalarString(value)
	case "version":
		m.Version = scalarString(value)
	case "description":
		m.Description = scalarString(value)
	case "license":
		m.License = scalarString(value)
	case "url":
		m.URL = scalarString(value)
	case "python_requires":
		m.PythonRequires = scalarString(value)
	case "author":
		m.Author = toStringList(value)
	case "author_email":
		m.AuthorEmail = toStringList(value)
	case "keywords":
		m.Keywords = toStringList(value)
	case "classifiers":
		m.Classifiers = toStringList(value)
	case "install_requires":
		m.InstallRequires = toStringList(value)
	case "scripts":
		m.Scripts = toStringList(value)
	default:
		if m.Extra == nil {
			m.Extra = make(map[string]any)
		}
		m.Extra[key] = value
	}
}

// scalarString renders a scalar for a string-typed field. Strings pass
// through; other constants take their text form.
func scalarString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		if s == math.Trunc(s) && !math.IsInf(s, 0) {
			return strconv.FormatFloat(s, 'f', 1, 64)
		}
		return strconv.FormatFloat(s, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toStringList(v any) []string {
	switch s := v.(type) {
	case []string:
		return s
	case string:
		return []string{s}
	default:
		return []string{scalarString(v)}
	}
}

// Warning is a single non-fatal diagnostic produced during extraction.
// Warnings never stop the pipeline; they exist so callers and tests can
// assert on skipped or fallback fields without parsing log text.
type Warning struct {
	// Field is the keyword argument the warning concerns; empty for
	// call-level conditions.
	Field string

	// Detail describes what happened and what the extractor did instead.
	Detail string
}

func (w Warning) String() string {
	if w.Field == "" {
		return w.Detail
	}
	return w.Field + ": " + w.Detail
}
