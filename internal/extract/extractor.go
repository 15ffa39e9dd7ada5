package extract

import (
	"fmt"
	"strings"

	"github.com/py2toml/cli/internal/output"
	"github.com/py2toml/cli/internal/parser"
)

// FromCall builds a Metadata record from the keyword arguments of a matched
// setup call. Classification is best-effort: unusable arguments produce a
// Warning and are skipped, never an error. Each addition is also logged at
// debug level for interactive runs.
func FromCall(call *parser.Call) (Metadata, []Warning) {
	var md Metadata
	var warns []Warning

	warn := func(field, format string, args ...any) {
		w := Warning{Field: field, Detail: fmt.Sprintf(format, args...)}
		warns = append(warns, w)
		output.Warn(w.Detail, "field", field)
	}

	for _, kw := range call.Keywords {
		if kw.Name == "" {
			warn("", "keyword argument without a name, skipping")
			continue
		}

		switch kw.Name {
		case "author", "author_email":
			v, ok := commaList(kw.Value)
			if !ok {
				warn(kw.Name, "expected a comma-separated string, got %s", shape(kw.Value))
				continue
			}
			output.Debug("adding list field", "field", kw.Name, "value", v)
			md.set(kw.Name, v)
			continue
		case "keywords":
			v, ok := keywordList(kw.Value)
			if !ok {
				warn(kw.Name, "expected a string or sequence, got %s", shape(kw.Value))
				continue
			}
			output.Debug("adding list field", "field", kw.Name, "value", v)
			md.set(kw.Name, v)
			continue
		}

		switch v := kw.Value.(type) {
		case parser.String:
			// collapse internal whitespace runs so multi-line strings
			// become a single line
			text := strings.Join(strings.Fields(v.Text), " ")
			output.Debug("adding constant field", "field", kw.Name, "value", text)
			md.set(kw.Name, text)
		case parser.Scalar:
			output.Debug("adding constant field", "field", kw.Name, "value", v.Value)
			md.set(kw.Name, v.Value)
		case parser.Sequence:
			elems, dropped := stringElems(v)
			if dropped > 0 {
				warn(kw.Name, "dropped %d non-literal sequence element(s)", dropped)
			}
			output.Debug("adding list field", "field", kw.Name, "value", elems)
			md.set(kw.Name, elems)
		case parser.Name:
			// the identifier text stands in for the unevaluated value
			output.Debug("adding name reference", "field", kw.Name, "value", v.Ident)
			md.set(kw.Name, v.Ident)
		case parser.Unsupported:
			warn(kw.Name, "unsupported value shape (%s), field omitted", v.Reason)
		}
	}

	if w := mergeAuthors(&md); w != nil {
		warns = append(warns, *w)
		output.Warn(w.Detail, "field", w.Field)
	}

	output.Debug("extraction finished", "fields", len(call.Keywords), "warnings", len(warns))
	return md, warns
}

// commaList splits a string value on commas and trims each segment. A
// sequence value is accepted element-wise as a graceful fallback.
func commaList(v parser.Value) ([]string, bool) {
	switch s := v.(type) {
	case parser.String:
		parts := strings.Split(s.Text, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out, true
	case parser.Sequence:
		elems, _ := stringElems(s)
		return elems, true
	default:
		return nil, false
	}
}

// keywordList applies the keywords rule: comma-split, falling back to
// whitespace-split when the comma split yields a single segment. Sequences
// are used element-wise.
func keywordList(v parser.Value) ([]string, bool) {
	switch s := v.(type) {
	case parser.String:
		parts := strings.Split(s.Text, ",")
		if len(parts) == 1 {
			parts = strings.Fields(s.Text)
		}
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out, true
	case parser.Sequence:
		elems, _ := stringElems(s)
		return elems, true
	default:
		return nil, false
	}
}

// stringElems flattens a sequence literal into trimmed strings. Name
// references contribute their identifier text; unsupported elements are
// counted and dropped.
func stringElems(seq parser.Sequence) (elems []string, dropped int) {
	elems = make([]string, 0, len(seq.Elems))
	for _, e := range seq.Elems {
		switch v := e.(type) {
		case parser.String:
			elems = append(elems, strings.TrimSpace(v.Text))
		case parser.Scalar:
			elems = append(elems, scalarString(v.Value))
		case parser.Name:
			elems = append(elems, v.Ident)
		default:
			dropped++
		}
	}
	return elems, dropped
}

// shape names a value's variant for diagnostics.
func shape(v parser.Value) string {
	switch u := v.(type) {
	case parser.String:
		return "string literal"
	case parser.Sequence:
		return "sequence literal"
	case parser.Name:
		return "name reference"
	case parser.Scalar:
		return "scalar constant"
	case parser.Unsupported:
		return u.Reason
	default:
		return "unknown"
	}
}
