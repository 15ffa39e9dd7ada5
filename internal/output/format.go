package output

import "strings"

// Format specifies how inspect results are printed.
type Format string

const (
	// FormatTable prints a two-column field/value table.
	FormatTable Format = "table"

	// FormatJSON prints the metadata record as indented JSON.
	FormatJSON Format = "json"

	// FormatYAML prints the metadata record as YAML.
	FormatYAML Format = "yaml"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// Valid checks whether the format is one of the supported values.
func (f Format) Valid() bool {
	switch f {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseFormat parses a string into a Format. The second return value reports
// whether the input was recognized.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case "table":
		return FormatTable, true
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return Format(s), false
	}
}

// ValidFormats returns the supported format names for help text.
func ValidFormats() []string {
	return []string{"table", "json", "yaml"}
}
