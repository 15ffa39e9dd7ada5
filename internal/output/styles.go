package output

import "github.com/charmbracelet/lipgloss"

// Color palette — named constants for the ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color
// literals.
var (
	// ColorCyan is used for identifiable nouns: file paths, field names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorYellow is used for skipped or fallback fields.
	ColorYellow = lipgloss.Color("220")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map converter concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (paths, field names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleCheck styles the completion checkmark.
	StyleCheck = lipgloss.NewStyle().Foreground(ColorGreenCheck)

	// StyleSkipped styles fields the extractor dropped or left as fallback.
	StyleSkipped = lipgloss.NewStyle().Foreground(ColorYellow)
)

// Summary renders the end-of-conversion line with a styled checkmark and
// destination path.
func Summary(dest string) string {
	return StyleCheck.Render("✔") + " " + StyleSummary.Render("conversion complete:") + " " + StyleNoun.Render(dest)
}
