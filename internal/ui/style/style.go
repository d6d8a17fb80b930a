// Package style provides shared UI styling primitives including colors and
// icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Cyan   = lipgloss.Color("#0E7490")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Note    = "●"
)

// Hint renders a multi-line remediation hint: a warning headline followed by
// the body as-is.
func Hint(headline, body string, styled bool) string {
	if !styled {
		return Warning + " " + headline + "\n" + body
	}

	head := lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	return head.Render(Warning+" "+headline) + "\n" + body
}
