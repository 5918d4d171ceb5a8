// Package style holds the colours and icons shared by log lines and the check report.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Muted  = lipgloss.Color("#667085")
	Good   = lipgloss.Color("#22A06B")
	Bad    = lipgloss.Color("#D93025")
	Notice = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Circle  = "○"
)

// Theme is the palette bound to one renderer.
type Theme struct {
	Muted  lipgloss.Style
	Good   lipgloss.Style
	Bad    lipgloss.Style
	Notice lipgloss.Style
	Strong lipgloss.Style
}

// NewTheme builds the styles for r.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Muted:  r.NewStyle().Foreground(Muted),
		Good:   r.NewStyle().Foreground(Good),
		Bad:    r.NewStyle().Foreground(Bad),
		Notice: r.NewStyle().Foreground(Notice),
		Strong: r.NewStyle().Bold(true),
	}
}
