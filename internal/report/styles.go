package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles are bound to one renderer so that disabling color strips every
// escape sequence, not just the ones we remember to guard.
type Styles struct {
	Header   lipgloss.Style
	Label    lipgloss.Style
	Win      lipgloss.Style
	Loss     lipgloss.Style
	Draw     lipgloss.Style
	Muted    lipgloss.Style
	RedCard  lipgloss.Style
	Card     lipgloss.Style
	Border   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
}

// NewRenderer returns a renderer for w. With color off the Ascii profile is
// forced regardless of the terminal.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	if !color {
		return lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii))
	}
	return lipgloss.NewRenderer(w)
}

// NewStyles builds the palette on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Loss: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Draw: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Card: r.NewStyle().
			Bold(true),
		Border: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Cell: r.NewStyle().
			Padding(0, 1),
		Selected: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true).
			Padding(0, 1),
	}
}
