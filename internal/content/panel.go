package content

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/shelfscan/internal/movie"
)

const panelWidth = 72

type panelStyles struct {
	heading lipgloss.Style
	body    lipgloss.Style
	label   lipgloss.Style
}

func newPanelStyles() panelStyles {
	asciiBorder := lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	return panelStyles{
		heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")),
		body: lipgloss.NewStyle().
			Border(asciiBorder).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			Width(panelWidth),
		label: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110")),
	}
}

// RenderPanel renders record for the operator's terminal. The text content
// matches FormatRecord; only the decoration differs.
func RenderPanel(record movie.Record) string {
	styles := newPanelStyles()

	lines := bodyLines(record)
	for i, line := range lines {
		if label, rest, ok := strings.Cut(line, ": "); ok {
			lines[i] = styles.label.Render(label+":") + " " + rest
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.heading.Render("--- Found Movie ---"),
		styles.body.Render(strings.Join(lines, "\n")),
	)
}
