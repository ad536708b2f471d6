package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Global",
		keys: []helpKey{
			{"q / Ctrl+c", "Quit"},
			{"?", "Toggle help"},
			{"Tab", "Switch panel focus"},
			{"1/2", "Switch right panel tab"},
			{"R", "Refresh"},
		},
	},
	{
		title: "Board",
		keys: []helpKey{
			{"j/k ↑/↓", "Navigate tasks"},
			{"h/l ←/→", "Switch column"},
			{"n", "New task"},
			{"e", "Edit task"},
			{"Enter", "Open latest attempt"},
		},
	},
	{
		title: "Logs",
		keys: []helpKey{
			{"j/k ↑/↓", "Navigate process groups"},
			{"Space", "Collapse / expand group"},
			{"PgUp/PgDn", "Scroll"},
			{"r", "Retry selected run"},
			{"f", "Follow up"},
			{"d", "Start dev server"},
			{"Esc", "Back to board"},
		},
	},
	{
		title: "Processes",
		keys: []helpKey{
			{"j/k ↑/↓", "Navigate processes"},
			{"x", "Stop selected process"},
		},
	},
	{
		title: "Overlays",
		keys: []helpKey{
			{"Ctrl+s", "Save / confirm"},
			{"Esc", "Cancel / close"},
			{"Tab", "Next field"},
		},
	},
}

// renderHelp renders the help overlay content.
func renderHelp(width int) string {
	maxWidth := 60
	if width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	title := overlayTitleStyle.Render("Keyboard Shortcuts")
	sections := make([]string, 0, len(helpSections)*4+3)
	sections = append(sections, title)

	for _, sec := range helpSections {
		header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title)
		sections = append(sections, "", header)

		for _, k := range sec.keys {
			keyCol := lipgloss.NewStyle().
				Width(14).
				Foreground(colorWhite).
				Bold(true).
				Render(k.key)
			descCol := lipgloss.NewStyle().
				Foreground(colorDim).
				Render(k.desc)
			sections = append(sections, "  "+keyCol+descCol)
		}
	}

	sections = append(sections, "", lipgloss.NewStyle().Foreground(colorDim).Render("Press Esc or ? to close"))

	content := strings.Join(sections, "\n")
	return overlayStyle.Width(maxWidth).Render(content)
}
