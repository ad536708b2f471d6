package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// confirmMode values.
const (
	confirmNone = 0
	confirmQuit = 1
	confirmStop = 2
)

func renderStatusBar(m *Model, width int) string {
	if m.confirmMode == confirmQuit {
		return renderConfirmBar("Processes still running. Quit? (y/n)", width)
	}
	if m.confirmMode == confirmStop {
		return renderConfirmBar("Stop this process? (y/n)", width)
	}

	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	left := " " + getKeyHints(m)

	right := lipgloss.NewStyle().Foreground(colorDim).Render(m.serverURL) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	if m.activeOverlay != overlayNone {
		return keyHint("Ctrl+s", "save") + "  " + keyHint("Esc", "cancel")
	}

	base := keyHint("q", "quit") + "  " + keyHint("?", "help") + "  " + keyHint("Tab", "switch")

	if m.focusedPanel == 0 {
		return base + "  " + keyHint("h/l", "column") + "  " + keyHint("n", "new") + "  " +
			keyHint("e", "edit") + "  " + keyHint("Enter", "open attempt")
	}

	switch m.rightTab {
	case rightTabLogs:
		hints := base + "  " + keyHint("Space", "collapse") + "  " + keyHint("r", "retry") + "  " +
			keyHint("f", "follow up") + "  " + keyHint("d", "dev server")
		return hints
	case rightTabProcesses:
		return base + "  " + keyHint("j/k", "navigate") + "  " + keyHint("x", "stop")
	}

	return base
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderConfirmBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorYellow).
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
		Width(width).
		Render(" " + msg)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}
