package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	overlayNone = iota
	overlayHelp
	overlayAddTask
	overlayEditTask
	overlayRetry
	overlayFollowUp
)

// renderOverlay dims the base view and paints the overlay box centered
// on top of it.
func renderOverlay(base, box string, width, height int) string {
	rows := strings.Split(base, "\n")
	for i := range rows {
		rows[i] = overlayDimStyle.Render(rows[i])
	}

	boxRows := strings.Split(box, "\n")
	boxWidth := 0
	for _, r := range boxRows {
		if w := lipgloss.Width(r); w > boxWidth {
			boxWidth = w
		}
	}
	top := max(1, (height-len(boxRows))/2)
	left := max(1, (width-boxWidth)/2)

	for i, boxRow := range boxRows {
		y := top + i
		if y >= len(rows) {
			break
		}
		rows[y] = spliceRow(rows[y], boxRow, left)
	}
	return strings.Join(rows, "\n")
}

// spliceRow replaces the columns of bg starting at left with row,
// keeping the surrounding background intact. Slicing is ANSI-aware so
// styled background cells survive on both sides; the resets keep the
// dim background style from bleeding into the overlay.
func spliceRow(bg, row string, left int) string {
	head := ansi.Truncate(bg, left, "")

	tail := ""
	end := left + lipgloss.Width(row)
	if bgWidth := lipgloss.Width(bg); end < bgWidth {
		tail = ansi.Cut(bg, end, bgWidth)
	}
	return head + "\033[0m" + row + "\033[0m" + tail
}
