package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/logs"
	"github.com/vibedeck-io/vibedeck/internal/models"
)

// LogsPanel displays the selected attempt's log history as
// collapsible per-process groups.
type LogsPanel struct {
	state     *logs.State
	processes []models.ExecutionProcess
	entries   []models.UnifiedLogEntry
	groups    []logs.Group

	cursor       int // index into groups
	headerLines  []int
	viewport     viewport.Model
	width        int
	height       int
	spinnerFrame int
	loaded       bool
}

var logSpinnerFrames = []string{"●", "○"}

// NewLogsPanel creates an empty logs panel.
func NewLogsPanel() *LogsPanel {
	vp := viewport.New(80, 24)
	return &LogsPanel{
		state:    logs.NewState(),
		viewport: vp,
	}
}

// SetSize updates dimensions.
func (l *LogsPanel) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.viewport.Width = width
	l.viewport.Height = height
	l.refresh()
}

// Reset clears entries and collapse state for a newly selected attempt.
func (l *LogsPanel) Reset() {
	l.state.ResetAttempt()
	l.processes = nil
	l.entries = nil
	l.groups = nil
	l.cursor = 0
	l.loaded = false
	l.refresh()
	l.viewport.GotoTop()
}

// SetProcesses updates the process snapshot and applies the automatic
// collapse rules before regrouping.
func (l *LogsPanel) SetProcesses(processes []models.ExecutionProcess) {
	l.processes = processes
	l.state.Apply(processes)
	l.loaded = true
	l.refresh()
}

// Append adds one streamed entry.
func (l *LogsPanel) Append(entry models.UnifiedLogEntry) {
	atBottom := l.viewport.AtBottom()
	l.entries = append(l.entries, entry)
	l.refresh()
	if atBottom {
		l.viewport.GotoBottom()
	}
}

// SetEntries replaces the full entry history.
func (l *LogsPanel) SetEntries(entries []models.UnifiedLogEntry) {
	l.entries = entries
	l.refresh()
	l.viewport.GotoBottom()
}

// SelectedProcess returns the process of the group under the cursor.
func (l *LogsPanel) SelectedProcess() *models.ExecutionProcess {
	if l.cursor < 0 || l.cursor >= len(l.groups) {
		return nil
	}
	p := l.groups[l.cursor].Process
	return &p
}

// ToggleSelected flips the user collapse state of the group under the
// cursor.
func (l *LogsPanel) ToggleSelected() {
	if p := l.SelectedProcess(); p != nil {
		l.state.ToggleUser(p.ID)
		l.refresh()
	}
}

// MoveUp moves the cursor to the previous group.
func (l *LogsPanel) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
		l.scrollToCursor()
		l.refresh()
	}
}

// MoveDown moves the cursor to the next group.
func (l *LogsPanel) MoveDown() {
	if l.cursor < len(l.groups)-1 {
		l.cursor++
		l.scrollToCursor()
		l.refresh()
	}
}

// PageUp scrolls the viewport up half a page.
func (l *LogsPanel) PageUp() { l.viewport.HalfViewUp() }

// PageDown scrolls the viewport down half a page.
func (l *LogsPanel) PageDown() { l.viewport.HalfViewDown() }

// Tick advances the running-process spinner.
func (l *LogsPanel) Tick() {
	l.spinnerFrame = (l.spinnerFrame + 1) % len(logSpinnerFrames)
	l.refresh()
}

// Running reports whether any non-dropped process is still running.
func (l *LogsPanel) Running() bool {
	for i := range l.processes {
		if !l.processes[i].Dropped && l.processes[i].Running() {
			return true
		}
	}
	return false
}

func (l *LogsPanel) scrollToCursor() {
	if l.cursor < 0 || l.cursor >= len(l.headerLines) {
		return
	}
	line := l.headerLines[l.cursor]
	if line < l.viewport.YOffset {
		l.viewport.SetYOffset(line)
	}
	if line >= l.viewport.YOffset+l.viewport.Height {
		l.viewport.SetYOffset(line - l.viewport.Height + 1)
	}
}

func (l *LogsPanel) refresh() {
	l.groups = logs.Groups(l.processes, l.entries)
	if l.cursor >= len(l.groups) {
		l.cursor = len(l.groups) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}

	var lines []string
	l.headerLines = l.headerLines[:0]
	for i, g := range l.groups {
		l.headerLines = append(l.headerLines, len(lines))
		lines = append(lines, l.renderGroupHeader(i, g))
		if l.state.Collapsed(g.Process.ID) {
			continue
		}
		for _, e := range g.Entries {
			lines = append(lines, l.renderEntry(e))
		}
	}
	l.viewport.SetContent(strings.Join(lines, "\n"))
}

func (l *LogsPanel) renderGroupHeader(i int, g logs.Group) string {
	marker := "▼"
	collapsed := l.state.Collapsed(g.Process.ID)
	if collapsed {
		marker = "▶"
	}

	badge := processBadge(&g.Process, l.spinnerFrame)
	label := g.Process.RunReason.Label()
	count := fmt.Sprintf("(%d lines)", len(g.Entries))

	line := fmt.Sprintf("%s %s %s %s", marker, badge, label, groupCollapsedStyle.Render(count))
	line = ansi.Truncate(line, l.width-2, "…")

	style := groupHeaderStyle
	if collapsed {
		style = groupCollapsedStyle
	}
	line = style.Render(line)
	if i == l.cursor {
		line = selectedItemStyle.Width(l.width).Render(ansi.Strip(line))
	}
	return line
}

func (l *LogsPanel) renderEntry(e models.UnifiedLogEntry) string {
	var style lipgloss.Style
	switch e.Channel {
	case models.ChannelStderr:
		style = logStderrStyle
	case models.ChannelNormalized:
		style = logNormalizedStyle
	default:
		style = logStdoutStyle
	}
	content := strings.TrimRight(e.Content, "\n")
	content = ansi.Truncate(content, l.width-4, "…")
	return "  " + style.Render(content)
}

func processBadge(p *models.ExecutionProcess, spinnerFrame int) string {
	if p.Dropped {
		return droppedStyle.Render("[dropped]")
	}
	switch p.Status {
	case models.ProcessRunning:
		frame := logSpinnerFrames[spinnerFrame%len(logSpinnerFrames)]
		return statusRunningStyle.Render("[" + frame + "]")
	case models.ProcessCompleted:
		return statusCompletedStyle.Render("[✓]")
	case models.ProcessFailed:
		return statusFailedStyle.Render("[✗]")
	case models.ProcessKilled:
		return statusKilledStyle.Render("[k]")
	}
	return "[ ]"
}

// CollapsedIDs returns the ids currently collapsed, for tests and the
// status bar summary.
func (l *LogsPanel) CollapsedIDs() []uuid.UUID {
	var ids []uuid.UUID
	for _, g := range l.groups {
		if l.state.Collapsed(g.Process.ID) {
			ids = append(ids, g.Process.ID)
		}
	}
	return ids
}

// View renders the panel.
func (l *LogsPanel) View() string {
	if !l.loaded {
		return lipgloss.NewStyle().Foreground(colorDim).Width(l.width).Align(lipgloss.Center).
			Render("\nLoading logs...")
	}
	if len(l.groups) == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Width(l.width).Align(lipgloss.Center).
			Render("\nNo output yet.")
	}
	return l.viewport.View()
}
