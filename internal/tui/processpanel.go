package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

// ProcessPanel lists every execution process of the attempt, dropped
// ones included.
type ProcessPanel struct {
	processes    []models.ExecutionProcess
	cursor       int
	scrollOffset int
	width        int
	height       int
	spinnerFrame int
}

// NewProcessPanel creates an empty process panel.
func NewProcessPanel() *ProcessPanel {
	return &ProcessPanel{}
}

// SetSize updates dimensions.
func (p *ProcessPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetProcesses replaces the listing and keeps the cursor in bounds.
func (p *ProcessPanel) SetProcesses(processes []models.ExecutionProcess) {
	p.processes = processes
	if p.cursor >= len(processes) {
		p.cursor = len(processes) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// Selected returns the process under the cursor, or nil.
func (p *ProcessPanel) Selected() *models.ExecutionProcess {
	if p.cursor < 0 || p.cursor >= len(p.processes) {
		return nil
	}
	return &p.processes[p.cursor]
}

// MoveUp moves the cursor up.
func (p *ProcessPanel) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
		p.ensureVisible()
	}
}

// MoveDown moves the cursor down.
func (p *ProcessPanel) MoveDown() {
	if p.cursor < len(p.processes)-1 {
		p.cursor++
		p.ensureVisible()
	}
}

// Tick advances the running-process spinner.
func (p *ProcessPanel) Tick() {
	p.spinnerFrame = (p.spinnerFrame + 1) % len(logSpinnerFrames)
}

func (p *ProcessPanel) ensureVisible() {
	if p.cursor < p.scrollOffset {
		p.scrollOffset = p.cursor
	}
	if p.height > 0 && p.cursor >= p.scrollOffset+p.height {
		p.scrollOffset = p.cursor - p.height + 1
	}
}

// View renders the listing.
func (p *ProcessPanel) View() string {
	if len(p.processes) == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Width(p.width).Align(lipgloss.Center).
			Render("\nNo processes yet.")
	}

	var lines []string
	end := p.scrollOffset + p.height
	if end > len(p.processes) || p.height <= 0 {
		end = len(p.processes)
	}

	for i := p.scrollOffset; i < end; i++ {
		proc := p.processes[i]
		line := p.formatLine(&proc)
		if i == p.cursor {
			line = selectedItemStyle.Width(p.width).Render(ansi.Strip(line))
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	if p.scrollOffset > 0 {
		lines = append([]string{lipgloss.NewStyle().Foreground(colorDim).Render("  ▲ more")}, lines...)
	}
	if end < len(p.processes) {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorDim).Render("  ▼ more"))
	}

	return strings.Join(lines, "\n")
}

func (p *ProcessPanel) formatLine(proc *models.ExecutionProcess) string {
	badge := processBadge(proc, p.spinnerFrame)
	label := proc.RunReason.Label()
	if proc.Dropped {
		label = droppedStyle.Render(label)
	}

	started := proc.StartedAt.Format("15:04:05")
	detail := lipgloss.NewStyle().Foreground(colorDim).Render(started)
	if proc.ExitCode != nil {
		detail += lipgloss.NewStyle().Foreground(colorDim).Render(fmt.Sprintf(" exit %d", *proc.ExitCode))
	}

	line := fmt.Sprintf("%s %s %s", badge, label, detail)
	return ansi.Truncate(line, p.width-2, "…")
}
