package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

// Board is the kanban board component for the left panel. Tasks are
// bucketed into one column per status and the cursor moves within and
// across columns.
type Board struct {
	columns      map[models.TaskStatus][]models.Task
	col          int
	row          int
	scrollOffset int
	height       int
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{columns: map[models.TaskStatus][]models.Task{}}
}

// SetTasks replaces the board contents and keeps the cursor in bounds.
func (b *Board) SetTasks(tasks []models.Task) {
	columns := map[models.TaskStatus][]models.Task{}
	for _, t := range tasks {
		columns[t.Status] = append(columns[t.Status], t)
	}
	// Newest first within a column, matching board ordering on the web.
	for _, col := range columns {
		sort.Slice(col, func(i, j int) bool {
			return col[i].CreatedAt.After(col[j].CreatedAt)
		})
	}
	b.columns = columns
	b.clampCursor()
}

// SetHeight sets the visible height in rows.
func (b *Board) SetHeight(h int) {
	b.height = h
}

// SelectedTask returns the task under the cursor, or nil.
func (b *Board) SelectedTask() *models.Task {
	col := b.currentColumn()
	if b.row < 0 || b.row >= len(col) {
		return nil
	}
	t := col[b.row]
	return &t
}

func (b *Board) currentColumn() []models.Task {
	if b.col < 0 || b.col >= len(models.BoardColumns) {
		return nil
	}
	return b.columns[models.BoardColumns[b.col]]
}

// MoveUp moves the cursor up within the current column.
func (b *Board) MoveUp() {
	b.row--
	b.clampCursor()
	b.ensureVisible()
}

// MoveDown moves the cursor down within the current column.
func (b *Board) MoveDown() {
	b.row++
	b.clampCursor()
	b.ensureVisible()
}

// MoveLeft moves the cursor to the previous column.
func (b *Board) MoveLeft() {
	if b.col > 0 {
		b.col--
	}
	b.clampCursor()
	b.ensureVisible()
}

// MoveRight moves the cursor to the next column.
func (b *Board) MoveRight() {
	if b.col < len(models.BoardColumns)-1 {
		b.col++
	}
	b.clampCursor()
	b.ensureVisible()
}

func (b *Board) clampCursor() {
	col := b.currentColumn()
	if b.row >= len(col) {
		b.row = len(col) - 1
	}
	if b.row < 0 {
		b.row = 0
	}
}

func (b *Board) ensureVisible() {
	if b.height <= 0 {
		return
	}
	// One row is reserved for the column header.
	visible := b.height - 1
	if visible < 1 {
		visible = 1
	}
	if b.row < b.scrollOffset {
		b.scrollOffset = b.row
	}
	if b.row >= b.scrollOffset+visible {
		b.scrollOffset = b.row - visible + 1
	}
}

// View renders the board across the given width.
func (b *Board) View(width int) string {
	total := 0
	for _, col := range b.columns {
		total += len(col)
	}
	if total == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Render("No tasks. Press 'n' to add one.")
	}

	colWidth := width/len(models.BoardColumns) - 1
	if colWidth < 8 {
		colWidth = 8
	}

	var rendered []string
	for ci, status := range models.BoardColumns {
		rendered = append(rendered, b.renderColumn(ci, status, colWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (b *Board) renderColumn(ci int, status models.TaskStatus, width int) string {
	tasks := b.columns[status]

	header := fmt.Sprintf("%s (%d)", columnTitle(status), len(tasks))
	header = ansi.Truncate(header, width, "…")
	lines := []string{columnHeaderStyle.Width(width).Render(header)}

	offset := 0
	visible := len(tasks)
	if b.height > 0 {
		visible = b.height - 1
		if visible < 1 {
			visible = 1
		}
		if ci == b.col {
			offset = b.scrollOffset
		}
	}
	end := offset + visible
	if end > len(tasks) {
		end = len(tasks)
	}

	for i := offset; i < end; i++ {
		t := tasks[i]
		title := ansi.Truncate(t.Title, width-1, "…")
		if ci == b.col && i == b.row {
			lines = append(lines, selectedItemStyle.Width(width).Render(title))
			continue
		}
		lines = append(lines, taskStyle(status).Render(title))
	}
	if end < len(tasks) {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorDim).Render("▼ more"))
	}

	return lipgloss.NewStyle().Width(width).MarginRight(1).Render(strings.Join(lines, "\n"))
}

func columnTitle(status models.TaskStatus) string {
	switch status {
	case models.TaskStatusTodo:
		return "To Do"
	case models.TaskStatusInProgress:
		return "In Progress"
	case models.TaskStatusInReview:
		return "In Review"
	case models.TaskStatusDone:
		return "Done"
	case models.TaskStatusCancelled:
		return "Cancelled"
	}
	return string(status)
}

func taskStyle(status models.TaskStatus) lipgloss.Style {
	switch status {
	case models.TaskStatusInProgress:
		return taskInProgressStyle
	case models.TaskStatusInReview:
		return taskInReviewStyle
	case models.TaskStatusDone:
		return taskDoneStyle
	case models.TaskStatusCancelled:
		return taskCancelledStyle
	default:
		return taskTodoStyle
	}
}
