package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

// TaskForm is the add/edit task overlay form.
type TaskForm struct {
	mode   string // "add" or "edit"
	taskID string // For edit mode

	titleInput      textinput.Model
	descriptionArea textarea.Model
	status          models.TaskStatus

	focusIndex int // 0=title, 1=description, 2=status
	width      int
}

// NewTaskForm creates a new task form.
func NewTaskForm(mode string, width int) *TaskForm {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200
	ti.Width = width - 8

	da := textarea.New()
	da.Placeholder = "Description (optional)"
	da.SetWidth(width - 8)
	da.SetHeight(4)

	tf := &TaskForm{
		mode:            mode,
		titleInput:      ti,
		descriptionArea: da,
		status:          models.TaskStatusTodo,
		width:           width,
	}

	tf.titleInput.Focus()

	return tf
}

// PreFill fills the form with existing task data for editing.
func (tf *TaskForm) PreFill(task *models.Task) {
	tf.taskID = task.ID.String()
	tf.titleInput.SetValue(task.Title)
	if task.Description != nil {
		tf.descriptionArea.SetValue(*task.Description)
	}
	tf.status = task.Status
}

// fieldCount reports how many fields are tabbable. The status field
// only exists in edit mode.
func (tf *TaskForm) fieldCount() int {
	if tf.mode == "edit" {
		return 3
	}
	return 2
}

// FocusNext moves to the next field.
func (tf *TaskForm) FocusNext() {
	tf.blurAll()
	tf.focusIndex = (tf.focusIndex + 1) % tf.fieldCount()
	tf.focusCurrent()
}

// FocusPrev moves to the previous field.
func (tf *TaskForm) FocusPrev() {
	tf.blurAll()
	tf.focusIndex--
	if tf.focusIndex < 0 {
		tf.focusIndex = tf.fieldCount() - 1
	}
	tf.focusCurrent()
}

func (tf *TaskForm) blurAll() {
	tf.titleInput.Blur()
	tf.descriptionArea.Blur()
}

func (tf *TaskForm) focusCurrent() {
	switch tf.focusIndex {
	case 0:
		tf.titleInput.Focus()
	case 1:
		tf.descriptionArea.Focus()
	case 2:
		// Status field — no input to focus
	}
}

// CycleStatus advances the status through the board columns.
func (tf *TaskForm) CycleStatus() {
	for i, s := range models.BoardColumns {
		if s == tf.status {
			tf.status = models.BoardColumns[(i+1)%len(models.BoardColumns)]
			return
		}
	}
	tf.status = models.TaskStatusTodo
}

// Title returns the current title value.
func (tf *TaskForm) Title() string {
	return tf.titleInput.Value()
}

// Description returns the current description value.
func (tf *TaskForm) Description() string {
	return tf.descriptionArea.Value()
}

// Status returns the current status value.
func (tf *TaskForm) Status() models.TaskStatus {
	return tf.status
}

// FocusIndex returns the currently focused field index.
func (tf *TaskForm) FocusIndex() int {
	return tf.focusIndex
}

// TitleInput returns the title input model for update forwarding.
func (tf *TaskForm) TitleInput() *textinput.Model {
	return &tf.titleInput
}

// DescriptionArea returns the description textarea model for update
// forwarding.
func (tf *TaskForm) DescriptionArea() *textarea.Model {
	return &tf.descriptionArea
}

// View renders the task form.
func (tf *TaskForm) View() string {
	title := "Add Task"
	if tf.mode == "edit" {
		title = "Edit Task"
	}

	formWidth := tf.width
	if formWidth > 70 {
		formWidth = 70
	}
	if formWidth < 30 {
		formWidth = 30
	}

	parts := make([]string, 0, 12)
	parts = append(parts, overlayTitleStyle.Render(title))

	label := lipgloss.NewStyle().Bold(true).Render("Title:")
	parts = append(parts, label, tf.titleInput.View(), "")

	label = lipgloss.NewStyle().Bold(true).Render("Description:")
	parts = append(parts, label, tf.descriptionArea.View(), "")

	if tf.mode == "edit" {
		label = lipgloss.NewStyle().Bold(true).Render("Status:")
		statusDisplay := taskStyle(tf.status).Render(columnTitle(tf.status))
		if tf.focusIndex == 2 {
			statusDisplay += lipgloss.NewStyle().Foreground(colorDim).Render("  (Space/Enter to cycle)")
		}
		parts = append(parts, label+" "+statusDisplay, "")
	}

	footer := lipgloss.NewStyle().Foreground(colorDim).Render("Ctrl+s save  |  Tab next field  |  Esc cancel")
	parts = append(parts, footer)

	content := strings.Join(parts, "\n")
	return overlayStyle.Width(formWidth).Render(content)
}
