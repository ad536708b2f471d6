package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"
)

// FollowUpForm is the overlay for sending a follow-up prompt to the
// attempt's latest coding agent.
type FollowUpForm struct {
	promptArea textarea.Model
	width      int
	submitting bool
}

// NewFollowUpForm creates the form.
func NewFollowUpForm(width int) *FollowUpForm {
	pa := textarea.New()
	pa.Placeholder = "Follow-up instructions"
	pa.SetWidth(width - 8)
	pa.SetHeight(5)
	pa.Focus()

	return &FollowUpForm{promptArea: pa, width: width}
}

// Prompt returns the entered prompt.
func (ff *FollowUpForm) Prompt() string {
	return ff.promptArea.Value()
}

// CanSubmit reports whether the prompt can be sent.
func (ff *FollowUpForm) CanSubmit() bool {
	return strings.TrimSpace(ff.promptArea.Value()) != "" && !ff.submitting
}

// SetSubmitting marks the form as waiting on the backend.
func (ff *FollowUpForm) SetSubmitting() {
	ff.submitting = true
}

// PromptArea returns the textarea model for update forwarding.
func (ff *FollowUpForm) PromptArea() *textarea.Model {
	return &ff.promptArea
}

// View renders the overlay.
func (ff *FollowUpForm) View() string {
	formWidth := ff.width
	if formWidth > 70 {
		formWidth = 70
	}
	if formWidth < 30 {
		formWidth = 30
	}

	parts := []string{
		overlayTitleStyle.Render("Follow Up"),
		lipgloss.NewStyle().Bold(true).Render("Prompt:"),
		ff.promptArea.View(),
		"",
	}

	footer := "Ctrl+s send  |  Esc cancel"
	if ff.submitting {
		footer = "Sending..."
	}
	parts = append(parts, lipgloss.NewStyle().Foreground(colorDim).Render(footer))

	return overlayStyle.Width(formWidth).Render(strings.Join(parts, "\n"))
}
