package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vibedeck-io/vibedeck/internal/models"
	"github.com/vibedeck-io/vibedeck/internal/retry"
)

// RetryForm is the retry confirmation overlay: a new prompt for the
// coding agent plus the git reset decision.
type RetryForm struct {
	target models.ExecutionProcess
	plan   retry.Plan

	promptArea      textarea.Model
	performGitReset bool
	forceWhenDirty  bool

	focusIndex int // 0=prompt, 1=reset toggle, 2=force toggle
	width      int
	submitting bool
}

// NewRetryForm creates the form for a confirmed-eligible target.
func NewRetryForm(target models.ExecutionProcess, plan retry.Plan, width int) *RetryForm {
	pa := textarea.New()
	pa.Placeholder = "New prompt for the coding agent"
	pa.SetWidth(width - 8)
	pa.SetHeight(5)
	pa.Focus()

	return &RetryForm{
		target:          target,
		plan:            plan,
		promptArea:      pa,
		performGitReset: plan.ResetOffered,
		width:           width,
	}
}

// FocusNext moves to the next field, skipping toggles the plan does
// not offer.
func (rf *RetryForm) FocusNext() {
	rf.promptArea.Blur()
	for {
		rf.focusIndex = (rf.focusIndex + 1) % 3
		if rf.focusIndex == 1 && !rf.plan.ResetOffered {
			continue
		}
		if rf.focusIndex == 2 && !rf.plan.ForceRequired {
			continue
		}
		break
	}
	if rf.focusIndex == 0 {
		rf.promptArea.Focus()
	}
}

// Toggle flips the toggle under focus.
func (rf *RetryForm) Toggle() {
	switch rf.focusIndex {
	case 1:
		rf.performGitReset = !rf.performGitReset
	case 2:
		rf.forceWhenDirty = !rf.forceWhenDirty
	}
}

// SetSubmitting marks the form as waiting on the backend.
func (rf *RetryForm) SetSubmitting() {
	rf.submitting = true
}

// Submitting reports whether the confirm call is underway.
func (rf *RetryForm) Submitting() bool {
	return rf.submitting
}

// Prompt returns the entered prompt.
func (rf *RetryForm) Prompt() string {
	return rf.promptArea.Value()
}

// PerformGitReset returns the reset decision. A force-required plan
// resets regardless of the offered toggle once forced.
func (rf *RetryForm) PerformGitReset() bool {
	if rf.plan.ForceRequired {
		return rf.forceWhenDirty
	}
	return rf.performGitReset
}

// ForceWhenDirty returns the force decision.
func (rf *RetryForm) ForceWhenDirty() bool {
	return rf.forceWhenDirty
}

// CanSubmit reports whether confirmation is allowed: a non-empty
// prompt and no confirmation already in flight. A dirty worktree does
// not block submission; the force toggle only decides whether the
// reset goes through.
func (rf *RetryForm) CanSubmit() bool {
	if strings.TrimSpace(rf.promptArea.Value()) == "" {
		return false
	}
	if rf.submitting {
		return false
	}
	return true
}

// FocusIndex returns the currently focused field index.
func (rf *RetryForm) FocusIndex() int {
	return rf.focusIndex
}

// PromptArea returns the prompt textarea model for update forwarding.
func (rf *RetryForm) PromptArea() *textarea.Model {
	return &rf.promptArea
}

// View renders the confirmation overlay.
func (rf *RetryForm) View() string {
	formWidth := rf.width
	if formWidth > 70 {
		formWidth = 70
	}
	if formWidth < 30 {
		formWidth = 30
	}

	parts := make([]string, 0, 16)
	parts = append(parts, overlayTitleStyle.Render("Retry Coding Agent"))

	parts = append(parts, rf.planSummary()...)
	parts = append(parts, "")

	label := lipgloss.NewStyle().Bold(true).Render("Prompt:")
	parts = append(parts, label, rf.promptArea.View(), "")

	if rf.plan.ResetOffered {
		parts = append(parts, rf.toggleLine(1, rf.performGitReset, "Reset worktree to the commit above"))
	}
	if rf.plan.ForceRequired {
		parts = append(parts, overlayWarnStyle.Render("Uncommitted changes will be lost."))
		parts = append(parts, rf.toggleLine(2, rf.forceWhenDirty, "Discard uncommitted changes and reset"))
	}
	parts = append(parts, "")

	footer := "Ctrl+s confirm  |  Tab next field  |  Esc cancel"
	if rf.submitting {
		footer = "Submitting..."
	}
	parts = append(parts, lipgloss.NewStyle().Foreground(colorDim).Render(footer))

	content := strings.Join(parts, "\n")
	return overlayStyle.Width(formWidth).Render(content)
}

func (rf *RetryForm) planSummary() []string {
	var lines []string

	if rf.plan.TargetOID == "" {
		lines = append(lines, overlayDimStyle.Render("No recorded commit for this run; the worktree is left as is."))
	} else {
		oid := rf.plan.TargetOID
		if len(oid) > 8 {
			oid = oid[:8]
		}
		lines = append(lines, fmt.Sprintf("Target commit: %s %s",
			lipgloss.NewStyle().Bold(true).Render(oid),
			overlayDimStyle.Render(rf.plan.TargetSubject)))

		if !rf.plan.ResetRequired {
			lines = append(lines, overlayDimStyle.Render("Worktree already at this commit."))
		} else if rf.plan.LinearHistory && rf.plan.CommitsReset > 0 {
			lines = append(lines, overlayWarnStyle.Render(
				fmt.Sprintf("Resetting discards %d commit(s).", rf.plan.CommitsReset)))
		}
	}

	if n := rf.plan.SupersededScripts + rf.plan.SupersededAgents; n > 0 {
		lines = append(lines, overlayDimStyle.Render(
			fmt.Sprintf("Replaces %d later run(s) in the attempt history.", n)))
	}

	return lines
}

func (rf *RetryForm) toggleLine(index int, on bool, label string) string {
	box := "[ ]"
	if on {
		box = "[x]"
	}
	line := box + " " + label
	if rf.focusIndex == index {
		return selectedItemStyle.Render(line)
	}
	return line
}
