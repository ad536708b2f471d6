package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

func renderHeader(project *models.Project, attempt *models.TaskAttempt, branch *models.BranchStatus, rightTab int, running bool, width int) string {
	projectName := "Vibedeck"
	if project != nil {
		projectName = project.Name
	}

	dot := lipgloss.NewStyle().Foreground(colorPurple).Render("●")
	name := lipgloss.NewStyle().Bold(true).Render(projectName)

	left := fmt.Sprintf(" %s %s", dot, name)
	if attempt != nil {
		branchText := attempt.Branch + branchSummary(branch)
		left += lipgloss.NewStyle().Foreground(colorDim).Render(" " + branchText)
	}

	rightTabs := renderTabs([]string{"Logs", "Processes"}, rightTab)
	badge := renderRunBadge(running)
	right := fmt.Sprintf("%s  %s ", rightTabs, badge)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// branchSummary condenses the working tree state into a short suffix
// for the header, e.g. "*" for uncommitted changes and ahead/behind
// counts relative to the base branch.
func branchSummary(status *models.BranchStatus) string {
	if status == nil {
		return ""
	}
	var b strings.Builder
	if status.HasUncommittedChanges {
		b.WriteString("*")
	}
	if status.CommitsAhead > 0 {
		fmt.Fprintf(&b, " ↑%d", status.CommitsAhead)
	}
	if status.CommitsBehind > 0 {
		fmt.Fprintf(&b, " ↓%d", status.CommitsBehind)
	}
	return b.String()
}

func renderTabs(tabs []string, active int) string {
	var parts []string
	for i, tab := range tabs {
		if i == active {
			parts = append(parts, activeTabStyle.Render(tab))
		} else {
			parts = append(parts, inactiveTabStyle.Render(tab))
		}
	}
	return strings.Join(parts, tabSepStyle.Render(" | "))
}

func renderRunBadge(running bool) string {
	if running {
		return statusRunningStyle.Render("● Running")
	}
	return lipgloss.NewStyle().Foreground(colorDim).Render("● Idle")
}
