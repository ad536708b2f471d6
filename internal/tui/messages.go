package tui

import (
	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/config"
	"github.com/vibedeck-io/vibedeck/internal/models"
	"github.com/vibedeck-io/vibedeck/internal/retry"
)

// ProjectLoadedMsg carries the project the board displays.
type ProjectLoadedMsg struct {
	Project *models.Project
}

// TasksLoadedMsg carries the task list for the board.
type TasksLoadedMsg struct {
	Tasks []models.Task
}

// TaskSavedMsg signals a task was created or updated.
type TaskSavedMsg struct {
	Task *models.Task
}

// AttemptsLoadedMsg carries the attempts of the selected task.
type AttemptsLoadedMsg struct {
	TaskID   uuid.UUID
	Attempts []models.TaskAttempt
}

// ProcessesLoadedMsg carries the execution processes of the selected
// attempt.
type ProcessesLoadedMsg struct {
	AttemptID uuid.UUID
	Processes []models.ExecutionProcess
}

// BranchStatusMsg carries the attempt branch's git state.
type BranchStatusMsg struct {
	AttemptID uuid.UUID
	Status    *models.BranchStatus
}

// LogEntryMsg carries one entry from the attempt log stream.
type LogEntryMsg struct {
	AttemptID uuid.UUID
	Entry     models.UnifiedLogEntry
}

// LogStreamEndedMsg signals the log stream closed (completion or error).
type LogStreamEndedMsg struct {
	AttemptID uuid.UUID
	Err       error
}

// RetryPlanMsg carries the confirmation summary for a pending retry.
type RetryPlanMsg struct {
	Target models.ExecutionProcess
	Plan   retry.Plan
}

// RetryFailedMsg signals the retry could not be started or submitted.
type RetryFailedMsg struct {
	Err error
}

// RetrySubmittedMsg signals the replace-process call succeeded.
type RetrySubmittedMsg struct {
	Process        *models.ExecutionProcess
	PerformedReset bool
}

// FollowUpSentMsg signals the follow-up call succeeded.
type FollowUpSentMsg struct {
	Process *models.ExecutionProcess
}

// DevServerStartedMsg signals the dev server process was spawned.
type DevServerStartedMsg struct {
	Process *models.ExecutionProcess
}

// ProcessStoppedMsg signals a stop request completed.
type ProcessStoppedMsg struct {
	ProcessID uuid.UUID
}

// SettingsReloadedMsg carries settings re-read after a file change.
type SettingsReloadedMsg struct {
	Settings *config.Settings
}

// ErrorMsg carries an error to display in the status bar.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// TickMsg is a periodic tick for polling processes while any runs.
type TickMsg struct{}

// spinnerTickMsg advances the running-process spinner.
type spinnerTickMsg struct{}
