package models

import (
	"time"

	"github.com/google/uuid"
)

// ProcessStatus represents the lifecycle state of an execution process.
type ProcessStatus string

const (
	ProcessRunning   ProcessStatus = "running"
	ProcessCompleted ProcessStatus = "completed"
	ProcessFailed    ProcessStatus = "failed"
	ProcessKilled    ProcessStatus = "killed"
)

// Terminal reports whether the process has stopped for good.
func (s ProcessStatus) Terminal() bool {
	return s == ProcessCompleted || s == ProcessFailed || s == ProcessKilled
}

// RunReason is the category/purpose of an execution process within an
// attempt.
type RunReason string

const (
	RunReasonSetupScript   RunReason = "setupscript"
	RunReasonCleanupScript RunReason = "cleanupscript"
	RunReasonCodingAgent   RunReason = "codingagent"
	RunReasonDevServer     RunReason = "devserver"
)

// Script reports whether the reason is a setup or cleanup script run.
func (r RunReason) Script() bool {
	return r == RunReasonSetupScript || r == RunReasonCleanupScript
}

// Label returns a human-readable name for display.
func (r RunReason) Label() string {
	switch r {
	case RunReasonSetupScript:
		return "Setup script"
	case RunReasonCleanupScript:
		return "Cleanup script"
	case RunReasonCodingAgent:
		return "Coding agent"
	case RunReasonDevServer:
		return "Dev server"
	default:
		return string(r)
	}
}

// ExecutionProcess identifies a single run (setup script, coding-agent
// turn, dev server, cleanup script) within a task attempt.
type ExecutionProcess struct {
	ID            uuid.UUID      `json:"id"`
	TaskAttemptID uuid.UUID      `json:"task_attempt_id"`
	RunReason     RunReason      `json:"run_reason"`
	Action        ExecutorAction `json:"executor_action"`
	// Git HEAD commit OID captured before the process starts.
	BeforeHeadCommit *string `json:"before_head_commit,omitempty"`
	// Git HEAD commit OID captured after the process ends.
	AfterHeadCommit *string       `json:"after_head_commit,omitempty"`
	Status          ProcessStatus `json:"status"`
	ExitCode        *int64        `json:"exit_code,omitempty"`
	// Dropped processes are excluded from the current history view
	// (after a restore/trim). Hidden from logs; still listed in the
	// Processes view.
	Dropped     bool       `json:"dropped"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Running reports whether the process is still executing.
func (p *ExecutionProcess) Running() bool {
	return p.Status == ProcessRunning
}
