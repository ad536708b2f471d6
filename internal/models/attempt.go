package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskAttempt is one execution run of a coding agent against a task,
// associated with a git worktree/branch managed by the backend.
type TaskAttempt struct {
	ID         uuid.UUID `json:"id"`
	TaskID     uuid.UUID `json:"task_id"`
	Executor   string    `json:"executor"`
	Branch     string    `json:"branch"`
	BaseBranch string    `json:"base_branch"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FollowUpRequest asks the backend to send a follow-up prompt to the
// attempt's latest coding agent session.
type FollowUpRequest struct {
	Prompt  string  `json:"prompt"`
	Variant *string `json:"variant,omitempty"`
}

// ReplaceProcessRequest asks the backend to supersede an execution
// process with a new coding-agent run, optionally resetting the
// worktree to the commit recorded before that process.
type ReplaceProcessRequest struct {
	ProcessID       uuid.UUID `json:"process_id"`
	Prompt          string    `json:"prompt"`
	Variant         *string   `json:"variant,omitempty"`
	PerformGitReset bool      `json:"perform_git_reset"`
	ForceWhenDirty  bool      `json:"force_when_dirty"`
}
