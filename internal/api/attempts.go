package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

// ListTaskAttempts returns the attempts of a task, oldest first.
func (c *Client) ListTaskAttempts(ctx context.Context, taskID uuid.UUID) ([]models.TaskAttempt, error) {
	q := url.Values{"task_id": {taskID.String()}}
	var attempts []models.TaskAttempt
	if err := c.get(ctx, "/api/task-attempts", q, &attempts); err != nil {
		return nil, fmt.Errorf("list task attempts: %w", err)
	}
	return attempts, nil
}

// GetTaskAttempt returns one attempt by id.
func (c *Client) GetTaskAttempt(ctx context.Context, id uuid.UUID) (*models.TaskAttempt, error) {
	var attempt models.TaskAttempt
	if err := c.get(ctx, "/api/task-attempts/"+id.String(), nil, &attempt); err != nil {
		return nil, fmt.Errorf("get task attempt: %w", err)
	}
	return &attempt, nil
}

// BranchStatus returns the server-computed git state of the attempt's
// branch.
func (c *Client) BranchStatus(ctx context.Context, attemptID uuid.UUID) (*models.BranchStatus, error) {
	var status models.BranchStatus
	if err := c.get(ctx, "/api/task-attempts/"+attemptID.String()+"/branch-status", nil, &status); err != nil {
		return nil, fmt.Errorf("branch status: %w", err)
	}
	return &status, nil
}

// CommitInfo returns the subject line of a commit in the attempt's
// worktree.
func (c *Client) CommitInfo(ctx context.Context, attemptID uuid.UUID, oid string) (*models.CommitInfo, error) {
	q := url.Values{"oid": {oid}}
	var info models.CommitInfo
	if err := c.get(ctx, "/api/task-attempts/"+attemptID.String()+"/commit-info", q, &info); err != nil {
		return nil, fmt.Errorf("commit info: %w", err)
	}
	return &info, nil
}

// CompareCommitToHead relates a commit to the attempt branch's HEAD.
func (c *Client) CompareCommitToHead(ctx context.Context, attemptID uuid.UUID, oid string) (*models.CommitComparison, error) {
	q := url.Values{"oid": {oid}}
	var cmp models.CommitComparison
	if err := c.get(ctx, "/api/task-attempts/"+attemptID.String()+"/commit-compare", q, &cmp); err != nil {
		return nil, fmt.Errorf("compare commit: %w", err)
	}
	return &cmp, nil
}

// FollowUp sends a follow-up prompt to the attempt's latest coding
// agent session. Returns the new execution process.
func (c *Client) FollowUp(ctx context.Context, attemptID uuid.UUID, req models.FollowUpRequest) (*models.ExecutionProcess, error) {
	var process models.ExecutionProcess
	if err := c.post(ctx, "/api/task-attempts/"+attemptID.String()+"/follow-up", req, &process); err != nil {
		return nil, fmt.Errorf("follow up: %w", err)
	}
	return &process, nil
}

// ReplaceProcess supersedes an execution process with a new
// coding-agent run, optionally resetting the worktree first.
func (c *Client) ReplaceProcess(ctx context.Context, attemptID uuid.UUID, req models.ReplaceProcessRequest) (*models.ExecutionProcess, error) {
	var process models.ExecutionProcess
	if err := c.post(ctx, "/api/task-attempts/"+attemptID.String()+"/replace-process", req, &process); err != nil {
		return nil, fmt.Errorf("replace process: %w", err)
	}
	return &process, nil
}

// StartDevServer starts the project's dev server inside the attempt's
// worktree.
func (c *Client) StartDevServer(ctx context.Context, attemptID uuid.UUID) (*models.ExecutionProcess, error) {
	var process models.ExecutionProcess
	if err := c.post(ctx, "/api/task-attempts/"+attemptID.String()+"/start-dev-server", nil, &process); err != nil {
		return nil, fmt.Errorf("start dev server: %w", err)
	}
	return &process, nil
}
