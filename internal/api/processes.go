package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

// ListExecutionProcesses returns every execution process of an
// attempt in start order, including dropped ones.
func (c *Client) ListExecutionProcesses(ctx context.Context, attemptID uuid.UUID) ([]models.ExecutionProcess, error) {
	q := url.Values{"task_attempt_id": {attemptID.String()}}
	var processes []models.ExecutionProcess
	if err := c.get(ctx, "/api/execution-processes", q, &processes); err != nil {
		return nil, fmt.Errorf("list execution processes: %w", err)
	}
	return processes, nil
}

// GetExecutionProcess returns one execution process by id.
func (c *Client) GetExecutionProcess(ctx context.Context, id uuid.UUID) (*models.ExecutionProcess, error) {
	var process models.ExecutionProcess
	if err := c.get(ctx, "/api/execution-processes/"+id.String(), nil, &process); err != nil {
		return nil, fmt.Errorf("get execution process: %w", err)
	}
	return &process, nil
}

// StopExecutionProcess asks the backend to kill a running process.
func (c *Client) StopExecutionProcess(ctx context.Context, id uuid.UUID) error {
	if err := c.post(ctx, "/api/execution-processes/"+id.String()+"/stop", nil, nil); err != nil {
		return fmt.Errorf("stop execution process: %w", err)
	}
	return nil
}
