package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

// ListTasks returns the tasks of a project.
func (c *Client) ListTasks(ctx context.Context, projectID uuid.UUID) ([]models.Task, error) {
	q := url.Values{"project_id": {projectID.String()}}
	var tasks []models.Task
	if err := c.get(ctx, "/api/tasks", q, &tasks); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns one task by id.
func (c *Client) GetTask(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := c.get(ctx, "/api/tasks/"+id.String(), nil, &task); err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &task, nil
}

// CreateTask creates a task in the todo column.
func (c *Client) CreateTask(ctx context.Context, req models.CreateTask) (*models.Task, error) {
	var task models.Task
	if err := c.post(ctx, "/api/tasks", req, &task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &task, nil
}

// UpdateTask applies a partial update to a task.
func (c *Client) UpdateTask(ctx context.Context, id uuid.UUID, req models.UpdateTask) (*models.Task, error) {
	var task models.Task
	if err := c.put(ctx, "/api/tasks/"+id.String(), req, &task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &task, nil
}
