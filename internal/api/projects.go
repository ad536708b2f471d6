package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

// ListProjects returns all projects registered with the backend.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.get(ctx, "/api/projects", nil, &projects); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// GetProject returns one project by id.
func (c *Client) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := c.get(ctx, "/api/projects/"+id.String(), nil, &project); err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &project, nil
}
