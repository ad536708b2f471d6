// Package models contains client-side mirrors of the backend entities.
// The backend owns these shapes; the structs here only decode what the
// client reads and encode what it sends.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a project registered with the backend.
type Project struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	GitRepoPath   string    `json:"git_repo_path"`
	SetupScript   *string   `json:"setup_script,omitempty"`
	DevScript     *string   `json:"dev_script,omitempty"`
	CleanupScript *string   `json:"cleanup_script,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
