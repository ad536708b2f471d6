package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the kanban column a task sits in.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "inprogress"
	TaskStatusInReview   TaskStatus = "inreview"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// BoardColumns is the display order of the kanban board.
var BoardColumns = []TaskStatus{
	TaskStatusTodo,
	TaskStatusInProgress,
	TaskStatusInReview,
	TaskStatusDone,
	TaskStatusCancelled,
}

// Task represents a task within a project.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	ProjectID   uuid.UUID  `json:"project_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateTask is the payload for creating a task.
type CreateTask struct {
	ProjectID   uuid.UUID `json:"project_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
}

// UpdateTask is the payload for updating a task. Nil fields are
// left unchanged by the backend.
type UpdateTask struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      *TaskStatus `json:"status,omitempty"`
}

// Open reports whether the task still accepts new attempts.
func (t *Task) Open() bool {
	return t.Status != TaskStatusDone && t.Status != TaskStatusCancelled
}
