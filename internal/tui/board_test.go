package tui

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

func boardTask(title string, status models.TaskStatus, age time.Duration) models.Task {
	return models.Task{
		ID:        uuid.New(),
		Title:     title,
		Status:    status,
		CreatedAt: time.Now().Add(-age),
	}
}

func TestBoardSelectionFollowsColumns(t *testing.T) {
	b := NewBoard()
	b.SetHeight(10)
	b.SetTasks([]models.Task{
		boardTask("old todo", models.TaskStatusTodo, 2*time.Hour),
		boardTask("new todo", models.TaskStatusTodo, time.Minute),
		boardTask("reviewing", models.TaskStatusInReview, time.Hour),
	})

	sel := b.SelectedTask()
	if sel == nil || sel.Title != "new todo" {
		t.Fatalf("expected newest todo selected first, got %+v", sel)
	}

	b.MoveDown()
	if sel = b.SelectedTask(); sel == nil || sel.Title != "old todo" {
		t.Fatalf("expected older todo after MoveDown, got %+v", sel)
	}

	// In Progress column is empty; cursor lands on no task there.
	b.MoveRight()
	if sel = b.SelectedTask(); sel != nil {
		t.Fatalf("expected no selection in empty column, got %+v", sel)
	}

	b.MoveRight()
	if sel = b.SelectedTask(); sel == nil || sel.Title != "reviewing" {
		t.Fatalf("expected review task, got %+v", sel)
	}
}

func TestBoardCursorClampsOnShrink(t *testing.T) {
	b := NewBoard()
	b.SetHeight(10)
	b.SetTasks([]models.Task{
		boardTask("a", models.TaskStatusTodo, time.Hour),
		boardTask("b", models.TaskStatusTodo, 2*time.Hour),
	})
	b.MoveDown()

	b.SetTasks([]models.Task{
		boardTask("only", models.TaskStatusTodo, time.Hour),
	})
	sel := b.SelectedTask()
	if sel == nil || sel.Title != "only" {
		t.Fatalf("expected cursor clamped to remaining task, got %+v", sel)
	}
}
