package logs

import (
	"testing"

	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

func TestToggleUserRoundTrip(t *testing.T) {
	s := NewState()
	id := uuid.New()

	if s.Collapsed(id) {
		t.Fatal("fresh state should have no collapsed processes")
	}

	s.ToggleUser(id)
	if !s.UserCollapsed(id) {
		t.Error("first toggle should user-collapse")
	}

	s.ToggleUser(id)
	if s.Collapsed(id) {
		t.Error("second toggle should fully expand")
	}
}

func TestToggleUserClearsAutoCollapse(t *testing.T) {
	s := NewState()
	id := uuid.New()

	s.AutoCollapse(id)
	s.ToggleUser(id)
	if s.Collapsed(id) {
		t.Fatal("toggling an auto-collapsed process should expand it")
	}
	if s.AutoCollapsed(id) {
		t.Error("auto set should be cleared by the toggle")
	}
}

func TestCollapseSetsStayDisjoint(t *testing.T) {
	s := NewState()
	id := uuid.New()

	s.ToggleUser(id) // user-collapse
	s.AutoCollapse(id)
	if s.AutoCollapsed(id) {
		t.Error("AutoCollapse must not touch a user-collapsed process")
	}

	s2 := NewState()
	s2.AutoCollapse(id)
	s2.ToggleUser(id) // expand
	s2.ToggleUser(id) // user-collapse
	if s2.AutoCollapsed(id) {
		t.Error("user-collapsing must remove the id from the auto set")
	}
}

func TestAutoExpandLeavesUserCollapse(t *testing.T) {
	s := NewState()
	id := uuid.New()

	s.ToggleUser(id)
	s.AutoExpand(id)
	if !s.UserCollapsed(id) {
		t.Error("AutoExpand must not undo a user collapse")
	}
}

func TestResetAttemptClearsEverything(t *testing.T) {
	s := NewState()
	a, b := uuid.New(), uuid.New()

	s.ToggleUser(a)
	s.AutoCollapse(b)
	s.UpdateStatus(a, models.ProcessRunning)
	s.UpdateStatus(b, models.ProcessCompleted)
	s.Apply([]models.ExecutionProcess{agentProcess(uuid.New())})

	s.ResetAttempt()

	for _, id := range []uuid.UUID{a, b} {
		if s.UserCollapsed(id) || s.AutoCollapsed(id) {
			t.Errorf("process %s still collapsed after reset", id)
		}
		if _, ok := s.prevStatus[id]; ok {
			t.Errorf("process %s still has a recorded status after reset", id)
		}
	}
	if s.LatestAgent() != uuid.Nil {
		t.Error("latest agent should be forgotten after reset")
	}
}

func TestStaleIDsAreNoOps(t *testing.T) {
	s := NewState()
	stale := uuid.New()

	// None of these may panic or create phantom state.
	s.AutoExpand(stale)
	s.ToggleUser(stale)
	s.ToggleUser(stale)
	if s.Collapsed(stale) {
		t.Error("double toggle on an unknown id should leave it expanded")
	}
}
