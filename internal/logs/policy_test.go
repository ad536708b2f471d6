package logs

import (
	"testing"

	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

func scriptProcess(id uuid.UUID, reason models.RunReason, status models.ProcessStatus) models.ExecutionProcess {
	return models.ExecutionProcess{ID: id, RunReason: reason, Status: status}
}

func agentProcess(id uuid.UUID) models.ExecutionProcess {
	return models.ExecutionProcess{ID: id, RunReason: models.RunReasonCodingAgent, Status: models.ProcessRunning}
}

func TestScriptAutoCollapseOnCompletion(t *testing.T) {
	tests := []struct {
		name     string
		reason   models.RunReason
		from     *models.ProcessStatus
		to       models.ProcessStatus
		collapse bool
	}{
		{"setup running to completed", models.RunReasonSetupScript, ptr(models.ProcessRunning), models.ProcessCompleted, true},
		{"cleanup running to failed", models.RunReasonCleanupScript, ptr(models.ProcessRunning), models.ProcessFailed, true},
		{"setup unseen and already completed", models.RunReasonSetupScript, nil, models.ProcessCompleted, true},
		{"setup still running", models.RunReasonSetupScript, ptr(models.ProcessRunning), models.ProcessRunning, false},
		{"dev server completes", models.RunReasonDevServer, ptr(models.ProcessRunning), models.ProcessKilled, false},
		{"agent completes", models.RunReasonCodingAgent, ptr(models.ProcessRunning), models.ProcessCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			id := uuid.New()
			if tt.from != nil {
				s.UpdateStatus(id, *tt.from)
			}
			s.Apply([]models.ExecutionProcess{scriptProcess(id, tt.reason, tt.to)})
			if got := s.AutoCollapsed(id); got != tt.collapse {
				t.Errorf("auto-collapsed = %v, want %v", got, tt.collapse)
			}
		})
	}
}

func TestScriptReinvocationAutoExpands(t *testing.T) {
	s := NewState()
	id := uuid.New()

	s.Apply([]models.ExecutionProcess{scriptProcess(id, models.RunReasonSetupScript, models.ProcessCompleted)})
	if !s.AutoCollapsed(id) {
		t.Fatal("completed script should be auto-collapsed")
	}

	s.Apply([]models.ExecutionProcess{scriptProcess(id, models.RunReasonSetupScript, models.ProcessRunning)})
	if s.AutoCollapsed(id) {
		t.Error("re-invoked script should be auto-expanded")
	}
}

func TestScriptReinvocationRespectsUserCollapse(t *testing.T) {
	s := NewState()
	id := uuid.New()

	s.Apply([]models.ExecutionProcess{scriptProcess(id, models.RunReasonSetupScript, models.ProcessCompleted)})
	s.ToggleUser(id) // expand
	s.ToggleUser(id) // user-collapse

	s.Apply([]models.ExecutionProcess{scriptProcess(id, models.RunReasonSetupScript, models.ProcessRunning)})
	if !s.UserCollapsed(id) {
		t.Error("policy must not silently re-expand a user-collapsed process")
	}
}

func TestLatestAgentWins(t *testing.T) {
	s := NewState()
	a, b := uuid.New(), uuid.New()

	s.Apply([]models.ExecutionProcess{agentProcess(a)})
	if s.LatestAgent() != a {
		t.Fatalf("latest agent = %s, want %s", s.LatestAgent(), a)
	}
	if s.Collapsed(a) {
		t.Fatal("sole agent should stay expanded")
	}

	s.Apply([]models.ExecutionProcess{agentProcess(a), agentProcess(b)})
	if s.LatestAgent() != b {
		t.Errorf("latest agent = %s, want %s", s.LatestAgent(), b)
	}
	if !s.AutoCollapsed(a) {
		t.Error("earlier agent should be auto-collapsed when a new one starts")
	}
	if s.Collapsed(b) {
		t.Error("new latest agent should be expanded")
	}
}

func TestLatestAgentSkipsUserCollapsed(t *testing.T) {
	s := NewState()
	a, b := uuid.New(), uuid.New()

	s.ToggleUser(a)
	s.Apply([]models.ExecutionProcess{agentProcess(a), agentProcess(b)})
	if s.AutoCollapsed(a) {
		t.Error("user-collapsed agent must not enter the auto set")
	}
	if !s.UserCollapsed(a) {
		t.Error("user collapse must survive the policy pass")
	}
}

func TestDroppedProcessesIgnored(t *testing.T) {
	s := NewState()
	a, b := uuid.New(), uuid.New()

	dropped := agentProcess(b)
	dropped.Dropped = true

	s.Apply([]models.ExecutionProcess{agentProcess(a), dropped})
	if s.LatestAgent() != a {
		t.Errorf("dropped process must not become the latest agent, got %s", s.LatestAgent())
	}

	droppedScript := scriptProcess(uuid.New(), models.RunReasonSetupScript, models.ProcessCompleted)
	droppedScript.Dropped = true
	s.Apply([]models.ExecutionProcess{droppedScript})
	if s.AutoCollapsed(droppedScript.ID) {
		t.Error("dropped script must not be auto-collapsed")
	}
}

func TestApplyIsIdempotentPerSnapshot(t *testing.T) {
	s := NewState()
	a, b := uuid.New(), uuid.New()
	procs := []models.ExecutionProcess{agentProcess(a), agentProcess(b)}

	s.Apply(procs)
	s.ToggleUser(a) // expand the collapsed earlier agent

	// Re-applying the same snapshot must not collapse it again.
	s.Apply(procs)
	if s.Collapsed(a) {
		t.Error("unchanged snapshot re-collapsed an expanded process")
	}
}

func ptr[T any](v T) *T { return &v }
