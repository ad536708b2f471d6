package tui

import (
	"testing"

	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

func panelProcess(reason models.RunReason, status models.ProcessStatus) models.ExecutionProcess {
	return models.ExecutionProcess{
		ID:        uuid.New(),
		RunReason: reason,
		Status:    status,
	}
}

func startEntry(p models.ExecutionProcess) models.UnifiedLogEntry {
	return models.UnifiedLogEntry{
		ProcessID: p.ID,
		Channel:   models.ChannelProcessStart,
		Content:   p.RunReason.Label(),
	}
}

func TestLogsPanelCollapsesFinishedScript(t *testing.T) {
	setup := panelProcess(models.RunReasonSetupScript, models.ProcessRunning)
	agent := panelProcess(models.RunReasonCodingAgent, models.ProcessRunning)

	l := NewLogsPanel()
	l.SetSize(80, 24)
	l.SetProcesses([]models.ExecutionProcess{setup, agent})
	l.SetEntries([]models.UnifiedLogEntry{startEntry(setup), startEntry(agent)})

	if ids := l.CollapsedIDs(); len(ids) != 0 {
		t.Fatalf("nothing should be collapsed while running, got %v", ids)
	}

	setup.Status = models.ProcessCompleted
	l.SetProcesses([]models.ExecutionProcess{setup, agent})

	ids := l.CollapsedIDs()
	if len(ids) != 1 || ids[0] != setup.ID {
		t.Fatalf("expected finished setup script collapsed, got %v", ids)
	}
}

func TestLogsPanelToggleSurvivesSnapshot(t *testing.T) {
	setup := panelProcess(models.RunReasonSetupScript, models.ProcessCompleted)

	l := NewLogsPanel()
	l.SetSize(80, 24)
	l.SetProcesses([]models.ExecutionProcess{setup})
	l.SetEntries([]models.UnifiedLogEntry{startEntry(setup)})

	// Auto-collapsed on completion; the user reopens it.
	l.ToggleSelected()
	if ids := l.CollapsedIDs(); len(ids) != 0 {
		t.Fatalf("expected expanded after toggle, got %v", ids)
	}

	// A fresh snapshot of the same terminal process must not re-collapse.
	l.SetProcesses([]models.ExecutionProcess{setup})
	if ids := l.CollapsedIDs(); len(ids) != 0 {
		t.Fatalf("user expand overridden by snapshot, got %v", ids)
	}
}

func TestLogsPanelHidesDroppedProcesses(t *testing.T) {
	kept := panelProcess(models.RunReasonCodingAgent, models.ProcessCompleted)
	dropped := panelProcess(models.RunReasonCodingAgent, models.ProcessKilled)
	dropped.Dropped = true

	l := NewLogsPanel()
	l.SetSize(80, 24)
	l.SetProcesses([]models.ExecutionProcess{kept, dropped})
	l.SetEntries([]models.UnifiedLogEntry{startEntry(kept), startEntry(dropped)})

	if len(l.groups) != 1 || l.groups[0].Process.ID != kept.ID {
		t.Fatalf("expected only the kept process grouped, got %d groups", len(l.groups))
	}
}
