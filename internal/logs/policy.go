package logs

import (
	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

// Apply runs the automatic collapse policy over the current process
// list. It is called on every refresh of the process list, after new
// statuses arrive but before rendering:
//
//  1. A setup/cleanup script that went from running (or unseen) to a
//     terminal status is auto-collapsed.
//  2. A previously auto-collapsed script that is running again
//     (re-invoked) is auto-expanded.
//  3. Only the most recently started coding-agent process stays
//     expanded by default; when a new one becomes the latest, earlier
//     agent processes not user-collapsed are auto-collapsed.
//
// Dropped processes are hidden from the log view and ignored here.
func (s *State) Apply(processes []models.ExecutionProcess) {
	var agents []uuid.UUID

	for i := range processes {
		p := &processes[i]
		if p.Dropped {
			continue
		}

		prev, seen := s.prevStatus[p.ID]

		if p.RunReason.Script() {
			finished := p.Status.Terminal() && (!seen || prev == models.ProcessRunning)
			if finished && !s.Collapsed(p.ID) {
				s.AutoCollapse(p.ID)
			}
			if seen && prev.Terminal() && p.Status == models.ProcessRunning && s.AutoCollapsed(p.ID) {
				s.AutoExpand(p.ID)
			}
		}

		if p.RunReason == models.RunReasonCodingAgent {
			agents = append(agents, p.ID)
		}
	}

	// Process order is start order, so the last agent is the latest.
	if len(agents) > 0 {
		latest := agents[len(agents)-1]
		if latest != s.latestAgent {
			s.AutoCollapse(agents[:len(agents)-1]...)
			s.AutoExpand(latest)
			s.latestAgent = latest
		}
	}

	for i := range processes {
		s.UpdateStatus(processes[i].ID, processes[i].Status)
	}
}
