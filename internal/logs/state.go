// Package logs holds the client-side state for the attempt log view:
// which process groups are collapsed, and how the flat log stream is
// grouped per process for rendering.
//
// The state is created fresh per task attempt and discarded when the
// view goes away. A process id never sits in both the user-collapsed
// and auto-collapsed sets at once; user collapses always win over the
// automatic policy.
package logs

import (
	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

// State tracks collapse/expand bookkeeping for one attempt's log view.
type State struct {
	userCollapsed map[uuid.UUID]struct{}
	autoCollapsed map[uuid.UUID]struct{}
	prevStatus    map[uuid.UUID]models.ProcessStatus
	latestAgent   uuid.UUID
}

// NewState returns an empty collapse state.
func NewState() *State {
	s := &State{}
	s.ResetAttempt()
	return s
}

// ResetAttempt clears all bookkeeping. Invoked whenever the selected
// task attempt changes.
func (s *State) ResetAttempt() {
	s.userCollapsed = make(map[uuid.UUID]struct{})
	s.autoCollapsed = make(map[uuid.UUID]struct{})
	s.prevStatus = make(map[uuid.UUID]models.ProcessStatus)
	s.latestAgent = uuid.Nil
}

// Collapsed reports whether the process's log lines are hidden, by
// either mechanism.
func (s *State) Collapsed(id uuid.UUID) bool {
	return s.UserCollapsed(id) || s.AutoCollapsed(id)
}

// UserCollapsed reports whether the user explicitly collapsed the process.
func (s *State) UserCollapsed(id uuid.UUID) bool {
	_, ok := s.userCollapsed[id]
	return ok
}

// AutoCollapsed reports whether the automatic policy collapsed the process.
func (s *State) AutoCollapsed(id uuid.UUID) bool {
	_, ok := s.autoCollapsed[id]
	return ok
}

// ToggleUser flips the visibility of a process. A collapsed process
// (by either mechanism) becomes fully expanded; an expanded one is
// marked user-collapsed, which the automatic policy will not undo.
func (s *State) ToggleUser(id uuid.UUID) {
	if s.Collapsed(id) {
		delete(s.userCollapsed, id)
		delete(s.autoCollapsed, id)
		return
	}
	s.userCollapsed[id] = struct{}{}
	delete(s.autoCollapsed, id)
}

// AutoCollapse adds processes to the auto-collapsed set. Processes the
// user collapsed are left alone so the two sets stay disjoint.
func (s *State) AutoCollapse(ids ...uuid.UUID) {
	for _, id := range ids {
		if s.UserCollapsed(id) {
			continue
		}
		s.autoCollapsed[id] = struct{}{}
	}
}

// AutoExpand removes processes from the auto-collapsed set. The
// user-collapsed set is never touched.
func (s *State) AutoExpand(ids ...uuid.UUID) {
	for _, id := range ids {
		delete(s.autoCollapsed, id)
	}
}

// UpdateStatus records the last observed status of a process so the
// next Apply can detect transitions.
func (s *State) UpdateStatus(id uuid.UUID, status models.ProcessStatus) {
	s.prevStatus[id] = status
}

// LatestAgent returns the id of the coding-agent process currently
// remembered as the most recent one, or uuid.Nil.
func (s *State) LatestAgent() uuid.UUID {
	return s.latestAgent
}
