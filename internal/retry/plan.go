package retry

import (
	"github.com/vibedeck-io/vibedeck/internal/models"
)

// Disabled reports whether retrying target is currently disallowed,
// with a reason suitable for display.
func Disabled(target models.ExecutionProcess, processes []models.ExecutionProcess, restoreInFlight bool) (string, bool) {
	if target.RunReason != models.RunReasonCodingAgent {
		return "Only coding agent runs can be retried.", true
	}
	if target.Running() {
		return "Finish or stop this run to retry.", true
	}
	if restoreInFlight {
		return "A restore is already in progress.", true
	}
	for i := range processes {
		if processes[i].Running() {
			return "Wait for running processes to finish before retrying.", true
		}
	}
	return "", false
}

// Plan summarizes what confirming a retry would do to the attempt.
type Plan struct {
	// Target commit to reset to, empty when the process recorded no
	// before commit.
	TargetOID     string
	TargetSubject string

	// ResetRequired: the worktree is not already at the target commit,
	// or carries uncommitted changes. ResetOffered: the reset can be
	// taken without forcing. ForceRequired: uncommitted changes exist,
	// so the user must explicitly force.
	ResetRequired bool
	ResetOffered  bool
	ForceRequired bool

	// CommitsReset is the number of commits a reset would discard;
	// only meaningful when LinearHistory.
	CommitsReset  int
	LinearHistory bool

	Dirty bool

	// Later processes that the retry supersedes.
	SupersededScripts int
	SupersededAgents  int
}

// BuildPlan computes the confirmation summary. info and cmp are nil
// when the target recorded no before commit.
func BuildPlan(target models.ExecutionProcess, processes []models.ExecutionProcess, branch *models.BranchStatus, info *models.CommitInfo, cmp *models.CommitComparison) Plan {
	plan := Plan{Dirty: branch.HasUncommittedChanges}

	if target.BeforeHeadCommit != nil {
		plan.TargetOID = *target.BeforeHeadCommit
		plan.ResetRequired = plan.TargetOID != branch.HeadOID || branch.HasUncommittedChanges
	}
	if info != nil {
		plan.TargetSubject = info.Subject
	}
	if cmp != nil {
		plan.LinearHistory = cmp.IsLinear
		if cmp.IsLinear {
			plan.CommitsReset = cmp.BehindFromHead
		}
	}

	plan.ForceRequired = plan.ResetRequired && branch.HasUncommittedChanges
	plan.ResetOffered = plan.ResetRequired && !branch.HasUncommittedChanges

	// Count later processes that a retry would supersede. Process
	// order is start order; everything after the target counts.
	after := false
	for i := range processes {
		p := &processes[i]
		if p.ID == target.ID {
			after = true
			continue
		}
		if !after || p.Dropped {
			continue
		}
		switch {
		case p.RunReason.Script():
			plan.SupersededScripts++
		case p.RunReason == models.RunReasonCodingAgent:
			plan.SupersededAgents++
		}
	}

	return plan
}
