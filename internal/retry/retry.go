// Package retry orchestrates retrying a past coding-agent process
// with a new prompt, including the decision whether the worktree must
// be reset to the commit recorded before that process.
package retry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

// Backend is the subset of the API client the orchestrator needs.
type Backend interface {
	BranchStatus(ctx context.Context, attemptID uuid.UUID) (*models.BranchStatus, error)
	CommitInfo(ctx context.Context, attemptID uuid.UUID, oid string) (*models.CommitInfo, error)
	CompareCommitToHead(ctx context.Context, attemptID uuid.UUID, oid string) (*models.CommitComparison, error)
	ReplaceProcess(ctx context.Context, attemptID uuid.UUID, req models.ReplaceProcessRequest) (*models.ExecutionProcess, error)
}

// Phase is the orchestrator's position in a single retry invocation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetchingCommitInfo
	PhaseAwaitingConfirmation
	PhaseSubmitting
)

var errPhase = errors.New("retry not in the expected phase")

// Orchestrator drives one retry at a time. Safe for concurrent use;
// all state lives for the duration of a single invocation.
type Orchestrator struct {
	mu      sync.Mutex
	backend Backend
	phase   Phase

	attemptID uuid.UUID
	target    models.ExecutionProcess
	plan      Plan
}

// New creates an idle orchestrator.
func New(backend Backend) *Orchestrator {
	return &Orchestrator{backend: backend}
}

// Phase returns the current phase.
func (o *Orchestrator) Phase() Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase
}

// InFlight reports whether a retry invocation is underway.
func (o *Orchestrator) InFlight() bool {
	return o.Phase() != PhaseIdle
}

// Begin starts a retry of target: validates eligibility, fetches the
// git context and returns the plan to confirm. On success the
// orchestrator is left awaiting confirmation.
func (o *Orchestrator) Begin(ctx context.Context, attemptID uuid.UUID, target models.ExecutionProcess, processes []models.ExecutionProcess) (Plan, error) {
	o.mu.Lock()
	if o.phase != PhaseIdle {
		o.mu.Unlock()
		return Plan{}, errPhase
	}
	if reason, disabled := Disabled(target, processes, false); disabled {
		o.mu.Unlock()
		return Plan{}, errors.New(reason)
	}
	o.phase = PhaseFetchingCommitInfo
	o.mu.Unlock()

	plan, err := o.fetchPlan(ctx, attemptID, target, processes)

	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.phase = PhaseIdle
		return Plan{}, err
	}
	o.phase = PhaseAwaitingConfirmation
	o.attemptID = attemptID
	o.target = target
	o.plan = plan
	return plan, nil
}

func (o *Orchestrator) fetchPlan(ctx context.Context, attemptID uuid.UUID, target models.ExecutionProcess, processes []models.ExecutionProcess) (Plan, error) {
	branch, err := o.backend.BranchStatus(ctx, attemptID)
	if err != nil {
		return Plan{}, fmt.Errorf("fetch branch status: %w", err)
	}

	var info *models.CommitInfo
	var cmp *models.CommitComparison
	if target.BeforeHeadCommit != nil {
		oid := *target.BeforeHeadCommit
		if info, err = o.backend.CommitInfo(ctx, attemptID, oid); err != nil {
			return Plan{}, fmt.Errorf("fetch commit info: %w", err)
		}
		if cmp, err = o.backend.CompareCommitToHead(ctx, attemptID, oid); err != nil {
			return Plan{}, fmt.Errorf("compare commit: %w", err)
		}
	}

	return BuildPlan(target, processes, branch, info, cmp), nil
}

// Cancel abandons a retry awaiting confirmation. Cancelling an idle
// orchestrator is a no-op.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.phase == PhaseAwaitingConfirmation {
		o.phase = PhaseIdle
	}
}

// Confirm submits the replace-process call with the user's choices.
// The executor variant is inferred from the original process's action.
// The orchestrator returns to idle whether the call succeeds or not.
func (o *Orchestrator) Confirm(ctx context.Context, prompt string, performGitReset, forceWhenDirty bool) (*models.ExecutionProcess, error) {
	o.mu.Lock()
	if o.phase != PhaseAwaitingConfirmation {
		o.mu.Unlock()
		return nil, errPhase
	}
	o.phase = PhaseSubmitting
	attemptID, target := o.attemptID, o.target
	o.mu.Unlock()

	req := models.ReplaceProcessRequest{
		ProcessID:       target.ID,
		Prompt:          prompt,
		PerformGitReset: performGitReset,
		ForceWhenDirty:  forceWhenDirty,
	}
	if target.Action.CodingAgent() {
		req.Variant = target.Action.Variant
	}

	process, err := o.backend.ReplaceProcess(ctx, attemptID, req)

	o.mu.Lock()
	o.phase = PhaseIdle
	o.mu.Unlock()

	if err != nil {
		return nil, fmt.Errorf("replace process: %w", err)
	}
	return process, nil
}
