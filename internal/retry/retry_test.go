package retry

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

type fakeBackend struct {
	branch models.BranchStatus
	info   models.CommitInfo
	cmp    models.CommitComparison

	replaceErr error
	replaced   []models.ReplaceProcessRequest
}

func (f *fakeBackend) BranchStatus(ctx context.Context, attemptID uuid.UUID) (*models.BranchStatus, error) {
	b := f.branch
	return &b, nil
}

func (f *fakeBackend) CommitInfo(ctx context.Context, attemptID uuid.UUID, oid string) (*models.CommitInfo, error) {
	i := f.info
	i.OID = oid
	return &i, nil
}

func (f *fakeBackend) CompareCommitToHead(ctx context.Context, attemptID uuid.UUID, oid string) (*models.CommitComparison, error) {
	c := f.cmp
	return &c, nil
}

func (f *fakeBackend) ReplaceProcess(ctx context.Context, attemptID uuid.UUID, req models.ReplaceProcessRequest) (*models.ExecutionProcess, error) {
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	f.replaced = append(f.replaced, req)
	return &models.ExecutionProcess{ID: uuid.New(), Status: models.ProcessRunning}, nil
}

func retryTarget() models.ExecutionProcess {
	oid := "aaa111"
	variant := "plan"
	return models.ExecutionProcess{
		ID:               uuid.New(),
		RunReason:        models.RunReasonCodingAgent,
		Status:           models.ProcessCompleted,
		BeforeHeadCommit: &oid,
		Action: models.ExecutorAction{
			Kind:     models.ActionCodingAgentInitial,
			Prompt:   "original prompt",
			Executor: "claude-code",
			Variant:  &variant,
		},
	}
}

func TestConfirmSubmitsAndReturnsToIdle(t *testing.T) {
	backend := &fakeBackend{
		branch: models.BranchStatus{HeadOID: "bbb222"},
		info:   models.CommitInfo{Subject: "add parser"},
		cmp:    models.CommitComparison{BehindFromHead: 2, IsLinear: true},
	}
	o := New(backend)
	target := retryTarget()
	ctx := context.Background()

	plan, err := o.Begin(ctx, uuid.New(), target, []models.ExecutionProcess{target})
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if o.Phase() != PhaseAwaitingConfirmation {
		t.Fatalf("phase = %v, want awaiting confirmation", o.Phase())
	}
	if !plan.ResetOffered || plan.CommitsReset != 2 {
		t.Errorf("plan = %+v, want reset offered over 2 commits", plan)
	}

	process, err := o.Confirm(ctx, "new prompt", true, false)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if process == nil || !process.Running() {
		t.Error("confirm should return the replacement process")
	}
	if o.Phase() != PhaseIdle {
		t.Errorf("phase after confirm = %v, want idle", o.Phase())
	}

	if len(backend.replaced) != 1 {
		t.Fatalf("replace calls = %d, want 1", len(backend.replaced))
	}
	req := backend.replaced[0]
	if req.ProcessID != target.ID || req.Prompt != "new prompt" || !req.PerformGitReset || req.ForceWhenDirty {
		t.Errorf("unexpected replace request: %+v", req)
	}
	if req.Variant == nil || *req.Variant != "plan" {
		t.Errorf("variant not inferred from original action: %v", req.Variant)
	}
}

func TestCancelReturnsToIdleWithoutSubmitting(t *testing.T) {
	backend := &fakeBackend{branch: models.BranchStatus{HeadOID: "bbb222"}}
	o := New(backend)
	target := retryTarget()

	if _, err := o.Begin(context.Background(), uuid.New(), target, nil); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	o.Cancel()
	if o.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", o.Phase())
	}
	if len(backend.replaced) != 0 {
		t.Error("cancel must not submit")
	}
	if _, err := o.Confirm(context.Background(), "x", false, false); err == nil {
		t.Error("confirm after cancel should fail")
	}
}

func TestBeginRejectsIneligibleTarget(t *testing.T) {
	o := New(&fakeBackend{})
	target := retryTarget()
	target.Status = models.ProcessRunning

	_, err := o.Begin(context.Background(), uuid.New(), target, nil)
	if err == nil || err.Error() != "Finish or stop this run to retry." {
		t.Errorf("err = %v, want eligibility reason", err)
	}
	if o.Phase() != PhaseIdle {
		t.Errorf("failed begin must leave orchestrator idle, got %v", o.Phase())
	}
}

func TestSubmitErrorReturnsToIdle(t *testing.T) {
	backend := &fakeBackend{
		branch:     models.BranchStatus{HeadOID: "bbb222"},
		replaceErr: errors.New("boom"),
	}
	o := New(backend)
	target := retryTarget()
	ctx := context.Background()

	if _, err := o.Begin(ctx, uuid.New(), target, nil); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if _, err := o.Confirm(ctx, "prompt", false, false); err == nil {
		t.Fatal("expected submit error")
	}
	if o.Phase() != PhaseIdle {
		t.Errorf("phase after failed submit = %v, want idle", o.Phase())
	}
}

func TestBeginWhileInFlightRejected(t *testing.T) {
	backend := &fakeBackend{branch: models.BranchStatus{HeadOID: "bbb222"}}
	o := New(backend)
	target := retryTarget()
	ctx := context.Background()

	if _, err := o.Begin(ctx, uuid.New(), target, nil); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if _, err := o.Begin(ctx, uuid.New(), target, nil); err == nil {
		t.Error("second Begin while awaiting confirmation should fail")
	}
}
