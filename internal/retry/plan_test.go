package retry

import (
	"testing"

	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

func process(reason models.RunReason, status models.ProcessStatus) models.ExecutionProcess {
	return models.ExecutionProcess{ID: uuid.New(), RunReason: reason, Status: status}
}

func TestDisabled(t *testing.T) {
	agentDone := process(models.RunReasonCodingAgent, models.ProcessCompleted)

	tests := []struct {
		name            string
		target          models.ExecutionProcess
		processes       []models.ExecutionProcess
		restoreInFlight bool
		wantReason      string
	}{
		{
			name:       "setup script is not retryable",
			target:     process(models.RunReasonSetupScript, models.ProcessCompleted),
			wantReason: "Only coding agent runs can be retried.",
		},
		{
			name:       "running target",
			target:     process(models.RunReasonCodingAgent, models.ProcessRunning),
			wantReason: "Finish or stop this run to retry.",
		},
		{
			name:            "restore in flight",
			target:          agentDone,
			restoreInFlight: true,
			wantReason:      "A restore is already in progress.",
		},
		{
			name:   "another process running",
			target: agentDone,
			processes: []models.ExecutionProcess{
				agentDone,
				process(models.RunReasonDevServer, models.ProcessRunning),
			},
			wantReason: "Wait for running processes to finish before retrying.",
		},
		{
			name:       "eligible",
			target:     agentDone,
			processes:  []models.ExecutionProcess{agentDone},
			wantReason: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, disabled := Disabled(tt.target, tt.processes, tt.restoreInFlight)
			if disabled != (tt.wantReason != "") {
				t.Errorf("disabled = %v, want %v", disabled, tt.wantReason != "")
			}
			if reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}

func TestBuildPlanResetDecision(t *testing.T) {
	oid := "aaa111"
	target := process(models.RunReasonCodingAgent, models.ProcessCompleted)
	target.BeforeHeadCommit = &oid

	tests := []struct {
		name          string
		branch        models.BranchStatus
		resetRequired bool
		resetOffered  bool
		forceRequired bool
	}{
		{
			name:   "already at target and clean",
			branch: models.BranchStatus{HeadOID: oid},
		},
		{
			name:          "head moved and clean",
			branch:        models.BranchStatus{HeadOID: "bbb222"},
			resetRequired: true,
			resetOffered:  true,
		},
		{
			name:          "at target but dirty",
			branch:        models.BranchStatus{HeadOID: oid, HasUncommittedChanges: true},
			resetRequired: true,
			forceRequired: true,
		},
		{
			name:          "head moved and dirty",
			branch:        models.BranchStatus{HeadOID: "bbb222", HasUncommittedChanges: true},
			resetRequired: true,
			forceRequired: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := BuildPlan(target, nil, &tt.branch, nil, nil)
			if plan.ResetRequired != tt.resetRequired {
				t.Errorf("ResetRequired = %v, want %v", plan.ResetRequired, tt.resetRequired)
			}
			if plan.ResetOffered != tt.resetOffered {
				t.Errorf("ResetOffered = %v, want %v", plan.ResetOffered, tt.resetOffered)
			}
			if plan.ForceRequired != tt.forceRequired {
				t.Errorf("ForceRequired = %v, want %v", plan.ForceRequired, tt.forceRequired)
			}
		})
	}
}

func TestBuildPlanNoBeforeCommit(t *testing.T) {
	target := process(models.RunReasonCodingAgent, models.ProcessCompleted)
	branch := models.BranchStatus{HeadOID: "abc", HasUncommittedChanges: true}

	plan := BuildPlan(target, nil, &branch, nil, nil)
	if plan.ResetRequired {
		t.Error("no before commit: reset must not be required")
	}
	if !plan.Dirty {
		t.Error("dirty flag should still be reported")
	}
}

func TestBuildPlanCommitsResetOnlyWhenLinear(t *testing.T) {
	oid := "aaa111"
	target := process(models.RunReasonCodingAgent, models.ProcessCompleted)
	target.BeforeHeadCommit = &oid
	branch := models.BranchStatus{HeadOID: "bbb222"}

	linear := models.CommitComparison{BehindFromHead: 4, IsLinear: true}
	plan := BuildPlan(target, nil, &branch, &models.CommitInfo{OID: oid, Subject: "add parser"}, &linear)
	if plan.CommitsReset != 4 || !plan.LinearHistory {
		t.Errorf("linear: CommitsReset = %d LinearHistory = %v", plan.CommitsReset, plan.LinearHistory)
	}
	if plan.TargetSubject != "add parser" {
		t.Errorf("TargetSubject = %q", plan.TargetSubject)
	}

	nonlinear := models.CommitComparison{BehindFromHead: 4, IsLinear: false}
	plan = BuildPlan(target, nil, &branch, nil, &nonlinear)
	if plan.CommitsReset != 0 {
		t.Errorf("non-linear history must not report a commit count, got %d", plan.CommitsReset)
	}
}

func TestBuildPlanSupersededCounts(t *testing.T) {
	target := process(models.RunReasonCodingAgent, models.ProcessCompleted)
	dropped := process(models.RunReasonCodingAgent, models.ProcessCompleted)
	dropped.Dropped = true

	processes := []models.ExecutionProcess{
		process(models.RunReasonSetupScript, models.ProcessCompleted), // before target, ignored
		target,
		process(models.RunReasonCleanupScript, models.ProcessCompleted),
		process(models.RunReasonCodingAgent, models.ProcessCompleted),
		dropped,
		process(models.RunReasonDevServer, models.ProcessKilled), // neither script nor agent
	}

	plan := BuildPlan(target, processes, &models.BranchStatus{}, nil, nil)
	if plan.SupersededScripts != 1 {
		t.Errorf("SupersededScripts = %d, want 1", plan.SupersededScripts)
	}
	if plan.SupersededAgents != 1 {
		t.Errorf("SupersededAgents = %d, want 1 (dropped excluded)", plan.SupersededAgents)
	}
}
