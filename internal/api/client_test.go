package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

func writeData(w http.ResponseWriter, data any) {
	raw, _ := json.Marshal(data)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: raw})
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Message: &msg})
}

func TestListExecutionProcesses(t *testing.T) {
	attemptID := uuid.New()
	before := "abc123"
	processes := []models.ExecutionProcess{
		{
			ID:            uuid.New(),
			TaskAttemptID: attemptID,
			RunReason:     models.RunReasonSetupScript,
			Action:        models.ExecutorAction{Kind: models.ActionScript, Script: "npm install"},
			Status:        models.ProcessCompleted,
		},
		{
			ID:               uuid.New(),
			TaskAttemptID:    attemptID,
			RunReason:        models.RunReasonCodingAgent,
			Action:           models.ExecutorAction{Kind: models.ActionCodingAgentInitial, Prompt: "fix the bug", Executor: "claude-code"},
			BeforeHeadCommit: &before,
			Status:           models.ProcessRunning,
		},
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/execution-processes", func(w http.ResponseWriter, req *http.Request) {
		if got := req.URL.Query().Get("task_attempt_id"); got != attemptID.String() {
			t.Errorf("task_attempt_id = %q, want %q", got, attemptID)
		}
		writeData(w, processes)
	}).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	defer srv.Close()

	got, err := New(srv.URL).ListExecutionProcesses(context.Background(), attemptID)
	if err != nil {
		t.Fatalf("ListExecutionProcesses: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d processes, want 2", len(got))
	}
	if got[0].Action.Kind != models.ActionScript || got[0].Action.Script != "npm install" {
		t.Errorf("script action round-trip failed: %+v", got[0].Action)
	}
	if got[1].Action.Kind != models.ActionCodingAgentInitial || got[1].Action.Executor != "claude-code" {
		t.Errorf("agent action round-trip failed: %+v", got[1].Action)
	}
	if got[1].BeforeHeadCommit == nil || *got[1].BeforeHeadCommit != before {
		t.Errorf("before_head_commit lost in transit: %v", got[1].BeforeHeadCommit)
	}
}

func TestReplaceProcessPayload(t *testing.T) {
	attemptID := uuid.New()
	processID := uuid.New()
	variant := "plan"

	var received map[string]any
	r := mux.NewRouter()
	r.HandleFunc("/api/task-attempts/{id}/replace-process", func(w http.ResponseWriter, req *http.Request) {
		if mux.Vars(req)["id"] != attemptID.String() {
			t.Errorf("attempt id = %q, want %q", mux.Vars(req)["id"], attemptID)
		}
		if err := json.NewDecoder(req.Body).Decode(&received); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		writeData(w, models.ExecutionProcess{ID: uuid.New(), Status: models.ProcessRunning})
	}).Methods(http.MethodPost)

	srv := httptest.NewServer(r)
	defer srv.Close()

	_, err := New(srv.URL).ReplaceProcess(context.Background(), attemptID, models.ReplaceProcessRequest{
		ProcessID:       processID,
		Prompt:          "try again with tests",
		Variant:         &variant,
		PerformGitReset: true,
		ForceWhenDirty:  false,
	})
	if err != nil {
		t.Fatalf("ReplaceProcess: %v", err)
	}

	want := map[string]any{
		"process_id":        processID.String(),
		"prompt":            "try again with tests",
		"variant":           "plan",
		"perform_git_reset": true,
		"force_when_dirty":  false,
	}
	for k, v := range want {
		if received[k] != v {
			t.Errorf("payload[%q] = %v, want %v", k, received[k], v)
		}
	}
}

func TestBackendErrorSurfacesMessage(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/task-attempts/{id}/branch-status", func(w http.ResponseWriter, req *http.Request) {
		writeFailure(w, http.StatusNotFound, "task attempt not found")
	}).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	defer srv.Close()

	_, err := New(srv.URL).BranchStatus(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound = false for %v", err)
	}
}

func TestTokenRegistrationSingleFlight(t *testing.T) {
	var registrations atomic.Int32
	release := make(chan struct{})

	r := mux.NewRouter()
	r.HandleFunc("/api/auth/register", func(w http.ResponseWriter, req *http.Request) {
		registrations.Add(1)
		<-release // hold every concurrent caller on one in-flight registration
		var body registerRequest
		_ = json.NewDecoder(req.Body).Decode(&body)
		if body.Credential != "secret" {
			t.Errorf("credential = %q, want %q", body.Credential, "secret")
		}
		writeData(w, registerResponse{Token: "session-token"})
	}).Methods(http.MethodPost)
	r.HandleFunc("/api/projects", func(w http.ResponseWriter, req *http.Request) {
		if got := req.Header.Get("Authorization"); got != "Bearer session-token" {
			t.Errorf("Authorization = %q, want bearer session token", got)
		}
		writeData(w, []models.Project{})
	}).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	defer srv.Close()

	c := New(srv.URL, WithCredential("secret"))

	const callers = 8
	var wg sync.WaitGroup
	errc := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.ListProjects(context.Background())
			errc <- err
		}()
	}

	// Let all callers pile up behind the registration, then release it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errc)

	for err := range errc {
		if err != nil {
			t.Errorf("ListProjects: %v", err)
		}
	}
	if n := registrations.Load(); n != 1 {
		t.Errorf("registration calls = %d, want 1", n)
	}
}

func TestSignOutClearsSession(t *testing.T) {
	var registrations atomic.Int32
	r := mux.NewRouter()
	r.HandleFunc("/api/auth/register", func(w http.ResponseWriter, req *http.Request) {
		n := registrations.Add(1)
		writeData(w, registerResponse{Token: fmt.Sprintf("token-%d", n)})
	}).Methods(http.MethodPost)
	r.HandleFunc("/api/projects", func(w http.ResponseWriter, req *http.Request) {
		writeData(w, []models.Project{})
	}).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	defer srv.Close()

	c := New(srv.URL, WithCredential("secret"))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := c.ListProjects(ctx); err != nil {
			t.Fatalf("ListProjects: %v", err)
		}
	}
	if n := registrations.Load(); n != 1 {
		t.Fatalf("registrations before sign-out = %d, want 1", n)
	}

	c.SignOut()
	if _, err := c.ListProjects(ctx); err != nil {
		t.Fatalf("ListProjects after sign-out: %v", err)
	}
	if n := registrations.Load(); n != 2 {
		t.Errorf("registrations after sign-out = %d, want 2", n)
	}
}

func TestStreamLogs(t *testing.T) {
	attemptID := uuid.New()
	processID := uuid.New()

	r := mux.NewRouter()
	r.HandleFunc("/api/task-attempts/{id}/logs/stream", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for i := 0; i < 3; i++ {
			entry := models.UnifiedLogEntry{
				ProcessID: processID,
				Channel:   models.ChannelStdout,
				Content:   fmt.Sprintf("line %d", i),
			}
			data, _ := json.Marshal(entry)
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()
		}
	}).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entries, errs, err := New(srv.URL).StreamLogs(ctx, attemptID)
	if err != nil {
		t.Fatalf("StreamLogs: %v", err)
	}

	var got []models.UnifiedLogEntry
	for e := range entries {
		got = append(got, e)
	}
	if err := <-errs; err != nil {
		t.Fatalf("stream error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	for i, e := range got {
		if want := fmt.Sprintf("line %d", i); e.Content != want {
			t.Errorf("entry %d content = %q, want %q (order must be preserved)", i, e.Content, want)
		}
	}
}

func TestGetTaskAttempt(t *testing.T) {
	attempt := models.TaskAttempt{
		ID:         uuid.New(),
		TaskID:     uuid.New(),
		Executor:   "claude-code",
		Branch:     "vd/fix-bug",
		BaseBranch: "main",
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/task-attempts/{id}", func(w http.ResponseWriter, req *http.Request) {
		if got := mux.Vars(req)["id"]; got != attempt.ID.String() {
			t.Errorf("attempt id = %q, want %q", got, attempt.ID)
		}
		writeData(w, attempt)
	}).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	defer srv.Close()

	got, err := New(srv.URL).GetTaskAttempt(context.Background(), attempt.ID)
	if err != nil {
		t.Fatalf("GetTaskAttempt: %v", err)
	}
	if got.Branch != attempt.Branch || got.BaseBranch != attempt.BaseBranch {
		t.Errorf("branches = %q/%q, want %q/%q", got.Branch, got.BaseBranch, attempt.Branch, attempt.BaseBranch)
	}
	if got.Executor != attempt.Executor {
		t.Errorf("executor = %q, want %q", got.Executor, attempt.Executor)
	}
}

func TestGetExecutionProcess(t *testing.T) {
	after := "def456"
	exit := int64(0)
	process := models.ExecutionProcess{
		ID:              uuid.New(),
		TaskAttemptID:   uuid.New(),
		RunReason:       models.RunReasonCodingAgent,
		Status:          models.ProcessCompleted,
		ExitCode:        &exit,
		AfterHeadCommit: &after,
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/execution-processes/{id}", func(w http.ResponseWriter, req *http.Request) {
		if got := mux.Vars(req)["id"]; got != process.ID.String() {
			t.Errorf("process id = %q, want %q", got, process.ID)
		}
		writeData(w, process)
	}).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	defer srv.Close()

	got, err := New(srv.URL).GetExecutionProcess(context.Background(), process.ID)
	if err != nil {
		t.Fatalf("GetExecutionProcess: %v", err)
	}
	if got.Status != models.ProcessCompleted || got.ExitCode == nil || *got.ExitCode != 0 {
		t.Errorf("status/exit = %v/%v, want completed/0", got.Status, got.ExitCode)
	}
	if got.AfterHeadCommit == nil || *got.AfterHeadCommit != after {
		t.Errorf("after_head_commit lost in transit: %v", got.AfterHeadCommit)
	}
}

func TestCompareCommitToHead(t *testing.T) {
	attemptID := uuid.New()
	oid := "def456"

	r := mux.NewRouter()
	r.HandleFunc("/api/task-attempts/{id}/commit-compare", func(w http.ResponseWriter, req *http.Request) {
		if got := req.URL.Query().Get("oid"); got != oid {
			t.Errorf("oid = %q, want %q", got, oid)
		}
		writeData(w, models.CommitComparison{IsLinear: true})
	}).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	defer srv.Close()

	cmp, err := New(srv.URL).CompareCommitToHead(context.Background(), attemptID, oid)
	if err != nil {
		t.Fatalf("CompareCommitToHead: %v", err)
	}
	if !cmp.UpToDate() {
		t.Errorf("comparison %+v should report up to date", cmp)
	}
}
