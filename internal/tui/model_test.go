package tui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/vibedeck-io/vibedeck/internal/api"
	"github.com/vibedeck-io/vibedeck/internal/models"
)

func writeEnvelope(w http.ResponseWriter, data any) {
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

// collectMsgs runs a command tree synchronously and gathers the
// messages it produces.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestRetryRefreshReloadsBranchStatus(t *testing.T) {
	attemptID := uuid.New()

	var mu sync.Mutex
	var paths []string
	record := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			mu.Lock()
			paths = append(paths, req.URL.Path)
			mu.Unlock()
			next.ServeHTTP(w, req)
		})
	}

	r := mux.NewRouter()
	r.Use(record)
	r.HandleFunc("/api/execution-processes", func(w http.ResponseWriter, req *http.Request) {
		writeEnvelope(w, []models.ExecutionProcess{})
	}).Methods(http.MethodGet)
	r.HandleFunc("/api/task-attempts/{id}/branch-status", func(w http.ResponseWriter, req *http.Request) {
		writeEnvelope(w, models.BranchStatus{
			HasUncommittedChanges: true,
			CommitsAhead:          2,
		})
	}).Methods(http.MethodGet)
	r.HandleFunc("/api/task-attempts/{id}/logs/stream", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	defer srv.Close()

	m := NewModel(api.New(srv.URL), uuid.New(), ModelOptions{}, &programRef{})
	attempt := models.TaskAttempt{ID: attemptID, Branch: "vd/fix-bug"}
	m.attempt = &attempt

	updated, cmd := m.Update(RetrySubmittedMsg{})
	m = updated.(Model)

	var branchMsg *BranchStatusMsg
	for _, msg := range collectMsgs(cmd) {
		if bm, ok := msg.(BranchStatusMsg); ok {
			branchMsg = &bm
		}
	}
	if branchMsg == nil {
		mu.Lock()
		seen := append([]string(nil), paths...)
		mu.Unlock()
		t.Fatalf("no branch status fetched after retry, requests: %v", seen)
	}
	if branchMsg.AttemptID != attemptID {
		t.Errorf("branch status attempt = %s, want %s", branchMsg.AttemptID, attemptID)
	}

	updated, _ = m.Update(*branchMsg)
	m = updated.(Model)
	if m.branch == nil {
		t.Fatal("branch status not stored on the model")
	}
	if m.branch.CommitsAhead != 2 || !m.branch.HasUncommittedChanges {
		t.Errorf("branch = %+v, want 2 ahead with uncommitted changes", m.branch)
	}
}

func TestBranchStatusIgnoredForStaleAttempt(t *testing.T) {
	m := NewModel(api.New("http://localhost:0"), uuid.New(), ModelOptions{}, &programRef{})
	attempt := models.TaskAttempt{ID: uuid.New(), Branch: "vd/current"}
	m.attempt = &attempt

	updated, _ := m.Update(BranchStatusMsg{
		AttemptID: uuid.New(),
		Status:    &models.BranchStatus{CommitsAhead: 9},
	})
	m = updated.(Model)
	if m.branch != nil {
		t.Errorf("stale branch status stored: %+v", m.branch)
	}
}
