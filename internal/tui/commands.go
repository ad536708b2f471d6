package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/api"
	"github.com/vibedeck-io/vibedeck/internal/config"
	"github.com/vibedeck-io/vibedeck/internal/models"
	"github.com/vibedeck-io/vibedeck/internal/retry"
)

const requestTimeout = 5 * time.Second

func loadProjectCmd(client *api.Client, projectID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		project, err := client.GetProject(ctx, projectID)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load project: %w", err)}
		}
		return ProjectLoadedMsg{Project: project}
	}
}

func loadTasksCmd(client *api.Client, projectID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		tasks, err := client.ListTasks(ctx, projectID)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load tasks: %w", err)}
		}
		return TasksLoadedMsg{Tasks: tasks}
	}
}

func createTaskCmd(client *api.Client, req models.CreateTask) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		task, err := client.CreateTask(ctx, req)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to create task: %w", err)}
		}
		return TaskSavedMsg{Task: task}
	}
}

func updateTaskCmd(client *api.Client, id uuid.UUID, req models.UpdateTask) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		task, err := client.UpdateTask(ctx, id, req)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to update task: %w", err)}
		}
		return TaskSavedMsg{Task: task}
	}
}

func loadAttemptsCmd(client *api.Client, taskID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		attempts, err := client.ListTaskAttempts(ctx, taskID)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load attempts: %w", err)}
		}
		return AttemptsLoadedMsg{TaskID: taskID, Attempts: attempts}
	}
}

func loadProcessesCmd(client *api.Client, attemptID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		processes, err := client.ListExecutionProcesses(ctx, attemptID)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load processes: %w", err)}
		}
		return ProcessesLoadedMsg{AttemptID: attemptID, Processes: processes}
	}
}

func loadBranchStatusCmd(client *api.Client, attemptID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		status, err := client.BranchStatus(ctx, attemptID)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load branch status: %w", err)}
		}
		return BranchStatusMsg{AttemptID: attemptID, Status: status}
	}
}

// subscribeLogsCmd opens the attempt's log stream and forwards entries
// to the program until the stream or ctx ends.
func subscribeLogsCmd(ctx context.Context, client *api.Client, attemptID uuid.UUID, program *programRef) tea.Cmd {
	return func() tea.Msg {
		entries, errs, err := client.StreamLogs(ctx, attemptID)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to open log stream: %w", err)}
		}

		go func() {
			for entries != nil || errs != nil {
				select {
				case entry, ok := <-entries:
					if !ok {
						entries = nil
						continue
					}
					program.Send(LogEntryMsg{AttemptID: attemptID, Entry: entry})
				case err, ok := <-errs:
					if !ok {
						errs = nil
						continue
					}
					program.Send(LogStreamEndedMsg{AttemptID: attemptID, Err: err})
					return
				}
			}
			program.Send(LogStreamEndedMsg{AttemptID: attemptID})
		}()

		return nil
	}
}

func beginRetryCmd(orch *retry.Orchestrator, attemptID uuid.UUID, target models.ExecutionProcess, processes []models.ExecutionProcess) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		plan, err := orch.Begin(ctx, attemptID, target, processes)
		if err != nil {
			return RetryFailedMsg{Err: err}
		}
		return RetryPlanMsg{Target: target, Plan: plan}
	}
}

func confirmRetryCmd(orch *retry.Orchestrator, prompt string, performGitReset, forceWhenDirty bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		process, err := orch.Confirm(ctx, prompt, performGitReset, forceWhenDirty)
		if err != nil {
			return RetryFailedMsg{Err: err}
		}
		return RetrySubmittedMsg{Process: process, PerformedReset: performGitReset}
	}
}

func followUpCmd(client *api.Client, attemptID uuid.UUID, req models.FollowUpRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		process, err := client.FollowUp(ctx, attemptID, req)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to send follow-up: %w", err)}
		}
		return FollowUpSentMsg{Process: process}
	}
}

func startDevServerCmd(client *api.Client, attemptID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		process, err := client.StartDevServer(ctx, attemptID)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to start dev server: %w", err)}
		}
		return DevServerStartedMsg{Process: process}
	}
}

func stopProcessCmd(client *api.Client, processID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.StopExecutionProcess(ctx, processID); err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to stop process: %w", err)}
		}
		return ProcessStoppedMsg{ProcessID: processID}
	}
}

// watchSettingsCmd forwards settings file changes to the program.
func watchSettingsCmd(watcher *config.SettingsWatcher, program *programRef) tea.Cmd {
	return func() tea.Msg {
		go func() {
			for settings := range watcher.Settings() {
				program.Send(SettingsReloadedMsg{Settings: settings})
			}
		}()
		return nil
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

func spinnerTickCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func clearErrorCmd() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}
