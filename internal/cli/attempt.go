package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

var attemptCmd = &cobra.Command{
	Use:   "attempt",
	Short: "Inspect task attempts",
}

var attemptViewCmd = &cobra.Command{
	Use:   "view [attempt-id]",
	Short: "Show the attempt's branch, executor and run summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttemptView,
}

var attemptProcessCmd = &cobra.Command{
	Use:   "process [process-id]",
	Short: "Show one execution process in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttemptProcess,
}

var attemptProcessesCmd = &cobra.Command{
	Use:   "processes [attempt-id]",
	Short: "List the attempt's execution processes",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttemptProcesses,
}

var attemptLogsFollow bool

var attemptLogsCmd = &cobra.Command{
	Use:   "logs [attempt-id]",
	Short: "Print the attempt's log history",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttemptLogs,
}

var attemptStatusCmd = &cobra.Command{
	Use:   "status [attempt-id]",
	Short: "Show the attempt's git branch state",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttemptStatus,
}

func init() {
	attemptLogsCmd.Flags().BoolVarP(&attemptLogsFollow, "follow", "f", false, "keep streaming new entries")

	attemptCmd.AddCommand(attemptLogsCmd)
	attemptCmd.AddCommand(attemptProcessCmd)
	attemptCmd.AddCommand(attemptProcessesCmd)
	attemptCmd.AddCommand(attemptStatusCmd)
	attemptCmd.AddCommand(attemptViewCmd)
}

func runAttemptView(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	attemptID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid attempt id: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	attempt, err := client.GetTaskAttempt(ctx, attemptID)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", styleLabel.Render("Branch:"), styleValue.Render(attempt.Branch))
	fmt.Printf("%s %s\n", styleLabel.Render("Base:"), attempt.BaseBranch)
	fmt.Printf("%s %s\n", styleLabel.Render("Executor:"), attempt.Executor)
	fmt.Printf("%s %s\n", styleLabel.Render("Created:"), attempt.CreatedAt.Format(time.RFC3339))

	status, err := client.BranchStatus(ctx, attemptID)
	if err != nil {
		return err
	}
	worktree := styleSuccess.Render("clean")
	if status.HasUncommittedChanges {
		worktree = styleWarning.Render(fmt.Sprintf("%d modified, %d untracked",
			status.UncommittedCount, status.UntrackedCount))
	}
	fmt.Printf("%s +%d -%d, worktree %s\n",
		styleLabel.Render("Ahead/behind base:"),
		status.CommitsAhead, status.CommitsBehind, worktree)

	processes, err := client.ListExecutionProcesses(ctx, attemptID)
	if err != nil {
		return err
	}
	running := 0
	for _, p := range processes {
		if p.Running() {
			running++
		}
	}
	fmt.Printf("%s %d total, %d running\n", styleLabel.Render("Processes:"), len(processes), running)

	if last := lastAgentCommit(processes); last != nil {
		cmp, err := client.CompareCommitToHead(ctx, attemptID, *last)
		if err != nil {
			return err
		}
		if cmp.UpToDate() {
			fmt.Println(styleSuccess.Render("Worktree is at the last agent commit."))
		} else {
			fmt.Printf("%s %d ahead, %d behind HEAD\n",
				styleLabel.Render("Last agent commit:"),
				cmp.AheadFromHead, cmp.BehindFromHead)
		}
	}
	return nil
}

// lastAgentCommit returns the newest recorded after-commit of a
// coding-agent process, or nil when no agent run has committed yet.
func lastAgentCommit(processes []models.ExecutionProcess) *string {
	for i := len(processes) - 1; i >= 0; i-- {
		p := processes[i]
		if p.RunReason == models.RunReasonCodingAgent && !p.Dropped && p.AfterHeadCommit != nil {
			return p.AfterHeadCommit
		}
	}
	return nil
}

func runAttemptProcess(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	processID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid process id: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	process, err := client.GetExecutionProcess(ctx, processID)
	if err != nil {
		return err
	}

	label := process.RunReason.Label()
	if process.Dropped {
		label = badgeDropped.Render(label)
	}
	fmt.Printf("%s %s %s\n", processStatusBadge(process.Status), styleValue.Render(label), styleHint.Render(process.ID.String()))
	fmt.Printf("%s %s\n", styleLabel.Render("Attempt:"), process.TaskAttemptID)
	fmt.Printf("%s %s\n", styleLabel.Render("Started:"), process.StartedAt.Format(time.RFC3339))
	if process.ExitCode != nil {
		fmt.Printf("%s %d\n", styleLabel.Render("Exit code:"), *process.ExitCode)
	}
	if process.BeforeHeadCommit != nil {
		fmt.Printf("%s %s\n", styleLabel.Render("Before:"), *process.BeforeHeadCommit)
	}
	if process.AfterHeadCommit != nil {
		fmt.Printf("%s %s\n", styleLabel.Render("After:"), *process.AfterHeadCommit)
	}
	return nil
}

func runAttemptProcesses(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	attemptID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid attempt id: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	processes, err := client.ListExecutionProcesses(ctx, attemptID)
	if err != nil {
		return err
	}

	if len(processes) == 0 {
		fmt.Println("No processes for this attempt.")
		return nil
	}

	for _, p := range processes {
		label := p.RunReason.Label()
		if p.Dropped {
			label = badgeDropped.Render(label)
		}
		detail := p.StartedAt.Format(time.RFC3339)
		if p.ExitCode != nil {
			detail += fmt.Sprintf("  exit %d", *p.ExitCode)
		}
		fmt.Printf("%s %-14s %s  %s\n",
			processStatusBadge(p.Status),
			label,
			styleLabel.Render(p.ID.String()),
			styleHint.Render(detail),
		)
	}
	return nil
}

func processStatusBadge(status models.ProcessStatus) string {
	switch status {
	case models.ProcessRunning:
		return badgeRunning.Render("[●]")
	case models.ProcessCompleted:
		return styleSuccess.Render("[✓]")
	case models.ProcessFailed:
		return badgeFailed.Render("[✗]")
	case models.ProcessKilled:
		return badgeKilled.Render("[k]")
	}
	return "[ ]"
}

func runAttemptLogs(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	attemptID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid attempt id: %w", err)
	}

	if !attemptLogsFollow {
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		entries, err := client.ListLogs(ctx, attemptID)
		if err != nil {
			return err
		}
		for _, e := range entries {
			printLogEntry(e)
		}
		return nil
	}

	// Follow mode: the stream replays history then stays open.
	entries, errs, err := client.StreamLogs(cmd.Context(), attemptID)
	if err != nil {
		return err
	}
	for entries != nil || errs != nil {
		select {
		case e, ok := <-entries:
			if !ok {
				entries = nil
				continue
			}
			printLogEntry(e)
		case streamErr, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if streamErr != nil && cmd.Context().Err() == nil {
				return streamErr
			}
			return nil
		}
	}
	return nil
}

func printLogEntry(e models.UnifiedLogEntry) {
	content := strings.TrimRight(e.Content, "\n")
	switch e.Channel {
	case models.ChannelProcessStart:
		fmt.Println(styleValue.Bold(true).Render("── " + content))
	case models.ChannelStderr:
		fmt.Println(styleError.Render(content))
	default:
		fmt.Println(content)
	}
}

func runAttemptStatus(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	attemptID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid attempt id: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	status, err := client.BranchStatus(ctx, attemptID)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", styleLabel.Render("HEAD:"), status.HeadOID)
	fmt.Printf("%s +%d -%d\n", styleLabel.Render("Ahead/behind base:"), status.CommitsAhead, status.CommitsBehind)
	if status.HasUncommittedChanges {
		fmt.Println(styleWarning.Render(fmt.Sprintf(
			"Uncommitted changes: %d modified, %d untracked",
			status.UncommittedCount, status.UntrackedCount)))
	} else {
		fmt.Println(styleSuccess.Render("Worktree clean"))
	}
	return nil
}
