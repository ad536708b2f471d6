package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

var taskProjectFlag string

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long:  `List, add and inspect tasks without opening the board.`,
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks by board column",
	RunE:    runTaskList,
}

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new task",
	RunE:  runTaskAdd,
}

var taskViewCmd = &cobra.Command{
	Use:   "view [task-id]",
	Short: "Show one task with its attempts",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskView,
}

func init() {
	taskCmd.PersistentFlags().StringVarP(&taskProjectFlag, "project", "p", "", "project id or name")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskViewCmd)
}

func runTaskList(cmd *cobra.Command, args []string) error {
	client, settings, err := newClient()
	if err != nil {
		return err
	}
	projectID, err := resolveProject(client, settings, taskProjectFlag)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	tasks, err := client.ListTasks(ctx, projectID)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks. Run 'vibedeck task add' to create one.")
		return nil
	}

	groups := map[models.TaskStatus][]models.Task{}
	for _, t := range tasks {
		groups[t.Status] = append(groups[t.Status], t)
	}

	for _, status := range models.BoardColumns {
		printTaskGroup(status, groups[status])
	}
	return nil
}

func printTaskGroup(status models.TaskStatus, tasks []models.Task) {
	if len(tasks) == 0 {
		return
	}
	fmt.Printf("%s\n", styleValue.Bold(true).Render(columnName(status)))
	for _, t := range tasks {
		fmt.Printf("  %s %s  %s\n",
			taskBadge(status),
			styleValue.Render(t.Title),
			styleLabel.Render(t.ID.String()),
		)
	}
	fmt.Println()
}

func columnName(status models.TaskStatus) string {
	switch status {
	case models.TaskStatusTodo:
		return "To Do"
	case models.TaskStatusInProgress:
		return "In Progress"
	case models.TaskStatusInReview:
		return "In Review"
	case models.TaskStatusDone:
		return "Done"
	case models.TaskStatusCancelled:
		return "Cancelled"
	}
	return string(status)
}

func taskBadge(status models.TaskStatus) string {
	switch status {
	case models.TaskStatusInProgress:
		return badgeInProgress.Render("[▶]")
	case models.TaskStatusInReview:
		return badgeInReview.Render("[?]")
	case models.TaskStatusDone:
		return badgeDone.Render("[✓]")
	case models.TaskStatusCancelled:
		return badgeCancelled.Render("[✗]")
	default:
		return badgeTodo.Render("[ ]")
	}
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	client, settings, err := newClient()
	if err != nil {
		return err
	}
	projectID, err := resolveProject(client, settings, taskProjectFlag)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Title: ")
	title, _ := reader.ReadString('\n')
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}

	fmt.Print("Description (optional): ")
	description, _ := reader.ReadString('\n')
	description = strings.TrimSpace(description)

	req := models.CreateTask{
		ProjectID: projectID,
		Title:     title,
	}
	if description != "" {
		req.Description = &description
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	task, err := client.CreateTask(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", styleSuccess.Render("Created"), styleLabel.Render(task.ID.String()))
	return nil
}

func runTaskView(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	taskID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid task id: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	task, err := client.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", taskBadge(task.Status), styleValue.Bold(true).Render(task.Title))
	fmt.Printf("  %s %s\n", styleLabel.Render("Status:"), columnName(task.Status))
	if task.Description != nil && *task.Description != "" {
		fmt.Printf("  %s %s\n", styleLabel.Render("Description:"), *task.Description)
	}

	attempts, err := client.ListTaskAttempts(ctx, taskID)
	if err != nil {
		return err
	}
	if len(attempts) == 0 {
		fmt.Println(styleHint.Render("  No attempts yet."))
		return nil
	}

	fmt.Printf("  %s\n", styleLabel.Render("Attempts:"))
	for _, a := range attempts {
		fmt.Printf("    %s  %s  %s\n",
			styleLabel.Render(a.ID.String()),
			styleValue.Render(a.Branch),
			styleHint.Render(a.Executor),
		)
	}
	return nil
}
