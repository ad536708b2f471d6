package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vibedeck-io/vibedeck/internal/analytics"
	"github.com/vibedeck-io/vibedeck/internal/api"
	"github.com/vibedeck-io/vibedeck/internal/config"
	"github.com/vibedeck-io/vibedeck/internal/models"
	"github.com/vibedeck-io/vibedeck/internal/tui"
)

var boardProjectFlag string

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the kanban board TUI",
	Long: `Open the interactive kanban board for a project.

The project is picked from --project, then the default_project
setting, then the only project on the server.`,
	RunE: runBoard,
}

func init() {
	boardCmd.Flags().StringVarP(&boardProjectFlag, "project", "p", "", "project id or name")
}

func runBoard(cmd *cobra.Command, args []string) error {
	client, settings, err := newClient()
	if err != nil {
		return err
	}

	projectID, err := resolveProject(client, settings, boardProjectFlag)
	if err != nil {
		return err
	}

	ac := analytics.New(settings.AnalyticsEnabled)

	// Settings changes (server URL, analytics opt-out) are picked up
	// live; a watcher failure is not fatal.
	watcher, err := config.WatchSettings()
	if err != nil {
		watcher = nil
	}

	return tui.Run(client, projectID, tui.ModelOptions{
		Analytics: ac,
		Watcher:   watcher,
		ServerURL: settings.ServerURL,
	})
}

// resolveProject turns a flag or setting into a project id, falling
// back to the only project on the server.
func resolveProject(client *api.Client, settings *config.Settings, flag string) (uuid.UUID, error) {
	selector := flag
	if selector == "" {
		selector = settings.DefaultProject
	}

	if selector != "" {
		if id, err := uuid.Parse(selector); err == nil {
			return id, nil
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	projects, err := client.ListProjects(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to list projects: %w", err)
	}

	if selector != "" {
		for _, p := range projects {
			if strings.EqualFold(p.Name, selector) {
				return p.ID, nil
			}
		}
		return uuid.Nil, fmt.Errorf("no project named %q", selector)
	}

	switch len(projects) {
	case 0:
		return uuid.Nil, fmt.Errorf("no projects on the server")
	case 1:
		return projects[0].ID, nil
	default:
		fmt.Println(styleWarning.Render("Multiple projects; pick one with --project:"))
		printProjects(projects)
		return uuid.Nil, fmt.Errorf("project not specified")
	}
}

func printProjects(projects []models.Project) {
	for _, p := range projects {
		fmt.Printf("  %s  %s\n", styleLabel.Render(p.ID.String()), styleValue.Render(p.Name))
	}
}
