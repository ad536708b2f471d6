// Package cli implements the vibedeck CLI commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibedeck-io/vibedeck/internal/api"
	"github.com/vibedeck-io/vibedeck/internal/config"
)

var serverFlag string

var rootCmd = &cobra.Command{
	Use:   "vibedeck",
	Short: "Kanban board for coding agent tasks",
	Long: `Vibedeck is a terminal client for a coding-agent task server.
It shows tasks on a kanban board, follows attempt logs live, and can
retry or follow up past agent runs.`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "server URL (overrides settings)")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(attemptCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(signoutCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadSettings() (*config.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// newClient builds an API client from settings and the --server flag.
func newClient() (*api.Client, *config.Settings, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}

	serverURL := settings.ServerURL
	if serverFlag != "" {
		serverURL = serverFlag
	}
	if serverURL == "" {
		return nil, nil, fmt.Errorf("no server configured. Run 'vibedeck configure' first")
	}

	var opts []api.Option
	if settings.Credential != "" {
		opts = append(opts, api.WithCredential(settings.Credential))
	}
	return api.New(serverURL, opts...), settings, nil
}
