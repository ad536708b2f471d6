package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List projects",
	RunE:    runProjectList,
}

func init() {
	projectCmd.AddCommand(projectListCmd)
}

func runProjectList(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	projects, err := client.ListProjects(ctx)
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		fmt.Println("No projects on the server.")
		return nil
	}

	for _, p := range projects {
		fmt.Printf("%s  %s  %s\n",
			styleLabel.Render(p.ID.String()),
			styleValue.Render(p.Name),
			styleHint.Render(p.GitRepoPath),
		)
	}
	return nil
}
