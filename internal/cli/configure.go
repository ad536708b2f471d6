package cli

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vibedeck-io/vibedeck/internal/config"
)

var configureCmd = &cobra.Command{
	Use:     "configure",
	Aliases: []string{"config"},
	Short:   "Configure client settings",
	Long: `Configure client settings interactively.

This allows you to modify:
  - Server URL
  - Default project
  - API credential (entered without echo)
  - Anonymous usage analytics

Press Enter to keep the current value for any setting.`,
	RunE: runConfigure,
}

var signoutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Forget the stored API credential",
	RunE:  runSignout,
}

func runConfigure(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	changed := false

	// Server URL
	fmt.Printf("Server URL [%s]: ", settings.ServerURL)
	server, _ := reader.ReadString('\n')
	server = strings.TrimSpace(server)
	if server != "" {
		if _, err := url.ParseRequestURI(server); err != nil {
			return fmt.Errorf("invalid server URL: %w", err)
		}
		if server != settings.ServerURL {
			settings.ServerURL = server
			changed = true
		}
	}

	// Default project
	fmt.Printf("Default project (id or name) [%s]: ", settings.DefaultProject)
	project, _ := reader.ReadString('\n')
	project = strings.TrimSpace(project)
	if project != "" && project != settings.DefaultProject {
		settings.DefaultProject = project
		changed = true
	}

	// Credential; read without echo when stdin is a terminal.
	fmt.Print("API credential (blank to keep): ")
	var credential string
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read credential: %w", err)
		}
		credential = strings.TrimSpace(string(raw))
	} else {
		raw, _ := reader.ReadString('\n')
		credential = strings.TrimSpace(raw)
	}
	if credential != "" && credential != settings.Credential {
		settings.Credential = credential
		changed = true
	}

	// Analytics
	current := "y"
	if !settings.AnalyticsEnabled {
		current = "n"
	}
	fmt.Printf("Send anonymous usage analytics? [y/n] (%s): ", current)
	analytics, _ := reader.ReadString('\n')
	analytics = strings.TrimSpace(strings.ToLower(analytics))
	if analytics == "y" || analytics == "n" {
		enabled := analytics == "y"
		if enabled != settings.AnalyticsEnabled {
			settings.AnalyticsEnabled = enabled
			changed = true
		}
	}

	if !changed {
		fmt.Println(styleHint.Render("No changes."))
		return nil
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println(styleSuccess.Render("Settings saved."))
	return nil
}

func runSignout(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	if settings.Credential == "" {
		fmt.Println(styleHint.Render("No credential stored."))
		return nil
	}

	settings.Credential = ""
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println(styleSuccess.Render("Signed out."))
	return nil
}
