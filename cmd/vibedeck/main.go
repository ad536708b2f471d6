// Package main is the entry point for the vibedeck CLI/TUI.
package main

import (
	"os"

	"github.com/vibedeck-io/vibedeck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
