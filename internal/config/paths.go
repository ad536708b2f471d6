package config

import (
	"os"
	"path/filepath"
)

// GlobalDirName is the name of the global vibedeck directory.
const GlobalDirName = ".vibedeck"

// SettingsFileName is the settings file within the global directory.
const SettingsFileName = "settings.yaml"

// GlobalDir returns the path to the global vibedeck directory (~/.vibedeck/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// SettingsFile returns the path to the settings.yaml file.
func SettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// EnsureGlobalDir creates the global vibedeck directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
