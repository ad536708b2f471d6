package config

// Settings is the user configuration stored in ~/.vibedeck/settings.yaml.
type Settings struct {
	Version int `yaml:"version"`
	// ServerURL is the backend base URL.
	ServerURL string `yaml:"server_url"`
	// Credential is exchanged for a session token on first call.
	// Empty means the backend runs locally without auth.
	Credential string `yaml:"credential,omitempty"`
	// DefaultProject preselects a project in the TUI.
	DefaultProject string `yaml:"default_project,omitempty"`
	// AnalyticsEnabled controls anonymous usage events.
	AnalyticsEnabled bool `yaml:"analytics_enabled"`
}

// NewSettings returns settings with defaults.
func NewSettings() *Settings {
	return &Settings{
		Version:          1,
		ServerURL:        "http://localhost:3067",
		AnalyticsEnabled: true,
	}
}

// LoadSettings loads ~/.vibedeck/settings.yaml, or defaults when the
// file doesn't exist.
func LoadSettings() (*Settings, error) {
	path, err := SettingsFile()
	if err != nil {
		return nil, err
	}
	if !FileExists(path) {
		return NewSettings(), nil
	}
	var s Settings
	if err := LoadYAML(path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSettings writes ~/.vibedeck/settings.yaml.
func SaveSettings(s *Settings) error {
	path, err := SettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, s)
}
