package models

// DefaultShortcut is the toggle shortcut written on first run.
const DefaultShortcut = "CMD+SHIFT+M"

// Settings represents the agent settings.
// This corresponds to <user config dir>/mic-mute/settings.yaml.
type Settings struct {
	Shortcut string `yaml:"shortcut"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Shortcut: DefaultShortcut,
	}
}
