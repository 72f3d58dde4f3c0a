// Package config handles settings loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the name of the agent's directory under the user config dir.
	AppDirName = "mic-mute"

	// SettingsFileName is the name of the settings file.
	SettingsFileName = "settings.yaml"
)

// AppDir returns the path to the agent's config directory
// (~/.config/mic-mute on Linux, ~/Library/Application Support/mic-mute on macOS).
func AppDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDirName), nil
}

// SettingsFile returns the path to the settings file. A non-empty override
// is returned as is.
func SettingsFile(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}
