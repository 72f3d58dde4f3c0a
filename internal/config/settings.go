package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/micmute/micmute/internal/models"
)

// ErrEmptyShortcut is reported when the settings file has no usable shortcut.
var ErrEmptyShortcut = errors.New("shortcut is empty")

// ConfigError reports a settings file that could not be used. The agent
// recovers from it by falling back to the default settings.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("settings %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LoadSettings loads the settings at path. If the file doesn't exist it is
// created with default values first. The returned settings are never nil:
// when the file can't be used the defaults are returned together with a
// *ConfigError.
func LoadSettings(path string) (*models.Settings, error) {
	if !FileExists(path) {
		settings := models.NewSettings()
		if err := SaveYAML(path, settings); err != nil {
			return settings, &ConfigError{Path: path, Err: err}
		}
		return settings, nil
	}

	var settings models.Settings
	if err := LoadYAML(path, &settings); err != nil {
		return models.NewSettings(), &ConfigError{Path: path, Err: err}
	}

	settings.Shortcut = strings.TrimSpace(settings.Shortcut)
	if settings.Shortcut == "" {
		return models.NewSettings(), &ConfigError{Path: path, Err: ErrEmptyShortcut}
	}
	return &settings, nil
}

// SaveSettings saves the settings to path.
func SaveSettings(path string, settings *models.Settings) error {
	return SaveYAML(path, settings)
}
