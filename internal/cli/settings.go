package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/micmute/micmute/internal/config"
	"github.com/micmute/micmute/internal/daemon/hotkey"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the settings file and the effective shortcut",
	Args:  cobra.NoArgs,
	RunE:  runSettings,
}

var settingsShortcutCmd = &cobra.Command{
	Use:   "shortcut <combo>",
	Short: "Set the toggle shortcut",
	Long: `Set the toggle shortcut, e.g. "CMD+SHIFT+M" or "CTRL+ALT+F9".

A running agent picks the change up without restarting.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsShortcut,
}

func init() {
	settingsCmd.AddCommand(settingsShortcutCmd)
}

func runSettings(cmd *cobra.Command, args []string) error {
	path, err := config.SettingsFile(opts.configPath)
	if err != nil {
		return err
	}

	settings, loadErr := config.LoadSettings(path)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %s %s\n", styleLabel.Render("File    "), styleValue.Render(path))
	fmt.Fprintf(out, "  %s %s\n", styleLabel.Render("Shortcut"), styleValue.Render(settings.Shortcut))

	var cfgErr *config.ConfigError
	if errors.As(loadErr, &cfgErr) {
		fmt.Fprintf(out, "  %s %s\n", styleWarning.Render("Warning "), styleHint.Render(cfgErr.Error()+" (using default)"))
		return nil
	}
	if _, err := hotkey.Parse(settings.Shortcut); err != nil {
		fmt.Fprintf(out, "  %s %s\n", styleWarning.Render("Warning "), styleHint.Render(err.Error()+" (using default)"))
	}
	return nil
}

func runSettingsShortcut(cmd *cobra.Command, args []string) error {
	shortcut, err := hotkey.Parse(args[0])
	if err != nil {
		return err
	}

	path, err := config.SettingsFile(opts.configPath)
	if err != nil {
		return err
	}
	settings, loadErr := config.LoadSettings(path)
	var cfgErr *config.ConfigError
	if loadErr != nil && !errors.As(loadErr, &cfgErr) {
		return loadErr
	}

	settings.Shortcut = shortcut.String()
	if err := config.SaveSettings(path, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styleSuccess.Render("Shortcut set to"), styleValue.Render(shortcut.String()))
	return nil
}
