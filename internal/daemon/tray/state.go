// Package tray implements the menu-bar icon and menu for the agent.
package tray

import "fmt"

// State is what the tray displays.
type State struct {
	Muted    bool
	Shortcut string
}

func (s State) label() string {
	if s.Muted {
		return "Muted"
	}
	return "Unmuted"
}

// Tooltip returns the icon tooltip.
func (s State) Tooltip() string {
	return fmt.Sprintf("Mic Mute: %s", s.label())
}

// StatusTitle returns the disabled status line.
func (s State) StatusTitle() string {
	return fmt.Sprintf("Microphone: %s", s.label())
}

// ToggleTitle returns the toggle item's title.
func (s State) ToggleTitle() string {
	if s.Muted {
		return "Unmute microphone"
	}
	return "Mute microphone"
}

// ToggleTooltip names the shortcut bound to the toggle.
func (s State) ToggleTooltip() string {
	if s.Shortcut == "" {
		return "No shortcut registered"
	}
	return fmt.Sprintf("Shortcut: %s", s.Shortcut)
}
