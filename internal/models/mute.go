// Package models holds the value types shared between the agent's packages.
package models

// MenuID identifies a tray menu action.
type MenuID string

// Tray menu actions.
const (
	MenuToggleMute MenuID = "toggle-mute"
	MenuQuit       MenuID = "quit"
)

// MenuEvent is emitted when a tray menu item is clicked.
type MenuEvent struct {
	ID MenuID
}

// HotkeyID identifies a registered global shortcut.
type HotkeyID string

// HotkeyToggleMute is the only shortcut the agent registers.
const HotkeyToggleMute HotkeyID = "toggle-mute"

// HotkeyState is the key transition reported for a shortcut.
type HotkeyState int

const (
	HotkeyPressed HotkeyState = iota
	HotkeyReleased
)

func (s HotkeyState) String() string {
	switch s {
	case HotkeyPressed:
		return "pressed"
	case HotkeyReleased:
		return "released"
	default:
		return "unknown"
	}
}

// HotkeyEvent is emitted on every press and release of a registered shortcut.
type HotkeyEvent struct {
	ID    HotkeyID
	State HotkeyState
}
