package tray

import (
	_ "embed"
	"sync"

	"github.com/getlantern/systray"
	"github.com/rs/zerolog/log"

	"github.com/micmute/micmute/internal/models"
)

var (
	//go:embed icons/muted.png
	mutedIcon []byte
	//go:embed icons/unmuted.png
	unmutedIcon []byte
)

var (
	onStart func()
	onExit  func()
	events  = make(chan models.MenuEvent, 8)

	mu         sync.Mutex
	ready      bool
	statusItem *systray.MenuItem
	toggleItem *systray.MenuItem
	quitItem   *systray.MenuItem
	view       = State{}
)

// Run starts the system tray. This blocks the calling goroutine (must be main).
// onStartFn is called when the tray is ready (start the reactor here).
// onExitFn is called when the tray exits (cleanup here).
func Run(onStartFn, onExitFn func()) {
	onStart = onStartFn
	onExit = onExitFn
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

// Events returns the menu click events.
func Events() <-chan models.MenuEvent {
	return events
}

// Indicator reflects the mute state in the tray.
type Indicator struct{}

// SetMuted updates the icon, status line and tooltip.
func (Indicator) SetMuted(muted bool) {
	mu.Lock()
	defer mu.Unlock()
	view.Muted = muted
	render()
}

// SetShortcut shows the active toggle shortcut in the menu.
func SetShortcut(shortcut string) {
	mu.Lock()
	defer mu.Unlock()
	view.Shortcut = shortcut
	render()
}

func onReady() {
	systray.SetTitle("")

	header := systray.AddMenuItem("Mic Mute", "")
	header.Disable()

	statusItem = systray.AddMenuItem("", "")
	statusItem.Disable()

	systray.AddSeparator()

	toggleItem = systray.AddMenuItem("Toggle mute", "")
	quitItem = systray.AddMenuItem("Quit", "Unmute and quit")

	mu.Lock()
	ready = true
	render()
	mu.Unlock()

	// Handle click events
	go handleClicks()

	if onStart != nil {
		onStart()
	}
}

func onQuit() {
	if onExit != nil {
		onExit()
	}
}

func handleClicks() {
	for {
		select {
		case <-toggleItem.ClickedCh:
			log.Trace().Msg("Toggle mute menu item selected")
			events <- models.MenuEvent{ID: models.MenuToggleMute}

		case <-quitItem.ClickedCh:
			log.Trace().Msg("Quit menu item selected")
			events <- models.MenuEvent{ID: models.MenuQuit}
		}
	}
}

// render must be called with mu held.
func render() {
	if !ready {
		return
	}
	if view.Muted {
		systray.SetTemplateIcon(mutedIcon, mutedIcon)
	} else {
		systray.SetTemplateIcon(unmutedIcon, unmutedIcon)
	}
	systray.SetTooltip(view.Tooltip())
	statusItem.SetTitle(view.StatusTitle())
	toggleItem.SetTitle(view.ToggleTitle())
	toggleItem.SetTooltip(view.ToggleTooltip())
}
