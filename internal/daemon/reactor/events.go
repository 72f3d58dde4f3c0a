package reactor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/micmute/micmute/internal/models"
)

// Sources are the external event streams the reactor multiplexes. A nil or
// closed source is simply never selected.
type Sources struct {
	// Native carries low-priority background ticks that drive cursor and
	// monitor re-detection.
	Native <-chan time.Time
	Menu   <-chan models.MenuEvent
	Hotkey <-chan models.HotkeyEvent
}

// Message is posted back into the loop by the reactor's own timers.
type Message interface {
	messageMarker()
}

// HidePopup asks the loop to hide the popup. It is stale, and ignored, when
// the mute state was toggled again or is muted at delivery.
type HidePopup struct {
	ID         uuid.UUID
	Generation uint64
}

func (HidePopup) messageMarker() {}

// Store is the mute state the reactor mutates.
type Store interface {
	Muted() bool
	Toggle(ctx context.Context, desired *bool) (bool, error)
}

// Presenter is the popup the reactor renders into.
type Presenter interface {
	Update(muted bool) error
	Hide() error
	UpdatePlacement() error
	DetectCursorMonitor() error
	CursorOnSeparateMonitor() bool
}

// Indicator mirrors the mute state outside the popup, e.g. the tray icon.
type Indicator interface {
	SetMuted(muted bool)
}

// pending holds at most one event per source for a single wake.
type pending struct {
	native  *time.Time
	menu    *models.MenuEvent
	hotkey  *models.HotkeyEvent
	message Message
}
