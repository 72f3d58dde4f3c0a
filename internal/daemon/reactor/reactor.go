// Package reactor is the agent's event loop. One goroutine owns the loop and
// every popup mutation; the only cross-goroutine traffic is timers posting
// messages back into the loop.
package reactor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/micmute/micmute/internal/daemon/mic"
	"github.com/micmute/micmute/internal/daemon/throttle"
	"github.com/micmute/micmute/internal/models"
)

const (
	// DefaultHideDelay is how long the "Unmuted" confirmation stays up.
	DefaultHideDelay = time.Second
	// DefaultThrottleWindow gates cursor detection and device re-mute.
	DefaultThrottleWindow = 200 * time.Millisecond
)

// Config holds optional reactor settings.
type Config struct {
	HideDelay time.Duration
	Clock     clockwork.Clock
	Indicator Indicator
}

// Reactor serializes hotkey presses, menu clicks, background ticks and its
// own delayed messages into mute state transitions and popup renders.
type Reactor struct {
	store     Store
	popup     Presenter
	throttle  *throttle.Throttle
	clock     clockwork.Clock
	hideDelay time.Duration
	indicator Indicator

	messages chan Message
	done     chan struct{}

	// generation counts committed toggles. A HidePopup carries the value at
	// scheduling time.
	generation uint64
}

// New creates a reactor. Run must be called at most once.
func New(store Store, popup Presenter, th *throttle.Throttle, cfg Config) *Reactor {
	if cfg.HideDelay <= 0 {
		cfg.HideDelay = DefaultHideDelay
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	return &Reactor{
		store:     store,
		popup:     popup,
		throttle:  th,
		clock:     cfg.Clock,
		hideDelay: cfg.HideDelay,
		indicator: cfg.Indicator,
		messages:  make(chan Message, 16),
		done:      make(chan struct{}),
	}
}

// Run processes events until the Quit menu item is selected, returning nil,
// or until ctx is canceled, returning ctx.Err(). Both paths force the
// microphone unmuted first.
//
// Each wake blocks for any event, then takes whatever else is already
// pending without blocking, and handles the batch in a fixed order:
// native, menu, hotkey, internal message.
func (r *Reactor) Run(ctx context.Context, src Sources) error {
	defer close(r.done)

	log.Debug().Msg("Starting event loop")
	r.indicate(r.store.Muted())

	for {
		var p pending
		select {
		case <-ctx.Done():
			log.Info().Msg("Event loop stopping (context canceled)")
			r.unmuteForExit(ctx)
			return ctx.Err()

		case now, ok := <-src.Native:
			if !ok {
				src.Native = nil
				continue
			}
			p.native = &now

		case ev, ok := <-src.Menu:
			if !ok {
				log.Debug().Msg("Menu source closed")
				src.Menu = nil
				continue
			}
			p.menu = &ev

		case ev, ok := <-src.Hotkey:
			if !ok {
				log.Debug().Msg("Hotkey source closed")
				src.Hotkey = nil
				continue
			}
			p.hotkey = &ev

		case msg := <-r.messages:
			p.message = msg
		}

		r.collect(&p, &src)

		if r.tick(ctx, p) {
			log.Info().Msg("Event loop stopping (quit)")
			return nil
		}
	}
}

// collect fills the empty slots of p with events that are already pending.
func (r *Reactor) collect(p *pending, src *Sources) {
	if p.native == nil && src.Native != nil {
		select {
		case now, ok := <-src.Native:
			if ok {
				p.native = &now
			} else {
				src.Native = nil
			}
		default:
		}
	}
	if p.menu == nil && src.Menu != nil {
		select {
		case ev, ok := <-src.Menu:
			if ok {
				p.menu = &ev
			} else {
				src.Menu = nil
			}
		default:
		}
	}
	if p.hotkey == nil && src.Hotkey != nil {
		select {
		case ev, ok := <-src.Hotkey:
			if ok {
				p.hotkey = &ev
			} else {
				src.Hotkey = nil
			}
		default:
		}
	}
	if p.message == nil {
		select {
		case msg := <-r.messages:
			p.message = msg
		default:
		}
	}
}

// tick handles one batch and reports whether the loop must stop. A panic in
// a collaborator is logged and the loop carries on.
func (r *Reactor) tick(ctx context.Context, p pending) (quit bool) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Str("panic", fmt.Sprint(rec)).Msg("Recovered from panic in event loop tick")
			quit = false
		}
	}()

	if p.native != nil {
		r.handleNative(ctx, *p.native)
	}
	if p.menu != nil && r.handleMenu(ctx, *p.menu) {
		return true
	}
	if p.hotkey != nil {
		r.handleHotkey(ctx, *p.hotkey)
	}
	if p.message != nil {
		r.handleMessage(p.message)
	}
	return false
}

// handleNative runs the throttled background work: re-mute the device while
// muted, then re-detect the cursor monitor and follow it.
func (r *Reactor) handleNative(ctx context.Context, now time.Time) {
	if !r.throttle.Available() {
		return
	}
	log.Trace().Time("at", now).Msg("Background tick")

	if r.store.Muted() {
		muted, err := r.store.Toggle(ctx, mic.Force(true))
		if err != nil {
			log.Warn().Err(err).Msg("Failed to re-mute microphone")
		} else {
			r.render(muted)
		}
	}

	if err := r.popup.DetectCursorMonitor(); err != nil {
		log.Warn().Err(err).Msg("Failed to detect cursor monitor")
	}
	if r.popup.CursorOnSeparateMonitor() {
		if err := r.popup.UpdatePlacement(); err != nil {
			log.Warn().Err(err).Msg("Failed to move popup")
		}
	}

	if err := r.throttle.Accept(); err != nil {
		log.Trace().Err(err).Msg("Throttle rejected tick")
	}
}

func (r *Reactor) handleMenu(ctx context.Context, ev models.MenuEvent) bool {
	switch ev.ID {
	case models.MenuToggleMute:
		log.Debug().Msg("Toggle mic tray menu item selected")
		r.toggle(ctx, "menu")
	case models.MenuQuit:
		log.Debug().Msg("Quit tray menu item selected")
		r.unmuteForExit(ctx)
		return true
	default:
		log.Debug().Str("id", string(ev.ID)).Msg("Ignoring unknown menu event")
	}
	return false
}

func (r *Reactor) handleHotkey(ctx context.Context, ev models.HotkeyEvent) {
	if ev.ID != models.HotkeyToggleMute || ev.State != models.HotkeyPressed {
		return
	}
	log.Debug().Msg("Toggle mic shortcut activated")
	r.toggle(ctx, "hotkey")
}

func (r *Reactor) handleMessage(msg Message) {
	switch m := msg.(type) {
	case HidePopup:
		r.handleHide(m)
	default:
		log.Debug().Str("type", fmt.Sprintf("%T", msg)).Msg("Ignoring unknown message")
	}
}

// handleHide hides the popup unless the message went stale.
func (r *Reactor) handleHide(m HidePopup) {
	logger := log.With().Str("hide_id", m.ID.String()).Uint64("generation", m.Generation).Logger()

	if m.Generation != r.generation {
		logger.Debug().Uint64("current", r.generation).Msg("Ignoring stale hide (toggled since)")
		return
	}
	if r.store.Muted() {
		logger.Debug().Msg("Ignoring stale hide (muted)")
		return
	}
	if err := r.popup.Hide(); err != nil {
		logger.Error().Err(err).Msg("Failed to hide popup")
		return
	}
	logger.Debug().Msg("Popup hidden")
}

// toggle flips the mute state, renders it and, when now unmuted, schedules
// the popup to hide. A device failure leaves state and popup untouched.
func (r *Reactor) toggle(ctx context.Context, source string) {
	muted, err := r.store.Toggle(ctx, nil)
	if err != nil {
		log.Error().Err(err).Str("source", source).Msg("Failed to toggle microphone")
		return
	}
	r.generation++

	log.Info().Bool("muted", muted).Str("source", source).Uint64("generation", r.generation).Msg("Microphone toggled")
	r.render(muted)
	if !muted {
		r.scheduleHide()
	}
}

func (r *Reactor) render(muted bool) {
	r.indicate(muted)
	if err := r.popup.Update(muted); err != nil {
		log.Error().Err(err).Bool("muted", muted).Msg("Failed to update popup")
	}
}

func (r *Reactor) indicate(muted bool) {
	if r.indicator != nil {
		r.indicator.SetMuted(muted)
	}
}

func (r *Reactor) scheduleHide() {
	msg := HidePopup{ID: uuid.New(), Generation: r.generation}
	r.clock.AfterFunc(r.hideDelay, func() {
		r.post(msg)
	})
	log.Trace().Str("hide_id", msg.ID.String()).Dur("delay", r.hideDelay).Msg("Scheduled popup hide")
}

// post delivers msg to the loop. It is safe to call from any goroutine and
// drops the message once the loop has exited.
func (r *Reactor) post(msg Message) {
	select {
	case r.messages <- msg:
	case <-r.done:
	}
}

// unmuteForExit restores the hardware to unmuted so the agent never leaves
// the microphone muted behind it.
func (r *Reactor) unmuteForExit(ctx context.Context) {
	muted, err := r.store.Toggle(context.WithoutCancel(ctx), mic.Force(false))
	if err != nil {
		log.Error().Err(err).Msg("Failed to unmute microphone before exit")
		return
	}
	r.indicate(muted)
}
