package hotkey

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/micmute/micmute/internal/models"
)

// ErrClosed is returned by Bind after Close.
var ErrClosed = errors.New("hotkey binder closed")

// Registrar registers a shortcut with the operating system. notify is called
// for every key transition until the returned unregister func is called.
type Registrar interface {
	Register(s Shortcut, notify func(models.HotkeyState)) (unregister func() error, err error)
}

// RegistrationError reports a shortcut the OS refused, typically because
// another application already owns it.
type RegistrationError struct {
	Shortcut string
	Err      error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("failed to register shortcut %s: %v", e.Shortcut, e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// Binder keeps one toggle shortcut registered and funnels its key events
// into a single channel that survives rebinding.
type Binder struct {
	reg    Registrar
	events chan models.HotkeyEvent
	done   chan struct{}

	mu         sync.Mutex
	current    Shortcut
	unregister func() error
	closed     bool
}

// NewBinder creates a binder with nothing registered.
func NewBinder(reg Registrar) *Binder {
	return &Binder{
		reg:    reg,
		events: make(chan models.HotkeyEvent, 16),
		done:   make(chan struct{}),
	}
}

// Events returns the channel of key events for the bound shortcut.
func (b *Binder) Events() <-chan models.HotkeyEvent {
	return b.events
}

// Shortcut returns the currently bound shortcut.
func (b *Binder) Shortcut() Shortcut {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Bind registers s and then releases the previous shortcut. If s can't be
// registered the previous shortcut stays active and a *RegistrationError is
// returned.
func (b *Binder) Bind(s Shortcut) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}
	if b.unregister != nil && b.current.Equal(s) {
		return nil
	}

	unregister, err := b.reg.Register(s, b.emit)
	if err != nil {
		return &RegistrationError{Shortcut: s.String(), Err: err}
	}

	previous, old := b.current, b.unregister
	b.current, b.unregister = s, unregister
	if old != nil {
		if err := old(); err != nil {
			log.Warn().Err(err).Str("shortcut", previous.String()).Msg("Failed to unregister previous shortcut")
		}
	}

	log.Info().Str("shortcut", s.String()).Msg("Registered toggle shortcut")
	return nil
}

// Close unregisters the shortcut. Pending events are not delivered.
func (b *Binder) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	close(b.done)

	if b.unregister == nil {
		return nil
	}
	err := b.unregister()
	b.unregister = nil
	return err
}

func (b *Binder) emit(state models.HotkeyState) {
	select {
	case b.events <- models.HotkeyEvent{ID: models.HotkeyToggleMute, State: state}:
	case <-b.done:
	}
}
