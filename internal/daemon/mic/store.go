package mic

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultTimeout bounds a single device call.
const DefaultTimeout = 2 * time.Second

// Store is the single source of truth for the mute state. Toggles are
// serialized under the write lock together with the device call, so a
// second toggle always observes the result of the first.
type Store struct {
	mu      sync.RWMutex
	muted   bool
	ctl     Controller
	timeout time.Duration
}

// NewStore creates a store in the unmuted state. Call Sync to adopt the
// device's current state.
func NewStore(ctl Controller, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Store{ctl: ctl, timeout: timeout}
}

// Muted returns the last committed mute state.
func (s *Store) Muted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.muted
}

// Sync reads the device state into the store.
func (s *Store) Sync(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	muted, err := s.ctl.Muted(ctx)
	if err != nil {
		return s.muted, wrapDeviceError("read", err)
	}
	s.muted = muted
	return muted, nil
}

// Toggle forces the state to *desired, or flips it when desired is nil, and
// returns the committed state. On a device failure the previous state is
// kept and a *DeviceError is returned.
func (s *Store) Toggle(ctx context.Context, desired *bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	muted, err := s.ctl.Toggle(ctx, desired)
	if err != nil {
		return s.muted, wrapDeviceError("toggle", err)
	}
	s.muted = muted
	return muted, nil
}

func wrapDeviceError(op string, err error) error {
	var devErr *DeviceError
	if errors.As(err, &devErr) {
		return err
	}
	return &DeviceError{Op: op, Err: err}
}
