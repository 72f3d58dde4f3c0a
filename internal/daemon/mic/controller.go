// Package mic owns the microphone mute state and the device controllers
// that apply it.
package mic

import (
	"context"
	"fmt"
	"sync"
)

//go:generate mockgen -source $GOFILE -destination controller_mocks.go -package $GOPACKAGE

// Controller performs the actual device mute/unmute.
type Controller interface {
	// Toggle forces the device to *desired, or flips it when desired is nil,
	// and returns the resulting muted flag.
	Toggle(ctx context.Context, desired *bool) (bool, error)
	// Muted reads the current device state.
	Muted(ctx context.Context) (bool, error)
}

// Force returns a desired state for Toggle.
func Force(muted bool) *bool {
	return &muted
}

// DeviceError reports a failed device-level mute operation.
type DeviceError struct {
	Op  string
	Err error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("mic %s: %v", e.Op, e.Err)
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

// Memory is a Controller without a device, used for dry runs and on
// platforms without a supported mixer.
type Memory struct {
	mu    sync.Mutex
	muted bool
}

// NewMemory creates an in-memory controller starting in the given state.
func NewMemory(muted bool) *Memory {
	return &Memory{muted: muted}
}

func (m *Memory) Toggle(_ context.Context, desired *bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if desired != nil {
		m.muted = *desired
	} else {
		m.muted = !m.muted
	}
	return m.muted, nil
}

func (m *Memory) Muted(_ context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted, nil
}
