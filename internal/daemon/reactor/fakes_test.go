package reactor

import (
	"context"
	"errors"
	"sync"

	"github.com/micmute/micmute/internal/daemon/mic"
)

// recordingController is an in-memory device that records every call and
// can be told to fail.
type recordingController struct {
	mu    sync.Mutex
	dev   *mic.Memory
	calls []string
	fail  bool
}

func newRecordingController(muted bool) *recordingController {
	return &recordingController{dev: mic.NewMemory(muted)}
}

func (c *recordingController) Toggle(ctx context.Context, desired *bool) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	call := "toggle"
	if desired != nil {
		call = "force-unmute"
		if *desired {
			call = "force-mute"
		}
	}
	c.calls = append(c.calls, call)
	if c.fail {
		return false, errors.New("device unplugged")
	}
	return c.dev.Toggle(ctx, desired)
}

func (c *recordingController) Muted(ctx context.Context) (bool, error) {
	return c.dev.Muted(ctx)
}

func (c *recordingController) setFail(fail bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fail = fail
}

func (c *recordingController) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

func (c *recordingController) DeviceMuted() bool {
	muted, _ := c.dev.Muted(context.Background())
	return muted
}

// fakePresenter records calls and mirrors the popup rules.
type fakePresenter struct {
	mu        sync.Mutex
	calls     []string
	visible   bool
	text      string
	separate  bool
	updateErr error
	panicOnce bool
}

func (p *fakePresenter) Update(muted bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.panicOnce {
		p.panicOnce = false
		panic("window vanished")
	}
	if muted {
		p.calls = append(p.calls, "update:muted")
	} else {
		p.calls = append(p.calls, "update:unmuted")
	}
	if p.updateErr != nil {
		return p.updateErr
	}
	p.text = "Unmuted"
	if muted {
		p.text = "Muted"
		p.visible = true
	}
	return nil
}

func (p *fakePresenter) Hide() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, "hide")
	p.visible = false
	return nil
}

func (p *fakePresenter) UpdatePlacement() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, "place")
	p.separate = false
	return nil
}

func (p *fakePresenter) DetectCursorMonitor() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, "detect")
	return nil
}

func (p *fakePresenter) CursorOnSeparateMonitor() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.separate
}

func (p *fakePresenter) setSeparate(separate bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.separate = separate
}

func (p *fakePresenter) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

func (p *fakePresenter) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

func (p *fakePresenter) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.text
}

// fakeIndicator remembers the last state it was given.
type fakeIndicator struct {
	mu    sync.Mutex
	muted bool
	calls int
}

func (i *fakeIndicator) SetMuted(muted bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.muted = muted
	i.calls++
}

func (i *fakeIndicator) Muted() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.muted
}
