package popup

import (
	"sync"

	"github.com/gen2brain/beeep"
)

// NotifyWindow is a Window rendered as desktop notifications. It keeps the
// geometry a real window would have so placement and monitor detection
// behave the same, and raises a notification whenever the popup becomes
// visible or its text changes while visible.
type NotifyWindow struct {
	mu       sync.Mutex
	monitors []Monitor
	title    string
	visible  bool
	placed   bool
	size     Size
	pos      Point
	notify   func(title string) error
}

// NewNotifyWindow creates a hidden window spanning the given monitors.
func NewNotifyWindow(monitors []Monitor) *NotifyWindow {
	return &NotifyWindow{
		monitors: monitors,
		notify: func(title string) error {
			return beeep.Notify(title, "Microphone "+title, "")
		},
	}
}

func (w *NotifyWindow) SetTitle(title string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	changed := title != w.title
	w.title = title
	if changed && w.visible {
		return w.notify(title)
	}
	return nil
}

func (w *NotifyWindow) SetVisible(visible bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	shown := visible && !w.visible
	w.visible = visible
	if shown {
		return w.notify(w.title)
	}
	return nil
}

func (w *NotifyWindow) SetInnerSize(size Size) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.size = size
	return nil
}

func (w *NotifyWindow) SetOuterPosition(pos Point) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pos = pos
	w.placed = true
	return nil
}

// MonitorFromPoint returns the monitor containing p.
func (w *NotifyWindow) MonitorFromPoint(p Point) (Monitor, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return monitorAt(w.monitors, p)
}

// CurrentMonitor returns the monitor under the window's centre. An unplaced
// window has no monitor.
func (w *NotifyWindow) CurrentMonitor() (Monitor, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.placed {
		return Monitor{}, false
	}
	centre := Point{
		X: w.pos.X + float64(w.size.Width)/2,
		Y: w.pos.Y + float64(w.size.Height)/2,
	}
	return monitorAt(w.monitors, centre)
}

// Visible reports whether the popup is showing.
func (w *NotifyWindow) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

func monitorAt(monitors []Monitor, p Point) (Monitor, bool) {
	for _, m := range monitors {
		if m.Contains(p) {
			return m, true
		}
	}
	return Monitor{}, false
}
