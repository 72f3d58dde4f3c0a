package popup

import (
	"github.com/rs/zerolog/log"
)

// Text is the popup content.
type Text string

const (
	TextMuted   Text = "Muted"
	TextUnmuted Text = "Unmuted"
)

// TextFor returns the popup text for a mute state.
func TextFor(muted bool) Text {
	if muted {
		return TextMuted
	}
	return TextUnmuted
}

// PopupSize is the fixed popup size.
var PopupSize = Size{Width: 200, Height: 40}

// VisualState is what the presenter last applied to the window.
type VisualState struct {
	Visible  bool
	Text     Text
	Position Point
	// CursorOnSeparateMonitor is set by DetectCursorMonitor when the pointer
	// left the popup's monitor, and cleared when the popup is placed again.
	CursorOnSeparateMonitor bool
}

// Presenter decides popup visibility, content and placement from the mute
// state and the cursor location. It is not safe for concurrent use; the
// reactor is its only caller.
type Presenter struct {
	window  Window
	pointer Pointer
	state   VisualState
}

// NewPresenter creates a presenter for a hidden window.
func NewPresenter(window Window, pointer Pointer) *Presenter {
	return &Presenter{window: window, pointer: pointer}
}

// State returns the last applied visual state.
func (p *Presenter) State() VisualState {
	return p.state
}

// CursorOnSeparateMonitor reports whether the last detection pass found the
// cursor on another monitor than the popup.
func (p *Presenter) CursorOnSeparateMonitor() bool {
	return p.state.CursorOnSeparateMonitor
}

// Update sets the text for muted, places the popup and shows it when muted.
// Unmuting never hides the popup here; the delayed hide does that.
func (p *Presenter) Update(muted bool) error {
	text := TextFor(muted)
	if err := p.window.SetTitle(string(text)); err != nil {
		return &WindowError{Op: "set title", Err: err}
	}
	p.state.Text = text

	if err := p.UpdatePlacement(); err != nil {
		return err
	}

	if muted {
		if err := p.window.SetVisible(true); err != nil {
			return &WindowError{Op: "show", Err: err}
		}
		p.state.Visible = true
	}
	return nil
}

// Hide hides the popup. Hiding a hidden popup is a no-op.
func (p *Presenter) Hide() error {
	if err := p.window.SetVisible(false); err != nil {
		return &WindowError{Op: "hide", Err: err}
	}
	p.state.Visible = false
	return nil
}

// UpdatePlacement moves the popup onto the monitor under the cursor. When
// the cursor can't be located placement is skipped.
func (p *Presenter) UpdatePlacement() error {
	if err := p.window.SetInnerSize(PopupSize); err != nil {
		return &WindowError{Op: "resize", Err: err}
	}

	monitor, ok := p.cursorMonitor()
	if !ok {
		log.Trace().Msg("No cursor monitor, skipping placement")
		return nil
	}

	p.state.CursorOnSeparateMonitor = false
	pos := Placement(monitor, PopupSize)
	if err := p.window.SetOuterPosition(pos); err != nil {
		return &WindowError{Op: "move", Err: err}
	}
	p.state.Position = pos
	log.Trace().Str("monitor", monitor.Name).Float64("x", pos.X).Float64("y", pos.Y).Msg("Placed popup")
	return nil
}

// DetectCursorMonitor records whether the cursor is on another monitor than
// the popup window.
func (p *Presenter) DetectCursorMonitor() error {
	cursorMonitor, ok := p.cursorMonitor()
	if !ok {
		return nil
	}
	windowMonitor, ok := p.window.CurrentMonitor()
	if !ok {
		return nil
	}
	p.state.CursorOnSeparateMonitor = windowMonitor.Name != cursorMonitor.Name
	return nil
}

func (p *Presenter) cursorMonitor() (Monitor, bool) {
	if p.pointer == nil {
		return Monitor{}, false
	}
	pos, ok := p.pointer.CursorPosition()
	if !ok {
		return Monitor{}, false
	}
	log.Trace().Float64("x", pos.X).Float64("y", pos.Y).Msg("Found cursor position")
	return p.window.MonitorFromPoint(pos)
}

// Placement centres a popup of the given size horizontally on the monitor
// and anchors it two popup heights above the monitor's bottom edge.
func Placement(monitor Monitor, size Size) Point {
	return Point{
		X: (float64(monitor.Width)+float64(monitor.X))/2 - float64(size.Width)/2,
		Y: float64(monitor.Y) + float64(monitor.Height) - 2*float64(size.Height),
	}
}
