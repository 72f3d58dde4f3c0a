// Package popup renders the transient on-screen mute confirmation.
package popup

import "fmt"

// Point is a position in screen coordinates.
type Point struct {
	X, Y float64
}

// Size is a window size in logical units.
type Size struct {
	Width, Height int
}

// Monitor is a physical display and its geometry.
type Monitor struct {
	Name          string
	X, Y          int
	Width, Height int
}

// Contains reports whether p lies on the monitor.
func (m Monitor) Contains(p Point) bool {
	return p.X >= float64(m.X) && p.X < float64(m.X+m.Width) &&
		p.Y >= float64(m.Y) && p.Y < float64(m.Y+m.Height)
}

func (m Monitor) String() string {
	return fmt.Sprintf("%s %dx%d+%d+%d", m.Name, m.Width, m.Height, m.X, m.Y)
}

//go:generate mockgen -source $GOFILE -destination window_mocks.go -package $GOPACKAGE

// Window is the popup window the presenter drives. It never creates
// windows, it only calls these primitives.
type Window interface {
	SetTitle(title string) error
	SetVisible(visible bool) error
	SetInnerSize(size Size) error
	SetOuterPosition(pos Point) error
	MonitorFromPoint(p Point) (Monitor, bool)
	CurrentMonitor() (Monitor, bool)
}

// Pointer locates the mouse cursor.
type Pointer interface {
	CursorPosition() (Point, bool)
}

// WindowError reports a failed window operation.
type WindowError struct {
	Op  string
	Err error
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("popup %s: %v", e.Op, e.Err)
}

func (e *WindowError) Unwrap() error {
	return e.Err
}
