package popup

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// probeTimeout bounds each external probe command.
const probeTimeout = 500 * time.Millisecond

// DefaultMonitor is used when no monitor can be probed.
var DefaultMonitor = Monitor{Name: "default", Width: 1920, Height: 1080}

var geometryRe = regexp.MustCompile(`^(\d+)x(\d+)(?:\+(-?\d+)\+(-?\d+))?$`)

// ParseGeometry parses "WxH" or "WxH+X+Y" into a monitor named name.
func ParseGeometry(name, geometry string) (Monitor, error) {
	m := geometryRe.FindStringSubmatch(strings.TrimSpace(geometry))
	if m == nil {
		return Monitor{}, fmt.Errorf("invalid geometry %q (expected WxH or WxH+X+Y)", geometry)
	}
	monitor := Monitor{Name: name}
	monitor.Width, _ = strconv.Atoi(m[1])
	monitor.Height, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		monitor.X, _ = strconv.Atoi(m[3])
		monitor.Y, _ = strconv.Atoi(m[4])
	}
	if monitor.Width == 0 || monitor.Height == 0 {
		return Monitor{}, fmt.Errorf("invalid geometry %q: empty monitor", geometry)
	}
	return monitor, nil
}

// " 0: +*DP-1 2560/597x1440/336+0+0  DP-1"
var xrandrMonitorRe = regexp.MustCompile(`^\s*\d+:\s+\S+\s+(\d+)/\d+x(\d+)/\d+\+(-?\d+)\+(-?\d+)\s+(\S+)\s*$`)

// parseXrandrMonitors parses `xrandr --listmonitors` output.
func parseXrandrMonitors(out string) []Monitor {
	var monitors []Monitor
	for _, line := range strings.Split(out, "\n") {
		m := xrandrMonitorRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		monitor := Monitor{Name: m[5]}
		monitor.Width, _ = strconv.Atoi(m[1])
		monitor.Height, _ = strconv.Atoi(m[2])
		monitor.X, _ = strconv.Atoi(m[3])
		monitor.Y, _ = strconv.Atoi(m[4])
		monitors = append(monitors, monitor)
	}
	return monitors
}

// parseXdotoolLocation parses `xdotool getmouselocation --shell` output.
func parseXdotoolLocation(out string) (Point, bool) {
	var p Point
	var hasX, hasY bool
	for _, line := range strings.Split(out, "\n") {
		key, val, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			continue
		}
		switch key {
		case "X":
			p.X, hasX = float64(n), true
		case "Y":
			p.Y, hasY = float64(n), true
		}
	}
	return p, hasX && hasY
}

func probe(name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ProbeMonitors lists monitors through xrandr. It returns nil when xrandr
// is unavailable or reports nothing.
func ProbeMonitors() []Monitor {
	if _, err := exec.LookPath("xrandr"); err != nil {
		return nil
	}
	out, err := probe("xrandr", "--listmonitors")
	if err != nil {
		return nil
	}
	return parseXrandrMonitors(out)
}

// XPointer reads the cursor position through xdotool.
type XPointer struct{}

func (XPointer) CursorPosition() (Point, bool) {
	out, err := probe("xdotool", "getmouselocation", "--shell")
	if err != nil {
		return Point{}, false
	}
	return parseXdotoolLocation(out)
}

// FixedPointer reports a constant cursor position.
type FixedPointer struct {
	At Point
}

func (f FixedPointer) CursorPosition() (Point, bool) {
	return f.At, true
}

// NewPointer returns an xdotool pointer when available, and otherwise a
// pointer fixed at the centre of the first monitor.
func NewPointer(monitors []Monitor) Pointer {
	if _, err := exec.LookPath("xdotool"); err == nil {
		return XPointer{}
	}
	if len(monitors) == 0 {
		return nil
	}
	m := monitors[0]
	return FixedPointer{At: Point{
		X: float64(m.X) + float64(m.Width)/2,
		Y: float64(m.Y) + float64(m.Height)/2,
	}}
}
