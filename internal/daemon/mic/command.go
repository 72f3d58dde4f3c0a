package mic

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// ErrUnsupported is returned when no mixer command exists for the platform.
var ErrUnsupported = errors.New("no supported mixer on this platform")

// runner executes a command and returns its trimmed stdout.
type runner func(ctx context.Context, name string, args ...string) (string, error)

func execRunner(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// NewSystemController returns the mixer controller for the running platform.
func NewSystemController() (Controller, error) {
	switch runtime.GOOS {
	case "linux":
		if _, err := exec.LookPath("pactl"); err != nil {
			return nil, fmt.Errorf("%w: pactl not found", ErrUnsupported)
		}
		return NewPulse(), nil
	case "darwin":
		return NewAppleScript(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, runtime.GOOS)
	}
}

// DefaultSource is the PulseAudio/PipeWire name of the default input.
const DefaultSource = "@DEFAULT_SOURCE@"

// Pulse mutes the default input through pactl. It works with both
// PulseAudio and PipeWire's pulse server.
type Pulse struct {
	Source string
	run    runner
}

// NewPulse creates a controller for the default source.
func NewPulse() *Pulse {
	return &Pulse{Source: DefaultSource, run: execRunner}
}

// Toggle reads the current state for a flip and then sets an explicit
// value, so the result is known even when the readback fails.
func (p *Pulse) Toggle(ctx context.Context, desired *bool) (bool, error) {
	var target bool
	if desired != nil {
		target = *desired
	} else {
		current, err := p.Muted(ctx)
		if err != nil {
			return false, err
		}
		target = !current
	}

	arg := "0"
	if target {
		arg = "1"
	}
	if _, err := p.run(ctx, "pactl", "set-source-mute", p.Source, arg); err != nil {
		return false, err
	}

	muted, err := p.Muted(ctx)
	if err != nil {
		log.Warn().Err(err).Bool("muted", target).Msg("Failed to read back source mute, assuming it was applied")
		return target, nil
	}
	return muted, nil
}

func (p *Pulse) Muted(ctx context.Context) (bool, error) {
	out, err := p.run(ctx, "pactl", "get-source-mute", p.Source)
	if err != nil {
		return false, err
	}
	return parsePulseMute(out)
}

// parsePulseMute parses "Mute: yes" / "Mute: no".
func parsePulseMute(out string) (bool, error) {
	key, val, ok := strings.Cut(out, ":")
	if !ok || strings.TrimSpace(key) != "Mute" {
		return false, fmt.Errorf("unexpected pactl output %q", out)
	}
	switch strings.TrimSpace(val) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, fmt.Errorf("unexpected pactl output %q", out)
	}
}

// defaultInputVolume is restored on unmute when no level was saved.
const defaultInputVolume = 75

// AppleScript mutes the macOS input by setting the input volume to zero and
// restores the previous level on unmute.
type AppleScript struct {
	mu    sync.Mutex
	saved int
	run   runner
}

// NewAppleScript creates a controller for the macOS default input.
func NewAppleScript() *AppleScript {
	return &AppleScript{saved: defaultInputVolume, run: execRunner}
}

func (a *AppleScript) Toggle(ctx context.Context, desired *bool) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	volume, err := a.inputVolume(ctx)
	if err != nil {
		return false, err
	}

	target := volume != 0
	if desired != nil {
		target = *desired
	}

	level := a.saved
	if target {
		if volume > 0 {
			a.saved = volume
		}
		level = 0
	}
	script := "set volume input volume " + strconv.Itoa(level)
	if _, err := a.run(ctx, "osascript", "-e", script); err != nil {
		return false, err
	}

	volume, err = a.inputVolume(ctx)
	if err != nil {
		log.Warn().Err(err).Bool("muted", target).Msg("Failed to read back input volume, assuming it was applied")
		return target, nil
	}
	return volume == 0, nil
}

func (a *AppleScript) Muted(ctx context.Context) (bool, error) {
	volume, err := a.inputVolume(ctx)
	if err != nil {
		return false, err
	}
	return volume == 0, nil
}

func (a *AppleScript) inputVolume(ctx context.Context) (int, error) {
	out, err := a.run(ctx, "osascript", "-e", "input volume of (get volume settings)")
	if err != nil {
		return 0, err
	}
	volume, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("unexpected osascript output %q", out)
	}
	return volume, nil
}
