package mic

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pulseRunner emulates pactl on a single source.
type pulseRunner struct {
	muted bool
	calls []string
	// failSet fails set-source-mute without applying it.
	failSet bool
	// failReadback fails get-source-mute once a set has been applied.
	failReadback bool
	applied      bool
}

func (p *pulseRunner) run(_ context.Context, name string, args ...string) (string, error) {
	call := strings.Join(append([]string{name}, args...), " ")
	p.calls = append(p.calls, call)
	if name != "pactl" || len(args) < 2 || args[1] != DefaultSource {
		return "", errors.New("unexpected command: " + call)
	}

	switch {
	case args[0] == "get-source-mute" && len(args) == 2:
		if p.failReadback && p.applied {
			return "", errors.New("pactl: connection timed out")
		}
		if p.muted {
			return "Mute: yes", nil
		}
		return "Mute: no", nil
	case args[0] == "set-source-mute" && len(args) == 3:
		if p.failSet {
			return "", errors.New("pactl: access denied")
		}
		p.muted = args[2] == "1"
		p.applied = true
		return "", nil
	}
	return "", errors.New("unexpected command: " + call)
}

func TestParsePulseMute(t *testing.T) {
	tests := []struct {
		name     string
		out      string
		expected bool
		wantErr  bool
	}{
		{name: "muted", out: "Mute: yes", expected: true},
		{name: "unmuted", out: "Mute: no", expected: false},
		{name: "extra spaces", out: "Mute:   yes ", expected: true},
		{name: "garbage", out: "Connection failure", wantErr: true},
		{name: "unknown value", out: "Mute: maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			muted, err := parsePulseMute(tt.out)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, muted)
		})
	}
}

func TestPulseToggle(t *testing.T) {
	r := &pulseRunner{}
	p := &Pulse{Source: DefaultSource, run: r.run}
	ctx := context.Background()

	muted, err := p.Toggle(ctx, nil)
	require.NoError(t, err)
	assert.True(t, muted)

	muted, err = p.Toggle(ctx, Force(true))
	require.NoError(t, err)
	assert.True(t, muted)

	muted, err = p.Toggle(ctx, Force(false))
	require.NoError(t, err)
	assert.False(t, muted)

	assert.Equal(t, []string{
		"pactl get-source-mute @DEFAULT_SOURCE@",
		"pactl set-source-mute @DEFAULT_SOURCE@ 1",
		"pactl get-source-mute @DEFAULT_SOURCE@",
		"pactl set-source-mute @DEFAULT_SOURCE@ 1",
		"pactl get-source-mute @DEFAULT_SOURCE@",
		"pactl set-source-mute @DEFAULT_SOURCE@ 0",
		"pactl get-source-mute @DEFAULT_SOURCE@",
	}, r.calls)
}

func TestPulseToggleFailure(t *testing.T) {
	r := &pulseRunner{failSet: true}
	p := &Pulse{Source: DefaultSource, run: r.run}

	_, err := p.Toggle(context.Background(), nil)
	assert.Error(t, err)
	assert.False(t, r.muted)
	assert.Equal(t, []string{
		"pactl get-source-mute @DEFAULT_SOURCE@",
		"pactl set-source-mute @DEFAULT_SOURCE@ 1",
	}, r.calls, "state must not be queried after a failed set")
}

func TestPulseReadbackFailureKeepsStoreInSync(t *testing.T) {
	r := &pulseRunner{failReadback: true}
	store := NewStore(&Pulse{Source: DefaultSource, run: r.run}, DefaultTimeout)
	ctx := context.Background()

	muted, err := store.Toggle(ctx, nil)
	require.NoError(t, err)
	assert.True(t, muted)
	assert.True(t, r.muted)
	assert.Equal(t, r.muted, store.Muted())

	muted, err = store.Toggle(ctx, Force(false))
	require.NoError(t, err)
	assert.False(t, muted)
	assert.Equal(t, r.muted, store.Muted())
}

// volumeRunner emulates osascript's input volume.
type volumeRunner struct {
	volume int
	// failReadback fails volume reads once a level has been set.
	failReadback bool
	applied      bool
}

func (v *volumeRunner) run(_ context.Context, name string, args ...string) (string, error) {
	if name != "osascript" || len(args) != 2 {
		return "", errors.New("unexpected command")
	}
	script := args[1]
	if script == "input volume of (get volume settings)" {
		if v.failReadback && v.applied {
			return "", errors.New("osascript: execution error")
		}
		return strconv.Itoa(v.volume), nil
	}
	var level int
	if _, err := fmt.Sscanf(script, "set volume input volume %d", &level); err != nil {
		return "", err
	}
	v.volume = level
	v.applied = true
	return "", nil
}

func TestAppleScriptRestoresVolume(t *testing.T) {
	v := &volumeRunner{volume: 60}
	a := &AppleScript{saved: defaultInputVolume, run: v.run}
	ctx := context.Background()

	muted, err := a.Toggle(ctx, nil)
	require.NoError(t, err)
	assert.True(t, muted)
	assert.Equal(t, 0, v.volume)

	// Forcing mute again must not overwrite the saved level with zero.
	muted, err = a.Toggle(ctx, Force(true))
	require.NoError(t, err)
	assert.True(t, muted)

	muted, err = a.Toggle(ctx, nil)
	require.NoError(t, err)
	assert.False(t, muted)
	assert.Equal(t, 60, v.volume)
}

func TestAppleScriptUnmuteWithoutSavedLevel(t *testing.T) {
	v := &volumeRunner{volume: 0}
	a := &AppleScript{saved: defaultInputVolume, run: v.run}

	muted, err := a.Toggle(context.Background(), Force(false))
	require.NoError(t, err)
	assert.False(t, muted)
	assert.Equal(t, defaultInputVolume, v.volume)
}

func TestAppleScriptReadbackFailureKeepsStoreInSync(t *testing.T) {
	v := &volumeRunner{volume: 40, failReadback: true}
	store := NewStore(&AppleScript{saved: defaultInputVolume, run: v.run}, DefaultTimeout)

	muted, err := store.Toggle(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, muted)
	assert.Equal(t, 0, v.volume)
	assert.True(t, store.Muted())
}
