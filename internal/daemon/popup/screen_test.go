package popup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeometry(t *testing.T) {
	tests := []struct {
		name     string
		geometry string
		expected Monitor
		wantErr  bool
	}{
		{name: "size only", geometry: "1920x1080", expected: Monitor{Name: "m", Width: 1920, Height: 1080}},
		{name: "with offset", geometry: "2560x1440+1920+0", expected: Monitor{Name: "m", X: 1920, Width: 2560, Height: 1440}},
		{name: "negative offset", geometry: "1280x1024+-1280+-200", expected: Monitor{Name: "m", X: -1280, Y: -200, Width: 1280, Height: 1024}},
		{name: "garbage", geometry: "big", wantErr: true},
		{name: "zero size", geometry: "0x1080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseGeometry("m", tt.geometry)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}
}

func TestParseXrandrMonitors(t *testing.T) {
	out := `Monitors: 2
 0: +*DP-1 2560/597x1440/336+0+0  DP-1
 1: +HDMI-1 1920/527x1080/296+2560+180  HDMI-1
`
	monitors := parseXrandrMonitors(out)
	assert.Equal(t, []Monitor{
		{Name: "DP-1", Width: 2560, Height: 1440},
		{Name: "HDMI-1", X: 2560, Y: 180, Width: 1920, Height: 1080},
	}, monitors)

	assert.Empty(t, parseXrandrMonitors("Monitors: 0\n"))
}

func TestParseXdotoolLocation(t *testing.T) {
	p, ok := parseXdotoolLocation("X=1234\nY=567\nSCREEN=0\nWINDOW=41943047\n")
	require.True(t, ok)
	assert.Equal(t, Point{X: 1234, Y: 567}, p)

	_, ok = parseXdotoolLocation("X=12\n")
	assert.False(t, ok)
}

func TestMonitorContains(t *testing.T) {
	m := Monitor{X: 100, Y: 0, Width: 100, Height: 50}
	assert.True(t, m.Contains(Point{X: 100, Y: 0}))
	assert.True(t, m.Contains(Point{X: 199.5, Y: 49}))
	assert.False(t, m.Contains(Point{X: 200, Y: 10}))
	assert.False(t, m.Contains(Point{X: 150, Y: -1}))
}

func TestNewPointerFallback(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	assert.Nil(t, NewPointer(nil))

	p := NewPointer([]Monitor{{Name: "a", X: 100, Width: 200, Height: 100}})
	pos, ok := p.CursorPosition()
	require.True(t, ok)
	assert.Equal(t, Point{X: 200, Y: 50}, pos)
}

func TestNotifyWindowNotifications(t *testing.T) {
	var shown []string
	w := NewNotifyWindow([]Monitor{DefaultMonitor})
	w.notify = func(title string) error {
		shown = append(shown, title)
		return nil
	}

	require.NoError(t, w.SetTitle("Muted"))
	assert.Empty(t, shown, "hidden window must not notify")

	require.NoError(t, w.SetVisible(true))
	require.NoError(t, w.SetVisible(true))
	require.NoError(t, w.SetTitle("Muted"))
	assert.Equal(t, []string{"Muted"}, shown)

	require.NoError(t, w.SetTitle("Unmuted"))
	assert.Equal(t, []string{"Muted", "Unmuted"}, shown)

	require.NoError(t, w.SetVisible(false))
	assert.False(t, w.Visible())
	require.NoError(t, w.SetTitle("Muted"))
	assert.Len(t, shown, 2)
}
