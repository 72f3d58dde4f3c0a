package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micmute/micmute/internal/config"
	"github.com/micmute/micmute/internal/models"
)

func TestWatcherReportsSettingsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.SettingsFileName)
	require.NoError(t, config.SaveSettings(path, models.NewSettings()))

	w, err := New(path)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, config.SaveSettings(path, &models.Settings{Shortcut: "CTRL+K"}))

	select {
	case ev := <-w.Events():
		assert.Equal(t, filepath.Clean(path), ev.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("no settings event")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.SettingsFileName)

	w, err := New(path)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))

	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event for %s", ev.Path)
	case <-time.After(3 * DebounceDelay):
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), config.SettingsFileName))
	require.NoError(t, err)
	require.NoError(t, w.Start())
	w.Stop()
	w.Stop()
}
