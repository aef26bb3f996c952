package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsYAMLChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "game.yaml"), []byte("win_score: 20\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, "game.yaml", filepath.Base(name))
	case <-time.After(2 * time.Second):
		t.Fatal("no event for game.yaml")
	}
}

func TestWatcherPollAndClose(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	_, ok := w.Poll()
	assert.False(t, ok)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, open := <-w.Events
	assert.False(t, open)

	var nilWatcher *Watcher
	_, ok = nilWatcher.Poll()
	assert.False(t, ok)
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestIsSpecFile(t *testing.T) {
	assert.True(t, isSpecFile("prefabs/game.yaml"))
	assert.True(t, isSpecFile("GAME.YML"))
	assert.False(t, isSpecFile("game.yaml.swp"))
	assert.False(t, isSpecFile("prefabs"))
}
