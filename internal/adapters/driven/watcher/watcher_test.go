package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitForCallback waits up to timeout for the callback channel to receive a value.
func waitForCallback(ch <-chan string, timeout time.Duration) (string, bool) {
	select {
	case v := <-ch:
		return v, true
	case <-time.After(timeout):
		return "", false
	}
}

func startWatcher(t *testing.T, dir string) (*Watcher, <-chan string) {
	t.Helper()
	w, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	changed := make(chan string, 16)
	require.NoError(t, w.Watch(dir, func(path string) {
		select {
		case changed <- path:
		default:
		}
	}))
	time.Sleep(50 * time.Millisecond)
	return w, changed
}

func TestWatcher_DetectsFileChange(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(file, []byte("original"), 0o600))
	_, changed := startWatcher(t, dir)

	require.NoError(t, os.WriteFile(file, []byte("modified"), 0o600))

	path, ok := waitForCallback(changed, 2*time.Second)
	require.True(t, ok, "expected callback for file change")
	assert.Equal(t, file, path)
}

func TestWatcher_WatchesNewDirectories(t *testing.T) {
	dir := t.TempDir()
	w, changed := startWatcher(t, dir)

	sub := filepath.Join(dir, "chapter")
	require.NoError(t, os.Mkdir(sub, 0o755))
	assert.Eventually(t, func() bool {
		for _, p := range w.WatchList() {
			if p == sub {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)

	file := filepath.Join(sub, "one.md")
	require.NoError(t, os.WriteFile(file, []byte("# one"), 0o600))

	path, ok := waitForCallback(changed, 2*time.Second)
	require.True(t, ok, "expected callback for file in new directory")
	assert.Equal(t, file, path)
}

func TestWatcher_SkipsIgnoredDirectories(t *testing.T) {
	dir := t.TempDir()
	gitDir := filepath.Join(dir, ".git")
	require.NoError(t, os.Mkdir(gitDir, 0o755))
	w, _ := startWatcher(t, dir)

	assert.NotContains(t, w.WatchList(), gitDir)
	assert.Contains(t, w.WatchList(), dir)
}

func TestWatcher_IgnoresScratchFiles(t *testing.T) {
	dir := t.TempDir()
	_, changed := startWatcher(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".notes.txt.swp"), []byte("x"), 0o600))
	_, ok := waitForCallback(changed, 200*time.Millisecond)

	assert.False(t, ok)
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Watch(t.TempDir(), func(string) {}))

	require.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
	assert.ErrorIs(t, w.Watch(t.TempDir(), func(string) {}), ErrStopped)
}

func TestWatcher_RejectsFiles(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	assert.Error(t, w.Watch(file, func(string) {}))
	assert.Error(t, w.Watch(filepath.Join(t.TempDir(), "missing"), func(string) {}))
}

func TestShouldIgnorePath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/docs/notes.txt", false},
		{"/docs/.git/HEAD", true},
		{"/docs/node_modules/pkg/readme.md", true},
		{"/docs/draft.txt~", true},
		{"/docs/.notes.txt.swp", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, shouldIgnorePath(tt.path), tt.path)
	}
}
