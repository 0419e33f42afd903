package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sites.csv")
	require.NoError(t, os.WriteFile(path, []byte("nickname\nA\n"), 0o644))

	var reloads atomic.Int32
	w := New(path, func(ctx context.Context) error {
		reloads.Add(1)
		return nil
	}, 20*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("nickname\nA\nB\n"), 0o644))
	}
	require.Eventually(t, func() bool { return reloads.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	// Other files in the directory are ignored.
	before := reloads.Load()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, before, reloads.Load())

	cancel()
	require.NoError(t, <-done)
}

func TestWatcherMissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "gone", "sites.csv"), func(context.Context) error { return nil }, 0, zerolog.Nop())
	assert.Error(t, w.Run(context.Background()))
}
