package prefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")
	store := NewFileStore(path)

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, Prefs{Theme: ThemeDark}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "theme: dark\n", string(data))

	p, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, p.Theme)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files left behind")
}

func TestFileStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
