package prefs

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	loadErr error
	saveErr error
	saved   []Prefs
}

func (f *failingStore) Load(ctx context.Context) (Prefs, error) {
	if f.loadErr != nil {
		return Prefs{}, f.loadErr
	}
	return Prefs{Theme: ThemeDark}, nil
}

func (f *failingStore) Save(ctx context.Context, p Prefs) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, p)
	return nil
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"light", ThemeLight, false},
		{" Dark ", ThemeDark, false},
		{"", "", true},
		{"purple", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTheme(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseViewMode(t *testing.T) {
	v, err := ParseViewMode("CHIP")
	require.NoError(t, err)
	assert.Equal(t, ViewChip, v)

	_, err = ParseViewMode("grid")
	assert.Error(t, err)
}

func TestThemeToggle(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
}

func TestStateDefaultsWhenNothingStored(t *testing.T) {
	s, err := NewState(context.Background(), NewMemoryStore(), ThemeLight, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, s.Theme())
	assert.Equal(t, ViewIcon, s.View())
}

func TestStateUsesStoredTheme(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), Prefs{Theme: ThemeDark}))

	s, err := NewState(context.Background(), store, ThemeLight, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, s.Theme())
}

func TestStateIgnoresUnknownStoredTheme(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), Prefs{Theme: "sepia"}))

	s, err := NewState(context.Background(), store, ThemeLight, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, s.Theme())
}

func TestStateLoadError(t *testing.T) {
	_, err := NewState(context.Background(), &failingStore{loadErr: errors.New("down")}, ThemeLight, zerolog.Nop())
	assert.Error(t, err)
}

func TestToggleThemePersists(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s, err := NewState(ctx, store, ThemeLight, zerolog.Nop())
	require.NoError(t, err)

	next, err := s.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, next)

	stored, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, stored.Theme)

	// A fresh state over the same store starts dark.
	again, err := NewState(ctx, store, ThemeLight, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, again.Theme())
}

func TestSaveFailureKeepsTheme(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{}
	s, err := NewState(ctx, store, ThemeLight, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, ThemeDark, s.Theme())

	store.saveErr = errors.New("read-only")
	got, err := s.ToggleTheme(ctx)
	assert.Error(t, err)
	assert.Equal(t, ThemeDark, got)
	assert.Equal(t, ThemeDark, s.Theme())

	assert.Error(t, s.SetTheme(ctx, ThemeLight))
	assert.Equal(t, ThemeDark, s.Theme())
}

func TestViewModeIsNotPersisted(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{}
	s, err := NewState(ctx, store, ThemeLight, zerolog.Nop())
	require.NoError(t, err)

	s.SetView(ViewChip)
	assert.Equal(t, ViewChip, s.View())
	assert.Empty(t, store.saved)
}
