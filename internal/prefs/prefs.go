// Package prefs holds user-facing display preferences and the ports used to
// persist them.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Theme is the page color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts "light" or "dark", ignoring case and surrounding space.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ViewMode selects the card layout.
type ViewMode string

const (
	ViewIcon ViewMode = "icon"
	ViewChip ViewMode = "chip"
)

// ParseViewMode accepts "icon" or "chip".
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(s))) {
	case ViewIcon:
		return ViewIcon, nil
	case ViewChip:
		return ViewChip, nil
	}
	return "", fmt.Errorf("unknown view mode %q", s)
}

// Prefs is the persisted preference set.
type Prefs struct {
	Theme Theme `yaml:"theme" json:"theme"`
}

// ErrNotFound is returned by Store.Load when nothing has been saved yet.
var ErrNotFound = errors.New("preferences not found")

// Store persists Prefs.
type Store interface {
	Load(ctx context.Context) (Prefs, error)
	Save(ctx context.Context, p Prefs) error
}

// State is the live preference state shared by request handlers. Theme changes
// are written through to the Store; the view mode lives only in memory.
type State struct {
	store Store
	log   zerolog.Logger

	mu    sync.RWMutex
	theme Theme
	view  ViewMode
}

// NewState loads preferences from store. When nothing is stored, or the
// stored theme is unrecognized, def is used.
func NewState(ctx context.Context, store Store, def Theme, log zerolog.Logger) (*State, error) {
	s := &State{store: store, log: log, theme: def, view: ViewIcon}

	p, err := store.Load(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		log.Debug().Str("theme", string(def)).Msg("no stored preferences, using default theme")
	case err != nil:
		return nil, fmt.Errorf("load preferences: %w", err)
	default:
		if t, perr := ParseTheme(string(p.Theme)); perr == nil {
			s.theme = t
		} else {
			log.Warn().Str("stored", string(p.Theme)).Msg("ignoring unrecognized stored theme")
		}
	}
	return s, nil
}

func (s *State) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *State) View() ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// SetView switches the card layout.
func (s *State) SetView(v ViewMode) {
	s.mu.Lock()
	s.view = v
	s.mu.Unlock()
}

// SetTheme saves t and then makes it current. If saving fails the current
// theme is unchanged.
func (s *State) SetTheme(ctx context.Context, t Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(ctx, Prefs{Theme: t}); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	s.theme = t
	s.log.Info().Str("theme", string(t)).Msg("theme changed")
	return nil
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *State) ToggleTheme(ctx context.Context) (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.theme.Toggle()
	if err := s.store.Save(ctx, Prefs{Theme: next}); err != nil {
		return s.theme, fmt.Errorf("save preferences: %w", err)
	}
	s.theme = next
	s.log.Info().Str("theme", string(next)).Msg("theme changed")
	return next, nil
}
