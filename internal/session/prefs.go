package session

import (
	"context"
	"fmt"

	"github.com/joshsymonds/budget-friendly/internal/storage"
)

// Theme names persisted under the theme key.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Theme returns the persisted theme preference, defaulting to light.
func (s *Session) Theme(ctx context.Context) string {
	theme := ThemeLight
	s.store.Get(ctx, storage.KeyTheme, &theme)
	if theme != ThemeLight && theme != ThemeDark {
		return ThemeLight
	}
	return theme
}

// SetTheme persists the theme preference.
func (s *Session) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme: %s", theme)
	}
	return s.store.Set(ctx, storage.KeyTheme, theme)
}

// Onboarded reports whether the onboarding overlay has been dismissed.
func (s *Session) Onboarded(ctx context.Context) bool {
	var seen bool
	s.store.Get(ctx, storage.KeyOnboarded, &seen)
	return seen
}

// MarkOnboarded records that the onboarding overlay has been shown.
func (s *Session) MarkOnboarded(ctx context.Context) error {
	return s.store.Set(ctx, storage.KeyOnboarded, true)
}
