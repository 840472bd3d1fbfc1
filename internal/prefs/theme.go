package prefs

import (
	"errors"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Theme is the colour scheme of the interface.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme applies when nothing is stored.
const DefaultTheme = ThemeDark

// ParseTheme parses a string into a Theme.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	default:
		return DefaultTheme, eris.Errorf("invalid theme: %s (valid: dark, light)", s)
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Theme returns the stored theme, or DefaultTheme when none is stored or the
// stored value is unreadable.
func (s *Store) Theme() (Theme, error) {
	raw, err := s.Get(KeyTheme)
	if errors.Is(err, ErrNotFound) {
		return DefaultTheme, nil
	}
	if err != nil {
		return DefaultTheme, err
	}
	t, err := ParseTheme(string(raw))
	if err != nil {
		s.logger.Warn("ignoring stored theme", zap.Error(err))
		return DefaultTheme, nil
	}
	return t, nil
}

// SetTheme stores t.
func (s *Store) SetTheme(t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return eris.Wrap(err, "prefs")
	}
	return s.Set(KeyTheme, []byte(t))
}

// ToggleTheme flips the stored theme and returns the new one.
func (s *Store) ToggleTheme() (Theme, error) {
	current, err := s.Theme()
	if err != nil {
		return current, err
	}
	next := current.Toggle()
	if err := s.SetTheme(next); err != nil {
		return current, err
	}
	return next, nil
}
