// Package theme keeps the light/dark preference and applies it.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/pokebrowse/internal/logger"
)

// Key is the persistence key for the preference.
const Key = "pokemon-theme"

// Theme is a display theme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ErrUnknownTheme is returned by Parse for anything but light or dark.
var ErrUnknownTheme = errors.New("unknown theme")

// Parse converts s into a Theme.
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("%w %q (want light or dark)", ErrUnknownTheme, s)
	}
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// ToggleLabel is the label of the control that switches away from t.
func (t Theme) ToggleLabel() string {
	if t == Dark {
		return "Light Mode"
	}
	return "Dark Mode"
}

// KV is the persistence collaborator.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Applier makes a theme the active display attribute.
type Applier func(Theme)

// Store holds the current theme, persists changes and re-applies them.
type Store struct {
	kv      KV
	apply   Applier
	log     *logger.Logger
	current Theme
}

// New creates a Store. kv and apply may be nil.
func New(kv KV, apply Applier, log *logger.Logger) *Store {
	return &Store{kv: kv, apply: apply, log: log, current: Light}
}

// Restore loads the persisted theme (light when absent or unreadable) and
// applies it.
func (s *Store) Restore() Theme {
	s.current = Light
	if s.kv != nil {
		raw, err := s.kv.Get(Key)
		if err == nil {
			if parsed, perr := Parse(raw); perr == nil {
				s.current = parsed
			} else {
				s.log.Warn(perr, "ignoring persisted theme")
			}
		}
	}
	s.applyCurrent()
	return s.current
}

// Theme returns the current theme.
func (s *Store) Theme() Theme {
	return s.current
}

// Set persists and applies t. Persistence failures are logged and ignored.
func (s *Store) Set(t Theme) {
	s.current = t
	if s.kv != nil {
		if err := s.kv.Set(Key, string(t)); err != nil {
			s.log.Warn(err, "theme not persisted")
		}
	}
	s.applyCurrent()
}

// Toggle flips between light and dark and returns the new theme.
func (s *Store) Toggle() Theme {
	s.Set(s.current.Opposite())
	return s.current
}

func (s *Store) applyCurrent() {
	if s.apply != nil {
		s.apply(s.current)
	}
	s.log.WithFields(map[string]any{"theme": string(s.current)}).Debug("theme applied")
}
