// Package wizard provides the interactive TUI for the health questionnaire.
package wizard

import (
	"math/rand/v2"
	"time"

	"github.com/mrsinham/healthforge/internal/assessment"
	"github.com/mrsinham/healthforge/internal/prefs"
	"github.com/mrsinham/healthforge/internal/processing"
)

// Preferences is the part of the preference store the wizard uses.
type Preferences interface {
	Theme() (prefs.Theme, error)
	ToggleTheme() (prefs.Theme, error)
	CurrentUser() (prefs.User, bool, error)
}

// Options configures a wizard run.
type Options struct {
	// Prefill seeds the form, e.g. from an answers file.
	Prefill *assessment.AnswerRecord

	// Prefs persists the theme and supplies the greeting. Nil keeps the
	// theme in memory only.
	Prefs Preferences

	// Schedule drives the analysis animation.
	Schedule processing.Schedule

	// CounterInterval is the delay between score counter steps.
	CounterInterval time.Duration

	// AltScreen runs the program in the alternate screen buffer.
	AltScreen bool

	// RNG picks the daily tip. Nil uses a time-seeded generator.
	RNG *rand.Rand
}

// DefaultOptions returns options with the standard timings.
func DefaultOptions() Options {
	return Options{
		Schedule:        processing.DefaultSchedule(),
		CounterInterval: processing.DefaultCounterInterval,
		AltScreen:       true,
	}
}
