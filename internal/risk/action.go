package risk

import (
	"strings"

	"github.com/rotisserie/eris"
)

// ActionKind tags an action-plan item for display ordering and icons.
type ActionKind int

const (
	ActionRegular ActionKind = iota
	ActionUrgent
	ActionLongterm
)

// SpecialistSearchURL is offered next to urgent actions.
const SpecialistSearchURL = "https://www.google.com/search?q=cardiologist+near+me"

// String returns the wire name of the kind.
func (k ActionKind) String() string {
	switch k {
	case ActionUrgent:
		return "urgent"
	case ActionLongterm:
		return "longterm"
	default:
		return "regular"
	}
}

// ParseActionKind parses a string into an ActionKind.
func ParseActionKind(s string) (ActionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "urgent":
		return ActionUrgent, nil
	case "regular":
		return ActionRegular, nil
	case "longterm":
		return ActionLongterm, nil
	default:
		return ActionRegular, eris.Errorf("invalid action kind: %s (valid: urgent, regular, longterm)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ActionKind) UnmarshalText(text []byte) error {
	parsed, err := ParseActionKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Icon returns the timeline glyph for the kind.
func (k ActionKind) Icon() string {
	switch k {
	case ActionUrgent:
		return "🚨"
	case ActionLongterm:
		return "🎯"
	default:
		return "📅"
	}
}

// Hint returns the one-line subtitle shown under an action.
func (k ActionKind) Hint() string {
	if k == ActionUrgent {
		return "Do this immediately"
	}
	return "Maintain consistency"
}

// Action is one item of the action plan.
type Action struct {
	Kind ActionKind `json:"type"`
	Text string     `json:"text"`
}

// SpecialistURL returns the specialist search link for urgent actions and
// an empty string otherwise.
func (a Action) SpecialistURL() string {
	if a.Kind == ActionUrgent {
		return SpecialistSearchURL
	}
	return ""
}
