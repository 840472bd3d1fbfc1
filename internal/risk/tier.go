package risk

import "github.com/rotisserie/eris"

// Level is the coarse risk classification.
type Level int

const (
	LevelLow Level = iota
	LevelModerate
	LevelHigh
)

func (l Level) String() string {
	switch l {
	case LevelHigh:
		return "high"
	case LevelModerate:
		return "moderate"
	default:
		return "low"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	switch string(text) {
	case "low":
		*l = LevelLow
	case "moderate":
		*l = LevelModerate
	case "high":
		*l = LevelHigh
	default:
		return eris.Errorf("risk: invalid level %q", text)
	}
	return nil
}

// ColorToken names a palette slot; the rendering layer maps it to a color.
type ColorToken string

const (
	ColorSuccess ColorToken = "success"
	ColorWarning ColorToken = "warning"
	ColorDanger  ColorToken = "danger"
)

// Tier thresholds on the clamped score.
const (
	HighThreshold     = 75
	ModerateThreshold = 40
)

// Tier is the display classification of a score.
type Tier struct {
	Level       Level      `json:"level"`
	Label       string     `json:"label"`
	Color       ColorToken `json:"color"`
	Description string     `json:"description"`
}

var (
	tierHigh = Tier{
		Level:       LevelHigh,
		Label:       "High Risk",
		Color:       ColorDanger,
		Description: "Immediate action required.",
	}
	tierModerate = Tier{
		Level:       LevelModerate,
		Label:       "Moderate Risk",
		Color:       ColorWarning,
		Description: "Attention needed. See action plan.",
	}
	tierLow = Tier{
		Level:       LevelLow,
		Label:       "Low Risk",
		Color:       ColorSuccess,
		Description: "Great job! Your health metrics are stable.",
	}
)

// Classify maps a score to its tier.
func Classify(score int) Tier {
	switch {
	case score >= HighThreshold:
		return tierHigh
	case score >= ModerateThreshold:
		return tierModerate
	default:
		return tierLow
	}
}
