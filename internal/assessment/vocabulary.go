package assessment

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Category groups vocabulary tags by the risk area they feed.
type Category int

const (
	// CategoryGeneral tags are collected but feed no scoring rule.
	CategoryGeneral Category = iota
	// CategoryCardiac tags feed the cardiac sub-score.
	CategoryCardiac
	// CategoryMetabolic tags feed the metabolic sub-score.
	CategoryMetabolic
)

// String returns the string representation of a Category.
func (c Category) String() string {
	switch c {
	case CategoryCardiac:
		return "Cardiac"
	case CategoryMetabolic:
		return "Metabolic"
	default:
		return "General"
	}
}

// History tags.
const (
	HistoryDiabetes        = "diabetes"
	HistoryHeartDisease    = "heart_disease"
	HistoryHypertension    = "hypertension"
	HistoryHighCholesterol = "high_cholesterol"
	HistoryAsthma          = "asthma"
)

// Symptom tags.
const (
	SymptomChestPain         = "chest_pain"
	SymptomShortnessOfBreath = "shortness_of_breath"
	SymptomDizziness         = "dizziness"
	SymptomFatigue           = "fatigue"
	SymptomThirst            = "thirst"
	SymptomUrination         = "urination"
)

// TagInfo describes one vocabulary entry.
type TagInfo struct {
	Name     string
	Label    string
	Field    Field
	Category Category
}

// vocabulary lists every accepted tag in display order.
var vocabulary = []TagInfo{
	{Name: HistoryDiabetes, Label: "Diabetes", Field: FieldHistory, Category: CategoryMetabolic},
	{Name: HistoryHeartDisease, Label: "Heart disease", Field: FieldHistory, Category: CategoryCardiac},
	{Name: HistoryHypertension, Label: "Hypertension", Field: FieldHistory, Category: CategoryCardiac},
	{Name: HistoryHighCholesterol, Label: "High cholesterol", Field: FieldHistory, Category: CategoryMetabolic},
	{Name: HistoryAsthma, Label: "Asthma", Field: FieldHistory, Category: CategoryGeneral},

	{Name: SymptomChestPain, Label: "Chest pain", Field: FieldSymptoms, Category: CategoryCardiac},
	{Name: SymptomShortnessOfBreath, Label: "Shortness of breath", Field: FieldSymptoms, Category: CategoryCardiac},
	{Name: SymptomDizziness, Label: "Dizziness", Field: FieldSymptoms, Category: CategoryCardiac},
	{Name: SymptomFatigue, Label: "Fatigue", Field: FieldSymptoms, Category: CategoryGeneral},
	{Name: SymptomThirst, Label: "Excessive thirst", Field: FieldSymptoms, Category: CategoryMetabolic},
	{Name: SymptomUrination, Label: "Frequent urination", Field: FieldSymptoms, Category: CategoryMetabolic},
}

// TagsFor returns the vocabulary of a multi-select field in display order.
func TagsFor(field Field) []TagInfo {
	var out []TagInfo
	for _, info := range vocabulary {
		if info.Field == field {
			out = append(out, info)
		}
	}
	return out
}

// normalizeTag maps user spellings ("Heart Disease", "heart-disease") onto the
// canonical snake_case form.
func normalizeTag(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(name)
}

// LookupTag returns the TagInfo for name within field's vocabulary.
// The lookup is case-insensitive. Unknown names produce an error carrying
// the closest known tag when one is near enough.
func LookupTag(field Field, name string) (TagInfo, error) {
	normalized := normalizeTag(name)
	for _, info := range vocabulary {
		if info.Field == field && info.Name == normalized {
			return info, nil
		}
	}

	if suggestion := closestTag(field, normalized); suggestion != "" {
		return TagInfo{}, eris.Errorf("unknown %s tag %q, did you mean %q?", field, name, suggestion)
	}
	return TagInfo{}, eris.Errorf("unknown %s tag %q", field, name)
}

// closestTag finds the nearest tag name by Levenshtein distance.
// Returns empty string if nothing is within 4 edits.
func closestTag(field Field, input string) string {
	const maxDistance = 4
	bestDistance := maxDistance + 1
	var bestMatch string

	for _, info := range vocabulary {
		if info.Field != field {
			continue
		}
		if d := levenshteinDistance(input, info.Name); d < bestDistance {
			bestDistance = d
			bestMatch = info.Name
		}
	}

	if bestDistance <= maxDistance {
		return bestMatch
	}
	return ""
}

// levenshteinDistance calculates the minimum number of single-character
// edits required to change a into b.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
