// Package assessment implements the step-by-step health questionnaire:
// the fixed step layout, the tag vocabularies, and the Controller that gates
// navigation and accumulates answers into an AnswerRecord.
package assessment

import "slices"

// Activity levels accepted for the lifestyle step.
const (
	ActivitySedentary = "sedentary"
	ActivityModerate  = "moderate"
	ActivityActive    = "active"
)

// Smoking answers accepted for the lifestyle step.
const (
	SmokeYes = "yes"
	SmokeNo  = "no"
)

// Tags is a set of vocabulary tags. Order carries no meaning; duplicates are
// dropped on construction.
type Tags []string

// NewTags builds a Tags set, dropping empty and repeated entries.
func NewTags(tags ...string) Tags {
	out := make(Tags, 0, len(tags))
	for _, t := range tags {
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Has reports whether tag is in the set.
func (t Tags) Has(tag string) bool {
	return slices.Contains(t, tag)
}

// CountOf returns how many of the given tags are present in the set.
func (t Tags) CountOf(tags ...string) int {
	n := 0
	for _, tag := range tags {
		if t.Has(tag) {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (t Tags) Clone() Tags {
	if t == nil {
		return Tags{}
	}
	return slices.Clone(t)
}

// AnswerRecord holds everything collected by the wizard. Numeric answers are
// kept as typed; parsing and defaulting happen in the evaluator.
type AnswerRecord struct {
	Age      string `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
	BMI      string `json:"bmi,omitempty"`
	BP       string `json:"bp,omitempty"`
	Activity string `json:"activity"`
	Smoke    string `json:"smoke"`
	History  Tags   `json:"history"`
	Symptoms Tags   `json:"symptoms"`
}

// EmptyRecord returns a record with empty collections.
func EmptyRecord() AnswerRecord {
	return AnswerRecord{History: Tags{}, Symptoms: Tags{}}
}

// Clone returns a deep copy of the record.
func (r AnswerRecord) Clone() AnswerRecord {
	r.History = r.History.Clone()
	r.Symptoms = r.Symptoms.Clone()
	return r
}
