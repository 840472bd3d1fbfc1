package assessment

import "slices"

// Field identifies one input of the questionnaire.
type Field string

const (
	FieldAge      Field = "age"
	FieldGender   Field = "gender"
	FieldBMI      Field = "bmi"
	FieldBP       Field = "bp"
	FieldActivity Field = "activity"
	FieldSmoke    Field = "smoke"
	FieldHistory  Field = "history"
	FieldSymptoms Field = "symptoms"
)

// Kind is the input widget a field is rendered with.
type Kind int

const (
	KindText Kind = iota
	KindChoice
	KindMulti
)

// TotalSteps is the fixed number of wizard steps.
const TotalSteps = 5

// Option is one selectable value of a choice field.
type Option struct {
	Label string
	Value string
}

// FieldSpec describes a field within a step.
type FieldSpec struct {
	Field       Field
	Title       string
	Placeholder string
	Kind        Kind
	Required    bool
	Options     []Option
}

// Step is one page of the questionnaire.
type Step struct {
	Number int
	Title  string
	Fields []FieldSpec
}

var steps = [TotalSteps]Step{
	{
		Number: 1,
		Title:  "About You",
		Fields: []FieldSpec{
			{Field: FieldAge, Title: "Age", Placeholder: "e.g. 45", Kind: KindText, Required: true},
			{Field: FieldGender, Title: "Gender", Kind: KindChoice, Required: true, Options: []Option{
				{Label: "Select...", Value: ""},
				{Label: "Female", Value: "female"},
				{Label: "Male", Value: "male"},
				{Label: "Other", Value: "other"},
			}},
		},
	},
	{
		Number: 2,
		Title:  "Vitals",
		Fields: []FieldSpec{
			{Field: FieldBMI, Title: "BMI", Placeholder: "e.g. 22.5", Kind: KindText, Required: true},
			{Field: FieldBP, Title: "Systolic Blood Pressure", Placeholder: "e.g. 120", Kind: KindText, Required: true},
		},
	},
	{
		Number: 3,
		Title:  "Lifestyle",
		Fields: []FieldSpec{
			{Field: FieldActivity, Title: "Activity Level", Kind: KindChoice, Options: []Option{
				{Label: "Sedentary", Value: ActivitySedentary},
				{Label: "Moderate", Value: ActivityModerate},
				{Label: "Active", Value: ActivityActive},
			}},
			{Field: FieldSmoke, Title: "Do you smoke?", Kind: KindChoice, Options: []Option{
				{Label: "No", Value: SmokeNo},
				{Label: "Yes", Value: SmokeYes},
			}},
		},
	},
	{
		Number: 4,
		Title:  "Medical History",
		Fields: []FieldSpec{
			{Field: FieldHistory, Title: "Diagnosed conditions", Kind: KindMulti, Options: optionsFor(FieldHistory)},
		},
	},
	{
		Number: 5,
		Title:  "Symptoms",
		Fields: []FieldSpec{
			{Field: FieldSymptoms, Title: "Current symptoms", Kind: KindMulti, Options: optionsFor(FieldSymptoms)},
		},
	},
}

func optionsFor(field Field) []Option {
	tags := TagsFor(field)
	out := make([]Option, len(tags))
	for i, info := range tags {
		out[i] = Option{Label: info.Label, Value: info.Name}
	}
	return out
}

// StepAt returns the step with the given 1-based number. Out-of-range
// numbers are clamped.
func StepAt(n int) Step {
	n = max(1, min(n, TotalSteps))
	return steps[n-1]
}

// Steps returns all steps in order. The slice is a copy; the Fields and
// Options of each step are shared and must be treated as read-only.
func Steps() []Step {
	return slices.Clone(steps[:])
}

// specFor returns the spec of field, wherever it lives.
func specFor(field Field) (FieldSpec, bool) {
	for _, st := range steps {
		for _, fs := range st.Fields {
			if fs.Field == field {
				return fs, true
			}
		}
	}
	return FieldSpec{}, false
}
