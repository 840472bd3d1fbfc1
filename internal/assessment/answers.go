package assessment

import (
	"os"
	"slices"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// AnswersFile is the on-disk form of a pre-filled questionnaire.
//
//	age: 45
//	gender: female
//	bmi: 32
//	bp: 150
//	activity: sedentary
//	smoke: "no"
//	history: [diabetes]
//	symptoms: [thirst, urination]
type AnswersFile struct {
	Age      string   `yaml:"age"`
	Gender   string   `yaml:"gender"`
	BMI      string   `yaml:"bmi"`
	BP       string   `yaml:"bp"`
	Activity string   `yaml:"activity"`
	Smoke    string   `yaml:"smoke"`
	History  []string `yaml:"history"`
	Symptoms []string `yaml:"symptoms"`
}

// LoadFromYAML reads an answers file from path.
func LoadFromYAML(path string) (AnswerRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AnswerRecord{}, eris.Wrapf(err, "assessment: read answers %s", path)
	}
	rec, err := ParseYAML(data)
	if err != nil {
		return AnswerRecord{}, eris.Wrapf(err, "assessment: parse answers %s", path)
	}
	return rec, nil
}

// ParseYAML decodes an answers document. Choice fields must hold one of
// their options and tags must belong to the vocabulary; numeric fields are
// passed through untouched.
func ParseYAML(data []byte) (AnswerRecord, error) {
	var f AnswersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return AnswerRecord{}, eris.Wrap(err, "assessment: decode yaml")
	}

	rec := AnswerRecord{
		Age:    strings.TrimSpace(f.Age),
		Gender: strings.ToLower(strings.TrimSpace(f.Gender)),
		BMI:    strings.TrimSpace(f.BMI),
		BP:     strings.TrimSpace(f.BP),
		// yaml.v3 resolves bare yes/no as strings, so these arrive verbatim.
		Activity: strings.ToLower(strings.TrimSpace(f.Activity)),
		Smoke:    strings.ToLower(strings.TrimSpace(f.Smoke)),
	}

	for _, check := range []struct {
		field Field
		value string
	}{
		{FieldGender, rec.Gender},
		{FieldActivity, rec.Activity},
		{FieldSmoke, rec.Smoke},
	} {
		if err := checkChoice(check.field, check.value); err != nil {
			return AnswerRecord{}, err
		}
	}

	var err error
	if rec.History, err = canonicalTags(FieldHistory, f.History); err != nil {
		return AnswerRecord{}, err
	}
	if rec.Symptoms, err = canonicalTags(FieldSymptoms, f.Symptoms); err != nil {
		return AnswerRecord{}, err
	}
	return rec, nil
}

// ToYAML renders rec as an answers document.
func ToYAML(rec AnswerRecord) ([]byte, error) {
	f := AnswersFile{
		Age:      rec.Age,
		Gender:   rec.Gender,
		BMI:      rec.BMI,
		BP:       rec.BP,
		Activity: rec.Activity,
		Smoke:    rec.Smoke,
		History:  rec.History.Clone(),
		Symptoms: rec.Symptoms.Clone(),
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, eris.Wrap(err, "assessment: encode yaml")
	}
	return data, nil
}

func checkChoice(field Field, value string) error {
	if value == "" {
		return nil
	}
	spec, ok := specFor(field)
	if !ok {
		return eris.Errorf("assessment: unknown field %q", field)
	}
	valid := slices.ContainsFunc(spec.Options, func(o Option) bool {
		return o.Value == value
	})
	if !valid {
		allowed := make([]string, 0, len(spec.Options))
		for _, o := range spec.Options {
			if o.Value != "" {
				allowed = append(allowed, o.Value)
			}
		}
		return eris.Errorf("assessment: invalid %s %q (valid: %s)", field, value, strings.Join(allowed, ", "))
	}
	return nil
}

func canonicalTags(field Field, names []string) (Tags, error) {
	out := make([]string, 0, len(names))
	for _, name := range names {
		info, err := LookupTag(field, name)
		if err != nil {
			return nil, eris.Wrap(err, "assessment")
		}
		out = append(out, info.Name)
	}
	return NewTags(out...), nil
}
