package assessment

import (
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Controller owns the wizard position, the raw form values, and the
// AnswerRecord built from them. It is not safe for concurrent use; the
// rendering layer drives it from a single event loop.
type Controller struct {
	validate *validator.Validate
	logger   *zap.Logger

	current   int
	values    map[Field]string
	tags      map[Field]Tags
	invalid   map[Field]bool
	record    AnswerRecord
	submitted bool
	sessionID string
}

// NewController returns a controller positioned on step 1 with an empty
// record.
func NewController() *Controller {
	c := &Controller{
		validate: validator.New(),
		logger:   zap.L().Named("assessment"),
	}
	c.Reset()
	return c
}

// Reset restores the controller to step 1 with an empty record and form.
func (c *Controller) Reset() {
	c.current = 1
	c.values = make(map[Field]string)
	c.tags = make(map[Field]Tags)
	c.invalid = make(map[Field]bool)
	c.record = EmptyRecord()
	c.submitted = false
	c.sessionID = uuid.NewString()
	c.logger.Debug("assessment reset", zap.String("session", c.sessionID))
}

// SessionID identifies the current run for log correlation.
func (c *Controller) SessionID() string { return c.sessionID }

// CurrentStep returns the 1-based index of the active step.
func (c *Controller) CurrentStep() int { return c.current }

// Step returns the active step definition.
func (c *Controller) Step() Step { return StepAt(c.current) }

// AtLastStep reports whether the active step is the final one.
func (c *Controller) AtLastStep() bool { return c.current == TotalSteps }

// Submitted reports whether Submit has succeeded since the last Reset.
func (c *Controller) Submitted() bool { return c.submitted }

// Progress returns the display percentage for the active step.
func (c *Controller) Progress() float64 {
	return float64(c.current-1) / float64(TotalSteps-1) * 100
}

// Set stores the raw value of a single-valued field.
func (c *Controller) Set(field Field, value string) {
	c.values[field] = value
}

// SetTags replaces the selection of a multi-valued field.
func (c *Controller) SetTags(field Field, tags []string) {
	c.tags[field] = NewTags(tags...)
}

// Toggle flips one tag of a multi-valued field.
func (c *Controller) Toggle(field Field, tag string) {
	current := c.tags[field]
	if i := slices.Index(current, tag); i >= 0 {
		c.tags[field] = slices.Delete(current.Clone(), i, i+1)
		return
	}
	c.tags[field] = NewTags(append(current.Clone(), tag)...)
}

// Value returns the raw form value of a single-valued field.
func (c *Controller) Value(field Field) string { return c.values[field] }

// TagValues returns the current selection of a multi-valued field.
func (c *Controller) TagValues(field Field) []string { return c.tags[field].Clone() }

// Invalid reports whether field failed the last validation of its step.
func (c *Controller) Invalid(field Field) bool { return c.invalid[field] }

// InvalidFields lists the fields flagged by the last validation, in step
// order.
func (c *Controller) InvalidFields() []Field {
	var out []Field
	for _, st := range steps {
		for _, fs := range st.Fields {
			if c.invalid[fs.Field] {
				out = append(out, fs.Field)
			}
		}
	}
	return out
}

// Advance validates the active step and, if every required field is
// present, saves the form into the record and moves one step forward. It
// returns false and leaves the position untouched when validation fails.
func (c *Controller) Advance() bool {
	if !c.validateStep() {
		return false
	}
	c.persist()
	if c.current < TotalSteps {
		c.current++
	}
	c.logger.Debug("step advanced",
		zap.String("session", c.sessionID),
		zap.Int("step", c.current),
	)
	return true
}

// Retreat saves the form into the record and moves one step back. No
// validation is performed.
func (c *Controller) Retreat() {
	c.persist()
	if c.current > 1 {
		c.current--
	}
	c.logger.Debug("step retreated",
		zap.String("session", c.sessionID),
		zap.Int("step", c.current),
	)
}

// Submit validates the final step, saves the form, and returns the
// completed record. It refuses when the wizard is not on the final step or
// a required field is missing.
func (c *Controller) Submit() (AnswerRecord, bool) {
	if !c.AtLastStep() {
		return AnswerRecord{}, false
	}
	if !c.validateStep() {
		return AnswerRecord{}, false
	}
	c.persist()
	c.submitted = true
	c.logger.Info("assessment submitted", zap.String("session", c.sessionID))
	return c.record.Clone(), true
}

// Prefill loads rec into the form without moving or validating.
func (c *Controller) Prefill(rec AnswerRecord) {
	c.values[FieldAge] = rec.Age
	c.values[FieldGender] = rec.Gender
	c.values[FieldBMI] = rec.BMI
	c.values[FieldBP] = rec.BP
	c.values[FieldActivity] = rec.Activity
	c.values[FieldSmoke] = rec.Smoke
	c.tags[FieldHistory] = NewTags(rec.History...)
	c.tags[FieldSymptoms] = NewTags(rec.Symptoms...)
}

// Complete walks every step with the current form and submits it. It is
// the non-interactive path: missing required fields are reported as an
// error naming them.
func (c *Controller) Complete() (AnswerRecord, error) {
	for !c.AtLastStep() {
		if !c.Advance() {
			return AnswerRecord{}, missingFieldsError(c.InvalidFields())
		}
	}
	rec, ok := c.Submit()
	if !ok {
		return AnswerRecord{}, missingFieldsError(c.InvalidFields())
	}
	return rec, nil
}

func missingFieldsError(fields []Field) error {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return eris.Errorf("assessment: missing required fields: %s", strings.Join(names, ", "))
}

// validateStep checks presence of every required field on the active step
// and refreshes the invalid flags of that step.
func (c *Controller) validateStep() bool {
	ok := true
	for _, fs := range c.Step().Fields {
		if !fs.Required {
			delete(c.invalid, fs.Field)
			continue
		}

		var err error
		if fs.Kind == KindMulti {
			err = c.validate.Var([]string(c.tags[fs.Field]), "required,min=1")
		} else {
			err = c.validate.Var(c.values[fs.Field], "required")
		}

		if err != nil {
			c.invalid[fs.Field] = true
			ok = false
			continue
		}
		delete(c.invalid, fs.Field)
	}

	if !ok {
		c.logger.Debug("step validation failed",
			zap.String("session", c.sessionID),
			zap.Int("step", c.current),
			zap.Any("invalid", c.InvalidFields()),
		)
	}
	return ok
}

// persist rebuilds the record from the whole form.
func (c *Controller) persist() {
	c.record = AnswerRecord{
		Age:      c.values[FieldAge],
		Gender:   c.values[FieldGender],
		BMI:      c.values[FieldBMI],
		BP:       c.values[FieldBP],
		Activity: orDefault(c.values[FieldActivity], ActivityModerate),
		Smoke:    orDefault(c.values[FieldSmoke], SmokeNo),
		History:  c.tags[FieldHistory].Clone(),
		Symptoms: c.tags[FieldSymptoms].Clone(),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
