package screens

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrsinham/healthforge/cmd/healthforge/wizard/components"
	"github.com/mrsinham/healthforge/internal/assessment"
	"github.com/mrsinham/healthforge/internal/prefs"
)

// recordingSink captures what a screen applies.
type recordingSink struct {
	values map[assessment.Field]string
	tags   map[assessment.Field][]string
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		values: make(map[assessment.Field]string),
		tags:   make(map[assessment.Field][]string),
	}
}

func (r *recordingSink) Set(field assessment.Field, value string) { r.values[field] = value }

func (r *recordingSink) SetTags(field assessment.Field, tags []string) { r.tags[field] = tags }

func testStyles() *components.Styles {
	st := components.NewStyles(prefs.ThemeDark)
	return &st
}

func TestStepScreen_AppliesCurrentValues(t *testing.T) {
	c := assessment.NewController()
	c.Set(assessment.FieldAge, "45")
	c.Set(assessment.FieldGender, "male")

	s := NewStepScreen(c, testStyles())
	s.Init()
	sink := newRecordingSink()
	s.Apply(sink)

	if sink.values[assessment.FieldAge] != "45" {
		t.Errorf("Expected age 45, got %q", sink.values[assessment.FieldAge])
	}
	if sink.values[assessment.FieldGender] != "male" {
		t.Errorf("Expected gender male, got %q", sink.values[assessment.FieldGender])
	}
}

func TestStepScreen_ChoiceDefaults(t *testing.T) {
	c := assessment.NewController()
	c.Prefill(assessment.AnswerRecord{Age: "45", Gender: "male", BMI: "22", BP: "120"})
	c.Advance()
	c.Advance()

	s := NewStepScreen(c, testStyles())
	sink := newRecordingSink()
	s.Apply(sink)

	if s.Step().Number != 3 {
		t.Fatalf("Expected step 3, got %d", s.Step().Number)
	}
	if sink.values[assessment.FieldActivity] != assessment.ActivityModerate {
		t.Errorf("Expected activity default moderate, got %q", sink.values[assessment.FieldActivity])
	}
	if sink.values[assessment.FieldSmoke] != assessment.SmokeNo {
		t.Errorf("Expected smoke default no, got %q", sink.values[assessment.FieldSmoke])
	}
}

func TestStepScreen_AppliesTags(t *testing.T) {
	c := assessment.NewController()
	c.Prefill(assessment.AnswerRecord{
		Age: "45", Gender: "male", BMI: "22", BP: "120",
		Symptoms: assessment.Tags{assessment.SymptomFatigue, assessment.SymptomThirst},
	})
	for !c.AtLastStep() {
		c.Advance()
	}

	s := NewStepScreen(c, testStyles())
	sink := newRecordingSink()
	s.Apply(sink)

	want := []string{assessment.SymptomFatigue, assessment.SymptomThirst}
	if got := sink.tags[assessment.FieldSymptoms]; !reflect.DeepEqual(got, want) {
		t.Errorf("Symptoms = %v, want %v", got, want)
	}
}

func TestStepScreen_FlagsInvalidFields(t *testing.T) {
	c := assessment.NewController()
	c.Advance()

	s := NewStepScreen(c, testStyles())
	s.Init()
	view := s.View()

	if !strings.Contains(view, requiredMessage) {
		t.Errorf("Expected %q in view", requiredMessage)
	}
	if !strings.Contains(view, "Age *") {
		t.Error("Required fields should be marked")
	}
	if !strings.Contains(view, "Step 1 of 5") {
		t.Error("Expected the step header")
	}
}

func TestStepScreen_EscIsBack(t *testing.T) {
	s := NewStepScreen(assessment.NewController(), testStyles())

	s.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if !s.Back() {
		t.Error("Esc should request the previous step")
	}
	if s.Cancelled() {
		t.Error("Esc should not cancel")
	}
}

func TestProcessingScreen_IgnoresForeignTicks(t *testing.T) {
	s := NewProcessingScreen(testStyles(), processingSchedule(), 2)

	s.Update(ProcessingTickMsg{Gen: 1, Elapsed: processingSchedule().SettleDelay})
	if s.Done() {
		t.Error("Tick from another run completed the screen")
	}

	s.Update(ProcessingTickMsg{Gen: 2, Elapsed: processingSchedule().SettleDelay})
	if !s.Done() {
		t.Error("Expected done after the settle delay")
	}
	if s.Fraction() != 1 {
		t.Errorf("Expected full bar, got %f", s.Fraction())
	}
}

func TestResultsScreen_CounterStopsAtScore(t *testing.T) {
	c := assessment.NewController()
	c.Prefill(assessment.AnswerRecord{Age: "30", Gender: "male", BMI: "22", BP: "120", Activity: assessment.ActivityActive})
	rec, err := c.Complete()
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	s := NewResultsScreen(testStyles(), evaluate(rec), 0, 1)

	for i := 0; i < 50; i++ {
		s.Update(CounterTickMsg{Gen: 1})
	}
	if s.Shown() != s.Result().Score {
		t.Errorf("Counter = %d, want %d", s.Shown(), s.Result().Score)
	}
}
