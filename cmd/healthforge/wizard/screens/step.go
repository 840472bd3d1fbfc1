package screens

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/healthforge/cmd/healthforge/wizard/components"
	"github.com/mrsinham/healthforge/internal/assessment"
)

// StepSource is the read side of the controller a StepScreen renders from.
type StepSource interface {
	Step() assessment.Step
	Value(field assessment.Field) string
	TagValues(field assessment.Field) []string
	Invalid(field assessment.Field) bool
	Progress() float64
}

// FormSink receives the values typed on a StepScreen.
type FormSink interface {
	Set(field assessment.Field, value string)
	SetTags(field assessment.Field, tags []string)
}

// requiredMessage is shown under a required field left empty.
const requiredMessage = "This field is required"

// StepScreen renders one questionnaire step as a form
type StepScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	progress  components.StepProgress
	styles    *components.Styles
	step      assessment.Step
	percent   float64
	width     int
	height    int
	done      bool
	back      bool
	cancelled bool

	// huh binds to pointers, one per field
	values map[assessment.Field]*string
	tags   map[assessment.Field]*[]string
}

// NewStepScreen creates the screen for the active step of src
func NewStepScreen(src StepSource, styles *components.Styles) *StepScreen {
	s := &StepScreen{
		helpPanel: components.NewHelpPanel(styles),
		progress:  components.NewStepProgress(40),
		styles:    styles,
		step:      src.Step(),
		percent:   src.Progress(),
		values:    make(map[assessment.Field]*string),
		tags:      make(map[assessment.Field]*[]string),
	}

	fields := make([]huh.Field, 0, len(s.step.Fields))
	for _, spec := range s.step.Fields {
		fields = append(fields, s.buildField(spec, src))
	}

	s.form = huh.NewForm(huh.NewGroup(fields...)).
		WithShowHelp(false).
		WithTheme(styles.FormTheme())

	if len(s.step.Fields) > 0 {
		s.helpPanel.SetField(string(s.step.Fields[0].Field))
	}

	return s
}

func (s *StepScreen) buildField(spec assessment.FieldSpec, src StepSource) huh.Field {
	key := string(spec.Field)
	title := spec.Title
	if spec.Required {
		title += " *"
	}
	var desc string
	if src.Invalid(spec.Field) {
		desc = s.styles.Invalid.Render(requiredMessage)
	}

	switch spec.Kind {
	case assessment.KindMulti:
		selected := src.TagValues(spec.Field)
		s.tags[spec.Field] = &selected
		opts := make([]huh.Option[string], len(spec.Options))
		for i, o := range spec.Options {
			opts[i] = huh.NewOption(o.Label, o.Value).Selected(slices.Contains(selected, o.Value))
		}
		return huh.NewMultiSelect[string]().
			Key(key).
			Title(title).
			Description(desc).
			Options(opts...).
			Value(s.tags[spec.Field])

	case assessment.KindChoice:
		value := src.Value(spec.Field)
		if value == "" {
			value = defaultChoice(spec.Field)
		}
		s.values[spec.Field] = &value
		opts := make([]huh.Option[string], len(spec.Options))
		for i, o := range spec.Options {
			opts[i] = huh.NewOption(o.Label, o.Value)
		}
		return huh.NewSelect[string]().
			Key(key).
			Title(title).
			Description(desc).
			Options(opts...).
			Value(s.values[spec.Field])

	default:
		value := src.Value(spec.Field)
		s.values[spec.Field] = &value
		return huh.NewInput().
			Key(key).
			Title(title).
			Description(desc).
			Placeholder(spec.Placeholder).
			Value(s.values[spec.Field])
	}
}

// defaultChoice preselects the value the record would default to anyway.
func defaultChoice(field assessment.Field) string {
	switch field {
	case assessment.FieldActivity:
		return assessment.ActivityModerate
	case assessment.FieldSmoke:
		return assessment.SmokeNo
	}
	return ""
}

// Init implements tea.Model
func (s *StepScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *StepScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			// Esc goes to the previous step instead of cancelling
			s.back = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetSize(min(msg.Width, 72), msg.Height/2)
		s.progress.SetWidth(max(min(msg.Width-20, 50), 10))
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if focused := s.form.GetFocusedField(); focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *StepScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := s.styles.Title.Render("HEALTH ASSESSMENT - " + s.step.Title)
	header := s.styles.Muted.Render(s.progress.View(s.step.Number, assessment.TotalSteps, s.percent))

	hint := "Tab: Next field | Enter: Continue | Esc: Back | Ctrl+T: Theme"
	if s.step.Number == assessment.TotalSteps {
		hint = "Tab: Next field | Enter: Analyze | Esc: Back | Ctrl+T: Theme"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		header,
		"",
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		s.styles.Hint.Render(hint),
	)
}

// Apply pushes the form values into sink
func (s *StepScreen) Apply(sink FormSink) {
	for field, v := range s.values {
		sink.Set(field, *v)
	}
	for field, v := range s.tags {
		sink.SetTags(field, *v)
	}
}

// Step returns the step this screen renders
func (s *StepScreen) Step() assessment.Step {
	return s.step
}

// Done returns true if the form was submitted
func (s *StepScreen) Done() bool {
	return s.done
}

// Back returns true if the user asked for the previous step
func (s *StepScreen) Back() bool {
	return s.back
}

// Cancelled returns true if the user cancelled
func (s *StepScreen) Cancelled() bool {
	return s.cancelled
}
