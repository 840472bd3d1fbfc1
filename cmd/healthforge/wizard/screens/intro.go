package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/healthforge/cmd/healthforge/wizard/components"
)

// IntroAction is the choice made on the intro screen
type IntroAction string

const (
	IntroStart       IntroAction = "start"
	IntroToggleTheme IntroAction = "theme"
	IntroQuit        IntroAction = "quit"
)

// IntroScreen greets the user and starts the assessment
type IntroScreen struct {
	form      *huh.Form
	styles    *components.Styles
	greeting  string
	tip       string
	action    string
	width     int
	height    int
	done      bool
	cancelled bool
}

// NewIntroScreen creates the intro screen. greeting may be empty.
func NewIntroScreen(styles *components.Styles, greeting, tip string) *IntroScreen {
	s := &IntroScreen{
		styles:   styles,
		greeting: greeting,
		tip:      tip,
		action:   string(IntroStart),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("action").
				Title("What would you like to do?").
				Options(
					huh.NewOption("Start health assessment", string(IntroStart)),
					huh.NewOption("Switch to "+string(styles.Theme.Toggle())+" theme", string(IntroToggleTheme)),
					huh.NewOption("Quit", string(IntroQuit)),
				).
				Value(&s.action),
		),
	).WithShowHelp(false).WithTheme(styles.FormTheme())

	return s
}

// Init implements tea.Model
func (s *IntroScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *IntroScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *IntroScreen) View() string {
	if s.cancelled {
		return "Goodbye.\n"
	}

	var sb strings.Builder
	sb.WriteString(s.styles.Title.Render("HEALTHFORGE"))
	sb.WriteString("\n")
	if s.greeting != "" {
		sb.WriteString(s.styles.Bold.Render(s.greeting))
		sb.WriteString("\n")
	}
	sb.WriteString(s.styles.Subtitle.Render("A five-step questionnaire that estimates your cardiac and metabolic risk."))
	sb.WriteString("\n")

	if s.tip != "" {
		sb.WriteString(s.styles.Muted.Render("Daily tip: "))
		sb.WriteString(s.styles.Text.Render(s.tip))
		sb.WriteString("\n\n")
	}

	sb.WriteString(s.form.View())
	sb.WriteString("\n\n")
	sb.WriteString(s.styles.Hint.Render("Enter: Select | Ctrl+T: Theme | q: Quit"))

	return sb.String()
}

// Action returns the selected action
func (s *IntroScreen) Action() IntroAction {
	return IntroAction(s.action)
}

// Done returns true if an action was selected
func (s *IntroScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user quit
func (s *IntroScreen) Cancelled() bool {
	return s.cancelled
}
