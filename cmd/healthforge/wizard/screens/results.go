package screens

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/healthforge/cmd/healthforge/wizard/components"
	"github.com/mrsinham/healthforge/internal/processing"
	"github.com/mrsinham/healthforge/internal/risk"
)

// ResultsAction is the choice made on the results screen
type ResultsAction string

const (
	ResultsRestart ResultsAction = "restart"
	ResultsExit    ResultsAction = "exit"
)

// CounterTickMsg advances the score counter of results screen Gen.
type CounterTickMsg struct {
	Gen int
}

// ResultsScreen displays the evaluation with an animated score
type ResultsScreen struct {
	form      *huh.Form
	styles    *components.Styles
	result    risk.Result
	counter   processing.Counter
	shown     int
	gen       int
	action    string
	width     int
	height    int
	done      bool
	cancelled bool
}

// NewResultsScreen creates the results screen for run gen
func NewResultsScreen(styles *components.Styles, result risk.Result, interval time.Duration, gen int) *ResultsScreen {
	s := &ResultsScreen{
		styles:  styles,
		result:  result,
		counter: processing.Counter{Target: result.Score, Interval: interval},
		gen:     gen,
		action:  string(ResultsRestart),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("action").
				Title("What next?").
				Options(
					huh.NewOption("Start a new assessment", string(ResultsRestart)),
					huh.NewOption("Exit", string(ResultsExit)),
				).
				Value(&s.action),
		),
	).WithShowHelp(false).WithTheme(styles.FormTheme())

	return s
}

// Init implements tea.Model
func (s *ResultsScreen) Init() tea.Cmd {
	return tea.Batch(s.form.Init(), s.tick())
}

func (s *ResultsScreen) tick() tea.Cmd {
	if s.counter.Done(s.shown) {
		return nil
	}
	gen := s.gen
	return tea.Tick(s.counter.Interval, func(time.Time) tea.Msg {
		return CounterTickMsg{Gen: gen}
	})
}

// Update implements tea.Model
func (s *ResultsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	case CounterTickMsg:
		if msg.Gen != s.gen {
			return s, nil
		}
		s.shown = s.counter.Next(s.shown)
		return s, s.tick()
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
func (s *ResultsScreen) View() string {
	if s.cancelled {
		return "Goodbye.\n"
	}

	meterWidth := 30
	if s.width > 60 {
		meterWidth = min(s.width/2, 50)
	}

	var sb strings.Builder
	sb.WriteString(components.Report(s.result, *s.styles, components.ReportOptions{
		DisplayScore: s.shown,
		MeterWidth:   meterWidth,
	}))
	sb.WriteString("\n")
	sb.WriteString(s.form.View())
	sb.WriteString("\n\n")
	sb.WriteString(s.styles.Hint.Render("Enter: Select | Ctrl+T: Theme | q: Quit"))

	return sb.String()
}

// Shown returns the score currently displayed by the counter
func (s *ResultsScreen) Shown() int {
	return s.shown
}

// Result returns the evaluation being displayed
func (s *ResultsScreen) Result() risk.Result {
	return s.result
}

// Action returns the selected action
func (s *ResultsScreen) Action() ResultsAction {
	return ResultsAction(s.action)
}

// Done returns true if an action was selected
func (s *ResultsScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user quit
func (s *ResultsScreen) Cancelled() bool {
	return s.cancelled
}
