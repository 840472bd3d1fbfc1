package screens

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrsinham/healthforge/cmd/healthforge/wizard/components"
	"github.com/mrsinham/healthforge/internal/processing"
)

// ProcessingTickMsg advances the analysis animation. Gen identifies the run
// that scheduled it; ticks from a superseded run are ignored.
type ProcessingTickMsg struct {
	Gen     int
	Elapsed time.Duration
}

// ProcessingScreen shows the analysis animation between submit and results
type ProcessingScreen struct {
	styles    *components.Styles
	schedule  processing.Schedule
	spinner   spinner.Model
	bar       progress.Model
	gen       int
	elapsed   time.Duration
	cancelled bool
	back      bool
	width     int
	height    int
}

// NewProcessingScreen creates the screen for run gen of schedule
func NewProcessingScreen(styles *components.Styles, schedule processing.Schedule, gen int) *ProcessingScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	return &ProcessingScreen{
		styles:   styles,
		schedule: schedule,
		spinner:  sp,
		bar:      bar,
		gen:      gen,
	}
}

// Init implements tea.Model
func (s *ProcessingScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.nextTick())
}

// nextTick schedules the following animation step, landing exactly on the
// settle delay at the end.
func (s *ProcessingScreen) nextTick() tea.Cmd {
	step := s.schedule.MessageInterval
	remaining := s.schedule.SettleDelay - s.elapsed
	if step <= 0 || step > remaining {
		step = remaining
	}
	step = max(step, 0)
	at := s.elapsed + step
	gen := s.gen
	return tea.Tick(step, func(time.Time) tea.Msg {
		return ProcessingTickMsg{Gen: gen, Elapsed: at}
	})
}

// Update implements tea.Model
func (s *ProcessingScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			s.back = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.bar.Width = max(min(msg.Width-10, 60), 10)
	case ProcessingTickMsg:
		if msg.Gen != s.gen {
			return s, nil
		}
		s.elapsed = msg.Elapsed
		if s.Done() {
			return s, nil
		}
		return s, s.nextTick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	return s, nil
}

// View implements tea.Model
func (s *ProcessingScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	var sb strings.Builder
	sb.WriteString(s.styles.Title.Render("Analyzing your answers"))
	sb.WriteString("\n")
	sb.WriteString(s.spinner.View())
	sb.WriteString(" ")
	sb.WriteString(s.styles.Text.Render(s.Message()))
	sb.WriteString("\n\n")
	sb.WriteString(s.bar.ViewAs(s.Fraction()))
	sb.WriteString("\n\n")
	sb.WriteString(s.styles.Hint.Render("Esc: Back to symptoms | Ctrl+C: Quit"))

	return sb.String()
}

// Message returns the status line for the current elapsed time
func (s *ProcessingScreen) Message() string {
	return s.schedule.MessageAt(s.elapsed)
}

// Fraction returns the completed share of the animation
func (s *ProcessingScreen) Fraction() float64 {
	if s.schedule.SettleDelay <= 0 {
		return 1
	}
	return min(float64(s.elapsed)/float64(s.schedule.SettleDelay), 1)
}

// Gen returns the run this screen belongs to
func (s *ProcessingScreen) Gen() int {
	return s.gen
}

// Done returns true once the settle delay has elapsed
func (s *ProcessingScreen) Done() bool {
	return s.elapsed >= s.schedule.SettleDelay
}

// Back returns true if the user aborted the analysis
func (s *ProcessingScreen) Back() bool {
	return s.back
}

// Cancelled returns true if the user quit
func (s *ProcessingScreen) Cancelled() bool {
	return s.cancelled
}
