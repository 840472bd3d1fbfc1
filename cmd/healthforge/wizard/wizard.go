package wizard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/mrsinham/healthforge/cmd/healthforge/wizard/components"
	"github.com/mrsinham/healthforge/cmd/healthforge/wizard/screens"
	"github.com/mrsinham/healthforge/internal/assessment"
	"github.com/mrsinham/healthforge/internal/prefs"
	"github.com/mrsinham/healthforge/internal/risk"
	"github.com/mrsinham/healthforge/internal/util"
)

// Phase represents the current phase/screen of the wizard.
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseStep
	PhaseProcessing
	PhaseResults
	PhaseError
)

// Wizard is the main orchestrator for the wizard interface.
type Wizard struct {
	opts       Options
	controller *assessment.Controller
	styles     *components.Styles
	logger     *zap.Logger

	// Current phase
	phase Phase

	// Screen instances
	introScreen      *screens.IntroScreen
	stepScreen       *screens.StepScreen
	processingScreen *screens.ProcessingScreen
	resultsScreen    *screens.ResultsScreen
	errorScreen      *screens.ErrorScreen

	// gen increases with every processing run; ticks carry it so that a
	// superseded run cannot complete.
	gen int

	record assessment.AnswerRecord
	result risk.Result

	// Window size
	width  int
	height int

	// Final state
	cancelled bool
	finished  bool
	err       error
}

// NewWizard creates a wizard positioned on the intro screen.
func NewWizard(opts Options) *Wizard {
	w := &Wizard{
		opts:       opts,
		controller: assessment.NewController(),
		logger:     zap.L().Named("wizard"),
		phase:      PhaseIntro,
	}

	theme := prefs.DefaultTheme
	if opts.Prefs != nil {
		t, err := opts.Prefs.Theme()
		if err != nil {
			w.logger.Warn("reading theme", zap.Error(err))
		}
		theme = t
	}
	styles := components.NewStyles(theme)
	w.styles = &styles

	if opts.Prefill != nil {
		w.controller.Prefill(*opts.Prefill)
	}

	w.introScreen = screens.NewIntroScreen(w.styles, w.greeting(), util.DailyTip(opts.RNG))
	return w
}

func (w *Wizard) greeting() string {
	if w.opts.Prefs == nil {
		return ""
	}
	user, ok, err := w.opts.Prefs.CurrentUser()
	if err != nil {
		w.logger.Warn("reading current user", zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return user.Greeting()
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.introScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window size for all phases
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "ctrl+t" {
		return w.toggleTheme()
	}

	switch w.phase {
	case PhaseIntro:
		return w.updateIntro(msg)
	case PhaseStep:
		return w.updateStep(msg)
	case PhaseProcessing:
		return w.updateProcessing(msg)
	case PhaseResults:
		return w.updateResults(msg)
	case PhaseError:
		return w.updateError(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseIntro:
		return w.introScreen.View()
	case PhaseStep:
		return w.stepScreen.View()
	case PhaseProcessing:
		return w.processingScreen.View()
	case PhaseResults:
		return w.resultsScreen.View()
	case PhaseError:
		return w.errorScreen.View()
	}

	return ""
}

// toggleTheme flips the theme, persists it, and restyles in place.
func (w *Wizard) toggleTheme() (tea.Model, tea.Cmd) {
	next := w.styles.Theme.Toggle()
	if w.opts.Prefs != nil {
		t, err := w.opts.Prefs.ToggleTheme()
		if err != nil {
			return w.fail(eris.Wrap(err, "wizard: toggle theme"))
		}
		next = t
	}
	*w.styles = components.NewStyles(next)
	w.logger.Debug("theme changed", zap.String("theme", string(next)))

	// forms capture their theme at construction
	switch w.phase {
	case PhaseIntro:
		return w.transitionToIntro()
	case PhaseStep:
		w.stepScreen.Apply(w.controller)
		return w.transitionToStep()
	}
	return w, nil
}

// updateIntro handles updates on the intro screen.
func (w *Wizard) updateIntro(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.introScreen.Update(msg)
	if is, ok := model.(*screens.IntroScreen); ok {
		w.introScreen = is
	}

	if w.introScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.introScreen.Done() {
		switch w.introScreen.Action() {
		case screens.IntroStart:
			w.logger.Info("assessment started", zap.String("session", w.controller.SessionID()))
			return w.transitionToStep()
		case screens.IntroToggleTheme:
			return w.toggleTheme()
		default:
			w.cancelled = true
			return w, tea.Quit
		}
	}

	return w, cmd
}

// transitionToIntro rebuilds the intro screen.
func (w *Wizard) transitionToIntro() (tea.Model, tea.Cmd) {
	w.phase = PhaseIntro
	w.introScreen = screens.NewIntroScreen(w.styles, w.greeting(), util.DailyTip(w.opts.RNG))
	return w, tea.Batch(w.introScreen.Init(), w.resize())
}

// transitionToStep shows the controller's active step.
func (w *Wizard) transitionToStep() (tea.Model, tea.Cmd) {
	w.phase = PhaseStep
	w.stepScreen = screens.NewStepScreen(w.controller, w.styles)
	return w, tea.Batch(w.stepScreen.Init(), w.resize())
}

// updateStep handles updates on a questionnaire step.
func (w *Wizard) updateStep(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.stepScreen.Update(msg)
	if ss, ok := model.(*screens.StepScreen); ok {
		w.stepScreen = ss
	}

	if w.stepScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.stepScreen.Back() {
		w.stepScreen.Apply(w.controller)
		if w.controller.CurrentStep() == 1 {
			return w.transitionToIntro()
		}
		w.controller.Retreat()
		return w.transitionToStep()
	}

	if w.stepScreen.Done() {
		w.stepScreen.Apply(w.controller)

		if w.controller.AtLastStep() {
			rec, ok := w.controller.Submit()
			if !ok {
				// rebuild with the invalid fields flagged
				return w.transitionToStep()
			}
			w.record = rec
			return w.startProcessing()
		}

		// On failure the same step is rebuilt with its flags
		w.controller.Advance()
		return w.transitionToStep()
	}

	return w, cmd
}

// startProcessing evaluates the record and plays the analysis animation.
func (w *Wizard) startProcessing() (tea.Model, tea.Cmd) {
	w.gen++
	w.result = risk.Evaluate(w.record)
	w.logger.Info("assessment evaluated",
		zap.String("session", w.controller.SessionID()),
		zap.Int("score", w.result.Score),
		zap.String("tier", w.result.Tier.Label),
	)

	w.phase = PhaseProcessing
	w.processingScreen = screens.NewProcessingScreen(w.styles, w.opts.Schedule, w.gen)
	return w, tea.Batch(w.processingScreen.Init(), w.resize())
}

// updateProcessing handles updates during the analysis animation.
func (w *Wizard) updateProcessing(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.processingScreen.Update(msg)
	if ps, ok := model.(*screens.ProcessingScreen); ok {
		w.processingScreen = ps
	}

	if w.processingScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.processingScreen.Back() {
		// invalidate in-flight ticks
		w.gen++
		return w.transitionToStep()
	}

	if w.processingScreen.Done() {
		return w.transitionToResults()
	}

	return w, cmd
}

// transitionToResults reveals the evaluation.
func (w *Wizard) transitionToResults() (tea.Model, tea.Cmd) {
	w.phase = PhaseResults
	w.resultsScreen = screens.NewResultsScreen(w.styles, w.result, w.opts.CounterInterval, w.gen)
	return w, tea.Batch(w.resultsScreen.Init(), w.resize())
}

// updateResults handles updates on the results screen.
func (w *Wizard) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.resultsScreen.Update(msg)
	if rs, ok := model.(*screens.ResultsScreen); ok {
		w.resultsScreen = rs
	}

	if w.resultsScreen.Cancelled() {
		w.finished = true
		return w, tea.Quit
	}

	if w.resultsScreen.Done() {
		if w.resultsScreen.Action() == screens.ResultsRestart {
			w.gen++
			w.controller.Reset()
			w.record = assessment.EmptyRecord()
			w.result = risk.Result{}
			return w.transitionToIntro()
		}
		w.finished = true
		return w, tea.Quit
	}

	return w, cmd
}

// fail switches to the error screen.
func (w *Wizard) fail(err error) (tea.Model, tea.Cmd) {
	w.logger.Error("wizard failed", zap.Error(err))
	w.err = err
	w.phase = PhaseError
	w.errorScreen = screens.NewErrorScreen(w.styles, err)
	return w, nil
}

// updateError handles updates in the error phase.
func (w *Wizard) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.errorScreen.Update(msg)
	if es, ok := model.(*screens.ErrorScreen); ok {
		w.errorScreen = es
	}

	if w.errorScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}

	return w, cmd
}

// resize replays the last window size to a freshly built screen.
func (w *Wizard) resize() tea.Cmd {
	if w.width == 0 && w.height == 0 {
		return nil
	}
	size := tea.WindowSizeMsg{Width: w.width, Height: w.height}
	return func() tea.Msg { return size }
}

// Phase returns the active phase.
func (w *Wizard) Phase() Phase {
	return w.phase
}

// Result returns the last evaluation, valid once processing has started.
func (w *Wizard) Result() risk.Result {
	return w.result
}

// Run starts the interactive wizard.
func Run(opts Options) error {
	wizard := NewWizard(opts)

	var progOpts []tea.ProgramOption
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(wizard, progOpts...)

	finalModel, err := p.Run()
	if err != nil {
		return eris.Wrap(err, "wizard: run")
	}

	// Check final state
	if w, ok := finalModel.(*Wizard); ok {
		if w.cancelled {
			return nil // User cancelled, not an error
		}
		if w.err != nil {
			return w.err
		}
	}

	return nil
}
