package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/healthforge/cmd/healthforge/wizard/components"
)

// ErrorScreen displays an error that stopped the wizard
type ErrorScreen struct {
	styles *components.Styles
	err    error
	done   bool
	width  int
	height int
}

// NewErrorScreen creates a new error screen
func NewErrorScreen(styles *components.Styles, err error) *ErrorScreen {
	return &ErrorScreen{
		styles: styles,
		err:    err,
	}
}

// Init implements tea.Model
func (s *ErrorScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *ErrorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "enter", "q":
			s.done = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	return s, nil
}

// View implements tea.Model
func (s *ErrorScreen) View() string {
	width := 60
	if s.width > 0 {
		width = max(min(s.width-4, 80), 20)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		s.styles.Invalid.Render("✗ The assessment stopped"),
		"",
		s.styles.Text.Width(width).Render(s.err.Error()),
		"",
		s.styles.Muted.Render("Saved preferences are unaffected. Answers from this run were not kept."),
	)

	return body + "\n\n" + s.styles.Hint.Render("Enter or q: Exit")
}

// Done returns true if the user is finished
func (s *ErrorScreen) Done() bool {
	return s.done
}

// Error returns the error
func (s *ErrorScreen) Error() error {
	return s.err
}
