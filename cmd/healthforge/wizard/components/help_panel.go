package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/healthforge/cmd/healthforge/wizard/help"
)

// HelpPanel displays contextual help for the current field
type HelpPanel struct {
	styles       *Styles
	currentField string
	width        int
	height       int
}

// NewHelpPanel creates a new help panel
func NewHelpPanel(styles *Styles) *HelpPanel {
	return &HelpPanel{
		styles: styles,
		width:  60,
		height: 10,
	}
}

// SetField updates which field's help to display
func (h *HelpPanel) SetField(field string) {
	h.currentField = field
}

// Field returns the field whose help is displayed
func (h *HelpPanel) Field() string {
	return h.currentField
}

// SetSize updates panel dimensions
func (h *HelpPanel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// View renders the help panel
func (h *HelpPanel) View() string {
	style := h.styles.Panel.Width(max(h.width-4, 20))

	text, ok := help.Texts[h.currentField]
	if !ok {
		return style.Render("Select a field to see help")
	}

	titleStyle := lipgloss.NewStyle().Foreground(h.styles.Palette.Accent).Bold(true)

	var sb strings.Builder
	sb.WriteString("ℹ️  ")
	sb.WriteString(titleStyle.Render(text.Title))
	sb.WriteString("\n\n")
	sb.WriteString(h.styles.Text.Render(text.Description))
	if text.Details != "" {
		sb.WriteString("\n\n")
		sb.WriteString(h.styles.Muted.Render(text.Details))
	}

	return style.Render(sb.String())
}
