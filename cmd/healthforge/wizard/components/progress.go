package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
)

// StepProgress renders the "Step n of N" header with a progress bar.
type StepProgress struct {
	bar progress.Model
}

// NewStepProgress creates a progress header of the given bar width
func NewStepProgress(width int) StepProgress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = width
	return StepProgress{bar: bar}
}

// SetWidth resizes the bar
func (p *StepProgress) SetWidth(width int) {
	p.bar.Width = width
}

// View renders the header for step out of total at percent (0-100).
func (p StepProgress) View(step, total int, percent float64) string {
	return fmt.Sprintf("Step %d of %d  %s", step, total, p.bar.ViewAs(percent/100))
}

// Meter renders a labelled 0-100 gauge, used for the sub-scores.
func Meter(label string, value, width int) string {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = width
	return fmt.Sprintf("%-10s %s %3d%%", label, bar.ViewAs(float64(value)/100), value)
}
