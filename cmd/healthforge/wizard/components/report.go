package components

import (
	"fmt"
	"strings"

	"github.com/mrsinham/healthforge/internal/risk"
)

// NoPositives is shown when the evaluation found no strengths.
const NoPositives = "No specific strengths detected."

// ReportOptions controls how much of a result Report renders.
type ReportOptions struct {
	// DisplayScore replaces the score while the counter animates; negative
	// means use the final score.
	DisplayScore int
	// MeterWidth is the width of the sub-score bars.
	MeterWidth int
}

// Report renders a result as the full text report.
func Report(res risk.Result, st Styles, opts ReportOptions) string {
	score := res.Score
	if opts.DisplayScore >= 0 {
		score = min(opts.DisplayScore, res.Score)
	}
	width := opts.MeterWidth
	if width <= 0 {
		width = 30
	}
	tone := st.ToneStyle(res.Tier.Color)

	var sb strings.Builder

	sb.WriteString(st.Title.Render("Your Health Risk Report"))
	sb.WriteString("\n")
	sb.WriteString(tone.Render(fmt.Sprintf("%d", score)))
	sb.WriteString(st.Muted.Render(" / 100  "))
	sb.WriteString(tone.Render(res.Tier.Label))
	sb.WriteString("\n")
	sb.WriteString(st.Text.Render(res.Tier.Description))
	sb.WriteString("\n\n")

	sb.WriteString(Meter("Cardiac", res.CardiacScore, width))
	sb.WriteString("\n")
	sb.WriteString(Meter("Metabolic", res.MetabolicScore, width))
	sb.WriteString("\n\n")

	sb.WriteString(st.Bold.Render("Recommendations"))
	sb.WriteString("\n")
	for _, rec := range res.Recommendations {
		sb.WriteString("  • ")
		sb.WriteString(st.Text.Render(rec))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(st.Bold.Render("Strengths"))
	sb.WriteString("\n  ")
	if len(res.Positives) == 0 {
		sb.WriteString(st.Muted.Render(NoPositives))
	} else {
		pills := make([]string, len(res.Positives))
		for i, p := range res.Positives {
			pills[i] = st.Pill.Render("✓ " + p)
		}
		sb.WriteString(strings.Join(pills, " "))
	}
	sb.WriteString("\n\n")

	sb.WriteString(st.Bold.Render("Action Plan"))
	sb.WriteString("\n")
	for _, a := range res.Actions {
		sb.WriteString("  ")
		sb.WriteString(a.Kind.Icon())
		sb.WriteString(" ")
		sb.WriteString(st.Text.Render(a.Text))
		sb.WriteString("\n     ")
		sb.WriteString(st.Muted.Render(a.Kind.Hint()))
		if url := a.SpecialistURL(); url != "" {
			sb.WriteString("  ")
			sb.WriteString(st.Command.Render("Find Specialist: " + url))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
