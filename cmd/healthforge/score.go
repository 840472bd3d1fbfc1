package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrsinham/healthforge/cmd/healthforge/wizard/components"
	"github.com/mrsinham/healthforge/internal/assessment"
	"github.com/mrsinham/healthforge/internal/prefs"
	"github.com/mrsinham/healthforge/internal/processing"
	"github.com/mrsinham/healthforge/internal/risk"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an answers file without the wizard",
	Long: `Evaluates a filled-in questionnaire and prints the risk report.

The answers file uses the same keys as the wizard:

  age: 45
  gender: female
  bmi: 32
  bp: 150
  activity: sedentary
  smoke: "no"
  history: [diabetes]
  symptoms: [thirst, urination]

Age, gender, bmi and bp are required.

Examples:
  # Text report, with the analysis messages and score counter on stderr
  healthforge score --from answers.yaml

  # JSON for scripts, read from stdin
  cat answers.yaml | healthforge score --from - --format json --no-delay`,
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.String("from", "", "answers YAML file, or - for stdin (required)")
	f.String("format", "text", "output format: text or json")
	f.Bool("no-delay", false, "skip the analysis messages and print immediately")
	_ = scoreCmd.MarkFlagRequired("from")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	from, _ := cmd.Flags().GetString("from")
	format, _ := cmd.Flags().GetString("format")
	noDelay, _ := cmd.Flags().GetBool("no-delay")

	if format != "text" && format != "json" {
		return eris.Errorf("unknown format %q (valid: text, json)", format)
	}

	rec, err := readAnswers(cmd.InOrStdin(), from)
	if err != nil {
		return err
	}

	c := assessment.NewController()
	c.Prefill(rec)
	rec, err = c.Complete()
	if err != nil {
		return err
	}

	log := zap.L().With(zap.String("command", "score"), zap.String("session", c.SessionID()))

	res := risk.Evaluate(rec)
	log.Info("assessment scored",
		zap.Int("score", res.Score),
		zap.String("tier", res.Tier.Label),
	)

	if !noDelay {
		if err := playSchedule(ctx, scheduleFor(cfg.Processing), cmd.ErrOrStderr()); err != nil {
			return eris.Wrap(err, "score: analysis interrupted")
		}
		if format == "text" {
			counter := processing.Counter{Target: res.Score, Interval: cfg.Processing.CounterInterval}
			if err := countUp(ctx, counter, cmd.ErrOrStderr()); err != nil {
				return eris.Wrap(err, "score: analysis interrupted")
			}
		}
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return eris.Wrap(err, "score: encode json")
		}
		return nil
	}

	_, err = fmt.Fprint(out, components.Report(res, components.NewStyles(prefs.DefaultTheme), components.ReportOptions{
		DisplayScore: -1,
		MeterWidth:   30,
	}))
	return err
}

// readAnswers loads the answers named by from, "-" meaning in.
func readAnswers(in io.Reader, from string) (assessment.AnswerRecord, error) {
	if from != "-" {
		return assessment.LoadFromYAML(from)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return assessment.AnswerRecord{}, eris.Wrap(err, "score: read stdin")
	}
	return assessment.ParseYAML(data)
}

// playSchedule writes the analysis messages to w and returns once the
// schedule settles.
func playSchedule(ctx context.Context, s processing.Schedule, w io.Writer) error {
	var runner processing.Runner
	defer runner.Stop()

	done := make(chan struct{})
	runner.Start(ctx, s, func(ev processing.Event) {
		switch ev.Kind {
		case processing.EventMessage:
			fmt.Fprintln(w, ev.Message)
		case processing.EventDone:
			close(done)
		}
	})

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// countUp animates the score on a single line of w.
func countUp(ctx context.Context, c processing.Counter, w io.Writer) error {
	err := c.Run(ctx, func(v int) {
		fmt.Fprintf(w, "\rScore: %d", v)
	})
	fmt.Fprintln(w)
	return err
}
