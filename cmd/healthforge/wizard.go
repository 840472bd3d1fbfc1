package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrsinham/healthforge/cmd/healthforge/wizard"
	"github.com/mrsinham/healthforge/internal/assessment"
	"github.com/mrsinham/healthforge/internal/config"
	"github.com/mrsinham/healthforge/internal/prefs"
	"github.com/mrsinham/healthforge/internal/processing"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Run the interactive questionnaire",
	Long: `Runs the questionnaire in the terminal.

Examples:
  # Start from an empty form
  healthforge wizard

  # Start with answers loaded from a file
  healthforge wizard --from answers.yaml`,
	Annotations: map[string]string{annotationTUI: "true"},
	RunE:        runWizard,
}

func init() {
	wizardCmd.Flags().String("from", "", "pre-fill the wizard from an answers YAML file")
	rootCmd.AddCommand(wizardCmd)
}

func runWizard(cmd *cobra.Command, _ []string) error {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return eris.New("the wizard needs an interactive terminal, use 'healthforge score --from FILE' instead")
	}

	opts := wizardOptions(cfg)

	from, _ := cmd.Flags().GetString("from")
	if from != "" {
		rec, err := assessment.LoadFromYAML(from)
		if err != nil {
			return err
		}
		opts.Prefill = &rec
		zap.L().Debug("wizard prefilled", zap.String("from", from))
	}

	return withStore(func(store *prefs.Store) error {
		opts.Prefs = store
		return wizard.Run(opts)
	})
}

// wizardOptions maps the configuration onto wizard options.
func wizardOptions(c *config.Config) wizard.Options {
	opts := wizard.DefaultOptions()
	opts.Schedule = scheduleFor(c.Processing)
	opts.CounterInterval = c.Processing.CounterInterval
	opts.AltScreen = c.UI.AltScreen
	return opts
}

func scheduleFor(pc config.ProcessingConfig) processing.Schedule {
	s := processing.DefaultSchedule()
	s.MessageInterval = pc.MessageInterval
	s.SettleDelay = pc.SettleDelay
	return s
}
