package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrsinham/healthforge/internal/config"
	"github.com/mrsinham/healthforge/internal/prefs"
)

// annotationTUI marks commands that take over the terminal.
const annotationTUI = "tui"

var (
	cfg        *config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "healthforge",
	Short: "Health risk questionnaire",
	Long: `Walks through a five-step health questionnaire (about you, vitals,
lifestyle, medical history, symptoms) and reports an overall risk score with
cardiac and metabolic sub-scores, recommendations, strengths and an action
plan.

Without a subcommand the interactive wizard is started.`,
	Annotations:  map[string]string{annotationTUI: "true"},
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c

		logCfg := cfg.Log
		if cmd.Annotations[annotationTUI] != "" && logCfg.Output == "stderr" {
			// stderr shares the terminal with the wizard
			logCfg.Level = "error"
		}
		if err := config.InitLogger(logCfg); err != nil {
			return eris.Wrap(err, "init logger")
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	RunE: runWizard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./healthforge.yaml or $HOME/.config/healthforge/healthforge.yaml)")
	rootCmd.Flags().String("from", "", "pre-fill the wizard from an answers YAML file")
}

// withStore opens the preference store for the duration of fn.
func withStore(fn func(*prefs.Store) error) (err error) {
	store, err := prefs.Open(prefs.Config{
		Path:     cfg.Store.Path,
		InMemory: cfg.Store.InMemory,
		Logger:   zap.L(),
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(store)
}
