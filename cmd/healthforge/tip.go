package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrsinham/healthforge/internal/util"
)

var tipCmd = &cobra.Command{
	Use:   "tip",
	Short: "Print a daily wellness tip",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), util.DailyTip(nil))
	},
}

func init() {
	rootCmd.AddCommand(tipCmd)
}
