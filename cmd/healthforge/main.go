// Command healthforge runs the health risk questionnaire, either as an
// interactive terminal wizard or as a one-shot scorer for answer files.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
