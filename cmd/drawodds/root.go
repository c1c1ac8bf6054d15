package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "drawodds",
	Short: "Drawodds computes exact hypergeometric draw probabilities",
	Long: `Drawodds calculates the odds of drawing a target number of successes when
sampling without replacement from a finite population, such as drawing cards
from a deck. All probabilities come from exact integer combinatorics.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}
