package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/drawodds/internal/cli"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Run every query in a YAML file",
	Long: `Reads a YAML file of queries and prints a report for each one. A query that
fails validation prints its error line and the batch continues.

File format:

  queries:
    - label: "Drawing 3 1-drops from a Deck by turn 5"
      population: 99
      successes: 22
      draws: 13
      target: 3`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		if err := cli.RunBatch(args[0], debug); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
