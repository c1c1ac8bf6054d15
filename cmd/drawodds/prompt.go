package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/drawodds/internal/cli"
)

// promptCmd represents the interactive prompt command
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Enter a query interactively",
	Long: `Prompts for the query parameters in order (description, N, K, n, k) on
standard input and prints the report.`,
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		if err := cli.RunPrompt(cli.PromptOptions{Debug: debug}); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)

	// Make 'prompt' the default if no command is provided.
	rootCmd.Run = promptCmd.Run
}
