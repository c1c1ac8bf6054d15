package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/drawodds/internal/cli"
)

// calcCmd represents the calc command
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute draw odds for one query from flags",
	Long: `Computes P(X<k), P(X=k) and P(X>k) for a single query given as flags and
prints the report. A parameter left out is reported by validation rather than
defaulting to zero.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.CalcOptions{}
		opts.Label, _ = cmd.Flags().GetString("label")
		opts.Debug, _ = cmd.Flags().GetBool("debug")

		// Only parameters the user actually passed are set; validation
		// reports the rest as unset.
		if cmd.Flags().Changed("population") {
			v, _ := cmd.Flags().GetInt("population")
			opts.Population = &v
		}
		if cmd.Flags().Changed("successes") {
			v, _ := cmd.Flags().GetInt("successes")
			opts.Successes = &v
		}
		if cmd.Flags().Changed("draws") {
			v, _ := cmd.Flags().GetInt("draws")
			opts.Draws = &v
		}
		if cmd.Flags().Changed("target") {
			v, _ := cmd.Flags().GetInt("target")
			opts.Target = &v
		}

		_ = cli.RunCalc(opts)
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().IntP("population", "N", 0, "Total population size (N)")
	calcCmd.Flags().IntP("successes", "K", 0, "Success states in the population (K)")
	calcCmd.Flags().IntP("draws", "n", 0, "Sample size drawn without replacement (n)")
	calcCmd.Flags().IntP("target", "k", 0, "Target number of observed successes (k)")
	calcCmd.Flags().String("label", "", "Description of the probability being calculated")
}
