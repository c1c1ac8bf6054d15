package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/drawodds/internal/presentation/tui"
)

const explainDoc = `# The hypergeometric distribution

When you draw **n** cards from a deck of **N** cards containing **K** "hits",
the number of hits in your hand follows the hypergeometric distribution. Draws
are *without replacement*, so each card you see changes the odds of the next.

The probability of exactly **k** hits is a ratio of ways to compose the hand:

    P(X = k) = C(K, k) * C(N-K, n-k) / C(N, n)

where C(a, b) counts the ways to choose b items from a.

## Feasible outcomes

Not every k is possible. You can never hold more hits than the deck has
(k <= K) or than you drew (k <= n), and if the deck is short on misses the
hand is forced to contain some hits: the feasible range is

    max(0, n-(N-K)) <= k <= min(n, K)

## The report

The report splits all outcomes three ways around your target: fewer than k,
exactly k, and more than k. The three percentages always add up to 100%.

Drawodds computes these counts with arbitrary-precision integers and divides
last, so the numbers are exact rather than floating-point approximations.`

// explainCmd represents the explain command
var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain the math behind the report",
	Run: func(cmd *cobra.Command, args []string) {
		render := tui.NewRenderer()
		out, err := render(explainDoc)
		if err != nil {
			out = explainDoc
		}
		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
