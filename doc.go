/*
Package drawodds computes exact hypergeometric probabilities: the odds of
observing fewer than, exactly, or more than k successes when drawing n items
without replacement from a population of N items containing K successes.

It was built for finite-population sampling questions, card-draw odds in
deck-building games being the canonical one: "how likely am I to see 3 of my
22 one-drops in my first 13 cards?"

# Concept

A Calculator holds one query (N, K, n, k, and a description) and derives its
probabilities on demand. Parameters start out absent and are validated lazily
on each computation, never at set time, so an incomplete query is a normal
intermediate state. Probabilities are computed with exact integer
combinatorics (math/big), dividing last; there is no sampling, estimation, or
floating-point drift in the combinatorial counts.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/drawodds"
	)

	func main() {
		calc := drawodds.New(
			drawodds.WithLabel("Drawing Hearts from a Deck"),
			drawodds.WithPopulation(52),
			drawodds.WithSuccessStates(13),
			drawodds.WithSampleSize(5),
			drawodds.WithTargetSuccesses(2),
		)

		p, err := calc.Probability()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("P(X=2) = %.4f\n", p)

		// Or render the full less/exactly/more report:
		calc.Display()
	}

Validation failures wrap ErrInvalidParameters and propagate from Probability
and Probabilities. Display is the one recovery point: it catches the error
and prints it as a report line, leaving the Calculator safe for correction
and retry.
*/
package drawodds
