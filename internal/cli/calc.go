package cli

import (
	"io"
	"os"

	"github.com/aretw0/drawodds"
)

// CalcOptions contains the configuration for a one-shot calculation.
// Parameter fields are pointers so a flag the user never passed stays absent
// and is reported by validation, rather than silently defaulting to zero.
type CalcOptions struct {
	Population *int
	Successes  *int
	Draws      *int
	Target     *int
	Label      string
	Debug      bool
}

// RunCalc computes one query from flags and renders its report to stdout.
// Validation failures surface through the report itself (the render path is
// the designated recovery point), so an infeasible query is not a process
// error.
func RunCalc(opts CalcOptions) error {
	return runCalc(os.Stdout, opts)
}

func runCalc(w io.Writer, opts CalcOptions) error {
	logger := createLogger(opts.Debug)

	calcOpts := []drawodds.Option{drawodds.WithLogger(logger)}
	if opts.Label != "" {
		calcOpts = append(calcOpts, drawodds.WithLabel(opts.Label))
	}
	if opts.Population != nil {
		calcOpts = append(calcOpts, drawodds.WithPopulation(*opts.Population))
	}
	if opts.Successes != nil {
		calcOpts = append(calcOpts, drawodds.WithSuccessStates(*opts.Successes))
	}
	if opts.Draws != nil {
		calcOpts = append(calcOpts, drawodds.WithSampleSize(*opts.Draws))
	}
	if opts.Target != nil {
		calcOpts = append(calcOpts, drawodds.WithTargetSuccesses(*opts.Target))
	}

	calc := drawodds.New(calcOpts...)
	calc.Fdisplay(w)
	return nil
}
