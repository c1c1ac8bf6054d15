package drawodds

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/drawodds/internal/logging"
	"github.com/aretw0/drawodds/internal/presentation/tui"
	"github.com/aretw0/drawodds/pkg/hypergeom"
)

// DefaultLabel is the description used when a query does not provide one.
const DefaultLabel = "Hypergeometric Probability"

// ErrInvalidParameters is returned when a query's parameters are missing or
// combinatorially infeasible. Errors wrap this sentinel and carry a
// human-readable reason; match with errors.Is.
var ErrInvalidParameters = errors.New("invalid parameters")

// Tails is the ordered probability triple (P(X<k), P(X=k), P(X>k)).
type Tails = hypergeom.Tails

// Calculator holds the parameters of one hypergeometric query and derives
// exact probabilities from them.
//
// The four integer parameters start out absent and are validated lazily on
// each computation, never at set time. That keeps Display the single recovery
// point: an incomplete or infeasible query renders an error line and the
// Calculator stays safe to correct and reuse.
type Calculator struct {
	population *int // N: total population size
	successes  *int // K: success states in the population
	draws      *int // n: sample size, drawn without replacement
	target     *int // k: observed successes being evaluated

	label  string
	logger *slog.Logger
}

// Option defines a functional option for configuring a Calculator.
type Option func(*Calculator)

// WithPopulation sets the total population size N.
func WithPopulation(n int) Option {
	return func(c *Calculator) {
		c.population = &n
	}
}

// WithSuccessStates sets the number of success states K in the population.
func WithSuccessStates(k int) Option {
	return func(c *Calculator) {
		c.successes = &k
	}
}

// WithSampleSize sets the number of draws n.
func WithSampleSize(n int) Option {
	return func(c *Calculator) {
		c.draws = &n
	}
}

// WithTargetSuccesses sets the target success count k.
func WithTargetSuccesses(k int) Option {
	return func(c *Calculator) {
		c.target = &k
	}
}

// WithLabel sets the query description shown on the report.
func WithLabel(label string) Option {
	return func(c *Calculator) {
		c.label = label
	}
}

// WithLogger sets a custom structured logger for the calculator.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

// New creates a Calculator. All parameters are optional at construction time;
// validation happens when a probability is requested.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		label:  DefaultLabel,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetParameters replaces all query parameters at once. An empty label keeps
// the current one.
func (c *Calculator) SetParameters(N, K, n, k int, label string) {
	c.population = &N
	c.successes = &K
	c.draws = &n
	c.target = &k
	if label != "" {
		c.label = label
	}
}

// Label returns the query description.
func (c *Calculator) Label() string {
	return c.label
}

// Validate checks the query parameters against the feasibility rules of the
// hypergeometric law. It is idempotent and runs before every computation;
// nothing is cached.
func (c *Calculator) Validate() error {
	fields := []struct {
		name  string
		value *int
	}{
		{"population size N", c.population},
		{"success states K", c.successes},
		{"sample size n", c.draws},
		{"target successes k", c.target},
	}
	for _, f := range fields {
		if f.value == nil {
			return fmt.Errorf("%w: %s must be set before calculating", ErrInvalidParameters, f.name)
		}
	}
	for _, f := range fields {
		if *f.value < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidParameters, f.name, *f.value)
		}
	}

	N, K, n, k := *c.population, *c.successes, *c.draws, *c.target
	switch {
	case n > N:
		return fmt.Errorf("%w: sample size n (%d) exceeds population size N (%d)", ErrInvalidParameters, n, N)
	case K > N:
		return fmt.Errorf("%w: success states K (%d) exceed population size N (%d)", ErrInvalidParameters, K, N)
	case k > n:
		return fmt.Errorf("%w: target successes k (%d) exceed sample size n (%d)", ErrInvalidParameters, k, n)
	}
	return nil
}

// Probability returns the exact probability of drawing exactly k successes.
func (c *Calculator) Probability() (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	p := hypergeom.PMF(*c.population, *c.successes, *c.draws, *c.target)
	c.logger.Debug("computed point mass",
		"N", *c.population, "K", *c.successes, "n", *c.draws, "k", *c.target, "p", p)
	return p, nil
}

// Probabilities returns the ordered triple (P(X<k), P(X=k), P(X>k)). The
// three values partition the outcome space and sum to 1.
func (c *Calculator) Probabilities() (Tails, error) {
	if err := c.Validate(); err != nil {
		return Tails{}, err
	}
	tails := hypergeom.Partition(*c.population, *c.successes, *c.draws, *c.target)
	c.logger.Debug("computed tail partition",
		"N", *c.population, "K", *c.successes, "n", *c.draws, "k", *c.target,
		"less", tails.Less, "exact", tails.Exact, "more", tails.More)
	return tails, nil
}

// Display renders the probability report to stdout.
func (c *Calculator) Display() {
	c.Fdisplay(os.Stdout)
}

// Fdisplay renders the probability report to w. This is the designated
// recovery point for validation failures: instead of propagating, the error
// is printed as a report line and the Calculator is left unchanged, ready
// for correction and retry.
func (c *Calculator) Fdisplay(w io.Writer) {
	tails, err := c.Probabilities()
	if err != nil {
		c.logger.Debug("render aborted by validation", "err", err)
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	tui.RenderReport(w, tui.Report{
		Label:      c.label,
		Population: *c.population,
		Successes:  *c.successes,
		Draws:      *c.draws,
		Target:     *c.target,
		Tails:      tails,
	})
}
