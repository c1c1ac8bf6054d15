/*
Package hypergeom implements the hypergeometric distribution using exact
integer combinatorics.

The hypergeometric law describes the number of successes X in a sample of n
items drawn without replacement from a population of N items containing K
successes. All probabilities are derived from binomial coefficients computed
with arbitrary-precision integers (math/big), with the division performed
last, so results carry no intermediate floating-point error even for large
populations.

This package is pure and free of I/O or external dependencies, following the
same role pkg/domain plays in hexagonal designs: callers are expected to
validate parameters before invoking it.
*/
package hypergeom
