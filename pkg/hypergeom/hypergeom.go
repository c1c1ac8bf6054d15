package hypergeom

import "math/big"

// Tails is the partition of the outcome space around a target value k:
// strictly fewer than k successes, exactly k, and strictly more than k.
// The three values sum to 1.
type Tails struct {
	Less  float64
	Exact float64
	More  float64
}

// Choose returns the binomial coefficient C(a, b) as an exact integer.
// By combinatorial convention it is 0 when b < 0 or b > a.
func Choose(a, b int64) *big.Int {
	if b < 0 || b > a {
		return new(big.Int)
	}
	return new(big.Int).Binomial(a, b)
}

// SupportMin returns the smallest feasible success count: even a sample made
// entirely of failures must contain n-(N-K) successes when the population
// does not hold enough failures to fill the sample.
func SupportMin(N, K, n int) int {
	if m := n - (N - K); m > 0 {
		return m
	}
	return 0
}

// SupportMax returns the largest feasible success count, min(n, K).
func SupportMax(K, n int) int {
	if K < n {
		return K
	}
	return n
}

// PMF returns P(X = k) = C(K,k)*C(N-K,n-k)/C(N,n) for the distribution with
// population N, K success states, and sample size n. Outside the feasible
// support the result is 0.
func PMF(N, K, n, k int) float64 {
	return toProb(pmf(N, K, n, k))
}

// CDF returns P(X <= k). Summation runs over the feasible support only, so
// values of k below the support minimum yield 0 and values above the support
// maximum yield 1.
func CDF(N, K, n, k int) float64 {
	return toProb(cdf(N, K, n, k))
}

// Partition returns the ordered triple (P(X<k), P(X=k), P(X>k)).
//
// All three terms are carried as exact rationals until the final conversion:
// the upper tail is 1 - less - exact evaluated in rational arithmetic, so it
// cannot go negative through floating-point cancellation when k sits at the
// support maximum.
func Partition(N, K, n, k int) Tails {
	less := cdf(N, K, n, k-1)
	exact := pmf(N, K, n, k)

	more := new(big.Rat).SetInt64(1)
	more.Sub(more, less)
	more.Sub(more, exact)

	return Tails{
		Less:  toProb(less),
		Exact: toProb(exact),
		More:  toProb(more),
	}
}

func pmf(N, K, n, k int) *big.Rat {
	den := Choose(int64(N), int64(n))
	if den.Sign() == 0 {
		// n > N only reaches here on unvalidated input; the empty sample
		// case C(0,0)=1 never lands in this branch.
		return new(big.Rat)
	}
	num := new(big.Int).Mul(Choose(int64(K), int64(k)), Choose(int64(N-K), int64(n-k)))
	return new(big.Rat).SetFrac(num, den)
}

func cdf(N, K, n, k int) *big.Rat {
	sum := new(big.Rat)
	lo := SupportMin(N, K, n)
	hi := SupportMax(K, n)
	if k < lo {
		return sum
	}
	if k > hi {
		k = hi
	}
	for x := lo; x <= k; x++ {
		sum.Add(sum, pmf(N, K, n, x))
	}
	return sum
}

// toProb converts an exact rational to float64, clamped to [0, 1] to absorb
// conversion rounding at the boundaries.
func toProb(r *big.Rat) float64 {
	f, _ := r.Float64()
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
