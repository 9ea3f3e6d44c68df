// Package jacobi evaluates classical Jacobi polynomials P_n^{(alpha,beta)}.
//
// NORMALIZATION NOTE: these are the classical (non-orthonormal) polynomials
// with P_n^{(alpha,beta)}(1) = binom(n+alpha, n). The spectral shape
// functions built on top of them divide by the endpoint value, so the
// classical normalization must be used throughout; an orthonormal variant
// would change the derivative coefficients.
package jacobi

import "math"

// P evaluates P_n^{(alpha,beta)} at x using the standard three-term
// recurrence.
func P(x, alpha, beta float64, n int) float64 {
	if n == 0 {
		return 1.0
	}
	p0 := 1.0
	p1 := 0.5*(alpha-beta) + 0.5*(alpha+beta+2)*x
	if n == 1 {
		return p1
	}
	for m := 2; m <= n; m++ {
		fm := float64(m)
		c := 2*fm + alpha + beta
		a1 := 2 * fm * (fm + alpha + beta) * (c - 2)
		a2 := (c - 1) * (alpha*alpha - beta*beta)
		a3 := (c - 1) * (c - 2) * c
		a4 := 2 * (fm + alpha - 1) * (fm + beta - 1) * c
		p0, p1 = p1, ((a2+a3*x)*p1-a4*p0)/a1
	}
	return p1
}

// Slice evaluates P_n^{(alpha,beta)} at every point of xs.
func Slice(xs []float64, alpha, beta float64, n int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = P(x, alpha, beta, n)
	}
	return out
}

// AtOne returns the endpoint value P_n^{(alpha,beta)}(1) = binom(n+alpha, n).
// The value can be small for large n with negative alpha; callers dividing by
// it inherit the resulting floating-point amplification.
func AtOne(alpha, beta float64, n int) float64 {
	fn := float64(n)
	return math.Gamma(fn+alpha+1) / (math.Gamma(alpha+1) * math.Gamma(fn+1))
}
