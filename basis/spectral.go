package basis

import (
	"gonum.org/v1/gonum/mat"

	"github.com/varfem/FEKernel/jacobi"
)

// spectralLine builds the 1D test functions
//
//	test_k(x) = P_{k+1}(x)/P_{k+1}(1) - P_{k-1}(x)/P_{k-1}(1),  k = 1..n
//
// from classical Jacobi polynomials P = P^{(alpha,beta)}. With alpha = beta
// = -1/2 these are the Chebyshev-flavored test functions of hp-VPINNs; with
// alpha = beta = 0 the Legendre variant (where P(1) = 1 exactly).
//
// Derivatives use d/dx P_m^{(a,b)} = ((m+a+b+1)/2) P_{m-1}^{(a+1,b+1)} and
// keep the per-k branch structure: the subtraction terms reference
// polynomials of index k-2 (first derivative) and k-3 (second derivative)
// and must be omitted for the low indices where those are undefined.
type spectralLine struct {
	alpha, beta float64
}

func (s spectralLine) values(n int, xs []float64) *mat.Dense {
	out := mat.NewDense(n, len(xs), nil)
	for k := 1; k <= n; k++ {
		hi := jacobi.AtOne(s.alpha, s.beta, k+1)
		lo := jacobi.AtOne(s.alpha, s.beta, k-1)
		for p, x := range xs {
			v := jacobi.P(x, s.alpha, s.beta, k+1)/hi -
				jacobi.P(x, s.alpha, s.beta, k-1)/lo
			out.Set(k-1, p, v)
		}
	}
	return out
}

func (s spectralLine) deriv1(n int, xs []float64) *mat.Dense {
	ab := s.alpha + s.beta
	a1, b1 := s.alpha+1, s.beta+1
	out := mat.NewDense(n, len(xs), nil)
	for k := 1; k <= n; k++ {
		fk := float64(k)
		cHi := (fk + ab + 2) / 2
		hi := jacobi.AtOne(s.alpha, s.beta, k+1)
		switch k {
		case 1:
			for p, x := range xs {
				out.Set(k-1, p, cHi*jacobi.P(x, a1, b1, k)/hi)
			}
		default:
			cLo := (fk + ab) / 2
			lo := jacobi.AtOne(s.alpha, s.beta, k-1)
			for p, x := range xs {
				v := cHi*jacobi.P(x, a1, b1, k)/hi -
					cLo*jacobi.P(x, a1, b1, k-2)/lo
				out.Set(k-1, p, v)
			}
		}
	}
	return out
}

func (s spectralLine) deriv2(n int, xs []float64) *mat.Dense {
	ab := s.alpha + s.beta
	a2, b2 := s.alpha+2, s.beta+2
	out := mat.NewDense(n, len(xs), nil)
	for k := 1; k <= n; k++ {
		fk := float64(k)
		cHi := (fk + ab + 2) / 2 * (fk + ab + 3) / 2
		hi := jacobi.AtOne(s.alpha, s.beta, k+1)
		switch k {
		case 1:
			for p, x := range xs {
				out.Set(k-1, p, cHi*jacobi.P(x, a2, b2, k-1)/hi)
			}
		case 2:
			for p, x := range xs {
				out.Set(k-1, p, cHi*jacobi.P(x, a2, b2, k-1)/hi)
			}
		default:
			cLo := (fk + ab) / 2 * (fk + ab + 1) / 2
			lo := jacobi.AtOne(s.alpha, s.beta, k-1)
			for p, x := range xs {
				v := cHi*jacobi.P(x, a2, b2, k-1)/hi -
					cLo*jacobi.P(x, a2, b2, k-3)/lo
				out.Set(k-1, p, v)
			}
		}
	}
	return out
}
