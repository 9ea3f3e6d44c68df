// Package quadrature provides tensor-product Gauss rules on the reference
// square [-1,1]^2.
package quadrature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/varfem/FEKernel/jacobi"
)

// Type selects the 1D rule used on each axis of the tensor product.
type Type string

const (
	GaussLegendre Type = "gauss-legendre"
	GaussJacobi   Type = "gauss-jacobi"
	GaussLobatto  Type = "gauss-lobatto"
)

// Rule2D holds the tensor-product quadrature points and weights for one
// reference cell. The rule is fixed for the lifetime of a discretization
// space and shared read-only across cells.
type Rule2D struct {
	Order int // 1D point count per axis

	// Point p has reference coordinates (Xi[p], Eta[p]) and weight W[p].
	// Points are laid out row-major over (eta, xi).
	Xi, Eta, W []float64
}

// NumPoints returns the total number of quadrature points Q = Order².
func (r *Rule2D) NumPoints() int { return len(r.W) }

// NewRule2D builds the tensor product of the requested 1D rule with itself.
func NewRule2D(order int, qtype Type) (*Rule2D, error) {
	x, w, err := Rule1D(order, qtype)
	if err != nil {
		return nil, err
	}
	q := order * order
	r := &Rule2D{
		Order: order,
		Xi:    make([]float64, q),
		Eta:   make([]float64, q),
		W:     make([]float64, q),
	}
	for j := 0; j < order; j++ {
		for i := 0; i < order; i++ {
			p := j*order + i
			r.Xi[p] = x[i]
			r.Eta[p] = x[j]
			r.W[p] = w[i] * w[j]
		}
	}
	return r, nil
}

// Rule1D returns order points and weights on [-1,1] for the requested type.
func Rule1D(order int, qtype Type) (x, w []float64, err error) {
	if order < 1 {
		return nil, nil, fmt.Errorf("quadrature: order must be >= 1, have %d", order)
	}
	switch qtype {
	case GaussLegendre:
		x, w = GaussJacobiRule(0, 0, order)
	case GaussJacobi:
		// Chebyshev-weighted Gauss points, the companion rule for the
		// spectral test functions built on P^{(-1/2,-1/2)}.
		x, w = GaussJacobiRule(-0.5, -0.5, order)
	case GaussLobatto:
		if order < 2 {
			return nil, nil, fmt.Errorf("quadrature: gauss-lobatto needs order >= 2, have %d", order)
		}
		x, w = LobattoRule(order)
	default:
		return nil, nil, fmt.Errorf("quadrature: unknown quadrature type %q", qtype)
	}
	return x, w, nil
}

// GaussJacobiRule computes the npts-point Gauss rule for the Jacobi weight
// (1-x)^alpha (1+x)^beta on [-1,1] by the Golub-Welsch eigenvalue method:
// the points are the eigenvalues of the symmetric tridiagonal recurrence
// matrix and the weights come from the first components of its eigenvectors.
func GaussJacobiRule(alpha, beta float64, npts int) (x, w []float64) {
	if npts == 1 {
		return []float64{(beta - alpha) / (alpha + beta + 2)},
			[]float64{gamma0(alpha, beta)}
	}

	d0 := make([]float64, npts)
	fac := beta*beta - alpha*alpha
	for i := range d0 {
		h := 2*float64(i) + alpha + beta
		d0[i] = fac / (h * (h + 2))
	}
	// 0/0 at the first entry when alpha+beta == 0
	if math.Abs(alpha+beta) < 10*eps {
		d0[0] = 0
	}

	d1 := make([]float64, npts-1)
	for i := range d1 {
		ip1 := float64(i + 1)
		h := 2*float64(i) + alpha + beta
		d1[i] = 2 / (h + 2) * math.Sqrt(
			ip1*(ip1+alpha+beta)*(ip1+alpha)*(ip1+beta)/(h+1)/(h+3))
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(symTriDiagonal(d0, d1), true); !ok {
		panic("quadrature: eigenvalue decomposition failed")
	}
	x = eig.Values(nil)

	V := mat.NewDense(npts, npts, nil)
	eig.VectorsTo(V)
	w = make([]float64, npts)
	g0 := gamma0(alpha, beta)
	for i := range w {
		v := V.At(0, i)
		w[i] = v * v * g0
	}
	return x, w
}

// LobattoRule computes the npts-point Gauss-Lobatto-Legendre rule: both
// endpoints plus the interior Gauss points of the (1,1) Jacobi weight.
func LobattoRule(npts int) (x, w []float64) {
	x = make([]float64, npts)
	x[0], x[npts-1] = -1, 1
	if npts > 2 {
		xint, _ := GaussJacobiRule(1, 1, npts-2)
		copy(x[1:npts-1], xint)
	}

	// w_j = 2 / (n(n+1) P_n(x_j)^2) with n = npts-1
	n := npts - 1
	fn := float64(n)
	w = make([]float64, npts)
	for j, xj := range x {
		p := jacobi.P(xj, 0, 0, n)
		w[j] = 2 / (fn * (fn + 1) * p * p)
	}
	return x, w
}

const eps = 1e-16

// gamma0 is the total mass of the Jacobi weight on [-1,1]:
// ∫ (1-x)^alpha (1+x)^beta dx = 2^{alpha+beta+1} B(alpha+1, beta+1).
func gamma0(alpha, beta float64) float64 {
	return math.Pow(2, alpha+beta+1) * math.Gamma(alpha+1) * math.Gamma(beta+1) /
		math.Gamma(alpha+beta+2)
}

func symTriDiagonal(d0, d1 []float64) *mat.SymDense {
	n := len(d0)
	T := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		T.SetSym(i, i, d0[i])
		if i < n-1 {
			T.SetSym(i, i+1, d1[i])
		}
	}
	return T
}
