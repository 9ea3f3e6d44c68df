// Package basis evaluates 2D reference shape-function families on the
// reference square [-1,1]^2. Every family is the tensor product of a 1D
// family with itself, so the shape-function count must be a perfect square.
package basis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FamilyTag names an interchangeable shape-function variant.
type FamilyTag string

const (
	// Bilinear is the standard Q1 corner-interpolation family (4 functions).
	Bilinear FamilyTag = "bilinear"
	// Jacobi is the spectral family built from P^{(-1/2,-1/2)} polynomials
	// normalized at the endpoint x=1.
	Jacobi FamilyTag = "jacobi"
	// Legendre is the spectral family built from P^{(0,0)} polynomials.
	Legendre FamilyTag = "legendre"
)

// Family evaluates a set of N reference shape functions and their first and
// second derivatives at arbitrary reference points. Each returned matrix is
// [N, P] for P input coordinates; xi and eta must have equal length.
type Family interface {
	NumShapeFunctions() int
	Value(xi, eta []float64) *mat.Dense
	GradX(xi, eta []float64) *mat.Dense
	GradY(xi, eta []float64) *mat.Dense
	GradXX(xi, eta []float64) *mat.Dense
	GradXY(xi, eta []float64) *mat.Dense
	GradYY(xi, eta []float64) *mat.Dense
}

// New selects a family by tag. n is the total shape-function count and must
// be a perfect square; the bilinear family additionally requires n == 4.
func New(tag FamilyTag, n int) (Family, error) {
	n1d := int(math.Round(math.Sqrt(float64(n))))
	if n < 1 || n1d*n1d != n {
		return nil, fmt.Errorf("basis: shape function count must be a perfect square, have %d", n)
	}
	switch tag {
	case Bilinear:
		if n != 4 {
			return nil, fmt.Errorf("basis: bilinear family requires 4 shape functions, have %d", n)
		}
		return &tensorFamily{n: n, n1d: 2, line: bilinearLine{}}, nil
	case Jacobi:
		return &tensorFamily{n: n, n1d: n1d, line: spectralLine{alpha: -0.5, beta: -0.5}}, nil
	case Legendre:
		return &tensorFamily{n: n, n1d: n1d, line: spectralLine{}}, nil
	default:
		return nil, fmt.Errorf("basis: unknown shape function family %q", tag)
	}
}

// line is a 1D factor family: values and the first two derivatives of n test
// functions at the given coordinates, each [n, P].
type line interface {
	values(n int, xs []float64) *mat.Dense
	deriv1(n int, xs []float64) *mat.Dense
	deriv2(n int, xs []float64) *mat.Dense
}

// tensorFamily combines a 1D line family on each axis. Shape function
// i*n1d+j is the product of x-factor i and y-factor j, and each derivative
// substitutes the derivative of the corresponding factor.
type tensorFamily struct {
	n    int
	n1d  int
	line line
}

func (t *tensorFamily) NumShapeFunctions() int { return t.n }

func (t *tensorFamily) Value(xi, eta []float64) *mat.Dense {
	checkLens(xi, eta)
	return t.combine(t.line.values(t.n1d, xi), t.line.values(t.n1d, eta))
}

func (t *tensorFamily) GradX(xi, eta []float64) *mat.Dense {
	checkLens(xi, eta)
	return t.combine(t.line.deriv1(t.n1d, xi), t.line.values(t.n1d, eta))
}

func (t *tensorFamily) GradY(xi, eta []float64) *mat.Dense {
	checkLens(xi, eta)
	return t.combine(t.line.values(t.n1d, xi), t.line.deriv1(t.n1d, eta))
}

func (t *tensorFamily) GradXX(xi, eta []float64) *mat.Dense {
	checkLens(xi, eta)
	return t.combine(t.line.deriv2(t.n1d, xi), t.line.values(t.n1d, eta))
}

func (t *tensorFamily) GradXY(xi, eta []float64) *mat.Dense {
	checkLens(xi, eta)
	return t.combine(t.line.deriv1(t.n1d, xi), t.line.deriv1(t.n1d, eta))
}

func (t *tensorFamily) GradYY(xi, eta []float64) *mat.Dense {
	checkLens(xi, eta)
	return t.combine(t.line.values(t.n1d, xi), t.line.deriv2(t.n1d, eta))
}

func (t *tensorFamily) combine(fx, fy *mat.Dense) *mat.Dense {
	_, np := fx.Dims()
	out := mat.NewDense(t.n, np, nil)
	for i := 0; i < t.n1d; i++ {
		for j := 0; j < t.n1d; j++ {
			row := i*t.n1d + j
			for p := 0; p < np; p++ {
				out.Set(row, p, fx.At(i, p)*fy.At(j, p))
			}
		}
	}
	return out
}

func checkLens(xi, eta []float64) {
	if len(xi) != len(eta) {
		panic(fmt.Sprintf("basis: coordinate slices differ in length: %d vs %d", len(xi), len(eta)))
	}
}
