package element

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/varfem/FEKernel/basis"
	"github.com/varfem/FEKernel/quadrature"
)

// ForcingFunc evaluates the PDE right-hand side at a physical point.
type ForcingFunc func(x, y float64) float64

// VectorForcingFunc evaluates a component-indexed right-hand side for
// vector-valued problems.
type VectorForcingFunc func(x, y float64) []float64

// Cell holds the integration-ready tensors of one mesh cell. All fields
// except ForcingIntegral are immutable after construction.
//
// BasisValue, BasisGradX and BasisGradY carry the quadrature weight times
// |det J| folded into every column, so row sums directly approximate
// integrals over the physical cell. The *Ref matrices keep the raw
// reference-space derivatives.
type Cell struct {
	Index int
	Verts [4][2]float64

	BasisValue    *mat.Dense // [N, Q]
	BasisGradX    *mat.Dense // [N, Q], physical derivative
	BasisGradY    *mat.Dense // [N, Q], physical derivative
	BasisGradXRef *mat.Dense // [N, Q], unscaled reference derivative
	BasisGradYRef *mat.Dense // [N, Q], unscaled reference derivative

	// Jac stores the transform Jacobian per quadrature point in the
	// components-as-rows layout:
	//   Jac.At(0,q) = dx/dxi   Jac.At(1,q) = dx/deta
	//   Jac.At(2,q) = dy/dxi   Jac.At(3,q) = dy/deta
	Jac    *mat.Dense // [4, Q]
	JacDet []float64  // [Q], positive for admissible cells
	Mult   []float64  // [Q], weight * |det J|

	QuadRef  *mat.Dense // [Q, 2] reference coordinates
	QuadPhys *mat.Dense // [Q, 2] physical coordinates

	// ForcingIntegral is the quadrature projection of the forcing function
	// against each shape function. Overwritten in place by the compute
	// methods; everything else stays fixed.
	ForcingIntegral []float64 // [N]
}

// NewCell assembles the record for one cell: basis evaluation at the shared
// quadrature points, the geometric transform, the inverse-Jacobian gradient
// pull-back, weight scaling and the initial forcing projection (when forcing
// is non-nil).
func NewCell(index int, verts [4][2]float64, fam basis.Family, rule *quadrature.Rule2D,
	tt TransformTag, forcing ForcingFunc) (*Cell, error) {

	tr, err := NewTransform(tt, verts)
	if err != nil {
		return nil, err
	}

	n := fam.NumShapeFunctions()
	q := rule.NumPoints()

	c := &Cell{
		Index:         index,
		Verts:         verts,
		BasisValue:    mat.NewDense(n, q, nil),
		BasisGradX:    mat.NewDense(n, q, nil),
		BasisGradY:    mat.NewDense(n, q, nil),
		BasisGradXRef: fam.GradX(rule.Xi, rule.Eta),
		BasisGradYRef: fam.GradY(rule.Xi, rule.Eta),
		Jac:           mat.NewDense(4, q, nil),
		JacDet:        make([]float64, q),
		Mult:          make([]float64, q),
		QuadRef:       mat.NewDense(q, 2, nil),
		QuadPhys:      mat.NewDense(q, 2, nil),
	}
	val := fam.Value(rule.Xi, rule.Eta)

	for p := 0; p < q; p++ {
		xi, eta := rule.Xi[p], rule.Eta[p]
		j00, j01, j10, j11 := tr.Jacobian(xi, eta)
		det := j00*j11 - j01*j10
		if det <= 0 {
			return nil, fmt.Errorf("element: cell %d is degenerate or inverted: Jacobian determinant %g at quadrature point %d",
				index, det, p)
		}
		x, y := tr.Map(xi, eta)

		c.Jac.Set(0, p, j00)
		c.Jac.Set(1, p, j01)
		c.Jac.Set(2, p, j10)
		c.Jac.Set(3, p, j11)
		c.JacDet[p] = det
		c.QuadRef.Set(p, 0, xi)
		c.QuadRef.Set(p, 1, eta)
		c.QuadPhys.Set(p, 0, x)
		c.QuadPhys.Set(p, 1, y)

		mult := rule.W[p] * math.Abs(det)
		c.Mult[p] = mult

		// physical gradient = J^{-T} * reference gradient
		for i := 0; i < n; i++ {
			gxr := c.BasisGradXRef.At(i, p)
			gyr := c.BasisGradYRef.At(i, p)
			gx := (j11*gxr - j10*gyr) / det
			gy := (-j01*gxr + j00*gyr) / det
			c.BasisValue.Set(i, p, val.At(i, p)*mult)
			c.BasisGradX.Set(i, p, gx*mult)
			c.BasisGradY.Set(i, p, gy*mult)
		}
	}

	if forcing != nil {
		c.ComputeForcingIntegral(forcing)
	}
	return c, nil
}

// NumQuadPoints returns Q, the quadrature point count of this cell.
func (c *Cell) NumQuadPoints() int { return len(c.Mult) }

// ComputeForcingIntegral projects f against every shape function. The weight
// and Jacobian scaling is already folded into BasisValue, so this is a plain
// sum over quadrature points. The cached ForcingIntegral is overwritten;
// recomputation with the same f is idempotent. The returned slice is a copy.
func (c *Cell) ComputeForcingIntegral(f ForcingFunc) []float64 {
	n, q := c.BasisValue.Dims()
	fv := make([]float64, q)
	for p := 0; p < q; p++ {
		fv[p] = f(c.QuadPhys.At(p, 0), c.QuadPhys.At(p, 1))
	}
	c.ForcingIntegral = c.project(n, q, fv)
	return append([]float64(nil), c.ForcingIntegral...)
}

// ComputeForcingIntegralComponent is the vector-valued analogue: it projects
// the given component of f.
func (c *Cell) ComputeForcingIntegralComponent(f VectorForcingFunc, component int) ([]float64, error) {
	n, q := c.BasisValue.Dims()
	fv := make([]float64, q)
	for p := 0; p < q; p++ {
		vals := f(c.QuadPhys.At(p, 0), c.QuadPhys.At(p, 1))
		if component < 0 || component >= len(vals) {
			return nil, fmt.Errorf("element: cell %d forcing component %d out of range [0,%d)",
				c.Index, component, len(vals))
		}
		fv[p] = vals[component]
	}
	c.ForcingIntegral = c.project(n, q, fv)
	return append([]float64(nil), c.ForcingIntegral...), nil
}

func (c *Cell) project(n, q int, fv []float64) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for p := 0; p < q; p++ {
			sum += c.BasisValue.At(i, p) * fv[p]
		}
		out[i] = sum
	}
	return out
}
