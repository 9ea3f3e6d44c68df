package fespace

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/varfem/FEKernel/element"
)

// Accessors return copies of the per-cell arrays so downstream mutation
// cannot corrupt the space's internal state. Every accessor bounds-checks
// the cell index.

func (s *Space) checkCell(k int) error {
	if k < 0 || k >= len(s.cells) {
		return fmt.Errorf("fespace: cell index %d out of range [0,%d)", k, len(s.cells))
	}
	return nil
}

// ShapeValues returns the weight-scaled shape function values [N, Q].
func (s *Space) ShapeValues(k int) (*mat.Dense, error) {
	if err := s.checkCell(k); err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(s.cells[k].BasisValue), nil
}

// ShapeGradX returns the weight-scaled physical x-derivatives [N, Q].
func (s *Space) ShapeGradX(k int) (*mat.Dense, error) {
	if err := s.checkCell(k); err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(s.cells[k].BasisGradX), nil
}

// ShapeGradXRef returns the raw reference-space x-derivatives [N, Q].
func (s *Space) ShapeGradXRef(k int) (*mat.Dense, error) {
	if err := s.checkCell(k); err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(s.cells[k].BasisGradXRef), nil
}

// ShapeGradY returns the weight-scaled physical y-derivatives [N, Q].
func (s *Space) ShapeGradY(k int) (*mat.Dense, error) {
	if err := s.checkCell(k); err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(s.cells[k].BasisGradY), nil
}

// ShapeGradYRef returns the raw reference-space y-derivatives [N, Q].
func (s *Space) ShapeGradYRef(k int) (*mat.Dense, error) {
	if err := s.checkCell(k); err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(s.cells[k].BasisGradYRef), nil
}

// Jacobian returns the per-point transform Jacobian in the components-as-rows
// layout [4, Q] described on element.Cell.
func (s *Space) Jacobian(k int) (*mat.Dense, error) {
	if err := s.checkCell(k); err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(s.cells[k].Jac), nil
}

// Mult returns quadrature weight times |det J| per quadrature point.
func (s *Space) Mult(k int) ([]float64, error) {
	if err := s.checkCell(k); err != nil {
		return nil, err
	}
	return append([]float64(nil), s.cells[k].Mult...), nil
}

// QuadPoints returns the physical quadrature coordinates [Q, 2].
func (s *Space) QuadPoints(k int) (*mat.Dense, error) {
	if err := s.checkCell(k); err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(s.cells[k].QuadPhys), nil
}

// ForcingIntegral recomputes and returns the forcing projection of cell k
// against each shape function using the space's forcing function.
func (s *Space) ForcingIntegral(k int) ([]float64, error) {
	if err := s.checkCell(k); err != nil {
		return nil, err
	}
	if s.forcing == nil {
		return nil, fmt.Errorf("fespace: no forcing function configured")
	}
	return s.cells[k].ComputeForcingIntegral(s.forcing), nil
}

// ForcingIntegralComponent recomputes the forcing projection of cell k for
// one component of a vector-valued forcing function.
func (s *Space) ForcingIntegralComponent(k int, f element.VectorForcingFunc, component int) ([]float64, error) {
	if err := s.checkCell(k); err != nil {
		return nil, err
	}
	return s.cells[k].ComputeForcingIntegralComponent(f, component)
}

// ForcingMatrix stacks the cached forcing integrals of all cells into one
// [N, K] matrix, column k holding cell k's projection.
func (s *Space) ForcingMatrix() (*mat.Dense, error) {
	if len(s.cells) == 0 {
		return nil, fmt.Errorf("fespace: space has no cells")
	}
	n := len(s.cells[0].ForcingIntegral)
	if n == 0 {
		return nil, fmt.Errorf("fespace: forcing integrals have not been computed")
	}
	out := mat.NewDense(n, len(s.cells), nil)
	for k, c := range s.cells {
		for i, v := range c.ForcingIntegral {
			out.Set(i, k, v)
		}
	}
	return out, nil
}

// DirichletData returns the extracted boundary coordinate and value
// sequences, ordered by mesh boundary tag order and point order within each
// tag.
func (s *Space) DirichletData() (points [][2]float64, values []float64) {
	points = append([][2]float64(nil), s.dirichletPoints...)
	values = append([]float64(nil), s.dirichletValues...)
	return
}

// DirichletDataComponent evaluates one component of vector-valued boundary
// functions at every boundary point, in the same deterministic order as
// DirichletData.
func (s *Space) DirichletDataComponent(funcs map[int]VectorBoundaryFunc, component int) (points [][2]float64, values []float64, err error) {
	for _, tag := range s.mesh.BoundaryTags {
		fn, ok := funcs[tag]
		if !ok {
			return nil, nil, fmt.Errorf("fespace: no boundary function for boundary tag %d", tag)
		}
		for _, pt := range s.mesh.BoundaryPoints[tag] {
			vals := fn(pt[0], pt[1])
			if component < 0 || component >= len(vals) {
				return nil, nil, fmt.Errorf("fespace: boundary component %d out of range [0,%d) at tag %d",
					component, len(vals), tag)
			}
			points = append(points, pt)
			values = append(values, vals[component])
		}
	}
	return points, values, nil
}

// ConditionKindFor reports the configured boundary condition kind for a tag.
func (s *Space) ConditionKindFor(tag int) (ConditionKind, bool) {
	kind, ok := s.boundaryConds[tag]
	return kind, ok
}
