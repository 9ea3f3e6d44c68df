package fespace

import (
	"github.com/varfem/FEKernel/basis"
	"github.com/varfem/FEKernel/element"
	"github.com/varfem/FEKernel/quadrature"
)

// CellType names the mesh cell topology. Only quadrilaterals are supported;
// Triangle is recognized so that triangular meshes fail with a clear
// configuration error instead of producing garbage.
type CellType string

const (
	Quadrilateral CellType = "quad"
	Triangle      CellType = "triangle"
)

// ConditionKind names a boundary condition type. Only Dirichlet receives
// special processing; other kinds are accepted as configuration and carried
// through untouched.
type ConditionKind string

const Dirichlet ConditionKind = "dirichlet"

// BoundaryFunc evaluates a prescribed boundary value at a physical point.
type BoundaryFunc func(x, y float64) float64

// VectorBoundaryFunc is the component-indexed variant for vector problems.
type VectorBoundaryFunc func(x, y float64) []float64

// Config is the discretization surface consumed by New. Every field is
// validated at construction; nothing is defaulted silently.
type Config struct {
	CellType CellType

	FEFamily basis.FamilyTag
	// NumShapeFunctions is the shape-function count per cell and must be a
	// perfect square (n per axis, tensor-product families).
	NumShapeFunctions int

	QuadOrder int
	QuadType  quadrature.Type

	TransformType element.TransformTag
}

// Stats summarizes the structural properties of a built space.
type Stats struct {
	NumCells           int
	NumQuadPerCell     int
	TotalDOFs          int
	TotalDirichletDOFs int
	NumShapeFunctions  int
	QuadOrder          int
}

// Observer receives structural statistics once construction finishes. It is
// purely informational; the numeric pipeline never depends on it.
type Observer interface {
	SpaceBuilt(stats Stats)
}
