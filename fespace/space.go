// Package fespace builds and serves the per-cell discretization data for a
// quadrilateral mesh: one assembled cell record per mesh cell plus the
// Dirichlet boundary point/value sequences. A Space is read-only once
// constructed; accessors hand out copies.
package fespace

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/varfem/FEKernel/basis"
	"github.com/varfem/FEKernel/element"
	"github.com/varfem/FEKernel/mesh"
	"github.com/varfem/FEKernel/quadrature"
)

// Space owns one assembled cell record per mesh cell, index-aligned with the
// mesh cell order, and the extracted Dirichlet boundary data.
type Space struct {
	mesh *mesh.Mesh
	cfg  Config

	cells []*element.Cell

	boundaryFuncs map[int]BoundaryFunc
	boundaryConds map[int]ConditionKind
	forcing       element.ForcingFunc

	totalDOFs       int
	dirichletPoints [][2]float64
	dirichletValues []float64
}

// New validates the configuration, assembles every cell (fanning out over
// cells, which are independent), extracts the Dirichlet boundary data in
// mesh tag order and reports stats to obs when non-nil. Any configuration,
// geometric or lookup failure aborts construction.
func New(m *mesh.Mesh, cfg Config, boundaryFuncs map[int]BoundaryFunc,
	boundaryConds map[int]ConditionKind, forcing element.ForcingFunc,
	obs Observer) (*Space, error) {

	switch cfg.CellType {
	case Quadrilateral:
	case Triangle:
		return nil, fmt.Errorf("fespace: triangle meshes are not supported")
	default:
		return nil, fmt.Errorf("fespace: unsupported cell type %q", cfg.CellType)
	}

	fam, err := basis.New(cfg.FEFamily, cfg.NumShapeFunctions)
	if err != nil {
		return nil, err
	}
	rule, err := quadrature.NewRule2D(cfg.QuadOrder, cfg.QuadType)
	if err != nil {
		return nil, err
	}

	s := &Space{
		mesh:          m,
		cfg:           cfg,
		boundaryFuncs: boundaryFuncs,
		boundaryConds: boundaryConds,
		forcing:       forcing,
	}
	if err := s.buildCells(fam, rule); err != nil {
		return nil, err
	}
	if err := s.extractDirichlet(); err != nil {
		return nil, err
	}
	if obs != nil {
		obs.SpaceBuilt(s.Stats())
	}
	return s, nil
}

// buildCells assembles every cell record. Cells are independent, so workers
// process strided index ranges; results land at their cell index, keeping
// the output order identical to the mesh order regardless of completion
// order.
func (s *Space) buildCells(fam basis.Family, rule *quadrature.Rule2D) error {
	k := s.mesh.NumCells()
	s.cells = make([]*element.Cell, k)
	errs := make([]error, k)

	workers := runtime.GOMAXPROCS(0)
	if workers > k {
		workers = k
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < k; i += workers {
				verts, err := s.mesh.CellVertices(i)
				if err != nil {
					errs[i] = err
					continue
				}
				cell, err := element.NewCell(i, verts, fam, rule, s.cfg.TransformType, s.forcing)
				if err != nil {
					errs[i] = err
					continue
				}
				s.cells[i] = cell
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	for _, c := range s.cells {
		s.totalDOFs += c.NumQuadPoints()
	}
	return nil
}

// extractDirichlet walks boundary tags in mesh order and evaluates the
// matching boundary function at every boundary point. A tag without a
// function entry is a lookup failure.
func (s *Space) extractDirichlet() error {
	for _, tag := range s.mesh.BoundaryTags {
		fn, ok := s.boundaryFuncs[tag]
		if !ok {
			return fmt.Errorf("fespace: no boundary function for boundary tag %d", tag)
		}
		for _, pt := range s.mesh.BoundaryPoints[tag] {
			s.dirichletPoints = append(s.dirichletPoints, pt)
			s.dirichletValues = append(s.dirichletValues, fn(pt[0], pt[1]))
		}
	}
	return nil
}

// NumCells returns the cell count of the underlying mesh.
func (s *Space) NumCells() int { return len(s.cells) }

// TotalDOFs is the sum of quadrature-point counts across all cells.
func (s *Space) TotalDOFs() int { return s.totalDOFs }

// TotalDirichletDOFs is the number of extracted boundary points.
func (s *Space) TotalDirichletDOFs() int { return len(s.dirichletPoints) }

// Stats returns the structural summary reported to observers.
func (s *Space) Stats() Stats {
	q := 0
	if len(s.cells) > 0 {
		q = s.cells[0].NumQuadPoints()
	}
	return Stats{
		NumCells:           len(s.cells),
		NumQuadPerCell:     q,
		TotalDOFs:          s.totalDOFs,
		TotalDirichletDOFs: len(s.dirichletPoints),
		NumShapeFunctions:  s.cfg.NumShapeFunctions,
		QuadOrder:          s.cfg.QuadOrder,
	}
}

// String returns a summary of the space's structural properties.
func (s *Space) String() string {
	var sb strings.Builder
	st := s.Stats()
	sb.WriteString("=== FE Space Summary ===\n")
	sb.WriteString(fmt.Sprintf("  Cells: %d\n", st.NumCells))
	sb.WriteString(fmt.Sprintf("  Shape functions per cell: %d (%s)\n", st.NumShapeFunctions, s.cfg.FEFamily))
	sb.WriteString(fmt.Sprintf("  Quadrature: order %d %s, %d points per cell\n", st.QuadOrder, s.cfg.QuadType, st.NumQuadPerCell))
	sb.WriteString(fmt.Sprintf("  Transformation: %s\n", s.cfg.TransformType))
	sb.WriteString(fmt.Sprintf("  Total quadrature dofs: %d\n", st.TotalDOFs))
	sb.WriteString(fmt.Sprintf("  Dirichlet boundary dofs: %d\n", st.TotalDirichletDOFs))
	return sb.String()
}
