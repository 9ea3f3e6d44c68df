// Package mesh holds the read-only quadrilateral mesh data consumed by the
// discretization space: a vertex table, a cell connectivity table and the
// per-tag boundary point sequences. Mesh file parsing lives outside this
// module; tests and examples use the structured generator below.
package mesh

import (
	"fmt"
	"math"
)

// Boundary tags assigned by the structured generator, one per side of the
// unit square. The values match the tag convention of the example problems.
const (
	TagBottom = 1000
	TagRight  = 1001
	TagTop    = 1002
	TagLeft   = 1003
)

// Mesh is a quadrilateral mesh. Cell k has vertex indices EToV[k] in
// counter-clockwise order. BoundaryTags preserves tag iteration order so
// that downstream boundary sequences are deterministic.
type Mesh struct {
	Vertices [][2]float64
	EToV     [][4]int

	BoundaryTags   []int
	BoundaryPoints map[int][][2]float64
}

// NumCells returns the cell count.
func (m *Mesh) NumCells() int { return len(m.EToV) }

// CellVertices returns the physical coordinates of cell k's vertices.
func (m *Mesh) CellVertices(k int) ([4][2]float64, error) {
	var v [4][2]float64
	if k < 0 || k >= len(m.EToV) {
		return v, fmt.Errorf("mesh: cell index %d out of range [0,%d)", k, len(m.EToV))
	}
	for i, vi := range m.EToV[k] {
		if vi < 0 || vi >= len(m.Vertices) {
			return v, fmt.Errorf("mesh: cell %d references vertex %d outside vertex table of size %d",
				k, vi, len(m.Vertices))
		}
		v[i] = m.Vertices[vi]
	}
	return v, nil
}

// BoundaryEdges returns the vertex-index pairs of edges owned by exactly one
// cell. Shared edges are matched through canonical (sorted) vertex
// signatures; first-seen order is preserved so the result is deterministic.
func (m *Mesh) BoundaryEdges() [][2]int {
	quadEdges := [4][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}

	count := make(map[[2]int]int)
	var order [][2]int
	for _, cell := range m.EToV {
		for _, e := range quadEdges {
			a, b := cell[e[0]], cell[e[1]]
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if count[key] == 0 {
				order = append(order, key)
			}
			count[key]++
		}
	}

	var out [][2]int
	for _, key := range order {
		if count[key] == 1 {
			out = append(out, key)
		}
	}
	return out
}

// NewUnitSquare builds an nx-by-ny structured quadrilateral mesh of the unit
// square with boundary vertices tagged per side.
func NewUnitSquare(nx, ny int) (*Mesh, error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("mesh: grid dimensions must be >= 1, have %dx%d", nx, ny)
	}
	m := &Mesh{
		Vertices: make([][2]float64, (nx+1)*(ny+1)),
		EToV:     make([][4]int, 0, nx*ny),
	}
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			m.Vertices[j*(nx+1)+i] = [2]float64{float64(i) / float64(nx), float64(j) / float64(ny)}
		}
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v0 := j*(nx+1) + i
			m.EToV = append(m.EToV, [4]int{v0, v0 + 1, v0 + nx + 2, v0 + nx + 1})
		}
	}
	m.tagBoundary()
	return m, nil
}

// tagBoundary classifies every boundary edge by the side its midpoint lies
// on and collects the edge vertices into per-tag point sequences, first-seen
// order within each tag.
func (m *Mesh) tagBoundary() {
	m.BoundaryTags = []int{TagBottom, TagRight, TagTop, TagLeft}
	m.BoundaryPoints = make(map[int][][2]float64, 4)
	seen := make(map[int]map[int]bool, 4)
	for _, tag := range m.BoundaryTags {
		seen[tag] = make(map[int]bool)
	}

	for _, e := range m.BoundaryEdges() {
		p0, p1 := m.Vertices[e[0]], m.Vertices[e[1]]
		tag := sideTag(0.5*(p0[0]+p1[0]), 0.5*(p0[1]+p1[1]))
		for _, vi := range e {
			if seen[tag][vi] {
				continue
			}
			seen[tag][vi] = true
			m.BoundaryPoints[tag] = append(m.BoundaryPoints[tag], m.Vertices[vi])
		}
	}
}

func sideTag(x, y float64) int {
	const tol = 1e-12
	switch {
	case math.Abs(y) < tol:
		return TagBottom
	case math.Abs(x-1) < tol:
		return TagRight
	case math.Abs(y-1) < tol:
		return TagTop
	default:
		return TagLeft
	}
}
