package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitSquareCounts(t *testing.T) {
	m, err := NewUnitSquare(4, 3)
	if err != nil {
		t.Fatalf("NewUnitSquare failed: %v", err)
	}
	assert.Equal(t, 20, len(m.Vertices))
	assert.Equal(t, 12, m.NumCells())

	_, err = NewUnitSquare(0, 3)
	assert.Error(t, err)
}

func TestCellVerticesOrderAndBounds(t *testing.T) {
	m, _ := NewUnitSquare(2, 2)

	v, err := m.CellVertices(0)
	if err != nil {
		t.Fatalf("CellVertices failed: %v", err)
	}
	assert.Equal(t, [2]float64{0, 0}, v[0])
	assert.Equal(t, [2]float64{0.5, 0}, v[1])
	assert.Equal(t, [2]float64{0.5, 0.5}, v[2])
	assert.Equal(t, [2]float64{0, 0.5}, v[3])

	_, err = m.CellVertices(m.NumCells())
	assert.Error(t, err, "one past the last cell must be a bounds error")
	_, err = m.CellVertices(-1)
	assert.Error(t, err)
}

func TestBoundaryEdges(t *testing.T) {
	m, _ := NewUnitSquare(4, 3)
	edges := m.BoundaryEdges()
	assert.Len(t, edges, 2*(4+3))
	for _, e := range edges {
		p0, p1 := m.Vertices[e[0]], m.Vertices[e[1]]
		onSide := func(p [2]float64) bool {
			return p[0] == 0 || p[0] == 1 || p[1] == 0 || p[1] == 1
		}
		assert.True(t, onSide(p0) && onSide(p1), "edge %v is not on the boundary", e)
	}
}

func TestBoundaryTagClassification(t *testing.T) {
	m, _ := NewUnitSquare(5, 5)
	assert.Equal(t, []int{TagBottom, TagRight, TagTop, TagLeft}, m.BoundaryTags)

	for _, pt := range m.BoundaryPoints[TagBottom] {
		assert.Equal(t, 0.0, pt[1])
	}
	for _, pt := range m.BoundaryPoints[TagRight] {
		assert.Equal(t, 1.0, pt[0])
	}
	for _, pt := range m.BoundaryPoints[TagTop] {
		assert.Equal(t, 1.0, pt[1])
	}
	for _, pt := range m.BoundaryPoints[TagLeft] {
		assert.Equal(t, 0.0, pt[0])
	}

	// every side carries its full vertex row, corners included
	for _, tag := range m.BoundaryTags {
		assert.Len(t, m.BoundaryPoints[tag], 6)
	}
}

// Boundary point sequences must be reproducible across builds: downstream
// consumers rely on the ordering staying fixed.
func TestBoundaryOrderDeterministic(t *testing.T) {
	a, _ := NewUnitSquare(6, 4)
	b, _ := NewUnitSquare(6, 4)
	assert.Equal(t, a.BoundaryTags, b.BoundaryTags)
	for _, tag := range a.BoundaryTags {
		assert.Equal(t, a.BoundaryPoints[tag], b.BoundaryPoints[tag])
	}
}
