// Package element maps reference cells to physical space and assembles the
// per-cell integration tensors consumed by the discretization space.
package element

import "fmt"

// TransformTag selects the reference-to-physical coordinate transform.
type TransformTag string

const (
	// Affine uses a constant-Jacobian map built from vertices 0, 1 and 3;
	// exact for parallelogram cells.
	Affine TransformTag = "affine"
	// Bilinear is the full isoparametric Q1 map handling general
	// straight-sided quadrilaterals.
	Bilinear TransformTag = "bilinear"
)

// Transform maps reference coordinates (xi, eta) in [-1,1]^2 to physical
// space and exposes the Jacobian of that map.
type Transform interface {
	Map(xi, eta float64) (x, y float64)
	// Jacobian returns dx/dxi, dx/deta, dy/dxi, dy/deta.
	Jacobian(xi, eta float64) (j00, j01, j10, j11 float64)
}

// NewTransform builds the transform for one cell from its 4 vertices in
// counter-clockwise order.
func NewTransform(tag TransformTag, verts [4][2]float64) (Transform, error) {
	switch tag {
	case Affine:
		return &affineTransform{verts: verts}, nil
	case Bilinear:
		return &bilinearTransform{verts: verts}, nil
	default:
		return nil, fmt.Errorf("element: unknown transformation type %q", tag)
	}
}

type affineTransform struct {
	verts [4][2]float64
}

func (t *affineTransform) Map(xi, eta float64) (x, y float64) {
	v := &t.verts
	x = v[0][0] + 0.5*(1+xi)*(v[1][0]-v[0][0]) + 0.5*(1+eta)*(v[3][0]-v[0][0])
	y = v[0][1] + 0.5*(1+xi)*(v[1][1]-v[0][1]) + 0.5*(1+eta)*(v[3][1]-v[0][1])
	return
}

func (t *affineTransform) Jacobian(xi, eta float64) (j00, j01, j10, j11 float64) {
	v := &t.verts
	j00 = 0.5 * (v[1][0] - v[0][0])
	j01 = 0.5 * (v[3][0] - v[0][0])
	j10 = 0.5 * (v[1][1] - v[0][1])
	j11 = 0.5 * (v[3][1] - v[0][1])
	return
}

type bilinearTransform struct {
	verts [4][2]float64
}

func (t *bilinearTransform) Map(xi, eta float64) (x, y float64) {
	v := &t.verts
	n0 := 0.25 * (1 - xi) * (1 - eta)
	n1 := 0.25 * (1 + xi) * (1 - eta)
	n2 := 0.25 * (1 + xi) * (1 + eta)
	n3 := 0.25 * (1 - xi) * (1 + eta)
	x = n0*v[0][0] + n1*v[1][0] + n2*v[2][0] + n3*v[3][0]
	y = n0*v[0][1] + n1*v[1][1] + n2*v[2][1] + n3*v[3][1]
	return
}

func (t *bilinearTransform) Jacobian(xi, eta float64) (j00, j01, j10, j11 float64) {
	v := &t.verts
	j00 = 0.25 * (-(1-eta)*v[0][0] + (1-eta)*v[1][0] + (1+eta)*v[2][0] - (1+eta)*v[3][0])
	j01 = 0.25 * (-(1-xi)*v[0][0] - (1+xi)*v[1][0] + (1+xi)*v[2][0] + (1-xi)*v[3][0])
	j10 = 0.25 * (-(1-eta)*v[0][1] + (1-eta)*v[1][1] + (1+eta)*v[2][1] - (1+eta)*v[3][1])
	j11 = 0.25 * (-(1-xi)*v[0][1] - (1+xi)*v[1][1] + (1+xi)*v[2][1] + (1-xi)*v[3][1])
	return
}
