package basis

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidation(t *testing.T) {
	_, err := New(Jacobi, 5)
	assert.Error(t, err, "non-square count must be rejected")

	_, err = New(Legendre, 0)
	assert.Error(t, err)

	_, err = New(Bilinear, 9)
	assert.Error(t, err, "bilinear family is fixed at 4 shape functions")

	_, err = New(FamilyTag("hermite"), 4)
	assert.Error(t, err)

	fam, err := New(Jacobi, 16)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	assert.Equal(t, 16, fam.NumShapeFunctions())
}

// Each bilinear shape function equals 1 at exactly one reference corner and
// 0 at the other three.
func TestBilinearCornerIdentity(t *testing.T) {
	fam, err := New(Bilinear, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	xi := []float64{-1, 1, 1, -1}
	eta := []float64{-1, -1, 1, 1}
	v := fam.Value(xi, eta)

	// tensor index i*2+j pairs x-factor i with y-factor j
	oneAt := map[int]int{0: 0, 1: 3, 2: 1, 3: 2}
	for i := 0; i < 4; i++ {
		for c := 0; c < 4; c++ {
			want := 0.0
			if oneAt[i] == c {
				want = 1.0
			}
			assert.InDelta(t, want, v.At(i, c), 1e-14, "shape %d at corner %d", i, c)
		}
	}
}

func TestBilinearPartitionOfUnity(t *testing.T) {
	fam, _ := New(Bilinear, 4)
	xi := []float64{-0.7, -0.2, 0.3, 0.9}
	eta := []float64{0.1, -0.8, 0.6, -0.4}
	v := fam.Value(xi, eta)
	gx := fam.GradX(xi, eta)
	for p := range xi {
		var sum, dsum float64
		for i := 0; i < 4; i++ {
			sum += v.At(i, p)
			dsum += gx.At(i, p)
		}
		assert.InDelta(t, 1, sum, 1e-14)
		assert.InDelta(t, 0, dsum, 1e-14)
	}
}

func TestLegendreLineValues(t *testing.T) {
	s := spectralLine{}
	xs := []float64{-0.8, -0.3, 0, 0.4, 0.9}
	v := s.values(3, xs)
	for p, x := range xs {
		// P_{k+1} - P_{k-1} with P_n(1) = 1
		assert.InDelta(t, 1.5*x*x-1.5, v.At(0, p), 1e-12)
		assert.InDelta(t, 2.5*x*x*x-2.5*x, v.At(1, p), 1e-12)
		assert.InDelta(t, (35*math.Pow(x, 4)-42*x*x+7)/8, v.At(2, p), 1e-12)
	}
}

// The (-1/2,-1/2) test functions have the closed form
// T_{k+1}(x) - T_{k-1}(x) in Chebyshev polynomials of the first kind.
func TestChebyshevLineValues(t *testing.T) {
	s := spectralLine{alpha: -0.5, beta: -0.5}
	xs := []float64{-0.9, -0.45, 0, 0.35, 0.8}
	n := 5
	v := s.values(n, xs)
	for p, x := range xs {
		theta := math.Acos(x)
		for k := 1; k <= n; k++ {
			want := math.Cos(float64(k+1)*theta) - math.Cos(float64(k-1)*theta)
			assert.InDelta(t, want, v.At(k-1, p), 1e-10, "k=%d x=%g", k, x)
		}
	}
}

// Spectral test functions vanish at both endpoints: the endpoint
// normalization makes both terms 1 at x=1, and parity makes them cancel at
// x=-1.
func TestSpectralVanishesAtEndpoints(t *testing.T) {
	for _, line := range []spectralLine{{alpha: -0.5, beta: -0.5}, {}} {
		v := line.values(4, []float64{-1, 1})
		for k := 0; k < 4; k++ {
			assert.InDelta(t, 0, v.At(k, 0), 1e-12)
			assert.InDelta(t, 0, v.At(k, 1), 1e-12)
		}
	}
}

func TestSpectralDerivativesMatchFiniteDifference(t *testing.T) {
	lines := map[string]spectralLine{
		"jacobi":   {alpha: -0.5, beta: -0.5},
		"legendre": {},
	}
	xs := []float64{-0.75, -0.3, 0.05, 0.45, 0.85}
	n := 4
	for name, s := range lines {
		t.Run(name, func(t *testing.T) {
			const h = 1e-6
			d1 := s.deriv1(n, xs)
			d2 := s.deriv2(n, xs)
			for p, x := range xs {
				fwd := s.values(n, []float64{x + h})
				bwd := s.values(n, []float64{x - h})
				mid := s.values(n, []float64{x})
				for k := 0; k < n; k++ {
					fd1 := (fwd.At(k, 0) - bwd.At(k, 0)) / (2 * h)
					fd2 := (fwd.At(k, 0) - 2*mid.At(k, 0) + bwd.At(k, 0)) / (h * h)
					assert.InDelta(t, fd1, d1.At(k, p), 1e-5, "deriv1 k=%d x=%g", k+1, x)
					assert.InDelta(t, fd2, d2.At(k, p), 1e-2, "deriv2 k=%d x=%g", k+1, x)
				}
			}
		})
	}
}

// Tensor layout: shape function i*n1d+j is x-factor i times y-factor j, and
// every derivative substitutes the derivative of the matching factor.
func TestTensorProductLayout(t *testing.T) {
	fam, err := New(Jacobi, 9)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s := spectralLine{alpha: -0.5, beta: -0.5}
	xi := []float64{0.3}
	eta := []float64{-0.6}

	tx, ty := s.values(3, xi), s.values(3, eta)
	dx, dy := s.deriv1(3, xi), s.deriv1(3, eta)
	ddx, ddy := s.deriv2(3, xi), s.deriv2(3, eta)

	v := fam.Value(xi, eta)
	gx := fam.GradX(xi, eta)
	gy := fam.GradY(xi, eta)
	gxx := fam.GradXX(xi, eta)
	gxy := fam.GradXY(xi, eta)
	gyy := fam.GradYY(xi, eta)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			row := i*3 + j
			msg := fmt.Sprintf("i=%d j=%d", i, j)
			assert.InDelta(t, tx.At(i, 0)*ty.At(j, 0), v.At(row, 0), 1e-13, msg)
			assert.InDelta(t, dx.At(i, 0)*ty.At(j, 0), gx.At(row, 0), 1e-13, msg)
			assert.InDelta(t, tx.At(i, 0)*dy.At(j, 0), gy.At(row, 0), 1e-13, msg)
			assert.InDelta(t, ddx.At(i, 0)*ty.At(j, 0), gxx.At(row, 0), 1e-13, msg)
			assert.InDelta(t, dx.At(i, 0)*dy.At(j, 0), gxy.At(row, 0), 1e-13, msg)
			assert.InDelta(t, tx.At(i, 0)*ddy.At(j, 0), gyy.At(row, 0), 1e-13, msg)
		}
	}
}

func TestCoordinateLengthMismatchPanics(t *testing.T) {
	fam, _ := New(Legendre, 4)
	assert.Panics(t, func() {
		fam.Value([]float64{0, 0.5}, []float64{0})
	})
}
