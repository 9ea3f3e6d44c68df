package basis

import "gonum.org/v1/gonum/mat"

// bilinearLine is the 1D linear hat pair on [-1,1]: (1-x)/2 and (1+x)/2.
// Its tensor product is the standard Q1 corner-interpolation basis.
type bilinearLine struct{}

func (bilinearLine) values(n int, xs []float64) *mat.Dense {
	out := mat.NewDense(n, len(xs), nil)
	for p, x := range xs {
		out.Set(0, p, 0.5*(1-x))
		out.Set(1, p, 0.5*(1+x))
	}
	return out
}

func (bilinearLine) deriv1(n int, xs []float64) *mat.Dense {
	out := mat.NewDense(n, len(xs), nil)
	for p := range xs {
		out.Set(0, p, -0.5)
		out.Set(1, p, 0.5)
	}
	return out
}

func (bilinearLine) deriv2(n int, xs []float64) *mat.Dense {
	return mat.NewDense(n, len(xs), nil)
}
