package curve

import "sort"

// spline is a natural cubic spline: piecewise cubic through the nodes with
// zero second derivative at both end nodes. Coefficients are solved once at
// fit time via the tridiagonal (Thomas) algorithm, so evaluation is a
// segment lookup plus a cubic.
type spline struct {
	x []float64 // node maturities, strictly increasing
	y []float64 // node yields
	h []float64 // segment widths x[i+1]-x[i]
	m []float64 // second derivatives at the nodes, m[0]=m[n-1]=0
}

// newSpline fits the natural spline. Requires len(x) == len(y) >= 2 and x
// strictly increasing (the Curve constructor enforces both). With exactly
// two nodes the fit degenerates to the straight line through them.
func newSpline(x, y []float64) *spline {
	n := len(x)
	s := &spline{
		x: x,
		y: y,
		h: make([]float64, n-1),
		m: make([]float64, n),
	}
	for i := 0; i < n-1; i++ {
		s.h[i] = x[i+1] - x[i]
	}
	if n == 2 {
		return s // m stays zero: linear segment
	}

	// Tridiagonal system for the interior second derivatives:
	//   h[i-1]*m[i-1] + 2(h[i-1]+h[i])*m[i] + h[i]*m[i+1] = rhs[i]
	// with natural boundaries m[0] = m[n-1] = 0.
	diag := make([]float64, n)
	rhs := make([]float64, n)
	for i := 1; i < n-1; i++ {
		diag[i] = 2 * (s.h[i-1] + s.h[i])
		rhs[i] = 6 * ((y[i+1]-y[i])/s.h[i] - (y[i]-y[i-1])/s.h[i-1])
	}

	// Forward elimination over rows 2..n-2 (row 1 is already in place).
	for i := 2; i < n-1; i++ {
		f := s.h[i-1] / diag[i-1]
		diag[i] -= f * s.h[i-1]
		rhs[i] -= f * rhs[i-1]
	}
	// Back substitution.
	for i := n - 2; i >= 1; i-- {
		s.m[i] = (rhs[i] - s.h[i]*s.m[i+1]) / diag[i]
	}
	return s
}

// eval evaluates the spline at t, which the caller has already clamped into
// [x[0], x[n-1]].
func (s *spline) eval(t float64) float64 {
	// Locate the segment so that x[i] <= t <= x[i+1].
	i := sort.SearchFloat64s(s.x, t)
	if i > 0 {
		i--
	}
	if i > len(s.h)-1 {
		i = len(s.h) - 1
	}

	h := s.h[i]
	d := t - s.x[i]
	slope := (s.y[i+1]-s.y[i])/h - h/6*(2*s.m[i]+s.m[i+1])
	return s.y[i] + d*slope + d*d*s.m[i]/2 + d*d*d*(s.m[i+1]-s.m[i])/(6*h)
}
