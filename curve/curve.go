// Package curve models a single-date sovereign yield curve: a sorted set of
// (maturity, yield) nodes, an interpolation policy, and the parametric
// deformations ("shocks") used to stress it. Rates are decimals
// (0.042 = 4.2%). Curves are immutable once built; every transform returns
// a new value.
package curve

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrDimensionMismatch reports tenor/maturity/yield slices of unequal length.
	ErrDimensionMismatch = errors.New("maturities and yields length mismatch")
	// ErrNonMonotonicMaturities reports maturities that are not strictly increasing.
	ErrNonMonotonicMaturities = errors.New("maturities must be strictly increasing")
	// ErrUnknownMethod reports an interpolation method outside {linear, cubic}.
	ErrUnknownMethod = errors.New("unknown interpolation method")
)

// Method selects the interpolation policy between curve nodes.
type Method string

const (
	Linear Method = "linear" // piecewise-linear between bracketing nodes
	Cubic  Method = "cubic"  // natural cubic spline through all nodes
)

// ParseMethod parses a method name, case-insensitive and whitespace-trimmed.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case Linear:
		return Linear, nil
	case Cubic:
		return Cubic, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Curve is an immutable single-date yield curve. When the method is Cubic
// the natural spline is fitted eagerly at construction, so YieldAt is an
// O(log n) segment lookup with no deferred state.
type Curve struct {
	tenors     []string
	maturities []float64
	yields     []float64
	method     Method
	spl        *spline // non-nil only for Cubic with >= 2 nodes
}

// New builds a curve from index-aligned tenors, maturities (years) and
// decimal yields. Maturities must be strictly increasing; yields may be
// negative. The inputs are copied, never aliased.
func New(tenors []string, maturities, yields []float64, method Method) (*Curve, error) {
	if len(maturities) != len(yields) || len(tenors) != len(maturities) {
		return nil, fmt.Errorf("%w: %d tenors, %d maturities, %d yields",
			ErrDimensionMismatch, len(tenors), len(maturities), len(yields))
	}
	if len(maturities) == 0 {
		return nil, fmt.Errorf("%w: curve needs at least one node", ErrDimensionMismatch)
	}
	for i := 1; i < len(maturities); i++ {
		if maturities[i] <= maturities[i-1] {
			return nil, fmt.Errorf("%w: %g followed by %g",
				ErrNonMonotonicMaturities, maturities[i-1], maturities[i])
		}
	}
	if method != Linear && method != Cubic {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	c := &Curve{
		tenors:     append([]string(nil), tenors...),
		maturities: append([]float64(nil), maturities...),
		yields:     append([]float64(nil), yields...),
		method:     method,
	}
	if method == Cubic && len(maturities) >= 2 {
		c.spl = newSpline(c.maturities, c.yields)
	}
	return c, nil
}

// Len returns the number of nodes.
func (c *Curve) Len() int { return len(c.maturities) }

// Method returns the interpolation policy.
func (c *Curve) Method() Method { return c.method }

// Tenors returns a copy of the node tenor labels.
func (c *Curve) Tenors() []string { return append([]string(nil), c.tenors...) }

// Maturities returns a copy of the node maturities in years.
func (c *Curve) Maturities() []float64 { return append([]float64(nil), c.maturities...) }

// Yields returns a copy of the node yields in decimal form.
func (c *Curve) Yields() []float64 { return append([]float64(nil), c.yields...) }

// YieldAt returns the interpolated decimal yield at maturity t in years.
// t is clamped to [shortest, longest] node first: the curve never
// extrapolates beyond its outermost nodes, it goes flat.
func (c *Curve) YieldAt(t float64) float64 {
	if t < c.maturities[0] {
		t = c.maturities[0]
	}
	if last := c.maturities[len(c.maturities)-1]; t > last {
		t = last
	}

	if c.spl != nil {
		return c.spl.eval(t)
	}

	// Piecewise-linear between the bracketing nodes.
	i := sort.SearchFloat64s(c.maturities, t)
	if i < len(c.maturities) && c.maturities[i] == t {
		return c.yields[i]
	}
	lo, hi := i-1, i
	w := (t - c.maturities[lo]) / (c.maturities[hi] - c.maturities[lo])
	return c.yields[lo] + w*(c.yields[hi]-c.yields[lo])
}

// withYields derives a new curve sharing tenors/maturities/method but with
// replaced node yields. The spline, when cubic, is refitted for the new values.
func (c *Curve) withYields(yields []float64) (*Curve, error) {
	return New(c.tenors, c.maturities, yields, c.method)
}

// Grid returns an iterator over n evenly spaced maturities in
// [tMin, tMax] inclusive, paired with the interpolated yield at each.
// Iterators are single-use; call Grid again for another pass.
func (c *Curve) Grid(tMin, tMax float64, n int) *GridIter {
	if n < 0 {
		n = 0
	}
	var step float64
	if n > 1 {
		step = (tMax - tMin) / float64(n-1)
	}
	return &GridIter{c: c, tMin: tMin, tMax: tMax, step: step, n: n, idx: -1}
}

// GridIter walks a plotting grid lazily: each point is interpolated on demand.
type GridIter struct {
	c          *Curve
	tMin, tMax float64
	step       float64
	n, idx     int
}

// Next advances the iterator, returning false once the grid is exhausted.
func (it *GridIter) Next() bool {
	if it.idx+1 >= it.n {
		return false
	}
	it.idx++
	return true
}

// T returns the maturity of the current grid point.
func (it *GridIter) T() float64 {
	if it.n == 1 {
		return it.tMin
	}
	if it.idx == it.n-1 {
		return it.tMax // exact endpoint, no step rounding
	}
	return it.tMin + float64(it.idx)*it.step
}

// Yield returns the interpolated yield at the current grid point.
func (it *GridIter) Yield() float64 {
	return it.c.YieldAt(it.T())
}

// Index returns the zero-based position of the current grid point.
func (it *GridIter) Index() int { return it.idx }
