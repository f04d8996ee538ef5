package curve

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrUnknownShockType reports a shock name outside the five recognized values.
	ErrUnknownShockType = errors.New("unknown shock type")
	// ErrDegenerateCurveSpan reports a shaped shock applied to a curve with
	// fewer than two distinct maturities.
	ErrDegenerateCurveSpan = errors.New("shock requires at least two distinct maturities")
)

// ShockType names a parametric curve deformation.
type ShockType string

const (
	Parallel  ShockType = "parallel"  // uniform shift at every node
	Steepen   ShockType = "steepen"   // 0 at the short end, +bump at the long end
	Flatten   ShockType = "flatten"   // 0 at the short end, -bump at the long end
	Twist     ShockType = "twist"     // +bump short ramping to -bump long (or reversed)
	Butterfly ShockType = "butterfly" // belly vs wings, zero mean across nodes
)

// ParseShockType parses a shock name, case-insensitive and whitespace-trimmed.
// An unrecognized name is an error, never a silent default.
func ParseShockType(s string) (ShockType, error) {
	switch ShockType(strings.ToLower(strings.TrimSpace(s))) {
	case Parallel:
		return Parallel, nil
	case Steepen:
		return Steepen, nil
	case Flatten:
		return Flatten, nil
	case Twist:
		return Twist, nil
	case Butterfly:
		return Butterfly, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShockType, s)
}

// BPToDecimal converts basis points to decimal yield terms (1 bp = 0.0001).
func BPToDecimal(bp float64) float64 {
	return bp / 10000.0
}

// ApplyShock returns a new curve with the named deformation applied at the
// given magnitude in basis points. twistShortUp selects the twist direction
// and is ignored by every other shock type.
func ApplyShock(c *Curve, st ShockType, bp float64, twistShortUp bool) (*Curve, error) {
	switch st {
	case Parallel:
		return ShockParallel(c, bp)
	case Steepen:
		return ShockSteepen(c, bp)
	case Flatten:
		return ShockFlatten(c, bp)
	case Twist:
		return ShockTwist(c, bp, twistShortUp)
	case Butterfly:
		return ShockButterfly(c, bp)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShockType, st)
}

// ApplyShockName is ApplyShock with string dispatch, for callers holding the
// shock name from a config file or flag.
func ApplyShockName(c *Curve, name string, bp float64, twistShortUp bool) (*Curve, error) {
	st, err := ParseShockType(name)
	if err != nil {
		return nil, err
	}
	return ApplyShock(c, st, bp, twistShortUp)
}

// ShockParallel shifts every node by bp uniformly.
func ShockParallel(c *Curve, bp float64) (*Curve, error) {
	bump := BPToDecimal(bp)
	ys := c.Yields()
	for i := range ys {
		ys[i] += bump
	}
	return c.withYields(ys)
}

// spanWeights returns each node's fractional position along the curve span:
// 0 at the shortest maturity, 1 at the longest.
func (c *Curve) spanWeights() ([]float64, error) {
	if c.Len() < 2 {
		return nil, fmt.Errorf("%w: got %d node(s)", ErrDegenerateCurveSpan, c.Len())
	}
	first := c.maturities[0]
	span := c.maturities[len(c.maturities)-1] - first
	w := make([]float64, len(c.maturities))
	for i, m := range c.maturities {
		w[i] = (m - first) / span
	}
	return w, nil
}

// ShockSteepen ramps the bump from 0 at the shortest maturity to +bp at the
// longest, steepening the curve.
func ShockSteepen(c *Curve, bp float64) (*Curve, error) {
	w, err := c.spanWeights()
	if err != nil {
		return nil, err
	}
	bump := BPToDecimal(bp)
	ys := c.Yields()
	for i := range ys {
		ys[i] += bump * w[i]
	}
	return c.withYields(ys)
}

// ShockFlatten is the opposite ramp: 0 at the short end, -bp at the long end.
func ShockFlatten(c *Curve, bp float64) (*Curve, error) {
	w, err := c.spanWeights()
	if err != nil {
		return nil, err
	}
	bump := BPToDecimal(bp)
	ys := c.Yields()
	for i := range ys {
		ys[i] -= bump * w[i]
	}
	return c.withYields(ys)
}

// ShockTwist pivots the curve: weights run from +1 at the shortest maturity
// to -1 at the longest, negated when shortUp is false.
func ShockTwist(c *Curve, bp float64, shortUp bool) (*Curve, error) {
	w01, err := c.spanWeights()
	if err != nil {
		return nil, err
	}
	bump := BPToDecimal(bp)
	ys := c.Yields()
	for i := range ys {
		w := 1.0 - 2.0*w01[i]
		if !shortUp {
			w = -w
		}
		ys[i] += bump * w
	}
	return c.withYields(ys)
}

// ShockButterfly moves the belly against the wings: a bell-shaped weight
// centered at the midpoint maturity, normalized to peak 1 over the nodes and
// then demeaned so the net curve-level shift is zero.
func ShockButterfly(c *Curve, bp float64) (*Curve, error) {
	if c.Len() < 2 {
		return nil, fmt.Errorf("%w: got %d node(s)", ErrDegenerateCurveSpan, c.Len())
	}
	first := c.maturities[0]
	last := c.maturities[len(c.maturities)-1]
	mid := 0.5 * (first + last)
	span := last - first

	w := make([]float64, len(c.maturities))
	maxW := 0.0
	for i, m := range c.maturities {
		d := m - mid
		w[i] = math.Exp(-(d * d) / ((0.15 * span) * (0.15 * span)))
		if w[i] > maxW {
			maxW = w[i]
		}
	}
	mean := 0.0
	for i := range w {
		w[i] /= maxW
		mean += w[i]
	}
	mean /= float64(len(w))

	bump := BPToDecimal(bp)
	ys := c.Yields()
	for i := range ys {
		ys[i] += bump * (w[i] - mean)
	}
	return c.withYields(ys)
}
