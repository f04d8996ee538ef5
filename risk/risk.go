// Package risk computes interest-rate sensitivities for a bond priced
// against a yield curve, via central finite differences over parallel
// curve shifts.
package risk

import (
	"errors"
	"fmt"

	"github.com/rustyeddy/curvesim/bond"
	"github.com/rustyeddy/curvesim/curve"
)

// DefaultBump is the finite-difference bump size in basis points.
const DefaultBump = 1.0

var (
	// ErrZeroBump reports a zero bump size; the duration and convexity
	// formulas divide by it.
	ErrZeroBump = errors.New("bump size must be non-zero")
	// ErrZeroPrice reports a zero base price; duration and convexity are
	// normalized by it.
	ErrZeroPrice = errors.New("base price is zero, duration and convexity undefined")
)

// Report holds a bond's price under the base and bumped curves and the
// finite-difference risk numbers derived from them.
type Report struct {
	Price       float64 `json:"price" yaml:"price"`
	PriceUp     float64 `json:"price_up_+bp" yaml:"price_up_+bp"`
	PriceDown   float64 `json:"price_dn_-bp" yaml:"price_dn_-bp"`
	DV01        float64 `json:"DV01_per_1bp" yaml:"DV01_per_1bp"`
	ModDuration float64 `json:"mod_duration" yaml:"mod_duration"`
	Convexity   float64 `json:"convexity" yaml:"convexity"`
}

// Compute prices the bond on the curve and on two parallel-shifted copies
// (±bp) and returns the central finite-difference sensitivities:
//
//	DV01        = (pDn - pUp) / 2
//	modDuration = (pDn - pUp) / (2 * p0 * dy)
//	convexity   = (pDn + pUp - 2*p0) / (p0 * dy²)
//
// where dy = bp/10000. DV01 is centered so a rising-yield, falling-price
// bond comes out positive.
func Compute(c *curve.Curve, b bond.Bond, bp float64) (Report, error) {
	if bp == 0 {
		return Report{}, ErrZeroBump
	}
	dy := curve.BPToDecimal(bp)

	p0, err := bond.Price(c, b)
	if err != nil {
		return Report{}, err
	}
	if p0 == 0 {
		return Report{}, ErrZeroPrice
	}

	curveUp, err := curve.ShockParallel(c, +bp)
	if err != nil {
		return Report{}, fmt.Errorf("bump curve up: %w", err)
	}
	curveDn, err := curve.ShockParallel(c, -bp)
	if err != nil {
		return Report{}, fmt.Errorf("bump curve down: %w", err)
	}

	pUp, err := bond.Price(curveUp, b)
	if err != nil {
		return Report{}, err
	}
	pDn, err := bond.Price(curveDn, b)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Price:       p0,
		PriceUp:     pUp,
		PriceDown:   pDn,
		DV01:        (pDn - pUp) / 2.0,
		ModDuration: (pDn - pUp) / (2.0 * p0 * dy),
		Convexity:   (pDn + pUp - 2.0*p0) / (p0 * dy * dy),
	}, nil
}
