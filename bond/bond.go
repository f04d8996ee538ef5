// Package bond describes a fixed-coupon bond and prices it by discounting
// its cash-flow schedule against a yield curve.
package bond

import (
	"errors"
	"fmt"
	"math"

	"github.com/rustyeddy/curvesim/curve"
)

// ErrInsufficientCashFlows reports a bond whose maturity and frequency round
// to fewer than one coupon payment.
var ErrInsufficientCashFlows = errors.New("maturity_years * freq must round to at least one cash flow")

// Bond is an immutable fixed-coupon bond description. It carries no curve
// state; curve and bond are composed at pricing time.
type Bond struct {
	Face          float64 // principal, e.g. 100
	CouponRate    float64 // decimal annual rate (0.05 = 5%), may be zero
	MaturityYears float64 // years to maturity
	Freq          int     // coupon payments per year (1 = annual, 2 = semiannual, 4 = quarterly)
}

// CashFlows returns the number of coupon payments the bond makes.
func (b Bond) CashFlows() int {
	return int(math.Round(b.MaturityYears * float64(b.Freq)))
}

// Price discounts the bond's cash flows against the curve:
//
//	price = sum_i CF(t_i) / (1 + y(t_i))^t_i
//
// with t_i = (i+1)/freq, each coupon = face*rate/freq, principal added to the
// final flow, and annual compounding at the curve's own yield for each flow's
// maturity. Discounting is curve-shaped, not flat-yield-to-maturity.
func Price(c *curve.Curve, b Bond) (float64, error) {
	n := b.CashFlows()
	if n < 1 {
		return 0, fmt.Errorf("%w: maturity %g years at freq %d",
			ErrInsufficientCashFlows, b.MaturityYears, b.Freq)
	}

	coupon := b.Face * b.CouponRate / float64(b.Freq)

	price := 0.0
	for i := 0; i < n; i++ {
		t := float64(i+1) / float64(b.Freq)
		cf := coupon
		if i == n-1 {
			cf += b.Face // principal redemption on the final flow
		}
		price += cf / math.Pow(1.0+c.YieldAt(t), t)
	}
	return price, nil
}
