package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/curvesim/bond"
	"github.com/rustyeddy/curvesim/curve"
)

func testCurve(t *testing.T) *curve.Curve {
	t.Helper()

	c, err := curve.New(
		[]string{"1Y", "5Y", "10Y"},
		[]float64{1, 5, 10},
		[]float64{0.040, 0.045, 0.047},
		curve.Linear,
	)
	require.NoError(t, err)
	return c
}

func TestComputeReference(t *testing.T) {
	t.Parallel()

	c := testCurve(t)
	b := bond.Bond{Face: 100, CouponRate: 0.05, MaturityYears: 5, Freq: 2}

	r, err := Compute(c, b, DefaultBump)
	require.NoError(t, err)

	// Hand-computed central differences over +/-1bp parallel shifts of the
	// reference curve.
	assert.InDelta(t, 102.5496051782284, r.Price, 1e-9)
	assert.InDelta(t, 102.50553812363398, r.PriceUp, 1e-9)
	assert.InDelta(t, 102.59369669039351, r.PriceDown, 1e-9)
	assert.InDelta(t, 0.044079283379765855, r.DV01, 1e-10)
	assert.InDelta(t, 4.298337697464293, r.ModDuration, 1e-8)
	assert.InDelta(t, 23.849502550887948, r.Convexity, 1e-4)
}

func TestComputePositiveForPlainBond(t *testing.T) {
	t.Parallel()

	c := testCurve(t)
	b := bond.Bond{Face: 100, CouponRate: 0.05, MaturityYears: 5, Freq: 2}

	for _, bp := range []float64{0.5, 1, 10} {
		r, err := Compute(c, b, bp)
		require.NoError(t, err)

		assert.Greater(t, r.DV01, 0.0)
		assert.Greater(t, r.ModDuration, 0.0)
		assert.Greater(t, r.Convexity, 0.0)
		assert.Less(t, r.PriceUp, r.Price)
		assert.Greater(t, r.PriceDown, r.Price)
	}
}

func TestComputeZeroBump(t *testing.T) {
	t.Parallel()

	c := testCurve(t)
	b := bond.Bond{Face: 100, CouponRate: 0.05, MaturityYears: 5, Freq: 2}

	_, err := Compute(c, b, 0)
	assert.ErrorIs(t, err, ErrZeroBump)
}

func TestComputeZeroPrice(t *testing.T) {
	t.Parallel()

	c := testCurve(t)
	b := bond.Bond{Face: 0, CouponRate: 0.05, MaturityYears: 5, Freq: 2}

	_, err := Compute(c, b, 1)
	assert.ErrorIs(t, err, ErrZeroPrice)
}

func TestComputePropagatesPricerErrors(t *testing.T) {
	t.Parallel()

	c := testCurve(t)
	b := bond.Bond{Face: 100, CouponRate: 0.05, MaturityYears: 0, Freq: 2}

	_, err := Compute(c, b, 1)
	assert.ErrorIs(t, err, bond.ErrInsufficientCashFlows)
}

func TestComputeScalesWithBumpConsistently(t *testing.T) {
	t.Parallel()

	c := testCurve(t)
	b := bond.Bond{Face: 100, CouponRate: 0.05, MaturityYears: 5, Freq: 2}

	small, err := Compute(c, b, 1)
	require.NoError(t, err)
	large, err := Compute(c, b, 10)
	require.NoError(t, err)

	// Duration and convexity are normalized by the bump, so they agree
	// across bump sizes up to higher-order terms; DV01 is a raw price
	// difference and scales roughly linearly.
	assert.InDelta(t, small.ModDuration, large.ModDuration, 1e-3)
	assert.InDelta(t, small.Convexity, large.Convexity, 1e-1)
	assert.InDelta(t, 10*small.DV01, large.DV01, 1e-3)
}
