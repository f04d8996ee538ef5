package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allShockTypes = []ShockType{Parallel, Steepen, Flatten, Twist, Butterfly}

func TestParseShockType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    ShockType
		wantErr bool
	}{
		{"parallel", Parallel, false},
		{"  Steepen ", Steepen, false},
		{"FLATTEN", Flatten, false},
		{"twist", Twist, false},
		{"Butterfly", Butterfly, false},
		{"diagonal", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseShockType(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownShockType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyShockUnknownType(t *testing.T) {
	t.Parallel()

	c := testCurve(t, Linear)

	_, err := ApplyShock(c, ShockType("diagonal"), 10, true)
	assert.ErrorIs(t, err, ErrUnknownShockType)

	_, err = ApplyShockName(c, "diagonal", 10, true)
	assert.ErrorIs(t, err, ErrUnknownShockType)
}

func TestShockZeroBPIsIdentity(t *testing.T) {
	t.Parallel()

	for _, st := range allShockTypes {
		st := st
		t.Run(string(st), func(t *testing.T) {
			t.Parallel()
			c := testCurve(t, Linear)
			shocked, err := ApplyShock(c, st, 0, true)
			require.NoError(t, err)

			want := c.Yields()
			got := shocked.Yields()
			for i := range want {
				assert.InDelta(t, want[i], got[i], 1e-15)
			}
		})
	}
}

func TestShockPreservesShape(t *testing.T) {
	t.Parallel()

	c := testCurve(t, Cubic)
	shocked, err := ApplyShock(c, Twist, 75, true)
	require.NoError(t, err)

	assert.Equal(t, c.Tenors(), shocked.Tenors())
	assert.Equal(t, c.Maturities(), shocked.Maturities())
	assert.Equal(t, c.Method(), shocked.Method())
	// The base curve is untouched.
	assert.InDelta(t, 0.040, c.YieldAt(1), 1e-12)
}

func TestShockParallelAdditivity(t *testing.T) {
	t.Parallel()

	c := testCurve(t, Linear)

	for _, bp := range []float64{1, 50, -25, 300} {
		shocked, err := ShockParallel(c, bp)
		require.NoError(t, err)

		base := c.Yields()
		got := shocked.Yields()
		for i := range base {
			assert.InDelta(t, base[i]+bp/10000, got[i], 1e-15)
		}
	}
}

func TestShockSteepenRamp(t *testing.T) {
	t.Parallel()

	c := testCurve(t, Linear)
	shocked, err := ShockSteepen(c, 100)
	require.NoError(t, err)

	base := c.Yields()
	got := shocked.Yields()

	// 0 at the shortest node, full +100bp at the longest; interior nodes
	// move by their fractional position along the 1y..10y span.
	assert.InDelta(t, base[0], got[0], 1e-15)
	assert.InDelta(t, base[1]+0.01*(1.0/9.0), got[1], 1e-15)
	assert.InDelta(t, base[2]+0.01*(4.0/9.0), got[2], 1e-15)
	assert.InDelta(t, base[3]+0.01, got[3], 1e-15)
}

func TestShockFlattenIsNegatedSteepen(t *testing.T) {
	t.Parallel()

	c := testCurve(t, Linear)

	steep, err := ShockSteepen(c, 40)
	require.NoError(t, err)
	flat, err := ShockFlatten(c, 40)
	require.NoError(t, err)

	base := c.Yields()
	up := steep.Yields()
	dn := flat.Yields()
	for i := range base {
		assert.InDelta(t, up[i]-base[i], base[i]-dn[i], 1e-15)
	}
}

func TestShockTwistDirections(t *testing.T) {
	t.Parallel()

	c := testCurve(t, Linear)
	base := c.Yields()

	shortUp, err := ShockTwist(c, 100, true)
	require.NoError(t, err)
	got := shortUp.Yields()
	assert.InDelta(t, base[0]+0.01, got[0], 1e-15) // short end up full bump
	assert.InDelta(t, base[3]-0.01, got[3], 1e-15) // long end down full bump

	shortDn, err := ShockTwist(c, 100, false)
	require.NoError(t, err)
	rev := shortDn.Yields()
	for i := range base {
		assert.InDelta(t, got[i]-base[i], base[i]-rev[i], 1e-15)
	}
}

func TestShockButterflyZeroMean(t *testing.T) {
	t.Parallel()

	for _, bp := range []float64{1, 50, -120} {
		c := testCurve(t, Linear)
		shocked, err := ShockButterfly(c, bp)
		require.NoError(t, err)

		base := c.Yields()
		got := shocked.Yields()
		sum := 0.0
		for i := range base {
			sum += got[i] - base[i]
		}
		assert.InDelta(t, 0, sum/float64(len(base)), 1e-15)
	}
}

func TestShockButterflyBellyVsWings(t *testing.T) {
	t.Parallel()

	c := testCurve(t, Linear)
	shocked, err := ShockButterfly(c, 100)
	require.NoError(t, err)

	base := c.Yields()
	got := shocked.Yields()

	// Demeaned bell weights for maturities {1,2,5,10}: wings negative,
	// belly (5y, nearest the 5.5y midpoint) positive with peak weight.
	assert.InDelta(t, 0.01*-0.2503368807612056, got[0]-base[0], 1e-12)
	assert.InDelta(t, 0.01*-0.24897221499527922, got[1]-base[1], 1e-12)
	assert.InDelta(t, 0.01*0.7496459765176904, got[2]-base[2], 1e-12)
	assert.InDelta(t, 0.01*-0.2503368807612056, got[3]-base[3], 1e-12)
}

func TestShapedShocksRejectSingleNode(t *testing.T) {
	t.Parallel()

	single, err := New([]string{"1Y"}, []float64{1}, []float64{0.04}, Linear)
	require.NoError(t, err)

	for _, st := range []ShockType{Steepen, Flatten, Twist, Butterfly} {
		_, err := ApplyShock(single, st, 10, true)
		assert.ErrorIs(t, err, ErrDegenerateCurveSpan, "shock %s", st)
	}

	// A parallel shift needs no span.
	shifted, err := ApplyShock(single, Parallel, 10, true)
	require.NoError(t, err)
	assert.InDelta(t, 0.041, shifted.YieldAt(1), 1e-15)
}

func TestShockRefitsCubicSpline(t *testing.T) {
	t.Parallel()

	c := testCurve(t, Cubic)
	shocked, err := ShockParallel(c, 100)
	require.NoError(t, err)

	// A parallel shift of the nodes shifts the whole spline: interior
	// points move by exactly the bump.
	for _, x := range []float64{1.5, 3.0, 7.5} {
		assert.InDelta(t, c.YieldAt(x)+0.01, shocked.YieldAt(x), 1e-12)
	}
}
