package curve

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testTable(t *testing.T) *Table {
	t.Helper()

	nan := math.NaN()
	tbl, err := NewTable(
		[]time.Time{
			day(2024, 6, 24),
			day(2024, 6, 25),
			day(2024, 6, 26),
		},
		map[string][]float64{
			"1Y":    {0.050, 0.051, 0.052},
			"5Y":    {0.045, nan, 0.046},
			"10Y":   {0.047, 0.047, nan},
			"30Y":   {nan, nan, nan},
			"EONIA": {0.03, 0.03, 0.03}, // outside the tenor vocabulary
		},
	)
	require.NoError(t, err)
	return tbl
}

func TestNewTableValidation(t *testing.T) {
	t.Parallel()

	_, err := NewTable(
		[]time.Time{day(2024, 6, 25), day(2024, 6, 24)},
		map[string][]float64{"1Y": {0.05, 0.05}},
	)
	assert.ErrorIs(t, err, ErrNonMonotonicDates)

	_, err = NewTable(
		[]time.Time{day(2024, 6, 24), day(2024, 6, 24)},
		map[string][]float64{"1Y": {0.05, 0.05}},
	)
	assert.ErrorIs(t, err, ErrNonMonotonicDates)

	_, err = NewTable(
		[]time.Time{day(2024, 6, 24), day(2024, 6, 25)},
		map[string][]float64{"1Y": {0.05}},
	)
	assert.ErrorIs(t, err, ErrColumnLength)
}

func TestTableColumnsFiltersAndOrders(t *testing.T) {
	t.Parallel()

	tbl := testTable(t)
	assert.Equal(t, []string{"1Y", "5Y", "10Y", "30Y"}, tbl.Columns())
}

func TestFromTableExactDate(t *testing.T) {
	t.Parallel()

	tbl := testTable(t)
	c, err := FromTable(tbl, day(2024, 6, 24), Linear)
	require.NoError(t, err)

	// 30Y has no observation at all and is dropped; EONIA is not a tenor.
	assert.Equal(t, []string{"1Y", "5Y", "10Y"}, c.Tenors())
	assert.Equal(t, []float64{1, 5, 10}, c.Maturities())
	assert.Equal(t, []float64{0.050, 0.045, 0.047}, c.Yields())
}

func TestFromTableForwardFills(t *testing.T) {
	t.Parallel()

	tbl := testTable(t)
	c, err := FromTable(tbl, day(2024, 6, 26), Linear)
	require.NoError(t, err)

	// 10Y is missing on the 26th: the 25th's value carries forward.
	assert.Equal(t, []float64{0.052, 0.046, 0.047}, c.Yields())
}

func TestFromTableAsOfPriorDate(t *testing.T) {
	t.Parallel()

	tbl := testTable(t)

	// A weekend date between observations resolves to the prior row,
	// never a future one.
	c, err := FromTable(tbl, day(2024, 6, 29), Linear)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.052, 0.046, 0.047}, c.Yields())
}

func TestFromTableBeforeFirstDate(t *testing.T) {
	t.Parallel()

	tbl := testTable(t)
	_, err := FromTable(tbl, day(2024, 6, 23), Linear)
	assert.ErrorIs(t, err, ErrNoObservation)
}
