package curve

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

var (
	// ErrNonMonotonicDates reports table dates that are not strictly increasing.
	ErrNonMonotonicDates = errors.New("table dates must be strictly increasing")
	// ErrColumnLength reports a tenor column whose length differs from the date index.
	ErrColumnLength = errors.New("column length differs from date index")
	// ErrNoObservation reports an as-of lookup with no observation on or before
	// the requested date.
	ErrNoObservation = errors.New("no observation on or before date")
)

// Table is a date-indexed tabular time series of decimal yields, one column
// per tenor label. Missing observations are NaN. It is the hand-off format
// from the ingestion layer to curve construction.
type Table struct {
	dates   []time.Time
	columns map[string][]float64
}

// NewTable builds a table from an ascending date index and per-tenor columns
// aligned to it. Inputs are copied.
func NewTable(dates []time.Time, columns map[string][]float64) (*Table, error) {
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			return nil, fmt.Errorf("%w: %s followed by %s",
				ErrNonMonotonicDates,
				dates[i-1].Format("2006-01-02"), dates[i].Format("2006-01-02"))
		}
	}
	t := &Table{
		dates:   append([]time.Time(nil), dates...),
		columns: make(map[string][]float64, len(columns)),
	}
	for tenor, col := range columns {
		if len(col) != len(dates) {
			return nil, fmt.Errorf("%w: column %q has %d values for %d dates",
				ErrColumnLength, tenor, len(col), len(dates))
		}
		t.columns[tenor] = append([]float64(nil), col...)
	}
	return t, nil
}

// Len returns the number of dates in the index.
func (t *Table) Len() int { return len(t.dates) }

// Dates returns a copy of the date index.
func (t *Table) Dates() []time.Time { return append([]time.Time(nil), t.dates...) }

// Columns returns the tenor labels present in the table, by ascending
// maturity for recognized tenors, with unrecognized columns omitted.
func (t *Table) Columns() []string {
	var out []string
	for _, tenor := range tenorOrder {
		if _, ok := t.columns[tenor]; ok {
			out = append(out, tenor)
		}
	}
	return out
}

// Value returns the observation for (date index i, tenor); NaN if the tenor
// is absent or the observation is missing.
func (t *Table) Value(i int, tenor string) float64 {
	col, ok := t.columns[tenor]
	if !ok {
		return math.NaN()
	}
	return col[i]
}

// asOf returns the index of the nearest date at or before the target,
// never a future date.
func (t *Table) asOf(date time.Time) (int, bool) {
	i := sort.Search(len(t.dates), func(i int) bool {
		return t.dates[i].After(date)
	})
	if i == 0 {
		return 0, false
	}
	return i - 1, true
}

// FromTable builds a curve for the given date. Columns are filtered to the
// recognized tenor vocabulary and ordered by ascending maturity. The lookup
// is backward ("as-of"): if the exact date is absent the nearest prior date
// is used, and each tenor takes its latest prior non-missing observation
// (forward fill). Tenors with no observation at or before the date are
// dropped from the curve.
func FromTable(t *Table, date time.Time, method Method) (*Curve, error) {
	idx, ok := t.asOf(date)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoObservation, date.Format("2006-01-02"))
	}

	var (
		tenors     []string
		maturities []float64
		yields     []float64
	)
	for _, tenor := range tenorOrder {
		col, present := t.columns[tenor]
		if !present {
			continue
		}
		v := math.NaN()
		for i := idx; i >= 0; i-- {
			if !math.IsNaN(col[i]) {
				v = col[i]
				break
			}
		}
		if math.IsNaN(v) {
			continue
		}
		tenors = append(tenors, tenor)
		maturities = append(maturities, TenorYears[tenor])
		yields = append(yields, v)
	}
	if len(tenors) == 0 {
		return nil, fmt.Errorf("%w: %s has no usable tenor columns",
			ErrNoObservation, date.Format("2006-01-02"))
	}
	return New(tenors, maturities, yields, method)
}
