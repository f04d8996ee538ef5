// Package store persists the yields time series and recorded scenario runs
// in SQLite. It replaces the columnar file the ingestion side would
// otherwise hand around.
package store

import (
	"database/sql"
	"fmt"
	"math"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/curvesim/curve"
	"github.com/rustyeddy/curvesim/pkg/id"
)

const dateLayout = "2006-01-02"

// Store wraps a SQLite database holding yields and scenario runs.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveTable upserts every non-missing observation in the table. NaN cells
// are skipped; absence in the store marks a gap exactly as NaN does in the
// table.
func (s *Store) SaveTable(t *curve.Table) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO yields (date, tenor, yield) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare save: %w", err)
	}
	defer stmt.Close()

	dates := t.Dates()
	tenors := t.Columns()
	for i, d := range dates {
		for _, tenor := range tenors {
			v := t.Value(i, tenor)
			if math.IsNaN(v) {
				continue
			}
			if _, err := stmt.Exec(d.Format(dateLayout), tenor, v); err != nil {
				tx.Rollback()
				return fmt.Errorf("save %s %s: %w", d.Format(dateLayout), tenor, err)
			}
		}
	}
	return tx.Commit()
}

// LoadTable reads the full yields series back out, rebuilding the
// date-indexed table with NaN in the gaps.
func (s *Store) LoadTable() (*curve.Table, error) {
	rows, err := s.db.Query(`SELECT date, tenor, yield FROM yields ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("load yields: %w", err)
	}
	defer rows.Close()

	type cell struct {
		date  time.Time
		tenor string
		yield float64
	}
	var cells []cell
	dateSet := make(map[time.Time]struct{})
	tenorSet := make(map[string]struct{})

	for rows.Next() {
		var (
			ds    string
			tenor string
			v     float64
		)
		if err := rows.Scan(&ds, &tenor, &v); err != nil {
			return nil, fmt.Errorf("scan yield row: %w", err)
		}
		d, err := time.Parse(dateLayout, ds)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", ds, err)
		}
		cells = append(cells, cell{d, tenor, v})
		dateSet[d] = struct{}{}
		tenorSet[tenor] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load yields: %w", err)
	}

	dates := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	index := make(map[time.Time]int, len(dates))
	for i, d := range dates {
		index[d] = i
	}

	columns := make(map[string][]float64, len(tenorSet))
	for tenor := range tenorSet {
		col := make([]float64, len(dates))
		for i := range col {
			col[i] = math.NaN()
		}
		columns[tenor] = col
	}
	for _, c := range cells {
		columns[c.tenor][index[c.date]] = c.yield
	}

	return curve.NewTable(dates, columns)
}

// RunRecord is one recorded scenario evaluation: the curve date and method,
// the shock applied, the bond priced, and the resulting price and risk
// numbers.
type RunRecord struct {
	RunID     string
	CreatedAt time.Time
	CurveDate time.Time
	Method    string
	ShockType string
	ShockBP   float64

	Face          float64
	CouponRate    float64
	MaturityYears float64
	Freq          int

	Price       float64
	PriceUp     float64
	PriceDown   float64
	DV01        float64
	ModDuration float64
	Convexity   float64
}

// RecordRun inserts a run record, assigning a ULID run ID and creation time
// when the caller left them empty. The assigned ID is returned.
func (s *Store) RecordRun(r RunRecord) (string, error) {
	if r.RunID == "" {
		r.RunID = id.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`
		INSERT INTO runs
		(run_id, created_at, curve_date, method, shock_type, shock_bp,
		 face, coupon_rate, maturity_years, freq,
		 price, price_up, price_dn, dv01, mod_duration, convexity)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.CreatedAt.Format(time.RFC3339), r.CurveDate.Format(dateLayout),
		r.Method, r.ShockType, r.ShockBP,
		r.Face, r.CouponRate, r.MaturityYears, r.Freq,
		r.Price, r.PriceUp, r.PriceDown, r.DV01, r.ModDuration, r.Convexity,
	)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return r.RunID, nil
}

// ListRuns returns every recorded run, oldest first. ULIDs sort by creation
// time, so ordering by run_id is ordering by time.
func (s *Store) ListRuns() ([]RunRecord, error) {
	rows, err := s.db.Query(`
		SELECT run_id, created_at, curve_date, method, shock_type, shock_bp,
		       face, coupon_rate, maturity_years, freq,
		       price, price_up, price_dn, dv01, mod_duration, convexity
		FROM runs ORDER BY run_id`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var (
			r            RunRecord
			created, day string
		)
		if err := rows.Scan(&r.RunID, &created, &day, &r.Method, &r.ShockType, &r.ShockBP,
			&r.Face, &r.CouponRate, &r.MaturityYears, &r.Freq,
			&r.Price, &r.PriceUp, &r.PriceDown, &r.DV01, &r.ModDuration, &r.Convexity); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, fmt.Errorf("parse run created_at %q: %w", created, err)
		}
		if r.CurveDate, err = time.Parse(dateLayout, day); err != nil {
			return nil, fmt.Errorf("parse run curve_date %q: %w", day, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return out, nil
}
