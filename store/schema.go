package store

// Schema creates the yields table (one row per date/tenor observation) and
// the runs table (one row per recorded scenario evaluation).
const Schema = `
CREATE TABLE IF NOT EXISTS yields (
	date  TEXT NOT NULL,
	tenor TEXT NOT NULL,
	yield REAL NOT NULL,
	PRIMARY KEY (date, tenor)
);

CREATE TABLE IF NOT EXISTS runs (
	run_id         TEXT PRIMARY KEY,
	created_at     TEXT NOT NULL,
	curve_date     TEXT NOT NULL,
	method         TEXT NOT NULL,
	shock_type     TEXT NOT NULL,
	shock_bp       REAL NOT NULL,
	face           REAL NOT NULL,
	coupon_rate    REAL NOT NULL,
	maturity_years REAL NOT NULL,
	freq           INTEGER NOT NULL,
	price          REAL NOT NULL,
	price_up       REAL NOT NULL,
	price_dn       REAL NOT NULL,
	dv01           REAL NOT NULL,
	mod_duration   REAL NOT NULL,
	convexity      REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_yields_date ON yields(date);
`
