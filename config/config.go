// Package config loads and validates scenario configuration: which curve
// date and interpolation method to use, the shock to apply, the bond to
// price, and where the yields store lives.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/curvesim/curve"
)

const dateLayout = "2006-01-02"

// Config is the complete scenario configuration.
type Config struct {
	Curve CurveConfig `json:"curve" yaml:"curve"`
	Shock ShockConfig `json:"shock" yaml:"shock"`
	Bond  BondConfig  `json:"bond" yaml:"bond"`
	Risk  RiskConfig  `json:"risk" yaml:"risk"`
	Store StoreConfig `json:"store" yaml:"store"`
}

// CurveConfig selects the observation date and interpolation method.
type CurveConfig struct {
	Date   string `json:"date" yaml:"date"` // YYYY-MM-DD; as-of lookup picks the nearest prior date
	Method string `json:"method" yaml:"method"`
}

// ShockConfig describes the deformation to apply before pricing. An empty
// type means no shock.
type ShockConfig struct {
	Type         string  `json:"type,omitempty" yaml:"type,omitempty"`
	BP           float64 `json:"bp,omitempty" yaml:"bp,omitempty"`
	TwistShortUp *bool   `json:"twist_short_up,omitempty" yaml:"twist_short_up,omitempty"`
}

// BondConfig describes the fixed-coupon bond to price.
type BondConfig struct {
	Face          float64 `json:"face" yaml:"face"`
	CouponRate    float64 `json:"coupon_rate" yaml:"coupon_rate"`
	MaturityYears float64 `json:"maturity_years" yaml:"maturity_years"`
	Freq          int     `json:"freq" yaml:"freq"`
}

// RiskConfig sets the finite-difference bump size.
type RiskConfig struct {
	BumpBP float64 `json:"bump_bp" yaml:"bump_bp"`
}

// StoreConfig points at the SQLite yields store.
type StoreConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// ShortUp returns the configured twist direction, defaulting to short-up.
func (s ShockConfig) ShortUp() bool {
	if s.TwistShortUp != nil {
		return *s.TwistShortUp
	}
	return true
}

// CurveDate parses the configured observation date.
func (c CurveConfig) CurveDate() (time.Time, error) {
	return time.Parse(dateLayout, c.Date)
}

// LoadFromFile loads configuration from a file, trying YAML first and
// falling back to JSON, then validates it.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration as YAML (for .yaml/.yml paths) or
// indented JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration eagerly so failures surface before any
// store or pricing work starts.
func (c *Config) Validate() error {
	if c.Curve.Date == "" {
		return fmt.Errorf("curve.date is required")
	}
	if _, err := c.Curve.CurveDate(); err != nil {
		return fmt.Errorf("curve.date must be YYYY-MM-DD: %w", err)
	}
	if _, err := curve.ParseMethod(c.Curve.Method); err != nil {
		return fmt.Errorf("curve.method must be linear or cubic: %w", err)
	}
	if c.Shock.Type != "" {
		if _, err := curve.ParseShockType(c.Shock.Type); err != nil {
			return fmt.Errorf("shock.type: %w", err)
		}
	}
	if c.Bond.Face <= 0 {
		return fmt.Errorf("bond.face must be positive")
	}
	if c.Bond.CouponRate < 0 {
		return fmt.Errorf("bond.coupon_rate must not be negative")
	}
	if c.Bond.MaturityYears <= 0 {
		return fmt.Errorf("bond.maturity_years must be positive")
	}
	if c.Bond.Freq < 1 {
		return fmt.Errorf("bond.freq must be a positive integer")
	}
	if math.Round(c.Bond.MaturityYears*float64(c.Bond.Freq)) < 1 {
		return fmt.Errorf("bond.maturity_years * bond.freq must round to at least one cash flow")
	}
	if c.Risk.BumpBP == 0 {
		return fmt.Errorf("risk.bump_bp must be non-zero")
	}
	if c.Store.DBPath == "" {
		return fmt.Errorf("store.db_path is required")
	}
	return nil
}

// Default returns a scenario with the classic demo setup: a 5 year 5%
// semiannual bond and a +25 bp parallel shock on today's linear curve.
func Default() *Config {
	return &Config{
		Curve: CurveConfig{
			Date:   time.Now().UTC().Format(dateLayout),
			Method: string(curve.Linear),
		},
		Shock: ShockConfig{
			Type: string(curve.Parallel),
			BP:   25,
		},
		Bond: BondConfig{
			Face:          100,
			CouponRate:    0.05,
			MaturityYears: 5,
			Freq:          2,
		},
		Risk: RiskConfig{
			BumpBP: 1.0,
		},
		Store: StoreConfig{
			DBPath: "./yields.db",
		},
	}
}
