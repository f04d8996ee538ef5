package curve

// TenorYears maps the recognized tenor vocabulary to maturities in years.
// Fixed at startup, never mutated.
var TenorYears = map[string]float64{
	"1M":  1.0 / 12.0,
	"3M":  3.0 / 12.0,
	"6M":  6.0 / 12.0,
	"1Y":  1.0,
	"2Y":  2.0,
	"3Y":  3.0,
	"5Y":  5.0,
	"7Y":  7.0,
	"10Y": 10.0,
	"20Y": 20.0,
	"30Y": 30.0,
}

// tenorOrder lists the vocabulary by ascending maturity so table-driven
// curve construction comes out sorted without an explicit sort pass.
var tenorOrder = []string{
	"1M", "3M", "6M", "1Y", "2Y", "3Y", "5Y", "7Y", "10Y", "20Y", "30Y",
}

// Tenors returns the recognized tenor labels by ascending maturity.
func Tenors() []string {
	out := make([]string, len(tenorOrder))
	copy(out, tenorOrder)
	return out
}
