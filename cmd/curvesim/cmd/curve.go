package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/curvesim/curve"
	"github.com/rustyeddy/curvesim/store"
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print the yield curve for a date",
	Long: `Build the yield curve for an observation date from the local store and
print its nodes, optionally followed by an interpolated grid.

The lookup is as-of: if the exact date has no observation, the nearest
prior date is used.

Example:
  curvesim curve --db yields.db --date 2024-06-28 --method cubic --grid 10`,
	RunE: runCurve,
}

var (
	curveDBPath string
	curveDate   string
	curveMethod string
	curveGridN  int
)

func init() {
	rootCmd.AddCommand(curveCmd)

	curveCmd.Flags().StringVar(&curveDBPath, "db", "yields.db", "path to the SQLite yields store")
	curveCmd.Flags().StringVar(&curveDate, "date", "", "observation date (YYYY-MM-DD) (required)")
	curveCmd.Flags().StringVar(&curveMethod, "method", "linear", "interpolation method: linear or cubic")
	curveCmd.Flags().IntVar(&curveGridN, "grid", 0, "also print an n-point interpolated grid")
	curveCmd.MarkFlagRequired("date")
}

// loadCurve builds a curve from the store for the given flags; shared by the
// curve, shock and run commands.
func loadCurve(dbPath, dateStr, methodStr string) (*curve.Curve, time.Time, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	method, err := curve.ParseMethod(methodStr)
	if err != nil {
		return nil, time.Time{}, err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer st.Close()

	table, err := st.LoadTable()
	if err != nil {
		return nil, time.Time{}, err
	}

	c, err := curve.FromTable(table, date, method)
	if err != nil {
		return nil, time.Time{}, err
	}
	return c, date, nil
}

func printNodes(c *curve.Curve) {
	tenors := c.Tenors()
	maturities := c.Maturities()
	yields := c.Yields()
	fmt.Printf("%-6s %10s %10s\n", "tenor", "years", "yield %")
	for i := range tenors {
		fmt.Printf("%-6s %10.4f %10.4f\n", tenors[i], maturities[i], yields[i]*100)
	}
}

func runCurve(cmd *cobra.Command, args []string) error {
	c, date, err := loadCurve(curveDBPath, curveDate, curveMethod)
	if err != nil {
		return err
	}

	fmt.Printf("Curve as of %s (%s):\n", date.Format("2006-01-02"), c.Method())
	printNodes(c)

	if curveGridN > 0 {
		maturities := c.Maturities()
		fmt.Printf("\nInterpolated grid (%d points):\n", curveGridN)
		it := c.Grid(maturities[0], maturities[len(maturities)-1], curveGridN)
		for it.Next() {
			fmt.Printf("%10.4f %10.4f\n", it.T(), it.Yield()*100)
		}
	}
	return nil
}
