package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/curvesim/curve"
)

var shockCmd = &cobra.Command{
	Use:   "shock",
	Short: "Apply a deformation to the curve and print base vs shocked nodes",
	Long: `Apply one of the five shock types (parallel, steepen, flatten, twist,
butterfly) to the curve for a date and print the original and shocked
node yields side by side.

Example:
  curvesim shock --db yields.db --date 2024-06-28 --type butterfly --bp 50`,
	RunE: runShock,
}

var (
	shockDBPath  string
	shockDate    string
	shockMethod  string
	shockType    string
	shockBP      float64
	shockShortUp bool
)

func init() {
	rootCmd.AddCommand(shockCmd)

	shockCmd.Flags().StringVar(&shockDBPath, "db", "yields.db", "path to the SQLite yields store")
	shockCmd.Flags().StringVar(&shockDate, "date", "", "observation date (YYYY-MM-DD) (required)")
	shockCmd.Flags().StringVar(&shockMethod, "method", "linear", "interpolation method: linear or cubic")
	shockCmd.Flags().StringVar(&shockType, "type", "parallel", "shock type: parallel, steepen, flatten, twist, butterfly")
	shockCmd.Flags().Float64Var(&shockBP, "bp", 25, "shock magnitude in basis points")
	shockCmd.Flags().BoolVar(&shockShortUp, "twist-short-up", true, "twist direction: short end up, long end down")
	shockCmd.MarkFlagRequired("date")
}

func runShock(cmd *cobra.Command, args []string) error {
	base, date, err := loadCurve(shockDBPath, shockDate, shockMethod)
	if err != nil {
		return err
	}

	shocked, err := curve.ApplyShockName(base, shockType, shockBP, shockShortUp)
	if err != nil {
		return err
	}

	fmt.Printf("Curve as of %s, %s %+g bp:\n", date.Format("2006-01-02"), shockType, shockBP)

	tenors := base.Tenors()
	maturities := base.Maturities()
	baseYields := base.Yields()
	shockedYields := shocked.Yields()

	fmt.Printf("%-6s %10s %10s %10s %10s\n", "tenor", "years", "base %", "shocked %", "delta bp")
	for i := range tenors {
		fmt.Printf("%-6s %10.4f %10.4f %10.4f %10.2f\n",
			tenors[i], maturities[i],
			baseYields[i]*100, shockedYields[i]*100,
			(shockedYields[i]-baseYields[i])*10000)
	}
	return nil
}
