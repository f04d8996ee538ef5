package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "curvesim",
	Short: "A sovereign yield-curve deformation simulator and bond risk tool",
	Long: `Curvesim models a sovereign yield curve for a single observation date,
applies parametric deformations to it, and prices a fixed-coupon bond
against the result.

It provides tools for:
  - Downloading daily Treasury yields from FRED into a local store
  - Building a curve for any date with linear or cubic interpolation
  - Applying parallel, steepen, flatten, twist and butterfly shocks
  - Pricing fixed-coupon bonds off the curve
  - DV01, modified duration and convexity via finite differences

Complete documentation is available at https://github.com/rustyeddy/curvesim`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
