package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the curvesim CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("curvesim version %s\n", version)
		fmt.Println("A sovereign yield-curve deformation simulator and bond risk tool")
		fmt.Println("https://github.com/rustyeddy/curvesim")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
