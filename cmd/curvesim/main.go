package main

import (
	"os"

	"github.com/rustyeddy/curvesim/cmd/curvesim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
