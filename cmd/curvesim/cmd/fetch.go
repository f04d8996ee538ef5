package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/curvesim/fred"
	"github.com/rustyeddy/curvesim/store"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download FRED Treasury yields into the local store",
	Long: `Fetch daily constant-maturity Treasury yields for every tenor from FRED
and save them to the local SQLite store.

Example:
  curvesim fetch --db yields.db --start 2000-01-01`,
	RunE: runFetch,
}

var (
	fetchDBPath string
	fetchStart  string
)

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchDBPath, "db", "yields.db", "path to the SQLite yields store")
	fetchCmd.Flags().StringVar(&fetchStart, "start", "2000-01-01", "earliest observation date to keep (YYYY-MM-DD)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	start, err := time.Parse("2006-01-02", fetchStart)
	if err != nil {
		return fmt.Errorf("parse --start: %w", err)
	}

	fmt.Printf("Fetching FRED yields from %s onward...\n", fetchStart)

	client := fred.NewClient()
	table, err := client.FetchTable(context.Background(), start)
	if err != nil {
		return fmt.Errorf("fetch yields: %w", err)
	}

	st, err := store.Open(fetchDBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SaveTable(table); err != nil {
		return fmt.Errorf("save yields: %w", err)
	}

	dates := table.Dates()
	fmt.Printf("Saved %d dates x %d tenors to %s\n", len(dates), len(table.Columns()), fetchDBPath)
	if len(dates) > 0 {
		fmt.Printf("Range: %s to %s\n",
			dates[0].Format("2006-01-02"), dates[len(dates)-1].Format("2006-01-02"))
	}
	return nil
}
