package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/journal"
)

var rootCmd = &cobra.Command{
	Use:   "journal",
	Short: "A personal trading journal with monthly ledgers and trade analytics",
	Long: `Journal is a personal trading journal kept in a local SQLite database.

It provides tools for:
  - Logging monthly P/L snapshots (capital, deposits, withdrawals)
  - Logging individual trades with tags and notes
  - Portfolio analytics: win rate, profit factor, streaks, best/worst
  - Deriving a month's P/L from its trade log
  - Exporting records to CSV and plain-text reports

Complete documentation is available at https://github.com/rustyeddy/tradejournal`,
}

var dbPath string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "./journal.db", "path to the SQLite journal")
}

func openStore() (*journal.Store, error) {
	return journal.Open(dbPath)
}
