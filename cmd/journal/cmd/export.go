package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export months and trades to CSV",
	Long: `Write the journal's month and trade records to CSV files. Derived
columns are exported as stored; nothing is recomputed on the way out.

Example:
  journal export --dir ./export`,
	RunE: runExport,
}

var exportDir string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "dir", "o", "./export", "output directory")
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer s.Close()

	months, err := s.ListMonths()
	if err != nil {
		return fmt.Errorf("list months: %w", err)
	}
	trades, err := s.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	if err := os.MkdirAll(exportDir, 0755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	monthsPath := filepath.Join(exportDir, "months.csv")
	tradesPath := filepath.Join(exportDir, "trades.csv")

	if err := journal.ExportMonthsCSV(monthsPath, months); err != nil {
		return fmt.Errorf("export months: %w", err)
	}
	if err := journal.ExportTradesCSV(tradesPath, trades); err != nil {
		return fmt.Errorf("export trades: %w", err)
	}

	fmt.Printf("✓ Exported %d months to %s\n", len(months), monthsPath)
	fmt.Printf("✓ Exported %d trades to %s\n", len(trades), tradesPath)
	return nil
}
