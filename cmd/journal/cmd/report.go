package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/journal"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a plain-text performance report",
	Long: `Render the journal into a plain-text (org-style) report with
portfolio stats, trade stats and a recent-month table.

Example:
  journal report --out ./report.org`,
	RunE: runReport,
}

var (
	reportOut    string
	reportRecent int
)

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "./report.org", "output file (use - for stdout)")
	reportCmd.Flags().IntVar(&reportRecent, "recent", 6, "months to show in the recent table")
}

func runReport(cmd *cobra.Command, args []string) error {
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

	rep := journal.NewReport(months, trades, reportRecent)

	if reportOut == "-" {
		out, err := rep.Render()
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}
		fmt.Print(out)
		return nil
	}

	if err := rep.WriteFile(reportOut); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Printf("✓ Report written to %s\n", reportOut)
	return nil
}
