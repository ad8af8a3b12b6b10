package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/metrics"
	"github.com/rustyeddy/tradejournal/pkg/id"
)

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Manage monthly ledger snapshots",
	Long: `Log and inspect monthly P/L snapshots.

Each month records starting/ending capital plus deposits and
withdrawals; net P/L and return are derived, never entered.

Examples:
  journal month add --month 2024-03 --start 10000 --end 11200
  journal month list --range 6M
  journal month sync --month 2024-03`,
}

var monthAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or update a monthly snapshot",
	RunE:  runMonthAdd,
}

var monthListCmd = &cobra.Command{
	Use:   "list",
	Short: "List monthly snapshots with derived P/L",
	RunE:  runMonthList,
}

var monthSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Derive a month's P/L from its trade log",
	Long: `Recompute a month's ending capital so its net P/L equals the summed
P/L of the trades that closed in that month, and mark the month as
trades-sourced.

Example:
  journal month sync --month 2024-03`,
	RunE: runMonthSync,
}

var (
	maMonth    string
	maStart    string
	maEnd      string
	maDeposits string
	maWithdraw string
	maStatus   string
	maNotes    string

	mlRange string

	msMonth string
)

func init() {
	rootCmd.AddCommand(monthCmd)
	monthCmd.AddCommand(monthAddCmd)
	monthCmd.AddCommand(monthListCmd)
	monthCmd.AddCommand(monthSyncCmd)

	monthAddCmd.Flags().StringVarP(&maMonth, "month", "m", "", `month key "YYYY-MM" (required)`)
	monthAddCmd.Flags().StringVar(&maStart, "start", "0", "starting capital")
	monthAddCmd.Flags().StringVar(&maEnd, "end", "0", "ending capital")
	monthAddCmd.Flags().StringVar(&maDeposits, "deposits", "0", "deposits during the month")
	monthAddCmd.Flags().StringVar(&maWithdraw, "withdrawals", "0", "withdrawals during the month")
	monthAddCmd.Flags().StringVar(&maStatus, "status", "active", "month status (active, closed)")
	monthAddCmd.Flags().StringVar(&maNotes, "notes", "", "free-text notes")
	monthAddCmd.MarkFlagRequired("month")

	monthListCmd.Flags().StringVarP(&mlRange, "range", "r", "ALL", "time range (ALL, 3M, 6M, 1Y, YTD)")

	monthSyncCmd.Flags().StringVarP(&msMonth, "month", "m", "", `month key "YYYY-MM" (required)`)
	monthSyncCmd.MarkFlagRequired("month")
}

func runMonthAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer s.Close()

	rec := metrics.NewMonthRecord(id.New(), metrics.MonthInput{
		Month:           maMonth,
		StartingCapital: maStart,
		EndingCapital:   maEnd,
		Deposits:        maDeposits,
		Withdrawals:     maWithdraw,
		Status:          metrics.MonthStatus(maStatus),
		Notes:           maNotes,
	})

	// Editing an existing month keeps its identity and creation time.
	if prev, err := s.GetMonthByKey(rec.Month); err == nil {
		rec.ID = prev.ID
		rec.CreatedAt = prev.CreatedAt
	}

	if err := s.SaveMonth(rec); err != nil {
		return fmt.Errorf("save month: %w", err)
	}

	fmt.Printf("✓ %s: net P/L %.2f (%.2f%%)\n", rec.Month, rec.NetProfitLoss, rec.ReturnPercentage)
	return nil
}

func runMonthList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer s.Close()

	months, err := s.ListMonths()
	if err != nil {
		return fmt.Errorf("list months: %w", err)
	}
	months = metrics.FilterMonthsByRange(months, metrics.Range(mlRange), time.Now())

	if len(months) == 0 {
		fmt.Println("no months recorded")
		return nil
	}

	fmt.Printf("%-8s %12s %12s %12s %9s %8s %-7s\n",
		"MONTH", "START", "END", "NET P/L", "RETURN", "SOURCE", "STATUS")
	for _, m := range months {
		fmt.Printf("%-8s %12.2f %12.2f %12.2f %8.2f%% %8s %-7s\n",
			m.Month, m.StartingCapital, m.EndingCapital, m.NetProfitLoss,
			m.ReturnPercentage, m.PnLSource, m.Status)
	}
	return nil
}

func runMonthSync(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer s.Close()

	m, err := s.SyncMonthFromTrades(msMonth)
	if err != nil {
		return fmt.Errorf("sync month: %w", err)
	}

	fmt.Printf("✓ %s synced from trades: net P/L %.2f, ending capital %.2f\n",
		m.Month, m.NetProfitLoss, m.EndingCapital)
	return nil
}
