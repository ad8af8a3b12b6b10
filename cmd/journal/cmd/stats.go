package cmd

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/metrics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show portfolio and trade statistics",
	Long: `Aggregate the journal into portfolio-level statistics: win rate,
profit factor, average win/loss, streaks and best/worst extrema.

Example:
  journal stats --range 1Y`,
	RunE: runStats,
}

var statsRange string

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVarP(&statsRange, "range", "r", "ALL", "month range (ALL, 3M, 6M, 1Y, YTD)")
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer s.Close()

	months, err := s.ListMonths()
	if err != nil {
		return fmt.Errorf("list months: %w", err)
	}
	months = metrics.FilterMonthsByRange(months, metrics.Range(statsRange), time.Now())

	trades, err := s.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	overall := metrics.CalcOverallStats(months)
	tstats := metrics.CalcTradeStats(trades)

	fmt.Println("===== Monthly Ledger =====")
	fmt.Printf("Months:          %d (%d profitable, %d losing)\n",
		overall.TotalMonths, overall.ProfitableMonths, overall.LosingMonths)
	fmt.Printf("Net P/L:         %.2f\n", overall.TotalProfitLoss)
	fmt.Printf("Win Rate:        %.2f%%\n", overall.WinRate)
	fmt.Printf("Avg Win/Loss:    %.2f / %.2f\n", overall.AverageWin, overall.AverageLoss)
	fmt.Printf("Avg Return:      %.2f%%\n", overall.AverageReturn)
	fmt.Printf("Profit Factor:   %s\n", formatPF(overall.ProfitFactor))
	if overall.BestMonth != nil {
		fmt.Printf("Best Month:      %s (%.2f)\n", overall.BestMonth.Month, overall.BestMonth.NetProfitLoss)
	}
	if overall.WorstMonth != nil {
		fmt.Printf("Worst Month:     %s (%.2f)\n", overall.WorstMonth.Month, overall.WorstMonth.NetProfitLoss)
	}

	fmt.Println("\n===== Trades =====")
	fmt.Printf("Trades:          %d (%dW / %dL / %dBE)\n",
		tstats.TotalTrades, tstats.WinningTrades, tstats.LosingTrades, tstats.BreakEvenTrades)
	fmt.Printf("Net P/L:         %.2f\n", tstats.TotalPnL)
	fmt.Printf("Win Rate:        %.2f%%\n", tstats.WinRate)
	fmt.Printf("Avg Win/Loss:    %.2f / %.2f\n", tstats.AvgWin, tstats.AvgLoss)
	fmt.Printf("Profit Factor:   %s\n", formatPF(tstats.ProfitFactor))
	fmt.Printf("Streaks:         current %s, longest win %d, longest lose %d\n",
		formatStreak(tstats.CurrentStreak), tstats.LongestWinStreak, tstats.LongestLoseStreak)
	if tstats.BestTrade != nil {
		fmt.Printf("Best Trade:      %s %s (%.2f)\n",
			tstats.BestTrade.Symbol, tstats.BestTrade.ExitDate, tstats.BestTrade.PnL)
	}
	if tstats.WorstTrade != nil {
		fmt.Printf("Worst Trade:     %s %s (%.2f)\n",
			tstats.WorstTrade.Symbol, tstats.WorstTrade.ExitDate, tstats.WorstTrade.PnL)
	}
	if symbols := metrics.UniqueSymbols(trades); len(symbols) > 0 {
		fmt.Printf("Symbols:         %s\n", strings.Join(symbols, ", "))
	}
	return nil
}

func formatPF(x float64) string {
	if math.IsInf(x, 1) {
		return "inf (no losses)"
	}
	return fmt.Sprintf("%.2f", x)
}

func formatStreak(n int) string {
	switch {
	case n > 0:
		return fmt.Sprintf("%d wins", n)
	case n < 0:
		return fmt.Sprintf("%d losses", -n)
	}
	return "none"
}
