package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/metrics"
	"github.com/rustyeddy/tradejournal/pkg/id"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Manage individual trade records",
	Long: `Log and inspect closed trades.

P/L, return and win/loss are derived from the fill prices; a trade is
attributed to the month it closed in.

Examples:
  journal trade add --symbol AAPL --side long --entry-date 2024-03-01 \
    --exit-date 2024-03-15 --entry 100 --exit 110 --qty 10 --tags swing,gap
  journal trade list --limit 20`,
}

var tradeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a closed trade",
	RunE:  runTradeAdd,
}

var tradeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trades, newest first",
	RunE:  runTradeList,
}

var (
	taSymbol    string
	taSide      string
	taEntryDate string
	taExitDate  string
	taEntry     string
	taExit      string
	taQty       string
	taTags      string
	taNotes     string

	tlLimit  int
	tlSymbol string
)

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeAddCmd)
	tradeCmd.AddCommand(tradeListCmd)

	tradeAddCmd.Flags().StringVarP(&taSymbol, "symbol", "s", "", "ticker symbol (required)")
	tradeAddCmd.Flags().StringVar(&taSide, "side", "long", "trade direction (long, short)")
	tradeAddCmd.Flags().StringVar(&taEntryDate, "entry-date", "", `entry date "YYYY-MM-DD"`)
	tradeAddCmd.Flags().StringVar(&taExitDate, "exit-date", "", `exit date "YYYY-MM-DD" (required)`)
	tradeAddCmd.Flags().StringVar(&taEntry, "entry", "0", "entry price")
	tradeAddCmd.Flags().StringVar(&taExit, "exit", "0", "exit price")
	tradeAddCmd.Flags().StringVar(&taQty, "qty", "0", "quantity (fractional allowed)")
	tradeAddCmd.Flags().StringVar(&taTags, "tags", "", "comma-separated tags")
	tradeAddCmd.Flags().StringVar(&taNotes, "notes", "", "free-text notes")
	tradeAddCmd.MarkFlagRequired("symbol")
	tradeAddCmd.MarkFlagRequired("exit-date")

	tradeListCmd.Flags().IntVarP(&tlLimit, "limit", "n", 20, "maximum trades to show")
	tradeListCmd.Flags().StringVarP(&tlSymbol, "symbol", "s", "", "filter by symbol")
}

func runTradeAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer s.Close()

	rec := metrics.NewTradeRecord(id.New(), metrics.TradeInput{
		Symbol:     taSymbol,
		Side:       metrics.Side(taSide),
		EntryDate:  taEntryDate,
		ExitDate:   taExitDate,
		EntryPrice: taEntry,
		ExitPrice:  taExit,
		Quantity:   taQty,
		Tags:       taTags,
		Notes:      taNotes,
	})

	if err := s.SaveTrade(rec); err != nil {
		return fmt.Errorf("save trade: %w", err)
	}

	outcome := "loss"
	if rec.IsWin {
		outcome = "win"
	} else if rec.PnL == 0 {
		outcome = "break-even"
	}
	fmt.Printf("✓ %s %s: P/L %.2f (%.2f%%) — %s\n",
		rec.Symbol, rec.ExitDate, rec.PnL, rec.ReturnPercentage, outcome)
	return nil
}

func runTradeList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer s.Close()

	trades, err := s.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	if tlSymbol != "" {
		want := metrics.NormalizeSymbol(tlSymbol)
		kept := trades[:0]
		for _, t := range trades {
			if t.Symbol == want {
				kept = append(kept, t)
			}
		}
		trades = kept
	}
	trades = metrics.RecentTrades(trades, tlLimit)

	if len(trades) == 0 {
		fmt.Println("no trades recorded")
		return nil
	}

	fmt.Printf("%-10s %-8s %-5s %10s %10s %10s %12s %9s  %s\n",
		"EXIT", "SYMBOL", "SIDE", "ENTRY", "EXIT", "QTY", "P/L", "RETURN", "TAGS")
	for _, t := range trades {
		fmt.Printf("%-10s %-8s %-5s %10.2f %10.2f %10.2f %12.2f %8.2f%%  %s\n",
			t.ExitDate, t.Symbol, t.Side, t.EntryPrice, t.ExitPrice, t.Quantity,
			t.PnL, t.ReturnPercentage, strings.Join(t.Tags, ","))
	}
	return nil
}
