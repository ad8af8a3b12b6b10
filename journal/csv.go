// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/rustyeddy/tradejournal/metrics"
)

// ExportMonthsCSV writes a month collection to a CSV file. The derived
// columns are serialized as stored; export never recomputes.
func ExportMonthsCSV(path string, months []metrics.MonthRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"id", "month", "year", "month_name",
		"starting_capital", "ending_capital", "deposits", "withdrawals",
		"gross_change", "net_profit_loss", "return_percentage",
		"status", "pnl_source", "notes",
	}); err != nil {
		return err
	}

	for _, m := range months {
		w.Write([]string{
			m.ID, m.Month, strconv.Itoa(m.Year), m.MonthName,
			fnum(m.StartingCapital), fnum(m.EndingCapital), fnum(m.Deposits), fnum(m.Withdrawals),
			fnum(m.GrossChange), fnum(m.NetProfitLoss), fnum(m.ReturnPercentage),
			string(m.Status), string(m.PnLSource), m.Notes,
		})
	}

	w.Flush()
	return w.Error()
}

// ExportTradesCSV writes a trade collection to a CSV file.
func ExportTradesCSV(path string, trades []metrics.Trade) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"id", "symbol", "side", "entry_date", "exit_date",
		"entry_price", "exit_price", "quantity",
		"pnl", "return_percentage", "is_win", "month_key", "tags", "notes",
	}); err != nil {
		return err
	}

	for _, t := range trades {
		w.Write([]string{
			t.ID, t.Symbol, string(t.Side), t.EntryDate, t.ExitDate,
			fnum(t.EntryPrice), fnum(t.ExitPrice), fnum(t.Quantity),
			fnum(t.PnL), fnum(t.ReturnPercentage), strconv.FormatBool(t.IsWin),
			t.MonthKey, strings.Join(t.Tags, "|"), t.Notes,
		})
	}

	w.Flush()
	return w.Error()
}

// fnum keeps full precision; display rounding is the reader's problem.
func fnum(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
