// journal/report.go
package journal

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sort"
	"text/template"
	"time"

	"github.com/rustyeddy/tradejournal/metrics"
)

// Report bundles everything the plain-text report template needs. It
// is assembled from already-stored records; the stats are recomputed
// from the full collections at render time.
type Report struct {
	Generated time.Time

	Months   []metrics.MonthRecord
	Recent   []metrics.MonthRecord
	Overall  metrics.OverallStats
	Trades   metrics.TradeStats
	Activity []MonthActivity
}

// MonthActivity is one row of the trades-by-month table.
type MonthActivity struct {
	Month  string
	Trades int
	PnL    float64
}

// NewReport builds a report over the given collections, with the most
// recent months (up to recentLimit) broken out as a table.
func NewReport(months []metrics.MonthRecord, trades []metrics.Trade, recentLimit int) Report {
	return Report{
		Generated: time.Now(),
		Months:    months,
		Recent:    metrics.RecentMonths(months, recentLimit),
		Overall:   metrics.CalcOverallStats(months),
		Trades:    metrics.CalcTradeStats(trades),
		Activity:  monthActivity(trades),
	}
}

func monthActivity(trades []metrics.Trade) []MonthActivity {
	groups := metrics.GroupTradesByMonth(trades)

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]MonthActivity, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, MonthActivity{
			Month:  k,
			Trades: len(groups[k]),
			PnL:    metrics.MonthlyPnLFromTrades(groups[k], k),
		})
	}
	return rows
}

// Render executes the report template.
func (r Report) Render() (string, error) {
	t, err := template.New("report").Funcs(reportFuncs).Parse(ReportTemplate)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if err := t.Execute(buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteFile renders the report and writes it to path.
func (r Report) WriteFile(path string) error {
	out, err := r.Render()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(out), 0644)
}

var reportFuncs = template.FuncMap{
	"money": func(x float64) string { return fmt.Sprintf("%.2f", x) },
	"pct":   func(x float64) string { return fmt.Sprintf("%.2f%%", x) },
	"pf": func(x float64) string {
		if math.IsInf(x, 1) {
			return "inf"
		}
		return fmt.Sprintf("%.2f", x)
	},
	"streak": func(n int) string {
		switch {
		case n > 0:
			return fmt.Sprintf("%dW", n)
		case n < 0:
			return fmt.Sprintf("%dL", -n)
		}
		return "-"
	},
}

const ReportTemplate = `* TRADING JOURNAL REPORT
:PROPERTIES:
:GENERATED:   [{{.Generated.Format "2006-01-02 Mon 15:04"}}]
:MONTHS:      {{.Overall.TotalMonths}}
:TRADES:      {{.Trades.TotalTrades}}
:END:

** Portfolio (monthly ledger)
- Net P/L:        *{{money .Overall.TotalProfitLoss}}*
- Win Rate:       *{{pct .Overall.WinRate}}* ({{.Overall.ProfitableMonths}}/{{.Overall.TotalMonths}} months)
- Avg Win:        {{money .Overall.AverageWin}}
- Avg Loss:       {{money .Overall.AverageLoss}}
- Avg Return:     {{pct .Overall.AverageReturn}}
- Profit Factor:  {{pf .Overall.ProfitFactor}}
{{- if .Overall.BestMonth}}
- Best Month:     {{.Overall.BestMonth.Month}} ({{money .Overall.BestMonth.NetProfitLoss}})
{{- end}}
{{- if .Overall.WorstMonth}}
- Worst Month:    {{.Overall.WorstMonth.Month}} ({{money .Overall.WorstMonth.NetProfitLoss}})
{{- end}}

** Trades
- Net P/L:        *{{money .Trades.TotalPnL}}*
- Win Rate:       *{{pct .Trades.WinRate}}* ({{.Trades.WinningTrades}}W / {{.Trades.LosingTrades}}L / {{.Trades.BreakEvenTrades}}BE)
- Avg Win:        {{money .Trades.AvgWin}}
- Avg Loss:       {{money .Trades.AvgLoss}}
- Profit Factor:  {{pf .Trades.ProfitFactor}}
- Current Streak: {{streak .Trades.CurrentStreak}}
- Longest Win:    {{.Trades.LongestWinStreak}}
- Longest Lose:   {{.Trades.LongestLoseStreak}}
{{- if .Trades.BestTrade}}
- Best Trade:     {{.Trades.BestTrade.Symbol}} {{.Trades.BestTrade.ExitDate}} ({{money .Trades.BestTrade.PnL}})
{{- end}}
{{- if .Trades.WorstTrade}}
- Worst Trade:    {{.Trades.WorstTrade.Symbol}} {{.Trades.WorstTrade.ExitDate}} ({{money .Trades.WorstTrade.PnL}})
{{- end}}

** Recent Months
| Month   | Net P/L | Return | Status |
|---------+---------+--------+--------|
{{- range .Recent}}
| {{.Month}} | {{money .NetProfitLoss}} | {{pct .ReturnPercentage}} | {{.Status}} |
{{- end}}

** Trades by Month
| Month   | Trades | Net P/L |
|---------+--------+---------|
{{- range .Activity}}
| {{.Month}} | {{.Trades}} | {{money .PnL}} |
{{- end}}
`
