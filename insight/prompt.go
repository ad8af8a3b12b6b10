// insight/prompt.go
package insight

import (
	"fmt"
	"math"
	"strings"

	"github.com/rustyeddy/tradejournal/metrics"
)

// BuildPrompt assembles the natural-language prompt for a generative
// insight over the journal. It only reads the stats and records; the
// model call itself belongs to the caller.
func BuildPrompt(stats metrics.OverallStats, months []metrics.MonthRecord) string {
	var b strings.Builder

	b.WriteString("You are a trading performance coach. Analyze this trading journal and ")
	b.WriteString("give three concise, actionable observations.\n\n")

	fmt.Fprintf(&b, "Months tracked: %d (%d profitable, %d losing)\n",
		stats.TotalMonths, stats.ProfitableMonths, stats.LosingMonths)
	fmt.Fprintf(&b, "Total net P/L: %.2f\n", stats.TotalProfitLoss)
	fmt.Fprintf(&b, "Win rate: %.1f%%\n", stats.WinRate)
	fmt.Fprintf(&b, "Average monthly return: %.2f%%\n", stats.AverageReturn)
	fmt.Fprintf(&b, "Profit factor: %s\n", formatPF(stats.ProfitFactor))
	if stats.BestMonth != nil {
		fmt.Fprintf(&b, "Best month: %s (%.2f)\n", stats.BestMonth.Month, stats.BestMonth.NetProfitLoss)
	}
	if stats.WorstMonth != nil {
		fmt.Fprintf(&b, "Worst month: %s (%.2f)\n", stats.WorstMonth.Month, stats.WorstMonth.NetProfitLoss)
	}

	if len(months) > 0 {
		b.WriteString("\nRecent months (newest first):\n")
		for _, m := range metrics.RecentMonths(months, 6) {
			fmt.Fprintf(&b, "- %s: net %.2f, return %.2f%%, %s\n",
				m.Month, m.NetProfitLoss, m.ReturnPercentage, m.Status)
		}
	}

	b.WriteString("\nFocus on risk management and consistency. Do not restate the numbers.")
	return b.String()
}

func formatPF(x float64) string {
	if math.IsInf(x, 1) {
		return "infinite (no losing months)"
	}
	return fmt.Sprintf("%.2f", x)
}
