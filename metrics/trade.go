// metrics/trade.go
package metrics

import (
	"sort"
)

// TradeMetrics is the derived P/L view of one trade.
type TradeMetrics struct {
	PnL              float64
	ReturnPercentage float64
	IsWin            bool
}

// CalcTradePnL derives a trade's P/L from its fill prices. Short trades
// invert the sign. A break-even trade is not a win: IsWin requires
// strictly positive P/L. Zero entry price yields a 0 return.
func CalcTradePnL(entry, exit, qty float64, side Side) TradeMetrics {
	dir := -1.0
	if side == Long {
		dir = 1.0
	}

	pnl := (exit - entry) * qty * dir

	ret := 0.0
	if entry > 0 {
		ret = (exit - entry) / entry * 100 * dir
	}

	return TradeMetrics{
		PnL:              pnl,
		ReturnPercentage: ret,
		IsWin:            pnl > 0,
	}
}

// Streaks summarizes consecutive win/loss runs in chronological order.
// Current is signed: +n for n straight wins ending at the most recent
// trade, -n for n straight losses, 0 when the latest trade broke even.
type Streaks struct {
	Current     int
	LongestWin  int
	LongestLose int
}

// CalcStreaks scans trades chronologically by exit date. A winning
// trade resets the losing counter and vice versa; a break-even trade
// resets both. The caller's slice order is preserved.
func CalcStreaks(trades []Trade) Streaks {
	if len(trades) == 0 {
		return Streaks{}
	}

	ordered := make([]Trade, len(trades))
	copy(ordered, trades)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ExitDate < ordered[j].ExitDate })

	var s Streaks
	var wins, losses int
	for _, t := range ordered {
		switch {
		case t.PnL > 0:
			wins++
			losses = 0
		case t.PnL < 0:
			losses++
			wins = 0
		default:
			wins, losses = 0, 0
		}
		if wins > s.LongestWin {
			s.LongestWin = wins
		}
		if losses > s.LongestLose {
			s.LongestLose = losses
		}
	}

	switch last := ordered[len(ordered)-1]; {
	case last.PnL > 0:
		s.Current = wins
	case last.PnL < 0:
		s.Current = -losses
	}
	return s
}

// TradeStats is the aggregate over a trade collection.
type TradeStats struct {
	TotalTrades     int
	WinningTrades   int
	LosingTrades    int
	BreakEvenTrades int

	TotalPnL    float64
	TotalProfit float64
	TotalLoss   float64

	WinRate      float64
	AvgWin       float64
	AvgLoss      float64
	ProfitFactor float64

	BestTrade  *Trade
	WorstTrade *Trade

	CurrentStreak     int
	LongestWinStreak  int
	LongestLoseStreak int
}

// CalcTradeStats aggregates a trade collection in a single pass, with
// the same profit-factor and first-seen extrema policy as the month
// stats. Streaks are computed over the same collection, never a subset.
func CalcTradeStats(trades []Trade) TradeStats {
	stats := TradeStats{TotalTrades: len(trades)}
	if len(trades) == 0 {
		return stats
	}

	bestIdx, worstIdx := 0, 0
	for i, t := range trades {
		stats.TotalPnL += t.PnL
		switch {
		case t.PnL > 0:
			stats.WinningTrades++
			stats.TotalProfit += t.PnL
		case t.PnL < 0:
			stats.LosingTrades++
			stats.TotalLoss += -t.PnL
		default:
			stats.BreakEvenTrades++
		}

		if t.PnL > trades[bestIdx].PnL {
			bestIdx = i
		}
		if t.PnL < trades[worstIdx].PnL {
			worstIdx = i
		}
	}

	stats.WinRate = float64(stats.WinningTrades) / float64(stats.TotalTrades) * 100
	if stats.WinningTrades > 0 {
		stats.AvgWin = stats.TotalProfit / float64(stats.WinningTrades)
	}
	if stats.LosingTrades > 0 {
		stats.AvgLoss = stats.TotalLoss / float64(stats.LosingTrades)
	}
	stats.ProfitFactor = profitFactor(stats.TotalProfit, stats.TotalLoss)

	best := trades[bestIdx]
	worst := trades[worstIdx]
	stats.BestTrade = &best
	stats.WorstTrade = &worst

	streaks := CalcStreaks(trades)
	stats.CurrentStreak = streaks.Current
	stats.LongestWinStreak = streaks.LongestWin
	stats.LongestLoseStreak = streaks.LongestLose
	return stats
}

// MonthlyPnLFromTrades sums the P/L of trades that closed in the given
// month. This is the derivation path behind a month whose P/L source is
// "trades". No matches sums to 0.
func MonthlyPnLFromTrades(trades []Trade, monthKey string) float64 {
	var sum float64
	for _, t := range trades {
		if t.MonthKey == monthKey {
			sum += t.PnL
		}
	}
	return sum
}

// GroupTradesByMonth buckets trades by month key, preserving each
// trade's relative order within its bucket.
func GroupTradesByMonth(trades []Trade) map[string][]Trade {
	groups := make(map[string][]Trade)
	for _, t := range trades {
		groups[t.MonthKey] = append(groups[t.MonthKey], t)
	}
	return groups
}

// UniqueSymbols returns the deduplicated symbols, sorted ascending.
func UniqueSymbols(trades []Trade) []string {
	seen := make(map[string]bool, len(trades))
	symbols := make([]string, 0, len(trades))
	for _, t := range trades {
		if !seen[t.Symbol] {
			seen[t.Symbol] = true
			symbols = append(symbols, t.Symbol)
		}
	}
	sort.Strings(symbols)
	return symbols
}

// RecentTrades returns up to limit trades, newest exit date first.
// Trades closed the same day keep their input order. The input slice is
// left untouched.
func RecentTrades(trades []Trade, limit int) []Trade {
	out := make([]Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ExitDate > out[j].ExitDate })
	if limit < 0 {
		limit = 0
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
