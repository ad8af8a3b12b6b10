// metrics/month.go
package metrics

import (
	"math"
	"sort"
	"time"
)

// MonthMetrics is the derived P/L view of one month's capital flow.
type MonthMetrics struct {
	GrossChange      float64
	NetProfitLoss    float64
	ReturnPercentage float64
}

// CalcMonthMetrics derives a month's P/L from its capital flow.
// Deposits inflate ending capital without being trading profit, so they
// are subtracted; withdrawals deflate it, so they are added back.
// Zero starting capital yields a 0 return, not Inf/NaN.
func CalcMonthMetrics(starting, ending, deposits, withdrawals float64) MonthMetrics {
	gross := ending - starting
	net := gross - deposits + withdrawals

	ret := 0.0
	if starting > 0 {
		ret = net / starting * 100
	}

	return MonthMetrics{
		GrossChange:      gross,
		NetProfitLoss:    net,
		ReturnPercentage: ret,
	}
}

// OverallStats is the portfolio-level aggregate over a month collection.
type OverallStats struct {
	TotalMonths      int
	ProfitableMonths int
	LosingMonths     int

	TotalProfitLoss float64
	TotalProfit     float64
	TotalLoss       float64 // absolute magnitude, never negative

	WinRate       float64
	AverageWin    float64
	AverageLoss   float64
	AverageReturn float64
	ProfitFactor  float64

	BestMonth  *MonthRecord
	WorstMonth *MonthRecord
}

// CalcOverallStats aggregates a month collection. Empty input yields
// the zero stats object with nil extrema. A break-even month counts in
// TotalMonths but toward neither the win nor the loss bucket. Extrema
// ties go to the first record seen, so results depend on input order.
func CalcOverallStats(months []MonthRecord) OverallStats {
	stats := OverallStats{TotalMonths: len(months)}
	if len(months) == 0 {
		return stats
	}

	bestIdx, worstIdx := 0, 0
	var sumReturn float64

	for i, m := range months {
		pl := m.NetProfitLoss
		stats.TotalProfitLoss += pl
		sumReturn += m.ReturnPercentage

		switch {
		case pl > 0:
			stats.ProfitableMonths++
			stats.TotalProfit += pl
		case pl < 0:
			stats.LosingMonths++
			stats.TotalLoss += -pl
		}

		if pl > months[bestIdx].NetProfitLoss {
			bestIdx = i
		}
		if pl < months[worstIdx].NetProfitLoss {
			worstIdx = i
		}
	}

	stats.WinRate = float64(stats.ProfitableMonths) / float64(stats.TotalMonths) * 100
	if stats.ProfitableMonths > 0 {
		stats.AverageWin = stats.TotalProfit / float64(stats.ProfitableMonths)
	}
	if stats.LosingMonths > 0 {
		stats.AverageLoss = stats.TotalLoss / float64(stats.LosingMonths)
	}
	stats.AverageReturn = sumReturn / float64(stats.TotalMonths)
	stats.ProfitFactor = profitFactor(stats.TotalProfit, stats.TotalLoss)

	best := months[bestIdx]
	worst := months[worstIdx]
	stats.BestMonth = &best
	stats.WorstMonth = &worst
	return stats
}

// profitFactor implements the shared edge policy: Inf for a loss-free
// book with profits, 0 for a book with neither.
func profitFactor(totalProfit, totalLoss float64) float64 {
	if totalLoss > 0 {
		return totalProfit / totalLoss
	}
	if totalProfit > 0 {
		return math.Inf(1)
	}
	return 0
}

// RecentMonths returns up to limit months, newest first by month key.
// Zero-padded "YYYY-MM" keys sort lexicographically the same as
// chronologically. The input slice is left untouched.
func RecentMonths(months []MonthRecord, limit int) []MonthRecord {
	out := make([]MonthRecord, len(months))
	copy(out, months)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	if limit < 0 {
		limit = 0
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Range selects how far back a month view reaches.
type Range string

const (
	RangeAll Range = "ALL"
	Range3M  Range = "3M"
	Range6M  Range = "6M"
	Range1Y  Range = "1Y"
	RangeYTD Range = "YTD"
)

// FilterMonthsByRange keeps months whose key falls within [cutoff, now].
// The cutoff counts whole months including the current one, so a longer
// range always returns a superset of a shorter one for the same input
// and the same now. Unknown ranges behave like RangeAll.
func FilterMonthsByRange(months []MonthRecord, r Range, now time.Time) []MonthRecord {
	if r == RangeAll {
		out := make([]MonthRecord, len(months))
		copy(out, months)
		return out
	}

	var span int
	switch r {
	case Range3M:
		span = 3
	case Range6M:
		span = 6
	case Range1Y:
		span = 12
	case RangeYTD:
		span = int(now.Month())
	default:
		out := make([]MonthRecord, len(months))
		copy(out, months)
		return out
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(span - 1), 0)
	cutoff := first.Format("2006-01")
	ceiling := now.Format("2006-01")

	out := make([]MonthRecord, 0, len(months))
	for _, m := range months {
		if m.Month >= cutoff && m.Month <= ceiling {
			out = append(out, m)
		}
	}
	return out
}
