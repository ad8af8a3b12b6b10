package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcMonthMetrics(t *testing.T) {
	t.Parallel()

	m := CalcMonthMetrics(10000, 12500, 1000, 500)

	assert.InDelta(t, 2500, m.GrossChange, 1e-9)
	assert.InDelta(t, 2000, m.NetProfitLoss, 1e-9)
	assert.InDelta(t, 20, m.ReturnPercentage, 1e-9)
}

func TestCalcMonthMetricsIdentity(t *testing.T) {
	t.Parallel()

	// netProfitLoss = end - start - deposits + withdrawals, exactly.
	cases := []struct{ start, end, dep, wd float64 }{
		{10000, 11000, 0, 0},
		{10000, 11000, 2000, 0},
		{10000, 9000, 0, 1500},
		{0.25, 0.75, 0.25, 0.5},
	}
	for _, c := range cases {
		m := CalcMonthMetrics(c.start, c.end, c.dep, c.wd)
		assert.Equal(t, c.end-c.start-c.dep+c.wd, m.NetProfitLoss)
		assert.Equal(t, c.end-c.start, m.GrossChange)
	}
}

func TestCalcMonthMetricsZeroStartingCapital(t *testing.T) {
	t.Parallel()

	m := CalcMonthMetrics(0, 5000, 0, 0)
	assert.Equal(t, 0.0, m.ReturnPercentage)
	assert.InDelta(t, 5000, m.NetProfitLoss, 1e-9)
}

func month(id string, key string, netPL float64) MonthRecord {
	// Back into a starting/ending pair that yields the wanted net P/L.
	m := CalcMonthMetrics(10000, 10000+netPL, 0, 0)
	return MonthRecord{
		ID:               id,
		Month:            key,
		StartingCapital:  10000,
		EndingCapital:    10000 + netPL,
		GrossChange:      m.GrossChange,
		NetProfitLoss:    m.NetProfitLoss,
		ReturnPercentage: m.ReturnPercentage,
	}
}

func TestCalcOverallStatsEmpty(t *testing.T) {
	t.Parallel()

	stats := CalcOverallStats(nil)

	assert.Equal(t, 0, stats.TotalMonths)
	assert.Equal(t, 0.0, stats.WinRate)
	assert.Equal(t, 0.0, stats.TotalProfitLoss)
	assert.Equal(t, 0.0, stats.ProfitFactor)
	assert.Nil(t, stats.BestMonth)
	assert.Nil(t, stats.WorstMonth)
}

func TestCalcOverallStats(t *testing.T) {
	t.Parallel()

	months := []MonthRecord{
		month("1", "2024-01", 500),
		month("2", "2024-02", 2000),
		month("3", "2024-03", -300),
	}

	stats := CalcOverallStats(months)

	assert.Equal(t, 3, stats.TotalMonths)
	assert.Equal(t, 2, stats.ProfitableMonths)
	assert.Equal(t, 1, stats.LosingMonths)
	assert.InDelta(t, 2200, stats.TotalProfitLoss, 1e-9)
	assert.InDelta(t, 2500, stats.TotalProfit, 1e-9)
	assert.InDelta(t, 300, stats.TotalLoss, 1e-9)
	assert.InDelta(t, 200.0/3.0, stats.WinRate, 1e-9)
	assert.InDelta(t, 1250, stats.AverageWin, 1e-9)
	assert.InDelta(t, 300, stats.AverageLoss, 1e-9)
	assert.InDelta(t, 2500.0/300.0, stats.ProfitFactor, 1e-9)

	require.NotNil(t, stats.BestMonth)
	require.NotNil(t, stats.WorstMonth)
	assert.Equal(t, "2", stats.BestMonth.ID)
	assert.Equal(t, "3", stats.WorstMonth.ID)
}

func TestCalcOverallStatsBreakEvenMonth(t *testing.T) {
	t.Parallel()

	months := []MonthRecord{
		month("1", "2024-01", 100),
		month("2", "2024-02", 0),
	}

	stats := CalcOverallStats(months)

	// Break-even counts toward totals but neither rate bucket.
	assert.Equal(t, 2, stats.TotalMonths)
	assert.Equal(t, 1, stats.ProfitableMonths)
	assert.Equal(t, 0, stats.LosingMonths)
	assert.InDelta(t, 50, stats.WinRate, 1e-9)
}

func TestCalcOverallStatsAllProfitable(t *testing.T) {
	t.Parallel()

	months := []MonthRecord{
		month("1", "2024-01", 100),
		month("2", "2024-02", 200),
	}

	stats := CalcOverallStats(months)
	assert.True(t, math.IsInf(stats.ProfitFactor, 1))
}

func TestCalcOverallStatsAllBreakEven(t *testing.T) {
	t.Parallel()

	stats := CalcOverallStats([]MonthRecord{month("1", "2024-01", 0)})
	assert.Equal(t, 0.0, stats.ProfitFactor)
}

func TestCalcOverallStatsAverageReturn(t *testing.T) {
	t.Parallel()

	// Arithmetic mean of returns, not P/L-weighted.
	months := []MonthRecord{
		month("1", "2024-01", 1000), // +10%
		month("2", "2024-02", -500), // -5%
	}

	stats := CalcOverallStats(months)
	assert.InDelta(t, 2.5, stats.AverageReturn, 1e-9)
}

func TestCalcOverallStatsTieBreakFirstSeen(t *testing.T) {
	t.Parallel()

	months := []MonthRecord{
		month("1", "2024-01", 750),
		month("2", "2024-02", 750),
	}

	stats := CalcOverallStats(months)
	require.NotNil(t, stats.BestMonth)
	assert.Equal(t, "1", stats.BestMonth.ID)
}

func TestRecentMonths(t *testing.T) {
	t.Parallel()

	months := []MonthRecord{
		month("1", "2024-01", 0),
		month("3", "2024-03", 0),
		month("2", "2024-02", 0),
	}

	recent := RecentMonths(months, 2)

	require.Len(t, recent, 2)
	assert.Equal(t, "2024-03", recent[0].Month)
	assert.Equal(t, "2024-02", recent[1].Month)

	// Input order must survive.
	assert.Equal(t, "2024-01", months[0].Month)
	assert.Equal(t, "2024-03", months[1].Month)
	assert.Equal(t, "2024-02", months[2].Month)
}

func TestRecentMonthsLimitLargerThanInput(t *testing.T) {
	t.Parallel()

	recent := RecentMonths([]MonthRecord{month("1", "2024-01", 0)}, 10)
	assert.Len(t, recent, 1)
}

func TestFilterMonthsByRange(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	months := []MonthRecord{
		month("1", "2023-05", 0),
		month("2", "2023-12", 0),
		month("3", "2024-01", 0),
		month("4", "2024-04", 0),
		month("5", "2024-06", 0),
	}

	assert.Len(t, FilterMonthsByRange(months, RangeAll, now), 5)
	assert.Len(t, FilterMonthsByRange(months, Range3M, now), 2)  // 2024-04..2024-06
	assert.Len(t, FilterMonthsByRange(months, Range6M, now), 3)  // 2024-01..2024-06
	assert.Len(t, FilterMonthsByRange(months, Range1Y, now), 4)  // 2023-07..2024-06
	assert.Len(t, FilterMonthsByRange(months, RangeYTD, now), 3) // 2024-01..2024-06
}

func TestFilterMonthsByRangeMonotonic(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	months := []MonthRecord{
		month("1", "2023-02", 0),
		month("2", "2023-09", 0),
		month("3", "2024-02", 0),
		month("4", "2024-05", 0),
	}

	in3 := FilterMonthsByRange(months, Range3M, now)
	in6 := FilterMonthsByRange(months, Range6M, now)
	in12 := FilterMonthsByRange(months, Range1Y, now)
	all := FilterMonthsByRange(months, RangeAll, now)

	assert.LessOrEqual(t, len(in3), len(in6))
	assert.LessOrEqual(t, len(in6), len(in12))
	assert.LessOrEqual(t, len(in12), len(all))

	keys := func(ms []MonthRecord) map[string]bool {
		set := map[string]bool{}
		for _, m := range ms {
			set[m.Month] = true
		}
		return set
	}
	wider := keys(in6)
	for k := range keys(in3) {
		assert.True(t, wider[k], "3M month %s missing from 6M", k)
	}
}

func TestNewMonthRecord(t *testing.T) {
	t.Parallel()

	rec := NewMonthRecord("M1", MonthInput{
		Month:           "2024-03",
		StartingCapital: "10000",
		EndingCapital:   "12,500",
		Deposits:        "1000",
		Withdrawals:     "500",
		Notes:           "solid month",
	})

	assert.Equal(t, "M1", rec.ID)
	assert.Equal(t, "2024-03", rec.Month)
	assert.Equal(t, 2024, rec.Year)
	assert.Equal(t, "March 2024", rec.MonthName)
	assert.InDelta(t, 2000, rec.NetProfitLoss, 1e-9)
	assert.InDelta(t, 20, rec.ReturnPercentage, 1e-9)
	assert.Equal(t, StatusActive, rec.Status)
	assert.Equal(t, SourceManual, rec.PnLSource)
	assert.NotZero(t, rec.CreatedAt)
	assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)
}

func TestNewMonthRecordUnparseableAmounts(t *testing.T) {
	t.Parallel()

	rec := NewMonthRecord("M1", MonthInput{
		Month:           "2024-03",
		StartingCapital: "not-a-number",
		EndingCapital:   "5000",
	})

	assert.Equal(t, 0.0, rec.StartingCapital)
	assert.Equal(t, 0.0, rec.ReturnPercentage)
	assert.InDelta(t, 5000, rec.NetProfitLoss, 1e-9)
}
