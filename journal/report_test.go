package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradejournal/metrics"
)

func reportFixture() ([]metrics.MonthRecord, []metrics.Trade) {
	months := []metrics.MonthRecord{
		metrics.NewMonthRecord("M1", metrics.MonthInput{Month: "2024-01", StartingCapital: "10000", EndingCapital: "11000"}),
		metrics.NewMonthRecord("M2", metrics.MonthInput{Month: "2024-02", StartingCapital: "11000", EndingCapital: "10500"}),
	}
	trades := []metrics.Trade{
		metrics.NewTradeRecord("T1", metrics.TradeInput{Symbol: "AAPL", Side: metrics.Long, ExitDate: "2024-01-10", EntryPrice: "100", ExitPrice: "110", Quantity: "10"}),
		metrics.NewTradeRecord("T2", metrics.TradeInput{Symbol: "TSLA", Side: metrics.Short, ExitDate: "2024-02-05", EntryPrice: "200", ExitPrice: "210", Quantity: "5"}),
	}
	return months, trades
}

func TestReportRender(t *testing.T) {
	t.Parallel()

	months, trades := reportFixture()
	out, err := NewReport(months, trades, 6).Render()
	require.NoError(t, err)

	assert.Contains(t, out, "TRADING JOURNAL REPORT")
	assert.Contains(t, out, "Best Month:     2024-01")
	assert.Contains(t, out, "Worst Month:    2024-02")
	assert.Contains(t, out, "Best Trade:     AAPL")
	assert.Contains(t, out, "Worst Trade:    TSLA")
	assert.Contains(t, out, "| 2024-02 |")
	// Newest month first in the recent table.
	assert.Less(t, strings.Index(out, "| 2024-02 |"), strings.Index(out, "| 2024-01 |"))

	// One trade closed in each month.
	assert.Contains(t, out, "| 2024-01 | 1 | 100.00 |")
	assert.Contains(t, out, "| 2024-02 | 1 | -50.00 |")
}

func TestReportRenderInfiniteProfitFactor(t *testing.T) {
	t.Parallel()

	months := []metrics.MonthRecord{
		metrics.NewMonthRecord("M1", metrics.MonthInput{Month: "2024-01", StartingCapital: "10000", EndingCapital: "11000"}),
	}
	out, err := NewReport(months, nil, 6).Render()
	require.NoError(t, err)
	assert.Contains(t, out, "Profit Factor:  inf")
}

func TestReportRenderEmpty(t *testing.T) {
	t.Parallel()

	out, err := NewReport(nil, nil, 6).Render()
	require.NoError(t, err)
	assert.Contains(t, out, "TRADING JOURNAL REPORT")
}

func TestReportWriteFile(t *testing.T) {
	t.Parallel()

	months, trades := reportFixture()
	path := filepath.Join(t.TempDir(), "report.org")

	require.NoError(t, NewReport(months, trades, 6).WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "TRADING JOURNAL REPORT")
}
