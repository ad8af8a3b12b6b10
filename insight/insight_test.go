package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/tradejournal/metrics"
)

func fixtureMonths() []metrics.MonthRecord {
	return []metrics.MonthRecord{
		metrics.NewMonthRecord("M1", metrics.MonthInput{Month: "2024-01", StartingCapital: "10000", EndingCapital: "11000"}),
		metrics.NewMonthRecord("M2", metrics.MonthInput{Month: "2024-02", StartingCapital: "11000", EndingCapital: "10200"}),
	}
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	months := fixtureMonths()
	stats := metrics.CalcOverallStats(months)

	prompt := BuildPrompt(stats, months)

	assert.Contains(t, prompt, "Months tracked: 2 (1 profitable, 1 losing)")
	assert.Contains(t, prompt, "Win rate: 50.0%")
	assert.Contains(t, prompt, "Best month: 2024-01")
	assert.Contains(t, prompt, "Worst month: 2024-02")
	assert.Contains(t, prompt, "- 2024-02:")
}

func TestBuildPromptInfiniteProfitFactor(t *testing.T) {
	t.Parallel()

	months := fixtureMonths()[:1]
	prompt := BuildPrompt(metrics.CalcOverallStats(months), months)
	assert.Contains(t, prompt, "infinite (no losing months)")
}

func TestBuildPromptEmpty(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt(metrics.CalcOverallStats(nil), nil)
	assert.Contains(t, prompt, "Months tracked: 0")
	assert.NotContains(t, prompt, "Best month")
}

func TestCacheHit(t *testing.T) {
	t.Parallel()

	c := NewCache(time.Hour)
	c.Put("overall", "h1", "insight text")

	got, ok := c.Get("overall", "h1")
	assert.True(t, ok)
	assert.Equal(t, "insight text", got)
}

func TestCacheHashMismatch(t *testing.T) {
	t.Parallel()

	c := NewCache(time.Hour)
	c.Put("overall", "h1", "insight text")

	_, ok := c.Get("overall", "h2")
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	t.Parallel()

	c := NewCache(time.Hour)
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }
	c.Put("overall", "h1", "insight text")

	c.now = func() time.Time { return base.Add(2 * time.Hour) }
	_, ok := c.Get("overall", "h1")
	assert.False(t, ok)
}

func TestFingerprintChangesOnEdit(t *testing.T) {
	t.Parallel()

	months := fixtureMonths()
	before := Fingerprint(months)

	months[0].NetProfitLoss += 1
	after := Fingerprint(months)

	assert.NotEqual(t, before, after)
	assert.Equal(t, after, Fingerprint(months))
}
