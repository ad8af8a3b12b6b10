package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
	}{
		{"100", 100},
		{" 2500.75 ", 2500.75},
		{"$1,200.50", 1200.5},
		{"-42.5", -42.5},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseAmount(c.in), "input %q", c.in)
	}
}

func TestNormalizeSymbol(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "AAPL", NormalizeSymbol("  aapl "))
	assert.Equal(t, "BRK.B", NormalizeSymbol("brk.b"))
}

func TestParseTags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"swing", "gap"}, ParseTags(" Swing ,, GAP "))
	assert.Empty(t, ParseTags(""))
	assert.Empty(t, ParseTags(" , ,"))
}

func TestMonthKeyFromDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-03", MonthKeyFromDate("2024-03-15"))
	assert.Equal(t, "2024-03", MonthKeyFromDate(" 2024-03-15 "))
	assert.Equal(t, "2024-13", MonthKeyFromDate("2024-13-40")) // prefix fallback
	assert.Equal(t, "", MonthKeyFromDate("bad"))
}
