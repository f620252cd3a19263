package money

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCentsOf(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"12.50", 1250, true},
		{"0.01", 1, true},
		{"666.66", 66666, true},
		{"1.005", 101, true},
		{"0.005", 1, true},
		{"21474836.47", MaxCents, true},
		{"0.001", 0, false},
		{"0.004", 0, false},
		{"0", 0, false},
		{"-3", 0, false},
		{"21474836.48", 0, false},
		{"1e30", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tc := range cases {
		got, ok := CentsOf(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestFromCents_InversaDeCentsOf(t *testing.T) {
	for _, s := range []string{"12.5", "0.01", "157.95", "44800"} {
		d := decimal.RequireFromString(s)
		cents, ok := CentsOf(d)
		assert.True(t, ok, s)
		assert.True(t, FromCents(cents).Equal(d), s)
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "$0.07", FormatCurrency(7))
	assert.Equal(t, "$12.50", FormatCurrency(1250))
	assert.Equal(t, "$1,234.50", FormatCurrency(123450))
	assert.Equal(t, "-$5.00", FormatCurrency(-500))
	// Más allá de 2^53: un float64 ya no representa el centavo exacto.
	assert.Equal(t, "$90,071,992,547,409.93", FormatCurrency(9007199254740993))
	assert.Equal(t, "$92,233,720,368,547,758.07", FormatCurrency(math.MaxInt64))
	assert.Equal(t, "-$92,233,720,368,547,758.08", FormatCurrency(math.MinInt64))
}
