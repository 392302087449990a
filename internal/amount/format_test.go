package amount

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantInteger  string
		wantFraction string
	}{
		{
			name:         "empty is zero",
			raw:          "",
			wantInteger:  "0",
			wantFraction: "00",
		},
		{
			name:         "literal zero",
			raw:          "0",
			wantInteger:  "0",
			wantFraction: "00",
		},
		{
			name:         "one whole token",
			raw:          "1000000000000000000",
			wantInteger:  "1",
			wantFraction: "00",
		},
		{
			name:         "grouped integer with fraction",
			raw:          "1234560000000000000000",
			wantInteger:  "1,234",
			wantFraction: "56",
		},
		{
			name:         "fraction only half token",
			raw:          "500000000000000000",
			wantInteger:  "0",
			wantFraction: "50",
		},
		{
			name:         "tiny amount rounds to zero",
			raw:          "1",
			wantInteger:  "0",
			wantFraction: "00",
		},
		{
			name:         "third digit five rounds up",
			raw:          "1125000000000000000",
			wantInteger:  "1",
			wantFraction: "13",
		},
		{
			name:         "third digit four rounds down",
			raw:          "1124999999999999999",
			wantInteger:  "1",
			wantFraction: "12",
		},
		{
			name:         "later digits are ignored",
			raw:          "444999999999999999",
			wantInteger:  "0",
			wantFraction: "44",
		},
		{
			name:         "round up inside fraction carries into tens",
			raw:          "95000000000000000",
			wantInteger:  "0",
			wantFraction: "10",
		},
		{
			name:         "fraction-only carry into integer",
			raw:          "995000000000000000",
			wantInteger:  "1",
			wantFraction: "00",
		},
		{
			name:         "carry through all nines grows integer",
			raw:          "999" + "999999999999999" + "950",
			wantInteger:  "1,000",
			wantFraction: "00",
		},
		{
			name:         "carry regroups thousands",
			raw:          "999999" + "995" + strings.Repeat("0", 15),
			wantInteger:  "1,000,000",
			wantFraction: "00",
		},
		{
			name:         "carry stops at first non-nine",
			raw:          "1299" + "996" + strings.Repeat("0", 15),
			wantInteger:  "1,300",
			wantFraction: "00",
		},
		{
			name:         "leading zeros are dropped",
			raw:          "0001" + strings.Repeat("0", 18),
			wantInteger:  "1",
			wantFraction: "00",
		},
		{
			name:         "value beyond 64-bit range",
			raw:          "123456789012345678901234567890" + "123456789012345678",
			wantInteger:  "123,456,789,012,345,678,901,234,567,890",
			wantFraction: "12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.raw)
			assert.Equal(t, tt.wantInteger, got.Integer)
			assert.Equal(t, tt.wantFraction, got.Fraction)
		})
	}
}

func TestFormat_ShortInputsHaveZeroInteger(t *testing.T) {
	rng := rand.New(rand.NewPCG(18, 2))
	for length := 1; length <= Scale; length++ {
		for range 20 {
			raw := randomDigits(rng, length)
			got := Format(raw)
			require.Equal(t, "0", got.Integer, "raw=%s", raw)
		}
	}

	// Eighteen nines round up and carry into the integer part.
	assert.Equal(t, Display{Integer: "1", Fraction: "00"}, Format(strings.Repeat("9", Scale)))
}

func TestFormat_FractionAlwaysTwoDigits(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for length := 0; length <= 64; length++ {
		for range 20 {
			raw := randomDigits(rng, length)
			got := Format(raw)
			require.Len(t, got.Fraction, FractionDigits, "raw=%s", raw)
			require.NotEmpty(t, got.Integer, "raw=%s", raw)
		}
	}
}

func TestFormat_AllNinesIntegerGrowsByOneDigit(t *testing.T) {
	for width := 1; width <= 40; width++ {
		raw := strings.Repeat("9", width) + "99" + "5" + strings.Repeat("0", Scale-3)
		got := Format(raw)

		want := GroupThousands("1" + strings.Repeat("0", width))
		assert.Equal(t, want, got.Integer, "width=%d", width)
		assert.Equal(t, "00", got.Fraction, "width=%d", width)
	}
}

func TestDisplay_String(t *testing.T) {
	assert.Equal(t, "1,234.56", Format("1234560000000000000000").String())
	assert.Equal(t, "0.00", Format("").String())
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0", want: "0"},
		{in: "12", want: "12"},
		{in: "123", want: "123"},
		{in: "1234", want: "1,234"},
		{in: "123456", want: "123,456"},
		{in: "1234567", want: "1,234,567"},
		{in: "1000000000", want: "1,000,000,000"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, GroupThousands(tt.in))
		})
	}
}

func TestAddOne(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0", want: "1"},
		{in: "8", want: "9"},
		{in: "9", want: "10"},
		{in: "129", want: "130"},
		{in: "999", want: "1000"},
		{in: "1999999999999999999999", want: "2000000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, addOne(tt.in))
		})
	}
}

func randomDigits(rng *rand.Rand, n int) string {
	var b strings.Builder
	for range n {
		b.WriteByte(byte('0' + rng.IntN(10)))
	}
	return b.String()
}
