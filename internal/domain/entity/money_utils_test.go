package entity

import (
	"strings"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Integer", "50000", "50000"},
		{"Negative sign discarded", "-50000", "50000"},
		{"Explicit plus sign", "+250", "250"},
		{"Decimal point", "12.5", "12.5"},
		{"Rounded to cents", "10.129", "10.13"},
		{"Exponent", "1e3", "1000"},
		{"Surrounding whitespace", " 75 ", "75"},
		{"Largest storable amount", "9999999999999.99", "9999999999999.99"},
		{"Zero with a huge exponent", "0e2000000000", "0"},
		{"Tiny fraction rounds to zero", "1e-2000000000", "0"},
		{"Long fraction is rounded", "0.004999999999999999999999", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseAmount(tt.input)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(amount), "got %s", amount)
			assert.False(t, amount.IsNegative())
		})
	}
}

func TestParseAmountInvalid(t *testing.T) {
	invalid := []string{"", "abc", "50k", "NaN", "Inf", "-Infinity", "1,5", "1_000", "0x10", "1e20"}

	for _, input := range invalid {
		t.Run(input, func(t *testing.T) {
			_, err := ParseAmount(input)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		})
	}
}

func TestParseAmountRejectsHugeExponentsQuickly(t *testing.T) {
	for _, input := range []string{"1e2000000000", "-9e2000000000", "123456789e1000000", "10000000000000", "0." + strings.Repeat("1", 100000)} {
		t.Run(input, func(t *testing.T) {
			start := time.Now()
			_, err := ParseAmount(input)

			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			assert.Less(t, time.Since(start), 100*time.Millisecond)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "50000", FormatAmount(decimal.NewFromInt(50000)))
	assert.Equal(t, "12.5", FormatAmount(decimal.RequireFromString("12.50")))
	assert.Equal(t, "0", FormatAmount(decimal.Zero))
}
