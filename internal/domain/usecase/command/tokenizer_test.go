package command

import (
	"testing"

	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Tokens
	}{
		{
			name:     "Category amount description",
			input:    "makanan 50000 makan siang",
			expected: Tokens{CategoryToken: "makanan", AmountToken: "50000", Remainder: "makan siang"},
		},
		{
			name:     "No description",
			input:    "gaji 1000000",
			expected: Tokens{CategoryToken: "gaji", AmountToken: "1000000", Remainder: ""},
		},
		{
			name:     "Category is lower-cased",
			input:    "MaKaNaN 10 x",
			expected: Tokens{CategoryToken: "makanan", AmountToken: "10", Remainder: "x"},
		},
		{
			name:     "Irregular whitespace collapses",
			input:    "  transport\t25000   ojek \n ke   kantor ",
			expected: Tokens{CategoryToken: "transport", AmountToken: "25000", Remainder: "ojek ke kantor"},
		},
		{
			name:     "Punctuation is kept",
			input:    "makanan! 5 ok.",
			expected: Tokens{CategoryToken: "makanan!", AmountToken: "5", Remainder: "ok."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestTokenizeInvalidFormat(t *testing.T) {
	for _, input := range []string{"", "   ", "makanan", "\tmakanan\n"} {
		_, err := Tokenize(input)
		assert.ErrorIs(t, err, errs.ErrInvalidFormat, "input %q", input)
	}
}

func TestParse(t *testing.T) {
	t.Run("Sign of the amount token is discarded", func(t *testing.T) {
		positive, err := Parse("makanan 50000 lunch")
		require.NoError(t, err)
		negative, err := Parse("makanan -50000 lunch")
		require.NoError(t, err)

		assert.True(t, positive.Magnitude.Equal(decimal.NewFromInt(50000)))
		assert.True(t, negative.Magnitude.Equal(positive.Magnitude))
		assert.Equal(t, "lunch", negative.Description)
	})

	t.Run("Non-numeric amount", func(t *testing.T) {
		_, err := Parse("makanan lima ribu")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Format error takes precedence", func(t *testing.T) {
		_, err := Parse("makanan")
		assert.ErrorIs(t, err, errs.ErrInvalidFormat)
	})

	t.Run("Magnitude is never negative", func(t *testing.T) {
		for _, amount := range []string{"0", "-0", "1", "-1", "-0.5", "123.45", "-9999999999999.99"} {
			cmd, err := Parse("x " + amount)
			require.NoError(t, err, amount)
			assert.False(t, cmd.Magnitude.IsNegative(), amount)
		}
	})
}
