package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the number of decimal places stored for money amounts
const MaxDecimalPlaces = 2

// maxTokenLength caps the amount token before it is parsed
const maxTokenLength = 64

// maxIntegerDigits is the integer part of a numeric(15,2) column
const maxIntegerDigits = 13

// maxAmount is the largest magnitude that fits a numeric(15,2) column
var maxAmount = decimal.RequireFromString("9999999999999.99")

// ParseAmount parses an amount token using '.' as the decimal separator and
// returns its magnitude rounded to MaxDecimalPlaces. The sign of the token is
// discarded.
func ParseAmount(token string) (decimal.Decimal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if len(token) > maxTokenLength {
		return decimal.Zero, fmt.Errorf("%w: amount has more than %d characters", errs.ErrInvalidAmount, maxTokenLength)
	}

	// decimal accepts exponents; thousands separators and locale commas are rejected
	if strings.ContainsAny(token, ",_") {
		return decimal.Zero, fmt.Errorf("%w: %q is not a plain decimal number", errs.ErrInvalidAmount, token)
	}

	amount, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidAmount, token)
	}

	if amount.IsZero() {
		return decimal.Zero, nil
	}

	// Bound the scale before anything rescales the coefficient, which costs 10^|exponent|
	integerDigits := int64(amount.NumDigits()) + int64(amount.Exponent())
	if integerDigits > maxIntegerDigits {
		return decimal.Zero, fmt.Errorf("%w: %q is too large", errs.ErrInvalidAmount, token)
	}
	if integerDigits < -MaxDecimalPlaces {
		// below half a cent, rounds to zero
		return decimal.Zero, nil
	}

	magnitude := amount.Abs().Round(MaxDecimalPlaces)
	if magnitude.GreaterThan(maxAmount) {
		return decimal.Zero, fmt.Errorf("%w: %q is too large", errs.ErrInvalidAmount, token)
	}

	return magnitude, nil
}

// FormatAmount renders an amount without trailing zeros, e.g. 50000 or 12.5
func FormatAmount(amount decimal.Decimal) string {
	return amount.String()
}
