package command

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Tokens is a command message split into its three parts
type Tokens struct {
	CategoryToken string // lower-cased first token
	AmountToken   string // second token, unparsed
	Remainder     string // remaining tokens joined by single spaces
}

// ParsedCommand is a tokenized message with a validated amount
type ParsedCommand struct {
	CategoryToken string
	Magnitude     decimal.Decimal
	Description   string
}

// Tokenize splits text on whitespace into category, amount and description tokens
func Tokenize(text string) (Tokens, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return Tokens{}, fmt.Errorf("%w: expected at least 2 tokens, got %d", errs.ErrInvalidFormat, len(fields))
	}

	return Tokens{
		CategoryToken: strings.ToLower(fields[0]),
		AmountToken:   fields[1],
		Remainder:     strings.Join(fields[2:], " "),
	}, nil
}

// Parse tokenizes text and parses the amount token into a non-negative magnitude
func Parse(text string) (*ParsedCommand, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}

	magnitude, err := entity.ParseAmount(tokens.AmountToken)
	if err != nil {
		return nil, err
	}

	return &ParsedCommand{
		CategoryToken: tokens.CategoryToken,
		Magnitude:     magnitude,
		Description:   tokens.Remainder,
	}, nil
}
