package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount represents a signed monetary value with its currency. Value is
// negative when the source marked the movement as a debit.
type Amount struct {
	Currency string          `json:"currency" yaml:"currency"`
	Value    decimal.Decimal `json:"value" yaml:"value"`
}

// NewAmount creates a new Amount instance with the given value and currency
func NewAmount(value decimal.Decimal, currency string) Amount {
	return Amount{
		Currency: currency,
		Value:    value,
	}
}

// NewAmountFromString creates a new Amount instance from a decimal string
func NewAmountFromString(value, currency string) (Amount, error) {
	dec, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount string '%s': %w", value, err)
	}
	return Amount{
		Currency: currency,
		Value:    dec,
	}, nil
}

// IsDebit returns true if the amount is a debit (negative value)
func (a Amount) IsDebit() bool {
	return a.Value.IsNegative()
}

// IsZero returns true if the value is zero
func (a Amount) IsZero() bool {
	return a.Value.IsZero()
}

// String returns a string representation of the amount
func (a Amount) String() string {
	if a.Currency == "" {
		return a.Value.String()
	}
	return fmt.Sprintf("%s %s", a.Value.String(), a.Currency)
}
