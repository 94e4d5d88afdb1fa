package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Prices are displayed the way the store's customers read them,
// Brazilian Portuguese formatting with the currency symbol in front.
var pricePrinter = message.NewPrinter(language.BrazilianPortuguese)

// Money is an exact decimal amount in a single currency.
type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// BRL builds a Money in Brazilian reais from a decimal string.
// It panics on a malformed literal, so it is meant for static seed data.
func BRL(amount string) Money {
	return Money{
		Amount:   decimal.RequireFromString(amount),
		Currency: currency.BRL,
	}
}

// ParsePrice parses a form-submitted price string into Money. Unparseable
// or negative input is rejected.
func ParsePrice(s string, unit currency.Unit) (Money, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || amount.IsNegative() {
		return Money{}, fmt.Errorf("parse price %q: %w", s, ErrInvalidPrice)
	}
	return Money{Amount: amount, Currency: unit}, nil
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(unit currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: unit}
}

// Mul returns the amount multiplied by an integer quantity.
func (m Money) Mul(qty int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(qty))),
		Currency: m.Currency,
	}
}

// Add returns the sum of two amounts. Both operands must be in the
// same currency; the store only ever deals in one.
func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// Equal reports whether two amounts are numerically equal in the same currency.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// Format renders the amount for display, e.g. "R$ 1.299,90".
func (m Money) Format() string {
	f, _ := m.Amount.Float64()
	return pricePrinter.Sprintf("%v %v",
		currency.Symbol(m.Currency),
		number.Decimal(f, number.Scale(2)),
	)
}
