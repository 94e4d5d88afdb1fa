package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestMoneyFormat(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{amount: "899.90", want: "R$ 899,90"},
		{amount: "1299.90", want: "R$ 1.299,90"},
		{amount: "0", want: "R$ 0,00"},
		{amount: "1899.9", want: "R$ 1.899,90"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, BRL(tt.amount).Format())
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	price := BRL("899.90")

	assert.True(t, price.Mul(3).Equal(BRL("2699.70")))
	assert.True(t, price.Add(BRL("100.10")).Equal(BRL("1000.00")))
	assert.True(t, ZeroMoney(currency.BRL).Add(price).Equal(price))
	assert.False(t, price.IsNegative())
}

func TestParsePrice(t *testing.T) {
	m, err := ParsePrice(" 12.34 ", currency.BRL)
	require.NoError(t, err)
	assert.True(t, m.Equal(BRL("12.34")))

	_, err = ParsePrice("-1", currency.BRL)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = ParsePrice("caro", currency.BRL)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}
