package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTaxSchedules(t *testing.T) {
	tests := []struct {
		cardType CardType
		amount   string
		withdraw string
		put      string
		sender   string
	}{
		{Usual, "100", "5", "2", "20"},
		{Usual, "50", "2.5", "1", "20"},
		{Capitalist, "100", "0", "0", "0"},
		{Capitalist, "50", "0", "0", "0"},
		{Virtual, "100", "5", "2", "20"},
		{Virtual, "50", "2.5", "2", "20"},
	}
	for _, tt := range tests {
		card := NewCard(tt.cardType)
		amount := dec(tt.amount)
		assert.True(t, card.WithdrawTax(amount).Equal(dec(tt.withdraw)),
			"%s withdraw tax on %s", tt.cardType, tt.amount)
		assert.True(t, card.PutTax(amount).Equal(dec(tt.put)),
			"%s put tax on %s", tt.cardType, tt.amount)
		assert.True(t, card.SenderTax(amount).Equal(dec(tt.sender)),
			"%s sender tax on %s", tt.cardType, tt.amount)
	}
}

func TestTaxesIgnoreBalance(t *testing.T) {
	card := NewCard(Virtual)
	before := card.WithdrawTax(dec("100"))
	card.Balance = dec("999999")
	assert.True(t, card.WithdrawTax(dec("100")).Equal(before))
}

func TestNewCardDefaults(t *testing.T) {
	tests := []struct {
		cardType CardType
		balance  string
	}{
		{Usual, "50"},
		{Capitalist, "100"},
		{Virtual, "150"},
	}
	for _, tt := range tests {
		card := NewCard(tt.cardType)
		require.NotNil(t, card)
		assert.Equal(t, tt.cardType, card.Type)
		assert.True(t, card.Balance.Equal(dec(tt.balance)),
			"%s opening balance, got %s", tt.cardType, card.Balance)
		assert.Len(t, card.Number, CardNumberLength)
	}
}

func TestNewCardNumber(t *testing.T) {
	for i := 0; i < 20; i++ {
		number := NewCardNumber()
		require.Len(t, number, CardNumberLength)
		for _, r := range number {
			assert.True(t, r >= '0' && r <= '9', "non-digit in %q", number)
		}
	}
}

func TestParseCardType(t *testing.T) {
	tests := []struct {
		input string
		want  CardType
		ok    bool
	}{
		{"usual", Usual, true},
		{"Usual", Usual, true},
		{"CAPITALIST", Capitalist, true},
		{" virtual ", Virtual, true},
		{"gold", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseCardType(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		if tt.ok {
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestAccountCards(t *testing.T) {
	acc := NewAccount("John", 30, "johnny", "secret1")
	first := NewCard(Usual)
	second := NewCard(Virtual)
	acc.AddCard(first)
	acc.AddCard(second)

	require.Len(t, acc.Cards, 2)
	assert.Same(t, first, acc.Cards[0], "cards keep insertion order")
	assert.Same(t, first, acc.FindCard(first.Number))
	assert.Nil(t, acc.FindCard("0000000000000000"))

	acc.RemoveCard(first.Number)
	require.Len(t, acc.Cards, 1)
	assert.Same(t, second, acc.Cards[0])

	// removing an absent number changes nothing
	acc.RemoveCard(first.Number)
	assert.Len(t, acc.Cards, 1)
}
