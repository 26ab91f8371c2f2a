package domain

import (
	"math/rand"
	"strings"

	"github.com/shopspring/decimal"
)

type CardType string

const (
	Usual      CardType = "usual"
	Capitalist CardType = "capitalist"
	Virtual    CardType = "virtual"
)

// CardNumberLength is the fixed width of every generated card number.
const CardNumberLength = 16

// taxSchedule is the fixed fee table of one card variant. Percentages are
// whole percents (5 means 5%), fixed fees are absolute amounts. Every field
// not set for a variant is zero.
type taxSchedule struct {
	withdrawPercent decimal.Decimal
	putPercent      decimal.Decimal
	putFixed        decimal.Decimal
	senderPercent   decimal.Decimal
	senderFixed     decimal.Decimal
	openingBalance  decimal.Decimal
}

var schedules = map[CardType]taxSchedule{
	Usual: {
		withdrawPercent: decimal.NewFromInt(5),
		putPercent:      decimal.NewFromInt(2),
		senderFixed:     decimal.NewFromInt(20),
		openingBalance:  decimal.NewFromInt(50),
	},
	Capitalist: {
		openingBalance: decimal.NewFromInt(100),
	},
	Virtual: {
		withdrawPercent: decimal.NewFromInt(5),
		putFixed:        decimal.NewFromInt(2),
		senderFixed:     decimal.NewFromInt(20),
		openingBalance:  decimal.NewFromInt(150),
	},
}

// ParseCardType matches user input against the known variants,
// case-insensitively. The second return value reports whether the
// input named a real variant.
func ParseCardType(s string) (CardType, bool) {
	t := CardType(strings.ToLower(strings.TrimSpace(s)))
	_, ok := schedules[t]
	return t, ok
}

// CardTypes lists the known variants in a stable order, for menus and prompts.
func CardTypes() []CardType {
	return []CardType{Usual, Capitalist, Virtual}
}

// Card is a payment card owned by exactly one account. Number is generated
// once at creation and never changes. Balance must only be mutated by the
// transaction package.
type Card struct {
	Number  string          `json:"number" yaml:"number"`
	Type    CardType        `json:"type" yaml:"type"`
	Balance decimal.Decimal `json:"balance" yaml:"balance"`
}

// NewCard creates a card of the given variant with its default opening
// balance. The variant must be valid; use ParseCardType on raw input first.
func NewCard(t CardType) *Card {
	return NewCardWithBalance(t, schedules[t].openingBalance)
}

// NewCardWithBalance creates a card with a caller-chosen opening balance.
func NewCardWithBalance(t CardType, balance decimal.Decimal) *Card {
	return &Card{
		Number:  NewCardNumber(),
		Type:    t,
		Balance: balance,
	}
}

// NewCardNumber generates a 16-digit numeric string. Uniqueness is
// best-effort; callers that need it check against the existing card set.
func NewCardNumber() string {
	var b strings.Builder
	b.Grow(CardNumberLength)
	for i := 0; i < CardNumberLength; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}

// WithdrawTax is amount * withdraw% / 100. Pure over the schedule and the
// requested amount, never over the current balance.
func (c *Card) WithdrawTax(amount decimal.Decimal) decimal.Decimal {
	s := schedules[c.Type]
	return amount.Mul(s.withdrawPercent).Div(decimal.NewFromInt(100))
}

// PutTax is amount * put% / 100 + put fixed fee.
func (c *Card) PutTax(amount decimal.Decimal) decimal.Decimal {
	s := schedules[c.Type]
	return amount.Mul(s.putPercent).Div(decimal.NewFromInt(100)).Add(s.putFixed)
}

// SenderTax is amount * sender% / 100 + sender fixed fee. Only the sending
// side of a transfer pays it.
func (c *Card) SenderTax(amount decimal.Decimal) decimal.Decimal {
	s := schedules[c.Type]
	return amount.Mul(s.senderPercent).Div(decimal.NewFromInt(100)).Add(s.senderFixed)
}
