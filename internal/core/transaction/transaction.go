// Package transaction implements the three money movements: put, withdraw
// and send. Each is a linear pipeline over one or two cards: check the
// amount, compute the tax from the card's schedule, check sufficiency,
// mutate, produce a result. A failed step aborts with no mutation at all.
package transaction

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/bogdan892/refactoring/internal/core/domain"
)

var (
	// ErrNonPositiveAmount rejects amounts <= 0 before any tax is computed.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")

	// ErrTaxExceedsAmount rejects puts whose fee would eat the whole deposit.
	ErrTaxExceedsAmount = errors.New("tax is higher than the amount")

	// ErrInsufficientFunds rejects withdraws and sends the balance cannot cover.
	ErrInsufficientFunds = errors.New("not enough money on the card")
)

// Result is the value a completed transaction hands back for rendering.
// Balance is the card's balance after the mutation. Transactions are not
// stored anywhere; this is the only trace they leave.
type Result struct {
	Amount  decimal.Decimal
	Tax     decimal.Decimal
	Number  string
	Balance decimal.Decimal
}

// Put deposits amount onto the card, charging the card's put tax. Fails
// without mutation when the amount is not positive or the tax is >= amount.
func Put(card *domain.Card, amount decimal.Decimal) (*Result, error) {
	if amount.Sign() <= 0 {
		return nil, ErrNonPositiveAmount
	}
	tax := card.PutTax(amount)
	if tax.GreaterThanOrEqual(amount) {
		return nil, ErrTaxExceedsAmount
	}
	card.Balance = card.Balance.Add(amount).Sub(tax)
	return &Result{Amount: amount, Tax: tax, Number: card.Number, Balance: card.Balance}, nil
}

// Withdraw takes amount off the card plus the card's withdraw tax. The
// boundary is inclusive: a balance exactly equal to amount+tax succeeds.
func Withdraw(card *domain.Card, amount decimal.Decimal) (*Result, error) {
	if amount.Sign() <= 0 {
		return nil, ErrNonPositiveAmount
	}
	tax := card.WithdrawTax(amount)
	required := amount.Add(tax)
	if card.Balance.LessThan(required) {
		return nil, ErrInsufficientFunds
	}
	card.Balance = card.Balance.Sub(required)
	return &Result{Amount: amount, Tax: tax, Number: card.Number, Balance: card.Balance}, nil
}

// Send moves amount from sender to recipient. Only the sender pays tax, on
// its own schedule; the tax is retained by the bank, not transferred. The
// two mutations happen together or not at all.
func Send(sender, recipient *domain.Card, amount decimal.Decimal) (senderRes, recipientRes *Result, err error) {
	if amount.Sign() <= 0 {
		return nil, nil, ErrNonPositiveAmount
	}
	tax := sender.SenderTax(amount)
	required := amount.Add(tax)
	if sender.Balance.LessThan(required) {
		return nil, nil, ErrInsufficientFunds
	}
	sender.Balance = sender.Balance.Sub(required)
	recipient.Balance = recipient.Balance.Add(amount)
	senderRes = &Result{Amount: amount, Tax: tax, Number: sender.Number, Balance: sender.Balance}
	recipientRes = &Result{Amount: amount, Tax: decimal.Zero, Number: recipient.Number, Balance: recipient.Balance}
	return senderRes, recipientRes, nil
}
