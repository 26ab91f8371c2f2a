package action

import (
	"github.com/shopspring/decimal"

	"github.com/bogdan892/refactoring/internal/core/domain"
	"github.com/bogdan892/refactoring/internal/core/transaction"
	"github.com/bogdan892/refactoring/internal/core/validation"
)

// PutMoney deposits amount onto the card and persists on success. Domain-rule
// failures (non-positive amount, tax >= amount) come back as the transaction
// package's sentinel errors with no mutation.
func (a *Action) PutMoney(acc *domain.Account, card *domain.Card, amount decimal.Decimal) (*transaction.Result, error) {
	res, err := transaction.Put(card, amount)
	if err != nil {
		return nil, err
	}
	if err := a.save(); err != nil {
		return nil, err
	}
	a.log.Info("money put", "login", acc.Login, "number", card.Number, "amount", amount, "tax", res.Tax)
	return res, nil
}

// WithdrawMoney takes amount plus tax off the card and persists on success.
func (a *Action) WithdrawMoney(acc *domain.Account, card *domain.Card, amount decimal.Decimal) (*transaction.Result, error) {
	res, err := transaction.Withdraw(card, amount)
	if err != nil {
		return nil, err
	}
	if err := a.save(); err != nil {
		return nil, err
	}
	a.log.Info("money withdrawn", "login", acc.Login, "number", card.Number, "amount", amount, "tax", res.Tax)
	return res, nil
}

// SendMoney resolves the recipient by card number, then transfers. An
// unresolved recipient aborts before any tax computation; the pair of
// balance mutations is applied together or not at all.
func (a *Action) SendMoney(acc *domain.Account, sender *domain.Card, recipientNumber string, amount decimal.Decimal) (*transaction.Result, *validation.Errors, error) {
	form := validation.NewCardNumberForm(a.tr, recipientNumber, a.CardWithNumberExists)
	if !form.Valid() {
		return nil, &form.Errors, nil
	}
	recipient := a.FindCardByNumber(form.Number)

	res, _, err := transaction.Send(sender, recipient, amount)
	if err != nil {
		return nil, nil, err
	}
	if err := a.save(); err != nil {
		return nil, nil, err
	}
	a.log.Info("money sent",
		"login", acc.Login, "from", sender.Number, "to", recipient.Number,
		"amount", amount, "tax", res.Tax)
	return res, nil, nil
}
