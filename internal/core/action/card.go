package action

import (
	"github.com/bogdan892/refactoring/internal/core/domain"
	"github.com/bogdan892/refactoring/internal/core/validation"
)

// CreateCard validates the typed variant, builds a card with a number unique
// across the loaded snapshot, appends it to the account and persists.
func (a *Action) CreateCard(acc *domain.Account, typeInput string) (*domain.Card, *validation.Errors, error) {
	form := validation.NewCardTypeForm(a.tr, typeInput)
	if !form.Valid() {
		return nil, &form.Errors, nil
	}

	card := domain.NewCard(form.Type)
	for a.CardWithNumberExists(card.Number) {
		card.Number = domain.NewCardNumber()
	}
	acc.AddCard(card)
	if err := a.save(); err != nil {
		return nil, nil, err
	}
	a.log.Info("card created", "login", acc.Login, "type", card.Type, "number", card.Number)
	return card, nil, nil
}

// DestroyCard removes the card from the account and persists. Returns false
// when the account does not own the card.
func (a *Action) DestroyCard(acc *domain.Account, card *domain.Card) (bool, error) {
	if acc.FindCard(card.Number) == nil {
		return false, nil
	}
	acc.RemoveCard(card.Number)
	if err := a.save(); err != nil {
		return false, err
	}
	a.log.Info("card destroyed", "login", acc.Login, "number", card.Number)
	return true, nil
}
