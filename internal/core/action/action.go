// Package action is the boundary the menu and HTTP layers call. It turns raw
// inputs into validated entities, runs the transaction engine, and persists
// the whole account collection through the repository after every mutation.
package action

import (
	"fmt"
	"log/slog"

	"github.com/bogdan892/refactoring/internal/core/domain"
	"github.com/bogdan892/refactoring/internal/core/validation"
)

// Repository is the snapshot store the facade persists through. Save is an
// idempotent whole-collection overwrite; there are no partial updates.
type Repository interface {
	FindAll() ([]*domain.Account, error)
	Save(accounts []*domain.Account) error
}

// Action owns the in-memory snapshot of all accounts for one session. It is
// loaded once at construction and rewritten wholesale after each mutating
// operation, last writer wins.
type Action struct {
	repo     Repository
	tr       validation.Translator
	log      *slog.Logger
	accounts []*domain.Account
}

func New(repo Repository, tr validation.Translator, log *slog.Logger) (*Action, error) {
	accounts, err := repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	return &Action{repo: repo, tr: tr, log: log, accounts: accounts}, nil
}

// Accounts returns the current snapshot in insertion order.
func (a *Action) Accounts() []*domain.Account {
	return a.accounts
}

// NoAccounts reports whether the store was empty at session start.
func (a *Action) NoAccounts() bool {
	return len(a.accounts) == 0
}

// AccountExists reports whether any account uses the login.
func (a *Action) AccountExists(login string) bool {
	return a.FindByLogin(login) != nil
}

// FindByLogin returns the account with the login, or nil.
func (a *Action) FindByLogin(login string) *domain.Account {
	for _, acc := range a.accounts {
		if acc.Login == login {
			return acc
		}
	}
	return nil
}

// FindCardByNumber searches every account's cards for the exact number.
func (a *Action) FindCardByNumber(number string) *domain.Card {
	for _, acc := range a.accounts {
		if c := acc.FindCard(number); c != nil {
			return c
		}
	}
	return nil
}

// CardWithNumberExists reports whether any account owns a card with the number.
func (a *Action) CardWithNumberExists(number string) bool {
	return a.FindCardByNumber(number) != nil
}

// save rewrites the entire account collection.
func (a *Action) save() error {
	if err := a.repo.Save(a.accounts); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}
	return nil
}
