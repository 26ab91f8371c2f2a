package action

import (
	"github.com/bogdan892/refactoring/internal/core/domain"
	"github.com/bogdan892/refactoring/internal/core/validation"
)

// CreateAccount validates the form and, when it passes, appends a new account
// and persists. A non-nil *validation.Errors means the input was rejected and
// the caller should let the user re-enter the form.
func (a *Action) CreateAccount(name string, age int, login, password string) (*domain.Account, *validation.Errors, error) {
	form := validation.NewAccountForm(a.tr, a.AccountExists)
	form.Name = name
	form.Age = age
	form.Login = login
	form.Password = password
	if !form.Valid() {
		a.log.Info("account creation rejected", "login", login, "errors", len(form.Errors.Messages()))
		return nil, &form.Errors, nil
	}

	acc := domain.NewAccount(name, age, login, password)
	a.accounts = append(a.accounts, acc)
	if err := a.save(); err != nil {
		return nil, nil, err
	}
	a.log.Info("account created", "login", acc.Login, "id", acc.ID)
	return acc, nil, nil
}

// FindByLoginPassword authenticates by plain equality of login and password.
// Returns nil when either does not match.
func (a *Action) FindByLoginPassword(login, password string) *domain.Account {
	acc := a.FindByLogin(login)
	if acc == nil || acc.Password != password {
		return nil
	}
	return acc
}

// DestroyAccount removes the account from the collection and persists.
// Returns false when the account was not in the collection.
func (a *Action) DestroyAccount(acc *domain.Account) (bool, error) {
	for i, cur := range a.accounts {
		if cur.Login == acc.Login {
			a.accounts = append(a.accounts[:i], a.accounts[i+1:]...)
			if err := a.save(); err != nil {
				return false, err
			}
			a.log.Info("account destroyed", "login", acc.Login)
			return true, nil
		}
	}
	return false, nil
}
