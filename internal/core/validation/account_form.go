package validation

import (
	"unicode"
	"unicode/utf8"
)

const (
	MinLoginLength    = 4
	MaxLoginLength    = 20
	MinPasswordLength = 6
	MaxPasswordLength = 30
	MinAge            = 23
	MaxAge            = 90
)

// AccountForm validates the raw inputs of account creation. All five checks
// (name, age, login format, login uniqueness, password) run unconditionally
// so the user sees every problem at once.
type AccountForm struct {
	Name     string
	Age      int
	Login    string
	Password string

	// LoginTaken reports whether an existing account already uses the login.
	LoginTaken func(login string) bool

	Errors Errors
	tr     Translator
}

func NewAccountForm(tr Translator, loginTaken func(string) bool) *AccountForm {
	return &AccountForm{LoginTaken: loginTaken, tr: tr}
}

// Valid re-runs every check against the current field values and reports
// whether none of them failed. Errors holds the full message list afterwards.
func (f *AccountForm) Valid() bool {
	f.Errors = Errors{}
	f.validateName()
	f.validateAge()
	f.validateLogin()
	f.validateLoginTaken()
	f.validatePassword()
	return f.Errors.Empty()
}

func (f *AccountForm) validateName() {
	r, _ := utf8.DecodeRuneInString(f.Name)
	if f.Name == "" || r != unicode.ToUpper(r) {
		f.Errors.Add(f.tr.T("account_validation.name.first_letter"))
	}
}

func (f *AccountForm) validateAge() {
	if f.Age < MinAge || f.Age > MaxAge {
		f.Errors.Add(f.tr.T("account_validation.age.length", "min", MinAge, "max", MaxAge))
	}
}

func (f *AccountForm) validateLogin() {
	n := utf8.RuneCountInString(f.Login)
	if f.Login == "" {
		f.Errors.Add(f.tr.T("account_validation.login.present"))
	}
	if n < MinLoginLength {
		f.Errors.Add(f.tr.T("account_validation.login.longer", "min", MinLoginLength))
	}
	if n > MaxLoginLength {
		f.Errors.Add(f.tr.T("account_validation.login.shorter", "max", MaxLoginLength))
	}
}

func (f *AccountForm) validateLoginTaken() {
	if f.LoginTaken != nil && f.LoginTaken(f.Login) {
		f.Errors.Add(f.tr.T("account_validation.login.exists"))
	}
}

func (f *AccountForm) validatePassword() {
	n := utf8.RuneCountInString(f.Password)
	if f.Password == "" {
		f.Errors.Add(f.tr.T("account_validation.password.present"))
	}
	if n < MinPasswordLength {
		f.Errors.Add(f.tr.T("account_validation.password.longer", "min", MinPasswordLength))
	}
	if n > MaxPasswordLength {
		f.Errors.Add(f.tr.T("account_validation.password.shorter", "max", MaxPasswordLength))
	}
}
