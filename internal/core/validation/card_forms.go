package validation

import (
	"unicode/utf8"

	"github.com/bogdan892/refactoring/internal/core/domain"
)

// CardNumberForm validates a card number the user typed for a lookup.
// The two checks are mutually exclusive: a number of the wrong width is
// rejected on width alone, existence is only consulted for 16-digit input.
type CardNumberForm struct {
	Number string

	// Exists reports whether a card with that exact number is in scope.
	Exists func(number string) bool

	Errors Errors
	tr     Translator
}

func NewCardNumberForm(tr Translator, number string, exists func(string) bool) *CardNumberForm {
	return &CardNumberForm{Number: number, Exists: exists, tr: tr}
}

func (f *CardNumberForm) Valid() bool {
	f.Errors = Errors{}
	if utf8.RuneCountInString(f.Number) != domain.CardNumberLength {
		f.Errors.Add(f.tr.T("error.wrong_card_number"))
	} else if !f.Exists(f.Number) {
		f.Errors.Add(f.tr.T("error.no_card_with_number", "number", f.Number))
	}
	return f.Errors.Empty()
}

// CardTypeForm validates a card variant the user typed, case-insensitively
// against the fixed registry.
type CardTypeForm struct {
	Input string
	Type  domain.CardType

	Errors Errors
	tr     Translator
}

func NewCardTypeForm(tr Translator, input string) *CardTypeForm {
	return &CardTypeForm{Input: input, tr: tr}
}

func (f *CardTypeForm) Valid() bool {
	f.Errors = Errors{}
	t, ok := domain.ParseCardType(f.Input)
	if !ok {
		f.Errors.Add(f.tr.T("error.wrong_card_type"))
		return false
	}
	f.Type = t
	return true
}
