package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keyTranslator renders every message as its catalog key, so tests assert on
// stable keys instead of locale texts.
type keyTranslator struct{}

func (keyTranslator) T(key string, kv ...any) string { return key }

func validForm(taken bool) *AccountForm {
	form := NewAccountForm(keyTranslator{}, func(string) bool { return taken })
	form.Name = "John"
	form.Age = 30
	form.Login = "johnny"
	form.Password = "secret1"
	return form
}

func TestAccountFormValid(t *testing.T) {
	form := validForm(false)
	assert.True(t, form.Valid())
	assert.True(t, form.Errors.Empty())
}

func TestAccountFormAccumulatesAllErrors(t *testing.T) {
	form := NewAccountForm(keyTranslator{}, func(string) bool { return true })
	form.Name = ""
	form.Age = 17
	form.Login = "ab"
	form.Password = ""

	require.False(t, form.Valid())
	msgs := form.Errors.Messages()
	assert.Contains(t, msgs, "account_validation.name.first_letter")
	assert.Contains(t, msgs, "account_validation.age.length")
	assert.Contains(t, msgs, "account_validation.login.longer")
	assert.Contains(t, msgs, "account_validation.login.exists")
	assert.Contains(t, msgs, "account_validation.password.present")
	assert.Contains(t, msgs, "account_validation.password.longer")
	assert.Len(t, msgs, 6, "every failing check reports, none short-circuits")
}

func TestAccountFormLoginExistsIndependentOfOtherFields(t *testing.T) {
	form := validForm(true)
	require.False(t, form.Valid())
	assert.Equal(t, []string{"account_validation.login.exists"}, form.Errors.Messages())
}

func TestAccountFormName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"John", true},
		{"john", false},
		{"", false},
	}
	for _, tt := range tests {
		form := validForm(false)
		form.Name = tt.name
		assert.Equal(t, tt.valid, form.Valid(), "name %q", tt.name)
	}
}

func TestAccountFormAgeBounds(t *testing.T) {
	tests := []struct {
		age   int
		valid bool
	}{
		{22, false},
		{23, true},
		{90, true},
		{91, false},
	}
	for _, tt := range tests {
		form := validForm(false)
		form.Age = tt.age
		assert.Equal(t, tt.valid, form.Valid(), "age %d", tt.age)
	}
}

func TestAccountFormRevalidatesCurrentValues(t *testing.T) {
	form := validForm(false)
	form.Age = 17
	require.False(t, form.Valid())
	form.Age = 30
	assert.True(t, form.Valid(), "errors from the previous pass must not stick")
}

func TestCardNumberFormLengthTakesPrecedence(t *testing.T) {
	exists := func(string) bool {
		panic("existence must not be consulted for a number of the wrong width")
	}
	form := NewCardNumberForm(keyTranslator{}, "123", exists)
	require.False(t, form.Valid())
	assert.Equal(t, []string{"error.wrong_card_number"}, form.Errors.Messages())
}

func TestCardNumberFormUnknownNumber(t *testing.T) {
	form := NewCardNumberForm(keyTranslator{}, "1111222233334444", func(string) bool { return false })
	require.False(t, form.Valid())
	assert.Equal(t, []string{"error.no_card_with_number"}, form.Errors.Messages())
}

func TestCardNumberFormKnownNumber(t *testing.T) {
	form := NewCardNumberForm(keyTranslator{}, "1111222233334444", func(n string) bool {
		return n == "1111222233334444"
	})
	assert.True(t, form.Valid())
}

func TestCardTypeForm(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"usual", true},
		{"USUAL", true},
		{"Virtual", true},
		{"capitalist", true},
		{"platinum", false},
		{"", false},
	}
	for _, tt := range tests {
		form := NewCardTypeForm(keyTranslator{}, tt.input)
		assert.Equal(t, tt.valid, form.Valid(), "input %q", tt.input)
		if !tt.valid {
			assert.Equal(t, []string{"error.wrong_card_type"}, form.Errors.Messages())
		}
	}
}

func TestErrorsJoin(t *testing.T) {
	var errs Errors
	errs.Add("first")
	errs.Add("second")
	assert.Equal(t, "first\nsecond", errs.Error())
	assert.Equal(t, []string{"first", "second"}, errs.Messages())
}
