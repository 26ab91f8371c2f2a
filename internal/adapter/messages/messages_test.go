package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnglish(t *testing.T) {
	cat, err := Load("en")
	require.NoError(t, err)
	assert.NotEmpty(t, cat.T("hello"))
	assert.NotEmpty(t, cat.T("error.wrong_command"))
}

func TestLoadUnknownLocale(t *testing.T) {
	_, err := Load("xx")
	assert.Error(t, err)
}

func TestInterpolation(t *testing.T) {
	cat, err := Load("en")
	require.NoError(t, err)

	msg := cat.T("common.destroy_card", "number", "1111222233334444")
	assert.Contains(t, msg, "1111222233334444")
	assert.NotContains(t, msg, "%{number}")

	msg = cat.T("account_validation.age.length", "min", 23, "max", 90)
	assert.Contains(t, msg, "23")
	assert.Contains(t, msg, "90")
}

func TestMissingKeyRendersKey(t *testing.T) {
	cat, err := Load("en")
	require.NoError(t, err)
	assert.Equal(t, "no.such.key", cat.T("no.such.key"))
}
