package transaction

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bogdan892/refactoring/internal/core/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func card(t domain.CardType, balance string) *domain.Card {
	return &domain.Card{Number: "1111222233334444", Type: t, Balance: dec(balance)}
}

func TestPutOnCapitalist(t *testing.T) {
	c := card(domain.Capitalist, "50")
	res, err := Put(c, dec("50"))
	require.NoError(t, err)
	assert.True(t, c.Balance.Equal(dec("100")), "balance %s", c.Balance)
	assert.True(t, res.Tax.IsZero())
	assert.Equal(t, c.Number, res.Number)
	assert.True(t, res.Balance.Equal(c.Balance))
}

func TestPutFixedFee(t *testing.T) {
	// virtual charges a fixed 2 on put
	c := card(domain.Virtual, "10")
	res, err := Put(c, dec("5"))
	require.NoError(t, err)
	assert.True(t, res.Tax.Equal(dec("2")))
	assert.True(t, c.Balance.Equal(dec("13")), "balance %s", c.Balance)
}

func TestPutTaxExceedsAmount(t *testing.T) {
	tests := []string{"1", "2"} // fee 2: tax > amount and tax == amount both reject
	for _, amount := range tests {
		c := card(domain.Virtual, "10")
		_, err := Put(c, dec(amount))
		assert.ErrorIs(t, err, ErrTaxExceedsAmount, "amount %s", amount)
		assert.True(t, c.Balance.Equal(dec("10")), "balance must not move on amount %s", amount)
	}
}

func TestWithdraw(t *testing.T) {
	c := card(domain.Virtual, "150")
	res, err := Withdraw(c, dec("100"))
	require.NoError(t, err)
	assert.True(t, res.Tax.Equal(dec("5")))
	assert.True(t, c.Balance.Equal(dec("45")), "balance %s", c.Balance)
}

func TestWithdrawBoundaryInclusive(t *testing.T) {
	// required funds are exactly the balance: allowed, ends at zero
	c := card(domain.Virtual, "105")
	_, err := Withdraw(c, dec("100"))
	require.NoError(t, err)
	assert.True(t, c.Balance.IsZero(), "balance %s", c.Balance)
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	c := card(domain.Virtual, "104")
	_, err := Withdraw(c, dec("100"))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, c.Balance.Equal(dec("104")))
}

func TestNonPositiveAmountsRejectedBeforeMutation(t *testing.T) {
	for _, amount := range []string{"0", "-5"} {
		sender := card(domain.Usual, "100")
		recipient := card(domain.Capitalist, "100")

		_, err := Put(sender, dec(amount))
		assert.ErrorIs(t, err, ErrNonPositiveAmount)

		_, err = Withdraw(sender, dec(amount))
		assert.ErrorIs(t, err, ErrNonPositiveAmount)

		_, _, err = Send(sender, recipient, dec(amount))
		assert.ErrorIs(t, err, ErrNonPositiveAmount)

		assert.True(t, sender.Balance.Equal(dec("100")), "amount %s", amount)
		assert.True(t, recipient.Balance.Equal(dec("100")), "amount %s", amount)
	}
}

func TestSend(t *testing.T) {
	sender := card(domain.Usual, "100") // fixed 20 sender tax
	recipient := &domain.Card{Number: "5555666677778888", Type: domain.Capitalist, Balance: dec("10")}

	senderRes, recipientRes, err := Send(sender, recipient, dec("30"))
	require.NoError(t, err)
	assert.True(t, senderRes.Tax.Equal(dec("20")))
	assert.True(t, sender.Balance.Equal(dec("50")), "sender %s", sender.Balance)
	assert.True(t, recipient.Balance.Equal(dec("40")), "recipient %s", recipient.Balance)
	assert.True(t, recipientRes.Tax.IsZero(), "recipient pays no fee")
	assert.Equal(t, recipient.Number, recipientRes.Number)
}

func TestSendBoundaryInclusive(t *testing.T) {
	sender := card(domain.Usual, "50")
	recipient := card(domain.Capitalist, "0")
	_, _, err := Send(sender, recipient, dec("30"))
	require.NoError(t, err)
	assert.True(t, sender.Balance.IsZero())
	assert.True(t, recipient.Balance.Equal(dec("30")))
}

func TestSendInsufficientFundsMutatesNeither(t *testing.T) {
	sender := card(domain.Usual, "49")
	recipient := card(domain.Capitalist, "10")
	_, _, err := Send(sender, recipient, dec("30"))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, sender.Balance.Equal(dec("49")))
	assert.True(t, recipient.Balance.Equal(dec("10")))
}
