// Package console is the interactive menu loop. It only parses lines and
// renders catalog messages; every decision is delegated to the action facade.
// Typing `exit` at any prompt abandons the pending operation before anything
// is mutated.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bogdan892/refactoring/internal/adapter/messages"
	"github.com/bogdan892/refactoring/internal/core/action"
	"github.com/bogdan892/refactoring/internal/core/domain"
	"github.com/bogdan892/refactoring/internal/core/transaction"
	"github.com/bogdan892/refactoring/internal/core/validation"
)

const (
	exitCommand = "exit"
	yes         = "y"
)

type Console struct {
	action  *action.Action
	cat     *messages.Catalog
	in      *bufio.Scanner
	out     io.Writer
	current *domain.Account
	eof     bool
}

func New(act *action.Action, cat *messages.Catalog, in io.Reader, out io.Writer) *Console {
	return &Console{action: act, cat: cat, in: bufio.NewScanner(in), out: out}
}

// Run drives one session: greet, create or load an account, then serve the
// main menu until the user exits or destroys the account.
func (c *Console) Run() error {
	c.say("hello")
	for c.current == nil {
		switch c.read() {
		case "create":
			if err := c.create(); err != nil {
				return err
			}
		case "load":
			if err := c.load(); err != nil {
				return err
			}
		case exitCommand:
			c.say("bye")
			return nil
		default:
			c.say("error.wrong_command")
		}
	}
	if err := c.mainMenu(); err != nil {
		return err
	}
	c.say("bye")
	return nil
}

func (c *Console) create() error {
	for !c.eof {
		name := c.input("user.name")
		age, _ := strconv.Atoi(c.input("user.age"))
		login := c.input("user.login")
		password := c.input("user.password")

		acc, verrs, err := c.action.CreateAccount(name, age, login, password)
		if err != nil {
			return err
		}
		if verrs != nil {
			c.printErrors(verrs)
			continue
		}
		c.current = acc
		return nil
	}
	return nil
}

func (c *Console) load() error {
	if c.action.NoAccounts() {
		if c.confirm("common.create_first_account") {
			return c.create()
		}
		return nil
	}
	for {
		login := c.input("user.login")
		password := c.input("user.password")
		if login == exitCommand || password == exitCommand {
			return nil
		}
		acc := c.action.FindByLoginPassword(login, password)
		if acc == nil {
			c.say("error.user_not_exists")
			continue
		}
		c.current = acc
		return nil
	}
}

func (c *Console) mainMenu() error {
	for {
		c.say("main_operations", "name", c.current.Name)
		var err error
		switch c.read() {
		case "SC":
			c.showCards()
		case "CC":
			err = c.createCard()
		case "DC":
			err = c.destroyCard()
		case "PM":
			err = c.putMoney()
		case "WM":
			err = c.withdrawMoney()
		case "SM":
			err = c.sendMoney()
		case "DA":
			destroyed, derr := c.destroyAccount()
			if derr != nil {
				return derr
			}
			if destroyed {
				return nil
			}
		case exitCommand:
			return nil
		default:
			c.say("error.wrong_command")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) showCards() {
	if len(c.current.Cards) == 0 {
		c.say("error.no_active_cards")
		return
	}
	for _, card := range c.current.Cards {
		fmt.Fprintf(c.out, "- %s, %s\n", card.Number, card.Type)
	}
}

func (c *Console) createCard() error {
	for {
		c.say("create_card")
		input := c.read()
		if input == exitCommand {
			return nil
		}
		_, verrs, err := c.action.CreateCard(c.current, input)
		if err != nil {
			return err
		}
		if verrs != nil {
			c.printErrors(verrs)
			continue
		}
		return nil
	}
}

func (c *Console) destroyCard() error {
	card := c.chooseCard("common.choose_card")
	if card == nil {
		return nil
	}
	if !c.confirm("common.destroy_card", "number", card.Number) {
		return nil
	}
	_, err := c.action.DestroyCard(c.current, card)
	return err
}

func (c *Console) putMoney() error {
	card := c.chooseCard("common.choose_card")
	if card == nil {
		return nil
	}
	res, err := c.action.PutMoney(c.current, card, c.readAmount())
	if err != nil {
		return c.reportDomainError(err)
	}
	c.sayResult("put_money", res)
	return nil
}

func (c *Console) withdrawMoney() error {
	card := c.chooseCard("common.choose_card")
	if card == nil {
		return nil
	}
	res, err := c.action.WithdrawMoney(c.current, card, c.readAmount())
	if err != nil {
		return c.reportDomainError(err)
	}
	c.sayResult("withdraw_money", res)
	return nil
}

func (c *Console) sendMoney() error {
	sender := c.chooseCard("common.choose_card_sending")
	if sender == nil {
		return nil
	}
	c.say("common.recipient_card")
	number := c.read()
	if number == exitCommand {
		return nil
	}
	res, verrs, err := c.action.SendMoney(c.current, sender, number, c.readAmount())
	if err != nil {
		return c.reportDomainError(err)
	}
	if verrs != nil {
		c.printErrors(verrs)
		return nil
	}
	c.sayResult("send_money", res)
	return nil
}

func (c *Console) destroyAccount() (bool, error) {
	if !c.confirm("common.destroy_account") {
		return false, nil
	}
	return c.action.DestroyAccount(c.current)
}

// chooseCard lists the account's cards with one-based indexes and reads a
// selection. Returns nil when there are no cards or the user typed exit.
func (c *Console) chooseCard(promptKey string) *domain.Card {
	if len(c.current.Cards) == 0 {
		c.say("error.no_active_cards")
		return nil
	}
	c.say(promptKey)
	for i, card := range c.current.Cards {
		c.say("common.card_list_item", "number", card.Number, "type", card.Type, "index", i+1)
	}
	c.say("common.press_exit")
	for {
		input := c.read()
		if input == exitCommand {
			return nil
		}
		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(c.current.Cards) {
			c.say("error.wrong_number")
			continue
		}
		return c.current.Cards[n-1]
	}
}

// readAmount parses the typed amount; anything unparseable becomes zero and
// is rejected downstream by the positive-amount check.
func (c *Console) readAmount() decimal.Decimal {
	c.say("common.input_amount")
	amount, err := decimal.NewFromString(c.read())
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// reportDomainError renders domain-rule failures and propagates everything
// else (storage trouble) to abort the session.
func (c *Console) reportDomainError(err error) error {
	switch {
	case errors.Is(err, transaction.ErrNonPositiveAmount):
		c.say("error.non_positive_amount")
	case errors.Is(err, transaction.ErrTaxExceedsAmount):
		c.say("error.tax_higher")
	case errors.Is(err, transaction.ErrInsufficientFunds):
		c.say("error.insufficient_funds")
	default:
		return err
	}
	return nil
}

func (c *Console) sayResult(key string, res *transaction.Result) {
	fmt.Fprintln(c.out, c.cat.T(key,
		"amount", res.Amount, "number", res.Number, "balance", res.Balance, "tax", res.Tax))
}

func (c *Console) printErrors(verrs *validation.Errors) {
	for _, msg := range verrs.Messages() {
		fmt.Fprintln(c.out, msg)
	}
}

func (c *Console) say(key string, kv ...any) {
	fmt.Fprintln(c.out, c.cat.T(key, kv...))
}

func (c *Console) input(key string) string {
	c.say(key)
	return c.read()
}

func (c *Console) confirm(key string, kv ...any) bool {
	c.say(key, kv...)
	return c.read() == yes
}

// read returns the next trimmed line; EOF behaves like an exit command so a
// closed stdin unwinds the session instead of spinning.
func (c *Console) read() string {
	if c.eof {
		return exitCommand
	}
	if !c.in.Scan() {
		c.eof = true
		return exitCommand
	}
	return strings.TrimSpace(c.in.Text())
}
