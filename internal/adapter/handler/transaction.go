package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/bogdan892/refactoring/internal/adapter/messages"
	"github.com/bogdan892/refactoring/internal/core/action"
	"github.com/bogdan892/refactoring/internal/core/domain"
	"github.com/bogdan892/refactoring/internal/core/transaction"
)

type TransactionHandler struct {
	Action *action.Action
	Cat    *messages.Catalog
}

type MoneyRequest struct {
	Login    string          `json:"login"`
	Password string          `json:"password"`
	Number   string          `json:"number"`
	Amount   decimal.Decimal `json:"amount"`
}

type TransferRequest struct {
	Login     string          `json:"login"`
	Password  string          `json:"password"`
	Sender    string          `json:"sender"`
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
}

func (h *TransactionHandler) Deposit(c *fiber.Ctx) error {
	return h.moneyOp(c, "put_money", h.Action.PutMoney)
}

func (h *TransactionHandler) Withdraw(c *fiber.Ctx) error {
	return h.moneyOp(c, "withdraw_money", h.Action.WithdrawMoney)
}

func (h *TransactionHandler) Transfer(c *fiber.Ctx) error {
	var req TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	acc := h.Action.FindByLoginPassword(req.Login, req.Password)
	if acc == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "wrong login or password"})
	}
	sender := acc.FindCard(req.Sender)
	if sender == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "card not found"})
	}

	res, verrs, err := h.Action.SendMoney(acc, sender, req.Recipient, req.Amount)
	if err != nil {
		return h.domainError(c, err)
	}
	if verrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": verrs.Messages()})
	}
	return c.JSON(h.resultBody("send_money", res))
}

func (h *TransactionHandler) moneyOp(
	c *fiber.Ctx,
	messageKey string,
	op func(*domain.Account, *domain.Card, decimal.Decimal) (*transaction.Result, error),
) error {
	var req MoneyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	acc := h.Action.FindByLoginPassword(req.Login, req.Password)
	if acc == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "wrong login or password"})
	}
	card := acc.FindCard(req.Number)
	if card == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "card not found"})
	}

	res, err := op(acc, card, req.Amount)
	if err != nil {
		return h.domainError(c, err)
	}
	return c.JSON(h.resultBody(messageKey, res))
}

// domainError maps transaction-rule failures to 422 with a catalog message;
// anything else is a storage problem and reports as 500.
func (h *TransactionHandler) domainError(c *fiber.Ctx, err error) error {
	var key string
	switch {
	case errors.Is(err, transaction.ErrNonPositiveAmount):
		key = "error.non_positive_amount"
	case errors.Is(err, transaction.ErrTaxExceedsAmount):
		key = "error.tax_higher"
	case errors.Is(err, transaction.ErrInsufficientFunds):
		key = "error.insufficient_funds"
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": h.Cat.T(key)})
}

func (h *TransactionHandler) resultBody(messageKey string, res *transaction.Result) fiber.Map {
	return fiber.Map{
		"amount":  res.Amount,
		"tax":     res.Tax,
		"number":  res.Number,
		"balance": res.Balance,
		"message": h.Cat.T(messageKey,
			"amount", res.Amount, "number", res.Number, "balance", res.Balance, "tax", res.Tax),
	}
}
