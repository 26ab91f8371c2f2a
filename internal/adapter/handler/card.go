package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bogdan892/refactoring/internal/core/action"
	"github.com/bogdan892/refactoring/internal/core/domain"
)

type CardHandler struct {
	Action *action.Action
}

type CreateCardRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Type     string `json:"type"`
}

type DestroyCardRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Number   string `json:"number"`
}

func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	var req CreateCardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	acc, status, errResp := h.authenticate(req.Login, req.Password)
	if acc == nil {
		return c.Status(status).JSON(errResp)
	}
	card, verrs, err := h.Action.CreateCard(acc, req.Type)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if verrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": verrs.Messages()})
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

func (h *CardHandler) DestroyCard(c *fiber.Ctx) error {
	var req DestroyCardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	acc, status, errResp := h.authenticate(req.Login, req.Password)
	if acc == nil {
		return c.Status(status).JSON(errResp)
	}
	card := acc.FindCard(req.Number)
	if card == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "card not found"})
	}
	destroyed, err := h.Action.DestroyCard(acc, card)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"destroyed": destroyed})
}

func (h *CardHandler) ListCards(c *fiber.Ctx) error {
	login := c.Params("login")
	acc := h.Action.FindByLogin(login)
	if acc == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "account not found"})
	}
	cards := acc.Cards
	if cards == nil {
		cards = []*domain.Card{}
	}
	return c.JSON(fiber.Map{"cards": cards})
}

func (h *CardHandler) authenticate(login, password string) (*domain.Account, int, fiber.Map) {
	acc := h.Action.FindByLoginPassword(login, password)
	if acc == nil {
		return nil, fiber.StatusUnauthorized, fiber.Map{"error": "wrong login or password"}
	}
	return acc, 0, nil
}
