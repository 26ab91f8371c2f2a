// Package handler exposes the action facade over HTTP. The endpoints accept
// the same raw inputs the console does and return accumulated validation
// errors with 400, domain-rule failures with 422.
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bogdan892/refactoring/internal/core/action"
)

type AccountHandler struct {
	Action *action.Action
}

type CreateAccountRequest struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

type CredentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	var req CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	acc, verrs, err := h.Action.CreateAccount(req.Name, req.Age, req.Login, req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if verrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": verrs.Messages()})
	}
	return c.Status(fiber.StatusCreated).JSON(acc)
}

func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	acc := h.Action.FindByLoginPassword(req.Login, req.Password)
	if acc == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "wrong login or password"})
	}
	return c.JSON(acc)
}

func (h *AccountHandler) DestroyAccount(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	acc := h.Action.FindByLoginPassword(req.Login, req.Password)
	if acc == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "wrong login or password"})
	}
	destroyed, err := h.Action.DestroyAccount(acc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"destroyed": destroyed})
}
