package handlers

import (
	applog "gearmatch/internal/log"
	"gearmatch/internal/services"
	"gearmatch/internal/token"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth   *services.AuthService
	Tokens *token.Service
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Location string `json:"location"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed request body")
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return jsonError(c, fiber.StatusBadRequest, "email, password, and shop name are required")
	}

	shop, err := h.Auth.Register(req.Name, req.Email, req.Password, req.Location)
	if err != nil {
		applog.Security(c, "auth.register.fail", map[string]any{"email": req.Email})
		return fail(c, err)
	}

	tok, err := h.Tokens.Issue(shop.ID)
	if err != nil {
		return err
	}
	applog.Audit(c, "auth.register.success", map[string]any{"email": shop.Email, "shop_id": shop.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": tok, "shop": shop})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed request body")
	}
	if req.Email == "" || req.Password == "" {
		return jsonError(c, fiber.StatusBadRequest, "email and password are required")
	}

	shop, err := h.Auth.Authenticate(req.Email, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email})
		return fail(c, err)
	}

	tok, err := h.Tokens.Issue(shop.ID)
	if err != nil {
		return err
	}
	applog.Audit(c, "auth.login.success", map[string]any{"email": shop.Email, "shop_id": shop.ID})
	return c.JSON(fiber.Map{"token": tok, "shop": shop})
}
