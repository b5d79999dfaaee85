package handlers

import (
	"errors"
	"strings"

	applog "gearmatch/internal/log"
	"gearmatch/internal/token"

	"github.com/gofiber/fiber/v2"
)

// RequireShop gates catalog mutation routes: it verifies the Bearer token
// and stashes the bound shop id in Locals("shopID").
func RequireShop(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		shopID, err := tokens.Verify(raw)
		if err != nil {
			if errors.Is(err, token.ErrMissing) {
				return jsonError(c, fiber.StatusUnauthorized, "access token required")
			}
			applog.Security(c, "auth.token.reject", map[string]any{"reason": err.Error()})
			return jsonError(c, fiber.StatusForbidden, "invalid or expired token")
		}
		c.Locals("shopID", shopID)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// shopFromCtx returns the identity RequireShop stored.
func shopFromCtx(c *fiber.Ctx) int64 {
	id, _ := c.Locals("shopID").(int64)
	return id
}
