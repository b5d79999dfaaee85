package handlers

import (
	"gearmatch/internal/domain"
	"gearmatch/internal/services"

	"github.com/gofiber/fiber/v2"
)

type RecommendHandler struct {
	Rec *services.RecommendService
}

// recommendReq mirrors the customer client's payload. ShopID is optional:
// absent for the public shop-for-customer surface, set when a shop owner
// previews their own catalog.
type recommendReq struct {
	Sport    string            `json:"sport"`
	Category string            `json:"category"`
	FormData map[string]string `json:"formData"`
	ShopID   *int64            `json:"shopId"`
}

// Recommend is the one anonymous operation on the core boundary.
func (h *RecommendHandler) Recommend(c *fiber.Ctx) error {
	var req recommendReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed request body")
	}
	out, err := h.Rec.Recommend(req.ShopID, req.Sport, req.Category, req.FormData)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		out = []domain.Recommendation{}
	}
	return c.JSON(out)
}
