package handlers

import (
	"net/url"

	"gearmatch/internal/forms"

	"github.com/gofiber/fiber/v2"
)

// FormsHandler serves the read-only intake-form schema so clients can
// render the right fields per sport/category.
type FormsHandler struct{}

// param decodes a path segment; category names may contain spaces
// ("snowboard boots" arrives as snowboard%20boots).
func param(c *fiber.Ctx, name string) string {
	v, err := url.PathUnescape(c.Params(name))
	if err != nil {
		return c.Params(name)
	}
	return v
}

func (h *FormsHandler) Categories(c *fiber.Ctx) error {
	sport := param(c, "sport")
	if !forms.KnownSport(sport) {
		return jsonError(c, fiber.StatusNotFound, "unknown sport")
	}
	return c.JSON(forms.Categories(sport))
}

func (h *FormsHandler) Fields(c *fiber.Ctx) error {
	sport := param(c, "sport")
	category := param(c, "category")
	fields := forms.FieldsFor(sport, category)
	if fields == nil {
		return jsonError(c, fiber.StatusNotFound, "unknown sport/category")
	}
	return c.JSON(fields)
}
