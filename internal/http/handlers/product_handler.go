package handlers

import (
	"gearmatch/internal/domain"
	applog "gearmatch/internal/log"
	"gearmatch/internal/services"
	"gearmatch/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	shopID := shopFromCtx(c)
	out, err := h.Catalog.ListForShop(shopID)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		out = []domain.Product{}
	}
	return c.JSON(out)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	shopID := shopFromCtx(c)
	var in domain.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed request body")
	}
	created, err := h.Catalog.Create(shopID, in)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.create", map[string]any{"product_id": created.ID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	shopID := shopFromCtx(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "not found")
	}
	var patch domain.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed request body")
	}
	updated, err := h.Catalog.Update(shopID, id, patch)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.update", map[string]any{"product_id": id})
	return c.JSON(updated)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	shopID := shopFromCtx(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "not found")
	}
	if err := h.Catalog.Delete(shopID, id); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"message": "product deleted successfully"})
}
