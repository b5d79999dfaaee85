package handlers

import (
	"gearmatch/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler serves the dashboard overview. The figures are
// placeholders derived from the catalog (price x assumed unit sales); there
// is no real sales pipeline behind this endpoint and nothing downstream
// may treat it as a data source.
type AnalyticsHandler struct {
	Catalog *services.CatalogService
}

const assumedUnitSales = 5

func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	shopID := shopFromCtx(c)
	products, err := h.Catalog.ListForShop(shopID)
	if err != nil {
		return fail(c, err)
	}

	type catLine struct {
		Count int     `json:"count"`
		Value float64 `json:"value"`
	}
	var totalRevenue float64
	byCategory := map[string]catLine{}
	for _, p := range products {
		totalRevenue += p.Price * assumedUnitSales
		line := byCategory[p.Category]
		line.Count += assumedUnitSales
		line.Value += p.Price * assumedUnitSales
		byCategory[p.Category] = line
	}
	totalSales := len(products) * assumedUnitSales
	avg := 0.0
	if totalSales > 0 {
		avg = totalRevenue / float64(totalSales)
	}

	return c.JSON(fiber.Map{
		"totalRevenue":      totalRevenue,
		"totalSales":        totalSales,
		"averageOrderValue": avg,
		"categoryBreakdown": byCategory,
		"placeholder":       true,
	})
}
