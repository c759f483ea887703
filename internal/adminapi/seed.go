package adminapi

import (
	"github.com/glowandgather/storefront/internal/catalog"
	"github.com/glowandgather/storefront/internal/webserver"
	"github.com/glowandgather/storefront/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// registerSeedRoutes registers the development catalog reset endpoint
func registerSeedRoutes() {
	webserver.ApiPOST("/seed", seedCatalog)
}

// seedCatalog wipes the product table and repopulates it with the starter
// catalog. Only available with debug mode on.
func seedCatalog(c echo.Context) error {
	if !GetApp(c).Config().System.Debug {
		return apperrors.BusinessRule("Seeding is disabled outside debug mode")
	}

	products := catalog.SampleProducts()
	if err := productService(c).Seed(c.Request().Context(), products); err != nil {
		return err
	}

	summary := make([]map[string]interface{}, 0, len(products))
	for _, p := range products {
		summary = append(summary, map[string]interface{}{
			"id":       p.ID,
			"name":     p.Name,
			"category": p.Category,
		})
	}
	return ok(c, map[string]interface{}{
		"message":  "Database seeded successfully!",
		"total":    len(products),
		"products": summary,
	})
}
