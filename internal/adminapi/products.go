package adminapi

import (
	"github.com/glowandgather/storefront/internal/catalog"
	"github.com/glowandgather/storefront/internal/webserver"
	"github.com/glowandgather/storefront/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// registerProductRoutes registers catalog management endpoints
func registerProductRoutes() {
	webserver.ApiGET("/products", listAllProducts)
	webserver.ApiGET("/products/:id", getProductAdmin)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPATCH("/products/:id", updateProduct)
	webserver.ApiDELETE("/products/:id", deleteProduct)
	webserver.ApiPOST("/products/:id/toggle-bestseller", toggleBestSeller)
	webserver.ApiPOST("/products/:id/toggle-active", toggleActive)
}

func listAllProducts(c echo.Context) error {
	products, err := productService(c).ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, products)
}

func getProductAdmin(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	product, err := productService(c).GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, product)
}

func createProduct(c echo.Context) error {
	var input catalog.CreateInput
	if err := c.Bind(&input); err != nil {
		return apperrors.Validation("Unable to parse product payload")
	}
	product, err := productService(c).Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return created(c, product)
}

func updateProduct(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return apperrors.Validation("Unable to parse product payload")
	}
	product, err := productService(c).Update(c.Request().Context(), id, fields)
	if err != nil {
		return err
	}
	return ok(c, product)
}

func deleteProduct(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := productService(c).Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return ok(c, map[string]interface{}{"message": "Product deleted successfully"})
}

func toggleBestSeller(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	product, err := productService(c).ToggleBestSeller(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, product)
}

func toggleActive(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	product, err := productService(c).ToggleActive(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, product)
}
