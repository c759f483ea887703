// Package siteapi serves the public storefront endpoints: the product
// catalog as shoppers see it, the contact form and admin login.
package siteapi

import (
	"net/http"
	"strconv"

	"github.com/glowandgather/storefront/internal/app"
	"github.com/glowandgather/storefront/internal/catalog"
	"github.com/glowandgather/storefront/internal/webserver"
	"github.com/glowandgather/storefront/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// InitRouter registers every public storefront route.
func InitRouter() {
	webserver.PubGET("/products", listProducts)
	webserver.PubGET("/products/bestsellers", listBestSellers)
	webserver.PubGET("/products/:id", getProduct)
	registerContactRoutes()
	registerAuthRoutes()
}

func getApp(c echo.Context) *app.Application {
	return webserver.GetApp(c)
}

func productService(c echo.Context) *catalog.Service {
	return catalog.NewService(catalog.NewGormProductRepository(getApp(c).DB()))
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.Validation("Invalid product ID")
	}
	return id, nil
}

// listProducts returns active products shaped for the storefront.
func listProducts(c echo.Context) error {
	products, err := productService(c).ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catalog.TransformAll(products))
}

// listBestSellers returns up to three promoted products for the homepage.
func listBestSellers(c echo.Context) error {
	products, err := productService(c).ListBestSellers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catalog.TransformAll(products))
}

func getProduct(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	product, err := productService(c).GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catalog.TransformForFrontend(product))
}
