package adminapi

import (
	"net/http"
	"strconv"

	"github.com/glowandgather/storefront/internal/accounts"
	"github.com/glowandgather/storefront/internal/app"
	"github.com/glowandgather/storefront/internal/catalog"
	"github.com/glowandgather/storefront/internal/contact"
	"github.com/glowandgather/storefront/internal/webserver"
	"github.com/glowandgather/storefront/pkg/apperrors"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// InitRouter registers every authenticated dashboard route.
func InitRouter() {
	registerProductRoutes()
	registerContactRoutes()
	registerAdminRoutes()
	registerUserRoutes()
	registerStatsRoutes()
	registerSystemRoutes()
	registerExportRoutes()
	registerSeedRoutes()
}

// GetApp fetch app context
func GetApp(c echo.Context) *app.Application {
	return webserver.GetApp(c)
}

// GetDB fetch gorm db from app context
func GetDB(c echo.Context) *gorm.DB {
	return GetApp(c).DB()
}

func productService(c echo.Context) *catalog.Service {
	return catalog.NewService(catalog.NewGormProductRepository(GetDB(c)))
}

func contactService(c echo.Context) *contact.Service {
	a := GetApp(c)
	return contact.NewService(contact.NewGormMessageRepository(a.DB()), a.Bus())
}

func adminService(c echo.Context) *accounts.AdminService {
	return accounts.NewAdminService(accounts.NewGormAdminRepository(GetDB(c)))
}

func userService(c echo.Context) *accounts.UserService {
	return accounts.NewUserService(accounts.NewGormUserRepository(GetDB(c)))
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func paged(c echo.Context, data interface{}, total int64, page, perPage int) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":    data,
		"total":   total,
		"page":    page,
		"perPage": perPage,
	})
}

func parseIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.Validation("Invalid ID")
	}
	return id, nil
}

func parsePagination(c echo.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(c.QueryParam("perPage"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage
}
