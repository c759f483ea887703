package siteapi

import (
	"net/http"

	"github.com/glowandgather/storefront/internal/accounts"
	"github.com/glowandgather/storefront/internal/webserver"
	"github.com/glowandgather/storefront/pkg/apperrors"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerAuthRoutes() {
	webserver.PubPOST("/auth/login", login)
}

// login verifies admin credentials and issues the bearer token used by the
// dashboard routes.
func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return apperrors.Validation("Unable to parse login payload")
	}

	service := accounts.NewAdminService(accounts.NewGormAdminRepository(getApp(c).DB()))
	admin, err := service.Login(c.Request().Context(), payload.Email, payload.Password)
	if err != nil {
		return err
	}

	token, err := webserver.GenerateToken(admin)
	if err != nil {
		return errors.Wrap(err, "generate token")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"token": token,
		"admin": admin,
	})
}
