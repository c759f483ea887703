package adminapi

import (
	"github.com/glowandgather/storefront/internal/accounts"
	"github.com/glowandgather/storefront/internal/webserver"
	"github.com/glowandgather/storefront/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

type registerPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// registerAdminRoutes registers dashboard account endpoints
func registerAdminRoutes() {
	webserver.ApiPOST("/admins", registerAdmin)
	webserver.ApiGET("/admins/:id", getAdmin)
	webserver.ApiPATCH("/admins/:id", updateAdmin)
	webserver.ApiDELETE("/admins/:id", deleteAdmin)
}

func registerAdmin(c echo.Context) error {
	var payload registerPayload
	if err := c.Bind(&payload); err != nil {
		return apperrors.Validation("Unable to parse admin payload")
	}
	admin, err := adminService(c).Register(c.Request().Context(), payload.Email, payload.Password, payload.Name)
	if err != nil {
		return err
	}
	return created(c, admin)
}

func getAdmin(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	admin, err := adminService(c).GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, admin)
}

func updateAdmin(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	var input accounts.AdminUpdateInput
	if err := c.Bind(&input); err != nil {
		return apperrors.Validation("Unable to parse admin payload")
	}
	admin, err := adminService(c).Update(c.Request().Context(), id, input)
	if err != nil {
		return err
	}
	return ok(c, admin)
}

func deleteAdmin(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := adminService(c).Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return ok(c, map[string]interface{}{"message": "Admin deleted successfully"})
}
