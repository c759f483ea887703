package adminapi

import (
	"github.com/glowandgather/storefront/internal/accounts"
	"github.com/glowandgather/storefront/internal/webserver"
	"github.com/glowandgather/storefront/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// registerUserRoutes registers customer profile endpoints
func registerUserRoutes() {
	webserver.ApiGET("/users", listUsers)
	webserver.ApiGET("/users/:id", getUser)
	webserver.ApiPOST("/users", createUser)
	webserver.ApiPATCH("/users/:id", updateUser)
	webserver.ApiDELETE("/users/:id", deleteUser)
	webserver.ApiGET("/users/email-available", checkUserEmail)
}

func listUsers(c echo.Context) error {
	page, perPage := parsePagination(c)
	result, err := userService(c).List(c.Request().Context(), page, perPage)
	if err != nil {
		return err
	}
	return paged(c, result.Users, result.Total, result.Page, result.Limit)
}

func getUser(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	user, err := userService(c).GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, user)
}

func createUser(c echo.Context) error {
	var input accounts.UserInput
	if err := c.Bind(&input); err != nil {
		return apperrors.Validation("Unable to parse user payload")
	}
	user, err := userService(c).Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return created(c, user)
}

func updateUser(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	var input accounts.UserInput
	if err := c.Bind(&input); err != nil {
		return apperrors.Validation("Unable to parse user payload")
	}
	user, err := userService(c).Update(c.Request().Context(), id, input)
	if err != nil {
		return err
	}
	return ok(c, user)
}

func deleteUser(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := userService(c).Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return ok(c, map[string]interface{}{"message": "User deleted successfully"})
}

func checkUserEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return apperrors.Validation("Email is required")
	}
	available, err := userService(c).IsEmailAvailable(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return ok(c, map[string]interface{}{"email": email, "available": available})
}
