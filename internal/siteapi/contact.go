package siteapi

import (
	"fmt"
	"net/http"

	"github.com/glowandgather/storefront/internal/contact"
	"github.com/glowandgather/storefront/internal/webserver"
	"github.com/glowandgather/storefront/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

func registerContactRoutes() {
	webserver.PubPOST("/contact", submitContact)
}

// submitContact accepts a contact form submission. Clients are capped to a
// daily submission budget keyed by address and email.
func submitContact(c echo.Context) error {
	var input contact.CreateInput
	if err := c.Bind(&input); err != nil {
		return apperrors.Validation("Unable to parse contact payload")
	}

	a := getApp(c)
	if limiter := a.Limiter(); limiter != nil {
		key := fmt.Sprintf("%s|%s", c.RealIP(), input.Email)
		allowed, err := limiter.Allow(key)
		if err == nil && !allowed {
			return apperrors.BusinessRule("Too many submissions today, please try again tomorrow")
		}
	}

	service := contact.NewService(contact.NewGormMessageRepository(a.DB()), a.Bus())
	message, err := service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Message sent successfully",
		"id":      fmt.Sprintf("%d", message.ID),
	})
}
