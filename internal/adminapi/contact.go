package adminapi

import (
	"github.com/glowandgather/storefront/internal/webserver"
	"github.com/glowandgather/storefront/pkg/apperrors"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
)

type messagePatch struct {
	Status *string `json:"status"`
	IsRead *bool   `json:"isRead"`
}

// registerContactRoutes registers contact inbox endpoints
func registerContactRoutes() {
	webserver.ApiGET("/messages", listMessages)
	webserver.ApiGET("/messages/:id", getMessage)
	webserver.ApiPATCH("/messages/:id", patchMessage)
	webserver.ApiDELETE("/messages/:id", deleteMessage)
	webserver.ApiGET("/contact/logs", listContactLogs)
}

func listMessages(c echo.Context) error {
	service := contactService(c)
	ctx := c.Request().Context()
	if cast.ToBool(c.QueryParam("unread")) {
		messages, err := service.ListUnread(ctx)
		if err != nil {
			return err
		}
		return ok(c, messages)
	}
	messages, err := service.ListAll(ctx)
	if err != nil {
		return err
	}
	return ok(c, messages)
}

func getMessage(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	message, err := contactService(c).GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, message)
}

// patchMessage applies the read flag and delivery status updates carried in
// the request body. Either field may appear alone.
func patchMessage(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	var patch messagePatch
	if err := c.Bind(&patch); err != nil {
		return apperrors.Validation("Unable to parse message payload")
	}
	if patch.Status == nil && patch.IsRead == nil {
		return apperrors.Validation("Nothing to update")
	}

	service := contactService(c)
	ctx := c.Request().Context()
	if patch.IsRead != nil && *patch.IsRead {
		if _, err := service.MarkAsRead(ctx, id); err != nil {
			return err
		}
	}
	if patch.Status != nil {
		if _, err := service.UpdateStatus(ctx, id, *patch.Status); err != nil {
			return err
		}
	}

	message, err := service.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return ok(c, message)
}

func deleteMessage(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := contactService(c).Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return ok(c, map[string]interface{}{"message": "Message deleted successfully"})
}

func listContactLogs(c echo.Context) error {
	logs, err := contactService(c).Logs(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, logs)
}
