package webserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/glowandgather/storefront/internal/app"
	"github.com/glowandgather/storefront/internal/domain"
	"github.com/glowandgather/storefront/pkg/apperrors"
	"github.com/glowandgather/storefront/pkg/metrics"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const appContextKey = "storefront_app"

// TokenTTL is the lifetime of issued admin session tokens.
const TokenTTL = 72 * time.Hour

type WebServer struct {
	root   *echo.Echo
	api    *echo.Group
	pub    *echo.Group
	app    *app.Application
	secret string
}

var server *WebServer

// Init builds the echo instance: serializer, middleware, route groups and
// the central error handler. Admin API routes under /api/v1 require a
// bearer token; public storefront routes do not.
func Init(application *app.Application) *WebServer {
	cfg := application.Config()

	secret := cfg.Web.Secret
	if secret == "" {
		secret = random.String(32)
		zap.L().Warn("web secret not configured, generated a random one; sessions will not survive restarts")
	}

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.System.Debug
	e.JSONSerializer = &jsonSerializer{}
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(appContextKey, application)
			return next(c)
		}
	})
	e.Use(requestLogger)

	server = &WebServer{
		root:   e,
		pub:    e.Group(""),
		secret: secret,
		app:    application,
	}
	server.api = e.Group("/api/v1", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
	}))
	return server
}

// Listen starts the HTTP listener and blocks until shutdown.
func Listen() error {
	cfg := server.app.Config()
	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	zap.L().Info("starting web server", zap.String("addr", addr))
	return server.root.Start(addr)
}

// Shutdown closes the HTTP listener.
func Shutdown() error {
	return server.root.Close()
}

// GenerateToken issues a signed session token for an authenticated admin.
func GenerateToken(admin *domain.Admin) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"aid":   fmt.Sprintf("%d", admin.ID),
		"email": admin.Email,
		"exp":   time.Now().Add(TokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(server.secret))
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

// ApiGET registers an authenticated GET route under /api/v1
func ApiGET(path string, h echo.HandlerFunc) {
	server.api.GET(path, h)
}

// ApiPOST registers an authenticated POST route under /api/v1
func ApiPOST(path string, h echo.HandlerFunc) {
	server.api.POST(path, h)
}

// ApiPUT registers an authenticated PUT route under /api/v1
func ApiPUT(path string, h echo.HandlerFunc) {
	server.api.PUT(path, h)
}

// ApiPATCH registers an authenticated PATCH route under /api/v1
func ApiPATCH(path string, h echo.HandlerFunc) {
	server.api.PATCH(path, h)
}

// ApiDELETE registers an authenticated DELETE route under /api/v1
func ApiDELETE(path string, h echo.HandlerFunc) {
	server.api.DELETE(path, h)
}

// PubGET registers a public GET route
func PubGET(path string, h echo.HandlerFunc) {
	server.pub.GET(path, h)
}

// PubPOST registers a public POST route
func PubPOST(path string, h echo.HandlerFunc) {
	server.pub.POST(path, h)
}

// GetApp returns the application bound to the request context.
func GetApp(c echo.Context) *app.Application {
	return c.Get(appContextKey).(*app.Application)
}

func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		metrics.IncrCounter("http_requests", 1)
		zap.L().Debug("http request",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", c.Response().Status),
			zap.Duration("latency", time.Since(start)))
		return err
	}
}

// errorHandler translates every error escaping a handler into the uniform
// {"error": message} body. Every error is logged server-side: client
// faults at Warn, server faults at Error. Unclassified errors collapse
// into a generic 500 so internals never leak to clients.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if apperr, ok := apperrors.From(err); ok {
		logRequestError(c, apperr.StatusCode, err)
		_ = c.JSON(apperr.StatusCode, apperr)
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		logRequestError(c, httpErr.Code, err)
		_ = c.JSON(httpErr.Code, map[string]interface{}{
			"error": fmt.Sprintf("%v", httpErr.Message),
		})
		return
	}

	zap.L().Error("unhandled request error",
		zap.String("path", c.Request().URL.Path),
		zap.Error(err))
	_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error": "Internal server error",
	})
}

func logRequestError(c echo.Context, status int, err error) {
	fields := []zap.Field{
		zap.String("method", c.Request().Method),
		zap.String("path", c.Request().URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		zap.L().Error("request failed", fields...)
		return
	}
	zap.L().Warn("request rejected", fields...)
}
