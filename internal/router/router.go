// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"collection-catalog/internal/handler"
	"collection-catalog/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance: wires the global error handler and
// middleware chain, then registers the system and API routes.
//
// Middleware order matters: RequestID must run before EnhanceContext so
// the request-scoped logger carries the correlation ID, and both must
// run before RequestLogger so the access log line has them too.
func New(middlewares *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	r.Use(middleware.RequestID())
	r.Use(middlewares.ContextEnhancer.EnhanceContext())
	r.Use(middlewares.Global.RequestLogger())
	r.Use(middlewares.Global.Recover())
	r.Use(middlewares.Global.CORS())
	r.Use(middlewares.Global.Secure())

	registerSystemRoutes(r, h)
	registerAPIRoutes(r, h)

	return r
}
