package handler

import (
	"time"

	"collection-catalog/internal/middleware"
	"collection-catalog/internal/server"
	"collection-catalog/internal/validation"
	"github.com/labstack/echo/v4"
)

// Handler is the base type that holds shared application dependencies.
// Concrete handlers embed it to reach config, logger, and db through
// *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returning by value is fine: the
// struct only holds a pointer, so copies share the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// Handle wraps a typed endpoint function with the shared request
// pipeline: binding, validation, structured logging with phase timings,
// and JSON response writing on the given success status.
//
// Req is the payload struct type; PReq constrains its pointer to be
// Validatable, which lets Handle allocate a fresh payload per request
// (binding into a shared instance would race under concurrent load).
//
// Usage:
//
//	g.POST("", handler.Handle(h.Create, http.StatusCreated))
func Handle[Req any, PReq interface {
	*Req
	validation.Validatable
}, Res any](
	fn func(c echo.Context, req PReq) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload Req
		req := PReq(&payload)

		start := time.Now()

		// Request-scoped logger set by the ContextEnhancer middleware,
		// already carrying request_id, method, path, and ip.
		logger := middleware.GetLogger(c).With().
			Str("operation", "handler").
			Str("route", c.Path()).
			Logger()

		logger.Info().Msg("handling request")

		validationStart := time.Now()
		if err := validation.BindAndValidate(c, req); err != nil {
			logger.Warn().
				Err(err).
				Dur("validation_duration", time.Since(validationStart)).
				Msg("request validation failed")

			// Let the global error handler format the response.
			return err
		}
		validationDuration := time.Since(validationStart)

		logger.Debug().
			Dur("validation_duration", validationDuration).
			Msg("request validation successful")

		handlerStart := time.Now()
		result, err := fn(c, req)
		handlerDuration := time.Since(handlerStart)

		if err != nil {
			logger.Error().
				Err(err).
				Dur("handler_duration", handlerDuration).
				Dur("total_duration", time.Since(start)).
				Msg("handler execution failed")
			return err
		}

		logger.Info().
			Dur("handler_duration", handlerDuration).
			Dur("validation_duration", validationDuration).
			Dur("total_duration", time.Since(start)).
			Msg("request completed successfully")

		return c.JSON(status, result)
	}
}
