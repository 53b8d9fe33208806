// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns: request
// correlation IDs, request-scoped logging, CORS, secure headers, panic
// recovery, and the global error handler that turns every error into
// the service's JSON failure shape.
package middleware
