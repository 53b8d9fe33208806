package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"collection-catalog/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type echoPayload struct {
	Name string `json:"name" validate:"required"`
}

func (p *echoPayload) Validate() error {
	if p.Name == "" {
		return errs.NewUnprocessableEntityError("Validation failed",
			[]errs.FieldError{{Field: "name", Error: "is required"}})
	}
	return nil
}

type echoResult struct {
	Greeting string `json:"greeting"`
}

func TestHandle_Success(t *testing.T) {
	e := echo.New()
	e.POST("/hello", Handle(func(c echo.Context, req *echoPayload) (*echoResult, error) {
		return &echoResult{Greeting: "hello " + req.Name}, nil
	}, http.StatusCreated))

	req := httptest.NewRequest(http.MethodPost, "/hello", strings.NewReader(`{"name":"bob"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var res echoResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "hello bob", res.Greeting)
}

func TestHandle_FreshPayloadPerRequest(t *testing.T) {
	// The wrapper must not reuse a bound payload across requests: a
	// field present in one request cannot leak into the next.
	e := echo.New()

	var seen []string
	e.POST("/hello", Handle(func(c echo.Context, req *echoPayload) (*echoResult, error) {
		seen = append(seen, req.Name)
		return &echoResult{}, nil
	}, http.StatusOK))

	for _, body := range []string{`{"name":"first"}`, `{"name":"second"}`} {
		req := httptest.NewRequest(http.MethodPost, "/hello", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		e.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Equal(t, []string{"first", "second"}, seen)
}

func TestHandle_ValidationFailureReturnsError(t *testing.T) {
	e := echo.New()

	called := false
	e.POST("/hello", Handle(func(c echo.Context, req *echoPayload) (*echoResult, error) {
		called = true
		return &echoResult{}, nil
	}, http.StatusOK))

	var captured error
	e.HTTPErrorHandler = func(err error, c echo.Context) { captured = err }

	req := httptest.NewRequest(http.MethodPost, "/hello", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	e.ServeHTTP(httptest.NewRecorder(), req)

	require.False(t, called, "handler must not run on invalid input")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, captured, &httpErr)
	require.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
}

func TestHandle_PropagatesHandlerError(t *testing.T) {
	e := echo.New()
	e.POST("/hello", Handle(func(c echo.Context, req *echoPayload) (*echoResult, error) {
		return nil, errs.NewNotFoundError("Book not found")
	}, http.StatusOK))

	var captured error
	e.HTTPErrorHandler = func(err error, c echo.Context) { captured = err }

	req := httptest.NewRequest(http.MethodPost, "/hello", strings.NewReader(`{"name":"bob"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	e.ServeHTTP(httptest.NewRecorder(), req)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, captured, &httpErr)
	require.Equal(t, "Book not found", httpErr.Detail)
}
