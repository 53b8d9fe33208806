package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"collection-catalog/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	Name  string `json:"name" validate:"required,max=5"`
	Email string `json:"email" validate:"required,email"`
}

func (p *signupPayload) Validate() error { return Struct(p) }

type idPayload struct {
	ID int64 `param:"id" json:"-"`
}

func (p *idPayload) Validate() error { return nil }

func newJSONContext(t *testing.T, body string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate_OK(t *testing.T) {
	c := newJSONContext(t, `{"name":"Bob","email":"bob@example.com"}`)

	payload := &signupPayload{}
	require.NoError(t, BindAndValidate(c, payload))
	require.Equal(t, "Bob", payload.Name)
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	c := newJSONContext(t, `{"name":`)

	err := BindAndValidate(c, &signupPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	require.Equal(t, "Invalid request payload", httpErr.Detail)
}

func TestBindAndValidate_TagFailures(t *testing.T) {
	c := newJSONContext(t, `{"name":"Toolong","email":"not-an-email"}`)

	err := BindAndValidate(c, &signupPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	require.Equal(t, "Validation failed", httpErr.Detail)
	require.Equal(t, []errs.FieldError{
		{Field: "name", Error: "must not exceed 5 characters"},
		{Field: "email", Error: "must be a valid email address"},
	}, httpErr.Errors)
}

func TestBindAndValidate_MissingRequired(t *testing.T) {
	c := newJSONContext(t, `{}`)

	err := BindAndValidate(c, &signupPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Len(t, httpErr.Errors, 2)
	require.Equal(t, errs.FieldError{Field: "name", Error: "is required"}, httpErr.Errors[0])
}

func TestBindAndValidate_PathParam(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("17")

	payload := &idPayload{}
	require.NoError(t, BindAndValidate(c, payload))
	require.Equal(t, int64(17), payload.ID)
}

func TestBindAndValidate_NonNumericPathParam(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := BindAndValidate(c, &idPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	require.Equal(t, "Invalid request payload", httpErr.Detail)
}
