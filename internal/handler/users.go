package handler

import (
	"collection-catalog/internal/model"
	"collection-catalog/internal/server"
	"collection-catalog/internal/service"
	"github.com/labstack/echo/v4"
)

// UserHandler exposes the user CRUD endpoints. Binding, validation, and
// response writing live in Handle; these methods only forward to the
// service.
type UserHandler struct {
	Handler
	users *service.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

func (h *UserHandler) List(c echo.Context, _ *service.ListRequest) ([]model.User, error) {
	return h.users.List(c.Request().Context())
}

func (h *UserHandler) Get(c echo.Context, req *service.IDRequest) (*model.User, error) {
	return h.users.Get(c.Request().Context(), req.ID)
}

func (h *UserHandler) Create(c echo.Context, req *service.CreateUserRequest) (*model.User, error) {
	return h.users.Create(c.Request().Context(), req)
}

func (h *UserHandler) Update(c echo.Context, req *service.UpdateUserRequest) (*model.User, error) {
	return h.users.Update(c.Request().Context(), req)
}

func (h *UserHandler) Delete(c echo.Context, req *service.IDRequest) (*service.MessageResponse, error) {
	return h.users.Delete(c.Request().Context(), req.ID)
}
