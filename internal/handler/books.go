package handler

import (
	"collection-catalog/internal/model"
	"collection-catalog/internal/server"
	"collection-catalog/internal/service"
	"github.com/labstack/echo/v4"
)

// BookHandler exposes the book CRUD endpoints.
type BookHandler struct {
	Handler
	books *service.BookService
}

// NewBookHandler constructs a BookHandler.
func NewBookHandler(s *server.Server, books *service.BookService) *BookHandler {
	return &BookHandler{
		Handler: NewHandler(s),
		books:   books,
	}
}

func (h *BookHandler) List(c echo.Context, _ *service.ListRequest) ([]model.Book, error) {
	return h.books.List(c.Request().Context())
}

func (h *BookHandler) Get(c echo.Context, req *service.IDRequest) (*model.Book, error) {
	return h.books.Get(c.Request().Context(), req.ID)
}

func (h *BookHandler) Create(c echo.Context, req *service.CreateBookRequest) (*model.Book, error) {
	return h.books.Create(c.Request().Context(), req)
}

func (h *BookHandler) Update(c echo.Context, req *service.UpdateBookRequest) (*model.Book, error) {
	return h.books.Update(c.Request().Context(), req)
}

func (h *BookHandler) Delete(c echo.Context, req *service.IDRequest) (*service.MessageResponse, error) {
	return h.books.Delete(c.Request().Context(), req.ID)
}
