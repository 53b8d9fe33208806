package handler

import (
	"collection-catalog/internal/model"
	"collection-catalog/internal/server"
	"collection-catalog/internal/service"
	"github.com/labstack/echo/v4"
)

// ComicHandler exposes the comic CRUD endpoints.
type ComicHandler struct {
	Handler
	comics *service.ComicService
}

// NewComicHandler constructs a ComicHandler.
func NewComicHandler(s *server.Server, comics *service.ComicService) *ComicHandler {
	return &ComicHandler{
		Handler: NewHandler(s),
		comics:  comics,
	}
}

func (h *ComicHandler) List(c echo.Context, _ *service.ListRequest) ([]model.Comic, error) {
	return h.comics.List(c.Request().Context())
}

func (h *ComicHandler) Get(c echo.Context, req *service.IDRequest) (*model.Comic, error) {
	return h.comics.Get(c.Request().Context(), req.ID)
}

func (h *ComicHandler) Create(c echo.Context, req *service.CreateComicRequest) (*model.Comic, error) {
	return h.comics.Create(c.Request().Context(), req)
}

func (h *ComicHandler) Update(c echo.Context, req *service.UpdateComicRequest) (*model.Comic, error) {
	return h.comics.Update(c.Request().Context(), req)
}

func (h *ComicHandler) Delete(c echo.Context, req *service.IDRequest) (*service.MessageResponse, error) {
	return h.comics.Delete(c.Request().Context(), req.ID)
}
