package handler

import (
	"collection-catalog/internal/model"
	"collection-catalog/internal/server"
	"collection-catalog/internal/service"
	"github.com/labstack/echo/v4"
)

// MovieHandler exposes the movie CRUD endpoints.
type MovieHandler struct {
	Handler
	movies *service.MovieService
}

// NewMovieHandler constructs a MovieHandler.
func NewMovieHandler(s *server.Server, movies *service.MovieService) *MovieHandler {
	return &MovieHandler{
		Handler: NewHandler(s),
		movies:  movies,
	}
}

func (h *MovieHandler) List(c echo.Context, _ *service.ListRequest) ([]model.Movie, error) {
	return h.movies.List(c.Request().Context())
}

func (h *MovieHandler) Get(c echo.Context, req *service.IDRequest) (*model.Movie, error) {
	return h.movies.Get(c.Request().Context(), req.ID)
}

func (h *MovieHandler) Create(c echo.Context, req *service.CreateMovieRequest) (*model.Movie, error) {
	return h.movies.Create(c.Request().Context(), req)
}

func (h *MovieHandler) Update(c echo.Context, req *service.UpdateMovieRequest) (*model.Movie, error) {
	return h.movies.Update(c.Request().Context(), req)
}

func (h *MovieHandler) Delete(c echo.Context, req *service.IDRequest) (*service.MessageResponse, error) {
	return h.movies.Delete(c.Request().Context(), req.ID)
}
