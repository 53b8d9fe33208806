package handler

import (
	"collection-catalog/internal/model"
	"collection-catalog/internal/server"
	"collection-catalog/internal/service"
	"github.com/labstack/echo/v4"
)

// BoardGameHandler exposes the board game CRUD endpoints.
type BoardGameHandler struct {
	Handler
	boardGames *service.BoardGameService
}

// NewBoardGameHandler constructs a BoardGameHandler.
func NewBoardGameHandler(s *server.Server, boardGames *service.BoardGameService) *BoardGameHandler {
	return &BoardGameHandler{
		Handler:    NewHandler(s),
		boardGames: boardGames,
	}
}

func (h *BoardGameHandler) List(c echo.Context, _ *service.ListRequest) ([]model.BoardGame, error) {
	return h.boardGames.List(c.Request().Context())
}

func (h *BoardGameHandler) Get(c echo.Context, req *service.IDRequest) (*model.BoardGame, error) {
	return h.boardGames.Get(c.Request().Context(), req.ID)
}

func (h *BoardGameHandler) Create(c echo.Context, req *service.CreateBoardGameRequest) (*model.BoardGame, error) {
	return h.boardGames.Create(c.Request().Context(), req)
}

func (h *BoardGameHandler) Update(c echo.Context, req *service.UpdateBoardGameRequest) (*model.BoardGame, error) {
	return h.boardGames.Update(c.Request().Context(), req)
}

func (h *BoardGameHandler) Delete(c echo.Context, req *service.IDRequest) (*service.MessageResponse, error) {
	return h.boardGames.Delete(c.Request().Context(), req.ID)
}
