package handler

import (
	"collection-catalog/internal/server"
	"collection-catalog/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one object
// around instead of many.
type Handlers struct {
	Health     *HealthHandler
	Users      *UserHandler
	Books      *BookHandler
	Movies     *MovieHandler
	BoardGames *BoardGameHandler
	Comics     *ComicHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(s),
		Users:      NewUserHandler(s, services.Users),
		Books:      NewBookHandler(s, services.Books),
		Movies:     NewMovieHandler(s, services.Movies),
		BoardGames: NewBoardGameHandler(s, services.BoardGames),
		Comics:     NewComicHandler(s, services.Comics),
	}
}
