package repository

import (
	"collection-catalog/internal/server"
)

// Repositories is the container for all repository instances, one per
// entity. Services receive this container instead of individual repos
// so wiring stays in one place.
type Repositories struct {
	Users      Users
	Books      Books
	Movies     Movies
	BoardGames BoardGames
	Comics     Comics
}

// NewRepositories constructs the repository container on top of the
// application's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	db := s.DB.Pool

	return &Repositories{
		Users:      NewUsersRepo(db),
		Books:      NewBooksRepo(db),
		Movies:     NewMoviesRepo(db),
		BoardGames: NewBoardGamesRepo(db),
		Comics:     NewComicsRepo(db),
	}
}
