package service

import (
	"collection-catalog/internal/repository"
)

// Services is the container for all business-logic services, one per
// entity. Handlers receive this container.
type Services struct {
	Users      *UserService
	Books      *BookService
	Movies     *MovieService
	BoardGames *BoardGameService
	Comics     *ComicService
}

// NewServices constructs the service container. Item services also take
// the users repository for owner-existence checks.
func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Users:      NewUserService(repos.Users),
		Books:      NewBookService(repos.Books, repos.Users),
		Movies:     NewMovieService(repos.Movies, repos.Users),
		BoardGames: NewBoardGameService(repos.BoardGames, repos.Users),
		Comics:     NewComicService(repos.Comics, repos.Users),
	}
}
