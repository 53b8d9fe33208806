package service

import (
	"context"

	"collection-catalog/internal/errs"
	"collection-catalog/internal/model"
	"collection-catalog/internal/repository"
	"collection-catalog/internal/validation"
)

// CreateMovieRequest is the payload for POST /movies.
type CreateMovieRequest struct {
	Title       string `json:"title" validate:"required,max=50"`
	Director    string `json:"director" validate:"required,max=50"`
	Genre       string `json:"genre" validate:"required,max=50"`
	ReleaseDate string `json:"release_date" validate:"required,max=10"`
	Rating      *int32 `json:"rating"`
	UserID      *int64 `json:"user_id"`
}

func (r *CreateMovieRequest) Validate() error { return validation.Struct(r) }

// UpdateMovieRequest is the sparse payload for PUT /movies/:id.
type UpdateMovieRequest struct {
	ID          int64   `param:"id" json:"-"`
	Title       *string `json:"title" validate:"omitempty,max=50"`
	Director    *string `json:"director" validate:"omitempty,max=50"`
	Genre       *string `json:"genre" validate:"omitempty,max=50"`
	ReleaseDate *string `json:"release_date" validate:"omitempty,max=10"`
	Rating      *int32  `json:"rating"`
	UserID      *int64  `json:"user_id"`
}

func (r *UpdateMovieRequest) Validate() error { return validation.Struct(r) }

// MovieService implements the CRUD protocol for movies.
type MovieService struct {
	movies repository.Movies
	users  repository.Users
}

func NewMovieService(movies repository.Movies, users repository.Users) *MovieService {
	return &MovieService{movies: movies, users: users}
}

func (s *MovieService) List(ctx context.Context) ([]model.Movie, error) {
	return s.movies.List(ctx)
}

func (s *MovieService) Get(ctx context.Context, id int64) (*model.Movie, error) {
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, errs.NewNotFoundError("Movie not found")
	}
	return movie, nil
}

func (s *MovieService) Create(ctx context.Context, req *CreateMovieRequest) (*model.Movie, error) {
	taken, err := s.movies.TitleTaken(ctx, req.Title, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewBadRequestError("Movie with this title already exists")
	}

	if err := checkOwnerExists(ctx, s.users, req.UserID); err != nil {
		return nil, err
	}

	movie := &model.Movie{
		Title:       req.Title,
		Director:    req.Director,
		Genre:       req.Genre,
		ReleaseDate: req.ReleaseDate,
		Rating:      req.Rating,
		UserID:      req.UserID,
	}

	if err := s.movies.Insert(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *MovieService) Update(ctx context.Context, req *UpdateMovieRequest) (*model.Movie, error) {
	movie, err := s.movies.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, errs.NewNotFoundError("Movie not found")
	}

	if req.Title != nil && *req.Title != movie.Title {
		taken, err := s.movies.TitleTaken(ctx, *req.Title, movie.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errs.NewBadRequestError("Movie with this title already exists")
		}
	}

	if ownerChanging(req.UserID, movie.UserID) {
		if err := checkOwnerExists(ctx, s.users, req.UserID); err != nil {
			return nil, err
		}
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Director != nil {
		movie.Director = *req.Director
	}
	if req.Genre != nil {
		movie.Genre = *req.Genre
	}
	if req.ReleaseDate != nil {
		movie.ReleaseDate = *req.ReleaseDate
	}
	if req.Rating != nil {
		movie.Rating = req.Rating
	}
	if req.UserID != nil {
		movie.UserID = req.UserID
	}

	if err := s.movies.Update(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *MovieService) Delete(ctx context.Context, id int64) (*MessageResponse, error) {
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, errs.NewNotFoundError("Movie not found")
	}

	if err := s.movies.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Movie deleted successfully"}, nil
}
