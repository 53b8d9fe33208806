package service

import (
	"context"

	"collection-catalog/internal/errs"
	"collection-catalog/internal/model"
	"collection-catalog/internal/repository"
	"collection-catalog/internal/validation"
)

// CreateComicRequest is the payload for POST /comics.
type CreateComicRequest struct {
	Title         string `json:"title" validate:"required,max=50"`
	Author        string `json:"author" validate:"required,max=50"`
	Genre         string `json:"genre" validate:"required,max=50"`
	PublishedDate string `json:"published_date" validate:"required,max=10"`
	UserID        *int64 `json:"user_id"`
}

func (r *CreateComicRequest) Validate() error { return validation.Struct(r) }

// UpdateComicRequest is the sparse payload for PUT /comics/:id.
type UpdateComicRequest struct {
	ID            int64   `param:"id" json:"-"`
	Title         *string `json:"title" validate:"omitempty,max=50"`
	Author        *string `json:"author" validate:"omitempty,max=50"`
	Genre         *string `json:"genre" validate:"omitempty,max=50"`
	PublishedDate *string `json:"published_date" validate:"omitempty,max=10"`
	UserID        *int64  `json:"user_id"`
}

func (r *UpdateComicRequest) Validate() error { return validation.Struct(r) }

// ComicService implements the CRUD protocol for comics.
type ComicService struct {
	comics repository.Comics
	users  repository.Users
}

func NewComicService(comics repository.Comics, users repository.Users) *ComicService {
	return &ComicService{comics: comics, users: users}
}

func (s *ComicService) List(ctx context.Context) ([]model.Comic, error) {
	return s.comics.List(ctx)
}

func (s *ComicService) Get(ctx context.Context, id int64) (*model.Comic, error) {
	comic, err := s.comics.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comic == nil {
		return nil, errs.NewNotFoundError("Comic not found")
	}
	return comic, nil
}

func (s *ComicService) Create(ctx context.Context, req *CreateComicRequest) (*model.Comic, error) {
	taken, err := s.comics.TitleTaken(ctx, req.Title, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewBadRequestError("Comic with this title already exists")
	}

	if err := checkOwnerExists(ctx, s.users, req.UserID); err != nil {
		return nil, err
	}

	comic := &model.Comic{
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		PublishedDate: req.PublishedDate,
		UserID:        req.UserID,
	}

	if err := s.comics.Insert(ctx, comic); err != nil {
		return nil, err
	}
	return comic, nil
}

func (s *ComicService) Update(ctx context.Context, req *UpdateComicRequest) (*model.Comic, error) {
	comic, err := s.comics.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if comic == nil {
		return nil, errs.NewNotFoundError("Comic not found")
	}

	if req.Title != nil && *req.Title != comic.Title {
		taken, err := s.comics.TitleTaken(ctx, *req.Title, comic.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errs.NewBadRequestError("Comic with this title already exists")
		}
	}

	if ownerChanging(req.UserID, comic.UserID) {
		if err := checkOwnerExists(ctx, s.users, req.UserID); err != nil {
			return nil, err
		}
	}

	if req.Title != nil {
		comic.Title = *req.Title
	}
	if req.Author != nil {
		comic.Author = *req.Author
	}
	if req.Genre != nil {
		comic.Genre = *req.Genre
	}
	if req.PublishedDate != nil {
		comic.PublishedDate = *req.PublishedDate
	}
	if req.UserID != nil {
		comic.UserID = req.UserID
	}

	if err := s.comics.Update(ctx, comic); err != nil {
		return nil, err
	}
	return comic, nil
}

func (s *ComicService) Delete(ctx context.Context, id int64) (*MessageResponse, error) {
	comic, err := s.comics.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comic == nil {
		return nil, errs.NewNotFoundError("Comic not found")
	}

	if err := s.comics.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Comic deleted successfully"}, nil
}
