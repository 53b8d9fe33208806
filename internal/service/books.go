package service

import (
	"context"

	"collection-catalog/internal/errs"
	"collection-catalog/internal/model"
	"collection-catalog/internal/repository"
	"collection-catalog/internal/validation"
)

// CreateBookRequest is the payload for POST /books. Rating and owner
// are optional; everything else is required.
type CreateBookRequest struct {
	Title         string `json:"title" validate:"required,max=50"`
	Author        string `json:"author" validate:"required,max=50"`
	Genre         string `json:"genre" validate:"required,max=50"`
	PublishedDate string `json:"published_date" validate:"required,max=10"`
	Rating        *int32 `json:"rating"`
	UserID        *int64 `json:"user_id"`
}

func (r *CreateBookRequest) Validate() error { return validation.Struct(r) }

// UpdateBookRequest is the sparse payload for PUT /books/:id.
type UpdateBookRequest struct {
	ID            int64   `param:"id" json:"-"`
	Title         *string `json:"title" validate:"omitempty,max=50"`
	Author        *string `json:"author" validate:"omitempty,max=50"`
	Genre         *string `json:"genre" validate:"omitempty,max=50"`
	PublishedDate *string `json:"published_date" validate:"omitempty,max=10"`
	Rating        *int32  `json:"rating"`
	UserID        *int64  `json:"user_id"`
}

func (r *UpdateBookRequest) Validate() error { return validation.Struct(r) }

// BookService implements the CRUD protocol for books.
type BookService struct {
	books repository.Books
	users repository.Users
}

func NewBookService(books repository.Books, users repository.Users) *BookService {
	return &BookService{books: books, users: users}
}

func (s *BookService) List(ctx context.Context) ([]model.Book, error) {
	return s.books.List(ctx)
}

func (s *BookService) Get(ctx context.Context, id int64) (*model.Book, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, errs.NewNotFoundError("Book not found")
	}
	return book, nil
}

func (s *BookService) Create(ctx context.Context, req *CreateBookRequest) (*model.Book, error) {
	taken, err := s.books.TitleTaken(ctx, req.Title, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewBadRequestError("Book with this title already exists")
	}

	if err := checkOwnerExists(ctx, s.users, req.UserID); err != nil {
		return nil, err
	}

	book := &model.Book{
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		PublishedDate: req.PublishedDate,
		Rating:        req.Rating,
		UserID:        req.UserID,
	}

	if err := s.books.Insert(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *BookService) Update(ctx context.Context, req *UpdateBookRequest) (*model.Book, error) {
	book, err := s.books.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, errs.NewNotFoundError("Book not found")
	}

	if req.Title != nil && *req.Title != book.Title {
		taken, err := s.books.TitleTaken(ctx, *req.Title, book.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errs.NewBadRequestError("Book with this title already exists")
		}
	}

	if ownerChanging(req.UserID, book.UserID) {
		if err := checkOwnerExists(ctx, s.users, req.UserID); err != nil {
			return nil, err
		}
	}

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Author != nil {
		book.Author = *req.Author
	}
	if req.Genre != nil {
		book.Genre = *req.Genre
	}
	if req.PublishedDate != nil {
		book.PublishedDate = *req.PublishedDate
	}
	if req.Rating != nil {
		book.Rating = req.Rating
	}
	if req.UserID != nil {
		book.UserID = req.UserID
	}

	if err := s.books.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *BookService) Delete(ctx context.Context, id int64) (*MessageResponse, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, errs.NewNotFoundError("Book not found")
	}

	if err := s.books.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Book deleted successfully"}, nil
}
