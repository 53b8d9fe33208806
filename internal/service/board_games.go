package service

import (
	"context"

	"collection-catalog/internal/errs"
	"collection-catalog/internal/model"
	"collection-catalog/internal/repository"
	"collection-catalog/internal/validation"
)

// CreateBoardGameRequest is the payload for POST /board_games.
type CreateBoardGameRequest struct {
	Title       string `json:"title" validate:"required,max=50"`
	Designer    string `json:"designer" validate:"required,max=50"`
	Genre       string `json:"genre" validate:"required,max=50"`
	ReleaseDate string `json:"release_date" validate:"required,max=10"`
	UserID      *int64 `json:"user_id"`
}

func (r *CreateBoardGameRequest) Validate() error { return validation.Struct(r) }

// UpdateBoardGameRequest is the sparse payload for PUT /board_games/:id.
type UpdateBoardGameRequest struct {
	ID          int64   `param:"id" json:"-"`
	Title       *string `json:"title" validate:"omitempty,max=50"`
	Designer    *string `json:"designer" validate:"omitempty,max=50"`
	Genre       *string `json:"genre" validate:"omitempty,max=50"`
	ReleaseDate *string `json:"release_date" validate:"omitempty,max=10"`
	UserID      *int64  `json:"user_id"`
}

func (r *UpdateBoardGameRequest) Validate() error { return validation.Struct(r) }

// BoardGameService implements the CRUD protocol for board games. The
// client-facing entity name is "Game", matching the API's messages.
type BoardGameService struct {
	games repository.BoardGames
	users repository.Users
}

func NewBoardGameService(games repository.BoardGames, users repository.Users) *BoardGameService {
	return &BoardGameService{games: games, users: users}
}

func (s *BoardGameService) List(ctx context.Context) ([]model.BoardGame, error) {
	return s.games.List(ctx)
}

func (s *BoardGameService) Get(ctx context.Context, id int64) (*model.BoardGame, error) {
	game, err := s.games.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, errs.NewNotFoundError("Game not found")
	}
	return game, nil
}

func (s *BoardGameService) Create(ctx context.Context, req *CreateBoardGameRequest) (*model.BoardGame, error) {
	taken, err := s.games.TitleTaken(ctx, req.Title, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewBadRequestError("Game with this title already exists")
	}

	if err := checkOwnerExists(ctx, s.users, req.UserID); err != nil {
		return nil, err
	}

	game := &model.BoardGame{
		Title:       req.Title,
		Designer:    req.Designer,
		Genre:       req.Genre,
		ReleaseDate: req.ReleaseDate,
		UserID:      req.UserID,
	}

	if err := s.games.Insert(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *BoardGameService) Update(ctx context.Context, req *UpdateBoardGameRequest) (*model.BoardGame, error) {
	game, err := s.games.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, errs.NewNotFoundError("Game not found")
	}

	if req.Title != nil && *req.Title != game.Title {
		taken, err := s.games.TitleTaken(ctx, *req.Title, game.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errs.NewBadRequestError("Game with this title already exists")
		}
	}

	if ownerChanging(req.UserID, game.UserID) {
		if err := checkOwnerExists(ctx, s.users, req.UserID); err != nil {
			return nil, err
		}
	}

	if req.Title != nil {
		game.Title = *req.Title
	}
	if req.Designer != nil {
		game.Designer = *req.Designer
	}
	if req.Genre != nil {
		game.Genre = *req.Genre
	}
	if req.ReleaseDate != nil {
		game.ReleaseDate = *req.ReleaseDate
	}
	if req.UserID != nil {
		game.UserID = req.UserID
	}

	if err := s.games.Update(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *BoardGameService) Delete(ctx context.Context, id int64) (*MessageResponse, error) {
	game, err := s.games.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, errs.NewNotFoundError("Game not found")
	}

	if err := s.games.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Game deleted successfully"}, nil
}
