package repository

import (
	"context"
	"errors"

	"collection-catalog/internal/model"
	"github.com/jackc/pgx/v5"
)

// BoardGames defines the persistence operations for the board_games table.
type BoardGames interface {
	List(ctx context.Context) ([]model.BoardGame, error)
	GetByID(ctx context.Context, id int64) (*model.BoardGame, error)
	TitleTaken(ctx context.Context, title string, excludeID int64) (bool, error)
	Insert(ctx context.Context, g *model.BoardGame) error
	Update(ctx context.Context, g *model.BoardGame) error
	Delete(ctx context.Context, id int64) error
}

// BoardGamesRepo is the pgx-backed implementation of BoardGames.
type BoardGamesRepo struct {
	db Querier
}

func NewBoardGamesRepo(db Querier) *BoardGamesRepo {
	return &BoardGamesRepo{db: db}
}

const boardGameColumns = "id, title, designer, genre, release_date, user_id, created_at"

func (r *BoardGamesRepo) List(ctx context.Context) ([]model.BoardGame, error) {
	rows, err := r.db.Query(ctx, "SELECT "+boardGameColumns+" FROM board_games ORDER BY id")
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.BoardGame])
}

func (r *BoardGamesRepo) GetByID(ctx context.Context, id int64) (*model.BoardGame, error) {
	rows, err := r.db.Query(ctx, "SELECT "+boardGameColumns+" FROM board_games WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	game, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BoardGame])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *BoardGamesRepo) TitleTaken(ctx context.Context, title string, excludeID int64) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM board_games WHERE title = $1 AND id <> $2)",
		title, excludeID,
	).Scan(&taken)
	return taken, err
}

func (r *BoardGamesRepo) Insert(ctx context.Context, g *model.BoardGame) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO board_games (title, designer, genre, release_date, user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		g.Title, g.Designer, g.Genre, g.ReleaseDate, g.UserID,
	).Scan(&g.ID, &g.CreatedAt)
}

func (r *BoardGamesRepo) Update(ctx context.Context, g *model.BoardGame) error {
	_, err := r.db.Exec(ctx,
		`UPDATE board_games
		 SET title = $1, designer = $2, genre = $3, release_date = $4, user_id = $5
		 WHERE id = $6`,
		g.Title, g.Designer, g.Genre, g.ReleaseDate, g.UserID, g.ID,
	)
	return err
}

func (r *BoardGamesRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM board_games WHERE id = $1", id)
	return err
}
