package repository

import (
	"context"
	"errors"

	"collection-catalog/internal/model"
	"github.com/jackc/pgx/v5"
)

// Movies defines the persistence operations for the movies table.
type Movies interface {
	List(ctx context.Context) ([]model.Movie, error)
	GetByID(ctx context.Context, id int64) (*model.Movie, error)
	TitleTaken(ctx context.Context, title string, excludeID int64) (bool, error)
	Insert(ctx context.Context, m *model.Movie) error
	Update(ctx context.Context, m *model.Movie) error
	Delete(ctx context.Context, id int64) error
}

// MoviesRepo is the pgx-backed implementation of Movies.
type MoviesRepo struct {
	db Querier
}

func NewMoviesRepo(db Querier) *MoviesRepo {
	return &MoviesRepo{db: db}
}

const movieColumns = "id, title, director, genre, release_date, rating, user_id, created_at"

func (r *MoviesRepo) List(ctx context.Context) ([]model.Movie, error) {
	rows, err := r.db.Query(ctx, "SELECT "+movieColumns+" FROM movies ORDER BY id")
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Movie])
}

func (r *MoviesRepo) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	rows, err := r.db.Query(ctx, "SELECT "+movieColumns+" FROM movies WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Movie])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *MoviesRepo) TitleTaken(ctx context.Context, title string, excludeID int64) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM movies WHERE title = $1 AND id <> $2)",
		title, excludeID,
	).Scan(&taken)
	return taken, err
}

func (r *MoviesRepo) Insert(ctx context.Context, m *model.Movie) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO movies (title, director, genre, release_date, rating, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		m.Title, m.Director, m.Genre, m.ReleaseDate, m.Rating, m.UserID,
	).Scan(&m.ID, &m.CreatedAt)
}

func (r *MoviesRepo) Update(ctx context.Context, m *model.Movie) error {
	_, err := r.db.Exec(ctx,
		`UPDATE movies
		 SET title = $1, director = $2, genre = $3, release_date = $4, rating = $5, user_id = $6
		 WHERE id = $7`,
		m.Title, m.Director, m.Genre, m.ReleaseDate, m.Rating, m.UserID, m.ID,
	)
	return err
}

func (r *MoviesRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM movies WHERE id = $1", id)
	return err
}
