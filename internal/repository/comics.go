package repository

import (
	"context"
	"errors"

	"collection-catalog/internal/model"
	"github.com/jackc/pgx/v5"
)

// Comics defines the persistence operations for the comics table.
type Comics interface {
	List(ctx context.Context) ([]model.Comic, error)
	GetByID(ctx context.Context, id int64) (*model.Comic, error)
	TitleTaken(ctx context.Context, title string, excludeID int64) (bool, error)
	Insert(ctx context.Context, c *model.Comic) error
	Update(ctx context.Context, c *model.Comic) error
	Delete(ctx context.Context, id int64) error
}

// ComicsRepo is the pgx-backed implementation of Comics.
type ComicsRepo struct {
	db Querier
}

func NewComicsRepo(db Querier) *ComicsRepo {
	return &ComicsRepo{db: db}
}

const comicColumns = "id, title, author, genre, published_date, user_id, created_at"

func (r *ComicsRepo) List(ctx context.Context) ([]model.Comic, error) {
	rows, err := r.db.Query(ctx, "SELECT "+comicColumns+" FROM comics ORDER BY id")
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Comic])
}

func (r *ComicsRepo) GetByID(ctx context.Context, id int64) (*model.Comic, error) {
	rows, err := r.db.Query(ctx, "SELECT "+comicColumns+" FROM comics WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	comic, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Comic])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comic, nil
}

func (r *ComicsRepo) TitleTaken(ctx context.Context, title string, excludeID int64) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM comics WHERE title = $1 AND id <> $2)",
		title, excludeID,
	).Scan(&taken)
	return taken, err
}

func (r *ComicsRepo) Insert(ctx context.Context, c *model.Comic) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO comics (title, author, genre, published_date, user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		c.Title, c.Author, c.Genre, c.PublishedDate, c.UserID,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *ComicsRepo) Update(ctx context.Context, c *model.Comic) error {
	_, err := r.db.Exec(ctx,
		`UPDATE comics
		 SET title = $1, author = $2, genre = $3, published_date = $4, user_id = $5
		 WHERE id = $6`,
		c.Title, c.Author, c.Genre, c.PublishedDate, c.UserID, c.ID,
	)
	return err
}

func (r *ComicsRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM comics WHERE id = $1", id)
	return err
}
