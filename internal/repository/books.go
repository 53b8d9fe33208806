package repository

import (
	"context"
	"errors"

	"collection-catalog/internal/model"
	"github.com/jackc/pgx/v5"
)

// Books defines the persistence operations for the books table.
type Books interface {
	List(ctx context.Context) ([]model.Book, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	TitleTaken(ctx context.Context, title string, excludeID int64) (bool, error)
	Insert(ctx context.Context, b *model.Book) error
	Update(ctx context.Context, b *model.Book) error
	Delete(ctx context.Context, id int64) error
}

// BooksRepo is the pgx-backed implementation of Books.
type BooksRepo struct {
	db Querier
}

func NewBooksRepo(db Querier) *BooksRepo {
	return &BooksRepo{db: db}
}

const bookColumns = "id, title, author, genre, published_date, rating, user_id, created_at"

func (r *BooksRepo) List(ctx context.Context) ([]model.Book, error) {
	rows, err := r.db.Query(ctx, "SELECT "+bookColumns+" FROM books ORDER BY id")
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
}

func (r *BooksRepo) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	rows, err := r.db.Query(ctx, "SELECT "+bookColumns+" FROM books WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// TitleTaken reports whether another book already uses the title.
func (r *BooksRepo) TitleTaken(ctx context.Context, title string, excludeID int64) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM books WHERE title = $1 AND id <> $2)",
		title, excludeID,
	).Scan(&taken)
	return taken, err
}

func (r *BooksRepo) Insert(ctx context.Context, b *model.Book) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO books (title, author, genre, published_date, rating, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		b.Title, b.Author, b.Genre, b.PublishedDate, b.Rating, b.UserID,
	).Scan(&b.ID, &b.CreatedAt)
}

func (r *BooksRepo) Update(ctx context.Context, b *model.Book) error {
	_, err := r.db.Exec(ctx,
		`UPDATE books
		 SET title = $1, author = $2, genre = $3, published_date = $4, rating = $5, user_id = $6
		 WHERE id = $7`,
		b.Title, b.Author, b.Genre, b.PublishedDate, b.Rating, b.UserID, b.ID,
	)
	return err
}

func (r *BooksRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM books WHERE id = $1", id)
	return err
}
