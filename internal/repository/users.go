package repository

import (
	"context"
	"errors"

	"collection-catalog/internal/model"
	"github.com/jackc/pgx/v5"
)

// Users defines the persistence operations for the users table.
// GetByID returns (nil, nil) when no row matches, so callers can map
// absence to their own NotFound error without importing pgx.
type Users interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	Insert(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int64) error
}

// UsersRepo is the pgx-backed implementation of Users.
type UsersRepo struct {
	db Querier
}

func NewUsersRepo(db Querier) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = "id, name, username, email, password, role, created_at"

func (r *UsersRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	rows, err := r.db.Query(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UsernameTaken reports whether another row already uses the username.
// Pass excludeID 0 on create; on update pass the row's own id so it
// does not conflict with itself.
func (r *UsersRepo) UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 AND id <> $2)",
		username, excludeID,
	).Scan(&taken)
	return taken, err
}

// EmailTaken reports whether another row already uses the email.
func (r *UsersRepo) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)",
		email, excludeID,
	).Scan(&taken)
	return taken, err
}

// Insert persists a new user and fills in the store-assigned id and
// creation timestamp.
func (r *UsersRepo) Insert(ctx context.Context, u *model.User) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO users (name, username, email, password, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		u.Name, u.Username, u.Email, u.Password, u.Role,
	).Scan(&u.ID, &u.CreatedAt)
}

// Update writes the full row back. The service layer has already merged
// the sparse payload onto the loaded row.
func (r *UsersRepo) Update(ctx context.Context, u *model.User) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users
		 SET name = $1, username = $2, email = $3, password = $4, role = $5
		 WHERE id = $6`,
		u.Name, u.Username, u.Email, u.Password, u.Role, u.ID,
	)
	return err
}

func (r *UsersRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	return err
}
