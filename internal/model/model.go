// Package model defines the persisted entity rows.
//
// The `db` tags are consumed by pgx row-to-struct scanning and must
// match the column names selected by the repositories. Ownership of an
// item is a plain numeric foreign key (UserID), nil when the item has
// no owner; there are no object links between entities.
package model

import "time"

// User is a row in the users table. Password always holds the bcrypt
// digest, never plaintext.
type User struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Username  string    `db:"username" json:"username"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"password"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Book is a row in the books table.
type Book struct {
	ID            int64     `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Author        string    `db:"author" json:"author"`
	Genre         string    `db:"genre" json:"genre"`
	PublishedDate string    `db:"published_date" json:"published_date"`
	Rating        *int32    `db:"rating" json:"rating"`
	UserID        *int64    `db:"user_id" json:"user_id"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Movie is a row in the movies table.
type Movie struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Director    string    `db:"director" json:"director"`
	Genre       string    `db:"genre" json:"genre"`
	ReleaseDate string    `db:"release_date" json:"release_date"`
	Rating      *int32    `db:"rating" json:"rating"`
	UserID      *int64    `db:"user_id" json:"user_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// BoardGame is a row in the board_games table. Board games carry no
// rating column.
type BoardGame struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Designer    string    `db:"designer" json:"designer"`
	Genre       string    `db:"genre" json:"genre"`
	ReleaseDate string    `db:"release_date" json:"release_date"`
	UserID      *int64    `db:"user_id" json:"user_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Comic is a row in the comics table. Comics carry no rating column.
type Comic struct {
	ID            int64     `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Author        string    `db:"author" json:"author"`
	Genre         string    `db:"genre" json:"genre"`
	PublishedDate string    `db:"published_date" json:"published_date"`
	UserID        *int64    `db:"user_id" json:"user_id"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
