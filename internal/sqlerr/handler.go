package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"collection-catalog/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// constraintMessages maps the schema's named constraints onto the exact
// messages the handler pre-checks use, so a commit-race loser is
// indistinguishable from a pre-check rejection.
var constraintMessages = map[string]string{
	"uq_username":         "Username already taken",
	"uq_book_title":       "Book with this title already exists",
	"uq_movie_title":      "Movie with this title already exists",
	"uq_board_game_title": "Game with this title already exists",
	"uq_comic_title":      "Comic with this title already exists",

	"fk_books_user":       "Specified user does not exist",
	"fk_movies_user":      "Specified user does not exist",
	"fk_board_games_user": "Specified user does not exist",
	"fk_comics_user":      "Specified user does not exist",
}

// HandleError converts a low-level database error into an application
// error.
//
// Output:
//   - already an *errs.HTTPError: returned unchanged
//   - pgconn.PgError: mapped to a 400 Conflict for integrity violations
//     (using the constraint table above), 500 otherwise
//   - pgx.ErrNoRows / sql.ErrNoRows: mapped to a 404
//   - anything else: 500
func HandleError(err error) error {
	// Never re-wrap an error that was already classified.
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		switch sqlErr.Code {
		case UniqueViolation, ForeignKeyViolation:
			if detail, ok := constraintMessages[sqlErr.ConstraintName]; ok {
				return errs.NewBadRequestError(detail)
			}
			return errs.NewBadRequestError(fallbackMessage(sqlErr))

		case NotNullViolation, CheckViolation:
			return errs.NewBadRequestError(fallbackMessage(sqlErr))

		default:
			// Unknown database errors must not leak details to clients.
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found")
	}

	return errs.NewInternalServerError()
}

// fallbackMessage phrases an integrity violation for constraints outside
// the known table, using whatever schema metadata Postgres reported.
func fallbackMessage(sqlErr *Error) string {
	entityName := entityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// entityName infers an entity name from table/column metadata.
//
// Priority:
//  1. a column like "user_id" names the referenced entity ("user")
//  2. otherwise the table name, crudely singularized
//  3. otherwise "record"
func entityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText converts snake_case identifiers into Title Case,
// e.g. "published_date" -> "Published Date".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}
