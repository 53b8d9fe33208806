// Package service contains the business logic.
//
// It sits between the handler and repository layers. Each entity has a
// service enforcing the same protocol: natural-key uniqueness and owner
// existence are pre-checked before any write so clients get a specific
// Conflict message, missing rows surface as NotFound, and updates merge
// only the fields present in the payload onto the stored row.
//
// The pre-checks are a courtesy, not a correctness mechanism: two
// concurrent creates can both pass them and race at commit, where the
// store's unique constraint decides and sqlerr maps the loser onto the
// same Conflict response.
package service

import (
	"context"

	"collection-catalog/internal/errs"
	"collection-catalog/internal/repository"
	"collection-catalog/internal/validation"
)

// ListRequest is the (empty) payload for list endpoints.
type ListRequest struct{}

func (r *ListRequest) Validate() error { return nil }

// IDRequest is the payload for endpoints addressed purely by identity.
// A non-numeric path id fails binding; an id that resolves to no row is
// the caller's NotFound, never a validation error.
type IDRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *IDRequest) Validate() error { return nil }

// MessageResponse is the acknowledgment body for delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// compile-time checks that the shared request types stay bindable
var (
	_ validation.Validatable = (*ListRequest)(nil)
	_ validation.Validatable = (*IDRequest)(nil)
)

// checkOwnerExists verifies that a supplied owner id references an
// existing user. A nil id means the item has no owner and passes.
func checkOwnerExists(ctx context.Context, users repository.Users, userID *int64) error {
	if userID == nil {
		return nil
	}
	owner, err := users.GetByID(ctx, *userID)
	if err != nil {
		return err
	}
	if owner == nil {
		return errs.NewBadRequestError("Specified user does not exist")
	}
	return nil
}

// ownerChanging reports whether the payload supplies an owner id that
// differs from the stored one; only then is the existence check re-run.
func ownerChanging(requested, current *int64) bool {
	if requested == nil {
		return false
	}
	return current == nil || *current != *requested
}
