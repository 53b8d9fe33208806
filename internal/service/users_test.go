package service

import (
	"context"
	"net/http"
	"testing"

	"collection-catalog/internal/crypto"
	"collection-catalog/internal/model"
	"github.com/stretchr/testify/require"
)

func seedUser() model.User {
	return model.User{
		ID:       1,
		Name:     "Alice Example",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "$2a$10$existinghash",
		Role:     "user",
	}
}

func TestUserService_Create(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users)

	created, err := svc.Create(context.Background(), &CreateUserRequest{
		Name:     "Bob Example",
		Username: "bob",
		Email:    "bob@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	require.NotZero(t, created.ID)
	require.Equal(t, "user", created.Role, "role defaults when omitted")
	require.NotEqual(t, "s3cret", created.Password, "password must be stored hashed")
	require.True(t, crypto.CheckPassword(created.Password, "s3cret"))
}

func TestUserService_Create_ExplicitRole(t *testing.T) {
	svc := NewUserService(newFakeUsers())

	created, err := svc.Create(context.Background(), &CreateUserRequest{
		Name:     "Bob Example",
		Username: "bob",
		Email:    "bob@example.com",
		Password: "s3cret",
		Role:     "admin",
	})
	require.NoError(t, err)
	require.Equal(t, "admin", created.Role)
}

func TestUserService_Create_Conflicts(t *testing.T) {
	users := newFakeUsers(seedUser())
	svc := NewUserService(users)

	_, err := svc.Create(context.Background(), &CreateUserRequest{
		Name:     "Other",
		Username: "alice",
		Email:    "new@example.com",
		Password: "pw",
	})
	requireHTTPError(t, err, http.StatusBadRequest, "Username already taken")

	_, err = svc.Create(context.Background(), &CreateUserRequest{
		Name:     "Other",
		Username: "newname",
		Email:    "alice@example.com",
		Password: "pw",
	})
	requireHTTPError(t, err, http.StatusBadRequest, "Email already registered")

	require.Len(t, users.rows, 1, "failed creates must not persist")
}

func TestUserService_Get(t *testing.T) {
	svc := NewUserService(newFakeUsers(seedUser()))

	user, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)

	_, err = svc.Get(context.Background(), 42)
	requireHTTPError(t, err, http.StatusNotFound, "User not found")
}

func TestUserService_List(t *testing.T) {
	users := newFakeUsers(
		model.User{ID: 2, Username: "b"},
		model.User{ID: 1, Username: "a"},
	)
	svc := NewUserService(users)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, int64(1), list[0].ID, "listing is ordered by id")
}

func TestUserService_Update_PartialPatch(t *testing.T) {
	users := newFakeUsers(seedUser())
	svc := NewUserService(users)

	updated, err := svc.Update(context.Background(), &UpdateUserRequest{
		ID:   1,
		Name: ptr("Alice Renamed"),
	})
	require.NoError(t, err)

	require.Equal(t, "Alice Renamed", updated.Name)
	require.Equal(t, "alice", updated.Username, "absent fields stay untouched")
	require.Equal(t, "alice@example.com", updated.Email)
	require.Equal(t, "$2a$10$existinghash", updated.Password)
}

func TestUserService_Update_EmptyPayload(t *testing.T) {
	users := newFakeUsers(seedUser())
	svc := NewUserService(users)

	updated, err := svc.Update(context.Background(), &UpdateUserRequest{ID: 1})
	require.NoError(t, err)
	require.Equal(t, seedUser(), *updated)
}

func TestUserService_Update_SameValuesAllowed(t *testing.T) {
	// Re-submitting the row's own username and email must not conflict
	// with itself.
	users := newFakeUsers(seedUser())
	svc := NewUserService(users)

	_, err := svc.Update(context.Background(), &UpdateUserRequest{
		ID:       1,
		Username: ptr("alice"),
		Email:    ptr("alice@example.com"),
	})
	require.NoError(t, err)
}

func TestUserService_Update_Conflicts(t *testing.T) {
	users := newFakeUsers(
		seedUser(),
		model.User{ID: 2, Username: "bob", Email: "bob@example.com"},
	)
	svc := NewUserService(users)

	_, err := svc.Update(context.Background(), &UpdateUserRequest{
		ID:       1,
		Username: ptr("bob"),
	})
	requireHTTPError(t, err, http.StatusBadRequest, "Username already taken by another user")

	_, err = svc.Update(context.Background(), &UpdateUserRequest{
		ID:    1,
		Email: ptr("bob@example.com"),
	})
	requireHTTPError(t, err, http.StatusBadRequest, "Email already registered by another user")
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	users := newFakeUsers(seedUser())
	svc := NewUserService(users)

	updated, err := svc.Update(context.Background(), &UpdateUserRequest{
		ID:       1,
		Password: ptr("newsecret"),
	})
	require.NoError(t, err)

	require.NotEqual(t, "newsecret", updated.Password)
	require.True(t, crypto.CheckPassword(updated.Password, "newsecret"))
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUsers())

	_, err := svc.Update(context.Background(), &UpdateUserRequest{ID: 42, Name: ptr("x")})
	requireHTTPError(t, err, http.StatusNotFound, "User not found")
}

func TestUserService_Delete(t *testing.T) {
	users := newFakeUsers(seedUser())
	svc := NewUserService(users)

	res, err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "User deleted successfully", res.Message)
	require.Empty(t, users.rows)

	_, err = svc.Delete(context.Background(), 1)
	requireHTTPError(t, err, http.StatusNotFound, "User not found")
}
