package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"collection-catalog/internal/errs"
	"collection-catalog/internal/model"
	"collection-catalog/internal/repository"
	"github.com/stretchr/testify/require"
)

// -------- test fakes --------
//
// In-memory repositories backed by maps. Embedding the interface means
// only the methods a test exercises need to exist; calling anything
// else panics, which is the failure we want.

func ptr[T any](v T) *T { return &v }

var testCreatedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func requireHTTPError(t *testing.T, err error, status int, detail string) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, status, httpErr.Status)
	require.Equal(t, detail, httpErr.Detail)
}

type fakeUsers struct {
	repository.Users
	rows     map[int64]model.User
	nextID   int64
	getCalls int
}

func newFakeUsers(seed ...model.User) *fakeUsers {
	f := &fakeUsers{rows: make(map[int64]model.User)}
	for _, u := range seed {
		f.rows[u.ID] = u
		if u.ID > f.nextID {
			f.nextID = u.ID
		}
	}
	return f
}

func (f *fakeUsers) List(ctx context.Context) ([]model.User, error) {
	ids := make([]int64, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]model.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.rows[id])
	}
	return out, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id int64) (*model.User, error) {
	f.getCalls++
	u, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUsers) UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error) {
	for _, u := range f.rows {
		if u.Username == username && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	for _, u := range f.rows {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) Insert(ctx context.Context, u *model.User) error {
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = testCreatedAt
	f.rows[u.ID] = *u
	return nil
}

func (f *fakeUsers) Update(ctx context.Context, u *model.User) error {
	f.rows[u.ID] = *u
	return nil
}

func (f *fakeUsers) Delete(ctx context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

type fakeBooks struct {
	repository.Books
	rows   map[int64]model.Book
	nextID int64
}

func newFakeBooks(seed ...model.Book) *fakeBooks {
	f := &fakeBooks{rows: make(map[int64]model.Book)}
	for _, b := range seed {
		f.rows[b.ID] = b
		if b.ID > f.nextID {
			f.nextID = b.ID
		}
	}
	return f
}

func (f *fakeBooks) List(ctx context.Context) ([]model.Book, error) {
	ids := make([]int64, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]model.Book, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.rows[id])
	}
	return out, nil
}

func (f *fakeBooks) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	b, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (f *fakeBooks) TitleTaken(ctx context.Context, title string, excludeID int64) (bool, error) {
	for _, b := range f.rows {
		if b.Title == title && b.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBooks) Insert(ctx context.Context, b *model.Book) error {
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = testCreatedAt
	f.rows[b.ID] = *b
	return nil
}

func (f *fakeBooks) Update(ctx context.Context, b *model.Book) error {
	f.rows[b.ID] = *b
	return nil
}

func (f *fakeBooks) Delete(ctx context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

type fakeMovies struct {
	repository.Movies
	rows   map[int64]model.Movie
	nextID int64
}

func newFakeMovies(seed ...model.Movie) *fakeMovies {
	f := &fakeMovies{rows: make(map[int64]model.Movie)}
	for _, m := range seed {
		f.rows[m.ID] = m
		if m.ID > f.nextID {
			f.nextID = m.ID
		}
	}
	return f
}

func (f *fakeMovies) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	m, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (f *fakeMovies) TitleTaken(ctx context.Context, title string, excludeID int64) (bool, error) {
	for _, m := range f.rows {
		if m.Title == title && m.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMovies) Insert(ctx context.Context, m *model.Movie) error {
	f.nextID++
	m.ID = f.nextID
	m.CreatedAt = testCreatedAt
	f.rows[m.ID] = *m
	return nil
}

func (f *fakeMovies) Update(ctx context.Context, m *model.Movie) error {
	f.rows[m.ID] = *m
	return nil
}

func (f *fakeMovies) Delete(ctx context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

type fakeBoardGames struct {
	repository.BoardGames
	rows   map[int64]model.BoardGame
	nextID int64
}

func newFakeBoardGames(seed ...model.BoardGame) *fakeBoardGames {
	f := &fakeBoardGames{rows: make(map[int64]model.BoardGame)}
	for _, g := range seed {
		f.rows[g.ID] = g
		if g.ID > f.nextID {
			f.nextID = g.ID
		}
	}
	return f
}

func (f *fakeBoardGames) GetByID(ctx context.Context, id int64) (*model.BoardGame, error) {
	g, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (f *fakeBoardGames) TitleTaken(ctx context.Context, title string, excludeID int64) (bool, error) {
	for _, g := range f.rows {
		if g.Title == title && g.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBoardGames) Insert(ctx context.Context, g *model.BoardGame) error {
	f.nextID++
	g.ID = f.nextID
	g.CreatedAt = testCreatedAt
	f.rows[g.ID] = *g
	return nil
}

func (f *fakeBoardGames) Update(ctx context.Context, g *model.BoardGame) error {
	f.rows[g.ID] = *g
	return nil
}

func (f *fakeBoardGames) Delete(ctx context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

type fakeComics struct {
	repository.Comics
	rows   map[int64]model.Comic
	nextID int64
}

func newFakeComics(seed ...model.Comic) *fakeComics {
	f := &fakeComics{rows: make(map[int64]model.Comic)}
	for _, c := range seed {
		f.rows[c.ID] = c
		if c.ID > f.nextID {
			f.nextID = c.ID
		}
	}
	return f
}

func (f *fakeComics) GetByID(ctx context.Context, id int64) (*model.Comic, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeComics) TitleTaken(ctx context.Context, title string, excludeID int64) (bool, error) {
	for _, c := range f.rows {
		if c.Title == title && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeComics) Insert(ctx context.Context, c *model.Comic) error {
	f.nextID++
	c.ID = f.nextID
	c.CreatedAt = testCreatedAt
	f.rows[c.ID] = *c
	return nil
}

func (f *fakeComics) Update(ctx context.Context, c *model.Comic) error {
	f.rows[c.ID] = *c
	return nil
}

func (f *fakeComics) Delete(ctx context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

// -------- shared helpers --------

func TestOwnerChanging(t *testing.T) {
	tests := []struct {
		name      string
		requested *int64
		current   *int64
		want      bool
	}{
		{"nil requested never changes", nil, ptr(int64(1)), false},
		{"setting owner on ownerless item", ptr(int64(1)), nil, true},
		{"same owner is unchanged", ptr(int64(1)), ptr(int64(1)), false},
		{"different owner changes", ptr(int64(2)), ptr(int64(1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ownerChanging(tt.requested, tt.current))
		})
	}
}

func TestCheckOwnerExists(t *testing.T) {
	users := newFakeUsers(model.User{ID: 7, Username: "owner"})

	require.NoError(t, checkOwnerExists(context.Background(), users, nil))
	require.NoError(t, checkOwnerExists(context.Background(), users, ptr(int64(7))))

	err := checkOwnerExists(context.Background(), users, ptr(int64(99)))
	requireHTTPError(t, err, 400, "Specified user does not exist")
}
