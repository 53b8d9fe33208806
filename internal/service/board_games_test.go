package service

import (
	"context"
	"net/http"
	"testing"

	"collection-catalog/internal/model"
	"github.com/stretchr/testify/require"
)

// Board games are exposed to clients as "Game" in every message, and
// carry no rating.

func seedBoardGame() model.BoardGame {
	return model.BoardGame{
		ID:          1,
		Title:       "Terraforming Mars",
		Designer:    "Jacob Fryxelius",
		Genre:       "Strategy",
		ReleaseDate: "2016-01-01",
	}
}

func TestBoardGameService_Create_TitleTaken(t *testing.T) {
	games := newFakeBoardGames(seedBoardGame())
	svc := NewBoardGameService(games, newFakeUsers())

	_, err := svc.Create(context.Background(), &CreateBoardGameRequest{
		Title:       "Terraforming Mars",
		Designer:    "Someone Else",
		Genre:       "Strategy",
		ReleaseDate: "2020-01-01",
	})
	requireHTTPError(t, err, http.StatusBadRequest, "Game with this title already exists")
}

func TestBoardGameService_Create_MissingOwner(t *testing.T) {
	games := newFakeBoardGames()
	svc := NewBoardGameService(games, newFakeUsers())

	_, err := svc.Create(context.Background(), &CreateBoardGameRequest{
		Title:       "Terraforming Mars",
		Designer:    "Jacob Fryxelius",
		Genre:       "Strategy",
		ReleaseDate: "2016-01-01",
		UserID:      ptr(int64(99)),
	})
	requireHTTPError(t, err, http.StatusBadRequest, "Specified user does not exist")
	require.Empty(t, games.rows)
}

func TestBoardGameService_Get_NotFound(t *testing.T) {
	svc := NewBoardGameService(newFakeBoardGames(), newFakeUsers())

	_, err := svc.Get(context.Background(), 42)
	requireHTTPError(t, err, http.StatusNotFound, "Game not found")
}

func TestBoardGameService_Update_PartialPatch(t *testing.T) {
	games := newFakeBoardGames(seedBoardGame())
	svc := NewBoardGameService(games, newFakeUsers())

	updated, err := svc.Update(context.Background(), &UpdateBoardGameRequest{
		ID:       1,
		Designer: ptr("J. Fryxelius"),
	})
	require.NoError(t, err)

	require.Equal(t, "J. Fryxelius", updated.Designer)
	require.Equal(t, "Terraforming Mars", updated.Title)
	require.Equal(t, "2016-01-01", updated.ReleaseDate)
}

func TestBoardGameService_Delete(t *testing.T) {
	games := newFakeBoardGames(seedBoardGame())
	svc := NewBoardGameService(games, newFakeUsers())

	res, err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Game deleted successfully", res.Message)

	_, err = svc.Delete(context.Background(), 1)
	requireHTTPError(t, err, http.StatusNotFound, "Game not found")
}
