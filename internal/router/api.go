package router

import (
	"net/http"

	"collection-catalog/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes registers the entity CRUD routes. Every resource
// follows the same shape: list and create on the collection, get,
// update, and delete on /:id. Creates answer 201, deletes answer 200
// with an acknowledgment body.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	users := r.Group("/users")
	users.GET("", handler.Handle(h.Users.List, http.StatusOK))
	users.GET("/:id", handler.Handle(h.Users.Get, http.StatusOK))
	users.POST("", handler.Handle(h.Users.Create, http.StatusCreated))
	users.PUT("/:id", handler.Handle(h.Users.Update, http.StatusOK))
	users.DELETE("/:id", handler.Handle(h.Users.Delete, http.StatusOK))

	books := r.Group("/books")
	books.GET("", handler.Handle(h.Books.List, http.StatusOK))
	books.GET("/:id", handler.Handle(h.Books.Get, http.StatusOK))
	books.POST("", handler.Handle(h.Books.Create, http.StatusCreated))
	books.PUT("/:id", handler.Handle(h.Books.Update, http.StatusOK))
	books.DELETE("/:id", handler.Handle(h.Books.Delete, http.StatusOK))

	movies := r.Group("/movies")
	movies.GET("", handler.Handle(h.Movies.List, http.StatusOK))
	movies.GET("/:id", handler.Handle(h.Movies.Get, http.StatusOK))
	movies.POST("", handler.Handle(h.Movies.Create, http.StatusCreated))
	movies.PUT("/:id", handler.Handle(h.Movies.Update, http.StatusOK))
	movies.DELETE("/:id", handler.Handle(h.Movies.Delete, http.StatusOK))

	boardGames := r.Group("/board_games")
	boardGames.GET("", handler.Handle(h.BoardGames.List, http.StatusOK))
	boardGames.GET("/:id", handler.Handle(h.BoardGames.Get, http.StatusOK))
	boardGames.POST("", handler.Handle(h.BoardGames.Create, http.StatusCreated))
	boardGames.PUT("/:id", handler.Handle(h.BoardGames.Update, http.StatusOK))
	boardGames.DELETE("/:id", handler.Handle(h.BoardGames.Delete, http.StatusOK))

	comics := r.Group("/comics")
	comics.GET("", handler.Handle(h.Comics.List, http.StatusOK))
	comics.GET("/:id", handler.Handle(h.Comics.Get, http.StatusOK))
	comics.POST("", handler.Handle(h.Comics.Create, http.StatusCreated))
	comics.PUT("/:id", handler.Handle(h.Comics.Update, http.StatusOK))
	comics.DELETE("/:id", handler.Handle(h.Comics.Delete, http.StatusOK))
}
