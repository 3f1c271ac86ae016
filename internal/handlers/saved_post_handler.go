package handlers

import (
	"net/http"

	"github.com/Pranav210905/fin/internal/store"
	"github.com/Pranav210905/fin/internal/views"
	"github.com/labstack/echo/v4"
)

// SavedPostHandler handles bookmarks
type SavedPostHandler struct {
	store *store.Store
}

func NewSavedPostHandler(st *store.Store) *SavedPostHandler {
	return &SavedPostHandler{store: st}
}

func (h *SavedPostHandler) RegisterSavedPostRoutes(g *echo.Group) {
	g.POST("/posts/:id/bookmark", h.ToggleBookmark)
	g.GET("/bookmarks", h.GetBookmarks)
}

func (h *SavedPostHandler) ToggleBookmark(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	post, err := s.ToggleBookmark(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, presentOne(h.store.Snapshot(), post, s.UserID()))
}

// GetBookmarks lists the session user's bookmarked posts.
func (h *SavedPostHandler) GetBookmarks(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	snap := h.store.Snapshot()
	return c.JSON(http.StatusOK, present(snap, views.ProfileBookmarks(snap.Posts, s.UserID()), s.UserID()))
}
