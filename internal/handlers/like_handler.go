package handlers

import (
	"net/http"

	"github.com/Pranav210905/fin/internal/store"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles liking and unliking posts
type LikeHandler struct {
	store *store.Store
}

func NewLikeHandler(st *store.Store) *LikeHandler {
	return &LikeHandler{store: st}
}

func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.ToggleLike)
	g.GET("/posts/:id/likes", h.GetLikes)
}

// ToggleLike likes the post, or removes the like if the session user
// already liked it.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	post, err := s.ToggleLike(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, presentOne(h.store.Snapshot(), post, s.UserID()))
}

// GetLikes lists the users who liked a post.
func (h *LikeHandler) GetLikes(c echo.Context) error {
	snap := h.store.Snapshot()
	post, ok := snap.Post(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return c.JSON(http.StatusOK, compactUsers(snap, post.Likes))
}
