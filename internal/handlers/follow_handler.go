package handlers

import (
	"net/http"

	"github.com/Pranav210905/fin/internal/store"
	"github.com/Pranav210905/fin/internal/views"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles the follow graph
type FollowHandler struct {
	store *store.Store
}

func NewFollowHandler(st *store.Store) *FollowHandler {
	return &FollowHandler{store: st}
}

func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.Follow)
	g.DELETE("/users/:id/follow", h.Unfollow)
	g.GET("/users/:id/followers", h.GetFollowers)
	g.GET("/users/:id/following", h.GetFollowing)
	g.GET("/users/suggested", h.GetSuggested)
}

// FollowResponse reports the follow state after a change.
type FollowResponse struct {
	UserID         string `json:"userId"`
	Following      bool   `json:"following"`
	FollowersCount int    `json:"followersCount"`
}

func (h *FollowHandler) Follow(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	target := c.Param("id")
	if err := s.Follow(target); err != nil {
		return httpError(err)
	}
	return h.respond(c, target, true)
}

func (h *FollowHandler) Unfollow(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	target := c.Param("id")
	if err := s.Unfollow(target); err != nil {
		return httpError(err)
	}
	return h.respond(c, target, false)
}

func (h *FollowHandler) respond(c echo.Context, targetID string, following bool) error {
	u, ok := h.store.User(targetID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, FollowResponse{UserID: targetID, Following: following, FollowersCount: len(u.Followers)})
}

func (h *FollowHandler) GetFollowers(c echo.Context) error {
	snap := h.store.Snapshot()
	u, ok := snap.User(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, compactUsers(snap, u.Followers))
}

func (h *FollowHandler) GetFollowing(c echo.Context) error {
	snap := h.store.Snapshot()
	u, ok := snap.User(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, compactUsers(snap, u.Following))
}

// GetSuggested lists up to three users the session user does not follow.
func (h *FollowHandler) GetSuggested(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	u, _ := s.CurrentUser()
	snap := h.store.Snapshot()
	return c.JSON(http.StatusOK, toCompact(views.SuggestedUsers(snap.Users, &u, suggestedLimit)))
}
