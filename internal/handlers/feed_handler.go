package handlers

import (
	"net/http"
	"strconv"

	"github.com/Pranav210905/fin/internal/store"
	"github.com/Pranav210905/fin/internal/views"
	"github.com/labstack/echo/v4"
)

const (
	panelTrendingLimit   = 5
	exploreTrendingLimit = 10
	suggestedLimit       = 3
)

// FeedHandler serves the home feed and trending hashtags
type FeedHandler struct {
	store *store.Store
}

func NewFeedHandler(st *store.Store) *FeedHandler {
	return &FeedHandler{store: st}
}

func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
	g.GET("/trending", h.GetTrending)
	g.GET("/explore", h.GetExplore)
}

// GetFeed returns every post, with posts by the session user and the users
// they follow first.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	u, ok := s.CurrentUser()
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not signed in")
	}
	snap := h.store.Snapshot()
	return c.JSON(http.StatusOK, present(snap, views.Feed(snap.Posts, &u), u.ID))
}

// GetTrending returns the most used hashtags. limit defaults to 5.
func (h *FeedHandler) GetTrending(c echo.Context) error {
	limit := panelTrendingLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}
	return c.JSON(http.StatusOK, views.TrendingHashtags(h.store.Snapshot().Posts, limit))
}

func (h *FeedHandler) GetExplore(c echo.Context) error {
	page, err := explorePage(h.store.Snapshot(), c.QueryParam("tab"), viewerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}
