package handlers

import (
	"net/http"

	"github.com/Pranav210905/fin/internal/models"
	"github.com/Pranav210905/fin/internal/store"
	"github.com/labstack/echo/v4"
)

// UserHandler serves user profiles
type UserHandler struct {
	store *store.Store
}

func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{store: st}
}

func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/users/:id", h.GetProfile)
}

// GetProfile returns a profile and one of its tabs, chosen by ?tab=.
func (h *UserHandler) GetProfile(c echo.Context) error {
	var me *models.User
	if s := viewer(c); s != nil {
		if u, ok := s.CurrentUser(); ok {
			me = &u
		}
	}
	page, err := profilePage(h.store.Snapshot(), c.Param("id"), c.QueryParam("tab"), me)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func toCompact(users []models.User) []models.UserCompact {
	out := make([]models.UserCompact, len(users))
	for i := range users {
		out[i] = users[i].ToCompact()
	}
	return out
}

// compactUsers resolves ids to users, skipping unknown ids.
func compactUsers(snap *store.Snapshot, ids []string) []models.UserCompact {
	out := make([]models.UserCompact, 0, len(ids))
	for _, id := range ids {
		if u, ok := snap.User(id); ok {
			out = append(out, u.ToCompact())
		}
	}
	return out
}
