package handlers

import (
	"net/http"

	"github.com/Pranav210905/fin/internal/models"
	"github.com/Pranav210905/fin/internal/store"
	"github.com/Pranav210905/fin/internal/views"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	store *store.Store
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(st *store.Store) *PostHandler {
	return &PostHandler{store: st}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.POST("/posts/:id/repost", h.ToggleRepost)
}

// CreatePost publishes a post as the session user. Hashtags are parsed
// from the text.
func (h *PostHandler) CreatePost(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}

	var req models.CreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := s.CreatePost(req.Text, req.Type, views.ParseHashtags(req.Text), req.GoalProgress)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, presentOne(h.store.Snapshot(), post, s.UserID()))
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	snap := h.store.Snapshot()
	post, ok := snap.Post(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return c.JSON(http.StatusOK, presentOne(snap, *post, viewerID(c)))
}

func (h *PostHandler) ToggleRepost(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	post, err := s.ToggleRepost(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, presentOne(h.store.Snapshot(), post, s.UserID()))
}

func presentOne(snap *store.Snapshot, post models.Post, viewerID string) models.PostView {
	return views.Present([]models.Post{post}, views.NewDirectory(snap.Users), viewerID)[0]
}

func present(snap *store.Snapshot, posts []models.Post, viewerID string) []models.PostView {
	return views.Present(posts, views.NewDirectory(snap.Users), viewerID)
}

func viewerID(c echo.Context) string {
	if s := viewer(c); s != nil {
		return s.UserID()
	}
	return ""
}
