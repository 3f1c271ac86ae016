package handlers

import (
	"net/http"

	"github.com/Pranav210905/fin/internal/models"
	"github.com/Pranav210905/fin/internal/store"
	"github.com/Pranav210905/fin/internal/views"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	store *store.Store
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(st *store.Store) *CommentHandler {
	return &CommentHandler{store: st}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:id/comments", h.CreateComment)
	g.GET("/posts/:id/comments", h.GetComments)
}

func (h *CommentHandler) CreateComment(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := s.AddComment(c.Param("id"), req.Text)
	if err != nil {
		return httpError(err)
	}
	snap := h.store.Snapshot()
	return c.JSON(http.StatusCreated, views.PresentComments([]models.Comment{comment}, views.NewDirectory(snap.Users))[0])
}

// GetComments lists a post's comments, newest first.
func (h *CommentHandler) GetComments(c echo.Context) error {
	snap := h.store.Snapshot()
	post, ok := snap.Post(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	comments := views.PostComments(snap.Comments, post)
	return c.JSON(http.StatusOK, views.PresentComments(comments, views.NewDirectory(snap.Users)))
}
