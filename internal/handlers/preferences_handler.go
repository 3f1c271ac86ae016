package handlers

import (
	"net/http"

	"github.com/Pranav210905/fin/internal/models"
	"github.com/labstack/echo/v4"
)

// PreferencesHandler reads and switches the session theme
type PreferencesHandler struct{}

func NewPreferencesHandler() *PreferencesHandler {
	return &PreferencesHandler{}
}

func (h *PreferencesHandler) RegisterPreferenceRoutes(g *echo.Group) {
	g.GET("/preferences/theme", h.GetTheme)
	g.PUT("/preferences/theme", h.SetTheme)
}

type ThemeResponse struct {
	Theme models.Theme `json:"theme"`
	Dark  bool         `json:"dark"`
}

func (h *PreferencesHandler) GetTheme(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ThemeResponse{Theme: s.Theme(), Dark: s.Dark()})
}

func (h *PreferencesHandler) SetTheme(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	var req models.ThemeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := s.SetTheme(c.Request().Context(), req.Theme); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ThemeResponse{Theme: s.Theme(), Dark: s.Dark()})
}
