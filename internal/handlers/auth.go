package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Pranav210905/fin/internal/identity"
	"github.com/Pranav210905/fin/internal/middleware"
	"github.com/Pranav210905/fin/internal/models"
	"github.com/Pranav210905/fin/internal/repositories"
	"github.com/Pranav210905/fin/internal/session"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	profiles    repositories.ProfileRepository
	credentials repositories.CredentialRepository
	sessions    *session.Registry
	tokens      *identity.Tokens
	verifier    identity.Verifier
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(
	profiles repositories.ProfileRepository,
	credentials repositories.CredentialRepository,
	sessions *session.Registry,
	tokens *identity.Tokens,
	verifier identity.Verifier,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		profiles:    profiles,
		credentials: credentials,
		sessions:    sessions,
		tokens:      tokens,
		verifier:    verifier,
		logger:      logger,
	}
}

// AuthResponse is returned by every successful sign-in.
type AuthResponse struct {
	Token     string       `json:"token"`
	SessionID string       `json:"sessionId"`
	User      models.User  `json:"user"`
	Theme     models.Theme `json:"theme"`
}

// RegisterAuthRoutes registers the public authentication routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/signin", h.SignIn)
	g.POST("/firebase-login", h.FirebaseLogin, middleware.FirebaseAuthMiddleware(h.verifier))
}

// RegisterMockSignInRoute exposes sign-in by user id for development builds
// where seeded users have no credentials.
func (h *AuthHandler) RegisterMockSignInRoute(g *echo.Group) {
	g.POST("/mock-signin", h.MockSignIn)
}

// RegisterSessionRoutes registers routes that need a live session
func (h *AuthHandler) RegisterSessionRoutes(g *echo.Group) {
	g.POST("/auth/signout", h.SignOut)
	g.GET("/session", h.GetSession)
}

// Signup creates a local account and its profile document, then signs in.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	profile := &models.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Username:  req.Username,
		Avatar:    req.Avatar,
		Bio:       req.Bio,
		JoinedAt:  time.Now().UTC(),
		Followers: []string{},
		Following: []string{},
		Badges:    []string{},
	}

	cred := &models.Credential{
		UserID:       profile.ID,
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		CreatedAt:    profile.JoinedAt,
	}
	if err := h.credentials.CreateCredential(ctx, cred); err != nil {
		return httpError(err)
	}
	if err := h.profiles.SaveProfile(ctx, profile); err != nil {
		h.logger.Error("Failed to save profile", zap.String("user", profile.ID), zap.Error(err))
		if derr := h.credentials.DeleteCredential(ctx, cred.Username); derr != nil {
			h.logger.Error("Failed to roll back credential", zap.String("username", cred.Username), zap.Error(derr))
		}
		return httpError(err)
	}

	return h.open(c, http.StatusCreated, profile.ID)
}

// SignIn authenticates a local account by username and password.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SigninRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cred, err := h.credentials.GetCredentialByUsername(c.Request().Context(), req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrCredentialNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid username or password")
		}
		return httpError(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid username or password")
	}

	return h.open(c, http.StatusOK, cred.UserID)
}

// FirebaseLogin signs in the principal of a verified Firebase ID token. The
// principal must already have a profile document.
func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	return h.open(c, http.StatusOK, middleware.FirebaseUID(c))
}

// MockSignIn signs in a user already in the store without any credential.
func (h *AuthHandler) MockSignIn(c echo.Context) error {
	var req models.MockSigninRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	s, err := h.sessions.OpenAs(c.Request().Context(), req.UserID)
	if err != nil {
		return httpError(err)
	}
	h.logger.Warn("Mock sign-in", zap.String("user", req.UserID), zap.String("session", s.ID))
	return h.respond(c, http.StatusOK, s)
}

func (h *AuthHandler) open(c echo.Context, status int, principal string) error {
	s, err := h.sessions.Open(c.Request().Context(), principal)
	if err != nil {
		return httpError(err)
	}
	return h.respond(c, status, s)
}

func (h *AuthHandler) respond(c echo.Context, status int, s *session.Session) error {
	user, _ := s.CurrentUser()

	token, err := h.tokens.Issue(user.ID, s.ID)
	if err != nil {
		_ = h.sessions.Close(s.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(status, AuthResponse{Token: token, SessionID: s.ID, User: user, Theme: s.Theme()})
}

func (h *AuthHandler) SignOut(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	if err := h.sessions.Close(s.ID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SessionResponse describes the signed-in session.
type SessionResponse struct {
	SessionID string       `json:"sessionId"`
	User      models.User  `json:"user"`
	Theme     models.Theme `json:"theme"`
	Dark      bool         `json:"dark"`
}

func (h *AuthHandler) GetSession(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	user, ok := s.CurrentUser()
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not signed in")
	}
	return c.JSON(http.StatusOK, SessionResponse{SessionID: s.ID, User: user, Theme: s.Theme(), Dark: s.Dark()})
}
