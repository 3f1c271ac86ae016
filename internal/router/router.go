package router

import (
	"github.com/Pranav210905/fin/internal/handlers"
	"github.com/Pranav210905/fin/internal/identity"
	"github.com/Pranav210905/fin/internal/middleware"
	"github.com/Pranav210905/fin/internal/repositories"
	"github.com/Pranav210905/fin/internal/session"
	"github.com/Pranav210905/fin/internal/store"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Dependencies are the services the HTTP surface is built on.
type Dependencies struct {
	Store       *store.Store
	Sessions    *session.Registry
	Profiles    repositories.ProfileRepository
	Credentials repositories.CredentialRepository
	Tokens      *identity.Tokens
	Verifier    identity.Verifier
	Logger      *zap.Logger
	PrefersDark bool
	// MockSignIn enables sign-in by user id for seeded development data.
	MockSignIn bool
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, d Dependencies) {
	e.GET("/health", handlers.HealthCheck)

	// --- Unprotected routes for authentication ---
	authHandler := handlers.NewAuthHandler(d.Profiles, d.Credentials, d.Sessions, d.Tokens, d.Verifier, d.Logger)
	authGroup := e.Group("/api/v1/auth")
	authHandler.RegisterAuthRoutes(authGroup)
	if d.MockSignIn {
		authHandler.RegisterMockSignInRoute(authGroup)
		d.Logger.Warn("Mock sign-in enabled")
	}
	d.Logger.Debug("Auth routes configured")

	// --- Protected routes (require a live session) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(d.Tokens, d.Sessions))

	authHandler.RegisterSessionRoutes(api)
	handlers.NewUserHandler(d.Store).RegisterProfileRoutes(api)
	handlers.NewPostHandler(d.Store).RegisterPostRoutes(api)
	handlers.NewFeedHandler(d.Store).RegisterFeedRoutes(api)
	handlers.NewFollowHandler(d.Store).RegisterFollowRoutes(api)
	handlers.NewCommentHandler(d.Store).RegisterCommentRoutes(api)
	handlers.NewLikeHandler(d.Store).RegisterLikeRoutes(api)
	handlers.NewSavedPostHandler(d.Store).RegisterSavedPostRoutes(api)
	handlers.NewPreferencesHandler().RegisterPreferenceRoutes(api)
	d.Logger.Debug("API routes configured")

	// --- Client page routes, session optional ---
	pages := handlers.NewPageHandler(d.Store, d.PrefersDark)
	pages.RegisterPageRoutes(e, middleware.OptionalSession(d.Tokens, d.Sessions))

	d.Logger.Info("All routes configured")
}
