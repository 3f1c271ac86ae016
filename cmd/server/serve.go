package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Pranav210905/fin/internal/events"
	"github.com/Pranav210905/fin/internal/identity"
	"github.com/Pranav210905/fin/internal/models"
	"github.com/Pranav210905/fin/internal/prefs"
	"github.com/Pranav210905/fin/internal/repositories"
	"github.com/Pranav210905/fin/internal/router"
	"github.com/Pranav210905/fin/internal/seed"
	"github.com/Pranav210905/fin/internal/session"
	"github.com/Pranav210905/fin/internal/store"
	"github.com/Pranav210905/fin/pkg/config"
	"github.com/Pranav210905/fin/pkg/firebase"
	"github.com/Pranav210905/fin/validators"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const tokenTTL = 72 * time.Hour

func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	initial := &store.Snapshot{}
	if cfg.Seed {
		initial = seed.Snapshot()
	}
	st := store.New(initial)

	// Initialize database connections
	db, err := config.InitDB(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.CloseDB()

	var fb *firebase.App
	var verifier identity.Verifier = identity.DisabledVerifier{}
	if cfg.FirebaseCredentialsPath != "" {
		fb, err = firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
		if err != nil {
			return err
		}
		verifier = identity.NewFirebaseVerifier(fb.AuthClient)
		log.Info("Firebase app and auth client initialized")
	} else {
		log.Warn("FIREBASE_CREDENTIALS_PATH not set, Firebase sign-in disabled")
	}

	profiles, credentials, closeProfiles, err := openProfiles(ctx, db, fb, initial.Users)
	if err != nil {
		return err
	}
	defer closeProfiles()

	prefStore, closePrefs, err := openPrefs(ctx)
	if err != nil {
		return err
	}
	defer closePrefs()

	if cfg.NatsURL != "" {
		nc, err := events.Connect(cfg.NatsURL, log)
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		defer nc.Close()
		bridge := events.NewBridge(nc, log, 0)
		defer bridge.Close()
		if err := bridge.Attach(st); err != nil {
			return err
		}
		log.Info("Publishing store events to NATS", zap.String("url", cfg.NatsURL))
	}

	sessions := session.NewRegistry(session.Deps{
		Store:       st,
		Profiles:    profiles,
		Prefs:       prefStore,
		Logger:      log,
		PrefersDark: cfg.PrefersDark,
	})
	defer sessions.CloseAll()

	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()
	config.SetupMiddleware(e, log)
	router.SetupRoutes(e, router.Dependencies{
		Store:       st,
		Sessions:    sessions,
		Profiles:    profiles,
		Credentials: credentials,
		Tokens:      identity.NewTokens(cfg.JWTSecret, tokenTTL),
		Verifier:    verifier,
		Logger:      log,
		PrefersDark: cfg.PrefersDark,
		MockSignIn:  cfg.IsDevelopment(),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// openProfiles builds the profile document store selected by
// PROFILE_BACKEND. When seeding, every seed user gets a profile document so
// seed principals can sign in.
func openProfiles(ctx context.Context, db *config.DB, fb *firebase.App, users []models.User) (repositories.ProfileRepository, repositories.CredentialRepository, func(), error) {
	var (
		profiles    repositories.ProfileRepository
		credentials = repositories.NewMemoryCredentialRepository()
		closer      io.Closer
	)

	switch cfg.ProfileBackend {
	case "memory":
		return repositories.NewMemoryProfileRepository(users...), credentials, func() {}, nil
	case "sqlite":
		repo, err := repositories.NewSQLiteProfileRepository(cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open SQLite profiles: %w", err)
		}
		profiles, closer = repo, repo
	case "postgres":
		if err := db.Postgres.AutoMigrate(&models.User{}, &models.Credential{}); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to auto migrate models: %w", err)
		}
		log.Info("PostgreSQL auto-migrations completed")
		profiles = repositories.NewPostgresProfileRepository(db.Postgres)
		credentials = repositories.NewPostgresCredentialRepository(db.Postgres)
	case "mongo":
		profiles = repositories.NewMongoProfileRepository(db.Mongo.Database(cfg.MongoDB))
	case "firestore":
		if fb == nil {
			return nil, nil, nil, errors.New("firestore profiles need FIREBASE_CREDENTIALS_PATH")
		}
		client, err := fb.Firestore(ctx)
		if err != nil {
			return nil, nil, nil, err
		}
		profiles, closer = repositories.NewFirestoreProfileRepository(client), client
	}

	closeFn := func() {
		if closer != nil {
			if err := closer.Close(); err != nil {
				log.Error("Error closing profile store", zap.Error(err))
			}
		}
	}

	for i := range users {
		if err := profiles.SaveProfile(ctx, &users[i]); err != nil {
			closeFn()
			return nil, nil, nil, fmt.Errorf("failed to seed profile %s: %w", users[i].ID, err)
		}
	}
	log.Info("Profile store ready", zap.String("backend", cfg.ProfileBackend), zap.Int("seeded", len(users)))
	return profiles, credentials, closeFn, nil
}

func openPrefs(ctx context.Context) (prefs.Store, func(), error) {
	if cfg.PrefsBackend != "redis" {
		return prefs.NewMemory(), func() {}, nil
	}
	r, err := prefs.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Info("Successfully connected to Redis", zap.String("addr", cfg.RedisAddr))
	return r, func() {
		if err := r.Close(); err != nil {
			log.Error("Error closing Redis connection", zap.Error(err))
		}
	}, nil
}
