// Package session tracks who is signed in on a client and which theme it
// uses, and performs store mutations on that user's behalf.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Pranav210905/fin/internal/identity"
	"github.com/Pranav210905/fin/internal/models"
	"github.com/Pranav210905/fin/internal/prefs"
	"github.com/Pranav210905/fin/internal/repositories"
	"github.com/Pranav210905/fin/internal/store"
	"go.uber.org/zap"
)

var ErrInvalidTheme = errors.New("theme must be light or dark")

// Deps are the collaborators shared by every session.
type Deps struct {
	Store    *store.Store
	Profiles repositories.ProfileRepository
	Prefs    prefs.Store
	Logger   *zap.Logger
	// PrefersDark is the OS-level fallback used before a theme is stored.
	PrefersDark bool
}

type Session struct {
	ID string

	deps Deps
	log  *zap.Logger

	mu      sync.RWMutex
	current *models.User
	theme   models.Theme
	authErr error
}

// New creates a signed-out session and resolves its starting theme.
func New(ctx context.Context, id string, deps Deps) *Session {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Prefs == nil {
		deps.Prefs = prefs.NewMemory()
	}
	s := &Session{
		ID:   id,
		deps: deps,
		log:  deps.Logger.With(zap.String("session", id)),
	}
	s.theme = s.loadTheme(ctx, s.anonymousOwner())
	return s
}

// loadTheme reads the stored theme for owner, falling back to the OS
// preference.
func (s *Session) loadTheme(ctx context.Context, owner string) models.Theme {
	v, err := prefs.Scoped(s.deps.Prefs, owner).Get(ctx, prefs.ThemeKey)
	if err == nil && models.Theme(v).Valid() {
		return models.Theme(v)
	}
	if err != nil && !errors.Is(err, prefs.ErrNotSet) {
		s.log.Warn("Failed to read theme preference", zap.Error(err))
	}
	if s.deps.PrefersDark {
		return models.ThemeDark
	}
	return models.ThemeLight
}

// anonymousOwner scopes preferences set before anyone signs in.
func (s *Session) anonymousOwner() string {
	return "session-" + s.ID
}

// SignIn signs in a user already present in the store.
func (s *Session) SignIn(ctx context.Context, userID string) error {
	u, ok := s.deps.Store.User(userID)
	if !ok {
		s.setCurrent(nil)
		return store.ErrUserNotFound
	}
	s.signedIn(ctx, u)
	return nil
}

func (s *Session) SignOut() {
	s.setCurrent(nil)
}

// HandleAuthState applies an identity-provider state change. An empty
// principal signs out. Otherwise the profile document is fetched once and
// mirrored into the store; if there is none the session stays signed out.
func (s *Session) HandleAuthState(ctx context.Context, principal string) error {
	if principal == "" {
		s.SignOut()
		s.setAuthErr(nil)
		return nil
	}

	profile, err := s.deps.Profiles.GetProfile(ctx, principal)
	if err != nil {
		s.setCurrent(nil)
		if errors.Is(err, repositories.ErrProfileNotFound) {
			s.log.Warn("Signed-in principal has no profile document", zap.String("principal", principal))
		} else {
			s.log.Error("Failed to fetch profile", zap.String("principal", principal), zap.Error(err))
			err = fmt.Errorf("fetch profile %s: %w", principal, err)
		}
		s.setAuthErr(err)
		return err
	}

	u, err := s.deps.Store.UpsertUser(*profile)
	if err != nil {
		s.setCurrent(nil)
		s.setAuthErr(err)
		return err
	}
	s.signedIn(ctx, u)
	s.setAuthErr(nil)
	return nil
}

// Watch subscribes to auth-state changes addressed to this session. The
// returned function stops watching.
func (s *Session) Watch(ctx context.Context, n identity.Notifier) (stop func()) {
	ctx = context.WithoutCancel(ctx)
	return n.Subscribe(func(state identity.AuthState) {
		if state.SessionID != s.ID {
			return
		}
		_ = s.HandleAuthState(ctx, state.Principal)
	})
}

// Err reports the outcome of the most recent auth-state change.
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authErr
}

func (s *Session) setAuthErr(err error) {
	s.mu.Lock()
	s.authErr = err
	s.mu.Unlock()
}

func (s *Session) signedIn(ctx context.Context, u models.User) {
	theme := s.loadTheme(ctx, u.ID)
	s.mu.Lock()
	s.current = &u
	s.theme = theme
	s.mu.Unlock()
	s.log.Info("User signed in", zap.String("user", u.ID))
}

func (s *Session) setCurrent(u *models.User) {
	s.mu.Lock()
	s.current = u
	s.mu.Unlock()
}

// CurrentUser returns the signed-in user as the store currently has it.
func (s *Session) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	cur := s.current
	s.mu.RUnlock()
	if cur == nil {
		return models.User{}, false
	}
	if u, ok := s.deps.Store.User(cur.ID); ok {
		return u, true
	}
	return cur.Clone(), true
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.ID
}

func (s *Session) Theme() models.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Dark reports whether dark presentation is active.
func (s *Session) Dark() bool {
	return s.Theme() == models.ThemeDark
}

// SetTheme switches the theme and persists it for the signed-in user, or
// for this session when signed out.
func (s *Session) SetTheme(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return ErrInvalidTheme
	}
	owner := s.UserID()
	if owner == "" {
		owner = s.anonymousOwner()
	}

	if err := prefs.Scoped(s.deps.Prefs, owner).Set(ctx, prefs.ThemeKey, string(theme)); err != nil {
		return fmt.Errorf("persist theme: %w", err)
	}

	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
	return nil
}

func (s *Session) CreatePost(text string, typ models.PostType, hashtags []string, goalProgress *int) (models.Post, error) {
	return s.deps.Store.CreatePost(s.UserID(), text, typ, hashtags, goalProgress)
}

func (s *Session) ToggleLike(postID string) (models.Post, error) {
	return s.deps.Store.ToggleLike(s.UserID(), postID)
}

func (s *Session) ToggleRepost(postID string) (models.Post, error) {
	return s.deps.Store.ToggleRepost(s.UserID(), postID)
}

func (s *Session) ToggleBookmark(postID string) (models.Post, error) {
	return s.deps.Store.ToggleBookmark(s.UserID(), postID)
}

func (s *Session) AddComment(postID, text string) (models.Comment, error) {
	return s.deps.Store.AddComment(s.UserID(), postID, text)
}

func (s *Session) Follow(targetID string) error {
	if err := s.deps.Store.Follow(s.UserID(), targetID); err != nil {
		return err
	}
	s.refresh()
	return nil
}

func (s *Session) Unfollow(targetID string) error {
	if err := s.deps.Store.Unfollow(s.UserID(), targetID); err != nil {
		return err
	}
	s.refresh()
	return nil
}

// refresh reloads the cached user so its follow lists match the store.
func (s *Session) refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	if u, ok := s.deps.Store.User(s.current.ID); ok {
		s.current = &u
	}
}
