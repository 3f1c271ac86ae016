package session

import (
	"context"
	"errors"
	"testing"

	"github.com/Pranav210905/fin/internal/identity"
	"github.com/Pranav210905/fin/internal/models"
	"github.com/Pranav210905/fin/internal/prefs"
	"github.com/Pranav210905/fin/internal/repositories"
	"github.com/Pranav210905/fin/internal/seed"
	"github.com/Pranav210905/fin/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newDeps(t *testing.T) Deps {
	t.Helper()
	snap := seed.Snapshot()
	return Deps{
		Store:    store.New(snap),
		Profiles: repositories.NewMemoryProfileRepository(snap.Users...),
		Prefs:    prefs.NewMemory(),
	}
}

type failingProfiles struct{}

func (failingProfiles) GetProfile(context.Context, string) (*models.User, error) {
	return nil, errors.New("connection refused")
}

func (failingProfiles) SaveProfile(context.Context, *models.User) error { return nil }

func TestSignIn(t *testing.T) {
	s := New(context.Background(), "s1", newDeps(t))

	require.NoError(t, s.SignIn(context.Background(), "1"))
	u, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "savvysaver", u.Username)

	s.SignOut()
	_, ok = s.CurrentUser()
	assert.False(t, ok)

	assert.ErrorIs(t, s.SignIn(context.Background(), "missing"), store.ErrUserNotFound)
	assert.Empty(t, s.UserID())
}

func TestSignedOutMutationsAreRejected(t *testing.T) {
	deps := newDeps(t)
	s := New(context.Background(), "s1", deps)
	before := deps.Store.Snapshot()

	_, err := s.CreatePost("hello", models.PostTypeRegular, nil, nil)
	assert.ErrorIs(t, err, store.ErrUnauthenticated)
	_, err = s.ToggleLike("1")
	assert.ErrorIs(t, err, store.ErrUnauthenticated)
	_, err = s.AddComment("1", "hi")
	assert.ErrorIs(t, err, store.ErrUnauthenticated)
	assert.ErrorIs(t, s.Follow("2"), store.ErrUnauthenticated)

	assert.Same(t, before, deps.Store.Snapshot())
}

func TestForwardersActAsSessionUser(t *testing.T) {
	deps := newDeps(t)
	s := New(context.Background(), "s1", deps)
	require.NoError(t, s.SignIn(context.Background(), "4"))

	post, err := s.CreatePost("Bought my first ETF #Invest", models.PostTypeMilestone, []string{"#Invest"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "4", post.UserID)

	liked, err := s.ToggleLike("1")
	require.NoError(t, err)
	assert.Contains(t, liked.Likes, "4")

	comment, err := s.AddComment("1", "Great tip")
	require.NoError(t, err)
	assert.Equal(t, "4", comment.UserID)
}

func TestFollowRefreshesCurrentUser(t *testing.T) {
	deps := newDeps(t)
	s := New(context.Background(), "s1", deps)
	require.NoError(t, s.SignIn(context.Background(), "4"))

	require.NoError(t, s.Follow("1"))
	u, _ := s.CurrentUser()
	assert.Equal(t, []string{"1"}, u.Following)

	require.NoError(t, s.Unfollow("1"))
	u, _ = s.CurrentUser()
	assert.Empty(t, u.Following)

	assert.ErrorIs(t, s.Follow("4"), store.ErrSelfFollow)
}

func TestHandleAuthState(t *testing.T) {
	deps := newDeps(t)
	newcomer := models.User{ID: "uid-9", Name: "New Person", Username: "newbie"}
	require.NoError(t, deps.Profiles.SaveProfile(context.Background(), &newcomer))
	s := New(context.Background(), "s1", deps)

	require.NoError(t, s.HandleAuthState(context.Background(), "uid-9"))
	u, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "newbie", u.Username)
	_, inStore := deps.Store.User("uid-9")
	assert.True(t, inStore)

	require.NoError(t, s.HandleAuthState(context.Background(), ""))
	_, ok = s.CurrentUser()
	assert.False(t, ok)
}

func TestHandleAuthState_MissingProfile(t *testing.T) {
	s := New(context.Background(), "s1", newDeps(t))
	require.NoError(t, s.SignIn(context.Background(), "1"))

	err := s.HandleAuthState(context.Background(), "ghost")
	assert.ErrorIs(t, err, repositories.ErrProfileNotFound)
	_, ok := s.CurrentUser()
	assert.False(t, ok)
	assert.ErrorIs(t, s.Err(), repositories.ErrProfileNotFound)
}

func TestHandleAuthState_FetchFailure(t *testing.T) {
	deps := newDeps(t)
	deps.Profiles = failingProfiles{}
	s := New(context.Background(), "s1", deps)

	err := s.HandleAuthState(context.Background(), "1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repositories.ErrProfileNotFound)
	_, ok := s.CurrentUser()
	assert.False(t, ok)
}

func TestWatch_IgnoresOtherSessions(t *testing.T) {
	hub := identity.NewHub()
	s := New(context.Background(), "s1", newDeps(t))
	stop := s.Watch(context.Background(), hub)

	hub.Publish(identity.AuthState{SessionID: "other", Principal: "1"})
	assert.Empty(t, s.UserID())

	hub.Publish(identity.AuthState{SessionID: "s1", Principal: "1"})
	assert.Equal(t, "1", s.UserID())

	stop()
	hub.Publish(identity.AuthState{SessionID: "s1"})
	assert.Equal(t, "1", s.UserID())
	assert.Equal(t, 0, hub.Subscribers())
}

func TestTheme(t *testing.T) {
	ctx := context.Background()
	deps := newDeps(t)

	assert.Equal(t, models.ThemeLight, New(ctx, "a", deps).Theme())

	deps.PrefersDark = true
	s := New(ctx, "b", deps)
	assert.True(t, s.Dark())

	assert.ErrorIs(t, s.SetTheme(ctx, "sepia"), ErrInvalidTheme)
	assert.True(t, s.Dark())

	require.NoError(t, s.SignIn(ctx, "1"))
	require.NoError(t, s.SetTheme(ctx, models.ThemeLight))
	v, err := prefs.Scoped(deps.Prefs, "1").Get(ctx, prefs.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "light", v)

	// a later session of the same user starts from the stored theme
	again := New(ctx, "c", deps)
	assert.True(t, again.Dark())
	require.NoError(t, again.SignIn(ctx, "1"))
	assert.False(t, again.Dark())
}

type failingPrefs struct{}

func (failingPrefs) Get(context.Context, string) (string, error) { return "", prefs.ErrNotSet }

func (failingPrefs) Set(context.Context, string, string) error {
	return errors.New("redis: connection refused")
}

func TestSetThemeKeepsThemeWhenPersistFails(t *testing.T) {
	ctx := context.Background()
	deps := newDeps(t)
	deps.Prefs = failingPrefs{}
	s := New(ctx, "s1", deps)
	require.NoError(t, s.SignIn(ctx, "1"))

	assert.Error(t, s.SetTheme(ctx, models.ThemeDark))
	assert.Equal(t, models.ThemeLight, s.Theme())
}

func TestRegistry_OpenAs(t *testing.T) {
	r := NewRegistry(newDeps(t))
	t.Cleanup(r.CloseAll)

	s, err := r.OpenAs(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "3", s.UserID())
	got, ok := r.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, err = r.OpenAs(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_OpenGetClose(t *testing.T) {
	r := NewRegistry(newDeps(t))

	s, err := r.Open(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "2", s.UserID())

	got, ok := r.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, r.Hub().Subscribers())

	require.NoError(t, r.Close(s.ID))
	assert.Empty(t, s.UserID())
	_, ok = r.Get(s.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, r.Hub().Subscribers())
	assert.ErrorIs(t, r.Close(s.ID), ErrSessionNotFound)
}

func TestRegistry_OpenWithoutProfile(t *testing.T) {
	r := NewRegistry(newDeps(t))

	s, err := r.Open(context.Background(), "ghost")
	assert.ErrorIs(t, err, repositories.ErrProfileNotFound)
	assert.Nil(t, s)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0, r.Hub().Subscribers())
}

func TestRegistry_CloseAll(t *testing.T) {
	r := NewRegistry(newDeps(t))
	for _, id := range []string{"1", "2", "3"} {
		_, err := r.Open(context.Background(), id)
		require.NoError(t, err)
	}
	require.Equal(t, 3, r.Len())

	r.CloseAll()
	assert.Equal(t, 0, r.Len())
}
