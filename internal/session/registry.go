package session

import (
	"context"
	"errors"
	"sync"

	"github.com/Pranav210905/fin/internal/identity"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrSessionNotFound = errors.New("session not found")

type entry struct {
	session *Session
	stop    func()
}

// Registry holds the live sessions of a server process. Sign-in and
// sign-out reach sessions as auth-state notifications through the hub.
type Registry struct {
	deps Deps
	hub  *identity.Hub

	mu       sync.RWMutex
	sessions map[string]entry
}

func NewRegistry(deps Deps) *Registry {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Registry{
		deps:     deps,
		hub:      identity.NewHub(),
		sessions: make(map[string]entry),
	}
}

// Hub exposes the auth-state hub the registry publishes on.
func (r *Registry) Hub() *identity.Hub {
	return r.hub
}

// Open starts a session and signs principal in. When the principal has no
// profile document the session is discarded and the error returned.
func (r *Registry) Open(ctx context.Context, principal string) (*Session, error) {
	s := New(ctx, uuid.NewString(), r.deps)
	stop := s.Watch(ctx, r.hub)

	r.mu.Lock()
	r.sessions[s.ID] = entry{session: s, stop: stop}
	r.mu.Unlock()

	r.hub.Publish(identity.AuthState{SessionID: s.ID, Principal: principal})
	if _, ok := s.CurrentUser(); !ok {
		err := s.Err()
		r.Close(s.ID)
		if err == nil {
			err = ErrSessionNotFound
		}
		return nil, err
	}
	return s, nil
}

// OpenAs starts a session signed in as a user already in the store,
// bypassing the identity provider.
func (r *Registry) OpenAs(ctx context.Context, userID string) (*Session, error) {
	s := New(ctx, uuid.NewString(), r.deps)
	if err := s.SignIn(ctx, userID); err != nil {
		return nil, err
	}
	stop := s.Watch(ctx, r.hub)

	r.mu.Lock()
	r.sessions[s.ID] = entry{session: s, stop: stop}
	r.mu.Unlock()
	return s, nil
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[id]
	return e.session, ok
}

// Close signs the session out and forgets it.
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	e, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	r.hub.Publish(identity.AuthState{SessionID: id})
	e.stop()
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// CloseAll closes every live session.
func (r *Registry) CloseAll() {
	r.mu.RLock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	for _, id := range ids {
		_ = r.Close(id)
	}
}
