// Package identity resolves who is signed in: it verifies identity-provider
// tokens, issues the service's own session tokens, and fans out
// authentication-state changes to the sessions that care about them.
package identity

import "sync"

// AuthState is an authentication-state-changed notification. An empty
// Principal means the session signed out.
type AuthState struct {
	SessionID string
	Principal string
}

// Notifier delivers auth-state changes to subscribers.
type Notifier interface {
	Subscribe(fn func(AuthState)) (unsubscribe func())
}

// Hub is an in-process Notifier. Publish calls every subscriber in turn on
// the publishing goroutine.
type Hub struct {
	mu   sync.RWMutex
	subs map[int]func(AuthState)
	next int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]func(AuthState))}
}

func (h *Hub) Subscribe(fn func(AuthState)) func() {
	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

func (h *Hub) Publish(state AuthState) {
	h.mu.RLock()
	subs := make([]func(AuthState), 0, len(h.subs))
	for _, fn := range h.subs {
		subs = append(subs, fn)
	}
	h.mu.RUnlock()

	for _, fn := range subs {
		fn(state)
	}
}

// Subscribers reports how many subscriptions are live.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
