// Package store is the single source of truth for FinChat users, posts and
// comments.
//
// State lives in an immutable Snapshot. Every mutator builds a new snapshot
// from the current one and swaps it in under one writer lock, so a reader
// calling Snapshot never sees a half-applied change.
package store

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Pranav210905/fin/internal/models"
	"github.com/google/uuid"
)

type Store struct {
	mu   sync.Mutex
	snap atomic.Pointer[Snapshot]

	listeners map[int]Listener
	nextSub   int

	now   func() time.Time
	newID func() string
}

type Option func(*Store)

// WithClock replaces time.Now for created timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the UUID generator used for new posts and comments.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// New creates a Store holding a deep copy of seed. A nil seed starts empty.
func New(seed *Snapshot, opts ...Option) *Store {
	s := &Store{
		listeners: make(map[int]Listener),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if seed == nil {
		seed = &Snapshot{}
	}
	s.snap.Store(seed.Clone())
	return s
}

// Snapshot returns the current state version.
func (s *Store) Snapshot() *Snapshot {
	return s.snap.Load()
}

func (s *Store) User(id string) (models.User, bool) {
	u, ok := s.Snapshot().User(id)
	if !ok {
		return models.User{}, false
	}
	return u.Clone(), true
}

func (s *Store) Post(id string) (models.Post, bool) {
	p, ok := s.Snapshot().Post(id)
	if !ok {
		return models.Post{}, false
	}
	return p.Clone(), true
}

func (s *Store) Comment(id string) (models.Comment, bool) {
	c, ok := s.Snapshot().Comment(id)
	if !ok {
		return models.Comment{}, false
	}
	return c.Clone(), true
}

// Subscribe registers fn for every committed transition. The returned
// function removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// commit must be called with s.mu held.
func (s *Store) commit(next *Snapshot, ev Event) {
	s.snap.Store(next)
	for _, fn := range s.listeners {
		fn(ev, next)
	}
}

// CreatePost prepends a new post authored by actorID. goalProgress is kept
// only for goal posts, where it defaults to 0 and is clamped to 0..100.
func (s *Store) CreatePost(actorID, text string, typ models.PostType, hashtags []string, goalProgress *int) (models.Post, error) {
	if actorID == "" {
		return models.Post{}, ErrUnauthenticated
	}
	if strings.TrimSpace(text) == "" {
		return models.Post{}, ErrEmptyText
	}
	if typ == "" {
		typ = models.PostTypeRegular
	}
	if !typ.Valid() {
		return models.Post{}, ErrInvalidPostType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.snap.Load()
	if cur.userIndex(actorID) < 0 {
		return models.Post{}, ErrUserNotFound
	}

	post := models.Post{
		ID:        s.newID(),
		UserID:    actorID,
		Text:      text,
		Type:      typ,
		Hashtags:  append([]string{}, hashtags...),
		Likes:     []string{},
		Comments:  []string{},
		Reposts:   []string{},
		Bookmarks: []string{},
		CreatedAt: s.now().UTC(),
	}
	if typ == models.PostTypeGoal {
		progress := 0
		if goalProgress != nil {
			progress = min(max(*goalProgress, 0), 100)
		}
		post.GoalProgress = &progress
	}

	posts := make([]models.Post, 0, len(cur.Posts)+1)
	posts = append(posts, post)
	posts = append(posts, cur.Posts...)

	s.commit(&Snapshot{Users: cur.Users, Posts: posts, Comments: cur.Comments},
		Event{Kind: EventPostCreated, ActorID: actorID, PostID: post.ID})
	return post.Clone(), nil
}

func (s *Store) ToggleLike(actorID, postID string) (models.Post, error) {
	return s.toggle(actorID, postID, EventPostLiked, func(p *models.Post) *[]string { return &p.Likes })
}

func (s *Store) ToggleRepost(actorID, postID string) (models.Post, error) {
	return s.toggle(actorID, postID, EventPostReposted, func(p *models.Post) *[]string { return &p.Reposts })
}

func (s *Store) ToggleBookmark(actorID, postID string) (models.Post, error) {
	return s.toggle(actorID, postID, EventPostBookmarked, func(p *models.Post) *[]string { return &p.Bookmarks })
}

// toggle flips actorID's membership in the engagement list chosen by list.
func (s *Store) toggle(actorID, postID string, kind EventKind, list func(*models.Post) *[]string) (models.Post, error) {
	if actorID == "" {
		return models.Post{}, ErrUnauthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.snap.Load()
	idx := cur.postIndex(postID)
	if idx < 0 {
		return models.Post{}, ErrPostNotFound
	}

	updated := cur.Posts[idx].Clone()
	ids := list(&updated)
	var active bool
	*ids, active = toggleID(*ids, actorID)

	posts := append([]models.Post(nil), cur.Posts...)
	posts[idx] = updated

	s.commit(&Snapshot{Users: cur.Users, Posts: posts, Comments: cur.Comments},
		Event{Kind: kind, ActorID: actorID, PostID: postID, Active: active})
	return updated.Clone(), nil
}

// AddComment appends a comment to postID. The post's comment list and the
// comment collection change in the same transition.
func (s *Store) AddComment(actorID, postID, text string) (models.Comment, error) {
	if actorID == "" {
		return models.Comment{}, ErrUnauthenticated
	}
	if strings.TrimSpace(text) == "" {
		return models.Comment{}, ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.snap.Load()
	idx := cur.postIndex(postID)
	if idx < 0 {
		return models.Comment{}, ErrPostNotFound
	}

	comment := models.Comment{
		ID:        s.newID(),
		PostID:    postID,
		UserID:    actorID,
		Text:      text,
		Likes:     []string{},
		CreatedAt: s.now().UTC(),
	}

	updated := cur.Posts[idx].Clone()
	updated.Comments = append(updated.Comments, comment.ID)
	posts := append([]models.Post(nil), cur.Posts...)
	posts[idx] = updated

	comments := make([]models.Comment, 0, len(cur.Comments)+1)
	comments = append(comments, cur.Comments...)
	comments = append(comments, comment)

	s.commit(&Snapshot{Users: cur.Users, Posts: posts, Comments: comments},
		Event{Kind: EventCommentAdded, ActorID: actorID, PostID: postID, CommentID: comment.ID})
	return comment.Clone(), nil
}

// Follow adds targetID to actorID's following list and actorID to
// targetID's followers list. Following an already-followed user changes
// nothing.
func (s *Store) Follow(actorID, targetID string) error {
	return s.setFollow(actorID, targetID, true)
}

// Unfollow reverses Follow. Unfollowing a user who is not followed changes
// nothing.
func (s *Store) Unfollow(actorID, targetID string) error {
	return s.setFollow(actorID, targetID, false)
}

func (s *Store) setFollow(actorID, targetID string, follow bool) error {
	if actorID == "" {
		return ErrUnauthenticated
	}
	if actorID == targetID {
		return ErrSelfFollow
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.snap.Load()
	ai, ti := cur.userIndex(actorID), cur.userIndex(targetID)
	if ai < 0 || ti < 0 {
		return ErrUserNotFound
	}
	if cur.Users[ai].IsFollowing(targetID) == follow {
		return nil
	}

	actor, target := cur.Users[ai].Clone(), cur.Users[ti].Clone()
	kind := EventUserFollowed
	if follow {
		actor.Following = append(actor.Following, targetID)
		target.Followers = addID(target.Followers, actorID)
	} else {
		kind = EventUserUnfollowed
		actor.Following = removeID(actor.Following, targetID)
		target.Followers = removeID(target.Followers, actorID)
	}

	users := append([]models.User(nil), cur.Users...)
	users[ai], users[ti] = actor, target

	s.commit(&Snapshot{Users: users, Posts: cur.Posts, Comments: cur.Comments},
		Event{Kind: kind, ActorID: actorID, TargetID: targetID, Active: follow})
	return nil
}

// UpsertUser mirrors a profile record into the store. The follow graph is
// owned by the store: an existing user keeps its followers and following,
// a new user starts with both empty.
func (s *Store) UpsertUser(u models.User) (models.User, error) {
	if u.ID == "" {
		return models.User{}, ErrUserNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.snap.Load()
	next := u.Clone()
	users := append([]models.User(nil), cur.Users...)
	if idx := cur.userIndex(u.ID); idx >= 0 {
		next.Followers = append([]string{}, cur.Users[idx].Followers...)
		next.Following = append([]string{}, cur.Users[idx].Following...)
		users[idx] = next
	} else {
		next.Followers = []string{}
		next.Following = []string{}
		if next.Badges == nil {
			next.Badges = []string{}
		}
		if next.JoinedAt.IsZero() {
			next.JoinedAt = s.now().UTC()
		}
		users = append(users, next)
	}

	s.commit(&Snapshot{Users: users, Posts: cur.Posts, Comments: cur.Comments},
		Event{Kind: EventUserUpserted, ActorID: u.ID, TargetID: u.ID})
	return next.Clone(), nil
}

// toggleID removes id from ids if present, appends it otherwise, and
// reports whether id is present afterwards.
func toggleID(ids []string, id string) ([]string, bool) {
	for _, v := range ids {
		if v == id {
			return removeID(ids, id), false
		}
	}
	return append(ids, id), true
}

func addID(ids []string, id string) []string {
	for _, v := range ids {
		if v == id {
			return ids
		}
	}
	return append(ids, id)
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
