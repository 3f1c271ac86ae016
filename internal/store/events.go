package store

type EventKind string

const (
	EventPostCreated    EventKind = "post.created"
	EventPostLiked      EventKind = "post.liked"
	EventPostReposted   EventKind = "post.reposted"
	EventPostBookmarked EventKind = "post.bookmarked"
	EventCommentAdded   EventKind = "comment.added"
	EventUserFollowed   EventKind = "user.followed"
	EventUserUnfollowed EventKind = "user.unfollowed"
	EventUserUpserted   EventKind = "user.upserted"
)

// Event describes the transition that produced a snapshot.
type Event struct {
	Kind      EventKind `json:"kind"`
	ActorID   string    `json:"actorId"`
	PostID    string    `json:"postId,omitempty"`
	CommentID string    `json:"commentId,omitempty"`
	TargetID  string    `json:"targetId,omitempty"`
	// Active is the actor's membership after a toggle.
	Active bool `json:"active"`
}

// Listener is called after every committed transition, in commit order.
// Listeners run while the writer lock is held and must not call mutators.
type Listener func(Event, *Snapshot)
