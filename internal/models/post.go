package models

import "time"

type PostType string

const (
	PostTypeRegular   PostType = "regular"
	PostTypeMilestone PostType = "milestone"
	PostTypeGoal      PostType = "goal"
)

func (t PostType) Valid() bool {
	switch t {
	case PostTypeRegular, PostTypeMilestone, PostTypeGoal:
		return true
	}
	return false
}

// Post is a FinChat update. Only the engagement lists and the comment list
// change after creation.
type Post struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Text         string    `json:"text"`
	Type         PostType  `json:"type"`
	GoalProgress *int      `json:"goalProgress,omitempty"` // set iff Type == goal
	Hashtags     []string  `json:"hashtags"`
	Likes        []string  `json:"likes"`
	Comments     []string  `json:"comments"`
	Reposts      []string  `json:"reposts"`
	Bookmarks    []string  `json:"bookmarks"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Engagement is the explore ranking score: likes + comments + reposts.
func (p *Post) Engagement() int {
	return len(p.Likes) + len(p.Comments) + len(p.Reposts)
}

func (p Post) Clone() Post {
	if p.GoalProgress != nil {
		v := *p.GoalProgress
		p.GoalProgress = &v
	}
	p.Hashtags = cloneIDs(p.Hashtags)
	p.Likes = cloneIDs(p.Likes)
	p.Comments = cloneIDs(p.Comments)
	p.Reposts = cloneIDs(p.Reposts)
	p.Bookmarks = cloneIDs(p.Bookmarks)
	return p
}

// cloneIDs copies an ID list. The copy is never nil so it encodes as [].
func cloneIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Text         string   `json:"text" validate:"required,max=280"`
	Type         PostType `json:"type" validate:"omitempty,oneof=regular milestone goal"`
	GoalProgress *int     `json:"goalProgress,omitempty" validate:"omitempty,min=0,max=100"`
}

// PostView is a post with its author and the viewer's engagement flags
type PostView struct {
	Post
	Author       UserCompact `json:"author"`
	IsLiked      bool        `json:"isLiked"`
	IsReposted   bool        `json:"isReposted"`
	IsBookmarked bool        `json:"isBookmarked"`
}
