package models

import "time"

// Comment represents a comment on a post. Comments are never edited or deleted.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c Comment) Clone() Comment {
	c.Likes = cloneIDs(c.Likes)
	return c
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,max=280"`
}

type CommentView struct {
	Comment
	Author UserCompact `json:"author"`
}
