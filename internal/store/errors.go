package store

import "errors"

// Every mutator leaves the snapshot untouched when it returns one of these.
var (
	ErrUnauthenticated = errors.New("no signed-in user")
	ErrEmptyText       = errors.New("text is empty")
	ErrInvalidPostType = errors.New("invalid post type")
	ErrPostNotFound    = errors.New("post not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrSelfFollow      = errors.New("cannot follow yourself")
)
