package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is a FinChat profile. The same record is mirrored into the state
// store and kept by the profile document backends.
type User struct {
	ID        string    `json:"id" bson:"_id" firestore:"-" gorm:"primaryKey"`
	Name      string    `json:"name" bson:"name" firestore:"name"`
	Username  string    `json:"username" bson:"username" firestore:"username" gorm:"uniqueIndex"`
	Avatar    string    `json:"avatar" bson:"avatar" firestore:"avatar"`
	Bio       string    `json:"bio" bson:"bio" firestore:"bio"`
	JoinedAt  time.Time `json:"joinedAt" bson:"joined_at" firestore:"joinedAt"`
	Followers []string  `json:"followers" bson:"followers" firestore:"followers" gorm:"serializer:json"`
	Following []string  `json:"following" bson:"following" firestore:"following" gorm:"serializer:json"`
	Badges    []string  `json:"badges" bson:"badges" firestore:"badges" gorm:"serializer:json"`
}

// UserCompact is the author block embedded in post and comment payloads
type UserCompact struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

func (u *User) ToCompact() UserCompact {
	return UserCompact{ID: u.ID, Name: u.Name, Username: u.Username, Avatar: u.Avatar}
}

// IsFollowing reports whether u follows userID.
func (u *User) IsFollowing(userID string) bool {
	for _, id := range u.Following {
		if id == userID {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with u.
func (u User) Clone() User {
	u.Followers = cloneIDs(u.Followers)
	u.Following = cloneIDs(u.Following)
	u.Badges = cloneIDs(u.Badges)
	return u
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Username string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Password string `json:"password" validate:"required,min=8"`
	Avatar   string `json:"avatar,omitempty" validate:"omitempty,url"`
	Bio      string `json:"bio,omitempty" validate:"max=160"`
}

type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// MockSigninRequest picks a seeded user by id. Development only.
type MockSigninRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// Credential is a local account secret, kept apart from the public profile
type Credential struct {
	UserID       string    `json:"user_id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}
