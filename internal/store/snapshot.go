package store

import "github.com/Pranav210905/fin/internal/models"

// Snapshot is one immutable version of the application state. Values
// reachable from a snapshot handed out by the Store must not be modified.
type Snapshot struct {
	Users    []models.User    `json:"users" yaml:"users"`
	Posts    []models.Post    `json:"posts" yaml:"posts"`
	Comments []models.Comment `json:"comments" yaml:"comments"`
}

func (s *Snapshot) User(id string) (*models.User, bool) {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i], true
		}
	}
	return nil, false
}

func (s *Snapshot) Post(id string) (*models.Post, bool) {
	for i := range s.Posts {
		if s.Posts[i].ID == id {
			return &s.Posts[i], true
		}
	}
	return nil, false
}

func (s *Snapshot) Comment(id string) (*models.Comment, bool) {
	for i := range s.Comments {
		if s.Comments[i].ID == id {
			return &s.Comments[i], true
		}
	}
	return nil, false
}

// Clone deep-copies the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Users:    make([]models.User, len(s.Users)),
		Posts:    make([]models.Post, len(s.Posts)),
		Comments: make([]models.Comment, len(s.Comments)),
	}
	for i, u := range s.Users {
		out.Users[i] = u.Clone()
	}
	for i, p := range s.Posts {
		out.Posts[i] = p.Clone()
	}
	for i, c := range s.Comments {
		out.Comments[i] = c.Clone()
	}
	return out
}

func (s *Snapshot) userIndex(id string) int {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Snapshot) postIndex(id string) int {
	for i := range s.Posts {
		if s.Posts[i].ID == id {
			return i
		}
	}
	return -1
}
