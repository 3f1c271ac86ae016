package views

import (
	"sort"

	"github.com/Pranav210905/fin/internal/models"
)

// PostComments returns the comments belonging to post, newest first.
func PostComments(comments []models.Comment, post *models.Post) []models.Comment {
	out := make([]models.Comment, 0, len(post.Comments))
	for _, c := range comments {
		if c.PostID == post.ID && contains(post.Comments, c.ID) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// Directory indexes users by id for author lookups.
type Directory map[string]*models.User

func NewDirectory(users []models.User) Directory {
	d := make(Directory, len(users))
	for i := range users {
		d[users[i].ID] = &users[i]
	}
	return d
}

func (d Directory) author(id string) models.UserCompact {
	if u, ok := d[id]; ok {
		return u.ToCompact()
	}
	return models.UserCompact{ID: id}
}

// Present attaches authors and the viewer's engagement flags to posts.
// viewerID may be empty.
func Present(posts []models.Post, dir Directory, viewerID string) []models.PostView {
	out := make([]models.PostView, len(posts))
	for i, p := range posts {
		out[i] = models.PostView{Post: p, Author: dir.author(p.UserID)}
		if viewerID != "" {
			out[i].IsLiked = contains(p.Likes, viewerID)
			out[i].IsReposted = contains(p.Reposts, viewerID)
			out[i].IsBookmarked = contains(p.Bookmarks, viewerID)
		}
	}
	return out
}

func PresentComments(comments []models.Comment, dir Directory) []models.CommentView {
	out := make([]models.CommentView, len(comments))
	for i, c := range comments {
		out[i] = models.CommentView{Comment: c, Author: dir.author(c.UserID)}
	}
	return out
}
