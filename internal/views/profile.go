package views

import "github.com/Pranav210905/fin/internal/models"

type ProfileTab string

const (
	TabPosts             ProfileTab = "posts"
	TabProfileMilestones ProfileTab = "milestones"
	TabBookmarks         ProfileTab = "bookmarks"
	TabFollowing         ProfileTab = "following"
)

func (t ProfileTab) Valid() bool {
	switch t {
	case TabPosts, TabProfileMilestones, TabBookmarks, TabFollowing:
		return true
	}
	return false
}

// ProfilePosts returns the posts authored by userID, newest first.
func ProfilePosts(posts []models.Post, userID string) []models.Post {
	return ByNewest(filter(posts, func(p *models.Post) bool { return p.UserID == userID }))
}

// ProfileMilestones returns userID's milestone posts, newest first.
func ProfileMilestones(posts []models.Post, userID string) []models.Post {
	return ByNewest(filter(posts, func(p *models.Post) bool {
		return p.UserID == userID && p.Type == models.PostTypeMilestone
	}))
}

// ProfileBookmarks returns the posts userID has bookmarked.
func ProfileBookmarks(posts []models.Post, userID string) []models.Post {
	return filter(posts, func(p *models.Post) bool { return contains(p.Bookmarks, userID) })
}

// ProfileFollowing returns the user records for ids in u's following list,
// in directory order.
func ProfileFollowing(users []models.User, u *models.User) []models.User {
	out := make([]models.User, 0, len(u.Following))
	for _, candidate := range users {
		if u.IsFollowing(candidate.ID) {
			out = append(out, candidate)
		}
	}
	return out
}

func filter(posts []models.Post, keep func(*models.Post) bool) []models.Post {
	out := make([]models.Post, 0)
	for i := range posts {
		if keep(&posts[i]) {
			out = append(out, posts[i])
		}
	}
	return out
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
