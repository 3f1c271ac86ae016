// Package views holds the read-side projections over store snapshots: feed
// ordering, trending tags, explore tabs, profile tabs and post detail. All of
// them are pure functions and never modify their inputs.
package views

import (
	"sort"

	"github.com/Pranav210905/fin/internal/models"
)

// ByNewest returns a copy of posts sorted by creation time, newest first.
func ByNewest(posts []models.Post) []models.Post {
	out := append([]models.Post(nil), posts...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// Feed orders posts for the home timeline. Without a viewer it is newest
// first. With a viewer, posts by followed authors or the viewer come first,
// and each partition is newest first.
func Feed(posts []models.Post, viewer *models.User) []models.Post {
	sorted := ByNewest(posts)
	if viewer == nil {
		return sorted
	}

	following := make([]models.Post, 0, len(sorted))
	other := make([]models.Post, 0, len(sorted))
	for _, p := range sorted {
		if p.UserID == viewer.ID || viewer.IsFollowing(p.UserID) {
			following = append(following, p)
		} else {
			other = append(other, p)
		}
	}
	return append(following, other...)
}

// SuggestedUsers returns up to n users the viewer is not and does not follow.
func SuggestedUsers(users []models.User, viewer *models.User, n int) []models.User {
	out := make([]models.User, 0, n)
	for _, u := range users {
		if len(out) == n {
			break
		}
		if viewer != nil && (u.ID == viewer.ID || viewer.IsFollowing(u.ID)) {
			continue
		}
		out = append(out, u)
	}
	return out
}
