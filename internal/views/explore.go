package views

import (
	"sort"

	"github.com/Pranav210905/fin/internal/models"
)

type ExploreTab string

const (
	TabTrending   ExploreTab = "trending"
	TabMilestones ExploreTab = "milestones"
	TabGoals      ExploreTab = "goals"
)

func (t ExploreTab) Valid() bool {
	return t == TabTrending || t == TabMilestones || t == TabGoals
}

// Explore filters posts for an explore tab and ranks them by engagement,
// highest first. Unknown tabs yield no posts.
func Explore(posts []models.Post, tab ExploreTab) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		switch {
		case tab == TabTrending,
			tab == TabMilestones && p.Type == models.PostTypeMilestone,
			tab == TabGoals && p.Type == models.PostTypeGoal:
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Engagement() > out[j].Engagement() })
	return out
}
