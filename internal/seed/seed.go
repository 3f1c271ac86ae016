// Package seed generates the mock data FinChat starts with.
package seed

import (
	"time"

	"github.com/Pranav210905/fin/internal/models"
	"github.com/Pranav210905/fin/internal/store"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func progress(v int) *int { return &v }

// Snapshot returns a fresh copy of the seed data: four users, six posts and
// three comments.
func Snapshot() *store.Snapshot {
	users := []models.User{
		{
			ID:        "1",
			Name:      "Jane Smith",
			Username:  "savvysaver",
			Avatar:    "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=150",
			Bio:       "Financial planner | Budgeting expert | Helping you save smarter",
			JoinedAt:  ts("2024-01-15T10:00:00Z"),
			Followers: []string{"2", "3"},
			Following: []string{"2"},
			Badges:    []string{"budgetMaster", "debtFree"},
		},
		{
			ID:        "2",
			Name:      "Alex Johnson",
			Username:  "investorAlex",
			Avatar:    "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150",
			Bio:       "Stock market enthusiast | ETF investor | Building wealth one day at a time",
			JoinedAt:  ts("2024-02-20T14:30:00Z"),
			Followers: []string{"1"},
			Following: []string{"1", "3"},
			Badges:    []string{"stockPro"},
		},
		{
			ID:        "3",
			Name:      "Sarah Chen",
			Username:  "frugalLiving",
			Avatar:    "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=150",
			Bio:       "Minimalist | FIRE movement | Teaching how to live on less",
			JoinedAt:  ts("2024-03-05T09:15:00Z"),
			Followers: []string{"2"},
			Following: []string{"1"},
			Badges:    []string{"emergencyFundHero"},
		},
		{
			ID:        "4",
			Name:      "Marcus Taylor",
			Username:  "cryptoMarcus",
			Avatar:    "https://images.pexels.com/photos/1681010/pexels-photo-1681010.jpeg?auto=compress&cs=tinysrgb&w=150",
			Bio:       "Crypto investor | Blockchain technology | DeFi explorer",
			JoinedAt:  ts("2024-03-10T11:45:00Z"),
			Followers: []string{},
			Following: []string{},
			Badges:    []string{"cryptoTrader"},
		},
	}

	posts := []models.Post{
		{
			ID:        "1",
			UserID:    "1",
			Text:      `Always automate your savings! Set up transfers to happen right after payday so you never "see" that money in your checking account.`,
			Type:      models.PostTypeRegular,
			Hashtags:  []string{"#SavingHack", "#Automation"},
			Likes:     []string{"2", "3"},
			Comments:  []string{"1"},
			Reposts:   []string{"2"},
			Bookmarks: []string{"3"},
			CreatedAt: ts("2024-04-01T15:30:00Z"),
		},
		{
			ID:        "2",
			UserID:    "2",
			Text:      "Just reached $10,000 in my investment portfolio! Consistent monthly investing really adds up.",
			Type:      models.PostTypeMilestone,
			Hashtags:  []string{"#MilestoneAchieved", "#Investing"},
			Likes:     []string{"1", "3"},
			Comments:  []string{"2"},
			Reposts:   []string{},
			Bookmarks: []string{"1"},
			CreatedAt: ts("2024-04-02T09:45:00Z"),
		},
		{
			ID:           "3",
			UserID:       "3",
			Text:         "My goal: Save $5,000 for emergency fund by December. Currently at $3,500!",
			Type:         models.PostTypeGoal,
			GoalProgress: progress(70),
			Hashtags:     []string{"#EmergencyFund", "#SavingsGoal"},
			Likes:        []string{"1", "2"},
			Comments:     []string{},
			Reposts:      []string{"1"},
			Bookmarks:    []string{"2"},
			CreatedAt:    ts("2024-04-03T11:20:00Z"),
		},
		{
			ID:        "4",
			UserID:    "4",
			Text:      "What's everyone's favorite app for tracking expenses? Looking for something that can categorize automatically.",
			Type:      models.PostTypeRegular,
			Hashtags:  []string{"#BudgetingApps", "#Question"},
			Likes:     []string{"1"},
			Comments:  []string{"3"},
			Reposts:   []string{},
			Bookmarks: []string{},
			CreatedAt: ts("2024-04-03T14:10:00Z"),
		},
		{
			ID:        "5",
			UserID:    "1",
			Text:      "Paid off my last credit card today! Debt-free for the first time in 5 years. Next step: building that emergency fund.",
			Type:      models.PostTypeMilestone,
			Hashtags:  []string{"#DebtFree", "#FinancialFreedom"},
			Likes:     []string{"2", "3", "4"},
			Comments:  []string{},
			Reposts:   []string{"2", "3"},
			Bookmarks: []string{"2", "4"},
			CreatedAt: ts("2024-04-04T10:05:00Z"),
		},
		{
			ID:        "6",
			UserID:    "2",
			Text:      "Quick tip: Review your subscriptions every 3 months. Cancel what you don't use. I just saved $45/month doing this!",
			Type:      models.PostTypeRegular,
			Hashtags:  []string{"#MoneySaver", "#Subscriptions"},
			Likes:     []string{"1", "3"},
			Comments:  []string{},
			Reposts:   []string{"1"},
			Bookmarks: []string{"1", "3"},
			CreatedAt: ts("2024-04-05T16:30:00Z"),
		},
	}

	comments := []models.Comment{
		{
			ID:        "1",
			PostID:    "1",
			UserID:    "2",
			Text:      "This changed my savings game completely! I don't even miss the money now.",
			Likes:     []string{"1"},
			CreatedAt: ts("2024-04-01T16:15:00Z"),
		},
		{
			ID:        "2",
			PostID:    "2",
			UserID:    "1",
			Text:      "Congratulations! What's your investment strategy?",
			Likes:     []string{"2"},
			CreatedAt: ts("2024-04-02T10:30:00Z"),
		},
		{
			ID:        "3",
			PostID:    "4",
			UserID:    "1",
			Text:      "I use YNAB (You Need A Budget). Great for categories and it syncs with most banks!",
			Likes:     []string{"4"},
			CreatedAt: ts("2024-04-03T15:00:00Z"),
		},
	}

	return &store.Snapshot{Users: users, Posts: posts, Comments: comments}
}
