package views

import (
	"regexp"
	"sort"

	"github.com/Pranav210905/fin/internal/models"
)

var hashtagRe = regexp.MustCompile(`#\w+`)

// ParseHashtags returns the hashtags in text in order of appearance.
func ParseHashtags(text string) []string {
	tags := hashtagRe.FindAllString(text, -1)
	if tags == nil {
		return []string{}
	}
	return tags
}

// TagCount is a hashtag with the number of posts carrying it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TrendingHashtags counts hashtag occurrences over all posts and returns the
// top n by count. Ties keep first-encountered order.
func TrendingHashtags(posts []models.Post, n int) []TagCount {
	counts := make(map[string]int)
	var order []string
	for _, p := range posts {
		for _, tag := range p.Hashtags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	out := make([]TagCount, len(order))
	for i, tag := range order {
		out[i] = TagCount{Tag: tag, Count: counts[tag]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
