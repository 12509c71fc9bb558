package topic

import (
	"sort"
	"strings"

	"github.com/umputun/topicscope/pkg/domain"
)

// DefaultSeeds are used when neither the user nor the channel history provide keywords
var DefaultSeeds = []string{"trending", "popular", "viral", "top", "best"}

// maxSeeds limits the number of seed keywords for a run
const maxSeeds = 10

// suggestionPatterns expand a base keyword into search variations, "%s" is the keyword
var suggestionPatterns = []string{
	"%s tutorial", "%s guide", "%s explained", "%s for beginners", "%s advanced",
	"%s tips", "%s tricks", "%s 2025", "how to %s", "best %s",
	"%s review", "%s comparison", "%s vs", "why %s", "%s secrets",
}

// KeywordSuggestions returns search variations of a keyword in a fixed order
func KeywordSuggestions(keyword string) []string {
	res := make([]string, 0, len(suggestionPatterns))
	for _, p := range suggestionPatterns {
		res = append(res, strings.ReplaceAll(p, "%s", keyword))
	}
	return res
}

// ExtractKeywords ranks words of video titles (longer than 3 characters, weight 2) and tags
// (weight 1) by total weight. Ties keep first-appearance order. Returns at most limit keywords.
func ExtractKeywords(videos []domain.Video, limit int) []string {
	weights := map[string]int{}
	var order []string
	add := func(word string, w int) {
		if _, ok := weights[word]; !ok {
			order = append(order, word)
		}
		weights[word] += w
	}

	for _, v := range videos {
		for _, word := range strings.Fields(strings.ToLower(v.Title)) {
			if len([]rune(word)) > 3 {
				add(word, 2)
			}
		}
		for _, tag := range v.Tags {
			if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
				add(tag, 1)
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool { return weights[order[i]] > weights[order[j]] })
	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}
	return order
}

// SeedKeywords picks the keywords to expand for search discovery: user keywords if given,
// otherwise recent channel themes, otherwise DefaultSeeds. Capped at 10.
func SeedKeywords(user []string, cc domain.ChannelContext) []string {
	var seeds []string
	switch {
	case len(nonEmpty(user)) > 0:
		seeds = nonEmpty(user)
	case len(cc.RecentThemes) > 0:
		seeds = cc.RecentThemes
	default:
		seeds = DefaultSeeds
	}
	if len(seeds) > maxSeeds {
		seeds = seeds[:maxSeeds]
	}
	return append([]string(nil), seeds...)
}

func nonEmpty(vals []string) []string {
	var res []string
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}
