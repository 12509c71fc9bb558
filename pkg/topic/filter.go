// Package topic implements the pure text rules of topic discovery: relevance filtering,
// deduplication, categorization, niche detection and keyword expansion.
package topic

import "strings"

// denyList rejects entertainment and low-value content regardless of anything else in the title
var denyList = []string{
	"music video", "official video", "mv", "trailer", "teaser",
	"gameplay", "let's play", "gaming", "fortnite", "roblox",
	"tiktok", "brainrot", "steal a", "admin abuse", "official music",
	"ft.", "feat.", "prod. by", "(official", "official trailer",
}

// allowList is required for a title to pass once the deny list is clear
var allowList = []string{
	"tutorial", "guide", "how to", "learn", "course", "lesson",
	"tech", "ai", "programming", "code", "software", "data",
	"business", "startup", "entrepreneur", "marketing", "strategy",
	"explained", "introduction", "beginner", "advanced", "tips",
	"review", "comparison", "vs", "best", "top",
}

// IsRelevant reports whether a title is worth evaluating. Matching is by lowercase substring,
// deny list first. A title matching neither list is rejected.
func IsRelevant(title string) bool {
	lower := strings.ToLower(title)
	for _, s := range denyList {
		if strings.Contains(lower, s) {
			return false
		}
	}
	for _, s := range allowList {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}
