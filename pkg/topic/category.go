package topic

import (
	"strings"

	"github.com/umputun/topicscope/pkg/domain"
)

// CategoryRule maps a category to the substrings selecting it
type CategoryRule struct {
	Category domain.Category
	Keywords []string
}

// DefaultCategories is the ordered category table, first match wins
var DefaultCategories = []CategoryRule{
	{Category: domain.CategoryTutorial, Keywords: []string{"tutorial", "how to", "guide", "learn"}},
	{Category: domain.CategoryReview, Keywords: []string{"review", "unbox", "test"}},
	{Category: domain.CategoryComparison, Keywords: []string{"vs", "versus", "comparison", "compare"}},
	{Category: domain.CategoryTips, Keywords: []string{"tips", "tricks", "hacks"}},
	{Category: domain.CategoryNews, Keywords: []string{"news", "update", "announcement"}},
}

// Categorize returns the category of a title using DefaultCategories
func Categorize(title string) domain.Category {
	return CategorizeWith(DefaultCategories, title)
}

// CategorizeWith returns the first category of rules with a keyword contained in the lowercased
// title, or General if none match.
func CategorizeWith(rules []CategoryRule, title string) domain.Category {
	lower := strings.ToLower(title)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Category
			}
		}
	}
	return domain.CategoryGeneral
}
