package topic

import (
	"strings"

	"github.com/umputun/topicscope/pkg/domain"
)

type nicheRule struct {
	niche      domain.Niche
	indicators []string
	qualifiers []string // appended to keywords to focus searches on the niche
}

var nicheRules = []nicheRule{
	{
		niche:      domain.NicheTechnology,
		indicators: []string{"tech", "software", "coding", "programming", "developer", "ai", "ml", "data"},
		qualifiers: []string{"tech", "programming"},
	},
	{
		niche:      domain.NicheBusiness,
		indicators: []string{"business", "entrepreneur", "startup", "marketing", "finance", "money"},
		qualifiers: []string{"business", "entrepreneur"},
	},
	{
		niche:      domain.NicheEducation,
		indicators: []string{"tutorial", "learn", "course", "guide", "explained", "education"},
		qualifiers: []string{"tutorial", "course"},
	},
}

// IdentifyNiche detects the channel niche from its keywords. Indicators are matched as substrings
// of the space-joined, lowercased keywords; the first niche with a hit wins.
func IdentifyNiche(keywords []string) domain.Niche {
	text := strings.ToLower(strings.Join(keywords, " "))
	for _, r := range nicheRules {
		for _, ind := range r.indicators {
			if strings.Contains(text, ind) {
				return r.niche
			}
		}
	}
	return domain.NicheGeneral
}

// NicheFocusedKeywords returns each keyword followed by its niche-qualified variants,
// e.g. "python", "python tech", "python programming" for Technology.
func NicheFocusedKeywords(keywords []string, niche domain.Niche) []string {
	var qualifiers []string
	for _, r := range nicheRules {
		if r.niche == niche {
			qualifiers = r.qualifiers
			break
		}
	}

	res := make([]string, 0, len(keywords)*(1+len(qualifiers)))
	for _, kw := range keywords {
		res = append(res, kw)
		for _, q := range qualifiers {
			res = append(res, kw+" "+q)
		}
	}
	return res
}
