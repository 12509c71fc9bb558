package topic

import (
	"strings"

	"github.com/umputun/topicscope/pkg/domain"
)

// Dedupe drops candidates whose lowercased title was already seen, keeping the first occurrence
// and the original order.
func Dedupe(candidates []domain.Candidate) []domain.Candidate {
	seen := make(map[string]struct{}, len(candidates))
	res := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		key := strings.ToLower(c.Title)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		res = append(res, c)
	}
	return res
}
