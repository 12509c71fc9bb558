// Package trend analyzes trending videos across regions and tracks emerging keywords between snapshots.
package trend

import (
	"sort"
	"strings"

	"github.com/umputun/topicscope/pkg/competitor"
	"github.com/umputun/topicscope/pkg/domain"
)

const (
	maxTerms         = 20
	maxTopPerforming = 5
	minKeywordLen    = 5
	maxNewKeywords   = 5
	maxFirstEmerging = 10
	maxEmerging      = 15
	minRankGain      = 5
	compareDepth     = 30
)

var categoryNames = map[string]string{
	"1":  "Film & Animation",
	"2":  "Autos & Vehicles",
	"10": "Music",
	"15": "Pets & Animals",
	"17": "Sports",
	"19": "Travel & Events",
	"20": "Gaming",
	"22": "People & Blogs",
	"23": "Comedy",
	"24": "Entertainment",
	"25": "News & Politics",
	"26": "Howto & Style",
	"27": "Education",
	"28": "Science & Technology",
	"29": "Nonprofits & Activism",
}

// CategoryName maps a YouTube video category id to its name, "Unknown" for unlisted ids
func CategoryName(id string) string {
	if name, ok := categoryNames[id]; ok {
		return name
	}
	return "Unknown"
}

// counter counts terms keeping their first-seen order for stable ranking
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(term string) {
	if _, ok := c.counts[term]; !ok {
		c.order = append(c.order, term)
	}
	c.counts[term]++
}

// top returns up to limit terms by count descending, ties by first appearance; limit <= 0 means all
func (c *counter) top(limit int) []domain.TermCount {
	res := make([]domain.TermCount, 0, len(c.order))
	for _, t := range c.order {
		res = append(res, domain.TermCount{Term: t, Count: c.counts[t]})
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Count > res[j].Count })
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res
}

// Analyze summarizes common themes of trending videos. Title words longer than four characters
// and lowercased tags are ranked by frequency, categories are counted by id.
func Analyze(videos []domain.Video) domain.TrendReport {
	words, tags, cats := newCounter(), newCounter(), newCounter()
	var views, likes int64
	var engagement float64
	for _, v := range videos {
		for _, w := range strings.Fields(strings.ToLower(v.Title)) {
			if len([]rune(w)) >= minKeywordLen {
				words.add(w)
			}
		}
		for _, tag := range v.Tags {
			tags.add(strings.ToLower(tag))
		}
		cats.add(v.CategoryID)
		views += v.ViewCount
		likes += v.LikeCount
		engagement += competitor.EngagementRate(v)
	}

	res := domain.TrendReport{
		TotalVideos:   len(videos),
		TopKeywords:   words.top(maxTerms),
		TopTags:       tags.top(maxTerms),
		Categories:    []domain.CategoryCount{},
		TopPerforming: []domain.VideoSummary{},
	}
	for _, c := range cats.top(0) {
		res.Categories = append(res.Categories, domain.CategoryCount{ID: c.Term, Name: CategoryName(c.Term), Count: c.Count})
	}
	if len(videos) == 0 {
		return res
	}

	n := float64(len(videos))
	res.AvgViews = float64(views) / n
	res.AvgLikes = float64(likes) / n
	res.AvgEngagement = engagement / n

	sorted := append([]domain.Video(nil), videos...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ViewCount > sorted[j].ViewCount })
	for _, v := range sorted[:min(maxTopPerforming, len(sorted))] {
		res.TopPerforming = append(res.TopPerforming, domain.VideoSummary{ID: v.ID, Title: v.Title, ViewCount: v.ViewCount})
	}
	return res
}

// Emerging finds keywords gaining momentum. Without a previous report the current top keywords are
// returned. Otherwise it returns keywords new to the top list followed by keywords that climbed more
// than five positions.
func Emerging(current domain.TrendReport, previous *domain.TrendReport) []string {
	cur := current.Keywords()
	if previous == nil {
		return cur[:min(maxFirstEmerging, len(cur))]
	}

	cur = cur[:min(compareDepth, len(cur))]
	prevPos := map[string]int{}
	for i, k := range previous.Keywords() {
		if i >= compareDepth {
			break
		}
		prevPos[k] = i
	}

	res := []string{}
	for _, k := range cur {
		if len(res) >= maxNewKeywords {
			break
		}
		if _, ok := prevPos[k]; !ok {
			res = append(res, k)
		}
	}
	for i, k := range cur {
		if p, ok := prevPos[k]; ok && i < p-minRankGain {
			res = append(res, k)
		}
	}
	return res[:min(maxEmerging, len(res))]
}
