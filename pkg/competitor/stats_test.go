package competitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/topicscope/pkg/domain"
)

func TestUploadFrequency(t *testing.T) {
	day := func(n int) time.Time { return testNow.AddDate(0, 0, -n) }
	tests := []struct {
		name        string
		videos      []domain.Video
		perWeek     float64
		consistency string
	}{
		{name: "no videos", perWeek: 0, consistency: ConsistencyUnknown},
		{name: "single video", videos: []domain.Video{{PublishedAt: day(1)}}, consistency: ConsistencyUnknown},
		{name: "same day", videos: []domain.Video{{PublishedAt: day(1)}, {PublishedAt: day(1).Add(time.Hour)}},
			consistency: ConsistencyUnknown},
		{name: "one dated", videos: []domain.Video{{PublishedAt: day(1)}, {}}, consistency: ConsistencyUnknown},
		{name: "daily", videos: []domain.Video{{PublishedAt: day(0)}, {PublishedAt: day(1)}, {PublishedAt: day(2)},
			{PublishedAt: day(3)}, {PublishedAt: day(4)}, {PublishedAt: day(5)}, {PublishedAt: day(6)}, {PublishedAt: day(7)}},
			perWeek: 8, consistency: ConsistencyDaily},
		{name: "frequent", videos: []domain.Video{{PublishedAt: day(0)}, {PublishedAt: day(3)}, {PublishedAt: day(7)}},
			perWeek: 3, consistency: ConsistencyFrequent},
		{name: "weekly", videos: []domain.Video{{PublishedAt: day(0)}, {PublishedAt: day(7)}, {PublishedAt: day(14)}},
			perWeek: 1.5, consistency: ConsistencyWeekly},
		{name: "occasional", videos: []domain.Video{{PublishedAt: day(0)}, {PublishedAt: day(30)}},
			perWeek: 0.5, consistency: ConsistencyOccasional},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := uploadFrequency(tt.videos)
			assert.InDelta(t, tt.perWeek, res.VideosPerWeek, 0.001)
			assert.Equal(t, tt.consistency, res.Consistency)
		})
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]string{
		"Complete Go Tutorial":             "tutorial",
		"How to deploy on Kubernetes":      "how-to",
		"how-to: write tests":              "how-to",
		"iPhone 16 Review":                 "review",
		"Go versus Rust":                   "comparison",
		"Vim tips for beginners":           "tips",
		"Ultimate guide to SQL":            "guide",
		"Tutorial review":                  "tutorial",
		"My week in Berlin":                FormatOther,
		"Docker vs Podman complete review": "review",
	}
	for title, want := range tests {
		assert.Equal(t, want, FormatOf(title), title)
	}
}

func TestBestFormat(t *testing.T) {
	t.Run("no videos", func(t *testing.T) {
		assert.Equal(t, domain.FormatPerformance{Format: FormatUnknown}, bestFormat(nil))
	})

	t.Run("highest average wins", func(t *testing.T) {
		videos := []domain.Video{
			{Title: "Go tutorial", ViewCount: 100},
			{Title: "Rust tutorial", ViewCount: 300},
			{Title: "Laptop review", ViewCount: 150},
			{Title: "random vlog", ViewCount: 500},
		}
		assert.Equal(t, domain.FormatPerformance{Format: FormatOther, AvgViews: 500, Count: 1}, bestFormat(videos))
	})

	t.Run("tie goes to taxonomy order", func(t *testing.T) {
		videos := []domain.Video{
			{Title: "Ultimate guide", ViewCount: 200},
			{Title: "Go tutorial", ViewCount: 200},
		}
		assert.Equal(t, "tutorial", bestFormat(videos).Format)
	})
}

func TestAnalyzePerformance(t *testing.T) {
	t.Run("no videos", func(t *testing.T) {
		res := analyzePerformance(nil)
		assert.Zero(t, res.avgViews)
		assert.Empty(t, res.topVideos)
	})

	t.Run("zero views excluded from averages", func(t *testing.T) {
		videos := []domain.Video{
			{ID: "1", ViewCount: 0, LikeCount: 5},
			{ID: "2", ViewCount: 100, LikeCount: 10},
			{ID: "3", ViewCount: 300, LikeCount: 3, CommentCount: 3},
			{ID: "4", ViewCount: 200},
			{ID: "5", ViewCount: 50},
			{ID: "6", ViewCount: 400},
		}
		res := analyzePerformance(videos)
		assert.InDelta(t, 210, res.avgViews, 0.001)
		assert.InDelta(t, 200, res.medianViews, 0.001)
		assert.InDelta(t, (10.0+2.0)/5, res.avgEngagement, 0.001)
		assert.Len(t, res.topVideos, 5)
		assert.Equal(t, "6", res.topVideos[0].ID)
		assert.Equal(t, "5", res.topVideos[4].ID)
	})

	t.Run("even median", func(t *testing.T) {
		res := analyzePerformance([]domain.Video{{ViewCount: 10}, {ViewCount: 20}})
		assert.InDelta(t, 15, res.medianViews, 0.001)
	})
}

func TestContentThemes(t *testing.T) {
	videos := []domain.Video{
		{Title: "Learn Python fast"},
		{Title: "Python and Django"},
		{Title: "Django models explained"},
		{Title: "Python tips"},
	}
	assert.Equal(t, []string{"python", "django", "learn", "models", "explained"}, contentThemes(videos, 10))
	assert.Equal(t, []string{"python", "django"}, contentThemes(videos, 2))
}

func TestEngagementRate(t *testing.T) {
	assert.InDelta(t, 5.0, EngagementRate(domain.Video{ViewCount: 200, LikeCount: 8, CommentCount: 2}), 0.001)
	assert.Zero(t, EngagementRate(domain.Video{LikeCount: 10}))
}
