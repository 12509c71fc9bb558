package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/topicscope/pkg/domain"
)

func testTopics() []domain.Topic {
	return []domain.Topic{
		{
			ID:        1,
			Candidate: domain.Candidate{Title: "Go generics tutorial for beginners", Source: "search:golang"},
			Evaluation: domain.Evaluation{Importance: 90, Watchability: 85, Monetization: 80, Popularity: 88,
				Innovation: 70, TotalScore: 83.6, RecommendedAngle: "start from real code",
				Keywords: []string{"go", "generics"}, CompetitionLevel: domain.CompetitionMedium, Notes: "evergreen"},
			Category: domain.CategoryTutorial,
		},
		{
			ID:         2,
			Candidate:  domain.Candidate{Title: "Rust vs Go in 2025", Source: domain.SourceTrending},
			Evaluation: domain.Evaluation{TotalScore: 50, CompetitionLevel: domain.CompetitionHigh, Fallback: true},
			Category:   domain.CategoryComparison,
		},
	}
}

func TestConsole_Topics(t *testing.T) {
	t.Run("table only", func(t *testing.T) {
		var buf bytes.Buffer
		NewConsole(&buf, true).Topics(testTopics(), false)
		out := buf.String()
		assert.Contains(t, out, "Research Results")
		assert.Contains(t, out, "Go generics tutorial for beginners")
		assert.Contains(t, out, "83.6")
		assert.Contains(t, out, "Tutorial")
		assert.Contains(t, out, "search:golang")
		assert.NotContains(t, out, "start from real code")
	})

	t.Run("with details", func(t *testing.T) {
		var buf bytes.Buffer
		NewConsole(&buf, true).Topics(testTopics(), true)
		out := buf.String()
		assert.Contains(t, out, "#1 Go generics tutorial for beginners")
		assert.Contains(t, out, "angle:        start from real code")
		assert.Contains(t, out, "keywords:     go, generics")
		assert.Contains(t, out, "notes:        evergreen")
		assert.Contains(t, out, "scores are defaults, evaluation failed")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		NewConsole(&buf, true).Topics(nil, true)
		assert.Contains(t, buf.String(), "no topics passed the quality threshold")
	})

	t.Run("long title truncated", func(t *testing.T) {
		var buf bytes.Buffer
		long := "Very long topic title that keeps going well beyond the table column limit of sixty chars"
		NewConsole(&buf, true).Topics([]domain.Topic{{Candidate: domain.Candidate{Title: long}}}, false)
		assert.NotContains(t, buf.String(), long)
		assert.Contains(t, buf.String(), "...")
	})
}

func TestConsole_Summary(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, true).Summary(domain.Session{ID: "abc-123", TopicsResearched: 20, HighQualityCount: 5,
		VideosAnalyzed: 50, CompetitorsChecked: 3, Duration: 95 * time.Second})
	out := buf.String()
	assert.Contains(t, out, "abc-123")
	assert.Contains(t, out, "1m35s")
	assert.Contains(t, out, "topics researched:   20")
	assert.Contains(t, out, "high quality topics: 5")
	assert.Contains(t, out, "success rate:        25.0%")
	assert.Contains(t, out, "competitors checked: 3")
}

func TestConsole_Analytics(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, true).Analytics(domain.Analytics{Days: 30, TotalSessions: 4, TopicsResearched: 80,
		HighQualityTopics: 12, AvgScore: 71.25, TotalDuration: 120, AvgTopicsPerSession: 20, FavoriteCount: 2})
	out := buf.String()
	assert.Contains(t, out, "Analytics, last 30 days")
	assert.Contains(t, out, "71.2")
	assert.Contains(t, out, "2m0s")
	assert.Contains(t, out, "High quality topics")
}

func TestConsole_Competitors(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		var buf bytes.Buffer
		NewConsole(&buf, true).Competitors(domain.ComparativeSummary{
			Competitors: []domain.CompetitorSnapshot{
				{ChannelTitle: "Gopher Academy", SubscriberCount: 1000, RecentVideos: 8, AvgViews: 1500,
					AvgEngagementRate: 4.5, UploadFrequency: domain.UploadFrequency{VideosPerWeek: 2, Consistency: "frequent"},
					BestFormat: domain.FormatPerformance{Format: "Tutorial"}},
			},
			BestEngagement: "Gopher Academy", MostViews: "Gopher Academy", MostFrequent: "Gopher Academy",
			AvgSubscriberCount: 1000, CommonThemes: []string{"golang"},
		})
		out := buf.String()
		assert.Contains(t, out, "Gopher Academy")
		assert.Contains(t, out, "4.50%")
		assert.Contains(t, out, "2.0 (frequent)")
		assert.Contains(t, out, "common themes:   golang")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		NewConsole(&buf, true).Competitors(domain.ComparativeSummary{})
		assert.Contains(t, buf.String(), "no competitors analyzed")
	})
}

func TestConsole_KeywordCompetition(t *testing.T) {
	t.Run("levels", func(t *testing.T) {
		var buf bytes.Buffer
		NewConsole(&buf, true).KeywordCompetition([]domain.KeywordCompetition{
			{Keyword: "golang generics", Level: 2.4, VideoCount: 12, AvgViews: 5400, TopPerformerViews: 90000,
				TopChannels: []string{"Gopher Academy", "JustForFunc"}},
			{Keyword: "minecraft", Level: 10, VideoCount: 50},
			{Keyword: "broken", Level: 5, Error: "quota exceeded"},
		})
		out := buf.String()
		assert.Contains(t, out, "Keyword Competition")
		assert.Contains(t, out, "golang generics")
		assert.Contains(t, out, "2.4")
		assert.Contains(t, out, "Gopher Academy, JustForFunc")
		assert.Contains(t, out, "10.0")
		assert.Contains(t, out, "error")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		NewConsole(&buf, true).KeywordCompetition(nil)
		assert.Contains(t, buf.String(), "no keywords analyzed")
	})
}

func TestConsole_Trends(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, true).Trends(domain.TrendSnapshot{
		Regions: []string{"US", "GB"},
		Report: domain.TrendReport{
			TotalVideos: 40, AvgViews: 125000, AvgLikes: 3000, AvgEngagement: 2.75,
			TopKeywords:   []domain.TermCount{{Term: "election", Count: 6}, {Term: "highlights", Count: 4}},
			TopTags:       []domain.TermCount{{Term: "news", Count: 9}},
			Categories:    []domain.CategoryCount{{ID: "25", Name: "News & Politics", Count: 12}},
			TopPerforming: []domain.VideoSummary{{ID: "v1", Title: "Election night live", ViewCount: 900000}},
		},
		Emerging: []string{"election", "cricket"},
	})
	out := buf.String()
	assert.Contains(t, out, "Trends (US, GB)")
	assert.Contains(t, out, "videos: 40, avg views: 125000, avg likes: 3000, engagement: 2.75%")
	assert.Contains(t, out, "emerging: election, cricket")
	assert.Contains(t, out, "top tags: news")
	assert.Contains(t, out, "highlights")
	assert.Contains(t, out, "categories: News & Politics (12)")
	assert.Contains(t, out, "1. Election night live - 900000 views")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "привет ...", truncate("привет мир и все", 10))
}
