package trend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/topicscope/pkg/domain"
)

func TestAnalyze(t *testing.T) {
	videos := []domain.Video{
		{ID: "v1", Title: "Golang Generics Explained", ViewCount: 1000, LikeCount: 50, CommentCount: 50,
			Tags: []string{"Go", "Generics"}, CategoryID: "28"},
		{ID: "v2", Title: "Generics in Rust explained", ViewCount: 3000, Tags: []string{"go"}, CategoryID: "28"},
		{ID: "v3", Title: "Cooking pasta", CategoryID: "26"},
	}
	res := Analyze(videos)

	assert.Equal(t, 3, res.TotalVideos)
	assert.Equal(t, []string{"generics", "explained", "golang", "cooking", "pasta"}, res.Keywords())
	assert.Equal(t, 2, res.TopKeywords[0].Count)
	assert.Equal(t, []domain.TermCount{{Term: "go", Count: 2}, {Term: "generics", Count: 1}}, res.TopTags)
	assert.Equal(t, []domain.CategoryCount{
		{ID: "28", Name: "Science & Technology", Count: 2},
		{ID: "26", Name: "Howto & Style", Count: 1},
	}, res.Categories)
	assert.InDelta(t, 1333.33, res.AvgViews, 0.01)
	assert.InDelta(t, 16.67, res.AvgLikes, 0.01)
	// v1 at 10%, the others without engagement
	assert.InDelta(t, 3.33, res.AvgEngagement, 0.01)
	require.Len(t, res.TopPerforming, 3)
	assert.Equal(t, "v2", res.TopPerforming[0].ID)
	assert.Equal(t, "v1", res.TopPerforming[1].ID)
}

func TestAnalyze_Limits(t *testing.T) {
	var videos []domain.Video
	for i := range 30 {
		videos = append(videos, domain.Video{ID: fmt.Sprintf("v%d", i), Title: fmt.Sprintf("keyword%02d", i),
			Tags: []string{fmt.Sprintf("tag%d", i)}, ViewCount: int64(i)})
	}
	res := Analyze(videos)
	assert.Len(t, res.TopKeywords, 20)
	assert.Equal(t, "keyword00", res.TopKeywords[0].Term)
	assert.Len(t, res.TopTags, 20)
	require.Len(t, res.TopPerforming, 5)
	assert.Equal(t, "v29", res.TopPerforming[0].ID)
	assert.Equal(t, []domain.CategoryCount{{ID: "", Name: "Unknown", Count: 30}}, res.Categories)
}

func TestAnalyze_Empty(t *testing.T) {
	res := Analyze(nil)
	assert.Zero(t, res.TotalVideos)
	assert.Empty(t, res.TopKeywords)
	assert.Empty(t, res.Categories)
	assert.Empty(t, res.TopPerforming)
	assert.Zero(t, res.AvgViews)
}

func reportOf(keywords ...string) domain.TrendReport {
	res := domain.TrendReport{}
	for i, k := range keywords {
		res.TopKeywords = append(res.TopKeywords, domain.TermCount{Term: k, Count: len(keywords) - i})
	}
	return res
}

func TestEmerging(t *testing.T) {
	t.Run("no previous report", func(t *testing.T) {
		cur := reportOf("k1", "k2", "k3", "k4", "k5", "k6", "k7", "k8", "k9", "k10", "k11", "k12")
		assert.Equal(t, []string{"k1", "k2", "k3", "k4", "k5", "k6", "k7", "k8", "k9", "k10"}, Emerging(cur, nil))
	})

	t.Run("new and climbing keywords", func(t *testing.T) {
		prev := reportOf("x1", "x2", "x3", "x4", "x5", "x6", "x7", "b", "c")
		cur := reportOf("b", "n1", "c", "n2", "n3", "n4", "n5", "n6", "x1")
		// b climbed 7 positions and c 6, x1 dropped
		assert.Equal(t, []string{"n1", "n2", "n3", "n4", "n5", "b", "c"}, Emerging(cur, &prev))
	})

	t.Run("small moves are not emerging", func(t *testing.T) {
		prev := reportOf("a", "b", "c", "d", "e", "f")
		cur := reportOf("f", "e", "d", "c", "b", "a")
		assert.Empty(t, Emerging(cur, &prev))
	})
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "Gaming", CategoryName("20"))
	assert.Equal(t, "Education", CategoryName("27"))
	assert.Equal(t, "Unknown", CategoryName("99"))
	assert.Equal(t, "Unknown", CategoryName(""))
}
