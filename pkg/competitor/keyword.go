package competitor

import (
	"context"
	"math"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/topicscope/pkg/domain"
)

//go:generate moq -out mocks/searcher.go -pkg mocks -skip-ensure -fmt goimports . Searcher

const (
	keywordWindow      = 30 * 24 * time.Hour
	keywordMaxResults  = 50
	keywordTopChannels = 10
	keywordErrorLevel  = 5
)

// Searcher finds videos by keyword
type Searcher interface {
	Search(ctx context.Context, req domain.SearchRequest) ([]domain.Video, error)
}

// KeywordAnalyzer rates keyword saturation from the most viewed uploads of the last 30 days
type KeywordAnalyzer struct {
	searcher Searcher
	now      func() time.Time
}

// NewKeywordAnalyzer creates a keyword competition analyzer
func NewKeywordAnalyzer(searcher Searcher) *KeywordAnalyzer {
	return &KeywordAnalyzer{searcher: searcher, now: time.Now}
}

// AnalyzeKeyword searches the most viewed recent videos for the keyword and rates competition on 0..10.
// The level adds up result saturation (up to 3), average views capped at 100k (up to 4) and the top
// performer capped at 1M views (up to 3). Search failure is logged and reported with a neutral level.
func (k *KeywordAnalyzer) AnalyzeKeyword(ctx context.Context, keyword string) domain.KeywordCompetition {
	videos, err := k.searcher.Search(ctx, domain.SearchRequest{
		Query:          keyword,
		Order:          "viewCount",
		MaxResults:     keywordMaxResults,
		PublishedAfter: k.now().Add(-keywordWindow),
	})
	if err != nil {
		lgr.Printf("[WARN] can't analyze competition for %q: %v", keyword, err)
		return domain.KeywordCompetition{Keyword: keyword, Level: keywordErrorLevel, TopChannels: []string{}, Error: err.Error()}
	}

	res := domain.KeywordCompetition{Keyword: keyword, VideoCount: len(videos), TopChannels: []string{}}
	if len(videos) == 0 {
		return res
	}

	var total, top int64
	for _, v := range videos {
		total += v.ViewCount
		top = max(top, v.ViewCount)
	}
	avg := float64(total) / float64(len(videos))
	level := float64(len(videos))/keywordMaxResults*3 +
		math.Min(avg/100_000, 1)*4 +
		math.Min(float64(top)/1_000_000, 1)*3

	res.Level = math.Round(math.Min(level, 10)*10) / 10
	res.AvgViews = int64(avg)
	res.TopPerformerViews = top
	res.TopChannels = uniqueChannels(videos, keywordTopChannels)
	lgr.Printf("[DEBUG] keyword %q competition %.1f over %d videos", keyword, res.Level, res.VideoCount)
	return res
}

// AnalyzeKeywords rates each keyword in order, stopping early if ctx is done
func (k *KeywordAnalyzer) AnalyzeKeywords(ctx context.Context, keywords []string) []domain.KeywordCompetition {
	res := make([]domain.KeywordCompetition, 0, len(keywords))
	for _, kw := range keywords {
		if ctx.Err() != nil {
			break
		}
		res = append(res, k.AnalyzeKeyword(ctx, kw))
	}
	return res
}

// uniqueChannels returns distinct channel titles among the first n videos, in first-seen order
func uniqueChannels(videos []domain.Video, n int) []string {
	seen := map[string]bool{}
	res := []string{}
	for i, v := range videos {
		if i >= n {
			break
		}
		if v.ChannelTitle == "" || seen[v.ChannelTitle] {
			continue
		}
		seen[v.ChannelTitle] = true
		res = append(res, v.ChannelTitle)
	}
	return res
}
