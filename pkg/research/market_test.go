package research

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/topicscope/pkg/domain"
	"github.com/umputun/topicscope/pkg/research/mocks"
)

func TestPipeline_AnalyzeKeywords(t *testing.T) {
	t.Run("rates keywords", func(t *testing.T) {
		deps := newTestDeps()
		kw := &mocks.KeywordAnalyzerMock{
			AnalyzeKeywordsFunc: func(ctx context.Context, keywords []string) []domain.KeywordCompetition {
				res := make([]domain.KeywordCompetition, 0, len(keywords))
				for _, k := range keywords {
					res = append(res, domain.KeywordCompetition{Keyword: k, Level: 4.2})
				}
				return res
			},
		}
		p := deps.pipeline(Config{})
		p.Keywords = kw

		res, err := p.AnalyzeKeywords(context.Background(), []string{"golang", "rust"})
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "rust", res[1].Keyword)
		assert.Empty(t, deps.store.SaveSessionCalls())
	})

	t.Run("interrupted", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		p := newTestDeps().pipeline(Config{})
		p.Keywords = &mocks.KeywordAnalyzerMock{
			AnalyzeKeywordsFunc: func(ctx context.Context, keywords []string) []domain.KeywordCompetition {
				cancel()
				return []domain.KeywordCompetition{{Keyword: keywords[0]}}
			},
		}
		res, err := p.AnalyzeKeywords(ctx, []string{"a", "b"})
		require.ErrorIs(t, err, context.Canceled)
		assert.Len(t, res, 1)
	})

	t.Run("no keywords", func(t *testing.T) {
		p := newTestDeps().pipeline(Config{})
		p.Keywords = &mocks.KeywordAnalyzerMock{}
		_, err := p.AnalyzeKeywords(context.Background(), nil)
		require.EqualError(t, err, "no keywords to analyze")
	})

	t.Run("not configured", func(t *testing.T) {
		_, err := newTestDeps().pipeline(Config{}).AnalyzeKeywords(context.Background(), []string{"go"})
		require.Error(t, err)
	})
}

func TestPipeline_CaptureTrends(t *testing.T) {
	t.Run("captures and records session", func(t *testing.T) {
		deps := newTestDeps()
		tracker := &mocks.TrendTrackerMock{
			CaptureFunc: func(ctx context.Context) (domain.TrendSnapshot, error) {
				return domain.TrendSnapshot{ID: 3, Report: domain.TrendReport{TotalVideos: 40}, Emerging: []string{"election"}}, nil
			},
		}
		p := deps.pipeline(Config{})
		p.Trends = tracker

		snap, err := p.CaptureTrends(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), snap.ID)
		require.Len(t, deps.store.SaveSessionCalls(), 1)
		assert.Equal(t, 40, deps.store.SaveSessionCalls()[0].Session.VideosAnalyzed)
		require.Len(t, deps.reporter.SummaryCalls(), 1)
	})

	t.Run("capture failure still records session", func(t *testing.T) {
		deps := newTestDeps()
		p := deps.pipeline(Config{})
		p.Trends = &mocks.TrendTrackerMock{
			CaptureFunc: func(ctx context.Context) (domain.TrendSnapshot, error) {
				return domain.TrendSnapshot{}, errors.New("no trending videos fetched")
			},
		}
		_, err := p.CaptureTrends(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "capture trends")
		assert.Len(t, deps.store.SaveSessionCalls(), 1)
	})

	t.Run("run in progress", func(t *testing.T) {
		p := newTestDeps().pipeline(Config{})
		tracker := &mocks.TrendTrackerMock{}
		p.Trends = tracker
		p.mu.Lock()
		defer p.mu.Unlock()
		_, err := p.CaptureTrends(context.Background())
		require.ErrorIs(t, err, ErrRunInProgress)
		assert.Empty(t, tracker.CaptureCalls())
	})

	t.Run("not configured", func(t *testing.T) {
		_, err := newTestDeps().pipeline(Config{}).CaptureTrends(context.Background())
		require.Error(t, err)
		_, err = newTestDeps().pipeline(Config{}).RecentTrends(context.Background(), 7)
		require.Error(t, err)
	})
}

func TestPipeline_RecentTrends(t *testing.T) {
	p := newTestDeps().pipeline(Config{})
	tracker := &mocks.TrendTrackerMock{
		RecentFunc: func(ctx context.Context, days int) ([]domain.TrendSnapshot, error) {
			return []domain.TrendSnapshot{{ID: 2}, {ID: 1}}, nil
		},
	}
	p.Trends = tracker

	res, err := p.RecentTrends(context.Background(), 14)
	require.NoError(t, err)
	assert.Len(t, res, 2)
	require.Len(t, tracker.RecentCalls(), 1)
	assert.Equal(t, 14, tracker.RecentCalls()[0].Days)
}
