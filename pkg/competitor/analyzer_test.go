package competitor

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/topicscope/pkg/competitor/mocks"
	"github.com/umputun/topicscope/pkg/domain"
)

var testNow = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

func newTestAnalyzer(p Provider) *Analyzer {
	a := NewAnalyzer(p)
	a.now = func() time.Time { return testNow }
	return a
}

func TestAnalyzer_AnalyzeCompetitor(t *testing.T) {
	provider := &mocks.ProviderMock{
		ChannelFunc: func(ctx context.Context, channelID string) (*domain.Channel, error) {
			return &domain.Channel{ID: channelID, Title: "Go Channel", SubscriberCount: 1000, UploadsPlaylist: "UU1"}, nil
		},
		PlaylistItemsFunc: func(ctx context.Context, playlistID, pageToken string, maxResults int) ([]domain.PlaylistItem, string, error) {
			return []domain.PlaylistItem{
				{VideoID: "v1", Title: "Golang tutorial basics", PublishedAt: testNow.AddDate(0, 0, -1)},
				{VideoID: "v2", Title: "Golang review of generics", PublishedAt: testNow.AddDate(0, 0, -8)},
				{VideoID: "v3", Title: "Rust vs Golang", PublishedAt: testNow.AddDate(0, 0, -15)},
				{VideoID: "old", Title: "ancient video", PublishedAt: testNow.AddDate(0, 0, -40)},
			}, "", nil
		},
		VideoStatsFunc: func(ctx context.Context, ids []string) ([]domain.Video, error) {
			stats := map[string]domain.Video{
				"v1": {ID: "v1", ViewCount: 1000, LikeCount: 90, CommentCount: 10},
				"v2": {ID: "v2", ViewCount: 3000, LikeCount: 150, CommentCount: 30},
				"v3": {ID: "v3", ViewCount: 2000, LikeCount: 20},
			}
			res := make([]domain.Video, 0, len(ids))
			for _, id := range ids {
				res = append(res, stats[id])
			}
			return res, nil
		},
	}

	snap := newTestAnalyzer(provider).AnalyzeCompetitor(context.Background(), "UC1", 30)
	assert.Equal(t, "UC1", snap.ChannelID)
	assert.Equal(t, "Go Channel", snap.ChannelTitle)
	assert.Equal(t, int64(1000), snap.SubscriberCount)
	assert.Equal(t, 3, snap.RecentVideos)
	assert.InDelta(t, 2000, snap.AvgViews, 0.001)
	assert.InDelta(t, 2000, snap.MedianViews, 0.001)
	assert.InDelta(t, (10.0+6.0+1.0)/3, snap.AvgEngagementRate, 0.001)
	require.Len(t, snap.TopVideos, 3)
	assert.Equal(t, "v2", snap.TopVideos[0].ID)
	assert.Equal(t, "Golang review of generics", snap.TopVideos[0].Title)
	assert.Equal(t, "golang", snap.ContentThemes[0])
	assert.Equal(t, "review", snap.BestFormat.Format)
	assert.InDelta(t, 1.5, snap.UploadFrequency.VideosPerWeek, 0.001)
	assert.Equal(t, ConsistencyWeekly, snap.UploadFrequency.Consistency)

	require.Len(t, provider.VideoStatsCalls(), 1)
	assert.Equal(t, []string{"v1", "v2", "v3"}, provider.VideoStatsCalls()[0].Ids)
}

func TestAnalyzer_AnalyzeCompetitorFailures(t *testing.T) {
	t.Run("channel lookup failed", func(t *testing.T) {
		provider := &mocks.ProviderMock{
			ChannelFunc: func(ctx context.Context, channelID string) (*domain.Channel, error) {
				return nil, errors.New("not found")
			},
		}
		snap := newTestAnalyzer(provider).AnalyzeCompetitor(context.Background(), "UC1", 30)
		assert.True(t, snap.Empty())
		assert.Empty(t, provider.PlaylistItemsCalls())
	})

	t.Run("uploads failed", func(t *testing.T) {
		provider := &mocks.ProviderMock{
			ChannelFunc: func(ctx context.Context, channelID string) (*domain.Channel, error) {
				return &domain.Channel{ID: channelID, Title: "x", UploadsPlaylist: "UU1"}, nil
			},
			PlaylistItemsFunc: func(ctx context.Context, playlistID, pageToken string, maxResults int) ([]domain.PlaylistItem, string, error) {
				return nil, "", errors.New("quota exceeded")
			},
		}
		snap := newTestAnalyzer(provider).AnalyzeCompetitor(context.Background(), "UC1", 30)
		assert.True(t, snap.Empty())
	})

	t.Run("no recent videos", func(t *testing.T) {
		provider := &mocks.ProviderMock{
			ChannelFunc: func(ctx context.Context, channelID string) (*domain.Channel, error) {
				return &domain.Channel{ID: channelID, Title: "Quiet", UploadsPlaylist: "UU1"}, nil
			},
			PlaylistItemsFunc: func(ctx context.Context, playlistID, pageToken string, maxResults int) ([]domain.PlaylistItem, string, error) {
				return []domain.PlaylistItem{{VideoID: "old", Title: "old one", PublishedAt: testNow.AddDate(-1, 0, 0)}}, "", nil
			},
		}
		snap := newTestAnalyzer(provider).AnalyzeCompetitor(context.Background(), "UC1", 30)
		assert.False(t, snap.Empty())
		assert.Equal(t, 0, snap.RecentVideos)
		assert.Zero(t, snap.AvgViews)
		assert.Equal(t, FormatUnknown, snap.BestFormat.Format)
		assert.Equal(t, ConsistencyUnknown, snap.UploadFrequency.Consistency)
		assert.Empty(t, provider.VideoStatsCalls())
	})
}

func TestAnalyzer_RecentUploads(t *testing.T) {
	t.Run("pages until limit and batches stats", func(t *testing.T) {
		page := func(start int) []domain.PlaylistItem {
			res := make([]domain.PlaylistItem, 0, 50)
			for i := start; i < start+50; i++ {
				res = append(res, domain.PlaylistItem{VideoID: fmt.Sprintf("v%d", i), Title: fmt.Sprintf("t%d", i),
					PublishedAt: testNow.Add(-time.Duration(i) * time.Minute)})
			}
			return res
		}
		provider := &mocks.ProviderMock{
			PlaylistItemsFunc: func(ctx context.Context, playlistID, pageToken string, maxResults int) ([]domain.PlaylistItem, string, error) {
				switch pageToken {
				case "":
					return page(0), "p2", nil
				case "p2":
					return page(50), "p3", nil
				}
				return page(100), "", nil
			},
			VideoStatsFunc: func(ctx context.Context, ids []string) ([]domain.Video, error) {
				res := make([]domain.Video, 0, len(ids))
				for _, id := range ids {
					res = append(res, domain.Video{ID: id, ViewCount: 10})
				}
				return res, nil
			},
		}
		a := newTestAnalyzer(provider)
		videos, err := a.RecentUploads(context.Background(), "UU1", 30, 70)
		require.NoError(t, err)
		require.Len(t, videos, 70)
		assert.Equal(t, "v0", videos[0].ID)
		assert.Equal(t, "v69", videos[69].ID)
		assert.Equal(t, "t69", videos[69].Title)

		calls := provider.PlaylistItemsCalls()
		require.Len(t, calls, 2)
		assert.Equal(t, 50, calls[0].MaxResults)
		assert.Equal(t, 20, calls[1].MaxResults)
		assert.Equal(t, "p2", calls[1].PageToken)

		stats := provider.VideoStatsCalls()
		require.Len(t, stats, 2)
		assert.Len(t, stats[0].Ids, 50)
		assert.Len(t, stats[1].Ids, 20)
	})

	t.Run("skips undated and keeps missing stats", func(t *testing.T) {
		provider := &mocks.ProviderMock{
			PlaylistItemsFunc: func(ctx context.Context, playlistID, pageToken string, maxResults int) ([]domain.PlaylistItem, string, error) {
				return []domain.PlaylistItem{
					{VideoID: "v1", Title: "one", PublishedAt: testNow.Add(-time.Hour)},
					{VideoID: "nodate", Title: "no date"},
					{VideoID: "v2", Title: "two", PublishedAt: testNow.Add(-2 * time.Hour)},
				}, "", nil
			},
			VideoStatsFunc: func(ctx context.Context, ids []string) ([]domain.Video, error) {
				return []domain.Video{{ID: "v2", ViewCount: 5}}, nil
			},
		}
		videos, err := newTestAnalyzer(provider).RecentUploads(context.Background(), "UU1", 30, 50)
		require.NoError(t, err)
		require.Len(t, videos, 2)
		assert.Equal(t, "v1", videos[0].ID)
		assert.Zero(t, videos[0].ViewCount)
		assert.Equal(t, int64(5), videos[1].ViewCount)
		assert.Equal(t, "two", videos[1].Title)
	})

	t.Run("empty playlist id", func(t *testing.T) {
		videos, err := newTestAnalyzer(&mocks.ProviderMock{}).RecentUploads(context.Background(), "", 30, 50)
		require.NoError(t, err)
		assert.Empty(t, videos)
	})

	t.Run("stats failure", func(t *testing.T) {
		provider := &mocks.ProviderMock{
			PlaylistItemsFunc: func(ctx context.Context, playlistID, pageToken string, maxResults int) ([]domain.PlaylistItem, string, error) {
				return []domain.PlaylistItem{{VideoID: "v1", Title: "one", PublishedAt: testNow}}, "", nil
			},
			VideoStatsFunc: func(ctx context.Context, ids []string) ([]domain.Video, error) {
				return nil, errors.New("boom")
			},
		}
		_, err := newTestAnalyzer(provider).RecentUploads(context.Background(), "UU1", 30, 50)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "get video stats")
	})
}

func TestAnalyzer_CompareCompetitors(t *testing.T) {
	channels := map[string]*domain.Channel{
		"A": {ID: "A", Title: "Alpha", SubscriberCount: 1000, UploadsPlaylist: "UA"},
		"B": {ID: "B", Title: "Beta", SubscriberCount: 3000, UploadsPlaylist: "UB"},
	}
	uploads := map[string][]domain.PlaylistItem{
		"UA": {
			{VideoID: "a1", Title: "python tutorial basics", PublishedAt: testNow.AddDate(0, 0, -1)},
			{VideoID: "a2", Title: "python tutorial advanced", PublishedAt: testNow.AddDate(0, 0, -2)},
			{VideoID: "a3", Title: "django course", PublishedAt: testNow.AddDate(0, 0, -3)},
		},
		"UB": {
			{VideoID: "b1", Title: "python review", PublishedAt: testNow.AddDate(0, 0, -1)},
			{VideoID: "b2", Title: "django guide", PublishedAt: testNow.AddDate(0, 0, -15)},
		},
	}
	views := map[string]domain.Video{
		"a1": {ID: "a1", ViewCount: 100, LikeCount: 20},
		"a2": {ID: "a2", ViewCount: 100, LikeCount: 20},
		"a3": {ID: "a3", ViewCount: 100, LikeCount: 20},
		"b1": {ID: "b1", ViewCount: 5000, LikeCount: 50},
		"b2": {ID: "b2", ViewCount: 5000, LikeCount: 50},
	}
	provider := &mocks.ProviderMock{
		ChannelFunc: func(ctx context.Context, channelID string) (*domain.Channel, error) {
			if ch, ok := channels[channelID]; ok {
				return ch, nil
			}
			return nil, errors.New("channel not found")
		},
		PlaylistItemsFunc: func(ctx context.Context, playlistID, pageToken string, maxResults int) ([]domain.PlaylistItem, string, error) {
			return uploads[playlistID], "", nil
		},
		VideoStatsFunc: func(ctx context.Context, ids []string) ([]domain.Video, error) {
			res := make([]domain.Video, 0, len(ids))
			for _, id := range ids {
				res = append(res, views[id])
			}
			return res, nil
		},
	}

	summary := newTestAnalyzer(provider).CompareCompetitors(context.Background(), []string{"A", "missing", "B"}, 30)
	require.Len(t, summary.Competitors, 2)
	assert.Equal(t, "Alpha", summary.BestEngagement)
	assert.Equal(t, "Beta", summary.MostViews)
	assert.Equal(t, "Alpha", summary.MostFrequent)
	assert.InDelta(t, 2000, summary.AvgSubscriberCount, 0.001)
	assert.Equal(t, []string{"python", "django"}, summary.CommonThemes)
}

func TestCompare_Empty(t *testing.T) {
	summary := Compare(nil)
	assert.Empty(t, summary.Competitors)
	assert.Empty(t, summary.CommonThemes)
	assert.Empty(t, summary.BestEngagement)
	assert.Zero(t, summary.AvgSubscriberCount)
}
