// Package competitor aggregates performance statistics of competitor channels.
package competitor

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/topicscope/pkg/domain"
)

//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports . Provider

// MaxBatchSize is the maximum number of ids per statistics request
const MaxBatchSize = 50

// DefaultMaxVideos is the maximum number of recent uploads analyzed per channel
const DefaultMaxVideos = 50

// Provider is the video data source used by the analyzer
type Provider interface {
	Channel(ctx context.Context, channelID string) (*domain.Channel, error)
	PlaylistItems(ctx context.Context, playlistID, pageToken string, maxResults int) ([]domain.PlaylistItem, string, error)
	VideoStats(ctx context.Context, ids []string) ([]domain.Video, error)
}

// Analyzer builds competitor snapshots from the provider data
type Analyzer struct {
	provider  Provider
	maxVideos int
	now       func() time.Time
}

// NewAnalyzer creates a competitor analyzer
func NewAnalyzer(provider Provider) *Analyzer {
	return &Analyzer{provider: provider, maxVideos: DefaultMaxVideos, now: time.Now}
}

// AnalyzeCompetitor fetches the channel and its uploads of the last lookbackDays and aggregates them.
// Any fetch failure is logged and results in an empty snapshot.
func (a *Analyzer) AnalyzeCompetitor(ctx context.Context, channelID string, lookbackDays int) domain.CompetitorSnapshot {
	ch, err := a.provider.Channel(ctx, channelID)
	if err != nil {
		lgr.Printf("[WARN] can't get competitor channel %s: %v", channelID, err)
		return domain.CompetitorSnapshot{}
	}

	videos, err := a.RecentUploads(ctx, ch.UploadsPlaylist, lookbackDays, a.maxVideos)
	if err != nil {
		lgr.Printf("[WARN] can't get uploads of competitor %s: %v", channelID, err)
		return domain.CompetitorSnapshot{}
	}

	perf := analyzePerformance(videos)
	res := domain.CompetitorSnapshot{
		ChannelID:         channelID,
		ChannelTitle:      ch.Title,
		Description:       ch.Description,
		SubscriberCount:   ch.SubscriberCount,
		VideoCount:        ch.VideoCount,
		ViewCount:         ch.ViewCount,
		RecentVideos:      len(videos),
		AvgViews:          perf.avgViews,
		MedianViews:       perf.medianViews,
		AvgEngagementRate: perf.avgEngagement,
		TopVideos:         perf.topVideos,
		ContentThemes:     contentThemes(videos, maxThemes),
		UploadFrequency:   uploadFrequency(videos),
		BestFormat:        bestFormat(videos),
	}
	lgr.Printf("[INFO] analyzed competitor %q: %d recent videos, avg views %.0f, %s uploads",
		res.ChannelTitle, res.RecentVideos, res.AvgViews, res.UploadFrequency.Consistency)
	return res
}

// RecentUploads pages through the playlist until limit videos collected or an upload is older than
// days, then enriches the videos with statistics in batches of MaxBatchSize. The playlist is expected
// in reverse chronological order. Items without a publish date are skipped.
func (a *Analyzer) RecentUploads(ctx context.Context, playlistID string, days, limit int) ([]domain.Video, error) {
	if playlistID == "" {
		return []domain.Video{}, nil
	}
	if limit <= 0 {
		limit = a.maxVideos
	}
	cutoff := a.now().AddDate(0, 0, -days)

	var items []domain.PlaylistItem
	pageToken := ""
	for done := false; !done && len(items) < limit; {
		page, next, err := a.provider.PlaylistItems(ctx, playlistID, pageToken, min(MaxBatchSize, limit-len(items)))
		if err != nil {
			return nil, fmt.Errorf("list uploads: %w", err)
		}
		for _, it := range page {
			if it.PublishedAt.IsZero() {
				continue
			}
			if it.PublishedAt.Before(cutoff) {
				done = true
				break
			}
			items = append(items, it)
			if len(items) >= limit {
				break
			}
		}
		if next == "" || len(page) == 0 {
			break
		}
		pageToken = next
	}

	return a.enrich(ctx, items)
}

// enrich fetches statistics for playlist items, keeping the playlist order. Items missing from
// the statistics response are kept with zero counts.
func (a *Analyzer) enrich(ctx context.Context, items []domain.PlaylistItem) ([]domain.Video, error) {
	res := make([]domain.Video, 0, len(items))
	for start := 0; start < len(items); start += MaxBatchSize {
		batch := items[start:min(start+MaxBatchSize, len(items))]
		ids := make([]string, 0, len(batch))
		for _, it := range batch {
			ids = append(ids, it.VideoID)
		}

		stats, err := a.provider.VideoStats(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("get video stats: %w", err)
		}
		byID := make(map[string]domain.Video, len(stats))
		for _, v := range stats {
			byID[v.ID] = v
		}

		for _, it := range batch {
			v, ok := byID[it.VideoID]
			if !ok {
				v = domain.Video{ID: it.VideoID}
			}
			// playlist data is authoritative for title and upload date
			v.Title = it.Title
			v.PublishedAt = it.PublishedAt
			res = append(res, v)
		}
	}
	return res, nil
}

// CompareCompetitors analyzes each channel and reports the leaders and the themes shared by
// several competitors. Failed analyses are skipped.
func (a *Analyzer) CompareCompetitors(ctx context.Context, channelIDs []string, lookbackDays int) domain.ComparativeSummary {
	var snapshots []domain.CompetitorSnapshot
	for _, id := range channelIDs {
		s := a.AnalyzeCompetitor(ctx, id, lookbackDays)
		if s.Empty() {
			continue
		}
		snapshots = append(snapshots, s)
	}
	return Compare(snapshots)
}

// Compare builds the comparative summary of analyzed snapshots. Leaders are the first snapshot
// with the maximal value.
func Compare(snapshots []domain.CompetitorSnapshot) domain.ComparativeSummary {
	if len(snapshots) == 0 {
		return domain.ComparativeSummary{Competitors: []domain.CompetitorSnapshot{}, CommonThemes: []string{}}
	}

	bestEng, mostViews, mostFreq := snapshots[0], snapshots[0], snapshots[0]
	var subs float64
	for _, s := range snapshots {
		if s.AvgEngagementRate > bestEng.AvgEngagementRate {
			bestEng = s
		}
		if s.AvgViews > mostViews.AvgViews {
			mostViews = s
		}
		if s.UploadFrequency.VideosPerWeek > mostFreq.UploadFrequency.VideosPerWeek {
			mostFreq = s
		}
		subs += float64(s.SubscriberCount)
	}

	return domain.ComparativeSummary{
		Competitors:        snapshots,
		BestEngagement:     bestEng.ChannelTitle,
		MostViews:          mostViews.ChannelTitle,
		MostFrequent:       mostFreq.ChannelTitle,
		AvgSubscriberCount: subs / float64(len(snapshots)),
		CommonThemes:       commonThemes(snapshots, maxThemes),
	}
}
