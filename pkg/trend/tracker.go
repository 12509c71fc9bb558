package trend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/topicscope/pkg/domain"
)

//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports . Provider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// DefaultRegions are the regions tracked when none configured
var DefaultRegions = []string{"US", "GB", "CA", "AU"}

// DefaultPerRegion is the number of trending videos fetched per region when not configured
const DefaultPerRegion = 20

// previousWindow limits how far back the previous snapshot is looked up
const previousWindow = 7

// Provider returns the most popular videos of a region
type Provider interface {
	Trending(ctx context.Context, regionCode string, maxResults int) ([]domain.Video, error)
}

// Store persists trend snapshots
type Store interface {
	SaveTrend(ctx context.Context, snapshot *domain.TrendSnapshot) error
	GetTrends(ctx context.Context, days int) ([]domain.TrendSnapshot, error)
}

// Tracker captures trend snapshots over several regions and compares them with the previous one
type Tracker struct {
	provider  Provider
	store     Store
	regions   []string
	perRegion int
	now       func() time.Time
}

// NewTracker creates a tracker, empty regions and non-positive perRegion fall back to defaults
func NewTracker(provider Provider, store Store, regions []string, perRegion int) *Tracker {
	if len(regions) == 0 {
		regions = DefaultRegions
	}
	if perRegion <= 0 {
		perRegion = DefaultPerRegion
	}
	return &Tracker{provider: provider, store: store, regions: regions, perRegion: perRegion, now: time.Now}
}

// MultiRegion fetches trending videos of each region. A failed region is logged and gets no videos.
func (t *Tracker) MultiRegion(ctx context.Context) (map[string][]domain.Video, error) {
	res := make(map[string][]domain.Video, len(t.regions))
	for _, region := range t.regions {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("trending interrupted at %s: %w", region, err)
		}
		videos, err := t.provider.Trending(ctx, region, t.perRegion)
		if err != nil {
			lgr.Printf("[WARN] can't get trending videos for %s: %v", region, err)
			videos = []domain.Video{}
		}
		lgr.Printf("[INFO] retrieved %d trending videos for %s", len(videos), region)
		res[region] = videos
	}
	return res, nil
}

// Capture analyzes trending videos of all regions, finds emerging keywords against the latest
// stored snapshot and saves the new snapshot
func (t *Tracker) Capture(ctx context.Context) (domain.TrendSnapshot, error) {
	byRegion, err := t.MultiRegion(ctx)
	if err != nil {
		return domain.TrendSnapshot{}, err
	}
	var videos []domain.Video
	for _, region := range t.regions {
		videos = append(videos, byRegion[region]...)
	}
	if len(videos) == 0 {
		return domain.TrendSnapshot{}, errors.New("no trending videos fetched")
	}

	snap := domain.TrendSnapshot{Regions: t.regions, Report: Analyze(videos), CreatedAt: t.now()}
	var previous *domain.TrendReport
	if t.store != nil {
		prev, err := t.store.GetTrends(ctx, previousWindow)
		switch {
		case err != nil:
			lgr.Printf("[WARN] can't load previous trends: %v", err)
		case len(prev) > 0:
			previous = &prev[0].Report
		}
	}
	snap.Emerging = Emerging(snap.Report, previous)

	if t.store != nil {
		if err := t.store.SaveTrend(ctx, &snap); err != nil {
			return snap, fmt.Errorf("save trend snapshot: %w", err)
		}
	}
	lgr.Printf("[INFO] captured trends over %d videos, %d emerging keywords", snap.Report.TotalVideos, len(snap.Emerging))
	return snap, nil
}

// Recent returns snapshots of the last days, newest first
func (t *Tracker) Recent(ctx context.Context, days int) ([]domain.TrendSnapshot, error) {
	if t.store == nil {
		return []domain.TrendSnapshot{}, nil
	}
	res, err := t.store.GetTrends(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("get trends: %w", err)
	}
	return res, nil
}
