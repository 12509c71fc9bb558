package research

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/topicscope/pkg/domain"
)

// AnalyzeKeywords rates competition of each keyword. It does not take the run lock and records no session.
func (p *Pipeline) AnalyzeKeywords(ctx context.Context, keywords []string) ([]domain.KeywordCompetition, error) {
	if p.Keywords == nil {
		return nil, errors.New("keyword analyzer is not configured")
	}
	if len(keywords) == 0 {
		return nil, errors.New("no keywords to analyze")
	}
	lgr.Printf("[INFO] analyzing competition for %d keywords", len(keywords))
	res := p.Keywords.AnalyzeKeywords(ctx, keywords)
	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("keyword analysis interrupted after %d of %d: %w", len(res), len(keywords), err)
	}
	return res, nil
}

// CaptureTrends takes a new trend snapshot and records a session counting the analyzed videos
func (p *Pipeline) CaptureTrends(ctx context.Context) (domain.TrendSnapshot, error) {
	if p.Trends == nil {
		return domain.TrendSnapshot{}, errors.New("trend tracker is not configured")
	}
	if !p.mu.TryLock() {
		return domain.TrendSnapshot{}, ErrRunInProgress
	}
	defer p.mu.Unlock()

	sess := p.newSession()
	snap, err := p.Trends.Capture(ctx)
	sess.VideosAnalyzed = snap.Report.TotalVideos
	sess.Duration = p.now().Sub(sess.StartedAt)
	p.finishSession(ctx, sess)
	if err != nil {
		return snap, fmt.Errorf("capture trends: %w", err)
	}
	return snap, nil
}

// RecentTrends lists trend snapshots of the last days, newest first
func (p *Pipeline) RecentTrends(ctx context.Context, days int) ([]domain.TrendSnapshot, error) {
	if p.Trends == nil {
		return nil, errors.New("trend tracker is not configured")
	}
	return p.Trends.Recent(ctx, days)
}
