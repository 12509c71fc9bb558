package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/topicscope/pkg/domain"
)

// SessionRepository handles research session records
type SessionRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

type sessionSQL struct {
	ID                 string    `db:"id"`
	StartedAt          time.Time `db:"started_at"`
	TopicsResearched   int       `db:"topics_researched"`
	HighQualityCount   int       `db:"high_quality_count"`
	VideosAnalyzed     int       `db:"videos_analyzed"`
	CompetitorsChecked int       `db:"competitors_checked"`
	DurationMs         int64     `db:"duration_ms"`
	CreatedAt          time.Time `db:"created_at"`
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db, now: time.Now}
}

// SaveSession stores a session summary, replacing a session with the same id
func (r *SessionRepository) SaveSession(ctx context.Context, s domain.Session) error {
	rec := sessionSQL{
		ID:                 s.ID,
		StartedAt:          s.StartedAt.UTC(),
		TopicsResearched:   s.TopicsResearched,
		HighQualityCount:   s.HighQualityCount,
		VideosAnalyzed:     s.VideosAnalyzed,
		CompetitorsChecked: s.CompetitorsChecked,
		DurationMs:         s.Duration.Milliseconds(),
		CreatedAt:          r.now().UTC(),
	}
	query := `
		INSERT OR REPLACE INTO sessions (
			id, started_at, topics_researched, high_quality_count,
			videos_analyzed, competitors_checked, duration_ms, created_at
		) VALUES (
			:id, :started_at, :topics_researched, :high_quality_count,
			:videos_analyzed, :competitors_checked, :duration_ms, :created_at
		)
	`
	return withLockRetry(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		return nil
	})
}

// GetSessions returns sessions created within the last days, newest first
func (r *SessionRepository) GetSessions(ctx context.Context, days int) ([]domain.Session, error) {
	var recs []sessionSQL
	err := r.db.SelectContext(ctx, &recs,
		"SELECT * FROM sessions WHERE created_at >= ? ORDER BY created_at DESC", r.now().UTC().AddDate(0, 0, -days))
	if err != nil {
		return nil, fmt.Errorf("get sessions: %w", err)
	}

	res := make([]domain.Session, len(recs))
	for i, rec := range recs {
		res[i] = domain.Session{
			ID:                 rec.ID,
			StartedAt:          rec.StartedAt,
			TopicsResearched:   rec.TopicsResearched,
			HighQualityCount:   rec.HighQualityCount,
			VideosAnalyzed:     rec.VideosAnalyzed,
			CompetitorsChecked: rec.CompetitorsChecked,
			Duration:           time.Duration(rec.DurationMs) * time.Millisecond,
		}
	}
	return res, nil
}

// SessionTotals aggregates sessions created within the last days
func (r *SessionRepository) SessionTotals(ctx context.Context, days int) (domain.Analytics, error) {
	var totals struct {
		Sessions    int   `db:"sessions"`
		Topics      int   `db:"topics"`
		HighQuality int   `db:"high_quality"`
		DurationMs  int64 `db:"duration_ms"`
	}
	query := `
		SELECT COUNT(*) AS sessions,
		       COALESCE(SUM(topics_researched), 0) AS topics,
		       COALESCE(SUM(high_quality_count), 0) AS high_quality,
		       COALESCE(SUM(duration_ms), 0) AS duration_ms
		FROM sessions WHERE created_at >= ?
	`
	if err := r.db.GetContext(ctx, &totals, query, r.now().UTC().AddDate(0, 0, -days)); err != nil {
		return domain.Analytics{}, fmt.Errorf("get session totals: %w", err)
	}

	res := domain.Analytics{
		Days:              days,
		TotalSessions:     totals.Sessions,
		TopicsResearched:  totals.Topics,
		HighQualityTopics: totals.HighQuality,
		TotalDuration:     float64(totals.DurationMs) / 1000,
	}
	if totals.Sessions > 0 {
		res.AvgTopicsPerSession = float64(totals.Topics) / float64(totals.Sessions)
	}
	return res, nil
}
