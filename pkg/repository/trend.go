package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/topicscope/pkg/domain"
)

// TrendRepository handles trend snapshot records
type TrendRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

type trendSQL struct {
	ID        int64       `db:"id"`
	Regions   keywordsSQL `db:"regions"`
	Report    reportSQL   `db:"report"`
	Emerging  keywordsSQL `db:"emerging"`
	CreatedAt time.Time   `db:"created_at"`
}

// reportSQL is a trend report stored as a JSON object
type reportSQL domain.TrendReport

// Value implements driver.Valuer for database storage
func (r reportSQL) Value() (driver.Value, error) {
	data, err := json.Marshal(domain.TrendReport(r))
	if err != nil {
		return nil, fmt.Errorf("marshal trend report: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (r *reportSQL) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*r = reportSQL{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unexpected trend report type %T", value)
	}
	var rep domain.TrendReport
	if len(data) > 0 {
		if err := json.Unmarshal(data, &rep); err != nil {
			return fmt.Errorf("unmarshal trend report: %w", err)
		}
	}
	*r = reportSQL(rep)
	return nil
}

// NewTrendRepository creates a new trend repository
func NewTrendRepository(db *sqlx.DB) *TrendRepository {
	return &TrendRepository{db: db, now: time.Now}
}

// SaveTrend inserts a trend snapshot and sets its ID and creation time
func (r *TrendRepository) SaveTrend(ctx context.Context, snap *domain.TrendSnapshot) error {
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = r.now()
	}
	rec := trendSQL{
		Regions:   keywordsSQL(snap.Regions),
		Report:    reportSQL(snap.Report),
		Emerging:  keywordsSQL(snap.Emerging),
		CreatedAt: snap.CreatedAt.UTC(),
	}
	query := `INSERT INTO trends (regions, report, emerging, created_at) VALUES (:regions, :report, :emerging, :created_at)`
	return withLockRetry(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, query, rec)
		if err != nil {
			return fmt.Errorf("save trend: %w", err)
		}
		if snap.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("get trend id: %w", err)
		}
		return nil
	})
}

// GetTrends returns snapshots created within the last days, newest first
func (r *TrendRepository) GetTrends(ctx context.Context, days int) ([]domain.TrendSnapshot, error) {
	var recs []trendSQL
	err := r.db.SelectContext(ctx, &recs,
		"SELECT * FROM trends WHERE created_at >= ? ORDER BY created_at DESC, id DESC", r.now().UTC().AddDate(0, 0, -days))
	if err != nil {
		return nil, fmt.Errorf("get trends: %w", err)
	}

	res := make([]domain.TrendSnapshot, len(recs))
	for i, rec := range recs {
		res[i] = domain.TrendSnapshot{
			ID:        rec.ID,
			Regions:   []string(rec.Regions),
			Report:    domain.TrendReport(rec.Report),
			Emerging:  []string(rec.Emerging),
			CreatedAt: rec.CreatedAt,
		}
	}
	return res, nil
}
