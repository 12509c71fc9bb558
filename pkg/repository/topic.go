package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/topicscope/pkg/domain"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// TopicRepository handles topic-related database operations
type TopicRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// topicSQL represents a topic for SQL operations
type topicSQL struct {
	ID               int64       `db:"id"`
	Title            string      `db:"title"`
	Source           string      `db:"source"`
	ViewsPotential   int64       `db:"views_potential"`
	ReferenceVideoID string      `db:"reference_video_id"`
	Importance       float64     `db:"importance"`
	Watchability     float64     `db:"watchability"`
	Monetization     float64     `db:"monetization"`
	Popularity       float64     `db:"popularity"`
	Innovation       float64     `db:"innovation"`
	TotalScore       float64     `db:"total_score"`
	RecommendedAngle string      `db:"recommended_angle"`
	Keywords         keywordsSQL `db:"keywords"`
	CompetitionLevel string      `db:"competition_level"`
	Notes            string      `db:"notes"`
	RawResponse      string      `db:"raw_response"`
	Fallback         bool        `db:"fallback"`
	Category         string      `db:"category"`
	Favorited        bool        `db:"favorited"`
	CreatedAt        time.Time   `db:"created_at"`
}

// keywordsSQL is a JSON array of keywords for SQL operations
type keywordsSQL []string

// Value implements driver.Valuer for database storage
func (k keywordsSQL) Value() (driver.Value, error) {
	if k == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(k))
	if err != nil {
		return nil, fmt.Errorf("marshal keywords: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (k *keywordsSQL) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*k = keywordsSQL{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unexpected keywords type %T", value)
	}
	if len(data) == 0 {
		*k = keywordsSQL{}
		return nil
	}
	return json.Unmarshal(data, k)
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(db *sqlx.DB) *TopicRepository {
	return &TopicRepository{db: db, now: time.Now}
}

// SaveTopic inserts a researched topic and sets its ID and creation time
func (r *TopicRepository) SaveTopic(ctx context.Context, topic *domain.Topic) error {
	if topic.CreatedAt.IsZero() {
		topic.CreatedAt = r.now()
	}
	rec := r.fromDomainTopic(topic)

	query := `
		INSERT INTO topics (
			title, source, views_potential, reference_video_id,
			importance, watchability, monetization, popularity, innovation, total_score,
			recommended_angle, keywords, competition_level, notes, raw_response, fallback,
			category, favorited, created_at
		) VALUES (
			:title, :source, :views_potential, :reference_video_id,
			:importance, :watchability, :monetization, :popularity, :innovation, :total_score,
			:recommended_angle, :keywords, :competition_level, :notes, :raw_response, :fallback,
			:category, :favorited, :created_at
		)
	`
	var id int64
	err := withLockRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, rec)
		if err != nil {
			return fmt.Errorf("save topic: %w", err)
		}
		if id, err = result.LastInsertId(); err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	topic.ID = id
	return nil
}

// GetTopic retrieves a topic by ID
func (r *TopicRepository) GetTopic(ctx context.Context, id int64) (*domain.Topic, error) {
	var rec topicSQL
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM topics WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get topic %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}
	return r.toDomainTopic(&rec), nil
}

// GetTopics retrieves topics matching the filter, best scored first.
// Zero Days or Limit mean no restriction.
func (r *TopicRepository) GetTopics(ctx context.Context, filter domain.TopicFilter) ([]domain.Topic, error) {
	conds := []string{"total_score >= ?"}
	args := []any{filter.MinScore}
	if filter.Days > 0 {
		conds = append(conds, "created_at >= ?")
		args = append(args, r.cutoff(filter.Days))
	}
	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, string(filter.Category))
	}
	if filter.FavoritedOnly {
		conds = append(conds, "favorited = 1")
	}

	query := "SELECT * FROM topics WHERE " + strings.Join(conds, " AND ") + " ORDER BY total_score DESC, id ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	var recs []topicSQL
	if err := r.db.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, fmt.Errorf("get topics: %w", err)
	}

	topics := make([]domain.Topic, len(recs))
	for i := range recs {
		topics[i] = *r.toDomainTopic(&recs[i])
	}
	return topics, nil
}

// ToggleFavorite flips the favorite flag of a topic and returns the new state
func (r *TopicRepository) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	var favorited bool
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "UPDATE topics SET favorited = NOT favorited WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("toggle favorite: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("get affected rows: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("toggle favorite %d: %w", id, ErrNotFound)
		}
		return r.db.GetContext(ctx, &favorited, "SELECT favorited FROM topics WHERE id = ?", id)
	})
	if err != nil {
		return false, err
	}
	return favorited, nil
}

// TopicExists checks whether a topic with the same title was saved within the last days
func (r *TopicRepository) TopicExists(ctx context.Context, title string, days int) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM topics WHERE LOWER(title) = LOWER(?) AND created_at >= ?)",
		title, r.cutoff(days))
	if err != nil {
		return false, fmt.Errorf("check topic exists: %w", err)
	}
	return exists, nil
}

// FavoriteCount returns the number of favorited topics
func (r *TopicRepository) FavoriteCount(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM topics WHERE favorited = 1"); err != nil {
		return 0, fmt.Errorf("count favorites: %w", err)
	}
	return count, nil
}

// AvgScore returns the mean total score of topics saved within the last days, 0 if none
func (r *TopicRepository) AvgScore(ctx context.Context, days int) (float64, error) {
	var avg sql.NullFloat64
	err := r.db.GetContext(ctx, &avg, "SELECT AVG(total_score) FROM topics WHERE created_at >= ?", r.cutoff(days))
	if err != nil {
		return 0, fmt.Errorf("get average score: %w", err)
	}
	return avg.Float64, nil
}

func (r *TopicRepository) cutoff(days int) time.Time {
	return r.now().UTC().AddDate(0, 0, -days)
}

func (r *TopicRepository) fromDomainTopic(t *domain.Topic) *topicSQL {
	category := t.Category
	if category == "" {
		category = domain.CategoryGeneral
	}
	competition := t.CompetitionLevel
	if competition == "" {
		competition = domain.CompetitionMedium
	}
	return &topicSQL{
		Title:            t.Title,
		Source:           t.Source,
		ViewsPotential:   t.ViewsPotential,
		ReferenceVideoID: t.ReferenceVideoID,
		Importance:       t.Importance,
		Watchability:     t.Watchability,
		Monetization:     t.Monetization,
		Popularity:       t.Popularity,
		Innovation:       t.Innovation,
		TotalScore:       t.TotalScore,
		RecommendedAngle: t.RecommendedAngle,
		Keywords:         keywordsSQL(t.Keywords),
		CompetitionLevel: string(competition),
		Notes:            t.Notes,
		RawResponse:      t.RawResponse,
		Fallback:         t.Fallback,
		Category:         string(category),
		Favorited:        t.Favorited,
		CreatedAt:        t.CreatedAt.UTC(),
	}
}

func (r *TopicRepository) toDomainTopic(rec *topicSQL) *domain.Topic {
	return &domain.Topic{
		ID: rec.ID,
		Candidate: domain.Candidate{
			Title:            rec.Title,
			Source:           rec.Source,
			ViewsPotential:   rec.ViewsPotential,
			ReferenceVideoID: rec.ReferenceVideoID,
		},
		Evaluation: domain.Evaluation{
			Importance:       rec.Importance,
			Watchability:     rec.Watchability,
			Monetization:     rec.Monetization,
			Popularity:       rec.Popularity,
			Innovation:       rec.Innovation,
			TotalScore:       rec.TotalScore,
			RecommendedAngle: rec.RecommendedAngle,
			Keywords:         []string(rec.Keywords),
			CompetitionLevel: domain.CompetitionLevel(rec.CompetitionLevel),
			Notes:            rec.Notes,
			RawResponse:      rec.RawResponse,
			Fallback:         rec.Fallback,
		},
		Category:  domain.Category(rec.Category),
		Favorited: rec.Favorited,
		CreatedAt: rec.CreatedAt,
	}
}
