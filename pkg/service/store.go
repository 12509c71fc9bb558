package service

import (
	"context"
	"fmt"

	"github.com/umputun/topicscope/pkg/domain"
	"github.com/umputun/topicscope/pkg/repository"
)

// Store provides unified access to topic, session and trend repositories for the pipeline, server and CLI
type Store struct {
	topicRepo   *repository.TopicRepository
	sessionRepo *repository.SessionRepository
	trendRepo   *repository.TrendRepository
}

// NewStore creates a new store
func NewStore(repos *repository.Repositories) *Store {
	return &Store{topicRepo: repos.Topic, sessionRepo: repos.Session, trendRepo: repos.Trend}
}

// Topic methods

func (s *Store) SaveTopic(ctx context.Context, topic *domain.Topic) error {
	return s.topicRepo.SaveTopic(ctx, topic)
}

func (s *Store) GetTopics(ctx context.Context, filter domain.TopicFilter) ([]domain.Topic, error) {
	return s.topicRepo.GetTopics(ctx, filter)
}

func (s *Store) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	return s.topicRepo.ToggleFavorite(ctx, id)
}

func (s *Store) TopicExists(ctx context.Context, title string, days int) (bool, error) {
	return s.topicRepo.TopicExists(ctx, title, days)
}

func (s *Store) FavoriteCount(ctx context.Context) (int, error) {
	return s.topicRepo.FavoriteCount(ctx)
}

// Session methods

func (s *Store) SaveSession(ctx context.Context, session domain.Session) error {
	return s.sessionRepo.SaveSession(ctx, session)
}

// GetAnalytics combines session totals with topic scores and favorites for the last days
func (s *Store) GetAnalytics(ctx context.Context, days int) (domain.Analytics, error) {
	res, err := s.sessionRepo.SessionTotals(ctx, days)
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("session totals: %w", err)
	}
	if res.AvgScore, err = s.topicRepo.AvgScore(ctx, days); err != nil {
		return domain.Analytics{}, fmt.Errorf("average score: %w", err)
	}
	if res.FavoriteCount, err = s.topicRepo.FavoriteCount(ctx); err != nil {
		return domain.Analytics{}, fmt.Errorf("favorite count: %w", err)
	}
	return res, nil
}

// Trend methods

func (s *Store) SaveTrend(ctx context.Context, snapshot *domain.TrendSnapshot) error {
	return s.trendRepo.SaveTrend(ctx, snapshot)
}

func (s *Store) GetTrends(ctx context.Context, days int) ([]domain.TrendSnapshot, error) {
	return s.trendRepo.GetTrends(ctx, days)
}
