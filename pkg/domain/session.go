package domain

import "time"

// Session summarizes a single research run
type Session struct {
	ID                 string
	StartedAt          time.Time
	TopicsResearched   int
	HighQualityCount   int
	VideosAnalyzed     int
	CompetitorsChecked int
	Duration           time.Duration
}

// SuccessRate returns the share of researched topics which passed the quality threshold
func (s Session) SuccessRate() float64 {
	if s.TopicsResearched == 0 {
		return 0
	}
	return float64(s.HighQualityCount) / float64(s.TopicsResearched)
}

// Analytics aggregates research sessions over a period
type Analytics struct {
	Days                int     `json:"days"`
	TotalSessions       int     `json:"total_sessions"`
	TopicsResearched    int     `json:"topics_researched"`
	HighQualityTopics   int     `json:"high_quality_topics"`
	AvgScore            float64 `json:"avg_score"`
	TotalDuration       float64 `json:"total_duration_seconds"`
	AvgTopicsPerSession float64 `json:"avg_topics_per_session"`
	FavoriteCount       int     `json:"favorite_count"`
}
