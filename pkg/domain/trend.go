package domain

import "time"

// KeywordCompetition rates how saturated a keyword is by recent popular uploads, Level is 0..10.
// A non-empty Error means the search failed and Level holds the neutral value.
type KeywordCompetition struct {
	Keyword           string   `json:"keyword"`
	Level             float64  `json:"competition_level"`
	AvgViews          int64    `json:"avg_views"`
	TopPerformerViews int64    `json:"top_performer_views"`
	VideoCount        int      `json:"video_count"`
	TopChannels       []string `json:"top_channels"`
	Error             string   `json:"error,omitempty"`
}

// TermCount is a keyword or tag with its number of occurrences
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// CategoryCount is a video category with the number of trending videos in it
type CategoryCount struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TrendReport summarizes common themes of a set of trending videos
type TrendReport struct {
	TotalVideos   int             `json:"total_videos"`
	TopKeywords   []TermCount     `json:"top_keywords"`
	TopTags       []TermCount     `json:"top_tags"`
	Categories    []CategoryCount `json:"categories"`
	AvgViews      float64         `json:"avg_views"`
	AvgLikes      float64         `json:"avg_likes"`
	AvgEngagement float64         `json:"avg_engagement_rate"` // percent
	TopPerforming []VideoSummary  `json:"top_performing"`
}

// Keywords returns the ranked keyword terms
func (r TrendReport) Keywords() []string {
	res := make([]string, len(r.TopKeywords))
	for i, k := range r.TopKeywords {
		res[i] = k.Term
	}
	return res
}

// TrendSnapshot is a stored trend report over one or more regions
type TrendSnapshot struct {
	ID        int64       `json:"id"`
	Regions   []string    `json:"regions"`
	Report    TrendReport `json:"report"`
	Emerging  []string    `json:"emerging"`
	CreatedAt time.Time   `json:"created_at"`
}
