package domain

// UploadFrequency describes a channel's upload cadence
type UploadFrequency struct {
	VideosPerWeek float64 `json:"videos_per_week"`
	Consistency   string  `json:"consistency"` // daily, frequent, weekly, occasional or unknown
}

// FormatPerformance describes the best performing content format of a channel
type FormatPerformance struct {
	Format   string  `json:"format"`
	AvgViews float64 `json:"avg_views"`
	Count    int     `json:"count"`
}

// VideoSummary is a compact view of a top video
type VideoSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ViewCount int64  `json:"view_count"`
}

// CompetitorSnapshot holds aggregated performance statistics of a competitor channel.
// An empty ChannelTitle means the analysis failed.
type CompetitorSnapshot struct {
	ChannelID         string            `json:"channel_id"`
	ChannelTitle      string            `json:"channel_title"`
	Description       string            `json:"description"`
	SubscriberCount   int64             `json:"subscriber_count"`
	VideoCount        int64             `json:"video_count"`
	ViewCount         int64             `json:"view_count"`
	RecentVideos      int               `json:"recent_videos"`
	AvgViews          float64           `json:"avg_views"`
	MedianViews       float64           `json:"median_views"`
	AvgEngagementRate float64           `json:"avg_engagement_rate"`
	TopVideos         []VideoSummary    `json:"top_videos"`
	ContentThemes     []string          `json:"content_themes"`
	UploadFrequency   UploadFrequency   `json:"upload_frequency"`
	BestFormat        FormatPerformance `json:"best_format"`
}

// Empty reports whether the snapshot carries no analysis
func (s CompetitorSnapshot) Empty() bool {
	return s.ChannelTitle == ""
}

// ComparativeSummary compares several competitor snapshots
type ComparativeSummary struct {
	Competitors        []CompetitorSnapshot `json:"competitors"`
	BestEngagement     string               `json:"best_engagement"`
	MostViews          string               `json:"most_views"`
	MostFrequent       string               `json:"most_frequent"`
	AvgSubscriberCount float64              `json:"avg_subscriber_count"`
	CommonThemes       []string             `json:"common_themes"`
}
