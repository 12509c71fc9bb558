package domain

import "time"

// Niche is the broad subject area of a channel
type Niche string

// niches, in matching order
const (
	NicheTechnology Niche = "Technology"
	NicheBusiness   Niche = "Business & Finance"
	NicheEducation  Niche = "Education"
	NicheGeneral    Niche = "General"
)

// Channel represents video channel metadata as returned by the provider
type Channel struct {
	ID              string
	Title           string
	Description     string
	SubscriberCount int64
	VideoCount      int64
	ViewCount       int64
	UploadsPlaylist string
}

// Video represents a single video with its statistics
type Video struct {
	ID           string
	Title        string
	Description  string
	ChannelID    string
	ChannelTitle string
	PublishedAt  time.Time
	ViewCount    int64
	LikeCount    int64
	CommentCount int64
	Tags         []string
	Duration     string
	CategoryID   string
}

// PlaylistItem is a reference to a video in a playlist page
type PlaylistItem struct {
	VideoID     string
	Title       string
	PublishedAt time.Time // zero if the provider date was unparseable
}

// SearchRequest defines a keyword search against the provider
type SearchRequest struct {
	Query          string
	Order          string // relevance, date, viewCount, rating
	MaxResults     int
	PublishedAfter time.Time
}

// ChannelContext is the creator's channel profile used to condition discovery and evaluation
type ChannelContext struct {
	ChannelID       string
	ChannelTitle    string
	SubscriberCount int64
	AvgViews        float64
	Niche           Niche
	RecentThemes    []string
}
