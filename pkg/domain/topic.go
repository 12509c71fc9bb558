package domain

import "time"

// Candidate represents a discovered content idea before evaluation
type Candidate struct {
	Title            string
	Source           string // "trending", "search:<keyword>" or "ai_generated"
	ViewsPotential   int64
	ReferenceVideoID string
}

// candidate sources
const (
	SourceTrending    = "trending"
	SourceAIGenerated = "ai_generated"
	SourceSearch      = "search:"
)

// CompetitionLevel represents estimated competition for a topic
type CompetitionLevel string

// competition levels
const (
	CompetitionLow    CompetitionLevel = "Low"
	CompetitionMedium CompetitionLevel = "Medium"
	CompetitionHigh   CompetitionLevel = "High"
)

// Category represents a coarse content format label
type Category string

// content categories, in matching order
const (
	CategoryTutorial   Category = "Tutorial"
	CategoryReview     Category = "Review"
	CategoryComparison Category = "Comparison"
	CategoryTips       Category = "Tips & Tricks"
	CategoryNews       Category = "News"
	CategoryGeneral    Category = "General"
)

// Evaluation holds the scores and qualitative output for a single topic
type Evaluation struct {
	Importance       float64
	Watchability     float64
	Monetization     float64
	Popularity       float64
	Innovation       float64
	TotalScore       float64
	RecommendedAngle string
	Keywords         []string
	CompetitionLevel CompetitionLevel
	Notes            string
	RawResponse      string
	ParsedFields     []string // labels found in the response
	Fallback         bool     // true when scores are defaults after a failed call
}

// Topic is an evaluated candidate with its category, as persisted and reported
type Topic struct {
	ID        int64
	Candidate
	Evaluation
	Category  Category
	Favorited bool
	CreatedAt time.Time
}

// TopicFilter defines criteria for topic queries
type TopicFilter struct {
	MinScore      float64
	Category      Category
	Days          int
	Limit         int
	FavoritedOnly bool
}
