// Package research implements the topic discovery pipeline. A run builds the channel context,
// discovers candidates from trending, search and AI sources, deduplicates them, evaluates each
// one with the LLM, then filters and ranks the results.
package research

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/topicscope/pkg/domain"
	"github.com/umputun/topicscope/pkg/llm"
)

//go:generate moq -out mocks/videos.go -pkg mocks -skip-ensure -fmt goimports . VideoProvider
//go:generate moq -out mocks/uploads.go -pkg mocks -skip-ensure -fmt goimports . Uploads
//go:generate moq -out mocks/evaluator.go -pkg mocks -skip-ensure -fmt goimports . Evaluator
//go:generate moq -out mocks/competitors.go -pkg mocks -skip-ensure -fmt goimports . CompetitorAnalyzer
//go:generate moq -out mocks/competitor_feed.go -pkg mocks -skip-ensure -fmt goimports . CompetitorFeed
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/reporter.go -pkg mocks -skip-ensure -fmt goimports . Reporter
//go:generate moq -out mocks/keywords.go -pkg mocks -skip-ensure -fmt goimports . KeywordAnalyzer
//go:generate moq -out mocks/trends.go -pkg mocks -skip-ensure -fmt goimports . TrendTracker

// ErrRunInProgress is returned when a run is requested while another one is active
var ErrRunInProgress = errors.New("research run already in progress")

// VideoProvider looks up channels and discovers videos
type VideoProvider interface {
	Channel(ctx context.Context, channelID string) (*domain.Channel, error)
	Search(ctx context.Context, req domain.SearchRequest) ([]domain.Video, error)
	Trending(ctx context.Context, regionCode string, maxResults int) ([]domain.Video, error)
}

// Uploads returns recent uploads of a playlist
type Uploads interface {
	RecentUploads(ctx context.Context, playlistID string, days, limit int) ([]domain.Video, error)
}

// Evaluator scores topics and generates topic ideas
type Evaluator interface {
	Evaluate(ctx context.Context, req llm.EvaluateRequest) domain.Evaluation
	GenerateTopicIdeas(ctx context.Context, ch domain.ChannelContext, count int, trends []string) ([]string, error)
}

// CompetitorAnalyzer compares competitor channels
type CompetitorAnalyzer interface {
	CompareCompetitors(ctx context.Context, channelIDs []string, lookbackDays int) domain.ComparativeSummary
}

// CompetitorFeed returns recent video titles of a channel
type CompetitorFeed interface {
	RecentTitles(ctx context.Context, channelID string, limit int) ([]string, error)
}

// Store persists topics and sessions
type Store interface {
	SaveTopic(ctx context.Context, topic *domain.Topic) error
	SaveSession(ctx context.Context, session domain.Session) error
	TopicExists(ctx context.Context, title string, days int) (bool, error)
}

// KeywordAnalyzer rates how saturated keywords are by recent popular videos
type KeywordAnalyzer interface {
	AnalyzeKeywords(ctx context.Context, keywords []string) []domain.KeywordCompetition
}

// TrendTracker captures and lists multi-region trend snapshots
type TrendTracker interface {
	Capture(ctx context.Context) (domain.TrendSnapshot, error)
	Recent(ctx context.Context, days int) ([]domain.TrendSnapshot, error)
}

// Reporter presents run results
type Reporter interface {
	Topics(topics []domain.Topic, details bool)
	Summary(session domain.Session)
}

// Config holds research settings
type Config struct {
	ChannelID        string
	RegionCode       string
	MaxTopics        int
	MinScore         float64
	AIIdeas          int
	SearchResults    int
	TrendingMax      int
	ChannelVideos    int
	LookbackDays     int
	SkipRecentDays   int
	Competitors      []string
	CompetitorTitles int
}

// Params contains the pipeline dependencies. Reporter, CompetitorFeed, Competitors, Keywords and
// Trends are optional.
type Params struct {
	Videos         VideoProvider
	Uploads        Uploads
	Evaluator      Evaluator
	Competitors    CompetitorAnalyzer
	CompetitorFeed CompetitorFeed
	Keywords       KeywordAnalyzer
	Trends         TrendTracker
	Store          Store
	Reporter       Reporter
	Config         Config
}

// Request defines a single research run
type Request struct {
	Keywords     []string
	MaxTopics    int
	Details      bool
	SkipTrending bool
	SkipAI       bool
}

// Result of a research run
type Result struct {
	SessionID  string
	Stage      Stage
	Channel    domain.ChannelContext
	Discovered int            // candidates from all sources
	Unique     int            // candidates after deduplication
	Evaluated  []domain.Topic // all evaluated topics in evaluation order
	Topics     []domain.Topic // topics passed the threshold, best first
}

// Pipeline runs research. Only one run or competitor analysis is active at a time.
type Pipeline struct {
	Params
	mu  sync.Mutex
	now func() time.Time
}

// NewPipeline creates a research pipeline with defaults applied to zero config values
func NewPipeline(p Params) *Pipeline {
	if p.Config.MaxTopics <= 0 {
		p.Config.MaxTopics = 50
	}
	if p.Config.AIIdeas <= 0 {
		p.Config.AIIdeas = 20
	}
	if p.Config.SearchResults <= 0 {
		p.Config.SearchResults = 10
	}
	if p.Config.TrendingMax <= 0 {
		p.Config.TrendingMax = 20
	}
	if p.Config.ChannelVideos <= 0 {
		p.Config.ChannelVideos = 20
	}
	if p.Config.LookbackDays <= 0 {
		p.Config.LookbackDays = 90
	}
	if p.Config.CompetitorTitles <= 0 {
		p.Config.CompetitorTitles = 5
	}
	if p.Config.RegionCode == "" {
		p.Config.RegionCode = "US"
	}
	return &Pipeline{Params: p, now: time.Now}
}

// Run performs a research run, reports the ranked topics and saves the session summary.
// The session is saved and reported even if the run fails.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	if !p.mu.TryLock() {
		return Result{}, ErrRunInProgress
	}
	defer p.mu.Unlock()

	sess := p.newSession()
	res, err := p.research(ctx, req, &sess)
	sess.Duration = p.now().Sub(sess.StartedAt)

	if err == nil && p.Reporter != nil {
		p.Reporter.Topics(res.Topics, req.Details)
	}
	p.finishSession(ctx, sess)
	if err != nil {
		return res, fmt.Errorf("research run %s: %w", sess.ID, err)
	}
	return res, nil
}

// AnalyzeCompetitors compares the given competitor channels, falling back to configured ones,
// and records a session with the number of checked competitors
func (p *Pipeline) AnalyzeCompetitors(ctx context.Context, channelIDs []string) (domain.ComparativeSummary, error) {
	if p.Competitors == nil {
		return domain.ComparativeSummary{}, errors.New("competitor analyzer is not configured")
	}
	if len(channelIDs) == 0 {
		channelIDs = p.Config.Competitors
	}
	if len(channelIDs) == 0 {
		return domain.ComparativeSummary{}, errors.New("no competitor channels to analyze")
	}
	if !p.mu.TryLock() {
		return domain.ComparativeSummary{}, ErrRunInProgress
	}
	defer p.mu.Unlock()

	sess := p.newSession()
	lgr.Printf("[INFO] analyzing %d competitors", len(channelIDs))
	summary := p.Competitors.CompareCompetitors(ctx, channelIDs, p.Config.LookbackDays)
	sess.CompetitorsChecked = len(channelIDs)
	sess.Duration = p.now().Sub(sess.StartedAt)
	p.finishSession(ctx, sess)
	return summary, nil
}

func (p *Pipeline) newSession() domain.Session {
	return domain.Session{ID: uuid.NewString(), StartedAt: p.now()}
}

// finishSession saves and reports the session, save failures are logged
func (p *Pipeline) finishSession(ctx context.Context, sess domain.Session) {
	if p.Store != nil {
		if err := p.Store.SaveSession(context.WithoutCancel(ctx), sess); err != nil {
			lgr.Printf("[WARN] can't save session %s: %v", sess.ID, err)
		}
	}
	if p.Reporter != nil {
		p.Reporter.Summary(sess)
		return
	}
	lgr.Printf("[INFO] session %s done in %v: %d topics researched, %d high quality, %d videos analyzed, %d competitors",
		sess.ID, sess.Duration.Round(time.Millisecond), sess.TopicsResearched, sess.HighQualityCount,
		sess.VideosAnalyzed, sess.CompetitorsChecked)
}
