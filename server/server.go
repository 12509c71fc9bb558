package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/topicscope/pkg/domain"
	"github.com/umputun/topicscope/pkg/research"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/researcher.go -pkg mocks -skip-ensure -fmt goimports . Researcher
//go:generate moq -out mocks/schedule.go -pkg mocks -skip-ensure -fmt goimports . Schedule

// Server represents HTTP server instance
type Server struct {
	config     ConfigProvider
	store      Store
	researcher Researcher
	schedule   Schedule
	version    string
	debug      bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Store provides access to saved topics and analytics
type Store interface {
	GetTopics(ctx context.Context, filter domain.TopicFilter) ([]domain.Topic, error)
	ToggleFavorite(ctx context.Context, id int64) (bool, error)
	GetAnalytics(ctx context.Context, days int) (domain.Analytics, error)
}

// Researcher runs research, competitor and keyword analysis and trend snapshots on demand
type Researcher interface {
	Run(ctx context.Context, req research.Request) (research.Result, error)
	AnalyzeCompetitors(ctx context.Context, channelIDs []string) (domain.ComparativeSummary, error)
	AnalyzeKeywords(ctx context.Context, keywords []string) ([]domain.KeywordCompetition, error)
	CaptureTrends(ctx context.Context) (domain.TrendSnapshot, error)
	RecentTrends(ctx context.Context, days int) ([]domain.TrendSnapshot, error)
}

// Schedule reports the state of periodic research runs
type Schedule interface {
	NextRun() time.Time
	LastRun() (time.Time, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance, schedule can be nil if periodic runs are disabled
func New(cfg ConfigProvider, store Store, researcher Researcher, schedule Schedule, version string, debug bool) *Server {
	s := &Server{
		config:     cfg,
		store:      store,
		researcher: researcher,
		schedule:   schedule,
		version:    version,
		debug:      debug,
		router:     routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("topicscope", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /research", s.researchHandler)
		r.HandleFunc("GET /topics", s.topicsHandler)
		r.HandleFunc("POST /topics/{id}/favorite", s.favoriteHandler)
		r.HandleFunc("GET /analytics", s.analyticsHandler)
		r.HandleFunc("POST /competitors", s.competitorsHandler)
		r.HandleFunc("GET /competition", s.competitionHandler)
		r.HandleFunc("POST /trends", s.captureTrendsHandler)
		r.HandleFunc("GET /trends", s.trendsHandler)
	})
}
