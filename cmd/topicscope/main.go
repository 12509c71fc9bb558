package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/topicscope/pkg/competitor"
	"github.com/umputun/topicscope/pkg/config"
	"github.com/umputun/topicscope/pkg/domain"
	"github.com/umputun/topicscope/pkg/feed"
	"github.com/umputun/topicscope/pkg/llm"
	"github.com/umputun/topicscope/pkg/report"
	"github.com/umputun/topicscope/pkg/repository"
	"github.com/umputun/topicscope/pkg/research"
	"github.com/umputun/topicscope/pkg/scheduler"
	"github.com/umputun/topicscope/pkg/service"
	"github.com/umputun/topicscope/pkg/trend"
	"github.com/umputun/topicscope/pkg/youtube"
	"github.com/umputun/topicscope/server"
)

// Opts with all CLI options
type Opts struct {
	Config      string   `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Keywords    []string `short:"k" long:"keyword" description:"seed keyword, can be repeated"`
	MaxTopics   int      `long:"max-topics" description:"maximum topics to evaluate, overrides config"`
	Details     bool     `long:"details" description:"show detailed analysis of top topics"`
	Analytics   bool     `long:"analytics" description:"show analytics of recent sessions"`
	Export      string   `long:"export" description:"export recent topics to a csv or xlsx file"`
	Days        int      `long:"days" default:"7" description:"period in days for analytics and export"`
	Competitors []string `long:"competitor" description:"competitor channel id to analyze, can be repeated"`
	NoTrending  bool     `long:"no-trending" description:"skip trending videos discovery"`
	NoAI        bool     `long:"no-ai" description:"skip AI topic ideas generation"`
	Competition bool     `long:"competition" description:"rate competition of the seed keywords"`
	Trends      bool     `long:"trends" description:"capture a multi-region trend snapshot"`
	Server      bool     `long:"server" env:"SERVER" description:"run REST API server with scheduled research"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug, !opts.Server)
	lgr.Printf("[INFO] starting topicscope version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, initializes dependencies and executes the selected mode
func run(ctx context.Context, opts Opts) error {
	config.LoadEnv()
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLog(opts.Debug, !opts.Server, cfg.YouTube.APIKey, cfg.LLM.APIKey)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	store := service.NewStore(repos)
	console := report.NewConsole(os.Stdout, opts.NoColor)

	switch {
	case opts.Analytics:
		analytics, err := store.GetAnalytics(ctx, opts.Days)
		if err != nil {
			return fmt.Errorf("failed to get analytics: %w", err)
		}
		console.Analytics(analytics)
		return nil
	case opts.Export != "":
		topics, err := store.GetTopics(ctx, domain.TopicFilter{Days: opts.Days})
		if err != nil {
			return fmt.Errorf("failed to get topics: %w", err)
		}
		if err := report.Export(opts.Export, topics); err != nil {
			return fmt.Errorf("failed to export topics: %w", err)
		}
		fmt.Printf("exported %d topics to %s\n", len(topics), opts.Export)
		return nil
	}

	yt, err := youtube.New(ctx, youtube.Config{
		APIKey:            cfg.YouTube.APIKey,
		Endpoint:          cfg.YouTube.Endpoint,
		RequestsPerSecond: cfg.YouTube.RequestsPerSecond,
		Burst:             cfg.YouTube.Burst,
		RetryAttempts:     cfg.YouTube.RetryAttempts,
		Timeout:           cfg.YouTube.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create youtube client: %w", err)
	}
	analyzer := competitor.NewAnalyzer(yt)

	params := research.Params{
		Videos:         yt,
		Uploads:        analyzer,
		Evaluator:      llm.NewEvaluator(cfg.LLM),
		Competitors:    analyzer,
		CompetitorFeed: feed.NewChannelFeed(cfg.YouTube.FeedURL, cfg.YouTube.Timeout),
		Keywords:       competitor.NewKeywordAnalyzer(yt),
		Trends:         trend.NewTracker(yt, store, cfg.Research.TrendRegions, cfg.Research.TrendPerRegion),
		Store:          store,
		Reporter:       console,
		Config: research.Config{
			ChannelID:        cfg.YouTube.ChannelID,
			RegionCode:       cfg.YouTube.RegionCode,
			MaxTopics:        cfg.Research.MaxTopicsPerRun,
			MinScore:         cfg.Research.MinTotalScore,
			AIIdeas:          cfg.Research.AIIdeas,
			SearchResults:    cfg.Research.SearchResults,
			TrendingMax:      cfg.Research.TrendingMax,
			ChannelVideos:    cfg.Research.ChannelVideos,
			LookbackDays:     cfg.Research.LookbackDays,
			SkipRecentDays:   cfg.Research.SkipRecentDays,
			Competitors:      cfg.Research.Competitors,
			CompetitorTitles: cfg.Research.CompetitorTitles,
		},
	}
	req := research.Request{
		Keywords:     opts.Keywords,
		MaxTopics:    opts.MaxTopics,
		Details:      opts.Details,
		SkipTrending: opts.NoTrending,
		SkipAI:       opts.NoAI,
	}

	switch {
	case len(opts.Competitors) > 0:
		summary, err := research.NewPipeline(params).AnalyzeCompetitors(ctx, opts.Competitors)
		if err != nil {
			return fmt.Errorf("failed to analyze competitors: %w", err)
		}
		console.Competitors(summary)
		return nil
	case opts.Competition:
		res, err := research.NewPipeline(params).AnalyzeKeywords(ctx, opts.Keywords)
		if err != nil {
			return fmt.Errorf("failed to analyze keyword competition: %w", err)
		}
		console.KeywordCompetition(res)
		return nil
	case opts.Trends:
		snap, err := research.NewPipeline(params).CaptureTrends(ctx)
		if err != nil {
			return fmt.Errorf("failed to capture trends: %w", err)
		}
		console.Trends(snap)
		return nil
	case opts.Server:
		params.Reporter = nil // server runs log their summary instead of printing tables
		return runServer(ctx, cfg, opts, store, research.NewPipeline(params), req)
	}

	if _, err := research.NewPipeline(params).Run(ctx, req); err != nil {
		return fmt.Errorf("research failed: %w", err)
	}
	return nil
}

// runServer runs the REST API server and the research scheduler until ctx is canceled
func runServer(ctx context.Context, cfg *config.Config, opts Opts, store *service.Store, pipeline *research.Pipeline,
	req research.Request) error {
	g, gctx := errgroup.WithContext(ctx)

	var schedule server.Schedule
	if cfg.Schedule.Cron != "" {
		sched, err := scheduler.NewScheduler(scheduler.Params{Runner: pipeline, Cron: cfg.Schedule.Cron, Request: req})
		if err != nil {
			return fmt.Errorf("failed to create scheduler: %w", err)
		}
		if err := sched.Start(gctx); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		g.Go(func() error {
			<-gctx.Done()
			sched.Stop()
			return nil
		})
		schedule = sched
	} else {
		lgr.Printf("[INFO] schedule is not configured, research runs only on request")
	}

	srv := server.New(cfg, store, pipeline, schedule, revision, opts.Debug)
	g.Go(func() error {
		return srv.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	lgr.Printf("[INFO] shutdown complete")
	return nil
}

// setupLog configures lgr, quiet mode discards non-debug logs so console reports stay clean
func setupLog(dbg, quiet bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if quiet {
		logOpts = []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	secrets := make([]string, 0, len(secs))
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
