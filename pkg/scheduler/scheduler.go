package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"

	"github.com/umputun/topicscope/pkg/research"
)

//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner

// Runner performs a research run
type Runner interface {
	Run(ctx context.Context, req research.Request) (research.Result, error)
}

// Params groups scheduler dependencies and configuration
type Params struct {
	Runner  Runner
	Cron    string           // standard 5-field expression or descriptor like @daily
	Request research.Request // request used for every scheduled run
}

// Scheduler triggers research runs on a cron schedule
type Scheduler struct {
	runner  Runner
	spec    string
	request research.Request
	cron    *cron.Cron
	entryID cron.EntryID

	mu        sync.Mutex
	ctx       context.Context
	cancel    context.CancelFunc
	lastRun   time.Time
	lastError error
}

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// NewScheduler creates a new scheduler instance, the cron expression is validated here
func NewScheduler(params Params) (*Scheduler, error) {
	if params.Runner == nil {
		return nil, errors.New("runner is required")
	}
	if _, err := cronParser.Parse(params.Cron); err != nil {
		return nil, fmt.Errorf("parse cron expression %q: %w", params.Cron, err)
	}
	return &Scheduler{
		runner:  params.Runner,
		spec:    params.Cron,
		request: params.Request,
		cron:    cron.New(cron.WithParser(cronParser), cron.WithChain(cron.Recover(cron.DefaultLogger))),
	}, nil
}

// Start begins the scheduler, scheduled runs use ctx until Stop is called
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	id, err := s.cron.AddFunc(s.spec, s.runOnce)
	if err != nil {
		return fmt.Errorf("schedule research run: %w", err)
	}
	s.entryID = id
	s.cron.Start()
	lgr.Printf("[INFO] scheduler started with %q, next run at %s", s.spec, s.NextRun().Format(time.RFC3339))
	return nil
}

// Stop gracefully stops the scheduler, waiting for an active run to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	<-s.cron.Stop().Done()
	lgr.Printf("[INFO] scheduler stopped")
}

// NextRun returns the time of the next scheduled run, zero if the scheduler is not started
func (s *Scheduler) NextRun() time.Time {
	if s.entryID == 0 {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}

// LastRun returns the time and error of the last scheduled run
func (s *Scheduler) LastRun() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun, s.lastError
}

func (s *Scheduler) runOnce() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	if ctx == nil || ctx.Err() != nil {
		return
	}

	lgr.Printf("[INFO] scheduled research run started")
	started := time.Now()
	res, err := s.runner.Run(ctx, s.request)

	s.mu.Lock()
	s.lastRun, s.lastError = started, err
	s.mu.Unlock()

	switch {
	case errors.Is(err, research.ErrRunInProgress):
		lgr.Printf("[WARN] scheduled research run skipped, another run is active")
	case err != nil:
		lgr.Printf("[ERROR] scheduled research run failed: %v", err)
	default:
		lgr.Printf("[INFO] scheduled research run %s completed, %d topics in %v",
			res.SessionID, len(res.Topics), time.Since(started).Round(time.Millisecond))
	}
}
