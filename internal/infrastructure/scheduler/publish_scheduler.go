// Package scheduler runs periodic jobs in-process.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// DefaultRunTimeout bounds a single scheduled publishing run
const DefaultRunTimeout = 30 * time.Second

// cronLogger adapts logger.Logger to cron.Logger
type cronLogger struct {
	logger logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.With(keysAndValues...).Debug(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.With(keysAndValues...).Error(msg, ": ", err)
}

// PublishScheduler periodically publishes scheduled posts whose time has come
type PublishScheduler struct {
	cron    *cron.Cron
	service posts.PostService
	logger  logger.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewPublishScheduler registers the publishing job on spec, e.g. "@every 1m" or "*/5 * * * *"
func NewPublishScheduler(spec string, service posts.PostService, logger logger.Logger) (*PublishScheduler, error) {
	cl := cronLogger{logger: logger}
	s := &PublishScheduler{
		cron:    cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		service: service,
		logger:  logger,
		timeout: DefaultRunTimeout,
		now:     time.Now,
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid scheduler spec %q: %w", spec, err)
	}

	return s, nil
}

// Start runs the scheduler in its own goroutine
func (s *PublishScheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduled publishing started")
}

// Stop prevents new runs and waits for a running one until ctx is done
func (s *PublishScheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Scheduled publishing stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler did not stop in time: %w", ctx.Err())
	}
}

// RunOnce publishes every due post and returns how many were published
func (s *PublishScheduler) RunOnce(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.service.PublishScheduled(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to publish scheduled posts: %w", err)
	}
	return n, nil
}

func (s *PublishScheduler) run() {
	n, err := s.RunOnce(context.Background())
	if err != nil {
		s.logger.Error(err)
		return
	}
	if n > 0 {
		s.logger.Info(fmt.Sprintf("Published %d scheduled post(s)", n))
	}
}
