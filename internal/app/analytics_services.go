package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/analytics"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/strutil"

	"github.com/google/uuid"
)

// analyticsService implements the AnalyticsService interface
type analyticsService struct {
	repo   analytics.AnalyticsRepository
	ipSalt string
	logger logger.Logger
	now    func() time.Time
}

// NewAnalyticsService creates a new instance of AnalyticsService
func NewAnalyticsService(repo analytics.AnalyticsRepository, ipSalt string, logger logger.Logger) (analytics.AnalyticsService, error) {
	return &analyticsService{
		repo:   repo,
		ipSalt: ipSalt,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

// RecordVisit stores a page view under a salted visitor hash; the raw IP is discarded
func (s *analyticsService) RecordVisit(ctx context.Context, in *analytics.VisitInput, ipAddress, userAgent string) error {
	if err := in.Validate(); err != nil {
		return err
	}

	visit := &analytics.PageVisit{
		ID:          uuid.NewString(),
		Path:        in.Path,
		Referrer:    in.Referrer,
		SessionID:   in.SessionID,
		UserAgent:   strutil.Truncate(userAgent, 500),
		VisitorHash: analytics.VisitorHash(ipAddress, userAgent, s.ipSalt),
		CreatedAt:   s.now(),
	}

	if err := visit.Validate(); err != nil {
		return err
	}
	return s.repo.CreateVisit(ctx, visit)
}

// Summary aggregates activity in [from, to]. A zero to means now and a zero
// from means DefaultSummaryDays before to. Ranges longer than MaxSummaryDays
// are rejected.
func (s *analyticsService) Summary(ctx context.Context, from, to time.Time) (*analytics.Summary, error) {
	if to.IsZero() {
		to = s.now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -analytics.DefaultSummaryDays)
	}
	from, to = from.UTC(), to.UTC()
	if from.After(to) {
		return nil, errs.Invalid("from", "from must not be after to")
	}
	if to.Sub(from) > analytics.MaxSummaryDays*24*time.Hour {
		return nil, errs.Invalid("from", "range must not exceed %d days", analytics.MaxSummaryDays)
	}

	summary := &analytics.Summary{From: from, To: to}

	var err error
	if summary.TotalVisits, err = s.repo.CountVisits(ctx, from, to); err != nil {
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}
	if summary.UniqueVisitors, err = s.repo.CountUniqueVisitors(ctx, from, to); err != nil {
		return nil, fmt.Errorf("failed to count visitors: %w", err)
	}
	if summary.TopPages, err = s.repo.TopPages(ctx, from, to, analytics.TopPagesLimit); err != nil {
		return nil, fmt.Errorf("failed to load top pages: %w", err)
	}
	if summary.TopPages == nil {
		summary.TopPages = []analytics.PageCount{}
	}

	byDay, err := s.repo.VisitsByDay(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count visits by day: %w", err)
	}
	summary.VisitsByDay = analytics.FillDays(from, to, byDay)

	if summary.NewLeads, err = s.repo.CountNewLeads(ctx, from, to); err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}
	if summary.PublishedPosts, err = s.repo.CountPublishedPosts(ctx, from, to); err != nil {
		return nil, fmt.Errorf("failed to count published posts: %w", err)
	}
	if summary.PendingComments, err = s.repo.CountPendingComments(ctx); err != nil {
		return nil, fmt.Errorf("failed to count pending comments: %w", err)
	}

	return summary, nil
}
