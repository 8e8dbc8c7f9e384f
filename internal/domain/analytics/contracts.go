package analytics

import (
	"context"
	"time"
)

// AnalyticsService records page visits and summarises activity
type AnalyticsService interface {
	RecordVisit(ctx context.Context, in *VisitInput, ipAddress, userAgent string) error
	// Summary aggregates activity in [from, to]
	Summary(ctx context.Context, from, to time.Time) (*Summary, error)
}

// AnalyticsRepository stores page visits and computes aggregates
type AnalyticsRepository interface {
	CreateVisit(ctx context.Context, visit *PageVisit) error
	CountVisits(ctx context.Context, from, to time.Time) (int64, error)
	CountUniqueVisitors(ctx context.Context, from, to time.Time) (int64, error)
	TopPages(ctx context.Context, from, to time.Time, limit int) ([]PageCount, error)
	// VisitsByDay counts visits per UTC day keyed by YYYY-MM-DD
	VisitsByDay(ctx context.Context, from, to time.Time) (map[string]int64, error)
	CountNewLeads(ctx context.Context, from, to time.Time) (int64, error)
	CountPublishedPosts(ctx context.Context, from, to time.Time) (int64, error)
	CountPendingComments(ctx context.Context) (int64, error)
}
