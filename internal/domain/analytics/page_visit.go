package analytics

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/pkg/validators"
)

// Summary limits
const (
	TopPagesLimit      = 10
	DefaultSummaryDays = 30
	MaxSummaryDays     = 366
)

// PageVisit entity. Visitors are identified by a salted hash, never by raw IP.
type PageVisit struct {
	ID          string    `json:"id" validate:"required,uuid4"`
	Path        string    `json:"path" validate:"required,startswith=/,max=500"`
	Referrer    *string   `json:"referrer,omitempty" validate:"omitempty,max=500"`
	SessionID   *string   `json:"session_id,omitempty" validate:"omitempty,max=100"`
	UserAgent   string    `json:"user_agent" validate:"max=500"`
	VisitorHash string    `json:"visitor_hash" validate:"required,len=64"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate for validating PageVisit struct
func (v *PageVisit) Validate() error {
	return validators.ValidateStruct(v)
}

// VisitInput is a page view reported by the site
type VisitInput struct {
	Path      string  `json:"path" validate:"required,startswith=/,max=500"`
	Referrer  *string `json:"referrer" validate:"omitempty,max=500"`
	SessionID *string `json:"session_id" validate:"omitempty,max=100"`
}

// Validate for validating VisitInput struct
func (in *VisitInput) Validate() error {
	return validators.ValidateStruct(in)
}

// VisitorHash returns hex(sha256(ip|ua|salt))
func VisitorHash(ip, userAgent, salt string) string {
	sum := sha256.Sum256([]byte(ip + "|" + userAgent + "|" + salt))
	return hex.EncodeToString(sum[:])
}

// PageCount is the number of visits of a path
type PageCount struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

// DayCount is the number of visits on a day (YYYY-MM-DD, UTC)
type DayCount struct {
	Date   string `json:"date"`
	Visits int64  `json:"visits"`
}

// Summary aggregates site activity over [From, To]
type Summary struct {
	From            time.Time   `json:"from"`
	To              time.Time   `json:"to"`
	TotalVisits     int64       `json:"total_visits"`
	UniqueVisitors  int64       `json:"unique_visitors"`
	TopPages        []PageCount `json:"top_pages"`
	VisitsByDay     []DayCount  `json:"visits_by_day"`
	NewLeads        int64       `json:"new_leads"`
	PublishedPosts  int64       `json:"published_posts"`
	PendingComments int64       `json:"pending_comments"`
}

// FillDays returns one DayCount per UTC day in [from, to], using counts where present
func FillDays(from, to time.Time, counts map[string]int64) []DayCount {
	start := truncateDay(from)
	end := truncateDay(to)

	days := make([]DayCount, 0, int(end.Sub(start).Hours()/24)+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		days = append(days, DayCount{Date: key, Visits: counts[key]})
	}
	return days
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
