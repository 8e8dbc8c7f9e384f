package v1

import (
	"strings"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// bindJSON decodes the request body into dst and replies 400 on failure
func bindJSON(ctx *gin.Context, dst interface{}) bool {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return false
	}
	return true
}

// bindQuery decodes query parameters into dst and replies 400 on failure
func bindQuery(ctx *gin.Context, dst interface{}) bool {
	if err := ctx.ShouldBindQuery(dst); err != nil {
		respondBadRequest(ctx, "invalid query parameters")
		return false
	}
	return true
}

// parseTimeParam reads an RFC3339 timestamp or a YYYY-MM-DD date from the query.
// A date in an upper bound covers the whole day.
func parseTimeParam(ctx *gin.Context, name string, upperBound bool) (*time.Time, error) {
	raw := strings.TrimSpace(ctx.Query(name))
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t, nil
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, errs.Invalid(name, "%s must be RFC3339 or YYYY-MM-DD", name)
	}
	if upperBound {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// nowUTC is replaced in tests
var nowUTC = func() time.Time {
	return time.Now().UTC()
}
