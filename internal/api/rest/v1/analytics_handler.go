package v1

import (
	"net/http"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/analytics"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler defines the visit tracking and reporting endpoints
type AnalyticsHandler interface {
	RecordVisit(ctx *gin.Context)
	Summary(ctx *gin.Context)
}

type analyticsHandler struct {
	analyticsService analytics.AnalyticsService
}

// NewAnalyticsHandler creates an AnalyticsHandler
func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandler{analyticsService: analyticsService}
}

// RecordVisit handles POST /analytics/visits
func (handler *analyticsHandler) RecordVisit(ctx *gin.Context) {
	var in analytics.VisitInput
	if !bindJSON(ctx, &in) {
		return
	}

	if err := handler.analyticsService.RecordVisit(ctx.Request.Context(), &in, ctx.ClientIP(), ctx.Request.UserAgent()); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, AcceptedResponse{Status: "accepted"})
}

// Summary handles GET /analytics/summary. Missing bounds are left to the service.
func (handler *analyticsHandler) Summary(ctx *gin.Context) {
	from, err := parseTimeParam(ctx, "from", false)
	if err != nil {
		respondError(ctx, err)
		return
	}
	to, err := parseTimeParam(ctx, "to", true)
	if err != nil {
		respondError(ctx, err)
		return
	}

	summary, err := handler.analyticsService.Summary(ctx.Request.Context(), valueOrZero(from), valueOrZero(to))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

func valueOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
