package v1

import (
	"net/http"

	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"

	"github.com/gin-gonic/gin"
)

// AuditLogHandler defines the audit trail endpoints
type AuditLogHandler interface {
	List(ctx *gin.Context)
}

type auditLogHandler struct {
	auditLogService auditlogs.AuditLogService
}

// NewAuditLogHandler creates an AuditLogHandler
func NewAuditLogHandler(auditLogService auditlogs.AuditLogService) AuditLogHandler {
	return &auditLogHandler{auditLogService: auditLogService}
}

// List handles GET /audit-logs
func (handler *auditLogHandler) List(ctx *gin.Context) {
	var query auditlogs.AuditLogQuery
	if !bindQuery(ctx, &query) {
		return
	}

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
	query.From = from
	query.To = to
	query.Normalize()

	items, total, err := handler.auditLogService.List(ctx.Request.Context(), &query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newListResponse(items, total, query.Page))
}
