package v1

import (
	"net/http"

	"github.com/MGTheTrain/portfolio-api/internal/domain/leads"

	"github.com/gin-gonic/gin"
)

// LeadHandler defines the contact form and lead pipeline endpoints
type LeadHandler interface {
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type leadHandler struct {
	leadService leads.LeadService
}

// NewLeadHandler creates a LeadHandler
func NewLeadHandler(leadService leads.LeadService) LeadHandler {
	return &leadHandler{leadService: leadService}
}

// Submit handles POST /leads. Dropped spam is acknowledged like a stored lead.
func (handler *leadHandler) Submit(ctx *gin.Context) {
	var in leads.LeadInput
	if !bindJSON(ctx, &in) {
		return
	}

	lead, err := handler.leadService.Submit(ctx.Request.Context(), &in, ctx.ClientIP(), ctx.Request.UserAgent())
	if err != nil {
		respondError(ctx, err)
		return
	}

	if lead == nil {
		ctx.JSON(http.StatusCreated, AcceptedResponse{Status: "received"})
		return
	}
	ctx.JSON(http.StatusCreated, lead)
}

// List handles GET /leads
func (handler *leadHandler) List(ctx *gin.Context) {
	var query leads.LeadQuery
	if !bindQuery(ctx, &query) {
		return
	}
	query.Normalize()

	items, total, err := handler.leadService.List(ctx.Request.Context(), &query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newListResponse(items, total, query.Page))
}

// GetByID handles GET /leads/:id
func (handler *leadHandler) GetByID(ctx *gin.Context) {
	lead, err := handler.leadService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, lead)
}

// Update handles PATCH /leads/:id
func (handler *leadHandler) Update(ctx *gin.Context) {
	var in leads.LeadUpdate
	if !bindJSON(ctx, &in) {
		return
	}

	lead, err := handler.leadService.Update(ctx.Request.Context(), ctx.Param("id"), &in)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, lead)
}

// DeleteByID handles DELETE /leads/:id
func (handler *leadHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.leadService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
