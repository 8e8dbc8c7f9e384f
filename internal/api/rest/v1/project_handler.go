package v1

import (
	"net/http"

	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"

	"github.com/gin-gonic/gin"
)

// ProjectHandler defines the portfolio project endpoints
type ProjectHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	GetBySlug(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type projectHandler struct {
	projectService projects.ProjectService
}

// NewProjectHandler creates a ProjectHandler
func NewProjectHandler(projectService projects.ProjectService) ProjectHandler {
	return &projectHandler{projectService: projectService}
}

// List handles GET /projects
func (handler *projectHandler) List(ctx *gin.Context) {
	var query projects.ProjectQuery
	if !bindQuery(ctx, &query) {
		return
	}
	query.Normalize()

	items, total, err := handler.projectService.List(ctx.Request.Context(), &query, isEditor(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newListResponse(items, total, query.Page))
}

// GetByID handles GET /projects/:id
func (handler *projectHandler) GetByID(ctx *gin.Context) {
	project, err := handler.projectService.GetByID(ctx.Request.Context(), ctx.Param("id"), isEditor(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// GetBySlug handles GET /projects/slug/:slug
func (handler *projectHandler) GetBySlug(ctx *gin.Context) {
	project, err := handler.projectService.GetBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// Create handles POST /projects
func (handler *projectHandler) Create(ctx *gin.Context) {
	var in projects.ProjectInput
	if !bindJSON(ctx, &in) {
		return
	}

	project, err := handler.projectService.Create(ctx.Request.Context(), &in)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

// Update handles PUT /projects/:id
func (handler *projectHandler) Update(ctx *gin.Context) {
	var in projects.ProjectUpdate
	if !bindJSON(ctx, &in) {
		return
	}

	project, err := handler.projectService.Update(ctx.Request.Context(), ctx.Param("id"), &in)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// DeleteByID handles DELETE /projects/:id
func (handler *projectHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.projectService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
