package v1

import (
	"net/http"

	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"

	"github.com/gin-gonic/gin"
)

// PostHandler defines the blog post endpoints
type PostHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	GetBySlug(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Publish(ctx *gin.Context)
	Unpublish(ctx *gin.Context)
	PublishScheduled(ctx *gin.Context)
}

type postHandler struct {
	postService posts.PostService
}

// NewPostHandler creates a PostHandler
func NewPostHandler(postService posts.PostService) PostHandler {
	return &postHandler{postService: postService}
}

// List handles GET /posts
func (handler *postHandler) List(ctx *gin.Context) {
	var query posts.PostQuery
	if !bindQuery(ctx, &query) {
		return
	}
	query.Normalize()

	items, total, err := handler.postService.List(ctx.Request.Context(), &query, isEditor(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newListResponse(items, total, query.Page))
}

// GetByID handles GET /posts/:id
func (handler *postHandler) GetByID(ctx *gin.Context) {
	post, err := handler.postService.GetByID(ctx.Request.Context(), ctx.Param("id"), isEditor(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// GetBySlug handles GET /posts/slug/:slug
func (handler *postHandler) GetBySlug(ctx *gin.Context) {
	post, err := handler.postService.GetBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Create handles POST /posts
func (handler *postHandler) Create(ctx *gin.Context) {
	claims := mustClaims(ctx)
	if claims == nil {
		return
	}

	var in posts.PostInput
	if !bindJSON(ctx, &in) {
		return
	}

	post, err := handler.postService.Create(ctx.Request.Context(), claims.UserID, &in)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

// Update handles PUT /posts/:id
func (handler *postHandler) Update(ctx *gin.Context) {
	var in posts.PostUpdate
	if !bindJSON(ctx, &in) {
		return
	}

	post, err := handler.postService.Update(ctx.Request.Context(), ctx.Param("id"), &in)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// DeleteByID handles DELETE /posts/:id
func (handler *postHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.postService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Publish handles POST /posts/:id/publish
func (handler *postHandler) Publish(ctx *gin.Context) {
	post, err := handler.postService.Publish(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Unpublish handles POST /posts/:id/unpublish
func (handler *postHandler) Unpublish(ctx *gin.Context) {
	post, err := handler.postService.Unpublish(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// PublishScheduled handles POST /posts/publish-scheduled
func (handler *postHandler) PublishScheduled(ctx *gin.Context) {
	count, err := handler.postService.PublishScheduled(ctx.Request.Context(), nowUTC())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, PublishedResponse{Published: count})
}
