package v1

import (
	"net/http"

	"github.com/MGTheTrain/portfolio-api/internal/domain/comments"

	"github.com/gin-gonic/gin"
)

// CommentHandler defines the comment endpoints
type CommentHandler interface {
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type commentHandler struct {
	commentService comments.CommentService
}

// NewCommentHandler creates a CommentHandler
func NewCommentHandler(commentService comments.CommentService) CommentHandler {
	return &commentHandler{commentService: commentService}
}

// Submit handles POST /comments
func (handler *commentHandler) Submit(ctx *gin.Context) {
	var in comments.CommentInput
	if !bindJSON(ctx, &in) {
		return
	}

	comment, err := handler.commentService.Submit(ctx.Request.Context(), &in, ctx.ClientIP())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}

// List handles GET /comments
func (handler *commentHandler) List(ctx *gin.Context) {
	var query comments.CommentQuery
	if !bindQuery(ctx, &query) {
		return
	}
	query.Normalize()

	items, total, err := handler.commentService.List(ctx.Request.Context(), &query, isEditor(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newListResponse(items, total, query.Page))
}

// UpdateStatus handles PATCH /comments/:id/status
func (handler *commentHandler) UpdateStatus(ctx *gin.Context) {
	var in comments.StatusUpdate
	if !bindJSON(ctx, &in) {
		return
	}

	comment, err := handler.commentService.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), &in)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, comment)
}

// DeleteByID handles DELETE /comments/:id
func (handler *commentHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.commentService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
