package v1

import (
	"net/http"

	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"

	"github.com/gin-gonic/gin"
)

const uploadFormField = "file"

// UploadHandler defines the file upload endpoints
type UploadHandler interface {
	Upload(ctx *gin.Context)
	List(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type uploadHandler struct {
	uploadService uploads.UploadService
	maxSizeBytes  int64
}

// NewUploadHandler creates an UploadHandler. Request bodies larger than
// maxSizeBytes plus form overhead are cut off before parsing.
func NewUploadHandler(uploadService uploads.UploadService, maxSizeBytes int64) UploadHandler {
	return &uploadHandler{uploadService: uploadService, maxSizeBytes: maxSizeBytes}
}

// Upload handles POST /uploads
func (handler *uploadHandler) Upload(ctx *gin.Context) {
	claims := mustClaims(ctx)
	if claims == nil {
		return
	}

	if handler.maxSizeBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, handler.maxSizeBytes+1<<20)
	}

	file, err := ctx.FormFile(uploadFormField)
	if err != nil {
		respondBadRequest(ctx, "multipart field 'file' is required and must not exceed the size limit")
		return
	}

	upload, err := handler.uploadService.Upload(ctx.Request.Context(), file, claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, upload)
}

// List handles GET /uploads
func (handler *uploadHandler) List(ctx *gin.Context) {
	var query uploads.UploadQuery
	if !bindQuery(ctx, &query) {
		return
	}
	query.Normalize()

	items, total, err := handler.uploadService.List(ctx.Request.Context(), &query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newListResponse(items, total, query.Page))
}

// DeleteByID handles DELETE /uploads/:id
func (handler *uploadHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.uploadService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
