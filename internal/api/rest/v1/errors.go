package v1

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "internal server error"

// detailsKey marks requests whose error replies may carry details
const detailsKey = "portfolio.error_details"

// ErrorDetails enables error detail and stack output when development is true
func ErrorDetails(development bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(detailsKey, development)
		ctx.Next()
	}
}

// statusFor maps an error onto an HTTP status code
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error reply for err and aborts the request
func respondError(ctx *gin.Context, err error) {
	status := statusFor(err)
	if status != http.StatusInternalServerError {
		ctx.AbortWithStatusJSON(status, ErrorResponse{Message: errs.Message(err)})
		return
	}
	respondInternal(ctx, err, "")
}

// respondInternal hides err behind a generic message unless details are enabled
func respondInternal(ctx *gin.Context, err error, stack string) {
	_ = ctx.Error(err)

	body := ErrorResponse{Message: internalErrorMessage}
	if ctx.GetBool(detailsKey) {
		body.Detail = err.Error()
		body.Stack = stack
	}
	ctx.AbortWithStatusJSON(http.StatusInternalServerError, body)
}

// respondBadRequest replies 400 with message
func respondBadRequest(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: message})
}
