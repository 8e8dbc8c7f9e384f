package v1

import (
	"net/http"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/notifications"

	"github.com/gin-gonic/gin"
)

// DefaultPingInterval is the heartbeat period of the notification stream
const DefaultPingInterval = 25 * time.Second

// Server-sent event names
const (
	eventNotification = "notification"
	eventPing         = "ping"
)

// NotificationHandler defines the in-app notification endpoints
type NotificationHandler interface {
	List(ctx *gin.Context)
	UnreadCount(ctx *gin.Context)
	MarkRead(ctx *gin.Context)
	MarkAllRead(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Stream(ctx *gin.Context)
}

type notificationHandler struct {
	notificationService notifications.NotificationService
	pingInterval        time.Duration
}

// NewNotificationHandler creates a NotificationHandler. A non-positive
// pingInterval falls back to DefaultPingInterval.
func NewNotificationHandler(notificationService notifications.NotificationService, pingInterval time.Duration) NotificationHandler {
	if pingInterval <= 0 {
		pingInterval = DefaultPingInterval
	}
	return &notificationHandler{notificationService: notificationService, pingInterval: pingInterval}
}

// List handles GET /notifications
func (handler *notificationHandler) List(ctx *gin.Context) {
	claims := mustClaims(ctx)
	if claims == nil {
		return
	}

	var query notifications.NotificationQuery
	if !bindQuery(ctx, &query) {
		return
	}
	query.UserID = claims.UserID
	query.Normalize()

	items, total, err := handler.notificationService.List(ctx.Request.Context(), &query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newListResponse(items, total, query.Page))
}

// UnreadCount handles GET /notifications/unread-count
func (handler *notificationHandler) UnreadCount(ctx *gin.Context) {
	claims := mustClaims(ctx)
	if claims == nil {
		return
	}

	count, err := handler.notificationService.UnreadCount(ctx.Request.Context(), claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// MarkRead handles PATCH /notifications/:id/read
func (handler *notificationHandler) MarkRead(ctx *gin.Context) {
	claims := mustClaims(ctx)
	if claims == nil {
		return
	}

	notification, err := handler.notificationService.MarkRead(ctx.Request.Context(), claims.UserID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notification)
}

// MarkAllRead handles POST /notifications/read-all
func (handler *notificationHandler) MarkAllRead(ctx *gin.Context) {
	claims := mustClaims(ctx)
	if claims == nil {
		return
	}

	updated, err := handler.notificationService.MarkAllRead(ctx.Request.Context(), claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, UpdatedResponse{Updated: updated})
}

// DeleteByID handles DELETE /notifications/:id
func (handler *notificationHandler) DeleteByID(ctx *gin.Context) {
	claims := mustClaims(ctx)
	if claims == nil {
		return
	}

	if err := handler.notificationService.Delete(ctx.Request.Context(), claims.UserID, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Stream handles GET /notifications/stream as server-sent events until the
// client goes away or the subscription is closed.
func (handler *notificationHandler) Stream(ctx *gin.Context) {
	claims := mustClaims(ctx)
	if claims == nil {
		return
	}

	events, cancel := handler.notificationService.Subscribe(claims.UserID)
	defer cancel()

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("X-Accel-Buffering", "no")
	ctx.Status(http.StatusOK)
	ctx.Writer.Flush()

	ticker := time.NewTicker(handler.pingInterval)
	defer ticker.Stop()

	done := ctx.Request.Context().Done()
	for {
		select {
		case <-done:
			return
		case notification, ok := <-events:
			if !ok {
				return
			}
			ctx.SSEvent(eventNotification, notification)
		case <-ticker.C:
			ctx.SSEvent(eventPing, nowUTC().Format(time.RFC3339))
		}
		ctx.Writer.Flush()
	}
}
