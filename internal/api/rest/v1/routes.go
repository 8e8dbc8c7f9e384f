package v1

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/analytics"
	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"
	"github.com/MGTheTrain/portfolio-api/internal/domain/comments"
	"github.com/MGTheTrain/portfolio-api/internal/domain/leads"
	"github.com/MGTheTrain/portfolio-api/internal/domain/notifications"
	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"
	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/metrics"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services bundles the application services behind the API
type Services struct {
	Auth          users.AuthService
	Posts         posts.PostService
	Projects      projects.ProjectService
	Leads         leads.LeadService
	Comments      comments.CommentService
	Uploads       uploads.UploadService
	Notifications notifications.NotificationService
	AuditLogs     auditlogs.AuditLogService
	Analytics     analytics.AnalyticsService
}

// RouterConfig holds the HTTP-level settings of the router
type RouterConfig struct {
	Development   bool
	CORSOrigins   []string
	UploadDir     string
	UploadPath    string
	MaxUploadSize int64
	PingInterval  time.Duration
	Metrics       *metrics.Metrics
	DBPing        PingFunc
}

// NewRouter creates a gin engine with the middleware chain, the health and
// metrics endpoints, the upload mount and all API routes.
func NewRouter(services *Services, cfg RouterConfig, log logger.Logger) *gin.Engine {
	r := gin.New()

	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	}
	r.Use(RequestID(), RequestLogger(log))
	if cfg.Metrics != nil {
		r.Use(Metrics(cfg.Metrics))
	}
	r.Use(ErrorDetails(cfg.Development), Recovery(log), RequestActor())

	r.GET("/health", Health(cfg.DBPing))
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}
	if cfg.UploadDir != "" && cfg.UploadPath != "" {
		r.Static(cfg.UploadPath, cfg.UploadDir)
	}

	SetupRoutes(r, services, cfg)
	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			c.AllowAllOrigins = true
			c.AllowCredentials = false
			return c
		}
	}
	c.AllowOrigins = origins
	return c
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services *Services, cfg RouterConfig) {
	v1 := r.Group(BasePath) // lookup in version file

	auth := NewAuthenticator(services.Auth)
	requireAuth := auth.RequireAuth(false)
	optionalAuth := auth.OptionalAuth()
	editor := RequireRole(users.RoleAdmin, users.RoleEditor)
	admin := RequireRole(users.RoleAdmin)

	// Auth Routes
	authHandler := NewAuthHandler(services.Auth)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/register", authHandler.Register)
	v1.GET("/auth/me", requireAuth, authHandler.Me)
	v1.PUT("/auth/password", requireAuth, authHandler.ChangePassword)

	// Posts Routes
	postHandler := NewPostHandler(services.Posts)
	v1.GET("/posts", optionalAuth, postHandler.List)
	v1.GET("/posts/slug/:slug", postHandler.GetBySlug)
	v1.GET("/posts/:id", optionalAuth, postHandler.GetByID)
	v1.POST("/posts", requireAuth, editor, postHandler.Create)
	v1.POST("/posts/publish-scheduled", requireAuth, admin, postHandler.PublishScheduled)
	v1.PUT("/posts/:id", requireAuth, editor, postHandler.Update)
	v1.DELETE("/posts/:id", requireAuth, editor, postHandler.DeleteByID)
	v1.POST("/posts/:id/publish", requireAuth, editor, postHandler.Publish)
	v1.POST("/posts/:id/unpublish", requireAuth, editor, postHandler.Unpublish)

	// Projects Routes
	projectHandler := NewProjectHandler(services.Projects)
	v1.GET("/projects", optionalAuth, projectHandler.List)
	v1.GET("/projects/slug/:slug", projectHandler.GetBySlug)
	v1.GET("/projects/:id", optionalAuth, projectHandler.GetByID)
	v1.POST("/projects", requireAuth, editor, projectHandler.Create)
	v1.PUT("/projects/:id", requireAuth, editor, projectHandler.Update)
	v1.DELETE("/projects/:id", requireAuth, editor, projectHandler.DeleteByID)

	// Leads Routes
	leadHandler := NewLeadHandler(services.Leads)
	v1.POST("/leads", leadHandler.Submit)
	v1.GET("/leads", requireAuth, admin, leadHandler.List)
	v1.GET("/leads/:id", requireAuth, admin, leadHandler.GetByID)
	v1.PATCH("/leads/:id", requireAuth, admin, leadHandler.Update)
	v1.DELETE("/leads/:id", requireAuth, admin, leadHandler.DeleteByID)

	// Comments Routes
	commentHandler := NewCommentHandler(services.Comments)
	v1.POST("/comments", commentHandler.Submit)
	v1.GET("/comments", optionalAuth, commentHandler.List)
	v1.PATCH("/comments/:id/status", requireAuth, editor, commentHandler.UpdateStatus)
	v1.DELETE("/comments/:id", requireAuth, editor, commentHandler.DeleteByID)

	// Uploads Routes
	uploadHandler := NewUploadHandler(services.Uploads, cfg.MaxUploadSize)
	v1.POST("/uploads", requireAuth, editor, uploadHandler.Upload)
	v1.GET("/uploads", requireAuth, editor, uploadHandler.List)
	v1.DELETE("/uploads/:id", requireAuth, editor, uploadHandler.DeleteByID)

	// Notifications Routes
	notificationHandler := NewNotificationHandler(services.Notifications, cfg.PingInterval)
	v1.GET("/notifications", requireAuth, notificationHandler.List)
	v1.GET("/notifications/unread-count", requireAuth, notificationHandler.UnreadCount)
	v1.GET("/notifications/stream", auth.RequireAuth(true), notificationHandler.Stream)
	v1.POST("/notifications/read-all", requireAuth, notificationHandler.MarkAllRead)
	v1.PATCH("/notifications/:id/read", requireAuth, notificationHandler.MarkRead)
	v1.DELETE("/notifications/:id", requireAuth, notificationHandler.DeleteByID)

	// Audit Log Routes
	auditLogHandler := NewAuditLogHandler(services.AuditLogs)
	v1.GET("/audit-logs", requireAuth, admin, auditLogHandler.List)

	// Analytics Routes
	analyticsHandler := NewAnalyticsHandler(services.Analytics)
	v1.POST("/analytics/visits", analyticsHandler.RecordVisit)
	v1.GET("/analytics/summary", requireAuth, admin, analyticsHandler.Summary)
}
