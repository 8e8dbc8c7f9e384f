// Package bootstrap assembles the repositories, connectors and services shared
// by the API server and the CLI.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/portfolio-api/internal/app"
	"github.com/MGTheTrain/portfolio-api/internal/domain/analytics"
	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"
	"github.com/MGTheTrain/portfolio-api/internal/domain/comments"
	"github.com/MGTheTrain/portfolio-api/internal/domain/events"
	"github.com/MGTheTrain/portfolio-api/internal/domain/leads"
	"github.com/MGTheTrain/portfolio-api/internal/domain/notifications"
	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"
	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/connector"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/content"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/metrics"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/realtime"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"gorm.io/gorm"
)

// Services holds every application service
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

// Container owns the long-lived dependencies of a process
type Container struct {
	DB        *gorm.DB
	Publisher events.Publisher
	Hub       *realtime.Hub
	Metrics   *metrics.Metrics
	Services  *Services
	log       logger.Logger
}

type repositories struct {
	users         users.UserRepository
	posts         posts.PostRepository
	projects      projects.ProjectRepository
	leads         leads.LeadRepository
	comments      comments.CommentRepository
	uploads       uploads.UploadRepository
	notifications notifications.NotificationRepository
	auditLogs     auditlogs.AuditLogRepository
	analytics     analytics.AnalyticsRepository
}

// NewContainer opens the database, runs the migrations and wires all services
func NewContainer(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*Container, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	c := &Container{
		DB:        db,
		Publisher: newEventPublisher(cfg.Events, log),
		Hub:       realtime.NewHub(realtime.DefaultBufferSize, log),
		Metrics:   metrics.New(),
		log:       log,
	}

	repos, err := initializeRepositories(db, log)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	c.Services, err = c.initializeServices(cfg, repos)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return c, nil
}

// Ping checks the database connection
func (c *Container) Ping(ctx context.Context) error {
	return persistence.Ping(ctx, c.DB)
}

// Close releases the message bus connection and the database pool
func (c *Container) Close() {
	if c.Publisher != nil {
		c.Publisher.Close()
	}
	if c.DB != nil {
		if err := persistence.CloseDB(c.DB); err != nil {
			c.log.Error("Failed to close database: ", err)
		}
	}
}

// newEventPublisher connects to NATS when configured. A failed connection
// degrades to a no-op publisher so events never block startup.
func newEventPublisher(settings config.EventSettings, log logger.Logger) events.Publisher {
	if settings.NatsURL == "" {
		log.Info("NATS URL not configured, domain events are disabled")
		return connector.NewNoopEventPublisher()
	}

	publisher, err := connector.NewNatsEventPublisher(settings.NatsURL, settings.SubjectPrefix, log)
	if err != nil {
		log.Warn("NATS unavailable, domain events are disabled: ", err)
		return connector.NewNoopEventPublisher()
	}
	return publisher
}

// initializeRepositories sets up all GORM repositories
func initializeRepositories(db *gorm.DB, log logger.Logger) (*repositories, error) {
	var (
		repos repositories
		err   error
	)

	if repos.users, err = persistence.NewGormUserRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	if repos.posts, err = persistence.NewGormPostRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create post repository: %w", err)
	}
	if repos.projects, err = persistence.NewGormProjectRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create project repository: %w", err)
	}
	if repos.leads, err = persistence.NewGormLeadRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create lead repository: %w", err)
	}
	if repos.comments, err = persistence.NewGormCommentRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create comment repository: %w", err)
	}
	if repos.uploads, err = persistence.NewGormUploadRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create upload repository: %w", err)
	}
	if repos.notifications, err = persistence.NewGormNotificationRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create notification repository: %w", err)
	}
	if repos.auditLogs, err = persistence.NewGormAuditLogRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create audit log repository: %w", err)
	}
	if repos.analytics, err = persistence.NewGormAnalyticsRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create analytics repository: %w", err)
	}

	return &repos, nil
}

// initializeServices sets up all application services
func (c *Container) initializeServices(cfg *config.RestConfig, repos *repositories) (*Services, error) {
	log := c.log

	hasher, err := cryptography.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	tokens, err := cryptography.NewJWTTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	uploadConnector, err := connector.NewDiskUploadConnector(cfg.Uploads.Dir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload connector: %w", err)
	}

	audit, err := app.NewAuditLogService(repos.auditLogs, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit log service: %w", err)
	}

	notifier, err := app.NewNotificationService(repos.notifications, repos.users, c.Hub, c.Publisher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}

	auth, err := app.NewAuthService(repos.users, hasher, tokens, audit, cfg.Auth.AllowRegistration, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	postService, err := app.NewPostService(repos.posts, content.NewMarkdownProcessor(), audit, notifier, c.Publisher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %w", err)
	}

	projectService, err := app.NewProjectService(repos.projects, audit, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create project service: %w", err)
	}

	leadService, err := app.NewLeadService(repos.leads, audit, notifier, c.Publisher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead service: %w", err)
	}

	commentService, err := app.NewCommentService(repos.comments, repos.posts, audit, notifier, c.Publisher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %w", err)
	}

	uploadService, err := app.NewUploadService(repos.uploads, uploadConnector, audit, &cfg.Uploads, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload service: %w", err)
	}

	analyticsService, err := app.NewAnalyticsService(repos.analytics, cfg.Analytics.IPSalt, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &Services{
		Auth:          auth,
		Posts:         metrics.InstrumentPostService(postService, c.Metrics),
		Projects:      projectService,
		Leads:         leadService,
		Comments:      commentService,
		Uploads:       uploadService,
		Notifications: notifier,
		AuditLogs:     audit,
		Analytics:     analyticsService,
	}, nil
}

// EnsureAdmin creates the configured admin account when it does not exist yet
func (c *Container) EnsureAdmin(ctx context.Context, settings config.AuthSettings) error {
	if err := c.Services.Auth.EnsureAdmin(ctx, settings.AdminName, settings.AdminEmail, settings.AdminPassword); err != nil {
		return fmt.Errorf("failed to ensure admin account: %w", err)
	}
	return nil
}
