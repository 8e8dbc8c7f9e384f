package v1

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/metrics"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in both directions
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "portfolio.request_id"
	claimsKey    = "portfolio.claims"

	accessTokenParam = "access_token"
)

// RequestID reuses the caller's request id or generates one
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 100 {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

// RequestLogger logs every request once it completes
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = ctx.Request.URL.Path
		}

		entry := log.With(
			"method", ctx.Request.Method,
			"route", route,
			"status", ctx.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", ctx.ClientIP(),
			"request_id", ctx.GetString(requestIDKey),
		)

		if len(ctx.Errors) > 0 {
			entry.With("error", ctx.Errors.String()).Error("request failed")
			return
		}
		entry.Info("request")
	}
}

// Metrics records request counts and latencies by route template
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		m.ObserveRequest(ctx.Request.Method, ctx.FullPath(), ctx.Writer.Status(), time.Since(start))
	}
}

// Recovery turns panics into a 500 reply
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := string(debug.Stack())
				log.With("request_id", ctx.GetString(requestIDKey), "stack", stack).Error("panic recovered: ", rec)
				respondInternal(ctx, fmt.Errorf("panic: %v", rec), stack)
			}
		}()
		ctx.Next()
	}
}

// RequestActor stores the caller's address and user agent for audit entries
func RequestActor() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		actor := &auditlogs.Actor{
			IPAddress: ctx.ClientIP(),
			UserAgent: ctx.Request.UserAgent(),
		}
		ctx.Request = ctx.Request.WithContext(auditlogs.WithActor(ctx.Request.Context(), actor))
		ctx.Next()
	}
}

// Authenticator verifies bearer tokens through the auth service
type Authenticator struct {
	authService users.AuthService
}

// NewAuthenticator creates an Authenticator
func NewAuthenticator(authService users.AuthService) *Authenticator {
	return &Authenticator{authService: authService}
}

// RequireAuth rejects requests without a valid token. With allowQueryToken the
// token may also be passed as ?access_token=, for clients that cannot set headers.
func (a *Authenticator) RequireAuth(allowQueryToken bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token == "" && allowQueryToken {
			token = ctx.Query(accessTokenParam)
		}

		claims, err := a.authService.Authenticate(ctx.Request.Context(), token)
		if err != nil {
			respondError(ctx, err)
			return
		}

		setClaims(ctx, claims)
		ctx.Next()
	}
}

// OptionalAuth attaches the caller's claims when a valid token is present.
// A missing or invalid token leaves the request anonymous.
func (a *Authenticator) OptionalAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if token := bearerToken(ctx); token != "" {
			if claims, err := a.authService.Authenticate(ctx.Request.Context(), token); err == nil {
				setClaims(ctx, claims)
			}
		}
		ctx.Next()
	}
}

// RequireRole rejects callers whose role is not one of roles. It must run after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := currentClaims(ctx)
		if !ok {
			respondError(ctx, errs.Unauthorized("missing token"))
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				ctx.Next()
				return
			}
		}
		respondError(ctx, errs.Forbidden("insufficient permissions"))
	}
}

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func setClaims(ctx *gin.Context, claims *users.Claims) {
	ctx.Set(claimsKey, claims)

	actor := &auditlogs.Actor{}
	if existing := auditlogs.ActorFromContext(ctx.Request.Context()); existing != nil {
		*actor = *existing
	}
	actor.UserID = claims.UserID
	actor.Email = claims.Email
	actor.Role = claims.Role
	ctx.Request = ctx.Request.WithContext(auditlogs.WithActor(ctx.Request.Context(), actor))
}

func currentClaims(ctx *gin.Context) (*users.Claims, bool) {
	value, exists := ctx.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*users.Claims)
	return claims, ok && claims != nil
}

// isEditor reports whether the caller may see unpublished content
func isEditor(ctx *gin.Context) bool {
	claims, ok := currentClaims(ctx)
	return ok && users.IsEditor(claims.Role)
}

// mustClaims returns the claims set by RequireAuth
func mustClaims(ctx *gin.Context) *users.Claims {
	claims, ok := currentClaims(ctx)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing token"})
		return nil
	}
	return claims
}
