package v1

import (
	"net/http"

	"github.com/MGTheTrain/portfolio-api/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the authentication endpoints
type AuthHandler interface {
	Login(ctx *gin.Context)
	Register(ctx *gin.Context)
	Me(ctx *gin.Context)
	ChangePassword(ctx *gin.Context)
}

type authHandler struct {
	authService users.AuthService
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(authService users.AuthService) AuthHandler {
	return &authHandler{authService: authService}
}

// Login handles POST /auth/login
func (handler *authHandler) Login(ctx *gin.Context) {
	var in users.LoginInput
	if !bindJSON(ctx, &in) {
		return
	}

	result, err := handler.authService.Login(ctx.Request.Context(), &in)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// Register handles POST /auth/register
func (handler *authHandler) Register(ctx *gin.Context) {
	var in users.RegisterInput
	if !bindJSON(ctx, &in) {
		return
	}

	result, err := handler.authService.Register(ctx.Request.Context(), &in)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, result)
}

// Me handles GET /auth/me
func (handler *authHandler) Me(ctx *gin.Context) {
	claims := mustClaims(ctx)
	if claims == nil {
		return
	}

	user, err := handler.authService.Me(ctx.Request.Context(), claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// ChangePassword handles PUT /auth/password
func (handler *authHandler) ChangePassword(ctx *gin.Context) {
	claims := mustClaims(ctx)
	if claims == nil {
		return
	}

	var in users.ChangePasswordInput
	if !bindJSON(ctx, &in) {
		return
	}

	if err := handler.authService.ChangePassword(ctx.Request.Context(), claims.UserID, &in); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
