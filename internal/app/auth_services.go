package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"github.com/google/uuid"
)

const invalidCredentials = "invalid credentials"

// authService implements the AuthService interface
type authService struct {
	userRepo          users.UserRepository
	hasher            users.PasswordHasher
	tokens            users.TokenIssuer
	audit             auditlogs.AuditLogService
	allowRegistration bool
	logger            logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	userRepo users.UserRepository,
	hasher users.PasswordHasher,
	tokens users.TokenIssuer,
	audit auditlogs.AuditLogService,
	allowRegistration bool,
	logger logger.Logger,
) (users.AuthService, error) {
	return &authService{
		userRepo:          userRepo,
		hasher:            hasher,
		tokens:            tokens,
		audit:             audit,
		allowRegistration: allowRegistration,
		logger:            logger,
	}, nil
}

// Login verifies the credentials, stamps the login time and issues a token
func (s *authService) Login(ctx context.Context, in *users.LoginInput) (*users.AuthResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, users.NormalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.Unauthorized(invalidCredentials)
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, in.Password); err != nil {
		return nil, errs.Unauthorized(invalidCredentials)
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	result, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	s.audit.Record(withUser(ctx, user), auditlogs.ActionLogin, auditlogs.ResourceUser, user.ID, nil)
	return result, nil
}

// Register creates an account. The first account is an admin, later ones are
// editors and require open registration.
func (s *authService) Register(ctx context.Context, in *users.RegisterInput) (*users.AuthResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	role := users.RoleEditor
	if count == 0 {
		role = users.RoleAdmin
	} else if !s.allowRegistration {
		return nil, errs.Forbidden("registration is closed")
	}

	user, err := s.createUser(ctx, in.Name, in.Email, in.Password, role)
	if err != nil {
		return nil, err
	}

	result, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	s.audit.Record(withUser(ctx, user), auditlogs.ActionRegister, auditlogs.ResourceUser, user.ID, map[string]interface{}{"role": role})
	s.logger.Info("Registered user ", user.ID, " with role ", role)
	return result, nil
}

// Me returns the user behind userID
func (s *authService) Me(ctx context.Context, userID string) (*users.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// ChangePassword replaces the password after checking the current one
func (s *authService) ChangePassword(ctx context.Context, userID string, in *users.ChangePasswordInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(user.PasswordHash, in.CurrentPassword); err != nil {
		return errs.Unauthorized("current password is incorrect")
	}

	hash, err := s.hasher.Hash(in.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hash
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.audit.Record(ctx, auditlogs.ActionPasswordChanged, auditlogs.ResourceUser, user.ID, nil)
	return nil
}

// EnsureAdmin creates an admin with the given credentials unless the email is taken
func (s *authService) EnsureAdmin(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	_, err := s.userRepo.GetByEmail(ctx, users.NormalizeEmail(email))
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	if name == "" {
		name = "Administrator"
	}
	user, err := s.createUser(ctx, name, email, password, users.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	s.logger.Info("Created admin user ", user.Email)
	return nil
}

// Authenticate verifies an access token
func (s *authService) Authenticate(ctx context.Context, token string) (*users.Claims, error) {
	if token == "" {
		return nil, errs.Unauthorized("missing token")
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, errs.Unauthorized("invalid or expired token")
	}
	return claims, nil
}

func (s *authService) createUser(ctx context.Context, name, email, password, role string) (*users.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &users.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        users.NormalizeEmail(email),
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) issue(user *users.User) (*users.AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &users.AuthResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// withUser attributes ctx to user while keeping the request's IP and user agent
func withUser(ctx context.Context, user *users.User) context.Context {
	actor := &auditlogs.Actor{UserID: user.ID, Email: user.Email, Role: user.Role}
	if current := auditlogs.ActorFromContext(ctx); current != nil {
		actor.IPAddress = current.IPAddress
		actor.UserAgent = current.UserAgent
	}
	return auditlogs.WithActor(ctx, actor)
}
