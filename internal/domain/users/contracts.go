package users

import (
	"context"
	"time"
)

// AuthService defines authentication and account operations.
type AuthService interface {
	// Login verifies credentials and issues a token.
	// Unknown email and wrong password both yield errs.ErrUnauthorized with the same message.
	Login(ctx context.Context, in *LoginInput) (*AuthResult, error)

	// Register creates an account. The first account becomes admin; later ones are
	// editors and only allowed when registration is open.
	Register(ctx context.Context, in *RegisterInput) (*AuthResult, error)

	// Me returns the user behind userID
	Me(ctx context.Context, userID string) (*User, error)

	// ChangePassword replaces the password after checking the current one
	ChangePassword(ctx context.Context, userID string, in *ChangePasswordInput) error

	// EnsureAdmin creates an admin with the given credentials unless the email is taken
	EnsureAdmin(ctx context.Context, name, email, password string) error

	// Authenticate verifies an access token
	Authenticate(ctx context.Context, token string) (*Claims, error)
}

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	// Create adds a new User to the database
	Create(ctx context.Context, user *User) error
	// GetByID retrieves a User by ID
	GetByID(ctx context.Context, userID string) (*User, error)
	// GetByEmail retrieves a User by normalised email
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Update saves changes to a User
	Update(ctx context.Context, user *User) error
	// Count returns the number of users
	Count(ctx context.Context) (int64, error)
	// ListByRole lists users with the given role
	ListByRole(ctx context.Context, role string) ([]*User, error)
}

// PasswordHasher hashes and compares passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns an error when password does not match hash
	Compare(hash, password string) error
}

// TokenIssuer signs and verifies access tokens
type TokenIssuer interface {
	Issue(user *User) (token string, expiresAt time.Time, err error)
	Verify(token string) (*Claims, error)
}
