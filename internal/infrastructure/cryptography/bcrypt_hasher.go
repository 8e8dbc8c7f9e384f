package cryptography

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/portfolio-api/internal/domain/users"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher implements users.PasswordHasher
type bcryptHasher struct {
	cost int
}

// NewBcryptPasswordHasher creates a bcrypt-based password hasher
func NewBcryptPasswordHasher(cost int) (users.PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &bcryptHasher{cost: cost}, nil
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return errors.New("password mismatch")
	}
	return err
}
