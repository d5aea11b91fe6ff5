// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/believemanasseh/luciddreams/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account.
// Email shape is checked at the binding boundary via the validate tags.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccountUsecase defines the account-related business operations.
// This is the contract that the delivery layer depends on.
type AccountUsecase interface {
	// Register creates a new account with a hashed password and a freshly
	// issued auth token. A taken email yields domain ErrEmailTaken.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials. An unknown email yields ErrUserNotFound, a
	// password mismatch ErrInvalidCredentials; bad credentials never surface
	// as internal errors.
	Login(ctx context.Context, input *LoginInput) (*entity.User, error)

	// Authenticate resolves an opaque bearer token to its owner. A miss
	// yields ErrInvalidToken; there is no expiry logic.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
