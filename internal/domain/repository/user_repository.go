// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/believemanasseh/luciddreams/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user entity to the storage. The store's unique
	// constraint on email is the final arbiter of duplicate registrations.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their store-assigned ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// A miss returns ErrUserNotFound, never a raw storage error.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByAuthToken retrieves the owner of an opaque bearer token.
	// A miss means the caller is unauthenticated.
	FindByAuthToken(ctx context.Context, token string) (*entity.User, error)

	// Delete removes a user; the schema cascades the deletion to all of the
	// user's posts.
	Delete(ctx context.Context, id int64) error
}
