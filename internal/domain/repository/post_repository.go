package repository

import (
	"context"
	"errors"

	"github.com/believemanasseh/luciddreams/internal/domain/entity"
)

// ErrPostNotFound is a domain-specific error returned when a post is not found
// for the given owner. A post owned by somebody else is indistinguishable from
// a missing one.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for post persistence.
// Every lookup is scoped to an owning user; there is no cross-user read path.
type PostRepository interface {
	// Create persists a new post. The composite unique constraint on
	// (user_id, title) is the final arbiter of per-owner title uniqueness.
	Create(ctx context.Context, post *entity.Post) error

	// FindByOwnerAndTitle retrieves the owner's post with the given title,
	// used as the duplicate-title pre-check before a create.
	FindByOwnerAndTitle(ctx context.Context, ownerID int64, title string) (*entity.Post, error)

	// FindByOwnerAndID retrieves the owner's post with the given ID, used to
	// verify ownership before a delete.
	FindByOwnerAndID(ctx context.Context, ownerID, postID int64) (*entity.Post, error)

	// ListByOwner returns all posts owned by ownerID, ordered ascending by ID.
	ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Post, error)

	// Delete removes the post only if it exists and is owned by ownerID.
	// It reports whether a row was deleted; a miss is an idempotent no-op.
	Delete(ctx context.Context, ownerID, postID int64) (bool, error)
}
