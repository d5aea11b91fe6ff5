package usecase

import (
	"context"

	"github.com/believemanasseh/luciddreams/internal/domain/entity"
)

// CreatePostInput defines the data required to create a post. The length
// bounds mirror the column widths, so oversized input fails validation before
// it reaches the store.
type CreatePostInput struct {
	Title string `json:"title" validate:"required,max=50"`
	Text  string `json:"text" validate:"required,max=255"`
}

// PostUsecase defines the post-related business operations. Every operation
// is scoped to the authenticated owner; there is no cross-user access path.
type PostUsecase interface {
	// CreatePost persists a new post for ownerID. A duplicate title for the
	// same owner yields ErrPostTitleTaken, whether caught by the pre-check or
	// by the store's composite unique constraint under a race.
	CreatePost(ctx context.Context, ownerID int64, input *CreatePostInput) (*entity.Post, error)

	// ListPosts returns all of the owner's posts, ordered ascending by id.
	ListPosts(ctx context.Context, ownerID int64) ([]*entity.Post, error)

	// DeletePost removes the owner's post. Missing posts and posts owned by
	// somebody else both yield ErrPostNotFound.
	DeletePost(ctx context.Context, ownerID, postID int64) error
}
