package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/believemanasseh/luciddreams/internal/delivery/context"
	"github.com/believemanasseh/luciddreams/internal/domain/entity"
	domainerrors "github.com/believemanasseh/luciddreams/internal/domain/errors"
	"github.com/believemanasseh/luciddreams/internal/domain/repository"
	"github.com/believemanasseh/luciddreams/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	logger    *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PostRepo  repository.PostRepository
	Logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager: params.TxManager,
		postRepo:  params.PostRepo,
		logger:    params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost checks for a duplicate title and inserts in one transaction.
// The pre-check keeps the common failure cheap and readable; the composite
// unique constraint settles concurrent identical creates.
func (srv *postService) CreatePost(ctx context.Context, ownerID int64, input *usecase.CreatePostInput) (*entity.Post, error) {
	srv.log(ctx).Debug("Creating post", slog.Int64("ownerID", ownerID), slog.String("title", input.Title))

	newPost := &entity.Post{
		Title:  input.Title,
		Text:   input.Text,
		UserID: ownerID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		_, findErr := postRepo.FindByOwnerAndTitle(ctx, ownerID, input.Title)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrPostTitleTaken, "post already exists for this user")
		}
		if !errors.Is(findErr, repository.ErrPostNotFound) {
			return errors.Wrap(findErr, "failed to check for duplicate title")
		}

		return postRepo.Create(ctx, newPost)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create post", slog.Int64("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute post creation transaction")
	}

	srv.log(ctx).Debug("Post created", slog.Int64("postID", newPost.ID))

	return newPost, nil
}

// ListPosts returns the owner's posts in ascending id order.
func (srv *postService) ListPosts(ctx context.Context, ownerID int64) ([]*entity.Post, error) {
	posts, err := srv.postRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list posts", slog.Int64("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// DeletePost removes the owner's post. The repository treats a missing or
// foreign post as a no-op; both surface to the caller as not found.
func (srv *postService) DeletePost(ctx context.Context, ownerID, postID int64) error {
	deleted, err := srv.postRepo.Delete(ctx, ownerID, postID)
	if err != nil {
		srv.log(ctx).Error("Failed to delete post", slog.Int64("ownerID", ownerID), slog.Int64("postID", postID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete post")
	}
	if !deleted {
		return errors.Wrap(domainerrors.ErrPostNotFound, "post missing or not owned")
	}

	srv.log(ctx).Debug("Post deleted", slog.Int64("ownerID", ownerID), slog.Int64("postID", postID))

	return nil
}
