package postgres

import (
	"context"

	"github.com/believemanasseh/luciddreams/internal/domain/entity"
	domainerrors "github.com/believemanasseh/luciddreams/internal/domain/errors"
	"github.com/believemanasseh/luciddreams/internal/domain/repository"
	"github.com/believemanasseh/luciddreams/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the domain's PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post. A (user_id, title) collision surfaces as
// ErrPostTitleTaken; the composite unique index catches the race where two
// identical create requests both pass the pre-check.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPostTitleTaken.WrapMessage("title already used by this owner")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required post information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// FindByOwnerAndTitle retrieves the owner's post with the given title.
func (repo *postRepository) FindByOwnerAndTitle(ctx context.Context, ownerID int64, title string) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND title = ?", ownerID, title).
		First(&postM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by owner and title")
	}

	return toPostDomain(&postM), nil
}

// FindByOwnerAndID retrieves the owner's post with the given ID. A post owned
// by somebody else is reported as not found.
func (repo *postRepository) FindByOwnerAndID(ctx context.Context, ownerID, postID int64) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, postID).
		First(&postM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by owner and id")
	}

	return toPostDomain(&postM), nil
}

// ListByOwner returns all of the owner's posts in ascending id order. The
// explicit ORDER BY keeps the listing deterministic regardless of how inserts
// and deletes interleaved.
func (repo *postRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Post, error) {
	var postMs []model.PostModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Find(&postMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts by owner")
	}

	posts := make([]*entity.Post, 0, len(postMs))
	for i := range postMs {
		posts = append(posts, toPostDomain(&postMs[i]))
	}

	return posts, nil
}

// Delete removes the post only if it is owned by ownerID. Missing or foreign
// posts are an idempotent no-op, reported as deleted=false.
func (repo *postRepository) Delete(ctx context.Context, ownerID, postID int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Delete(&model.PostModel{}, postID)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:        data.ID,
		Title:     data.Title,
		Text:      data.Text,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPostDomain converts a domain Post entity to a GORM PostModel for persistence.
func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:     data.ID,
		Title:  data.Title,
		Text:   data.Text,
		UserID: data.UserID,
	}
}
