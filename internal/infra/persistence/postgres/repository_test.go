package postgres

import (
	"context"
	"testing"

	"github.com/believemanasseh/luciddreams/internal/domain/entity"
	domainerrors "github.com/believemanasseh/luciddreams/internal/domain/errors"
	"github.com/believemanasseh/luciddreams/internal/domain/repository"
	"github.com/believemanasseh/luciddreams/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the same schema the
// repositories expect in production: unique email and auth_token, composite
// unique (user_id, title), and a cascading foreign key from posts to users.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// _foreign_keys=on because SQLite does not enforce foreign keys unless
	// asked; a single pooled connection keeps the in-memory database alive.
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.UserModel{}, &model.PostModel{}))

	return db
}

func createTestUser(t *testing.T, repo repository.UserRepository, email, token string) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:        email,
		PasswordHash: "$2a$04$notarealdigestnotarealdigestno",
		AuthToken:    token,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	require.NotZero(t, user.ID)

	return user
}

func TestUserRepository_CreateAssignsIdentity(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, repo, "a@x.com", "token-a")

	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	createTestUser(t, repo, "a@x.com", "token-a")

	dup := &entity.User{
		Email:        "a@x.com",
		PasswordHash: "digest",
		AuthToken:    "token-b",
	}
	err := repo.Create(context.Background(), dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	created := createTestUser(t, repo, "a@x.com", "token-a")

	found, err := repo.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, created.AuthToken, found.AuthToken)

	_, err = repo.FindByEmail(context.Background(), "missing@x.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindByAuthToken(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	created := createTestUser(t, repo, "a@x.com", "token-a")

	found, err := repo.FindByAuthToken(context.Background(), "token-a")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindByAuthToken(context.Background(), "bogus")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DeleteCascadesToPosts(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, userRepo, "a@x.com", "token-a")
	survivor := createTestUser(t, userRepo, "b@x.com", "token-b")

	require.NoError(t, postRepo.Create(ctx, &entity.Post{Title: "one", Text: "t", UserID: owner.ID}))
	require.NoError(t, postRepo.Create(ctx, &entity.Post{Title: "two", Text: "t", UserID: owner.ID}))
	require.NoError(t, postRepo.Create(ctx, &entity.Post{Title: "keep", Text: "t", UserID: survivor.ID}))

	require.NoError(t, userRepo.Delete(ctx, owner.ID))

	_, err := userRepo.FindByID(ctx, owner.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	// No orphaned rows may remain for the deleted owner.
	var orphans int64
	require.NoError(t, db.Model(&model.PostModel{}).Where("user_id = ?", owner.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	// The other user's posts are untouched.
	remaining, err := postRepo.ListByOwner(ctx, survivor.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestUserRepository_DeleteMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	err := repo.Delete(context.Background(), 4242)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestPostRepository_DuplicateTitleScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, userRepo, "alice@x.com", "token-alice")
	bob := createTestUser(t, userRepo, "bob@x.com", "token-bob")

	require.NoError(t, postRepo.Create(ctx, &entity.Post{Title: "A", Text: "body", UserID: alice.ID}))

	// Same owner, same title: constraint violation mapped to the domain error.
	err := postRepo.Create(ctx, &entity.Post{Title: "A", Text: "body", UserID: alice.ID})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPostTitleTaken)

	// Different owner, same title: allowed.
	require.NoError(t, postRepo.Create(ctx, &entity.Post{Title: "A", Text: "body", UserID: bob.ID}))
}

func TestPostRepository_ListByOwnerOrderedByID(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, userRepo, "a@x.com", "token-a")

	first := &entity.Post{Title: "first", Text: "t", UserID: owner.ID}
	second := &entity.Post{Title: "second", Text: "t", UserID: owner.ID}
	third := &entity.Post{Title: "third", Text: "t", UserID: owner.ID}
	for _, p := range []*entity.Post{first, second, third} {
		require.NoError(t, postRepo.Create(ctx, p))
	}

	// Delete the middle post and add another; order must stay ascending by id.
	deleted, err := postRepo.Delete(ctx, owner.ID, second.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	fourth := &entity.Post{Title: "fourth", Text: "t", UserID: owner.ID}
	require.NoError(t, postRepo.Create(ctx, fourth))

	posts, err := postRepo.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []int64{first.ID, third.ID, fourth.ID}, []int64{posts[0].ID, posts[1].ID, posts[2].ID})
	for i := 1; i < len(posts); i++ {
		assert.Less(t, posts[i-1].ID, posts[i].ID)
	}
}

func TestPostRepository_DeleteIsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, userRepo, "alice@x.com", "token-alice")
	bob := createTestUser(t, userRepo, "bob@x.com", "token-bob")

	post := &entity.Post{Title: "mine", Text: "t", UserID: alice.ID}
	require.NoError(t, postRepo.Create(ctx, post))

	// Bob cannot delete Alice's post; the call is a no-op.
	deleted, err := postRepo.Delete(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	// The post is still there.
	found, err := postRepo.FindByOwnerAndID(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, found.ID)

	// Alice can delete her own post.
	deleted, err = postRepo.Delete(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Deleting again is an idempotent no-op, never an error.
	deleted, err = postRepo.Delete(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	posts, err := postRepo.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostRepository_FindByOwnerAndTitle(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, userRepo, "a@x.com", "token-a")
	require.NoError(t, postRepo.Create(ctx, &entity.Post{Title: "A", Text: "t", UserID: owner.ID}))

	found, err := postRepo.FindByOwnerAndTitle(ctx, owner.ID, "A")
	require.NoError(t, err)
	assert.Equal(t, "A", found.Title)

	_, err = postRepo.FindByOwnerAndTitle(ctx, owner.ID, "B")
	assert.ErrorIs(t, err, repository.ErrPostNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	userRepo := NewUserRepository(db)
	ctx := context.Background()

	sentinel := assert.AnError
	err := tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user := &entity.User{Email: "tx@x.com", PasswordHash: "d", AuthToken: "tx-token"}
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return err
		}

		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	// The insert inside the failed transaction must not be visible.
	_, err = userRepo.FindByEmail(ctx, "tx@x.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	userRepo := NewUserRepository(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, &entity.User{
			Email:        "tx@x.com",
			PasswordHash: "d",
			AuthToken:    "tx-token",
		})
	})
	require.NoError(t, err)

	found, err := userRepo.FindByEmail(ctx, "tx@x.com")
	require.NoError(t, err)
	assert.Equal(t, "tx@x.com", found.Email)
}
