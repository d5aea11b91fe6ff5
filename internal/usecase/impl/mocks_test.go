package impl

import (
	"context"

	"github.com/believemanasseh/luciddreams/internal/domain/entity"
	"github.com/believemanasseh/luciddreams/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// Hand-written testify mocks for the repository and service contracts the
// usecases depend on.

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByAuthToken(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)

	return args.Error(0)
}

func (m *mockPostRepository) FindByOwnerAndTitle(ctx context.Context, ownerID int64, title string) (*entity.Post, error) {
	args := m.Called(ctx, ownerID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *mockPostRepository) FindByOwnerAndID(ctx context.Context, ownerID, postID int64) (*entity.Post, error) {
	args := m.Called(ctx, ownerID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *mockPostRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Post, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *mockPostRepository) Delete(ctx context.Context, ownerID, postID int64) (bool, error) {
	args := m.Called(ctx, ownerID, postID)

	return args.Bool(0), args.Error(1)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) Issue() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1)
}

// stubRepositoryFactory hands out the shared mocks as if they were bound to a
// transaction.
type stubRepositoryFactory struct {
	users repository.UserRepository
	posts repository.PostRepository
}

func (f *stubRepositoryFactory) UserRepo() repository.UserRepository { return f.users }
func (f *stubRepositoryFactory) PostRepo() repository.PostRepository { return f.posts }

// stubTransactionManager runs the callback directly against the factory. When
// err is set the callback never runs, modeling a transaction that failed to
// begin.
type stubTransactionManager struct {
	factory repository.RepositoryFactory
	err     error
}

func (m *stubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.err != nil {
		return m.err
	}

	return fn(m.factory)
}
