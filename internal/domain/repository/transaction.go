package repository

import "context"

// RepositoryFactory creates repository instances that are all bound to a
// single, shared transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	PostRepo() PostRepository
}

// TransactionManager defines the interface for executing operations within a
// database transaction. The callback receives a factory whose repositories all
// run on the same transaction; commit-or-rollback is guaranteed on every exit
// path, including panics.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
