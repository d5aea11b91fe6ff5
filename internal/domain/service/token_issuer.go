package service

// TokenIssuer mints the opaque bearer credential assigned to a user at account
// creation. Tokens are high-entropy random strings, never derived from user
// input, and never rotated or expired in this design. Validation is a pure
// store lookup (repository.UserRepository.FindByAuthToken); the store's unique
// constraint on the token column is the collision backstop.
type TokenIssuer interface {
	// Issue returns a fresh opaque token.
	Issue() (string, error)
}
