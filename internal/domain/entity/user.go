// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity in the system, representing a registered account.
// PasswordHash holds the bcrypt digest of the login password; it never leaves
// the process through a read path. AuthToken is the opaque bearer credential
// issued exactly once, at account creation.
type User struct {
	ID           int64     // Store-assigned integer identity.
	Email        string    // Login identifier, unique across all users.
	PasswordHash string    // Bcrypt digest, never the plaintext.
	AuthToken    string    // Opaque bearer token, unique, never rotated.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
