package auth

import "context"

// TokenIssuer abstracts token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenIssuer interface {
	Issue(ctx context.Context, account Account) (string, error)
}

// PasswordHasher abstracts the one-way password hash primitive.
// Verify must return false, never panic, for malformed digests.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
