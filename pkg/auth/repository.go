package auth

import (
	"context"
	"errors"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AccountRepository abstracts persistence concerns from the domain layer.
// Create must fail with ErrEmailTaken when the email is already registered;
// the store's unique constraint is the authoritative guard against concurrent
// signups, not the caller's existence check.
type AccountRepository interface {
	Create(ctx context.Context, account Account) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
}
