package auth

import (
	"context"
	"errors"
)

// UseCase describes authentication/registration behavior.
type UseCase interface {
	Register(ctx context.Context, email, password string) (Account, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	repo   AccountRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewService returns default implementation of UseCase.
func NewService(repo AccountRepository, hasher PasswordHasher, tokens TokenIssuer) UseCase {
	return &authService{repo: repo, hasher: hasher, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, email, password string) (Account, error) {
	// If account exists, fail fast (best-effort check); the unique constraint
	// in the store is the backstop for concurrent registrations.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Account{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Account{}, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return Account{}, err
	}

	return s.repo.Create(ctx, Account{Email: email, PasswordHash: digest})
}

// Login verifies credentials and issues a token bound to the account.
// Unknown email and wrong password are deliberately indistinguishable.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !s.hasher.Verify(password, account.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(ctx, account)
}
