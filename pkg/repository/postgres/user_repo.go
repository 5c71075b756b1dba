package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/webstore/catalog-api/pkg/auth"
	"github.com/webstore/catalog-api/pkg/dbx"
)

// UserRepository implements auth.AccountRepository backed by PostgreSQL.
type UserRepository struct {
	db dbx.DBTX
}

func NewUserRepository(db dbx.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, account auth.Account) (auth.Account, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, account.Email, account.PasswordHash).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return auth.Account{}, auth.ErrEmailTaken
		}
		return auth.Account{}, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.Account, error) {
	var account auth.Account
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, created_at
		FROM users WHERE email = $1
	`, email).Scan(&account.ID, &account.Email, &account.PasswordHash, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.Account{}, auth.ErrNotFound
		}
		return auth.Account{}, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}
