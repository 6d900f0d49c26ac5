// Package token implements the refresh token repository using PostgreSQL.
// Only SHA-256 hashes of tokens are stored.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	postgres "github.com/flashdeck/flashdeck-backend/internal/adapter/postgres"
	"github.com/flashdeck/flashdeck-backend/internal/domain"
)

const storeSQL = `
INSERT INTO refresh_tokens (token_hash, user_id, expires_at, created_at)
VALUES ($1, $2, $3, $4)`

const getSQL = `
SELECT token_hash, user_id, expires_at, created_at FROM refresh_tokens WHERE token_hash = $1`

const deleteSQL = `DELETE FROM refresh_tokens WHERE token_hash = $1`

const deleteByUserSQL = `DELETE FROM refresh_tokens WHERE user_id = $1`

const deleteExpiredSQL = `DELETE FROM refresh_tokens WHERE expires_at < $1`

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new refresh token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Store saves a refresh token hash.
func (r *Repo) Store(ctx context.Context, t *domain.RefreshToken) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	_, err := querier.Exec(ctx, storeSQL, t.TokenHash, t.UserID,
		t.ExpiresAt.UTC().Truncate(time.Microsecond),
		t.CreatedAt.UTC().Truncate(time.Microsecond))
	if err != nil {
		return postgres.MapError(err, "refresh_token", t.UserID)
	}

	return nil
}

// Get returns a stored token by hash, domain.ErrNotFound if absent.
func (r *Repo) Get(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	t := domain.RefreshToken{}
	err := querier.QueryRow(ctx, getSQL, tokenHash).Scan(
		&t.TokenHash, &t.UserID, &t.ExpiresAt, &t.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	return &t, nil
}

// Delete removes a single token (rotation).
func (r *Repo) Delete(ctx context.Context, tokenHash string) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := querier.Exec(ctx, deleteSQL, tokenHash); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}

	return nil
}

// DeleteByUser removes every token for the user (logout everywhere).
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := querier.Exec(ctx, deleteByUserSQL, userID); err != nil {
		return fmt.Errorf("delete refresh tokens for user: %w", err)
	}

	return nil
}

// DeleteExpired removes tokens past their expiry. Returns rows removed.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, deleteExpiredSQL, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired refresh tokens: %w", err)
	}

	return int(tag.RowsAffected()), nil
}
