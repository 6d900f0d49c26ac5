// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgres "github.com/flashdeck/flashdeck-backend/internal/adapter/postgres"
	"github.com/flashdeck/flashdeck-backend/internal/domain"
)

const createSQL = `
INSERT INTO users (id, email, username, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5)`

const getByEmailSQL = `
SELECT id, email, username, password_hash, created_at FROM users WHERE email = $1`

const getByIDSQL = `
SELECT id, email, username, password_hash, created_at FROM users WHERE id = $1`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new user.
// A duplicate email results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	createdAt := u.CreatedAt.UTC().Truncate(time.Microsecond)
	_, err := querier.Exec(ctx, createSQL, u.ID, u.Email, u.Username, u.PasswordHash, createdAt)
	if err != nil {
		return postgres.MapError(err, "user", u.ID)
	}

	return nil
}

// GetByEmail returns a user by email, domain.ErrNotFound if absent.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	u := domain.User{}
	err := querier.QueryRow(ctx, getByEmailSQL, email).Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return &u, nil
}

// GetByID returns a user by id, domain.ErrNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	u := domain.User{}
	err := querier.QueryRow(ctx, getByIDSQL, id).Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return &u, nil
}
