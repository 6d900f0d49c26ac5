// Package deck implements the Deck repository using PostgreSQL.
// Filtered reads are built with squirrel; batched writes use pgx.Batch.
package deck

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/flashdeck/flashdeck-backend/internal/adapter/postgres"
	"github.com/flashdeck/flashdeck-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var deckColumns = []string{"id", "user_id", "name", "settings", "is_deleted", "created_at", "updated_at"}

// Upserts are idempotent by client-generated id. Two guards live in the SQL:
//   - the DO UPDATE clause only fires when the stored row belongs to the
//     same user, so a colliding foreign id can never be overwritten;
//   - is_deleted is ORed with the stored value, so a tombstone can never be
//     reverted by a late update from another device.
const upsertSQL = `
INSERT INTO decks (id, user_id, name, settings, is_deleted, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
ON CONFLICT (id) DO UPDATE SET
    name       = EXCLUDED.name,
    settings   = EXCLUDED.settings,
    is_deleted = decks.is_deleted OR EXCLUDED.is_deleted,
    updated_at = EXCLUDED.updated_at
WHERE decks.user_id = EXCLUDED.user_id`

const softDeleteSQL = `
UPDATE decks SET is_deleted = TRUE, updated_at = $3
WHERE id = ANY($1) AND user_id = $2`

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new deck repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type deckRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	Name      string     `db:"name"`
	Settings  domain.Bag `db:"settings"`
	IsDeleted bool       `db:"is_deleted"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// ListActive returns the user's non-deleted decks for a full snapshot.
func (r *Repo) ListActive(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error) {
	query, args, err := qb.Select(deckColumns...).
		From("decks").
		Where(sq.Eq{"user_id": userID, "is_deleted": false}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list active decks: %w", err)
	}

	return r.list(ctx, query, args)
}

// ListUpdatedSince returns every deck (tombstones included) whose updated_at
// is strictly greater than since.
func (r *Repo) ListUpdatedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.Deck, error) {
	query, args, err := qb.Select(deckColumns...).
		From("decks").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Gt{"updated_at": since}).
		OrderBy("updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list decks since: %w", err)
	}

	return r.list(ctx, query, args)
}

func (r *Repo) list(ctx context.Context, query string, args []any) ([]domain.Deck, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var rows []deckRow
	if err := pgxscan.Select(ctx, querier, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select decks: %w", err)
	}

	decks := make([]domain.Deck, len(rows))
	for i, row := range rows {
		decks[i] = domain.Deck(row)
	}

	return decks, nil
}

// CountActive returns the number of non-deleted decks the user owns.
func (r *Repo) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := qb.Select("count(*)").
		From("decks").
		Where(sq.Eq{"user_id": userID, "is_deleted": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count active decks: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active decks: %w", err)
	}

	return count, nil
}

// UpsertBatch applies deck upserts as a single pgx.Batch. Ownership is
// stamped from userID regardless of what the payload claimed. Returns the
// number of rows actually written.
func (r *Repo) UpsertBatch(ctx context.Context, userID uuid.UUID, upserts []domain.DeckUpsert, now time.Time) (int, error) {
	if len(upserts) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, u := range upserts {
		settings := u.Settings
		if settings == nil {
			settings = domain.Bag{}
		}
		batch.Queue(upsertSQL, u.ID, userID, u.Name, settings, u.IsDeleted, now)
	}

	return r.sendBatchExec(ctx, batch)
}

// SoftDeleteBatch flips tombstones for the given deck ids owned by userID.
func (r *Repo) SoftDeleteBatch(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, now time.Time) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, softDeleteSQL, ids, userID, now)
	if err != nil {
		return 0, fmt.Errorf("soft delete decks: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var written int
	for i := 0; i < batch.Len(); i++ {
		tag, err := results.Exec()
		if err != nil {
			return written, fmt.Errorf("batch exec: %w", err)
		}
		written += int(tag.RowsAffected())
	}

	return written, nil
}
