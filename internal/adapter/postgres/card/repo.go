// Package card implements the Card repository using PostgreSQL.
// Filtered reads are built with squirrel; batched writes use pgx.Batch.
package card

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

var cardColumns = []string{
	"id", "user_id", "deck_id", "term", "definition", "tags",
	"review_state", "is_suspended", "is_deleted", "created_at", "updated_at",
}

// Same guards as the deck upsert: cross-user id collisions are a no-op and
// tombstones are monotonic. deck_id is taken from the payload without FK
// checks; a dangling reference is referential drift, not an error.
const upsertSQL = `
INSERT INTO cards (id, user_id, deck_id, term, definition, tags, review_state,
                   is_suspended, is_deleted, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
ON CONFLICT (id) DO UPDATE SET
    deck_id      = EXCLUDED.deck_id,
    term         = EXCLUDED.term,
    definition   = EXCLUDED.definition,
    tags         = EXCLUDED.tags,
    review_state = EXCLUDED.review_state,
    is_suspended = EXCLUDED.is_suspended,
    is_deleted   = cards.is_deleted OR EXCLUDED.is_deleted,
    updated_at   = EXCLUDED.updated_at
WHERE cards.user_id = EXCLUDED.user_id`

const softDeleteSQL = `
UPDATE cards SET is_deleted = TRUE, updated_at = $3
WHERE id = ANY($1) AND user_id = $2`

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type cardRow struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	DeckID      uuid.UUID  `db:"deck_id"`
	Term        string     `db:"term"`
	Definition  string     `db:"definition"`
	Tags        []string   `db:"tags"`
	ReviewState domain.Bag `db:"review_state"`
	IsSuspended bool       `db:"is_suspended"`
	IsDeleted   bool       `db:"is_deleted"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// ListActive returns the user's non-deleted cards for a full snapshot,
// ordered by deck so the caller can group them.
func (r *Repo) ListActive(ctx context.Context, userID uuid.UUID) ([]domain.Card, error) {
	query, args, err := qb.Select(cardColumns...).
		From("cards").
		Where(sq.Eq{"user_id": userID, "is_deleted": false}).
		OrderBy("deck_id", "created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list active cards: %w", err)
	}

	return r.list(ctx, query, args)
}

// ListUpdatedSince returns every card (tombstones included) whose updated_at
// is strictly greater than since.
func (r *Repo) ListUpdatedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.Card, error) {
	query, args, err := qb.Select(cardColumns...).
		From("cards").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Gt{"updated_at": since}).
		OrderBy("updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cards since: %w", err)
	}

	return r.list(ctx, query, args)
}

func (r *Repo) list(ctx context.Context, query string, args []any) ([]domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var rows []cardRow
	if err := pgxscan.Select(ctx, querier, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select cards: %w", err)
	}

	cards := make([]domain.Card, len(rows))
	for i, row := range rows {
		cards[i] = domain.Card(row)
	}

	return cards, nil
}

// CountActive returns the number of non-deleted cards the user owns.
func (r *Repo) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := qb.Select("count(*)").
		From("cards").
		Where(sq.Eq{"user_id": userID, "is_deleted": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count active cards: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active cards: %w", err)
	}

	return count, nil
}

// UpsertBatch applies card upserts as a single pgx.Batch. Ownership is
// stamped from userID regardless of what the payload claimed. Returns the
// number of rows actually written.
func (r *Repo) UpsertBatch(ctx context.Context, userID uuid.UUID, upserts []domain.CardUpsert, now time.Time) (int, error) {
	if len(upserts) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, u := range upserts {
		tags := u.Tags
		if tags == nil {
			tags = []string{}
		}
		state := u.ReviewState
		if state == nil {
			state = domain.Bag{}
		}
		batch.Queue(upsertSQL, u.ID, userID, u.DeckID, u.Term, u.Definition,
			tags, state, u.IsSuspended, u.IsDeleted, now)
	}

	return r.sendBatchExec(ctx, batch)
}

// SoftDeleteBatch flips tombstones for the given card ids owned by userID.
func (r *Repo) SoftDeleteBatch(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, now time.Time) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, softDeleteSQL, ids, userID, now)
	if err != nil {
		return 0, fmt.Errorf("soft delete cards: %w", err)
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
