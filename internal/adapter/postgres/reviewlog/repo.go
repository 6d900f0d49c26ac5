// Package reviewlog implements the append-only ReviewLogEntry repository.
// Entries are inserted in batches with ON CONFLICT DO NOTHING so a retried
// push is idempotent; nothing ever updates or deletes them.
package reviewlog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/flashdeck/flashdeck-backend/internal/adapter/postgres"
	"github.com/flashdeck/flashdeck-backend/internal/domain"
)

const insertSQL = `
INSERT INTO review_logs (id, user_id, card_id, deck_id, grade, duration_ms, review_state, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO NOTHING`

const countSinceSQL = `
SELECT count(*) FROM review_logs WHERE user_id = $1 AND created_at >= $2`

const countTotalSQL = `
SELECT count(*) FROM review_logs WHERE user_id = $1`

const dailyCountsSQL = `
SELECT
    date_trunc('day', created_at)::date AS review_date,
    count(*) AS review_count
FROM review_logs
WHERE user_id = $1 AND created_at >= $2
GROUP BY review_date
ORDER BY review_date DESC
LIMIT $3`

// DayCount holds the number of reviews recorded on one calendar day.
type DayCount struct {
	Date  time.Time
	Count int
}

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// InsertBatch appends review log entries as a single pgx.Batch. Replayed
// entries (same client-generated id) are skipped. Ownership is stamped from
// userID. Returns the number of rows actually inserted.
func (r *Repo) InsertBatch(ctx context.Context, userID uuid.UUID, entries []domain.ReviewAppend, now time.Time) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		state := e.ReviewState
		if state == nil {
			state = domain.Bag{}
		}
		batch.Queue(insertSQL, e.ID, userID, e.CardID, e.DeckID, e.Grade, e.DurationMs, state, now)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for i := 0; i < batch.Len(); i++ {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch exec: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// CountSince returns the number of reviews at or after the given instant.
func (r *Repo) CountSince(ctx context.Context, userID uuid.UUID, from time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := querier.QueryRow(ctx, countSinceSQL, userID, from).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reviews since: %w", err)
	}

	return count, nil
}

// CountTotal returns the lifetime review count for the user.
func (r *Repo) CountTotal(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := querier.QueryRow(ctx, countTotalSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reviews total: %w", err)
	}

	return count, nil
}

// DailyCounts returns per-day review counts for the last lastNDays days,
// newest first. Days without reviews are absent from the result.
func (r *Repo) DailyCounts(ctx context.Context, userID uuid.UUID, from time.Time, lastNDays int) ([]DayCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, dailyCountsSQL, userID, from, lastNDays)
	if err != nil {
		return nil, fmt.Errorf("daily review counts: %w", err)
	}
	defer rows.Close()

	var counts []DayCount
	for rows.Next() {
		var dc DayCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, fmt.Errorf("scan daily count: %w", err)
		}
		counts = append(counts, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily counts: %w", err)
	}

	if counts == nil {
		counts = []DayCount{}
	}

	return counts, nil
}
