// Package userdoc implements the singleton UserDocument repository.
// The row is always written whole; field-level merging is the sync
// service's responsibility.
package userdoc

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgres "github.com/flashdeck/flashdeck-backend/internal/adapter/postgres"
	"github.com/flashdeck/flashdeck-backend/internal/domain"
)

const getSQL = `
SELECT user_id, settings, daily_progress, settings_updated_at, progress_updated_at
FROM user_documents
WHERE user_id = $1`

const upsertSQL = `
INSERT INTO user_documents (user_id, settings, daily_progress, settings_updated_at, progress_updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id) DO UPDATE SET
    settings            = EXCLUDED.settings,
    daily_progress      = EXCLUDED.daily_progress,
    settings_updated_at = EXCLUDED.settings_updated_at,
    progress_updated_at = EXCLUDED.progress_updated_at`

// Repo provides user document persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user document repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the user's document.
// Returns domain.ErrNotFound if the user has never synced one.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.UserDocument, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	doc := domain.UserDocument{}
	err := querier.QueryRow(ctx, getSQL, userID).Scan(
		&doc.UserID, &doc.Settings, &doc.DailyProgress,
		&doc.SettingsUpdatedAt, &doc.ProgressUpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user_document", userID)
	}

	return &doc, nil
}

// Upsert writes the complete document row for the user.
func (r *Repo) Upsert(ctx context.Context, doc *domain.UserDocument) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	settings := doc.Settings
	if settings == nil {
		settings = domain.Bag{}
	}
	progress := doc.DailyProgress
	if progress == nil {
		progress = domain.Bag{}
	}

	_, err := querier.Exec(ctx, upsertSQL,
		doc.UserID, settings, progress,
		doc.SettingsUpdatedAt.UTC().Truncate(time.Microsecond),
		doc.ProgressUpdatedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return postgres.MapError(err, "user_document", doc.UserID)
	}

	return nil
}
