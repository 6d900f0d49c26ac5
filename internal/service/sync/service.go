// Package sync implements the client-server state synchronization engine:
// decoding client change batches, batched idempotent upserts, field-level
// merge of the per-user document, and snapshot/delta pull responses.
package sync

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type deckRepo interface {
	ListActive(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error)
	ListUpdatedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.Deck, error)
	UpsertBatch(ctx context.Context, userID uuid.UUID, upserts []domain.DeckUpsert, now time.Time) (int, error)
	SoftDeleteBatch(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, now time.Time) (int, error)
}

type cardRepo interface {
	ListActive(ctx context.Context, userID uuid.UUID) ([]domain.Card, error)
	ListUpdatedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.Card, error)
	UpsertBatch(ctx context.Context, userID uuid.UUID, upserts []domain.CardUpsert, now time.Time) (int, error)
	SoftDeleteBatch(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, now time.Time) (int, error)
}

type reviewLogRepo interface {
	InsertBatch(ctx context.Context, userID uuid.UUID, entries []domain.ReviewAppend, now time.Time) (int, error)
}

type userDocRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserDocument, error)
	Upsert(ctx context.Context, doc *domain.UserDocument) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service is the sync coordinator. It holds no per-request state; all state
// lives in the persistence layer.
type Service struct {
	decks   deckRepo
	cards   cardRepo
	reviews reviewLogRepo
	docs    userDocRepo
	tx      txManager
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new sync service.
func NewService(
	logger *slog.Logger,
	decks deckRepo,
	cards cardRepo,
	reviews reviewLogRepo,
	docs userDocRepo,
	tx txManager,
) *Service {
	return &Service{
		decks:   decks,
		cards:   cards,
		reviews: reviews,
		docs:    docs,
		tx:      tx,
		log:     logger.With("service", "sync"),
		now:     time.Now,
	}
}

// serverTime returns the timestamp stamped on every write of a request and
// returned to the client as its next watermark. Microsecond precision
// matches what PostgreSQL stores, so the watermark round-trips exactly.
func (s *Service) serverTime() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}
