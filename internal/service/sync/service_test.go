package sync

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-backend/internal/domain"
	"github.com/flashdeck/flashdeck-backend/pkg/ctxutil"
)

//go:generate moq -out deck_repo_mock_test.go -pkg sync . deckRepo
//go:generate moq -out card_repo_mock_test.go -pkg sync . cardRepo
//go:generate moq -out review_log_repo_mock_test.go -pkg sync . reviewLogRepo
//go:generate moq -out user_doc_repo_mock_test.go -pkg sync . userDocRepo

// fixedNow is the clock every sync test pins the service to.
var fixedNow = time.Date(2026, 2, 14, 12, 0, 0, 123456789, time.UTC)

// okDeckRepo returns a deck mock whose every method succeeds with zero rows.
func okDeckRepo() *deckRepoMock {
	return &deckRepoMock{
		ListActiveFunc: func(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error) {
			return nil, nil
		},
		ListUpdatedSinceFunc: func(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.Deck, error) {
			return nil, nil
		},
		UpsertBatchFunc: func(ctx context.Context, userID uuid.UUID, upserts []domain.DeckUpsert, now time.Time) (int, error) {
			return len(upserts), nil
		},
		SoftDeleteBatchFunc: func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, now time.Time) (int, error) {
			return len(ids), nil
		},
	}
}

func okCardRepo() *cardRepoMock {
	return &cardRepoMock{
		ListActiveFunc: func(ctx context.Context, userID uuid.UUID) ([]domain.Card, error) {
			return nil, nil
		},
		ListUpdatedSinceFunc: func(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.Card, error) {
			return nil, nil
		},
		UpsertBatchFunc: func(ctx context.Context, userID uuid.UUID, upserts []domain.CardUpsert, now time.Time) (int, error) {
			return len(upserts), nil
		},
		SoftDeleteBatchFunc: func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, now time.Time) (int, error) {
			return len(ids), nil
		},
	}
}

func okReviewRepo() *reviewLogRepoMock {
	return &reviewLogRepoMock{
		InsertBatchFunc: func(ctx context.Context, userID uuid.UUID, entries []domain.ReviewAppend, now time.Time) (int, error) {
			return len(entries), nil
		},
	}
}

func emptyDocRepo() *userDocRepoMock {
	return &userDocRepoMock{
		GetFunc: func(ctx context.Context, userID uuid.UUID) (*domain.UserDocument, error) {
			return nil, domain.ErrNotFound
		},
		UpsertFunc: func(ctx context.Context, doc *domain.UserDocument) error {
			return nil
		},
	}
}

// passthroughTx runs the callback without a real transaction.
type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(decks *deckRepoMock, cards *cardRepoMock, reviews *reviewLogRepoMock, docs *userDocRepoMock) *Service {
	svc := NewService(slog.Default(), decks, cards, reviews, docs, passthroughTx{})
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func userCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}
