package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdsync "sync"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-backend/internal/domain"
	"github.com/flashdeck/flashdeck-backend/pkg/ctxutil"
)

// PushInput is a decoded push request. A nil Settings or DailyProgress bag
// means the client omitted it.
type PushInput struct {
	Changes       []domain.Change
	Settings      domain.Bag
	DailyProgress domain.Bag
}

// PushResult acknowledges a fully successful push.
type PushResult struct {
	// Processed is the number of change records accepted after decoding.
	// Dropped records are not counted and not reported as errors.
	Processed int
}

// CategoryFailure names one batched write category that failed.
type CategoryFailure struct {
	Category string
	Message  string
}

// BatchError aggregates every failing category of a push. Categories that
// succeeded are not rolled back: every change kind is an idempotent upsert
// or a monotonic tombstone, so the client retries the entire original batch.
type BatchError struct {
	Failures []CategoryFailure
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("sync push: %d categories failed", len(e.Failures))
}

// Details returns one "category: message" line per failure.
func (e *BatchError) Details() []string {
	details := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		details[i] = fmt.Sprintf("%s: %s", f.Category, f.Message)
	}
	return details
}

// batch holds the per-category work lists of one push.
type batch struct {
	deckUpserts []domain.DeckUpsert
	cardUpserts []domain.CardUpsert
	deckDeletes []uuid.UUID
	cardDeletes []uuid.UUID
	reviews     []domain.ReviewAppend
}

// group splits decoded instructions into the five work lists. The lists are
// independent key spaces, so they can be written concurrently.
func group(instructions []domain.Instruction) batch {
	var b batch
	for _, ins := range instructions {
		switch v := ins.(type) {
		case domain.DeckUpsert:
			b.deckUpserts = append(b.deckUpserts, v)
		case domain.CardUpsert:
			b.cardUpserts = append(b.cardUpserts, v)
		case domain.DeckDelete:
			b.deckDeletes = append(b.deckDeletes, v.ID)
		case domain.CardDelete:
			b.cardDeletes = append(b.cardDeletes, v.ID)
		case domain.ReviewAppend:
			b.reviews = append(b.reviews, v)
		}
	}
	return b
}

// Push applies a client batch: decode, group, then run the five batched
// writes and the document merge concurrently. Every branch is awaited even
// when siblings fail, since each write is durable once issued and cancelling the
// rest would only widen the retry. On any failure Push returns a *BatchError
// listing every failing category; the caller never sees partial success.
func (s *Service) Push(ctx context.Context, input PushInput) (PushResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return PushResult{}, domain.ErrUnauthorized
	}

	instructions, warnings := Decode(input.Changes)
	for _, w := range warnings {
		s.log.WarnContext(ctx, "change record dropped",
			slog.Int("index", w.Index),
			slog.String("kind", string(w.Kind)),
			slog.String("reason", w.Reason),
		)
	}

	b := group(instructions)
	now := s.serverTime()

	// One slot per category, written by exactly one goroutine.
	categories := []string{"decks", "cards", "deck_deletes", "card_deletes", "review_logs", "user_document"}
	errs := make([]error, len(categories))

	var wg stdsync.WaitGroup
	run := func(slot int, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[slot] = fn()
		}()
	}

	run(0, func() error {
		_, err := s.decks.UpsertBatch(ctx, userID, b.deckUpserts, now)
		return err
	})
	run(1, func() error {
		_, err := s.cards.UpsertBatch(ctx, userID, b.cardUpserts, now)
		return err
	})
	run(2, func() error {
		_, err := s.decks.SoftDeleteBatch(ctx, userID, b.deckDeletes, now)
		return err
	})
	run(3, func() error {
		_, err := s.cards.SoftDeleteBatch(ctx, userID, b.cardDeletes, now)
		return err
	})
	run(4, func() error {
		_, err := s.reviews.InsertBatch(ctx, userID, b.reviews, now)
		return err
	})
	run(5, func() error {
		return s.mergeAndStore(ctx, userID, input.Settings, input.DailyProgress)
	})

	wg.Wait()

	var failures []CategoryFailure
	for i, err := range errs {
		if err != nil {
			failures = append(failures, CategoryFailure{Category: categories[i], Message: err.Error()})
		}
	}
	if len(failures) > 0 {
		return PushResult{}, &BatchError{Failures: failures}
	}

	return PushResult{Processed: len(instructions)}, nil
}

// mergeAndStore performs the read-merge-write cycle for the user document
// inside one transaction, so a failed write never leaves a half-applied
// merge behind. Concurrent pushes from two devices still race across
// transactions; the product accepts last-write-wins convergence at bag-key
// granularity.
func (s *Service) mergeAndStore(ctx context.Context, userID uuid.UUID, settings, progress domain.Bag) error {
	if settings == nil && progress == nil {
		return nil
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		stored, err := s.docs.Get(ctx, userID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("load user document: %w", err)
		}

		doc := mergeDocument(stored, userID, settings, progress, s.serverTime())
		if err := s.docs.Upsert(ctx, doc); err != nil {
			return fmt.Errorf("store user document: %w", err)
		}

		return nil
	})
}
