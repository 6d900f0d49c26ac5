// Package stats computes study statistics: review counts, daily streak,
// and the XP total shown in the client's progress screens.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-backend/internal/adapter/postgres/reviewlog"
)

// xpPerReview is the flat XP award per recorded review.
const xpPerReview = 10

// streakWindowDays bounds how far back the streak computation looks.
const streakWindowDays = 365

type reviewLogRepo interface {
	CountSince(ctx context.Context, userID uuid.UUID, from time.Time) (int, error)
	CountTotal(ctx context.Context, userID uuid.UUID) (int, error)
	DailyCounts(ctx context.Context, userID uuid.UUID, from time.Time, lastNDays int) ([]reviewlog.DayCount, error)
}

type deckRepo interface {
	CountActive(ctx context.Context, userID uuid.UUID) (int, error)
}

type cardRepo interface {
	CountActive(ctx context.Context, userID uuid.UUID) (int, error)
}

// Service implements the stats business logic.
type Service struct {
	reviews reviewLogRepo
	decks   deckRepo
	cards   cardRepo
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new stats service.
func NewService(logger *slog.Logger, reviews reviewLogRepo, decks deckRepo, cards cardRepo) *Service {
	return &Service{
		reviews: reviews,
		decks:   decks,
		cards:   cards,
		log:     logger.With("service", "stats"),
		now:     time.Now,
	}
}
