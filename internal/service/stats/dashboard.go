package stats

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/flashdeck/flashdeck-backend/internal/adapter/postgres/reviewlog"
	"github.com/flashdeck/flashdeck-backend/internal/domain"
	"github.com/flashdeck/flashdeck-backend/pkg/ctxutil"
)

// GetDashboard computes the dashboard for the authenticated user. Counts are
// read concurrently; the streak is derived from per-day review counts and
// counts today only once at least one review has been recorded today.
func (s *Service) GetDashboard(ctx context.Context) (Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Dashboard{}, domain.ErrUnauthorized
	}

	now := s.now().UTC()
	dayStart := now.Truncate(24 * time.Hour)
	windowStart := dayStart.AddDate(0, 0, -streakWindowDays)

	var (
		d      Dashboard
		counts []reviewlog.DayCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.decks.CountActive(gctx, userID)
		if err != nil {
			return fmt.Errorf("count decks: %w", err)
		}
		d.DeckCount = n
		return nil
	})
	g.Go(func() error {
		n, err := s.cards.CountActive(gctx, userID)
		if err != nil {
			return fmt.Errorf("count cards: %w", err)
		}
		d.CardCount = n
		return nil
	})
	g.Go(func() error {
		n, err := s.reviews.CountSince(gctx, userID, dayStart)
		if err != nil {
			return fmt.Errorf("count reviews today: %w", err)
		}
		d.ReviewsToday = n
		return nil
	})
	g.Go(func() error {
		n, err := s.reviews.CountTotal(gctx, userID)
		if err != nil {
			return fmt.Errorf("count reviews total: %w", err)
		}
		d.TotalReviews = n
		return nil
	})
	g.Go(func() error {
		dc, err := s.reviews.DailyCounts(gctx, userID, windowStart, streakWindowDays)
		if err != nil {
			return fmt.Errorf("daily counts: %w", err)
		}
		counts = dc
		return nil
	})

	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	d.StreakDays = streak(counts, dayStart)
	d.XP = d.TotalReviews * xpPerReview

	s.log.DebugContext(ctx, "dashboard computed",
		"user_id", userID,
		"reviews_today", d.ReviewsToday,
		"streak_days", d.StreakDays)

	return d, nil
}

// streak counts consecutive days with at least one review, walking backwards
// from today. A day without reviews today does not break the streak; the
// chain just has to be unbroken from yesterday back.
func streak(counts []reviewlog.DayCount, today time.Time) int {
	reviewed := make(map[time.Time]bool, len(counts))
	for _, dc := range counts {
		reviewed[dc.Date.UTC().Truncate(24*time.Hour)] = true
	}

	days := 0
	cursor := today
	if !reviewed[cursor] {
		cursor = cursor.AddDate(0, 0, -1)
	}
	for reviewed[cursor] {
		days++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return days
}
