package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/flashdeck/flashdeck-backend/internal/domain"
	"github.com/flashdeck/flashdeck-backend/pkg/ctxutil"
)

// DeckWithCards nests a deck's non-deleted cards under it for full sync.
type DeckWithCards struct {
	Deck  domain.Deck
	Cards []domain.Card
}

// Snapshot is the full-sync response: ground truth the client adopts after
// discarding all local state. Tombstoned rows are never included.
type Snapshot struct {
	Decks         []DeckWithCards
	Settings      domain.Bag
	DailyProgress domain.Bag
	ServerTime    time.Time
}

// Delta is the incremental response for a given watermark: flat lists of
// every deck and card updated strictly after it, tombstones included so the
// client can apply deletions locally. A nil Settings or DailyProgress bag
// means "unchanged since the watermark, do not touch the local copy".
type Delta struct {
	Decks         []domain.Deck
	Cards         []domain.Card
	Settings      domain.Bag
	DailyProgress domain.Bag
	ServerTime    time.Time
}

// FullSync serves a cold-start pull: non-deleted decks with their non-deleted
// cards nested, plus the full user document. The three reads are independent
// and run concurrently.
func (s *Service) FullSync(ctx context.Context) (*Snapshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Captured before the reads: anything written while we read will be
	// re-delivered on the next delta rather than skipped.
	serverTime := s.serverTime()

	var (
		decks []domain.Deck
		cards []domain.Card
		doc   *domain.UserDocument
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		decks, err = s.decks.ListActive(gctx, userID)
		if err != nil {
			return fmt.Errorf("list decks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cards, err = s.cards.ListActive(gctx, userID)
		if err != nil {
			return fmt.Errorf("list cards: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		doc, err = s.docs.Get(gctx, userID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("load user document: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Decks:         nestCards(decks, cards),
		Settings:      domain.Bag{},
		DailyProgress: domain.Bag{},
		ServerTime:    serverTime,
	}
	if doc != nil {
		snapshot.Settings = doc.Settings
		snapshot.DailyProgress = doc.DailyProgress
	}

	return snapshot, nil
}

// DeltaSync serves a warm resync against the client-supplied watermark.
// Comparison is strictly greater-than: a row updated in the same instant as
// the previous sync is not re-delivered, which is safe because the watermark
// is issued after all writes of its request are durable.
func (s *Service) DeltaSync(ctx context.Context, since time.Time) (*Delta, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	serverTime := s.serverTime()

	var (
		decks []domain.Deck
		cards []domain.Card
		doc   *domain.UserDocument
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		decks, err = s.decks.ListUpdatedSince(gctx, userID, since)
		if err != nil {
			return fmt.Errorf("list decks since: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cards, err = s.cards.ListUpdatedSince(gctx, userID, since)
		if err != nil {
			return fmt.Errorf("list cards since: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		doc, err = s.docs.Get(gctx, userID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("load user document: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	delta := &Delta{
		Decks:      decks,
		Cards:      cards,
		ServerTime: serverTime,
	}
	if doc != nil {
		// Sub-bags ride along only when they changed after the watermark.
		if doc.SettingsUpdatedAt.After(since) {
			delta.Settings = doc.Settings
		}
		if doc.ProgressUpdatedAt.After(since) {
			delta.DailyProgress = doc.DailyProgress
		}
	}

	return delta, nil
}

// nestCards groups non-deleted cards under their decks. Cards whose deck_id
// resolves to no live deck (referential drift from racing offline edits) are
// left out of the snapshot.
func nestCards(decks []domain.Deck, cards []domain.Card) []DeckWithCards {
	byDeck := make(map[uuid.UUID][]domain.Card, len(decks))
	for _, c := range cards {
		byDeck[c.DeckID] = append(byDeck[c.DeckID], c)
	}

	nested := make([]DeckWithCards, len(decks))
	for i, d := range decks {
		cs := byDeck[d.ID]
		if cs == nil {
			cs = []domain.Card{}
		}
		nested[i] = DeckWithCards{Deck: d, Cards: cs}
	}

	return nested
}
