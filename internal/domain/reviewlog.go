package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewLogEntry records a single review event for a card. Entries are
// append-only: sync never updates or deletes them. The ID is client-generated
// so that a retried push inserts each entry at most once.
type ReviewLogEntry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CardID      uuid.UUID
	DeckID      uuid.UUID
	Grade       int
	DurationMs  int
	ReviewState Bag // scheduler state snapshot at review time, opaque
	CreatedAt   time.Time
}
