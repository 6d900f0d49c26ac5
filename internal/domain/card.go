package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card is a single flashcard belonging to exactly one deck.
// ReviewState is owned by the client-side scheduler; the server stores it
// as an opaque bag and never interprets it.
type Card struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	DeckID      uuid.UUID
	Term        string
	Definition  string
	Tags        []string
	ReviewState Bag
	IsSuspended bool
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
