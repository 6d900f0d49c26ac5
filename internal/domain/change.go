package domain

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ChangeKind identifies the type of a client-originated change record.
type ChangeKind string

const (
	ChangeDeckCreate      ChangeKind = "deck-create"
	ChangeDeckUpdate      ChangeKind = "deck-update"
	ChangeDeckDelete      ChangeKind = "deck-delete"
	ChangeCardCreate      ChangeKind = "card-create"
	ChangeCardUpdate      ChangeKind = "card-update"
	ChangeCardDelete      ChangeKind = "card-delete"
	ChangeReviewLogAppend ChangeKind = "review-log-append"
)

// IsValid reports whether k is a known change kind.
func (k ChangeKind) IsValid() bool {
	switch k {
	case ChangeDeckCreate, ChangeDeckUpdate, ChangeDeckDelete,
		ChangeCardCreate, ChangeCardUpdate, ChangeCardDelete,
		ChangeReviewLogAppend:
		return true
	}
	return false
}

// Change is a transient, client-originated instruction as it arrives on the
// wire: a kind, an optional target identifier, and an uninterpreted payload.
// Changes do not persist; they are consumed once per push.
type Change struct {
	Kind    ChangeKind      `json:"kind"`
	ID      *uuid.UUID      `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Instruction is a decoded change record. Exactly one variant per change
// kind, each carrying only the fields that kind requires. The decoder turns
// the loose wire Change into one of these at the network boundary.
type Instruction interface {
	isInstruction()
}

// DeckUpsert creates or updates a deck.
type DeckUpsert struct {
	ID        uuid.UUID
	Name      string
	Settings  Bag
	IsDeleted bool
}

// DeckDelete flips a deck's tombstone.
type DeckDelete struct {
	ID uuid.UUID
}

// CardUpsert creates or updates a card.
type CardUpsert struct {
	ID          uuid.UUID
	DeckID      uuid.UUID
	Term        string
	Definition  string
	Tags        []string
	ReviewState Bag
	IsSuspended bool
	IsDeleted   bool
}

// CardDelete flips a card's tombstone.
type CardDelete struct {
	ID uuid.UUID
}

// ReviewAppend appends one immutable review log entry.
type ReviewAppend struct {
	ID          uuid.UUID
	CardID      uuid.UUID
	DeckID      uuid.UUID
	Grade       int
	DurationMs  int
	ReviewState Bag
}

func (DeckUpsert) isInstruction()   {}
func (DeckDelete) isInstruction()   {}
func (CardUpsert) isInstruction()   {}
func (CardDelete) isInstruction()   {}
func (ReviewAppend) isInstruction() {}
