package sync

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-backend/internal/domain"
)

// Warning describes a change record that was dropped during decoding.
// Warnings are logged server-side and never surfaced to the caller: offline
// clients may race create/delete across entities, and partial application
// must not block unrelated changes in the batch.
type Warning struct {
	Index  int
	Kind   domain.ChangeKind
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("change[%d] %s dropped: %s", w.Index, w.Kind, w.Reason)
}

// deckPayload is the loose wire shape shared by deck-create and deck-update.
type deckPayload struct {
	ID        *uuid.UUID `json:"id"`
	Name      string     `json:"name"`
	Settings  domain.Bag `json:"settings"`
	IsDeleted bool       `json:"is_deleted"`
}

// cardPayload is the loose wire shape shared by card-create and card-update.
type cardPayload struct {
	ID          *uuid.UUID `json:"id"`
	DeckID      *uuid.UUID `json:"deck_id"`
	Term        string     `json:"term"`
	Definition  string     `json:"definition"`
	Tags        []string   `json:"tags"`
	ReviewState domain.Bag `json:"review_state"`
	IsSuspended bool       `json:"is_suspended"`
	IsDeleted   bool       `json:"is_deleted"`
}

// reviewPayload is the loose wire shape of review-log-append.
type reviewPayload struct {
	ID          *uuid.UUID `json:"id"`
	CardID      *uuid.UUID `json:"card_id"`
	DeckID      *uuid.UUID `json:"deck_id"`
	Grade       int        `json:"grade"`
	DurationMs  int        `json:"duration_ms"`
	ReviewState domain.Bag `json:"review_state"`
}

// Decode validates and normalizes an ordered batch of wire change records
// into typed instructions. Records missing required fields for their kind
// (or of unknown kind) are dropped with a warning; the rest of the batch
// proceeds. Decode never fails as a whole.
func Decode(changes []domain.Change) ([]domain.Instruction, []Warning) {
	instructions := make([]domain.Instruction, 0, len(changes))
	var warnings []Warning

	drop := func(i int, kind domain.ChangeKind, reason string) {
		warnings = append(warnings, Warning{Index: i, Kind: kind, Reason: reason})
	}

	for i, ch := range changes {
		switch ch.Kind {
		case domain.ChangeDeckCreate, domain.ChangeDeckUpdate:
			var p deckPayload
			if err := unmarshalPayload(ch.Payload, &p); err != nil {
				drop(i, ch.Kind, err.Error())
				continue
			}
			id, ok := resolveID(ch.ID, p.ID)
			if !ok {
				drop(i, ch.Kind, "missing deck id")
				continue
			}
			instructions = append(instructions, domain.DeckUpsert{
				ID:        id,
				Name:      p.Name,
				Settings:  p.Settings,
				IsDeleted: p.IsDeleted,
			})

		case domain.ChangeDeckDelete:
			id, ok := resolveID(ch.ID, payloadID(ch.Payload))
			if !ok {
				drop(i, ch.Kind, "missing deck id")
				continue
			}
			instructions = append(instructions, domain.DeckDelete{ID: id})

		case domain.ChangeCardCreate, domain.ChangeCardUpdate:
			var p cardPayload
			if err := unmarshalPayload(ch.Payload, &p); err != nil {
				drop(i, ch.Kind, err.Error())
				continue
			}
			id, ok := resolveID(ch.ID, p.ID)
			if !ok {
				drop(i, ch.Kind, "missing card id")
				continue
			}
			if p.DeckID == nil || *p.DeckID == uuid.Nil {
				drop(i, ch.Kind, "missing deck_id")
				continue
			}
			instructions = append(instructions, domain.CardUpsert{
				ID:          id,
				DeckID:      *p.DeckID,
				Term:        p.Term,
				Definition:  p.Definition,
				Tags:        p.Tags,
				ReviewState: p.ReviewState,
				IsSuspended: p.IsSuspended,
				IsDeleted:   p.IsDeleted,
			})

		case domain.ChangeCardDelete:
			id, ok := resolveID(ch.ID, payloadID(ch.Payload))
			if !ok {
				drop(i, ch.Kind, "missing card id")
				continue
			}
			instructions = append(instructions, domain.CardDelete{ID: id})

		case domain.ChangeReviewLogAppend:
			var p reviewPayload
			if err := unmarshalPayload(ch.Payload, &p); err != nil {
				drop(i, ch.Kind, err.Error())
				continue
			}
			// The entry id is the replay-dedup key; without it the insert
			// would not be idempotent, so the record is dropped.
			id, ok := resolveID(ch.ID, p.ID)
			if !ok {
				drop(i, ch.Kind, "missing entry id")
				continue
			}
			if p.CardID == nil || *p.CardID == uuid.Nil {
				drop(i, ch.Kind, "missing card_id")
				continue
			}
			if p.DeckID == nil || *p.DeckID == uuid.Nil {
				drop(i, ch.Kind, "missing deck_id")
				continue
			}
			instructions = append(instructions, domain.ReviewAppend{
				ID:          id,
				CardID:      *p.CardID,
				DeckID:      *p.DeckID,
				Grade:       p.Grade,
				DurationMs:  p.DurationMs,
				ReviewState: p.ReviewState,
			})

		default:
			drop(i, ch.Kind, "unknown kind")
		}
	}

	return instructions, warnings
}

func unmarshalPayload(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return fmt.Errorf("missing payload")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("malformed payload: %v", err)
	}
	return nil
}

// payloadID extracts the optional id from a delete payload, so a delete
// record may carry its id in either the envelope or the payload like every
// other kind. A missing or malformed payload yields nil; the envelope id
// may still identify the record.
func payloadID(raw json.RawMessage) *uuid.UUID {
	if len(raw) == 0 {
		return nil
	}
	var p struct {
		ID *uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	return p.ID
}

// resolveID prefers the change record's own id, falling back to the payload.
func resolveID(recordID, payloadID *uuid.UUID) (uuid.UUID, bool) {
	if recordID != nil && *recordID != uuid.Nil {
		return *recordID, true
	}
	if payloadID != nil && *payloadID != uuid.Nil {
		return *payloadID, true
	}
	return uuid.Nil, false
}
