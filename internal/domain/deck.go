package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deck is a collection of cards owned by a single user.
// The ID is generated by the client before transmission and serves as the
// idempotency key for sync upserts.
type Deck struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Settings  Bag // free-form client settings (display color etc.)
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Bag is a free-form JSON object the server stores but does not interpret.
type Bag map[string]any
