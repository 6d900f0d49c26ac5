package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserDocument is the singleton per-user document holding two independently
// mergeable bags: application settings and daily study progress. It is
// upserted in place for the lifetime of the account, never deleted.
//
// Each bag carries its own modification timestamp so delta sync can tell
// a client whether its local copy is stale.
type UserDocument struct {
	UserID            uuid.UUID
	Settings          Bag
	DailyProgress     Bag
	SettingsUpdatedAt time.Time
	ProgressUpdatedAt time.Time
}

// DevicesKey is the settings sub-bag that is merged one key level deeper
// instead of being replaced wholesale. Each device owns a distinct sub-key
// and must not clobber its siblings.
const DevicesKey = "devices"
