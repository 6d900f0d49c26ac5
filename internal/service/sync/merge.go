package sync

import (
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-backend/internal/domain"
)

// mergeDocument folds pushed settings and daily-progress bags into the
// stored user document. A nil incoming bag means the client omitted it; the
// stored value (and its timestamp) is carried forward unchanged, because
// the persistence call always writes a complete row.
//
// Last write wins per key, with one exception: the settings "devices"
// sub-bag is merged one key level deeper, so each device updates only its
// own sub-key and never clobbers siblings.
func mergeDocument(stored *domain.UserDocument, userID uuid.UUID, settings, progress domain.Bag, now time.Time) *domain.UserDocument {
	doc := domain.UserDocument{
		UserID:        userID,
		Settings:      domain.Bag{},
		DailyProgress: domain.Bag{},
	}
	if stored != nil {
		doc.Settings = stored.Settings
		doc.DailyProgress = stored.DailyProgress
		doc.SettingsUpdatedAt = stored.SettingsUpdatedAt
		doc.ProgressUpdatedAt = stored.ProgressUpdatedAt
	}

	if settings != nil {
		doc.Settings = mergeSettings(doc.Settings, settings)
		doc.SettingsUpdatedAt = now
	}
	if progress != nil {
		doc.DailyProgress = mergeShallow(doc.DailyProgress, progress)
		doc.ProgressUpdatedAt = now
	}

	return &doc
}

// mergeSettings shallow-merges incoming top-level keys over stored ones,
// except the devices sub-bag which is merged key-wise instead of replaced.
func mergeSettings(stored, incoming domain.Bag) domain.Bag {
	merged := mergeShallow(stored, incoming)

	storedDevices, okStored := asBag(stored[domain.DevicesKey])
	incomingDevices, okIncoming := asBag(incoming[domain.DevicesKey])
	if okStored && okIncoming {
		merged[domain.DevicesKey] = mergeShallow(storedDevices, incomingDevices)
	}

	return merged
}

// mergeShallow returns a new bag with incoming top-level keys written over
// stored ones. Neither input is mutated.
func mergeShallow(stored, incoming domain.Bag) domain.Bag {
	merged := make(domain.Bag, len(stored)+len(incoming))
	for k, v := range stored {
		merged[k] = v
	}
	for k, v := range incoming {
		merged[k] = v
	}
	return merged
}

// asBag converts a decoded JSON object value to a Bag.
func asBag(v any) (domain.Bag, bool) {
	switch b := v.(type) {
	case domain.Bag:
		return b, true
	case map[string]any:
		return domain.Bag(b), true
	}
	return nil, false
}
