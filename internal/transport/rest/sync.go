package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-backend/internal/config"
	"github.com/flashdeck/flashdeck-backend/internal/domain"
	syncsvc "github.com/flashdeck/flashdeck-backend/internal/service/sync"
)

// syncService defines the minimal interface needed by SyncHandler.
type syncService interface {
	Push(ctx context.Context, input syncsvc.PushInput) (syncsvc.PushResult, error)
	FullSync(ctx context.Context) (*syncsvc.Snapshot, error)
	DeltaSync(ctx context.Context, since time.Time) (*syncsvc.Delta, error)
}

// SyncHandler serves the pull and push endpoints.
type SyncHandler struct {
	svc      syncService
	cfg      config.SyncConfig
	validate *validator.Validate
	log      *slog.Logger
}

// NewSyncHandler creates a SyncHandler.
func NewSyncHandler(svc syncService, cfg config.SyncConfig, logger *slog.Logger) *SyncHandler {
	return &SyncHandler{
		svc:      svc,
		cfg:      cfg,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      logger.With("handler", "sync"),
	}
}

type changeRecord struct {
	Kind    string          `json:"kind" validate:"required"`
	ID      *uuid.UUID      `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type pushRequest struct {
	Changes       []changeRecord `json:"changes" validate:"dive"`
	Settings      domain.Bag     `json:"settings,omitempty"`
	DailyProgress domain.Bag     `json:"daily_progress,omitempty"`
}

type pushResponse struct {
	Success   bool `json:"success"`
	Processed int  `json:"processed"`
}

type deckJSON struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Settings  domain.Bag `json:"settings"`
	IsDeleted bool       `json:"is_deleted"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type cardJSON struct {
	ID          uuid.UUID  `json:"id"`
	DeckID      uuid.UUID  `json:"deck_id"`
	Term        string     `json:"term"`
	Definition  string     `json:"definition"`
	Tags        []string   `json:"tags"`
	ReviewState domain.Bag `json:"review_state"`
	IsSuspended bool       `json:"is_suspended"`
	IsDeleted   bool       `json:"is_deleted"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type deckWithCardsJSON struct {
	deckJSON
	Cards []cardJSON `json:"cards"`
}

type snapshotResponse struct {
	Decks         []deckWithCardsJSON `json:"decks"`
	Settings      domain.Bag          `json:"settings"`
	DailyProgress domain.Bag          `json:"daily_progress"`
	ServerTime    time.Time           `json:"server_time"`
}

type deltaResponse struct {
	Decks         []deckJSON `json:"decks"`
	Cards         []cardJSON `json:"cards"`
	Settings      domain.Bag `json:"settings"`
	DailyProgress domain.Bag `json:"daily_progress"`
	ServerTime    time.Time  `json:"server_time"`
}

// Pull handles GET /api/sync. Without a since parameter it returns the full
// snapshot; with one it returns the delta strictly after that watermark.
func (h *SyncHandler) Pull(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("since")
	if raw == "" {
		snapshot, err := h.svc.FullSync(r.Context())
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toSnapshotResponse(snapshot))
		return
	}

	since, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "since must be an RFC 3339 timestamp")
		return
	}

	delta, err := h.svc.DeltaSync(r.Context(), since)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeltaResponse(delta))
}

// Push handles POST /api/sync. The request is size-bounded and schema
// validated before the change records reach the decoder.
func (h *SyncHandler) Push(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)

	var req pushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Changes) > h.cfg.MaxBatchSize {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("batch exceeds maximum size of %d", h.cfg.MaxBatchSize))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, validationDetail(err))
		return
	}

	result, err := h.svc.Push(r.Context(), syncsvc.PushInput{
		Changes:       toChanges(req.Changes),
		Settings:      req.Settings,
		DailyProgress: req.DailyProgress,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pushResponse{Success: true, Processed: result.Processed})
}

func (h *SyncHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var batchErr *syncsvc.BatchError
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &batchErr):
		h.log.ErrorContext(r.Context(), "push failed",
			slog.Int("failed_categories", len(batchErr.Failures)))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "one or more write categories failed",
			"details": batchErr.Details(),
		})
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// validationDetail flattens validator errors into field-level detail.
func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request"
	}
	msg := "invalid request:"
	for _, fe := range verrs {
		msg += fmt.Sprintf(" %s (%s);", fe.Namespace(), fe.Tag())
	}
	return msg
}

func toChanges(records []changeRecord) []domain.Change {
	changes := make([]domain.Change, len(records))
	for i, rec := range records {
		changes[i] = domain.Change{
			Kind:    domain.ChangeKind(rec.Kind),
			ID:      rec.ID,
			Payload: rec.Payload,
		}
	}
	return changes
}

func toDeckJSON(d domain.Deck) deckJSON {
	settings := d.Settings
	if settings == nil {
		settings = domain.Bag{}
	}
	return deckJSON{
		ID:        d.ID,
		Name:      d.Name,
		Settings:  settings,
		IsDeleted: d.IsDeleted,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toCardJSON(c domain.Card) cardJSON {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	state := c.ReviewState
	if state == nil {
		state = domain.Bag{}
	}
	return cardJSON{
		ID:          c.ID,
		DeckID:      c.DeckID,
		Term:        c.Term,
		Definition:  c.Definition,
		Tags:        tags,
		ReviewState: state,
		IsSuspended: c.IsSuspended,
		IsDeleted:   c.IsDeleted,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toSnapshotResponse(s *syncsvc.Snapshot) snapshotResponse {
	decks := make([]deckWithCardsJSON, len(s.Decks))
	for i, dc := range s.Decks {
		cards := make([]cardJSON, len(dc.Cards))
		for j, c := range dc.Cards {
			cards[j] = toCardJSON(c)
		}
		decks[i] = deckWithCardsJSON{deckJSON: toDeckJSON(dc.Deck), Cards: cards}
	}
	return snapshotResponse{
		Decks:         decks,
		Settings:      s.Settings,
		DailyProgress: s.DailyProgress,
		ServerTime:    s.ServerTime,
	}
}

func toDeltaResponse(d *syncsvc.Delta) deltaResponse {
	decks := make([]deckJSON, len(d.Decks))
	for i, deck := range d.Decks {
		decks[i] = toDeckJSON(deck)
	}
	cards := make([]cardJSON, len(d.Cards))
	for i, card := range d.Cards {
		cards[i] = toCardJSON(card)
	}
	return deltaResponse{
		Decks:         decks,
		Cards:         cards,
		Settings:      d.Settings,
		DailyProgress: d.DailyProgress,
		ServerTime:    d.ServerTime,
	}
}
