package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/flashdeck/flashdeck-backend/internal/domain"
	"github.com/flashdeck/flashdeck-backend/internal/service/stats"
)

// statsService defines the minimal interface needed by StatsHandler.
type statsService interface {
	GetDashboard(ctx context.Context) (stats.Dashboard, error)
}

// StatsHandler serves the study statistics endpoints.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type dashboardResponse struct {
	DeckCount    int `json:"deck_count"`
	CardCount    int `json:"card_count"`
	ReviewsToday int `json:"reviews_today"`
	TotalReviews int `json:"total_reviews"`
	StreakDays   int `json:"streak_days"`
	XP           int `json:"xp"`
}

// Dashboard handles GET /api/stats/dashboard.
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		DeckCount:    d.DeckCount,
		CardCount:    d.CardCount,
		ReviewsToday: d.ReviewsToday,
		TotalReviews: d.TotalReviews,
		StreakDays:   d.StreakDays,
		XP:           d.XP,
	})
}
