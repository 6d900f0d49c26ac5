package rest

import (
	"log/slog"
	"net/http"

	"github.com/flashdeck/flashdeck-backend/internal/config"
	"github.com/flashdeck/flashdeck-backend/internal/transport/middleware"
)

// RouterDeps holds everything the router needs to assemble the HTTP surface.
type RouterDeps struct {
	Sync    *SyncHandler
	Auth    *AuthHandler
	Stats   *StatsHandler
	Health  *HealthHandler
	Tokens  authService
	Limiter *middleware.RateLimiter

	Logger    *slog.Logger
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
}

// NewRouter assembles the ServeMux and wraps it in the shared middleware
// stack. Rate limiting is applied per route group so auth traffic and sync
// traffic draw from separate budgets.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	authed := middleware.Auth(deps.Tokens)
	syncLimited := deps.Limiter.Limit("sync", deps.RateLimit.SyncPerMinute)
	authLimited := deps.Limiter.Limit("auth", deps.RateLimit.AuthPerMinute)

	mux.Handle("GET /api/sync", authed(syncLimited(http.HandlerFunc(deps.Sync.Pull))))
	mux.Handle("POST /api/sync", authed(syncLimited(http.HandlerFunc(deps.Sync.Push))))

	mux.Handle("POST /api/auth/register", authLimited(http.HandlerFunc(deps.Auth.Register)))
	mux.Handle("POST /api/auth/login", authLimited(http.HandlerFunc(deps.Auth.Login)))
	mux.Handle("POST /api/auth/refresh", authLimited(http.HandlerFunc(deps.Auth.Refresh)))
	mux.Handle("POST /api/auth/logout", authLimited(http.HandlerFunc(deps.Auth.Logout)))

	mux.Handle("GET /api/stats/dashboard", authed(http.HandlerFunc(deps.Stats.Dashboard)))

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)

	base := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORS(deps.CORS),
	)

	return base(mux)
}
