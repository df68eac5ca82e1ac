package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sponsorhub/internal/config/configs"
	"sponsorhub/internal/core/port"
	"sponsorhub/internal/metrics"
)

// Services bundles the primary ports the HTTP adapter drives.
type Services struct {
	Profiles     port.ProfileUseCase
	Campaigns    port.CampaignUseCase
	Sponsorships port.SponsorshipUseCase
	Favorites    port.FavoriteUseCase
	Dashboard    port.DashboardUseCase
	Verifier     port.TokenVerifier

	// Ready reports whether backing services are reachable. Nil means the
	// handler is always ready.
	Ready func(ctx context.Context) error
}

// Options tunes cross-cutting middleware.
type Options struct {
	AllowedOrigins []string
	RateLimit      configs.RateLimit
	// TrustProxyHeaders enables chi's RealIP so the rate limiter keys on
	// the forwarded client address.
	TrustProxyHeaders bool
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it authenticates the caller, decodes the request, invokes a use
// case and maps the result or domain error to a JSON response.
type Handler struct {
	svc    Services
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, opts Options, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	limiter := newRateLimiter(opts.RateLimit)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if opts.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(metrics.InstrumentHandler)
	r.Use(cors(opts.AllowedOrigins))

	r.Get("/healthz", h.handleHealth)
	r.Get("/readyz", h.handleReady)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		// rate limiting precedes token verification
		r.Use(limiter.middleware)
		r.Use(h.authenticate)

		// public reads; a valid token is attached when present
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/campaigns/{id}/perk-tiers", h.handleListPerkTiers)
		r.Get("/profiles/{id}", h.handleGetProfile)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)

			r.Get("/profile", h.handleGetMyProfile)
			r.Put("/profile", h.handleUpsertMyProfile)

			r.Post("/campaigns", h.handleCreateCampaign)
			r.Patch("/campaigns/{id}", h.handleUpdateCampaign)
			r.Delete("/campaigns/{id}", h.handleDeleteCampaign)
			r.Get("/campaigns/{id}/contributions", h.handleListCampaignContributions)

			r.Post("/campaigns/{id}/perk-tiers", h.handleAddPerkTier)
			r.Patch("/perk-tiers/{id}", h.handleUpdatePerkTier)
			r.Delete("/perk-tiers/{id}", h.handleDeletePerkTier)

			r.Post("/sponsorship-requests", h.handleCreateSponsorship)
			r.Get("/sponsorship-requests", h.handleListSponsorships)
			r.Get("/sponsorship-requests/{id}", h.handleGetSponsorship)
			r.Patch("/sponsorship-requests/{id}", h.handleUpdateSponsorship)

			r.Get("/favorites", h.handleListFavorites)
			r.Post("/favorites", h.handleAddFavorite)
			r.Delete("/favorites/{campaignId}", h.handleRemoveFavorite)

			r.Get("/contributions", h.handleListMyContributions)
			r.Get("/dashboard", h.handleDashboard)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorMessage(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorMessage(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
