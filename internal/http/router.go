package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"nba-draft-hub/internal/http/handlers"
	"nba-draft-hub/internal/http/middleware"
	"nba-draft-hub/internal/metrics"
)

// NewRouter registers the local JSON surface on a chi router.
func NewRouter(h *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Middleware(logger, recorder))
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/logos/{file}", h.Logo)

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", h.Teams)
		r.Get("/{id}", h.TeamByID)
	})

	r.Route("/players", func(r chi.Router) {
		r.Get("/", h.Players)
		r.Get("/{id}", h.PlayerByID)
		r.Post("/next", h.NextPlayers)
		r.Post("/previous", h.PreviousPlayers)
	})

	r.Route("/session", func(r chi.Router) {
		r.Get("/", h.Session)
		r.Post("/token", h.RequestToken)
		r.Delete("/", h.ClearSession)
	})

	r.Route("/prospects", func(r chi.Router) {
		r.Get("/", h.Prospects)
		r.Post("/", h.CreateProspect)
		r.Get("/{id}", h.ProspectByID)
		r.Put("/{id}", h.UpdateProspect)
		r.Delete("/{id}", h.DeleteProspect)
	})

	r.Route("/dream-team", func(r chi.Router) {
		r.Get("/", h.DreamTeam)
		r.Delete("/", h.ClearDreamTeam)
		r.Get("/compatible", h.CompatiblePositions)
		r.Put("/{position}", h.AssignPlayer)
		r.Delete("/players/{id}", h.RemovePlayer)
	})

	return r
}
