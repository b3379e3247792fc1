package handlers

import (
	"io/fs"
	"log/slog"
	nethttp "net/http"

	"nba-draft-hub/internal/app/dreamteam"
	"nba-draft-hub/internal/app/players"
	"nba-draft-hub/internal/app/prospects"
	"nba-draft-hub/internal/app/teams"
	"nba-draft-hub/internal/auth"
	"nba-draft-hub/internal/poller"
)

// Deps are the stores the HTTP surface drives.
type Deps struct {
	Teams     *teams.Store
	Players   *players.Store
	Prospects *prospects.Store
	DreamTeam *dreamteam.Selector
	Session   *auth.Session
	Logos     fs.FS
	Logger    *slog.Logger
	// Readiness reports the background teams refresh; nil means always ready.
	Readiness func() poller.Status
}

// Handler wires HTTP routes to the application stores.
type Handler struct {
	teams     *teams.Store
	players   *players.Store
	prospects *prospects.Store
	dreamTeam *dreamteam.Selector
	session   *auth.Session
	logos     fs.FS
	logger    *slog.Logger
	statusFn  func() poller.Status
}

// NewHandler constructs a Handler from its dependencies.
func NewHandler(deps Deps) *Handler {
	return &Handler{
		teams:     deps.Teams,
		players:   deps.Players,
		prospects: deps.Prospects,
		dreamTeam: deps.DreamTeam,
		session:   deps.Session,
		logos:     deps.Logos,
		logger:    deps.Logger,
		statusFn:  deps.Readiness,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the team list has been loaded and is refreshing.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]any{"status": "ready", "teams": status.Count}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// NotFound answers unknown routes in the JSON error shape.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}
