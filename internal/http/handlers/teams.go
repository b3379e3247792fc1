package handlers

import (
	"errors"
	nethttp "net/http"

	"nba-draft-hub/internal/providers"
)

// Teams lists teams with a city, logos attached.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	list, err := h.teams.FetchTeams(r.Context())
	if err != nil {
		writeError(w, r, upstreamStatus(err), messageOr(h.teams.Err(), "Error fetching teams"), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"teams": list}, h.logger)
}

// TeamByID returns one team, from the cache when possible.
func (h *Handler) TeamByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	team, err := h.teams.FetchTeamByID(r.Context(), int(id))
	if err != nil {
		writeError(w, r, upstreamStatus(err), messageOr(h.teams.Err(), "Error fetching team"), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, team, h.logger)
}

// upstreamStatus maps provider failures onto response codes.
func upstreamStatus(err error) int {
	if errors.Is(err, providers.ErrNotFound) {
		return nethttp.StatusNotFound
	}
	if _, ok := providers.AsRateLimitError(err); ok {
		return nethttp.StatusTooManyRequests
	}
	if errors.Is(err, providers.ErrProviderUnavailable) {
		return nethttp.StatusServiceUnavailable
	}
	return nethttp.StatusBadGateway
}
