package handlers

import (
	"errors"
	nethttp "net/http"

	"nba-draft-hub/internal/auth"
	domainauth "nba-draft-hub/internal/domain/auth"
	"nba-draft-hub/internal/logging"
)

type tokenRequest struct {
	Role string `json:"role"`
}

// Session shows the held role, permissions and expiry. The token itself is never returned.
func (h *Handler) Session(w nethttp.ResponseWriter, r *nethttp.Request) {
	// IsValid drops an expired token before it is reported.
	h.session.IsValid()
	writeJSON(w, nethttp.StatusOK, h.session.Snapshot(), h.logger)
}

// RequestToken asks the backend for a token of the given role.
func (h *Handler) RequestToken(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req tokenRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	role, ok := domainauth.ParseRole(req.Role)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "role must be one of VISITOR, WRITER, ADMIN", h.logger)
		return
	}

	_, err := h.session.RequestToken(r.Context(), role, domainauth.PermissionsFor(role))
	switch {
	case errors.Is(err, auth.ErrTokenDecode):
		logging.Warn(loggerFromContext(r, h.logger), "token held without readable claims", logging.FieldRole, string(role))
	case err != nil:
		writeError(w, r, nethttp.StatusBadGateway, "Authentication error. Please try again.", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.session.Snapshot(), h.logger)
}

// ClearSession forgets the held token.
func (h *Handler) ClearSession(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.session.Clear()
	w.WriteHeader(nethttp.StatusNoContent)
}
