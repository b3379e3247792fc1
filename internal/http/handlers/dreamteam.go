package handlers

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"nba-draft-hub/internal/app/dreamteam"
)

type dreamTeamView struct {
	Slots  []dreamteam.Slot `json:"slots"`
	Filled int              `json:"filled"`
}

type assignRequest struct {
	PlayerID int `json:"playerId"`
}

// DreamTeam shows all five slots in order.
func (h *Handler) DreamTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, dreamTeamView{
		Slots:  h.dreamTeam.Slots(),
		Filled: h.dreamTeam.FilledPositionCount(),
	}, h.logger)
}

// CompatiblePositions lists the empty slots a player position can fill.
func (h *Handler) CompatiblePositions(w nethttp.ResponseWriter, r *nethttp.Request) {
	positions := h.dreamTeam.GetCompatiblePositions(r.URL.Query().Get("position"))
	writeJSON(w, nethttp.StatusOK, map[string]any{"positions": positions}, h.logger)
}

// AssignPlayer puts a player into the slot named in the path. The player is
// resolved through the players store.
func (h *Handler) AssignPlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	position := chi.URLParam(r, "position")
	if !dreamteam.Position(position).Valid() {
		writeError(w, r, nethttp.StatusBadRequest, "Invalid position", h.logger)
		return
	}
	var req assignRequest
	if err := decodeBody(r, &req); err != nil || req.PlayerID <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	player, err := h.players.FetchPlayerByID(r.Context(), req.PlayerID)
	if err != nil {
		writeError(w, r, upstreamStatus(err), messageOr(h.players.Err(), "Error fetching player"), h.logger)
		return
	}
	res := h.dreamTeam.AddPlayerToPosition(player, position)
	if !res.Success {
		status := nethttp.StatusConflict
		if res.SaveFailed {
			status = nethttp.StatusInternalServerError
		}
		writeError(w, r, status, res.Message, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, res, h.logger)
}

// RemovePlayer frees the slot held by the player id.
func (h *Handler) RemovePlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	res := h.dreamTeam.RemovePlayer(int(id))
	if !res.Success {
		writeError(w, r, nethttp.StatusNotFound, res.Message, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, res, h.logger)
}

// ClearDreamTeam empties every slot.
func (h *Handler) ClearDreamTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.dreamTeam.ClearDreamTeam(), h.logger)
}
