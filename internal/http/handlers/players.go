package handlers

import (
	nethttp "net/http"
	"strconv"
	"strings"

	"nba-draft-hub/internal/app/players"
	domainplayers "nba-draft-hub/internal/domain/players"
)

type playersView struct {
	Players    []domainplayers.Player `json:"players"`
	Pagination players.Pagination     `json:"pagination"`
	Search     players.SearchParams   `json:"search"`
}

// Players runs a players search. Omitted search and teamIds keep the
// remembered filters; present but empty values clear them.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	opts, err := fetchOptions(r)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if _, err := h.players.FetchPlayers(r.Context(), opts); err != nil {
		writeError(w, r, upstreamStatus(err), messageOr(h.players.Err(), "Error fetching players"), h.logger)
		return
	}
	h.writePlayers(w)
}

// PlayerByID returns one player, from the current page when possible.
func (h *Handler) PlayerByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	p, err := h.players.FetchPlayerByID(r.Context(), int(id))
	if err != nil {
		writeError(w, r, upstreamStatus(err), messageOr(h.players.Err(), "Error fetching player"), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, p, h.logger)
}

// NextPlayers follows the stored cursor.
func (h *Handler) NextPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := h.players.FetchNextPage(r.Context()); err != nil {
		writeError(w, r, upstreamStatus(err), messageOr(h.players.Err(), "Error fetching players"), h.logger)
		return
	}
	h.writePlayers(w)
}

// PreviousPlayers walks back through the cursor history.
func (h *Handler) PreviousPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := h.players.FetchPreviousPage(r.Context()); err != nil {
		writeError(w, r, upstreamStatus(err), messageOr(h.players.Err(), "Error fetching players"), h.logger)
		return
	}
	h.writePlayers(w)
}

func (h *Handler) writePlayers(w nethttp.ResponseWriter) {
	writeJSON(w, nethttp.StatusOK, playersView{
		Players:    h.players.Players(),
		Pagination: h.players.Pagination(),
		Search:     h.players.SearchParams(),
	}, h.logger)
}

type badQueryError string

func (e badQueryError) Error() string { return string(e) }

func fetchOptions(r *nethttp.Request) (players.FetchOptions, error) {
	q := r.URL.Query()
	opts := players.FetchOptions{
		Cursor:    q.Get("cursor"),
		FirstName: q.Get("firstName"),
		LastName:  q.Get("lastName"),
	}
	if raw := q.Get("perPage"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return opts, badQueryError("invalid perPage")
		}
		opts.PerPage = n
	}
	if q.Has("search") {
		search := q.Get("search")
		opts.Search = &search
	}
	if q.Has("teamIds") {
		opts.TeamIDs = []int{}
		for _, raw := range q["teamIds"] {
			for _, part := range strings.Split(raw, ",") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				id, err := strconv.Atoi(part)
				if err != nil {
					return opts, badQueryError("invalid teamIds")
				}
				opts.TeamIDs = append(opts.TeamIDs, id)
			}
		}
	}
	return opts, nil
}
