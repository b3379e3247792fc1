package handlers

import (
	"errors"
	nethttp "net/http"

	appprospects "nba-draft-hub/internal/app/prospects"
	"nba-draft-hub/internal/backend"
	"nba-draft-hub/internal/domain/prospects"
)

type prospectsView struct {
	Prospects   []prospects.Prospect   `json:"prospects"`
	Pagination  appprospects.PageState `json:"pagination"`
	HasNext     bool                   `json:"hasNext"`
	HasPrevious bool                   `json:"hasPrevious"`
}

// Prospects lists one page of prospects. Missing paging parameters fall
// back to page 0, size 10, sorted by id ascending.
func (h *Handler) Prospects(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	query := prospects.Query{
		Page:      queryInt(r, "page", 0),
		Size:      queryInt(r, "size", 0),
		SortBy:    q.Get("sortBy"),
		Direction: q.Get("direction"),
	}
	if _, err := h.prospects.FetchProspects(r.Context(), query); err != nil {
		writeError(w, r, prospectStatus(err), messageOr(h.prospects.Err(), "Failed to load prospects"), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, prospectsView{
		Prospects:   h.prospects.Prospects(),
		Pagination:  h.prospects.Pagination(),
		HasNext:     h.prospects.HasNext(),
		HasPrevious: h.prospects.HasPrevious(),
	}, h.logger)
}

// ProspectByID fetches a single prospect.
func (h *Handler) ProspectByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid prospect id", h.logger)
		return
	}
	p, err := h.prospects.GetProspectByID(r.Context(), id)
	if err != nil {
		writeError(w, r, prospectStatus(err), messageOr(h.prospects.Err(), "Failed to load prospect"), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, p, h.logger)
}

// CreateProspect creates a prospect with a writer token.
func (h *Handler) CreateProspect(w nethttp.ResponseWriter, r *nethttp.Request) {
	var p prospects.Prospect
	if err := decodeBody(r, &p); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	res, err := h.prospects.CreateProspect(r.Context(), p)
	h.writeResult(w, r, nethttp.StatusCreated, res, err)
}

// UpdateProspect replaces a prospect with a writer token.
func (h *Handler) UpdateProspect(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid prospect id", h.logger)
		return
	}
	var p prospects.Prospect
	if err := decodeBody(r, &p); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	res, err := h.prospects.UpdateProspect(r.Context(), id, p)
	h.writeResult(w, r, nethttp.StatusOK, res, err)
}

// DeleteProspect removes a prospect with an admin token.
func (h *Handler) DeleteProspect(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid prospect id", h.logger)
		return
	}
	res, err := h.prospects.DeleteProspect(r.Context(), id)
	h.writeResult(w, r, nethttp.StatusOK, res, err)
}

func (h *Handler) writeResult(w nethttp.ResponseWriter, r *nethttp.Request, okStatus int, res appprospects.Result, err error) {
	switch {
	case err != nil:
		writeError(w, r, prospectStatus(err), res.Message, h.logger)
	case res.Forbidden:
		writeError(w, r, nethttp.StatusForbidden, res.Message, h.logger)
	case !res.Success:
		writeError(w, r, nethttp.StatusBadGateway, res.Message, h.logger)
	default:
		writeJSON(w, okStatus, res, h.logger)
	}
}

// prospectStatus maps store and backend errors onto response codes.
func prospectStatus(err error) int {
	switch {
	case errors.Is(err, appprospects.ErrInvalidProspect):
		return nethttp.StatusBadRequest
	case errors.Is(err, appprospects.ErrUnauthenticated):
		return nethttp.StatusUnauthorized
	case errors.Is(err, appprospects.ErrNotAuthorized), backend.IsStatus(err, nethttp.StatusForbidden):
		return nethttp.StatusForbidden
	case backend.IsStatus(err, nethttp.StatusNotFound):
		return nethttp.StatusNotFound
	default:
		return nethttp.StatusBadGateway
	}
}
