package players

import (
	"strings"

	"nba-draft-hub/internal/domain/teams"
)

// Player represents the normalized player shape (balldontlie-aligned).
type Player struct {
	ID           int        `json:"id"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Position     string     `json:"position"`
	Height       string     `json:"height,omitempty"`
	Weight       string     `json:"weight,omitempty"`
	JerseyNumber string     `json:"jerseyNumber,omitempty"`
	College      string     `json:"college,omitempty"`
	Country      string     `json:"country,omitempty"`
	DraftYear    *int       `json:"draftYear,omitempty"`
	DraftRound   *int       `json:"draftRound,omitempty"`
	DraftNumber  *int       `json:"draftNumber,omitempty"`
	Team         teams.Team `json:"team"`
}

// FullName joins first and last name.
func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Query filters a players listing. Zero values are omitted from the request.
type Query struct {
	PerPage   int    `json:"perPage,omitempty"`
	Cursor    string `json:"cursor,omitempty"`
	Search    string `json:"search,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	TeamIDs   []int  `json:"teamIds,omitempty"`
}

// CursorMeta is the pagination block returned alongside a players page.
type CursorMeta struct {
	NextCursor string `json:"nextCursor,omitempty"`
	PerPage    int    `json:"perPage,omitempty"`
}

// Page is one cursor-paginated slice of players. Meta is nil when the
// upstream response carried no pagination block.
type Page struct {
	Players []Player    `json:"players"`
	Meta    *CursorMeta `json:"meta,omitempty"`
}
