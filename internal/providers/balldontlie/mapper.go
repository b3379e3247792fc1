package balldontlie

import (
	"bytes"
	"encoding/json"
	"strconv"

	"nba-draft-hub/internal/domain/players"
	"nba-draft-hub/internal/domain/teams"
)

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{
		ID:           t.ID,
		Abbreviation: t.Abbreviation,
		City:         t.City,
		Conference:   t.Conference,
		Division:     t.Division,
		FullName:     t.FullName,
		Name:         t.Name,
	}
}

func mapPlayer(p playerResponse) players.Player {
	return players.Player{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Position:     p.Position,
		Height:       p.Height,
		Weight:       p.Weight,
		JerseyNumber: p.JerseyNumber,
		College:      p.College,
		Country:      p.Country,
		DraftYear:    p.DraftYear,
		DraftRound:   p.DraftRound,
		DraftNumber:  p.DraftNumber,
		Team:         mapTeam(p.Team),
	}
}

func mapPage(resp playersResponse) players.Page {
	page := players.Page{Players: make([]players.Player, 0, len(resp.Data))}
	for _, p := range resp.Data {
		page.Players = append(page.Players, mapPlayer(p))
	}
	if resp.Meta != nil {
		page.Meta = &players.CursorMeta{
			NextCursor: cursorString(resp.Meta.NextCursor),
			PerPage:    resp.Meta.PerPage,
		}
	}
	return page
}

func cursorString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}

func formatIDs(ids []int) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, strconv.Itoa(id))
	}
	return out
}
