package fixture

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"nba-draft-hub/internal/domain/players"
	"nba-draft-hub/internal/domain/teams"
	"nba-draft-hub/internal/providers"
)

const defaultPerPage = 25

// Provider serves a static teams/players dataset useful for local runs and tests.
// Player pages follow the upstream cursor contract: the cursor is the last id seen.
type Provider struct {
	teams   []teams.Team
	players []players.Player
}

var _ providers.DataProvider = (*Provider)(nil)

// New creates a fixture provider over the built-in dataset.
func New() *Provider {
	return &Provider{teams: fixtureTeams(), players: fixturePlayers()}
}

// FetchTeams returns the deterministic team list, including one historical franchise without a city.
func (p *Provider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	return slices.Clone(p.teams), nil
}

func (p *Provider) FetchTeam(ctx context.Context, id int) (teams.Team, error) {
	_ = ctx
	for _, t := range p.teams {
		if t.ID == id {
			return t, nil
		}
	}
	return teams.Team{}, fmt.Errorf("fixture team %d: %w", id, providers.ErrNotFound)
}

// FetchPlayers filters the dataset and returns the page after q.Cursor.
func (p *Provider) FetchPlayers(ctx context.Context, q players.Query) (players.Page, error) {
	_ = ctx
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	after := 0
	if q.Cursor != "" {
		n, err := strconv.Atoi(q.Cursor)
		if err != nil {
			return players.Page{}, fmt.Errorf("fixture: invalid cursor %q", q.Cursor)
		}
		after = n
	}

	matched := make([]players.Player, 0, perPage)
	more := false
	for _, pl := range p.players {
		if pl.ID <= after || !matches(pl, q) {
			continue
		}
		if len(matched) == perPage {
			more = true
			break
		}
		matched = append(matched, pl)
	}

	meta := &players.CursorMeta{PerPage: perPage}
	if more {
		meta.NextCursor = strconv.Itoa(matched[len(matched)-1].ID)
	}
	return players.Page{Players: matched, Meta: meta}, nil
}

func (p *Provider) FetchPlayer(ctx context.Context, id int) (players.Player, error) {
	_ = ctx
	for _, pl := range p.players {
		if pl.ID == id {
			return pl, nil
		}
	}
	return players.Player{}, fmt.Errorf("fixture player %d: %w", id, providers.ErrNotFound)
}

func matches(p players.Player, q players.Query) bool {
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(p.FirstName), needle) && !strings.Contains(strings.ToLower(p.LastName), needle) {
			return false
		}
	}
	if q.FirstName != "" && !strings.EqualFold(p.FirstName, q.FirstName) {
		return false
	}
	if q.LastName != "" && !strings.EqualFold(p.LastName, q.LastName) {
		return false
	}
	if len(q.TeamIDs) > 0 && !slices.Contains(q.TeamIDs, p.Team.ID) {
		return false
	}
	return true
}
