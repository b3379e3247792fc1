package teststubs

import (
	"context"
	"errors"
	"sync/atomic"

	"nba-draft-hub/internal/domain/players"
	"nba-draft-hub/internal/domain/teams"
)

var errStubNotFound = errors.New("stub: not found")

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Teams   []teams.Team
	Players []players.Player
	// Pages maps a cursor ("" for the first page) to the page returned for it.
	Pages  map[string]players.Page
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
	// LastQuery is the most recent query passed to FetchPlayers.
	LastQuery players.Query
}

func (s *StubProvider) touch() {
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
}

// FetchTeams returns configured teams and error while tracking calls.
func (s *StubProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	s.touch()
	return s.Teams, s.Err
}

// FetchTeam looks the id up in Teams.
func (s *StubProvider) FetchTeam(ctx context.Context, id int) (teams.Team, error) {
	_ = ctx
	s.touch()
	if s.Err != nil {
		return teams.Team{}, s.Err
	}
	for _, t := range s.Teams {
		if t.ID == id {
			return t, nil
		}
	}
	return teams.Team{}, errStubNotFound
}

// FetchPlayers returns Pages[q.Cursor] when Pages is set, otherwise all Players.
func (s *StubProvider) FetchPlayers(ctx context.Context, q players.Query) (players.Page, error) {
	_ = ctx
	s.touch()
	s.LastQuery = q
	if s.Err != nil {
		return players.Page{}, s.Err
	}
	if s.Pages != nil {
		page, ok := s.Pages[q.Cursor]
		if !ok {
			return players.Page{}, errStubNotFound
		}
		return page, nil
	}
	return players.Page{Players: s.Players}, nil
}

// FetchPlayer looks the id up in Players.
func (s *StubProvider) FetchPlayer(ctx context.Context, id int) (players.Player, error) {
	_ = ctx
	s.touch()
	if s.Err != nil {
		return players.Player{}, s.Err
	}
	for _, p := range s.Players {
		if p.ID == id {
			return p, nil
		}
	}
	return players.Player{}, errStubNotFound
}
