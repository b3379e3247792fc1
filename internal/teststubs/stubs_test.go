package teststubs

import (
	"context"
	"errors"
	"testing"

	"nba-draft-hub/internal/domain/players"
	"nba-draft-hub/internal/domain/teams"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{Teams: []teams.Team{{ID: 1}}, Err: err}
	if _, got := p.FetchTeams(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if _, got := p.FetchPlayer(context.Background(), 1); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 2 {
		t.Fatalf("expected call count 2, got %d", p.Calls.Load())
	}
}

func TestStubProviderPagesByCursor(t *testing.T) {
	p := &StubProvider{Pages: map[string]players.Page{
		"":   {Players: []players.Player{{ID: 1}}, Meta: &players.CursorMeta{NextCursor: "25"}},
		"25": {Players: []players.Player{{ID: 2}}},
	}}

	page, err := p.FetchPlayers(context.Background(), players.Query{Cursor: "25", PerPage: 24})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(page.Players) != 1 || page.Players[0].ID != 2 {
		t.Fatalf("unexpected page %+v", page)
	}
	if p.LastQuery.PerPage != 24 {
		t.Fatalf("expected last query to be kept, got %+v", p.LastQuery)
	}
	if _, err := p.FetchPlayers(context.Background(), players.Query{Cursor: "99"}); err == nil {
		t.Fatalf("expected error for unknown cursor")
	}
}

func TestStubProviderLookups(t *testing.T) {
	p := &StubProvider{
		Teams:   []teams.Team{{ID: 7, FullName: "Boston Celtics"}},
		Players: []players.Player{{ID: 3, FirstName: "Jayson"}},
	}
	if team, err := p.FetchTeam(context.Background(), 7); err != nil || team.FullName != "Boston Celtics" {
		t.Fatalf("unexpected team %+v err=%v", team, err)
	}
	if _, err := p.FetchTeam(context.Background(), 8); err == nil {
		t.Fatalf("expected miss for unknown team")
	}
	if player, err := p.FetchPlayer(context.Background(), 3); err != nil || player.FirstName != "Jayson" {
		t.Fatalf("unexpected player %+v err=%v", player, err)
	}
}

func TestStubProviderNotifyClosesOnce(t *testing.T) {
	ch := make(chan struct{})
	p := &StubProvider{Notify: ch}
	_, _ = p.FetchTeams(context.Background())
	_, _ = p.FetchTeams(context.Background())
	select {
	case <-ch:
	default:
		t.Fatalf("expected notify channel to be closed")
	}
}
