package providers

import (
	"context"

	"nba-draft-hub/internal/domain/players"
	"nba-draft-hub/internal/domain/teams"
)

// TeamProvider fetches normalized teams from the sports-data source.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]teams.Team, error)
	FetchTeam(ctx context.Context, id int) (teams.Team, error)
}

// PlayerProvider fetches normalized players. FetchPlayers is cursor paginated.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context, q players.Query) (players.Page, error)
	FetchPlayer(ctx context.Context, id int) (players.Player, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	TeamProvider
	PlayerProvider
}
