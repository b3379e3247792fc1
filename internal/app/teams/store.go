package teams

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"nba-draft-hub/internal/domain/teams"
	"nba-draft-hub/internal/logging"
	"nba-draft-hub/internal/logos"
	"nba-draft-hub/internal/providers"
	"nba-draft-hub/internal/store"
)

// LogoLookup resolves a team abbreviation to its bundled logo reference.
type LogoLookup interface {
	Lookup(abbr string) (string, bool)
}

// Store caches teams fetched from the provider for the process lifetime
// and tracks the team currently being viewed.
type Store struct {
	provider providers.TeamProvider
	logos    LogoLookup
	logger   *slog.Logger
	cache    *store.Cache[int, teams.Team]

	mu      sync.RWMutex
	current *teams.Team
	err     string
}

// NewStore wires a team store. A nil catalog falls back to the bundled logos.
func NewStore(provider providers.TeamProvider, catalog LogoLookup, logger *slog.Logger) *Store {
	if catalog == nil {
		catalog = logos.Default()
	}
	return &Store{
		provider: provider,
		logos:    catalog,
		logger:   logger,
		cache:    store.NewCache(func(t teams.Team) int { return t.ID }),
	}
}

// FetchTeams loads all teams, drops historical franchises without a city,
// attaches logos and replaces the cache.
func (s *Store) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	logger := logging.FromContext(ctx, s.logger)

	fetched, err := s.provider.FetchTeams(ctx)
	if err != nil {
		s.setErr("Error fetching teams")
		logging.Error(logger, "error fetching teams", err)
		return nil, fmt.Errorf("fetch teams: %w", err)
	}

	kept := make([]teams.Team, 0, len(fetched))
	for _, t := range fetched {
		if !t.HasCity() {
			continue
		}
		kept = append(kept, s.withLogo(t))
	}
	s.cache.Replace(kept)
	s.setErr("")

	logging.Info(logger, "teams fetched", logging.FieldCount, len(kept))
	return s.cache.List(), nil
}

// Refresh reloads the team list and reports how many teams are cached.
func (s *Store) Refresh(ctx context.Context) (int, error) {
	list, err := s.FetchTeams(ctx)
	return len(list), err
}

// FetchTeamByID returns the cached team when present, otherwise asks the provider.
// Either way the result becomes the current team.
func (s *Store) FetchTeamByID(ctx context.Context, id int) (teams.Team, error) {
	if t, ok := s.cache.Get(id); ok {
		s.setCurrent(&t)
		return t, nil
	}

	t, err := s.provider.FetchTeam(ctx, id)
	if err != nil {
		s.setErr(fmt.Sprintf("Error fetching team with id %d", id))
		logging.Error(logging.FromContext(ctx, s.logger), "error fetching team", err, logging.FieldTeamID, id)
		return teams.Team{}, fmt.Errorf("fetch team %d: %w", id, err)
	}
	t = s.withLogo(t)
	s.setCurrent(&t)
	return t, nil
}

// Teams returns the cached teams.
func (s *Store) Teams() []teams.Team {
	return s.cache.List()
}

// Current returns the team last resolved by FetchTeamByID.
func (s *Store) Current() (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return teams.Team{}, false
	}
	return *s.current, true
}

func (s *Store) ClearCurrentTeam() {
	s.setCurrent(nil)
}

// Err returns the last failure message, or "" after a successful fetch.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Store) withLogo(t teams.Team) teams.Team {
	if ref, ok := s.logos.Lookup(t.Abbreviation); ok {
		t.Logo = ref
	}
	return t
}

func (s *Store) setCurrent(t *teams.Team) {
	s.mu.Lock()
	s.current = t
	s.mu.Unlock()
}

func (s *Store) setErr(msg string) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
}
