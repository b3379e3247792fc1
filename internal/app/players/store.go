package players

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"nba-draft-hub/internal/domain/players"
	"nba-draft-hub/internal/logging"
	"nba-draft-hub/internal/providers"
	"nba-draft-hub/internal/store"
)

// DefaultPerPage is the page size used until a caller overrides it.
const DefaultPerPage = 24

// Pagination is the cursor state of the players listing.
type Pagination struct {
	Cursor          string   `json:"cursor,omitempty"`
	PerPage         int      `json:"perPage"`
	HasNextPage     bool     `json:"hasNextPage"`
	HasPreviousPage bool     `json:"hasPreviousPage"`
	PageNumber      int      `json:"pageNumber"`
	PreviousCursors []string `json:"previousCursors"`
}

// SearchParams are remembered between calls so page navigation keeps the filters.
type SearchParams struct {
	Search    string `json:"search"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	TeamIDs   []int  `json:"teamIds"`
}

// FetchOptions override the remembered search for one call.
// Search and TeamIDs distinguish "not given" (nil) from "cleared".
// Empty FirstName/LastName fall back to the remembered values.
type FetchOptions struct {
	PerPage   int
	Cursor    string
	Search    *string
	FirstName string
	LastName  string
	TeamIDs   []int
}

// Store holds the current page of players, the cursor history used for
// backward navigation, and the player currently being viewed.
type Store struct {
	provider providers.PlayerProvider
	logger   *slog.Logger
	cache    *store.Cache[int, players.Player]

	mu         sync.RWMutex
	current    *players.Player
	pagination Pagination
	search     SearchParams
	history    []string
	err        string
}

func NewStore(provider providers.PlayerProvider, logger *slog.Logger) *Store {
	return &Store{
		provider:   provider,
		logger:     logger,
		cache:      store.NewCache(func(p players.Player) int { return p.ID }),
		pagination: Pagination{PerPage: DefaultPerPage, PageNumber: 1},
	}
}

// FetchPlayers loads one page. Without a cursor it starts a fresh search:
// history is dropped and the page counter goes back to 1.
func (s *Store) FetchPlayers(ctx context.Context, opts FetchOptions) ([]players.Player, error) {
	s.mu.Lock()
	if opts.PerPage > 0 {
		s.pagination.PerPage = opts.PerPage
	}
	effective := s.mergeSearchLocked(opts)
	q := players.Query{
		PerPage:   s.pagination.PerPage,
		Cursor:    opts.Cursor,
		Search:    effective.Search,
		FirstName: effective.FirstName,
		LastName:  effective.LastName,
		TeamIDs:   slices.Clone(effective.TeamIDs),
	}
	if opts.Cursor == "" {
		s.history = nil
		s.pagination.PageNumber = 1
		s.pagination.HasPreviousPage = false
	}
	s.mu.Unlock()

	logger := logging.FromContext(ctx, s.logger)
	page, err := s.provider.FetchPlayers(ctx, q)
	if err != nil {
		s.setErr("Error fetching players")
		logging.Error(logger, "error fetching players", err)
		return nil, fmt.Errorf("fetch players: %w", err)
	}

	s.cache.Replace(page.Players)

	s.mu.Lock()
	if page.Meta != nil {
		if s.pagination.Cursor != "" {
			s.history = append(s.history, s.pagination.Cursor)
		}
		s.pagination.Cursor = page.Meta.NextCursor
		s.pagination.HasNextPage = page.Meta.NextCursor != ""
		s.pagination.HasPreviousPage = len(s.history) > 0
	}
	s.search = effective
	s.err = ""
	s.mu.Unlock()

	logging.Info(logger, "players fetched", logging.FieldCount, len(page.Players), logging.FieldPage, s.Pagination().PageNumber)
	return s.cache.List(), nil
}

func (s *Store) mergeSearchLocked(opts FetchOptions) SearchParams {
	merged := s.search
	if opts.Search != nil {
		merged.Search = *opts.Search
	}
	if opts.FirstName != "" {
		merged.FirstName = opts.FirstName
	}
	if opts.LastName != "" {
		merged.LastName = opts.LastName
	}
	if opts.TeamIDs != nil {
		merged.TeamIDs = slices.Clone(opts.TeamIDs)
	}
	return merged
}

// FetchPlayerByID looks in the current page first, then asks the provider.
func (s *Store) FetchPlayerByID(ctx context.Context, id int) (players.Player, error) {
	if p, ok := s.cache.Get(id); ok {
		s.setCurrent(&p)
		return p, nil
	}

	p, err := s.provider.FetchPlayer(ctx, id)
	if err != nil {
		s.setErr(fmt.Sprintf("Error fetching player with id %d", id))
		logging.Error(logging.FromContext(ctx, s.logger), "error fetching player", err, logging.FieldPlayerID, id)
		return players.Player{}, fmt.Errorf("fetch player %d: %w", id, err)
	}
	s.setCurrent(&p)
	return p, nil
}

// FetchNextPage follows the stored next cursor. It is a no-op on the last page.
func (s *Store) FetchNextPage(ctx context.Context) error {
	s.mu.Lock()
	if !s.pagination.HasNextPage {
		s.mu.Unlock()
		return nil
	}
	s.pagination.PageNumber++
	cursor := s.pagination.Cursor
	s.mu.Unlock()

	_, err := s.FetchPlayers(ctx, FetchOptions{Cursor: cursor})
	return err
}

// FetchPreviousPage drops the newest history entry, then takes the next one
// (popping it too) as the cursor to refetch with. With a short history this
// lands on a fresh first-page search.
func (s *Store) FetchPreviousPage(ctx context.Context) error {
	s.mu.Lock()
	if !s.pagination.HasPreviousPage || len(s.history) == 0 {
		s.mu.Unlock()
		return nil
	}
	s.history = s.history[:len(s.history)-1]
	s.pagination.PageNumber--

	cursor := ""
	if n := len(s.history); n > 0 {
		cursor = s.history[n-1]
		s.history = s.history[:n-1]
	}
	s.mu.Unlock()

	_, err := s.FetchPlayers(ctx, FetchOptions{Cursor: cursor})
	return err
}

// Players returns the current page.
func (s *Store) Players() []players.Player {
	return s.cache.List()
}

func (s *Store) Current() (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return players.Player{}, false
	}
	return *s.current, true
}

func (s *Store) ClearCurrentPlayer() {
	s.setCurrent(nil)
}

// Pagination returns a copy of the cursor state.
func (s *Store) Pagination() Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.pagination
	p.PreviousCursors = slices.Clone(s.history)
	if p.PreviousCursors == nil {
		p.PreviousCursors = []string{}
	}
	return p
}

func (s *Store) SearchParams() SearchParams {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sp := s.search
	sp.TeamIDs = slices.Clone(sp.TeamIDs)
	return sp
}

// Err returns the last failure message, or "" after a successful fetch.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Store) setCurrent(p *players.Player) {
	s.mu.Lock()
	s.current = p
	s.mu.Unlock()
}

func (s *Store) setErr(msg string) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
}
