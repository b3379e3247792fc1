// Package dreamteam keeps a five-slot roster of players, one per position,
// persisted under the position keys.
package dreamteam

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"nba-draft-hub/internal/domain/players"
	"nba-draft-hub/internal/domain/teams"
	"nba-draft-hub/internal/logging"
	"nba-draft-hub/internal/storage"
)

// PlayerSnapshot is the subset of a player kept in a slot.
type PlayerSnapshot struct {
	ID           int        `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Position     string     `json:"position"`
	Team         teams.Team `json:"team"`
	JerseyNumber string     `json:"jersey_number"`
	Country      string     `json:"country"`
}

// Name joins first and last name.
func (s PlayerSnapshot) Name() string {
	return s.FirstName + " " + s.LastName
}

// SnapshotOf trims a player down to what a slot stores.
func SnapshotOf(p players.Player) PlayerSnapshot {
	return PlayerSnapshot{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Position:     p.Position,
		Team:         p.Team,
		JerseyNumber: p.JerseyNumber,
		Country:      p.Country,
	}
}

// Slot is one position with its player, nil when empty.
type Slot struct {
	Position Position        `json:"position"`
	Label    string          `json:"label"`
	Player   *PlayerSnapshot `json:"player"`
}

// Result is the outcome of a roster change.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// SaveFailed marks a rejected change caused by the slot store rather
	// than by the roster rules.
	SaveFailed bool `json:"-"`
}

func failed(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

func succeeded(format string, args ...any) Result {
	return Result{Success: true, Message: fmt.Sprintf(format, args...)}
}

// Selector is the dream-team roster. A player id occupies at most one slot.
type Selector struct {
	mu     sync.RWMutex
	store  storage.Store
	logger *slog.Logger
	slots  map[Position]*PlayerSnapshot
}

// NewSelector restores persisted slots from store. Unreadable entries are
// logged and treated as empty.
func NewSelector(store storage.Store, logger *slog.Logger) *Selector {
	if store == nil {
		store = storage.NewMemoryStore()
	}
	s := &Selector{
		store:  store,
		logger: logger,
		slots:  make(map[Position]*PlayerSnapshot, len(Positions)),
	}
	for _, pos := range Positions {
		var snap *PlayerSnapshot
		found, err := storage.GetJSON(store, string(pos), &snap)
		if err != nil {
			logging.Warn(logger, "ignoring unreadable dream team slot", logging.FieldPosition, string(pos), "error", err)
			continue
		}
		if found && snap != nil {
			s.slots[pos] = snap
		}
	}
	return s
}

// AddPlayerToPosition stores a snapshot of player in the slot for position.
func (s *Selector) AddPlayerToPosition(player players.Player, position string) Result {
	pos := Position(position)
	if !pos.Valid() {
		return failed("Invalid position")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slots[pos] != nil {
		return failed("%s position is already filled", pos.Label())
	}
	if existing, ok := s.findLocked(player.ID); ok {
		return failed("%s %s is already in the dream team as %s", player.FirstName, player.LastName, existing.Label())
	}

	snap := SnapshotOf(player)
	if err := storage.SetJSON(s.store, string(pos), snap); err != nil {
		logging.Error(s.logger, "failed to persist dream team slot", err, logging.FieldPosition, string(pos))
		res := failed("Failed to save %s position", pos.Label())
		res.SaveFailed = true
		return res
	}
	s.slots[pos] = &snap

	logging.Info(s.logger, "dream team slot filled", logging.FieldPosition, string(pos), logging.FieldPlayerID, player.ID)
	return succeeded("%s %s added as %s", player.FirstName, player.LastName, pos.Label())
}

// RemovePlayer clears the first slot, in PG..C order, holding playerID.
func (s *Selector) RemovePlayer(playerID int) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.findLocked(playerID)
	if !ok {
		return failed("Player not in dream team")
	}
	name := s.slots[pos].Name()
	s.slots[pos] = nil
	if err := s.store.Delete(string(pos)); err != nil {
		logging.Warn(s.logger, "failed to forget dream team slot", logging.FieldPosition, string(pos), "error", err)
	}
	return succeeded("%s removed from %s position", name, pos.Label())
}

// FindPlayerPosition returns the slot holding playerID.
func (s *Selector) FindPlayerPosition(playerID int) (Position, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLocked(playerID)
}

func (s *Selector) IsPlayerInDreamTeam(playerID int) bool {
	_, ok := s.FindPlayerPosition(playerID)
	return ok
}

func (s *Selector) findLocked(playerID int) (Position, bool) {
	for _, pos := range Positions {
		if snap := s.slots[pos]; snap != nil && snap.ID == playerID {
			return pos, true
		}
	}
	return "", false
}

// GetCompatiblePositions maps a player position string to the empty slots it
// can fill: any G gives PG and SG, any F gives SF and PF, any C gives C.
// A blank position means every empty slot.
func (s *Selector) GetCompatiblePositions(playerPosition string) []Position {
	var candidates []Position
	if strings.TrimSpace(playerPosition) == "" {
		candidates = Positions
	} else {
		if strings.Contains(playerPosition, "G") {
			candidates = append(candidates, PointGuard, ShootingGuard)
		}
		if strings.Contains(playerPosition, "F") {
			candidates = append(candidates, SmallForward, PowerForward)
		}
		if strings.Contains(playerPosition, "C") {
			candidates = append(candidates, Center)
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	open := make([]Position, 0, len(candidates))
	for _, pos := range candidates {
		if s.slots[pos] == nil {
			open = append(open, pos)
		}
	}
	return open
}

// ClearDreamTeam empties every slot and its persisted entry.
func (s *Selector) ClearDreamTeam() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, pos := range Positions {
		s.slots[pos] = nil
		if err := s.store.Delete(string(pos)); err != nil {
			logging.Warn(s.logger, "failed to forget dream team slot", logging.FieldPosition, string(pos), "error", err)
		}
	}
	return succeeded("Dream team cleared")
}

// FilledPositionCount returns how many slots hold a player.
func (s *Selector) FilledPositionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, pos := range Positions {
		if s.slots[pos] != nil {
			n++
		}
	}
	return n
}

// Slots returns all five slots in PG..C order.
func (s *Selector) Slots() []Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Slot, 0, len(Positions))
	for _, pos := range Positions {
		slot := Slot{Position: pos, Label: pos.Label()}
		if snap := s.slots[pos]; snap != nil {
			copied := *snap
			slot.Player = &copied
		}
		out = append(out, slot)
	}
	return out
}
