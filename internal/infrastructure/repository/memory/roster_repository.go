package memory

import (
	"context"
	"sync"

	"github.com/dugouthq/dugout/internal/domain/roster"
)

type RosterRepository struct {
	mu            sync.RWMutex
	playersByTeam map[string][]roster.Player
}

func NewRosterRepository(players []roster.Player) *RosterRepository {
	playersByTeam := make(map[string][]roster.Player)
	for _, p := range players {
		playersByTeam[p.TeamID] = append(playersByTeam[p.TeamID], clonePlayer(p))
	}

	return &RosterRepository{playersByTeam: playersByTeam}
}

func (r *RosterRepository) ListByTeam(_ context.Context, teamID string) ([]roster.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := r.playersByTeam[teamID]
	out := make([]roster.Player, 0, len(players))
	for _, p := range players {
		out = append(out, clonePlayer(p))
	}

	return out, nil
}

func (r *RosterRepository) GetByIDs(_ context.Context, teamID string, playerIDs []string) ([]roster.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		wanted[id] = struct{}{}
	}

	out := make([]roster.Player, 0, len(playerIDs))
	for _, p := range r.playersByTeam[teamID] {
		if _, ok := wanted[p.TeamPlayerID]; ok {
			out = append(out, clonePlayer(p))
		}
	}

	return out, nil
}

func (r *RosterRepository) Upsert(_ context.Context, player roster.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	players := r.playersByTeam[player.TeamID]
	for i, existing := range players {
		if existing.TeamPlayerID == player.TeamPlayerID {
			players[i] = clonePlayer(player)
			return nil
		}
	}
	r.playersByTeam[player.TeamID] = append(players, clonePlayer(player))

	return nil
}

func (r *RosterRepository) Delete(_ context.Context, teamID, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	players := r.playersByTeam[teamID]
	for i, existing := range players {
		if existing.TeamPlayerID == playerID {
			r.playersByTeam[teamID] = append(players[:i:i], players[i+1:]...)
			return nil
		}
	}

	return nil
}

func clonePlayer(p roster.Player) roster.Player {
	copied := p
	copied.SecondaryPositions = append([]roster.Position(nil), p.SecondaryPositions...)
	return copied
}
