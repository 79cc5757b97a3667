package memory

import (
	"context"
	"sync"

	"github.com/dugouthq/dugout/internal/domain/eligibility"
	"github.com/dugouthq/dugout/internal/domain/roster"
)

type EligibilityRepository struct {
	mu          sync.RWMutex
	flagsByTeam map[string]map[string]eligibility.Flag
}

func NewEligibilityRepository(flagsByTeam map[string][]eligibility.Flag) *EligibilityRepository {
	items := make(map[string]map[string]eligibility.Flag, len(flagsByTeam))
	for teamID, flags := range flagsByTeam {
		items[teamID] = make(map[string]eligibility.Flag, len(flags))
		for _, f := range flags {
			items[teamID][flagKey(f.TeamPlayerID, f.Position)] = f
		}
	}

	return &EligibilityRepository{flagsByTeam: items}
}

func (r *EligibilityRepository) ListByTeam(_ context.Context, teamID string) ([]eligibility.Flag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	flags := r.flagsByTeam[teamID]
	out := make([]eligibility.Flag, 0, len(flags))
	for _, f := range flags {
		out = append(out, f)
	}

	return out, nil
}

func (r *EligibilityRepository) Set(_ context.Context, teamID string, flag eligibility.Flag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.flagsByTeam[teamID]; !ok {
		r.flagsByTeam[teamID] = make(map[string]eligibility.Flag)
	}
	r.flagsByTeam[teamID][flagKey(flag.TeamPlayerID, flag.Position)] = flag

	return nil
}

func flagKey(playerID string, pos roster.Position) string {
	return playerID + "::" + string(pos)
}
