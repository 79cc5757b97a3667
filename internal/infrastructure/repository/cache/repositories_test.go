package cache

import (
	"context"
	"testing"
	"time"

	"github.com/dugouthq/dugout/internal/domain/eligibility"
	"github.com/dugouthq/dugout/internal/domain/roster"
	"github.com/dugouthq/dugout/internal/infrastructure/repository/memory"
	basecache "github.com/dugouthq/dugout/internal/platform/cache"
)

type countingRosterRepo struct {
	*memory.RosterRepository
	listCalls int
}

func (r *countingRosterRepo) ListByTeam(ctx context.Context, teamID string) ([]roster.Player, error) {
	r.listCalls++
	return r.RosterRepository.ListByTeam(ctx, teamID)
}

func TestRosterRepository_ListByTeamReadsThrough(t *testing.T) {
	backing := &countingRosterRepo{RosterRepository: memory.NewRosterRepository([]roster.Player{
		{TeamPlayerID: "p1", TeamID: "team-1", Name: "Player One", JerseyNumber: 1},
	})}
	repo := NewRosterRepository(backing, basecache.NewStore(time.Minute))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		players, err := repo.ListByTeam(ctx, "team-1")
		if err != nil {
			t.Fatalf("list %d: %v", i, err)
		}
		if len(players) != 1 {
			t.Fatalf("list %d: expected 1 player, got %d", i, len(players))
		}
	}

	if backing.listCalls != 1 {
		t.Fatalf("expected a single backing call, got %d", backing.listCalls)
	}
}

func TestRosterRepository_UpsertInvalidates(t *testing.T) {
	backing := &countingRosterRepo{RosterRepository: memory.NewRosterRepository([]roster.Player{
		{TeamPlayerID: "p1", TeamID: "team-1", Name: "Player One", JerseyNumber: 1},
	})}
	repo := NewRosterRepository(backing, basecache.NewStore(time.Minute))
	ctx := context.Background()

	if _, err := repo.ListByTeam(ctx, "team-1"); err != nil {
		t.Fatalf("warm list: %v", err)
	}

	err := repo.Upsert(ctx, roster.Player{TeamPlayerID: "p2", TeamID: "team-1", Name: "Player Two", JerseyNumber: 2})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	players, err := repo.ListByTeam(ctx, "team-1")
	if err != nil {
		t.Fatalf("list after upsert: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players after invalidation, got %d", len(players))
	}
	if backing.listCalls != 2 {
		t.Fatalf("expected reload after write, got %d backing calls", backing.listCalls)
	}
}

func TestRosterRepository_GetByIDsKeyIgnoresOrder(t *testing.T) {
	backing := &countingRosterRepo{RosterRepository: memory.NewRosterRepository([]roster.Player{
		{TeamPlayerID: "p1", TeamID: "team-1", Name: "Player One", JerseyNumber: 1},
		{TeamPlayerID: "p2", TeamID: "team-1", Name: "Player Two", JerseyNumber: 2},
	})}
	store := basecache.NewStore(time.Minute)
	repo := NewRosterRepository(backing, store)
	ctx := context.Background()

	first, err := repo.GetByIDs(ctx, "team-1", []string{"p2", "p1"})
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	second, err := repo.GetByIDs(ctx, "team-1", []string{"p1", "p2"})
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected both lookups to return 2 players, got %d and %d", len(first), len(second))
	}
}

func TestEligibilityRepository_SetInvalidates(t *testing.T) {
	backing := memory.NewEligibilityRepository(map[string][]eligibility.Flag{
		"team-1": {{TeamPlayerID: "p1", Position: roster.PositionCatcher, Eligible: true}},
	})
	repo := NewEligibilityRepository(backing, basecache.NewStore(time.Minute))
	ctx := context.Background()

	flags, err := repo.ListByTeam(ctx, "team-1")
	if err != nil {
		t.Fatalf("warm list: %v", err)
	}
	if len(flags) != 1 {
		t.Fatalf("expected 1 flag, got %d", len(flags))
	}

	err = repo.Set(ctx, "team-1", eligibility.Flag{TeamPlayerID: "p2", Position: roster.PositionFirstBase, Eligible: true})
	if err != nil {
		t.Fatalf("set: %v", err)
	}

	flags, err = repo.ListByTeam(ctx, "team-1")
	if err != nil {
		t.Fatalf("list after set: %v", err)
	}
	if len(flags) != 2 {
		t.Fatalf("expected 2 flags after invalidation, got %d", len(flags))
	}
}
