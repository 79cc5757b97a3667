package cache

import (
	"context"
	"sort"
	"strings"

	"github.com/dugouthq/dugout/internal/domain/eligibility"
	"github.com/dugouthq/dugout/internal/domain/roster"
	basecache "github.com/dugouthq/dugout/internal/platform/cache"
)

// RosterRepository is a read-through cache over the roster store. Writes
// invalidate the whole team prefix; rosters are small so a full reload is
// cheaper than tracking per-player keys.
type RosterRepository struct {
	next  roster.Repository
	cache *basecache.Store
}

func NewRosterRepository(next roster.Repository, cache *basecache.Store) *RosterRepository {
	return &RosterRepository{next: next, cache: cache}
}

func (r *RosterRepository) ListByTeam(ctx context.Context, teamID string) ([]roster.Player, error) {
	key := "roster:list:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return append([]roster.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]roster.Player)
	return append([]roster.Player(nil), items...), nil
}

func (r *RosterRepository) GetByIDs(ctx context.Context, teamID string, playerIDs []string) ([]roster.Player, error) {
	ids := append([]string(nil), playerIDs...)
	sort.Strings(ids)
	key := "roster:ids:" + teamID + ":" + strings.Join(ids, ",")
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.GetByIDs(ctx, teamID, playerIDs)
		if err != nil {
			return nil, err
		}
		return append([]roster.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]roster.Player)
	return append([]roster.Player(nil), items...), nil
}

func (r *RosterRepository) Upsert(ctx context.Context, player roster.Player) error {
	if err := r.next.Upsert(ctx, player); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "roster:list:"+player.TeamID)
	r.cache.DeletePrefix(ctx, "roster:ids:"+player.TeamID)
	return nil
}

func (r *RosterRepository) Delete(ctx context.Context, teamID, playerID string) error {
	if err := r.next.Delete(ctx, teamID, playerID); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "roster:list:"+teamID)
	r.cache.DeletePrefix(ctx, "roster:ids:"+teamID)
	return nil
}

// EligibilityRepository caches per-team flag lists with the same
// invalidate-on-write pattern.
type EligibilityRepository struct {
	next  eligibility.Repository
	cache *basecache.Store
}

func NewEligibilityRepository(next eligibility.Repository, cache *basecache.Store) *EligibilityRepository {
	return &EligibilityRepository{next: next, cache: cache}
}

func (r *EligibilityRepository) ListByTeam(ctx context.Context, teamID string) ([]eligibility.Flag, error) {
	key := "eligibility:list:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return append([]eligibility.Flag(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]eligibility.Flag)
	return append([]eligibility.Flag(nil), items...), nil
}

func (r *EligibilityRepository) Set(ctx context.Context, teamID string, flag eligibility.Flag) error {
	if err := r.next.Set(ctx, teamID, flag); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "eligibility:list:"+teamID)
	return nil
}
