package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dugouthq/dugout/internal/domain/lineup"
)

type storedLineup struct {
	header lineup.GameLineup
	rows   []lineup.AssignmentRow
}

type LineupRepository struct {
	mu    sync.RWMutex
	items map[string]storedLineup
}

func NewLineupRepository() *LineupRepository {
	return &LineupRepository{items: make(map[string]storedLineup)}
}

func (r *LineupRepository) GetByID(_ context.Context, teamID, lineupID string) (lineup.GameLineup, []lineup.AssignmentRow, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[lineupKey(teamID, lineupID)]
	if !ok {
		return lineup.GameLineup{}, nil, false, nil
	}

	return cloneHeader(item.header), cloneRows(item.rows), true, nil
}

func (r *LineupRepository) ListByTeam(_ context.Context, teamID string) ([]lineup.GameLineup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []lineup.GameLineup
	for _, item := range r.items {
		if item.header.TeamID == teamID {
			out = append(out, cloneHeader(item.header))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *LineupRepository) Save(_ context.Context, header lineup.GameLineup, rows []lineup.AssignmentRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[lineupKey(header.TeamID, header.ID)] = storedLineup{
		header: cloneHeader(header),
		rows:   cloneRows(rows),
	}

	return nil
}

func (r *LineupRepository) Delete(_ context.Context, teamID, lineupID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := lineupKey(teamID, lineupID)
	if _, ok := r.items[key]; !ok {
		return false, nil
	}
	delete(r.items, key)

	return true, nil
}

func lineupKey(teamID, lineupID string) string {
	return teamID + "::" + lineupID
}

func cloneHeader(header lineup.GameLineup) lineup.GameLineup {
	copied := header
	copied.Notes = append([]string(nil), header.Notes...)
	return copied
}

func cloneRows(rows []lineup.AssignmentRow) []lineup.AssignmentRow {
	out := make([]lineup.AssignmentRow, 0, len(rows))
	for _, row := range rows {
		copied := row
		if row.BattingOrder != nil {
			v := *row.BattingOrder
			copied.BattingOrder = &v
		}
		out = append(out, copied)
	}

	return out
}
