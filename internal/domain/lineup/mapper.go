package lineup

import (
	"fmt"

	"github.com/dugouthq/dugout/internal/domain/roster"
)

// Flatten converts an in-memory lineup into storage rows: one row per player
// per inning, bench innings carrying the bench sentinel, batting order
// repeated on every row of a batting player. Row order is deterministic so
// Reconstruct(Flatten(l)) round-trips exactly.
func Flatten(l GeneratedLineup) []AssignmentRow {
	battingIndex := make(map[string]*int, len(l.BattingOrder))
	for _, slot := range l.BattingOrder {
		idx := slot.OrderIndex
		battingIndex[slot.TeamPlayerID] = &idx
	}

	var rows []AssignmentRow
	for inning := 1; inning <= l.Config.Innings; inning++ {
		for _, slot := range l.FieldAssignments[inning] {
			rows = append(rows, AssignmentRow{
				TeamPlayerID: slot.TeamPlayerID,
				Inning:       inning,
				Position:     slot.Position,
				BattingOrder: battingIndex[slot.TeamPlayerID],
			})
		}
		for _, id := range l.BenchByInning[inning] {
			rows = append(rows, AssignmentRow{
				TeamPlayerID: id,
				Inning:       inning,
				Position:     roster.PositionBench,
				BattingOrder: battingIndex[id],
			})
		}
	}

	return rows
}

// Reconstruct rebuilds a lineup from its stored rows and header. Rows are
// consumed in stored order, which Flatten and the repositories both preserve.
func Reconstruct(header GameLineup, rows []AssignmentRow) (GeneratedLineup, error) {
	out := GeneratedLineup{
		TeamID:           header.TeamID,
		Config:           header.Config,
		FieldAssignments: make(map[int][]FieldSlot, header.Config.Innings),
		BenchByInning:    make(map[int][]string, header.Config.Innings),
		Notes:            append([]string(nil), header.Notes...),
	}
	for inning := 1; inning <= header.Config.Innings; inning++ {
		out.BenchByInning[inning] = []string{}
	}

	type battingEntry struct {
		playerID string
		index    int
	}
	var batting []battingEntry
	seenBatting := make(map[string]int)

	for _, row := range rows {
		if row.Inning < 1 || row.Inning > header.Config.Innings {
			return GeneratedLineup{}, fmt.Errorf("%w: row for inning %d outside 1-%d",
				ErrMalformedAssignments, row.Inning, header.Config.Innings)
		}

		if row.Position == roster.PositionBench {
			out.BenchByInning[row.Inning] = append(out.BenchByInning[row.Inning], row.TeamPlayerID)
		} else {
			out.FieldAssignments[row.Inning] = append(out.FieldAssignments[row.Inning], FieldSlot{
				TeamPlayerID: row.TeamPlayerID,
				Position:     row.Position,
			})
		}

		if row.BattingOrder == nil {
			continue
		}
		if prev, ok := seenBatting[row.TeamPlayerID]; ok {
			if prev != *row.BattingOrder {
				return GeneratedLineup{}, fmt.Errorf("%w: player %s has batting order %d and %d",
					ErrMalformedAssignments, row.TeamPlayerID, prev, *row.BattingOrder)
			}
			continue
		}
		seenBatting[row.TeamPlayerID] = *row.BattingOrder
		batting = append(batting, battingEntry{playerID: row.TeamPlayerID, index: *row.BattingOrder})
	}

	for inning := 1; inning <= header.Config.Innings; inning++ {
		if len(out.FieldAssignments[inning]) != header.Config.FieldPositionCount {
			return GeneratedLineup{}, fmt.Errorf("%w: inning %d has %d field rows, want %d",
				ErrMalformedAssignments, inning, len(out.FieldAssignments[inning]), header.Config.FieldPositionCount)
		}
	}

	for i := 1; i < len(batting); i++ {
		for j := i; j > 0 && batting[j].index < batting[j-1].index; j-- {
			batting[j], batting[j-1] = batting[j-1], batting[j]
		}
	}
	out.BattingOrder = make([]BattingSlot, 0, len(batting))
	for i, e := range batting {
		if e.index != i+1 {
			return GeneratedLineup{}, fmt.Errorf("%w: batting order has gap at slot %d", ErrMalformedAssignments, i+1)
		}
		out.BattingOrder = append(out.BattingOrder, BattingSlot{TeamPlayerID: e.playerID, OrderIndex: e.index})
	}

	return out, nil
}
