package lineup

import (
	"fmt"

	"github.com/dugouthq/dugout/internal/domain/roster"
)

// SwapRequest exchanges what two players are doing in one inning. Either side
// may be on the bench; a field-bench swap moves the bench player onto the
// vacated position.
type SwapRequest struct {
	Inning        int
	TeamPlayerIDA string
	TeamPlayerIDB string
}

func (r SwapRequest) Validate(innings int) error {
	if r.Inning < 1 || r.Inning > innings {
		return fmt.Errorf("inning %d out of range 1-%d", r.Inning, innings)
	}
	if r.TeamPlayerIDA == "" || r.TeamPlayerIDB == "" {
		return fmt.Errorf("both players are required")
	}
	if r.TeamPlayerIDA == r.TeamPlayerIDB {
		return fmt.Errorf("cannot swap a player with themselves")
	}

	return nil
}

// Swap applies one manual assignment exchange and returns a new lineup; the
// input is never mutated. Eligibility is not re-checked here: the coach
// overriding the generator is the point of the operation. Inconsistencies the
// edit introduces surface through Validate on the result.
func Swap(l GeneratedLineup, req SwapRequest) (GeneratedLineup, error) {
	if err := req.Validate(l.Config.Innings); err != nil {
		return GeneratedLineup{}, fmt.Errorf("%w: %v", ErrInvalidSwapTarget, err)
	}

	out := l.Clone()
	slots := out.FieldAssignments[req.Inning]
	bench := out.BenchByInning[req.Inning]

	slotIdx := func(id string) int {
		for i, s := range slots {
			if s.TeamPlayerID == id {
				return i
			}
		}
		return -1
	}
	benchIdx := func(id string) int {
		for i, b := range bench {
			if b == id {
				return i
			}
		}
		return -1
	}

	aField, bField := slotIdx(req.TeamPlayerIDA), slotIdx(req.TeamPlayerIDB)
	aBench, bBench := benchIdx(req.TeamPlayerIDA), benchIdx(req.TeamPlayerIDB)

	switch {
	case aField >= 0 && bField >= 0:
		slots[aField].TeamPlayerID, slots[bField].TeamPlayerID = slots[bField].TeamPlayerID, slots[aField].TeamPlayerID
	case aField >= 0 && bBench >= 0:
		slots[aField].TeamPlayerID, bench[bBench] = bench[bBench], slots[aField].TeamPlayerID
	case aBench >= 0 && bField >= 0:
		slots[bField].TeamPlayerID, bench[aBench] = bench[aBench], slots[bField].TeamPlayerID
	case aBench >= 0 && bBench >= 0:
		bench[aBench], bench[bBench] = bench[bBench], bench[aBench]
	default:
		missing := req.TeamPlayerIDA
		if aField >= 0 || aBench >= 0 {
			missing = req.TeamPlayerIDB
		}
		return GeneratedLineup{}, fmt.Errorf("%w: player %s has no assignment in inning %d",
			ErrInvalidSwapTarget, missing, req.Inning)
	}

	return out, nil
}

// Validate checks the structural invariants of a lineup: every inning has a
// full field with distinct players and positions, bench and field never
// overlap, and each rostered player appears exactly once per inning. Swaps can
// only move players around, so a generated lineup stays valid through any
// sequence of them; this guards persisted lineups against corrupted edits.
func (l GeneratedLineup) Validate(rosterIDs []string) error {
	onRoster := make(map[string]struct{}, len(rosterIDs))
	for _, id := range rosterIDs {
		onRoster[id] = struct{}{}
	}

	for inning := 1; inning <= l.Config.Innings; inning++ {
		slots := l.FieldAssignments[inning]
		if len(slots) != l.Config.FieldPositionCount {
			return fmt.Errorf("inning %d has %d field assignments, want %d",
				inning, len(slots), l.Config.FieldPositionCount)
		}

		seen := make(map[string]struct{}, len(rosterIDs))
		positions := make(map[roster.Position]struct{}, len(slots))
		for _, s := range slots {
			if _, ok := onRoster[s.TeamPlayerID]; !ok {
				return fmt.Errorf("inning %d assigns unknown player %s", inning, s.TeamPlayerID)
			}
			if _, dup := seen[s.TeamPlayerID]; dup {
				return fmt.Errorf("inning %d assigns player %s twice", inning, s.TeamPlayerID)
			}
			if _, dup := positions[s.Position]; dup {
				return fmt.Errorf("inning %d fills position %s twice", inning, s.Position)
			}
			seen[s.TeamPlayerID] = struct{}{}
			positions[s.Position] = struct{}{}
		}

		for _, id := range l.BenchByInning[inning] {
			if _, ok := onRoster[id]; !ok {
				return fmt.Errorf("inning %d benches unknown player %s", inning, id)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("inning %d places player %s on field and bench", inning, id)
			}
			seen[id] = struct{}{}
		}

		if len(seen) != len(rosterIDs) {
			return fmt.Errorf("inning %d covers %d of %d rostered players", inning, len(seen), len(rosterIDs))
		}
	}

	return nil
}
