package lineup

import (
	"errors"
	"fmt"
	"time"

	"github.com/dugouthq/dugout/internal/domain/roster"
)

var (
	// ErrInsufficientPlayers is the only fatal generation failure: the roster
	// cannot cover the requested number of field positions.
	ErrInsufficientPlayers = errors.New("not enough players for requested field size")
	// ErrInvalidSwapTarget marks a swap that referenced a player absent from
	// the target inning. The lineup is returned unchanged.
	ErrInvalidSwapTarget = errors.New("swap target not present in inning")
	// ErrMalformedAssignments marks stored rows that cannot be rebuilt into a
	// consistent inning-keyed lineup.
	ErrMalformedAssignments = errors.New("malformed lineup assignments")
)

// PitchingType determines whether the pitcher slot is eligibility-gated.
type PitchingType string

const (
	PitchingMachine PitchingType = "machine"
	PitchingCoach   PitchingType = "coach"
	PitchingPlayer  PitchingType = "player"
)

var AllPitchingTypes = map[PitchingType]struct{}{
	PitchingMachine: {},
	PitchingCoach:   {},
	PitchingPlayer:  {},
}

const (
	MinInnings = 4
	MaxInnings = 6
)

// GameConfig is the per-game input to the generator.
type GameConfig struct {
	Innings            int
	FieldPositionCount int
	PitchingType       PitchingType
	EveryoneBats       bool
	Opponent           string
	GameDate           *time.Time
	// Seed makes tie-breaks and the batting shuffle reproducible. When nil
	// the roster input order is used everywhere.
	Seed *int64
}

func (c GameConfig) Validate() error {
	if c.Innings < MinInnings || c.Innings > MaxInnings {
		return fmt.Errorf("innings must be between %d and %d, got %d", MinInnings, MaxInnings, c.Innings)
	}
	if c.FieldPositionCount < roster.MinFieldPositions || c.FieldPositionCount > roster.MaxFieldPositions {
		return fmt.Errorf("field position count must be between %d and %d, got %d",
			roster.MinFieldPositions, roster.MaxFieldPositions, c.FieldPositionCount)
	}
	if _, ok := AllPitchingTypes[c.PitchingType]; !ok {
		return fmt.Errorf("invalid pitching type: %s", c.PitchingType)
	}

	return nil
}

// PlayerPitch reports whether the pitcher slot is gated for this game.
func (c GameConfig) PlayerPitch() bool {
	return c.PitchingType == PitchingPlayer
}

// BattingSlot is one entry in the game-long batting order.
type BattingSlot struct {
	TeamPlayerID string
	OrderIndex   int
}

// FieldSlot places one player at one defensive position for one inning.
type FieldSlot struct {
	TeamPlayerID string
	Position     roster.Position
}

// GeneratedLineup is the full scheduling output: a batting order plus, for
// every inning, a complete field assignment and its bench complement. It is
// request-scoped until explicitly saved.
type GeneratedLineup struct {
	TeamID           string
	Config           GameConfig
	BattingOrder     []BattingSlot
	FieldAssignments map[int][]FieldSlot
	BenchByInning    map[int][]string
	Notes            []string
}

// Clone returns a deep copy; swap edits never mutate their input.
func (l GeneratedLineup) Clone() GeneratedLineup {
	out := l
	out.BattingOrder = append([]BattingSlot(nil), l.BattingOrder...)
	out.Notes = append([]string(nil), l.Notes...)
	out.FieldAssignments = make(map[int][]FieldSlot, len(l.FieldAssignments))
	for inning, slots := range l.FieldAssignments {
		out.FieldAssignments[inning] = append([]FieldSlot(nil), slots...)
	}
	out.BenchByInning = make(map[int][]string, len(l.BenchByInning))
	for inning, ids := range l.BenchByInning {
		out.BenchByInning[inning] = append([]string(nil), ids...)
	}

	return out
}

// Status of a saved lineup.
type Status string

const (
	StatusDraft Status = "draft"
	StatusFinal Status = "final"
)

// GameLineup is the persisted header row for one saved lineup: the config
// snapshot plus notes and lifecycle metadata. Assignment detail lives in the
// flattened AssignmentRow set.
type GameLineup struct {
	ID        string
	TeamID    string
	Config    GameConfig
	Status    Status
	Notes     []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AssignmentRow is the flattened storage form: exactly one row per rostered
// player per inning. Bench innings carry the PositionBench sentinel.
// BattingOrder repeats a player's batting index on each of their rows and is
// nil for players outside the batting order.
type AssignmentRow struct {
	TeamPlayerID string
	Inning       int
	Position     roster.Position
	BattingOrder *int
}
