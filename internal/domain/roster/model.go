package roster

import (
	"fmt"
	"strings"
)

// Position is a defensive position code as it appears on a lineup card.
type Position string

const (
	PositionPitcher     Position = "P"
	PositionCatcher     Position = "C"
	PositionFirstBase   Position = "1B"
	PositionSecondBase  Position = "2B"
	PositionThirdBase   Position = "3B"
	PositionShortstop   Position = "SS"
	PositionLeftField   Position = "LF"
	PositionCenterField Position = "CF"
	PositionRightField  Position = "RF"
	PositionExtraHitter Position = "EH"
	// PositionExtraHitter2 is the second rover slot used by 11-fielder formats.
	PositionExtraHitter2 Position = "EH2"

	// PositionBench is not a defensive position; it is the sentinel stored on
	// flattened assignment rows for players sitting out an inning.
	PositionBench Position = "BENCH"
)

var AllFieldPositions = map[Position]struct{}{
	PositionPitcher:      {},
	PositionCatcher:      {},
	PositionFirstBase:    {},
	PositionSecondBase:   {},
	PositionThirdBase:    {},
	PositionShortstop:    {},
	PositionLeftField:    {},
	PositionCenterField:  {},
	PositionRightField:   {},
	PositionExtraHitter:  {},
	PositionExtraHitter2: {},
}

const (
	MinFieldPositions = 9
	MaxFieldPositions = 11
)

// FieldPositions returns the ordered defensive slots for a game format.
// Nine fielders is the classic diamond; ten and eleven add rover slots.
func FieldPositions(count int) ([]Position, error) {
	if count < MinFieldPositions || count > MaxFieldPositions {
		return nil, fmt.Errorf("field position count must be between %d and %d, got %d", MinFieldPositions, MaxFieldPositions, count)
	}

	base := []Position{
		PositionPitcher,
		PositionCatcher,
		PositionFirstBase,
		PositionSecondBase,
		PositionThirdBase,
		PositionShortstop,
		PositionLeftField,
		PositionCenterField,
		PositionRightField,
	}
	if count >= 10 {
		base = append(base, PositionExtraHitter)
	}
	if count == 11 {
		base = append(base, PositionExtraHitter2)
	}

	return base, nil
}

// Player is one rostered athlete. TeamPlayerID is the public identifier that
// eligibility flags and lineup assignments reference.
type Player struct {
	TeamPlayerID string
	TeamID       string
	Name         string
	JerseyNumber int
	// SecondaryPositions are coach-declared preferences. They are advisory
	// only and never constrain the generator.
	SecondaryPositions []Position
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.TeamPlayerID) == "" {
		return fmt.Errorf("team player id is required")
	}
	if strings.TrimSpace(p.TeamID) == "" {
		return fmt.Errorf("player team id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.JerseyNumber < 0 || p.JerseyNumber > 99 {
		return fmt.Errorf("jersey number must be between 0 and 99, got %d", p.JerseyNumber)
	}
	for _, pos := range p.SecondaryPositions {
		if _, ok := AllFieldPositions[pos]; !ok {
			return fmt.Errorf("invalid secondary position: %s", pos)
		}
	}

	return nil
}
