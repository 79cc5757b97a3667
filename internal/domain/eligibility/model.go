package eligibility

import (
	"fmt"
	"strings"

	"github.com/dugouthq/dugout/internal/domain/roster"
)

// Flag opts a player into one key position. Flags exist only for the scarce
// key-position set; open positions have no eligibility table at all.
type Flag struct {
	TeamPlayerID string
	Position     roster.Position
	Eligible     bool
}

func (f Flag) Validate() error {
	if strings.TrimSpace(f.TeamPlayerID) == "" {
		return fmt.Errorf("team player id is required")
	}
	if !IsKeyPosition(f.Position) {
		return fmt.Errorf("position %s is not a key position", f.Position)
	}

	return nil
}

// IsKeyPosition reports whether a position can ever be eligibility-gated.
// Pitcher is in the set even though machine- and coach-pitch games leave it
// open; the gate for a specific game comes from GatedPositions.
func IsKeyPosition(pos roster.Position) bool {
	switch pos {
	case roster.PositionCatcher, roster.PositionPitcher, roster.PositionFirstBase:
		return true
	default:
		return false
	}
}

// GatedPositions returns the key positions that require an eligibility flag
// for a given game. Catcher and first base are always gated; pitcher only
// when the players themselves pitch.
func GatedPositions(playerPitch bool) []roster.Position {
	gated := []roster.Position{roster.PositionCatcher}
	if playerPitch {
		gated = append(gated, roster.PositionPitcher)
	}
	gated = append(gated, roster.PositionFirstBase)

	return gated
}

type flagKey struct {
	playerID string
	position roster.Position
}

// Resolver answers "may player P occupy position K" for one game. The default
// policy is deliberately asymmetric: a missing flag means NOT eligible for a
// gated position, while every non-gated position is open to the whole roster.
// Coaches opt players into scarce positions, never out of open ones.
type Resolver struct {
	gated map[roster.Position]struct{}
	flags map[flagKey]bool
}

func NewResolver(flags []Flag, gated []roster.Position) Resolver {
	r := Resolver{
		gated: make(map[roster.Position]struct{}, len(gated)),
		flags: make(map[flagKey]bool, len(flags)),
	}
	for _, pos := range gated {
		r.gated[pos] = struct{}{}
	}
	for _, f := range flags {
		r.flags[flagKey{playerID: f.TeamPlayerID, position: f.Position}] = f.Eligible
	}

	return r
}

func (r Resolver) Eligible(playerID string, pos roster.Position) bool {
	if _, ok := r.gated[pos]; !ok {
		return true
	}

	eligible, ok := r.flags[flagKey{playerID: playerID, position: pos}]
	return ok && eligible
}

// Gated returns the gated positions in lineup-card order.
func (r Resolver) Gated() []roster.Position {
	out := make([]roster.Position, 0, len(r.gated))
	for _, pos := range []roster.Position{roster.PositionCatcher, roster.PositionPitcher, roster.PositionFirstBase} {
		if _, ok := r.gated[pos]; ok {
			out = append(out, pos)
		}
	}

	return out
}
