package lineup

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/dugouthq/dugout/internal/domain/eligibility"
	"github.com/dugouthq/dugout/internal/domain/roster"
)

// rotationState tracks one player's accumulated game so far. All fairness
// tie-breaks read from here.
type rotationState struct {
	player       roster.Player
	order        int
	benchInnings int
	lastBenched  int // inning number, 0 = never benched
	lastPosition roster.Position
	byPosition   map[roster.Position]int
}

// Generate assigns every rostered player to a field position or bench slot
// for every inning and builds the batting order. It is a pure function: the
// same roster, flags and config (with the same seed) produce the same lineup.
//
// The only fatal failure is a roster smaller than the field. Every other
// constraint problem degrades into an explanatory note: a team without an
// eligible catcher still needs nine kids on the field.
func Generate(players []roster.Player, resolver eligibility.Resolver, cfg GameConfig) (GeneratedLineup, error) {
	if err := cfg.Validate(); err != nil {
		return GeneratedLineup{}, err
	}
	if len(players) < cfg.FieldPositionCount {
		return GeneratedLineup{}, fmt.Errorf("%w: need at least %d players, roster has %d",
			ErrInsufficientPlayers, cfg.FieldPositionCount, len(players))
	}

	positions, err := roster.FieldPositions(cfg.FieldPositionCount)
	if err != nil {
		return GeneratedLineup{}, err
	}

	working := append([]roster.Player(nil), players...)
	if cfg.Seed != nil {
		rng := rand.New(rand.NewSource(*cfg.Seed))
		rng.Shuffle(len(working), func(i, j int) {
			working[i], working[j] = working[j], working[i]
		})
	}

	states := make([]*rotationState, len(working))
	for i, p := range working {
		states[i] = &rotationState{
			player:     p,
			order:      i,
			byPosition: make(map[roster.Position]int, cfg.FieldPositionCount),
		}
	}

	keyPositions := eligibility.GatedPositions(cfg.PlayerPitch())
	openPositions := make([]roster.Position, 0, len(positions))
	keySet := make(map[roster.Position]struct{}, len(keyPositions))
	for _, kp := range keyPositions {
		keySet[kp] = struct{}{}
	}
	for _, pos := range positions {
		if _, ok := keySet[pos]; !ok {
			openPositions = append(openPositions, pos)
		}
	}

	// Positions nobody on the roster is flagged for cannot constrain bench
	// selection; they are covered by rotation and noted as degraded.
	eligibleCount := make(map[roster.Position]int, len(keyPositions))
	soleEligible := make(map[roster.Position]*rotationState, len(keyPositions))
	for _, kp := range keyPositions {
		for _, s := range states {
			if resolver.Eligible(s.player.TeamPlayerID, kp) {
				eligibleCount[kp]++
				soleEligible[kp] = s
			}
		}
		if eligibleCount[kp] != 1 {
			delete(soleEligible, kp)
		}
	}

	benchNeed := len(working) - cfg.FieldPositionCount
	fieldAssignments := make(map[int][]FieldSlot, cfg.Innings)
	benchByInning := make(map[int][]string, cfg.Innings)
	degraded := make(map[roster.Position][]int, len(keyPositions))

	for inning := 1; inning <= cfg.Innings; inning++ {
		benched := make(map[string]struct{}, benchNeed)

		// Bench picks come first so key-position players still rotate through
		// bench time. A candidate is skipped only when sitting them would
		// leave a gated slot with no eligible fielder.
		if benchNeed > 0 {
			cands := statesByBenchRotation(states)
			for _, c := range cands {
				if len(benched) == benchNeed {
					break
				}
				benched[c.player.TeamPlayerID] = struct{}{}
				if !coversKeyPositions(states, resolver, keyPositions, eligibleCount, benched, nil) {
					delete(benched, c.player.TeamPlayerID)
				}
			}
			for _, c := range cands {
				if len(benched) == benchNeed {
					break
				}
				benched[c.player.TeamPlayerID] = struct{}{}
			}
		}

		assigned := make(map[string]roster.Position, cfg.FieldPositionCount)
		byPosition := make(map[roster.Position]*rotationState, cfg.FieldPositionCount)

		for i, kp := range keyPositions {
			pick := pickKeyPlayer(states, resolver, kp, keyPositions[i+1:], eligibleCount, benched, assigned)
			if pick == nil {
				pick = pickDegradedPlayer(states, benched, assigned)
				degraded[kp] = append(degraded[kp], inning)
			}
			assigned[pick.player.TeamPlayerID] = kp
			byPosition[kp] = pick
		}

		for _, op := range openPositions {
			pick := pickOpenPlayer(states, op, benched, assigned)
			assigned[pick.player.TeamPlayerID] = op
			byPosition[op] = pick
		}

		slots := make([]FieldSlot, 0, cfg.FieldPositionCount)
		for _, pos := range positions {
			slots = append(slots, FieldSlot{
				TeamPlayerID: byPosition[pos].player.TeamPlayerID,
				Position:     pos,
			})
		}
		fieldAssignments[inning] = slots

		bench := make([]string, 0, benchNeed)
		for _, s := range states {
			if _, ok := benched[s.player.TeamPlayerID]; ok {
				bench = append(bench, s.player.TeamPlayerID)
			}
		}
		benchByInning[inning] = bench

		for _, s := range states {
			if pos, ok := assigned[s.player.TeamPlayerID]; ok {
				s.byPosition[pos]++
				s.lastPosition = pos
				continue
			}
			s.benchInnings++
			s.lastBenched = inning
			s.lastPosition = ""
		}
	}

	return GeneratedLineup{
		TeamID:           teamIDOf(working),
		Config:           cfg,
		BattingOrder:     buildBattingOrder(working, cfg, fieldAssignments),
		FieldAssignments: fieldAssignments,
		BenchByInning:    benchByInning,
		Notes:            buildNotes(keyPositions, degraded, soleEligible, cfg.Innings),
	}, nil
}

func teamIDOf(players []roster.Player) string {
	if len(players) == 0 {
		return ""
	}
	return players[0].TeamID
}

func statesByBenchRotation(states []*rotationState) []*rotationState {
	out := append([]*rotationState(nil), states...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].benchInnings != out[j].benchInnings {
			return out[i].benchInnings < out[j].benchInnings
		}
		return out[i].order < out[j].order
	})
	return out
}

// coversKeyPositions reports whether the non-benched, non-assigned players can
// still fill every gated position with distinct eligible occupants. Positions
// with no eligible player at all are excluded: they degrade instead of
// constraining the rotation. The check is a tiny backtracking matcher over at
// most three positions.
func coversKeyPositions(
	states []*rotationState,
	resolver eligibility.Resolver,
	keyPositions []roster.Position,
	eligibleCount map[roster.Position]int,
	benched map[string]struct{},
	assigned map[string]roster.Position,
) bool {
	remaining := make([]roster.Position, 0, len(keyPositions))
	for _, kp := range keyPositions {
		if eligibleCount[kp] > 0 {
			remaining = append(remaining, kp)
		}
	}
	used := make(map[string]struct{}, len(remaining))

	var match func(idx int) bool
	match = func(idx int) bool {
		if idx == len(remaining) {
			return true
		}
		for _, s := range states {
			id := s.player.TeamPlayerID
			if _, ok := benched[id]; ok {
				continue
			}
			if _, ok := used[id]; ok {
				continue
			}
			if _, ok := assigned[id]; ok {
				continue
			}
			if !resolver.Eligible(id, remaining[idx]) {
				continue
			}
			used[id] = struct{}{}
			if match(idx + 1) {
				delete(used, id)
				return true
			}
			delete(used, id)
		}
		return false
	}

	return match(0)
}

// pickKeyPlayer selects the occupant for one gated position: fewest innings
// already played there, then fewest bench innings, then roster order. A
// candidate is passed over when taking them would strand a later gated slot.
func pickKeyPlayer(
	states []*rotationState,
	resolver eligibility.Resolver,
	pos roster.Position,
	laterKeys []roster.Position,
	eligibleCount map[roster.Position]int,
	benched map[string]struct{},
	assigned map[string]roster.Position,
) *rotationState {
	cands := make([]*rotationState, 0, len(states))
	for _, s := range states {
		id := s.player.TeamPlayerID
		if _, ok := benched[id]; ok {
			continue
		}
		if _, ok := assigned[id]; ok {
			continue
		}
		if resolver.Eligible(id, pos) {
			cands = append(cands, s)
		}
	}
	if len(cands) == 0 {
		return nil
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].byPosition[pos] != cands[j].byPosition[pos] {
			return cands[i].byPosition[pos] < cands[j].byPosition[pos]
		}
		if cands[i].benchInnings != cands[j].benchInnings {
			return cands[i].benchInnings < cands[j].benchInnings
		}
		return cands[i].order < cands[j].order
	})

	for _, c := range cands {
		assigned[c.player.TeamPlayerID] = pos
		ok := coversKeyPositions(states, resolver, laterKeys, eligibleCount, benched, assigned)
		delete(assigned, c.player.TeamPlayerID)
		if ok {
			return c
		}
	}

	return cands[0]
}

// pickDegradedPlayer covers a gated position nobody is flagged for: the
// least-recently-benched available player takes it so the burden rotates.
func pickDegradedPlayer(states []*rotationState, benched map[string]struct{}, assigned map[string]roster.Position) *rotationState {
	var pick *rotationState
	for _, s := range states {
		id := s.player.TeamPlayerID
		if _, ok := benched[id]; ok {
			continue
		}
		if _, ok := assigned[id]; ok {
			continue
		}
		if pick == nil {
			pick = s
			continue
		}
		if s.lastBenched != pick.lastBenched {
			if s.lastBenched < pick.lastBenched {
				pick = s
			}
			continue
		}
		if s.benchInnings != pick.benchInnings {
			if s.benchInnings < pick.benchInnings {
				pick = s
			}
			continue
		}
		if s.order < pick.order {
			pick = s
		}
	}

	return pick
}

// pickOpenPlayer fills a non-gated position, preferring players who did not
// hold the same position last inning, then fewest innings there overall.
func pickOpenPlayer(states []*rotationState, pos roster.Position, benched map[string]struct{}, assigned map[string]roster.Position) *rotationState {
	var pick *rotationState
	better := func(a, b *rotationState) bool {
		aRepeat := boolToInt(a.lastPosition == pos)
		bRepeat := boolToInt(b.lastPosition == pos)
		if aRepeat != bRepeat {
			return aRepeat < bRepeat
		}
		if a.byPosition[pos] != b.byPosition[pos] {
			return a.byPosition[pos] < b.byPosition[pos]
		}
		return a.order < b.order
	}
	for _, s := range states {
		id := s.player.TeamPlayerID
		if _, ok := benched[id]; ok {
			continue
		}
		if _, ok := assigned[id]; ok {
			continue
		}
		if pick == nil || better(s, pick) {
			pick = s
		}
	}

	return pick
}

func buildBattingOrder(working []roster.Player, cfg GameConfig, fieldAssignments map[int][]FieldSlot) []BattingSlot {
	fielded := make(map[string]struct{}, len(working))
	for _, slots := range fieldAssignments {
		for _, slot := range slots {
			fielded[slot.TeamPlayerID] = struct{}{}
		}
	}

	out := make([]BattingSlot, 0, len(working))
	for _, p := range working {
		if !cfg.EveryoneBats {
			if _, ok := fielded[p.TeamPlayerID]; !ok {
				continue
			}
		}
		out = append(out, BattingSlot{
			TeamPlayerID: p.TeamPlayerID,
			OrderIndex:   len(out) + 1,
		})
	}

	return out
}

func buildNotes(
	keyPositions []roster.Position,
	degraded map[roster.Position][]int,
	soleEligible map[roster.Position]*rotationState,
	innings int,
) []string {
	var notes []string
	for _, kp := range keyPositions {
		if innings > 1 && degraded[kp] == nil {
			if sole, ok := soleEligible[kp]; ok {
				notes = append(notes, fmt.Sprintf("only one eligible %s: %s covers every inning",
					positionLabel(kp), sole.player.Name))
			}
		}
		if inns := degraded[kp]; len(inns) > 0 {
			notes = append(notes, fmt.Sprintf("no eligible %s on the roster; innings %s filled by overall bench rotation",
				positionLabel(kp), joinInnings(inns)))
		}
	}

	return notes
}

func positionLabel(pos roster.Position) string {
	switch pos {
	case roster.PositionCatcher:
		return "catcher"
	case roster.PositionPitcher:
		return "pitcher"
	case roster.PositionFirstBase:
		return "first baseman"
	default:
		return string(pos)
	}
}

func joinInnings(innings []int) string {
	parts := make([]string, 0, len(innings))
	for _, i := range innings {
		parts = append(parts, strconv.Itoa(i))
	}
	return strings.Join(parts, ", ")
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
