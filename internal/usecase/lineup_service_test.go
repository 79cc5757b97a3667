package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/dugouthq/dugout/internal/domain/eligibility"
	"github.com/dugouthq/dugout/internal/domain/lineup"
	"github.com/dugouthq/dugout/internal/domain/roster"
	"github.com/dugouthq/dugout/internal/infrastructure/repository/memory"
	idgen "github.com/dugouthq/dugout/internal/platform/id"
)

const testTeamID = "team-1"

func testPlayers(n int) []roster.Player {
	players := make([]roster.Player, 0, n)
	for i := 1; i <= n; i++ {
		players = append(players, roster.Player{
			TeamPlayerID: fmt.Sprintf("p%02d", i),
			TeamID:       testTeamID,
			Name:         fmt.Sprintf("Player %02d", i),
			JerseyNumber: i,
		})
	}

	return players
}

func testFlags() map[string][]eligibility.Flag {
	return map[string][]eligibility.Flag{
		testTeamID: {
			{TeamPlayerID: "p03", Position: roster.PositionCatcher, Eligible: true},
			{TeamPlayerID: "p07", Position: roster.PositionCatcher, Eligible: true},
			{TeamPlayerID: "p01", Position: roster.PositionFirstBase, Eligible: true},
			{TeamPlayerID: "p05", Position: roster.PositionFirstBase, Eligible: true},
		},
	}
}

func newLineupServiceFixture(playerCount int) *LineupService {
	return NewLineupService(
		memory.NewRosterRepository(testPlayers(playerCount)),
		memory.NewEligibilityRepository(testFlags()),
		memory.NewLineupRepository(),
		idgen.NewRandomGenerator(),
	)
}

func generateInput() GenerateLineupInput {
	return GenerateLineupInput{
		TeamID:             testTeamID,
		Innings:            6,
		FieldPositionCount: 9,
		PitchingType:       "machine",
		EveryoneBats:       true,
	}
}

func TestLineupService_GenerateSaveGetRoundTrip(t *testing.T) {
	svc := newLineupServiceFixture(11)
	ctx := context.Background()

	generated, err := svc.Generate(ctx, generateInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	header, err := svc.Save(ctx, SaveLineupInput{TeamID: testTeamID, Lineup: generated})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if header.ID == "" {
		t.Fatalf("expected generated lineup id")
	}
	if header.Status != lineup.StatusDraft {
		t.Fatalf("expected draft status by default, got %s", header.Status)
	}

	gotHeader, gotLineup, err := svc.Get(ctx, testTeamID, header.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotHeader.ID != header.ID {
		t.Fatalf("header id mismatch: %s vs %s", gotHeader.ID, header.ID)
	}
	if !reflect.DeepEqual(generated, gotLineup) {
		t.Fatalf("stored lineup does not round-trip:\nsaved: %+v\ngot:   %+v", generated, gotLineup)
	}
}

func TestLineupService_GenerateEmptyRoster(t *testing.T) {
	svc := NewLineupService(
		memory.NewRosterRepository(nil),
		memory.NewEligibilityRepository(nil),
		memory.NewLineupRepository(),
		idgen.NewRandomGenerator(),
	)

	_, err := svc.Generate(context.Background(), generateInput())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty roster, got %v", err)
	}
}

func TestLineupService_GenerateRejectsBadConfig(t *testing.T) {
	svc := newLineupServiceFixture(11)

	input := generateInput()
	input.Innings = 9
	if _, err := svc.Generate(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for 9 innings, got %v", err)
	}

	input = generateInput()
	input.PitchingType = "catapult"
	if _, err := svc.Generate(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown pitching type, got %v", err)
	}
}

func TestLineupService_SaveRejectsUnknownStatus(t *testing.T) {
	svc := newLineupServiceFixture(11)
	ctx := context.Background()

	generated, err := svc.Generate(ctx, generateInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = svc.Save(ctx, SaveLineupInput{TeamID: testTeamID, Lineup: generated, Status: "archived"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}

func TestLineupService_SaveRejectsUnknownPlayer(t *testing.T) {
	svc := newLineupServiceFixture(11)
	ctx := context.Background()

	generated, err := svc.Generate(ctx, generateInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	tampered := generated.Clone()
	tampered.FieldAssignments[1][0].TeamPlayerID = "ghost"

	_, err = svc.Save(ctx, SaveLineupInput{TeamID: testTeamID, Lineup: tampered})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for off-roster player, got %v", err)
	}
}

func TestLineupService_ApplySwapPersists(t *testing.T) {
	svc := newLineupServiceFixture(11)
	ctx := context.Background()

	generated, err := svc.Generate(ctx, generateInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	header, err := svc.Save(ctx, SaveLineupInput{TeamID: testTeamID, Lineup: generated})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	slots := generated.FieldAssignments[1]
	playerA := slots[0].TeamPlayerID
	playerB := slots[1].TeamPlayerID

	swapped, err := svc.ApplySwap(ctx, ApplySwapInput{
		TeamID:        testTeamID,
		LineupID:      header.ID,
		Inning:        1,
		TeamPlayerIDA: playerA,
		TeamPlayerIDB: playerB,
	})
	if err != nil {
		t.Fatalf("apply swap: %v", err)
	}
	if swapped.FieldAssignments[1][0].TeamPlayerID != playerB {
		t.Fatalf("expected %s in first slot after swap, got %s", playerB, swapped.FieldAssignments[1][0].TeamPlayerID)
	}

	_, stored, err := svc.Get(ctx, testTeamID, header.ID)
	if err != nil {
		t.Fatalf("get after swap: %v", err)
	}
	if !reflect.DeepEqual(swapped, stored) {
		t.Fatalf("swap was not persisted")
	}
}

func TestLineupService_ApplySwapRejectsFinalized(t *testing.T) {
	svc := newLineupServiceFixture(11)
	ctx := context.Background()

	generated, err := svc.Generate(ctx, generateInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	header, err := svc.Save(ctx, SaveLineupInput{TeamID: testTeamID, Lineup: generated})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := svc.Finalize(ctx, testTeamID, header.ID); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	slots := generated.FieldAssignments[1]
	_, err = svc.ApplySwap(ctx, ApplySwapInput{
		TeamID:        testTeamID,
		LineupID:      header.ID,
		Inning:        1,
		TeamPlayerIDA: slots[0].TeamPlayerID,
		TeamPlayerIDB: slots[1].TeamPlayerID,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for finalized lineup, got %v", err)
	}
}

func TestLineupService_ApplySwapInvalidTargetLeavesLineupUntouched(t *testing.T) {
	svc := newLineupServiceFixture(11)
	ctx := context.Background()

	generated, err := svc.Generate(ctx, generateInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	header, err := svc.Save(ctx, SaveLineupInput{TeamID: testTeamID, Lineup: generated})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	unchanged, err := svc.ApplySwap(ctx, ApplySwapInput{
		TeamID:        testTeamID,
		LineupID:      header.ID,
		Inning:        1,
		TeamPlayerIDA: generated.FieldAssignments[1][0].TeamPlayerID,
		TeamPlayerIDB: "ghost",
	})
	if !errors.Is(err, lineup.ErrInvalidSwapTarget) {
		t.Fatalf("expected ErrInvalidSwapTarget, got %v", err)
	}
	if !reflect.DeepEqual(unchanged, generated) {
		t.Fatalf("invalid swap must return the stored lineup untouched")
	}

	_, stored, err := svc.Get(ctx, testTeamID, header.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(stored, generated) {
		t.Fatalf("invalid swap must not be persisted")
	}
}

func TestLineupService_FinalizeIsIdempotent(t *testing.T) {
	svc := newLineupServiceFixture(11)
	ctx := context.Background()

	generated, err := svc.Generate(ctx, generateInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	header, err := svc.Save(ctx, SaveLineupInput{TeamID: testTeamID, Lineup: generated})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	first, err := svc.Finalize(ctx, testTeamID, header.ID)
	if err != nil {
		t.Fatalf("first finalize: %v", err)
	}
	second, err := svc.Finalize(ctx, testTeamID, header.ID)
	if err != nil {
		t.Fatalf("second finalize: %v", err)
	}
	if first.Status != lineup.StatusFinal || second.Status != lineup.StatusFinal {
		t.Fatalf("expected final status, got %s and %s", first.Status, second.Status)
	}
	if !second.UpdatedAt.Equal(first.UpdatedAt) {
		t.Fatalf("second finalize should not rewrite the lineup")
	}
}

func TestLineupService_DeleteMissing(t *testing.T) {
	svc := newLineupServiceFixture(11)

	err := svc.Delete(context.Background(), testTeamID, "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLineupService_ListByTeamNewestFirst(t *testing.T) {
	svc := newLineupServiceFixture(11)
	ctx := context.Background()

	generated, err := svc.Generate(ctx, generateInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := svc.Save(ctx, SaveLineupInput{TeamID: testTeamID, Lineup: generated}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	headers, err := svc.ListByTeam(ctx, testTeamID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(headers) != 3 {
		t.Fatalf("expected 3 lineups, got %d", len(headers))
	}
	for i := 1; i < len(headers); i++ {
		if headers[i].CreatedAt.After(headers[i-1].CreatedAt) {
			t.Fatalf("lineups are not newest-first")
		}
	}
}
