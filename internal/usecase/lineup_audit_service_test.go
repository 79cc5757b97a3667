package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/dugouthq/dugout/internal/infrastructure/repository/memory"
	idgen "github.com/dugouthq/dugout/internal/platform/id"
)

func TestLineupAuditService_ReportsHealthyLineups(t *testing.T) {
	rosterRepo := memory.NewRosterRepository(testPlayers(11))
	lineupRepo := memory.NewLineupRepository()
	lineupSvc := NewLineupService(rosterRepo, memory.NewEligibilityRepository(testFlags()), lineupRepo, idgen.NewRandomGenerator())
	auditSvc := NewLineupAuditService(rosterRepo, lineupRepo)
	ctx := context.Background()

	generated, err := lineupSvc.Generate(ctx, generateInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	header, err := lineupSvc.Save(ctx, SaveLineupInput{TeamID: testTeamID, Lineup: generated})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	result, err := auditSvc.Run(ctx, AuditInput{TeamIDs: []string{testTeamID}})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.OKCount != 1 || result.InvalidCount != 0 || result.FailedCount != 0 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if len(result.Tasks) != 1 || result.Tasks[0].LineupID != header.ID || result.Tasks[0].Status != "ok" {
		t.Fatalf("unexpected tasks: %+v", result.Tasks)
	}
}

func TestLineupAuditService_FlagsLineupAfterRosterDeletion(t *testing.T) {
	rosterRepo := memory.NewRosterRepository(testPlayers(11))
	lineupRepo := memory.NewLineupRepository()
	lineupSvc := NewLineupService(rosterRepo, memory.NewEligibilityRepository(testFlags()), lineupRepo, idgen.NewRandomGenerator())
	auditSvc := NewLineupAuditService(rosterRepo, lineupRepo)
	ctx := context.Background()

	generated, err := lineupSvc.Generate(ctx, generateInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := lineupSvc.Save(ctx, SaveLineupInput{TeamID: testTeamID, Lineup: generated}); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Every player bats, so deleting any one of them breaks the saved lineup.
	if err := rosterRepo.Delete(ctx, testTeamID, "p04"); err != nil {
		t.Fatalf("delete roster player: %v", err)
	}

	result, err := auditSvc.Run(ctx, AuditInput{TeamIDs: []string{testTeamID}})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.InvalidCount != 1 || result.OKCount != 0 {
		t.Fatalf("expected one invalid lineup, got %+v", result)
	}
	if result.Tasks[0].Message == "" {
		t.Fatalf("expected a message explaining the invalid lineup")
	}
}

func TestLineupAuditService_MultipleTeamsSorted(t *testing.T) {
	players := testPlayers(11)
	for i := range players {
		extra := players[i]
		extra.TeamID = "team-2"
		players = append(players, extra)
	}
	rosterRepo := memory.NewRosterRepository(players)
	lineupRepo := memory.NewLineupRepository()
	flags := testFlags()
	flags["team-2"] = flags[testTeamID]
	lineupSvc := NewLineupService(rosterRepo, memory.NewEligibilityRepository(flags), lineupRepo, idgen.NewRandomGenerator())
	auditSvc := NewLineupAuditService(rosterRepo, lineupRepo)
	ctx := context.Background()

	for _, teamID := range []string{"team-2", testTeamID} {
		input := generateInput()
		input.TeamID = teamID
		generated, err := lineupSvc.Generate(ctx, input)
		if err != nil {
			t.Fatalf("generate for %s: %v", teamID, err)
		}
		if _, err := lineupSvc.Save(ctx, SaveLineupInput{TeamID: teamID, Lineup: generated}); err != nil {
			t.Fatalf("save for %s: %v", teamID, err)
		}
	}

	result, err := auditSvc.Run(ctx, AuditInput{TeamIDs: []string{testTeamID, "team-2"}})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.OKCount != 2 {
		t.Fatalf("expected both lineups healthy, got %+v", result)
	}
	if result.Tasks[0].TeamID > result.Tasks[1].TeamID {
		t.Fatalf("tasks are not sorted by team: %+v", result.Tasks)
	}
}

func TestLineupAuditService_RejectsEmptyInput(t *testing.T) {
	auditSvc := NewLineupAuditService(memory.NewRosterRepository(nil), memory.NewLineupRepository())

	if _, err := auditSvc.Run(context.Background(), AuditInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty team list, got %v", err)
	}
	if _, err := auditSvc.Run(context.Background(), AuditInput{TeamIDs: []string{" "}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank team id, got %v", err)
	}
}
