package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/dugouthq/dugout/internal/infrastructure/repository/memory"
	idgen "github.com/dugouthq/dugout/internal/platform/id"
)

func newRosterServiceFixture() *RosterService {
	return NewRosterService(memory.NewRosterRepository(testPlayers(3)), idgen.NewRandomGenerator())
}

func TestRosterService_UpsertGeneratesID(t *testing.T) {
	svc := newRosterServiceFixture()

	player, err := svc.Upsert(context.Background(), UpsertPlayerInput{
		TeamID:       testTeamID,
		Name:         "Casey Alvarez",
		JerseyNumber: 12,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if player.TeamPlayerID == "" {
		t.Fatalf("expected a generated team player id")
	}

	players, err := svc.ListByTeam(context.Background(), testTeamID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(players) != 4 {
		t.Fatalf("expected 4 players after upsert, got %d", len(players))
	}
}

func TestRosterService_UpsertUpdatesExisting(t *testing.T) {
	svc := newRosterServiceFixture()

	updated, err := svc.Upsert(context.Background(), UpsertPlayerInput{
		TeamPlayerID:       "p02",
		TeamID:             testTeamID,
		Name:               "Renamed Player",
		JerseyNumber:       42,
		SecondaryPositions: []string{"ss", " 2b "},
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if updated.SecondaryPositions[0] != "SS" || updated.SecondaryPositions[1] != "2B" {
		t.Fatalf("expected normalized secondary positions, got %v", updated.SecondaryPositions)
	}

	players, err := svc.ListByTeam(context.Background(), testTeamID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("expected update in place, got %d players", len(players))
	}
	for _, p := range players {
		if p.TeamPlayerID == "p02" && p.Name != "Renamed Player" {
			t.Fatalf("expected p02 renamed, got %q", p.Name)
		}
	}
}

func TestRosterService_UpsertRejectsBadInput(t *testing.T) {
	svc := newRosterServiceFixture()
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, UpsertPlayerInput{TeamID: testTeamID, JerseyNumber: 7}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
	}
	if _, err := svc.Upsert(ctx, UpsertPlayerInput{TeamID: testTeamID, Name: "Jo", JerseyNumber: 120}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for jersey 120, got %v", err)
	}
	if _, err := svc.Upsert(ctx, UpsertPlayerInput{TeamID: testTeamID, Name: "Jo", SecondaryPositions: []string{"DH"}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown secondary position, got %v", err)
	}
}

func TestRosterService_DeleteMissingPlayer(t *testing.T) {
	svc := newRosterServiceFixture()

	err := svc.Delete(context.Background(), testTeamID, "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRosterService_DeleteRemovesPlayer(t *testing.T) {
	svc := newRosterServiceFixture()
	ctx := context.Background()

	if err := svc.Delete(ctx, testTeamID, "p01"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	players, err := svc.ListByTeam(ctx, testTeamID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, p := range players {
		if p.TeamPlayerID == "p01" {
			t.Fatalf("p01 still present after delete")
		}
	}
}
