package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/dugouthq/dugout/internal/domain/lineup"
	eligibilitymock "github.com/dugouthq/dugout/internal/mocks/domain/eligibility"
	lineupmock "github.com/dugouthq/dugout/internal/mocks/domain/lineup"
	rostermock "github.com/dugouthq/dugout/internal/mocks/domain/roster"
	idgen "github.com/dugouthq/dugout/internal/platform/id"
)

func TestLineupService_Get_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rosterRepo := rostermock.NewRepository(t)
	eligibilityRepo := eligibilitymock.NewRepository(t)
	lineupRepo := lineupmock.NewRepository(t)

	service := NewLineupService(rosterRepo, eligibilityRepo, lineupRepo, idgen.NewRandomGenerator())

	lineupRepo.
		On("GetByID", mock.Anything, "team-1", "missing-lineup").
		Return(lineup.GameLineup{}, []lineup.AssignmentRow(nil), false, nil).
		Once()

	_, _, err := service.Get(ctx, "team-1", "missing-lineup")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLineupService_Get_RepoFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rosterRepo := rostermock.NewRepository(t)
	eligibilityRepo := eligibilitymock.NewRepository(t)
	lineupRepo := lineupmock.NewRepository(t)

	service := NewLineupService(rosterRepo, eligibilityRepo, lineupRepo, idgen.NewRandomGenerator())
	repoErr := errors.New("connection reset")

	lineupRepo.
		On("GetByID", mock.Anything, "team-1", "lineup-1").
		Return(lineup.GameLineup{}, []lineup.AssignmentRow(nil), false, repoErr).
		Once()

	_, _, err := service.Get(ctx, "team-1", "lineup-1")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error to propagate, got %v", err)
	}
}

func TestRosterService_Delete_RepoFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rosterRepo := rostermock.NewRepository(t)
	service := NewRosterService(rosterRepo, idgen.NewRandomGenerator())
	repoErr := errors.New("write conflict")

	rosterRepo.
		On("GetByIDs", mock.Anything, "team-1", []string{"p01"}).
		Return(testPlayers(1), nil).
		Once()
	rosterRepo.
		On("Delete", mock.Anything, "team-1", "p01").
		Return(repoErr).
		Once()

	err := service.Delete(ctx, "team-1", "p01")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error to propagate, got %v", err)
	}
}
