package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/dugouthq/dugout/internal/domain/eligibility"
	"github.com/dugouthq/dugout/internal/domain/roster"
)

type SetEligibilityInput struct {
	TeamID       string
	TeamPlayerID string
	Position     string
	Eligible     bool
}

// EligibilityService maintains the per-team key-position opt-in flags.
type EligibilityService struct {
	eligibilityRepo eligibility.Repository
	rosterRepo      roster.Repository
}

func NewEligibilityService(eligibilityRepo eligibility.Repository, rosterRepo roster.Repository) *EligibilityService {
	return &EligibilityService{eligibilityRepo: eligibilityRepo, rosterRepo: rosterRepo}
}

func (s *EligibilityService) ListByTeam(ctx context.Context, teamID string) ([]eligibility.Flag, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EligibilityService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	flags, err := s.eligibilityRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list eligibility flags: %w", err)
	}

	return flags, nil
}

func (s *EligibilityService) Set(ctx context.Context, input SetEligibilityInput) (eligibility.Flag, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EligibilityService.Set")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	input.TeamPlayerID = strings.TrimSpace(input.TeamPlayerID)
	if input.TeamID == "" {
		return eligibility.Flag{}, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	flag := eligibility.Flag{
		TeamPlayerID: input.TeamPlayerID,
		Position:     roster.Position(strings.ToUpper(strings.TrimSpace(input.Position))),
		Eligible:     input.Eligible,
	}
	if err := flag.Validate(); err != nil {
		return eligibility.Flag{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	players, err := s.rosterRepo.GetByIDs(ctx, input.TeamID, []string{input.TeamPlayerID})
	if err != nil {
		return eligibility.Flag{}, fmt.Errorf("get player for eligibility flag: %w", err)
	}
	if len(players) == 0 {
		return eligibility.Flag{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.TeamPlayerID)
	}

	if err := s.eligibilityRepo.Set(ctx, input.TeamID, flag); err != nil {
		return eligibility.Flag{}, fmt.Errorf("set eligibility flag: %w", err)
	}

	return flag, nil
}
