package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/dugouthq/dugout/internal/domain/roster"
	"github.com/dugouthq/dugout/internal/platform/id"
)

type UpsertPlayerInput struct {
	TeamPlayerID       string
	TeamID             string
	Name               string
	JerseyNumber       int
	SecondaryPositions []string
}

// RosterService manages the season-long player list a team draws lineups from.
type RosterService struct {
	rosterRepo roster.Repository
	idGen      id.Generator
}

func NewRosterService(rosterRepo roster.Repository, idGen id.Generator) *RosterService {
	return &RosterService{rosterRepo: rosterRepo, idGen: idGen}
}

func (s *RosterService) ListByTeam(ctx context.Context, teamID string) ([]roster.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	players, err := s.rosterRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	return players, nil
}

func (s *RosterService) Upsert(ctx context.Context, input UpsertPlayerInput) (roster.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Upsert")
	defer span.End()

	input.TeamPlayerID = strings.TrimSpace(input.TeamPlayerID)
	input.TeamID = strings.TrimSpace(input.TeamID)
	input.Name = strings.TrimSpace(input.Name)

	if input.TeamPlayerID == "" {
		newID, err := s.idGen.NewID()
		if err != nil {
			return roster.Player{}, fmt.Errorf("generate player id: %w", err)
		}
		input.TeamPlayerID = newID
	}

	secondary := make([]roster.Position, 0, len(input.SecondaryPositions))
	for _, raw := range input.SecondaryPositions {
		secondary = append(secondary, roster.Position(strings.ToUpper(strings.TrimSpace(raw))))
	}

	player := roster.Player{
		TeamPlayerID:       input.TeamPlayerID,
		TeamID:             input.TeamID,
		Name:               input.Name,
		JerseyNumber:       input.JerseyNumber,
		SecondaryPositions: secondary,
	}
	if err := player.Validate(); err != nil {
		return roster.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.rosterRepo.Upsert(ctx, player); err != nil {
		return roster.Player{}, fmt.Errorf("upsert player: %w", err)
	}

	return player, nil
}

func (s *RosterService) Delete(ctx context.Context, teamID, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Delete")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	playerID = strings.TrimSpace(playerID)
	if teamID == "" || playerID == "" {
		return fmt.Errorf("%w: team_id and player_id are required", ErrInvalidInput)
	}

	players, err := s.rosterRepo.GetByIDs(ctx, teamID, []string{playerID})
	if err != nil {
		return fmt.Errorf("get player before delete: %w", err)
	}
	if len(players) == 0 {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	if err := s.rosterRepo.Delete(ctx, teamID, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	return nil
}
