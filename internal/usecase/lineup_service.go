package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/dugouthq/dugout/internal/domain/eligibility"
	"github.com/dugouthq/dugout/internal/domain/lineup"
	"github.com/dugouthq/dugout/internal/domain/roster"
	"github.com/dugouthq/dugout/internal/platform/id"
)

type GenerateLineupInput struct {
	TeamID             string
	Innings            int
	FieldPositionCount int
	PitchingType       string
	EveryoneBats       bool
	Opponent           string
	GameDate           *time.Time
	Seed               *int64
}

type SaveLineupInput struct {
	TeamID string
	Lineup lineup.GeneratedLineup
	Status string
}

type ApplySwapInput struct {
	TeamID        string
	LineupID      string
	Inning        int
	TeamPlayerIDA string
	TeamPlayerIDB string
}

// LineupService is the orchestration layer over the pure generator: it loads
// the team context, runs generation and swaps, and persists accepted lineups.
type LineupService struct {
	rosterRepo      roster.Repository
	eligibilityRepo eligibility.Repository
	lineupRepo      lineup.Repository
	idGen           id.Generator
	now             func() time.Time
}

func NewLineupService(
	rosterRepo roster.Repository,
	eligibilityRepo eligibility.Repository,
	lineupRepo lineup.Repository,
	idGen id.Generator,
) *LineupService {
	return &LineupService{
		rosterRepo:      rosterRepo,
		eligibilityRepo: eligibilityRepo,
		lineupRepo:      lineupRepo,
		idGen:           idGen,
		now:             time.Now,
	}
}

func (s *LineupService) buildConfig(input GenerateLineupInput) (lineup.GameConfig, error) {
	cfg := lineup.GameConfig{
		Innings:            input.Innings,
		FieldPositionCount: input.FieldPositionCount,
		PitchingType:       lineup.PitchingType(strings.ToLower(strings.TrimSpace(input.PitchingType))),
		EveryoneBats:       input.EveryoneBats,
		Opponent:           strings.TrimSpace(input.Opponent),
		GameDate:           input.GameDate,
		Seed:               input.Seed,
	}
	if err := cfg.Validate(); err != nil {
		return lineup.GameConfig{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return cfg, nil
}

// loadTeamContext fetches the roster and eligibility flags in parallel.
func (s *LineupService) loadTeamContext(ctx context.Context, teamID string) ([]roster.Player, []eligibility.Flag, error) {
	var (
		players []roster.Player
		flags   []eligibility.Flag
	)

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		loaded, err := s.rosterRepo.ListByTeam(ctx, teamID)
		if err != nil {
			return fmt.Errorf("list players by team: %w", err)
		}
		players = loaded
		return nil
	})
	p.Go(func(ctx context.Context) error {
		loaded, err := s.eligibilityRepo.ListByTeam(ctx, teamID)
		if err != nil {
			return fmt.Errorf("list eligibility flags: %w", err)
		}
		flags = loaded
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, nil, err
	}

	return players, flags, nil
}

func (s *LineupService) Generate(ctx context.Context, input GenerateLineupInput) (lineup.GeneratedLineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Generate")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	if input.TeamID == "" {
		return lineup.GeneratedLineup{}, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}
	cfg, err := s.buildConfig(input)
	if err != nil {
		return lineup.GeneratedLineup{}, err
	}

	players, flags, err := s.loadTeamContext(ctx, input.TeamID)
	if err != nil {
		return lineup.GeneratedLineup{}, err
	}
	if len(players) == 0 {
		return lineup.GeneratedLineup{}, fmt.Errorf("%w: team=%s has no roster", ErrNotFound, input.TeamID)
	}

	resolver := eligibility.NewResolver(flags, eligibility.GatedPositions(cfg.PlayerPitch()))
	generated, err := lineup.Generate(players, resolver, cfg)
	if err != nil {
		return lineup.GeneratedLineup{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return generated, nil
}

func (s *LineupService) Save(ctx context.Context, input SaveLineupInput) (lineup.GameLineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Save")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	if input.TeamID == "" {
		return lineup.GameLineup{}, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}
	status := lineup.Status(strings.ToLower(strings.TrimSpace(input.Status)))
	if status == "" {
		status = lineup.StatusDraft
	}
	if status != lineup.StatusDraft && status != lineup.StatusFinal {
		return lineup.GameLineup{}, fmt.Errorf("%w: invalid status %s", ErrInvalidInput, input.Status)
	}
	if err := input.Lineup.Config.Validate(); err != nil {
		return lineup.GameLineup{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	players, err := s.rosterRepo.ListByTeam(ctx, input.TeamID)
	if err != nil {
		return lineup.GameLineup{}, fmt.Errorf("list players by team: %w", err)
	}
	rosterIDs := make([]string, 0, len(players))
	for _, p := range players {
		rosterIDs = append(rosterIDs, p.TeamPlayerID)
	}
	if err := input.Lineup.Validate(rosterIDs); err != nil {
		return lineup.GameLineup{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return lineup.GameLineup{}, fmt.Errorf("generate lineup id: %w", err)
	}

	now := s.now().UTC()
	header := lineup.GameLineup{
		ID:        newID,
		TeamID:    input.TeamID,
		Config:    input.Lineup.Config,
		Status:    status,
		Notes:     input.Lineup.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.lineupRepo.Save(ctx, header, lineup.Flatten(input.Lineup)); err != nil {
		return lineup.GameLineup{}, fmt.Errorf("save lineup: %w", err)
	}

	return header, nil
}

func (s *LineupService) Get(ctx context.Context, teamID, lineupID string) (lineup.GameLineup, lineup.GeneratedLineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Get")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	lineupID = strings.TrimSpace(lineupID)
	if teamID == "" || lineupID == "" {
		return lineup.GameLineup{}, lineup.GeneratedLineup{}, fmt.Errorf("%w: team_id and lineup_id are required", ErrInvalidInput)
	}

	header, rows, exists, err := s.lineupRepo.GetByID(ctx, teamID, lineupID)
	if err != nil {
		return lineup.GameLineup{}, lineup.GeneratedLineup{}, fmt.Errorf("get lineup by id: %w", err)
	}
	if !exists {
		return lineup.GameLineup{}, lineup.GeneratedLineup{}, fmt.Errorf("%w: lineup=%s", ErrNotFound, lineupID)
	}

	reconstructed, err := lineup.Reconstruct(header, rows)
	if err != nil {
		return lineup.GameLineup{}, lineup.GeneratedLineup{}, fmt.Errorf("reconstruct lineup %s: %w", lineupID, err)
	}

	return header, reconstructed, nil
}

func (s *LineupService) ListByTeam(ctx context.Context, teamID string) ([]lineup.GameLineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	headers, err := s.lineupRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list lineups by team: %w", err)
	}

	return headers, nil
}

// ApplySwap loads a saved lineup, applies one manual exchange and persists the
// result under the same ID.
func (s *LineupService) ApplySwap(ctx context.Context, input ApplySwapInput) (lineup.GeneratedLineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.ApplySwap")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	input.LineupID = strings.TrimSpace(input.LineupID)
	if input.TeamID == "" || input.LineupID == "" {
		return lineup.GeneratedLineup{}, fmt.Errorf("%w: team_id and lineup_id are required", ErrInvalidInput)
	}

	header, current, err := s.Get(ctx, input.TeamID, input.LineupID)
	if err != nil {
		return lineup.GeneratedLineup{}, err
	}
	if header.Status == lineup.StatusFinal {
		return lineup.GeneratedLineup{}, fmt.Errorf("%w: lineup %s is finalized", ErrInvalidInput, input.LineupID)
	}

	swapped, err := lineup.Swap(current, lineup.SwapRequest{
		Inning:        input.Inning,
		TeamPlayerIDA: strings.TrimSpace(input.TeamPlayerIDA),
		TeamPlayerIDB: strings.TrimSpace(input.TeamPlayerIDB),
	})
	if err != nil {
		// An invalid target never corrupts or fails the lineup: the stored
		// state is returned untouched and the caller decides how to surface it.
		if errors.Is(err, lineup.ErrInvalidSwapTarget) {
			return current, err
		}
		return lineup.GeneratedLineup{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	header.UpdatedAt = s.now().UTC()
	if err := s.lineupRepo.Save(ctx, header, lineup.Flatten(swapped)); err != nil {
		return lineup.GeneratedLineup{}, fmt.Errorf("save swapped lineup: %w", err)
	}

	return swapped, nil
}

func (s *LineupService) Finalize(ctx context.Context, teamID, lineupID string) (lineup.GameLineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Finalize")
	defer span.End()

	header, current, err := s.Get(ctx, teamID, lineupID)
	if err != nil {
		return lineup.GameLineup{}, err
	}
	if header.Status == lineup.StatusFinal {
		return header, nil
	}

	header.Status = lineup.StatusFinal
	header.UpdatedAt = s.now().UTC()
	if err := s.lineupRepo.Save(ctx, header, lineup.Flatten(current)); err != nil {
		return lineup.GameLineup{}, fmt.Errorf("finalize lineup: %w", err)
	}

	return header, nil
}

func (s *LineupService) Delete(ctx context.Context, teamID, lineupID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Delete")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	lineupID = strings.TrimSpace(lineupID)
	if teamID == "" || lineupID == "" {
		return fmt.Errorf("%w: team_id and lineup_id are required", ErrInvalidInput)
	}

	deleted, err := s.lineupRepo.Delete(ctx, teamID, lineupID)
	if err != nil {
		return fmt.Errorf("delete lineup: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: lineup=%s", ErrNotFound, lineupID)
	}

	return nil
}
