package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/dugouthq/dugout/internal/domain/lineup"
	"github.com/dugouthq/dugout/internal/domain/roster"
)

const (
	auditWorkerCount = 8

	auditStatusOK      = "ok"
	auditStatusInvalid = "invalid"
	auditStatusFailed  = "failed"
)

type AuditInput struct {
	TeamIDs []string
}

type AuditTaskResult struct {
	TeamID     string
	LineupID   string
	Status     string
	Message    string
	DurationMs int64
}

type AuditResult struct {
	Tasks        []AuditTaskResult
	OKCount      int
	InvalidCount int
	FailedCount  int
}

// LineupAuditService re-validates saved lineups against their team's current
// roster. Manual swaps cannot corrupt a lineup, but roster deletions can leave
// stored assignments referencing players who no longer exist; this job finds
// them before game day does.
type LineupAuditService struct {
	rosterRepo roster.Repository
	lineupRepo lineup.Repository
}

func NewLineupAuditService(rosterRepo roster.Repository, lineupRepo lineup.Repository) *LineupAuditService {
	return &LineupAuditService{rosterRepo: rosterRepo, lineupRepo: lineupRepo}
}

func (s *LineupAuditService) Run(ctx context.Context, input AuditInput) (AuditResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupAuditService.Run")
	defer span.End()

	teamIDs := make([]string, 0, len(input.TeamIDs))
	for _, id := range input.TeamIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return AuditResult{}, fmt.Errorf("%w: team id cannot be empty", ErrInvalidInput)
		}
		teamIDs = append(teamIDs, id)
	}
	if len(teamIDs) == 0 {
		return AuditResult{}, fmt.Errorf("%w: at least one team id is required", ErrInvalidInput)
	}

	type auditTask struct {
		teamID string
		header lineup.GameLineup
	}
	var tasks []auditTask
	rostersByTeam := make(map[string][]string, len(teamIDs))
	for _, teamID := range teamIDs {
		players, err := s.rosterRepo.ListByTeam(ctx, teamID)
		if err != nil {
			return AuditResult{}, fmt.Errorf("list players for team %s: %w", teamID, err)
		}
		ids := make([]string, 0, len(players))
		for _, p := range players {
			ids = append(ids, p.TeamPlayerID)
		}
		rostersByTeam[teamID] = ids

		headers, err := s.lineupRepo.ListByTeam(ctx, teamID)
		if err != nil {
			return AuditResult{}, fmt.Errorf("list lineups for team %s: %w", teamID, err)
		}
		for _, header := range headers {
			tasks = append(tasks, auditTask{teamID: teamID, header: header})
		}
	}

	result := AuditResult{}
	if len(tasks) == 0 {
		return result, nil
	}

	results := make(chan AuditTaskResult, len(tasks))

	var okCount atomic.Int32
	var invalidCount atomic.Int32
	var failedCount atomic.Int32

	workerPool, err := ants.NewPool(auditWorkerCount)
	if err != nil {
		return AuditResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := AuditTaskResult{TeamID: task.teamID, LineupID: task.header.ID}

			status, message := s.auditLineup(ctx, task.teamID, task.header, rostersByTeam[task.teamID])
			row.Status = status
			row.Message = message
			row.DurationMs = time.Since(start).Milliseconds()

			switch status {
			case auditStatusOK:
				okCount.Add(1)
			case auditStatusInvalid:
				invalidCount.Add(1)
			default:
				failedCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return AuditResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}

	sort.SliceStable(result.Tasks, func(i, j int) bool {
		if result.Tasks[i].TeamID != result.Tasks[j].TeamID {
			return result.Tasks[i].TeamID < result.Tasks[j].TeamID
		}
		return result.Tasks[i].LineupID < result.Tasks[j].LineupID
	})

	result.OKCount = int(okCount.Load())
	result.InvalidCount = int(invalidCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func (s *LineupAuditService) auditLineup(ctx context.Context, teamID string, header lineup.GameLineup, rosterIDs []string) (string, string) {
	_, rows, exists, err := s.lineupRepo.GetByID(ctx, teamID, header.ID)
	if err != nil {
		return auditStatusFailed, err.Error()
	}
	if !exists {
		return auditStatusFailed, "lineup disappeared during audit"
	}

	reconstructed, err := lineup.Reconstruct(header, rows)
	if err != nil {
		return auditStatusInvalid, err.Error()
	}
	if err := reconstructed.Validate(rosterIDs); err != nil {
		return auditStatusInvalid, err.Error()
	}

	return auditStatusOK, ""
}
