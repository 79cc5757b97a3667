package httpapi

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/dugouthq/dugout/internal/domain/eligibility"
	"github.com/dugouthq/dugout/internal/domain/lineup"
	"github.com/dugouthq/dugout/internal/domain/roster"
	"github.com/dugouthq/dugout/internal/usecase"
)

type playerResponse struct {
	TeamPlayerID       string   `json:"team_player_id"`
	TeamID             string   `json:"team_id"`
	Name               string   `json:"name"`
	JerseyNumber       int      `json:"jersey_number"`
	SecondaryPositions []string `json:"secondary_positions"`
}

func playerToResponse(p roster.Player) playerResponse {
	secondary := make([]string, 0, len(p.SecondaryPositions))
	for _, pos := range p.SecondaryPositions {
		secondary = append(secondary, string(pos))
	}

	return playerResponse{
		TeamPlayerID:       p.TeamPlayerID,
		TeamID:             p.TeamID,
		Name:               p.Name,
		JerseyNumber:       p.JerseyNumber,
		SecondaryPositions: secondary,
	}
}

type eligibilityFlagResponse struct {
	TeamPlayerID string `json:"team_player_id"`
	Position     string `json:"position"`
	Eligible     bool   `json:"eligible"`
}

func flagToResponse(f eligibility.Flag) eligibilityFlagResponse {
	return eligibilityFlagResponse{
		TeamPlayerID: f.TeamPlayerID,
		Position:     string(f.Position),
		Eligible:     f.Eligible,
	}
}

type gameConfigDTO struct {
	Innings            int        `json:"innings"`
	FieldPositionCount int        `json:"field_position_count"`
	PitchingType       string     `json:"pitching_type"`
	EveryoneBats       bool       `json:"everyone_bats"`
	Opponent           string     `json:"opponent,omitempty"`
	GameDate           *time.Time `json:"game_date,omitempty"`
	Seed               *int64     `json:"seed,omitempty"`
}

func configToDTO(c lineup.GameConfig) gameConfigDTO {
	return gameConfigDTO{
		Innings:            c.Innings,
		FieldPositionCount: c.FieldPositionCount,
		PitchingType:       string(c.PitchingType),
		EveryoneBats:       c.EveryoneBats,
		Opponent:           c.Opponent,
		GameDate:           c.GameDate,
		Seed:               c.Seed,
	}
}

func configFromDTO(d gameConfigDTO) lineup.GameConfig {
	return lineup.GameConfig{
		Innings:            d.Innings,
		FieldPositionCount: d.FieldPositionCount,
		PitchingType:       lineup.PitchingType(d.PitchingType),
		EveryoneBats:       d.EveryoneBats,
		Opponent:           d.Opponent,
		GameDate:           d.GameDate,
		Seed:               d.Seed,
	}
}

type battingSlotDTO struct {
	TeamPlayerID string `json:"team_player_id"`
	OrderIndex   int    `json:"order_index"`
}

type fieldSlotDTO struct {
	TeamPlayerID string `json:"team_player_id"`
	Name         string `json:"name,omitempty"`
	Position     string `json:"position"`
}

type benchSlotDTO struct {
	TeamPlayerID string `json:"team_player_id"`
	Name         string `json:"name,omitempty"`
}

type inningDTO struct {
	Field []fieldSlotDTO `json:"field"`
	Bench []benchSlotDTO `json:"bench"`
}

// generatedLineupResponse keys innings as strings ("1".."6") so the payload
// survives clients that cannot represent integer object keys.
type generatedLineupResponse struct {
	TeamID       string               `json:"team_id"`
	Config       gameConfigDTO        `json:"config"`
	BattingOrder []battingSlotDTO     `json:"batting_order"`
	Innings      map[string]inningDTO `json:"innings"`
	Notes        []string             `json:"notes"`
}

func generatedLineupToResponse(l lineup.GeneratedLineup, players []roster.Player) generatedLineupResponse {
	namesByID := make(map[string]string, len(players))
	for _, p := range players {
		namesByID[p.TeamPlayerID] = p.Name
	}

	batting := make([]battingSlotDTO, 0, len(l.BattingOrder))
	for _, slot := range l.BattingOrder {
		batting = append(batting, battingSlotDTO{
			TeamPlayerID: slot.TeamPlayerID,
			OrderIndex:   slot.OrderIndex,
		})
	}

	innings := make(map[string]inningDTO, len(l.FieldAssignments))
	for inning, slots := range l.FieldAssignments {
		entry := inningDTO{
			Field: make([]fieldSlotDTO, 0, len(slots)),
			Bench: []benchSlotDTO{},
		}
		for _, slot := range slots {
			entry.Field = append(entry.Field, fieldSlotDTO{
				TeamPlayerID: slot.TeamPlayerID,
				Name:         namesByID[slot.TeamPlayerID],
				Position:     string(slot.Position),
			})
		}
		for _, id := range l.BenchByInning[inning] {
			entry.Bench = append(entry.Bench, benchSlotDTO{
				TeamPlayerID: id,
				Name:         namesByID[id],
			})
		}
		innings[strconv.Itoa(inning)] = entry
	}

	notes := l.Notes
	if notes == nil {
		notes = []string{}
	}

	return generatedLineupResponse{
		TeamID:       l.TeamID,
		Config:       configToDTO(l.Config),
		BattingOrder: batting,
		Innings:      innings,
		Notes:        notes,
	}
}

type lineupPayload struct {
	Config       gameConfigDTO        `json:"config"`
	BattingOrder []battingSlotDTO     `json:"batting_order"`
	Innings      map[string]inningDTO `json:"innings" validate:"required"`
	Notes        []string             `json:"notes"`
}

func lineupFromPayload(teamID string, payload lineupPayload) (lineup.GeneratedLineup, error) {
	out := lineup.GeneratedLineup{
		TeamID:           teamID,
		Config:           configFromDTO(payload.Config),
		BattingOrder:     make([]lineup.BattingSlot, 0, len(payload.BattingOrder)),
		FieldAssignments: make(map[int][]lineup.FieldSlot, len(payload.Innings)),
		BenchByInning:    make(map[int][]string, len(payload.Innings)),
		Notes:            payload.Notes,
	}

	for _, slot := range payload.BattingOrder {
		out.BattingOrder = append(out.BattingOrder, lineup.BattingSlot{
			TeamPlayerID: slot.TeamPlayerID,
			OrderIndex:   slot.OrderIndex,
		})
	}

	for key, entry := range payload.Innings {
		inning, err := strconv.Atoi(key)
		if err != nil || inning < 1 {
			return lineup.GeneratedLineup{}, fmt.Errorf("%w: invalid inning key %q", usecase.ErrInvalidInput, key)
		}

		field := make([]lineup.FieldSlot, 0, len(entry.Field))
		for _, slot := range entry.Field {
			field = append(field, lineup.FieldSlot{
				TeamPlayerID: slot.TeamPlayerID,
				Position:     roster.Position(slot.Position),
			})
		}
		out.FieldAssignments[inning] = field

		bench := make([]string, 0, len(entry.Bench))
		for _, slot := range entry.Bench {
			bench = append(bench, slot.TeamPlayerID)
		}
		out.BenchByInning[inning] = bench
	}

	return out, nil
}

type lineupHeaderResponse struct {
	LineupID  string        `json:"lineup_id"`
	TeamID    string        `json:"team_id"`
	Config    gameConfigDTO `json:"config"`
	Status    string        `json:"status"`
	Notes     []string      `json:"notes"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func headerToResponse(h lineup.GameLineup) lineupHeaderResponse {
	notes := h.Notes
	if notes == nil {
		notes = []string{}
	}

	return lineupHeaderResponse{
		LineupID:  h.ID,
		TeamID:    h.TeamID,
		Config:    configToDTO(h.Config),
		Status:    string(h.Status),
		Notes:     notes,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

type auditTaskResponse struct {
	TeamID     string `json:"team_id"`
	LineupID   string `json:"lineup_id"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type auditResponse struct {
	Tasks        []auditTaskResponse `json:"tasks"`
	OKCount      int                 `json:"ok_count"`
	InvalidCount int                 `json:"invalid_count"`
	FailedCount  int                 `json:"failed_count"`
}

func auditToResponse(result usecase.AuditResult) auditResponse {
	tasks := make([]auditTaskResponse, 0, len(result.Tasks))
	for _, task := range result.Tasks {
		tasks = append(tasks, auditTaskResponse{
			TeamID:     task.TeamID,
			LineupID:   task.LineupID,
			Status:     task.Status,
			Message:    task.Message,
			DurationMs: task.DurationMs,
		})
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].TeamID != tasks[j].TeamID {
			return tasks[i].TeamID < tasks[j].TeamID
		}
		return tasks[i].LineupID < tasks[j].LineupID
	})

	return auditResponse{
		Tasks:        tasks,
		OKCount:      result.OKCount,
		InvalidCount: result.InvalidCount,
		FailedCount:  result.FailedCount,
	}
}

type swingAnalysisResponse struct {
	ClipID         string   `json:"clip_id"`
	TeamPlayerID   string   `json:"team_player_id"`
	SwingCount     int      `json:"swing_count"`
	AvgBatSpeed    float64  `json:"avg_bat_speed"`
	ContactQuality string   `json:"contact_quality"`
	Highlights     []string `json:"highlights"`
}

func swingAnalysisToResponse(a usecase.SwingAnalysis) swingAnalysisResponse {
	highlights := a.Highlights
	if highlights == nil {
		highlights = []string{}
	}

	return swingAnalysisResponse{
		ClipID:         a.ClipID,
		TeamPlayerID:   a.TeamPlayerID,
		SwingCount:     a.SwingCount,
		AvgBatSpeed:    a.AvgBatSpeed,
		ContactQuality: a.ContactQuality,
		Highlights:     highlights,
	}
}
