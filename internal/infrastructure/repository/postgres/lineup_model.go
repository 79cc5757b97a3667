package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/dugouthq/dugout/internal/domain/lineup"
	"github.com/dugouthq/dugout/internal/domain/roster"
)

type lineupTableModel struct {
	ID                 int64          `db:"id"`
	PublicID           string         `db:"public_id"`
	TeamID             string         `db:"team_id"`
	Innings            int            `db:"innings"`
	FieldPositionCount int            `db:"field_position_count"`
	PitchingType       string         `db:"pitching_type"`
	EveryoneBats       bool           `db:"everyone_bats"`
	Opponent           string         `db:"opponent"`
	GameDate           *time.Time     `db:"game_date"`
	Seed               *int64         `db:"seed"`
	Status             string         `db:"status"`
	Notes              pq.StringArray `db:"notes"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
	DeletedAt          *time.Time     `db:"deleted_at"`
}

type assignmentTableModel struct {
	ID             int64  `db:"id"`
	LineupPublicID string `db:"lineup_public_id"`
	TeamPlayerID   string `db:"team_player_id"`
	Inning         int    `db:"inning"`
	Position       string `db:"position"`
	BattingOrder   *int   `db:"batting_order"`
}

func lineupFromRow(row lineupTableModel) lineup.GameLineup {
	return lineup.GameLineup{
		ID:     row.PublicID,
		TeamID: row.TeamID,
		Config: lineup.GameConfig{
			Innings:            row.Innings,
			FieldPositionCount: row.FieldPositionCount,
			PitchingType:       lineup.PitchingType(row.PitchingType),
			EveryoneBats:       row.EveryoneBats,
			Opponent:           row.Opponent,
			GameDate:           row.GameDate,
			Seed:               row.Seed,
		},
		Status:    lineup.Status(row.Status),
		Notes:     append([]string(nil), row.Notes...),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func assignmentFromRow(row assignmentTableModel) lineup.AssignmentRow {
	out := lineup.AssignmentRow{
		TeamPlayerID: row.TeamPlayerID,
		Inning:       row.Inning,
		Position:     roster.Position(row.Position),
	}
	if row.BattingOrder != nil {
		v := *row.BattingOrder
		out.BattingOrder = &v
	}
	return out
}
