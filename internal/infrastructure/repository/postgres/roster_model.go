package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/dugouthq/dugout/internal/domain/roster"
)

type playerTableModel struct {
	ID                 int64          `db:"id"`
	TeamPlayerID       string         `db:"team_player_id"`
	TeamID             string         `db:"team_id"`
	Name               string         `db:"name"`
	JerseyNumber       int            `db:"jersey_number"`
	SecondaryPositions pq.StringArray `db:"secondary_positions"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
	DeletedAt          *time.Time     `db:"deleted_at"`
}

type playerInsertModel struct {
	TeamPlayerID       string         `db:"team_player_id"`
	TeamID             string         `db:"team_id"`
	Name               string         `db:"name"`
	JerseyNumber       int            `db:"jersey_number"`
	SecondaryPositions pq.StringArray `db:"secondary_positions"`
}

func playerFromRow(row playerTableModel) roster.Player {
	secondary := make([]roster.Position, 0, len(row.SecondaryPositions))
	for _, pos := range row.SecondaryPositions {
		secondary = append(secondary, roster.Position(pos))
	}

	return roster.Player{
		TeamPlayerID:       row.TeamPlayerID,
		TeamID:             row.TeamID,
		Name:               row.Name,
		JerseyNumber:       row.JerseyNumber,
		SecondaryPositions: secondary,
	}
}

func playerToInsertModel(p roster.Player) playerInsertModel {
	secondary := make(pq.StringArray, 0, len(p.SecondaryPositions))
	for _, pos := range p.SecondaryPositions {
		secondary = append(secondary, string(pos))
	}

	return playerInsertModel{
		TeamPlayerID:       p.TeamPlayerID,
		TeamID:             p.TeamID,
		Name:               p.Name,
		JerseyNumber:       p.JerseyNumber,
		SecondaryPositions: secondary,
	}
}
