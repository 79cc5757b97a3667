package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/dugouthq/dugout/internal/domain/lineup"
	qb "github.com/dugouthq/dugout/internal/platform/querybuilder"
)

type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

func (r *LineupRepository) GetByID(ctx context.Context, teamID, lineupID string) (lineup.GameLineup, []lineup.AssignmentRow, bool, error) {
	query, args, err := lineupBaseSelectBuilder().
		Where(
			qb.Eq("team_id", teamID),
			qb.Eq("public_id", lineupID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return lineup.GameLineup{}, nil, false, fmt.Errorf("build get lineup query: %w", err)
	}

	var headerRow lineupTableModel
	if err := r.db.GetContext(ctx, &headerRow, query, args...); err != nil {
		if isNotFound(err) {
			return lineup.GameLineup{}, nil, false, nil
		}
		return lineup.GameLineup{}, nil, false, fmt.Errorf("get lineup: %w", err)
	}

	rowsQuery, rowsArgs, err := qb.Select("*").From("lineup_assignments").
		Where(qb.Eq("lineup_public_id", lineupID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return lineup.GameLineup{}, nil, false, fmt.Errorf("build list assignments query: %w", err)
	}

	var assignmentRows []assignmentTableModel
	if err := r.db.SelectContext(ctx, &assignmentRows, rowsQuery, rowsArgs...); err != nil {
		return lineup.GameLineup{}, nil, false, fmt.Errorf("list lineup assignments: %w", err)
	}

	out := make([]lineup.AssignmentRow, 0, len(assignmentRows))
	for _, row := range assignmentRows {
		out = append(out, assignmentFromRow(row))
	}

	return lineupFromRow(headerRow), out, true, nil
}

func (r *LineupRepository) ListByTeam(ctx context.Context, teamID string) ([]lineup.GameLineup, error) {
	query, args, err := lineupBaseSelectBuilder().
		Where(
			qb.Eq("team_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list lineups query: %w", err)
	}

	var rows []lineupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list lineups by team: %w", err)
	}

	out := make([]lineup.GameLineup, 0, len(rows))
	for _, row := range rows {
		out = append(out, lineupFromRow(row))
	}
	return out, nil
}

// Save writes the header and replaces the full assignment row set in one
// transaction. Readers never observe a lineup with a partial inning grid.
func (r *LineupRepository) Save(ctx context.Context, header lineup.GameLineup, rows []lineup.AssignmentRow) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for lineup save: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const upsertHeaderQuery = `
INSERT INTO game_lineups (
    public_id, team_id, innings, field_position_count, pitching_type,
    everyone_bats, opponent, game_date, seed, status, notes
) VALUES (
    :public_id, :team_id, :innings, :field_position_count, :pitching_type,
    :everyone_bats, :opponent, :game_date, :seed, :status, :notes
)
ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    status = EXCLUDED.status,
    notes = EXCLUDED.notes,
    updated_at = NOW(),
    deleted_at = NULL
RETURNING updated_at`

	headerArgs := map[string]any{
		"public_id":            header.ID,
		"team_id":              header.TeamID,
		"innings":              header.Config.Innings,
		"field_position_count": header.Config.FieldPositionCount,
		"pitching_type":        string(header.Config.PitchingType),
		"everyone_bats":        header.Config.EveryoneBats,
		"opponent":             header.Config.Opponent,
		"game_date":            header.Config.GameDate,
		"seed":                 header.Config.Seed,
		"status":               string(header.Status),
		"notes":                pq.StringArray(header.Notes),
	}
	headerSQL, headerSQLArgs, err := sqlx.Named(upsertHeaderQuery, headerArgs)
	if err != nil {
		return fmt.Errorf("bind upsert lineup header query: %w", err)
	}
	headerSQL = tx.Rebind(headerSQL)

	headerRows, err := tx.QueryxContext(ctx, headerSQL, headerSQLArgs...)
	if err != nil {
		return fmt.Errorf("upsert lineup header: %w", err)
	}
	defer headerRows.Close()
	var updatedAt time.Time
	if headerRows.Next() {
		if err := headerRows.Scan(&updatedAt); err != nil {
			return fmt.Errorf("scan upserted lineup header: %w", err)
		}
	} else {
		return fmt.Errorf("upsert lineup header: no row returned")
	}
	if err := headerRows.Close(); err != nil {
		return fmt.Errorf("close lineup header rows: %w", err)
	}

	clearSQL, clearArgs, err := qb.DeleteFrom("lineup_assignments").
		Where(qb.Eq("lineup_public_id", header.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear assignments query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearSQL, clearArgs...); err != nil {
		return fmt.Errorf("clear existing lineup assignments: %w", err)
	}

	if len(rows) > 0 {
		builder := qb.InsertInto("lineup_assignments").
			Columns("lineup_public_id", "team_player_id", "inning", "position", "batting_order")
		for _, row := range rows {
			builder.Values(header.ID, row.TeamPlayerID, row.Inning, string(row.Position), row.BattingOrder)
		}
		insertSQL, insertArgs, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert assignments query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("insert lineup assignments: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit lineup save tx: %w", err)
	}

	return nil
}

func (r *LineupRepository) Delete(ctx context.Context, teamID, lineupID string) (bool, error) {
	query, args, err := qb.Update("game_lineups").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("team_id", teamID),
			qb.Eq("public_id", lineupID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build lineup delete query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("soft delete lineup: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read delete lineup result: %w", err)
	}

	return affected > 0, nil
}

func lineupBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("game_lineups")
}
