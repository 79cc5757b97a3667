package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dugouthq/dugout/internal/domain/eligibility"
	"github.com/dugouthq/dugout/internal/domain/roster"
	qb "github.com/dugouthq/dugout/internal/platform/querybuilder"
)

type eligibilityTableModel struct {
	ID           int64      `db:"id"`
	TeamID       string     `db:"team_id"`
	TeamPlayerID string     `db:"team_player_id"`
	Position     string     `db:"position"`
	Eligible     bool       `db:"eligible"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type eligibilityInsertModel struct {
	TeamID       string `db:"team_id"`
	TeamPlayerID string `db:"team_player_id"`
	Position     string `db:"position"`
	Eligible     bool   `db:"eligible"`
}

type EligibilityRepository struct {
	db *sqlx.DB
}

func NewEligibilityRepository(db *sqlx.DB) *EligibilityRepository {
	return &EligibilityRepository{db: db}
}

func (r *EligibilityRepository) ListByTeam(ctx context.Context, teamID string) ([]eligibility.Flag, error) {
	query, args, err := qb.Select("*").From("eligibility_flags").
		Where(
			qb.Eq("team_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list eligibility flags query: %w", err)
	}

	var rows []eligibilityTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list eligibility flags: %w", err)
	}

	out := make([]eligibility.Flag, 0, len(rows))
	for _, row := range rows {
		out = append(out, eligibility.Flag{
			TeamPlayerID: row.TeamPlayerID,
			Position:     roster.Position(row.Position),
			Eligible:     row.Eligible,
		})
	}
	return out, nil
}

func (r *EligibilityRepository) Set(ctx context.Context, teamID string, flag eligibility.Flag) error {
	insertModel := eligibilityInsertModel{
		TeamID:       teamID,
		TeamPlayerID: flag.TeamPlayerID,
		Position:     string(flag.Position),
		Eligible:     flag.Eligible,
	}

	query, args, err := qb.InsertModel("eligibility_flags", insertModel, `ON CONFLICT (team_id, team_player_id, position) WHERE deleted_at IS NULL
DO UPDATE SET
    eligible = EXCLUDED.eligible,
    deleted_at = NULL
RETURNING updated_at`)
	if err != nil {
		return fmt.Errorf("build eligibility flag upsert query: %w", err)
	}

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("upsert eligibility flag: %w", err)
	}
	defer rows.Close()

	var updatedAt time.Time
	if rows.Next() {
		if err := rows.Scan(&updatedAt); err != nil {
			return fmt.Errorf("scan eligibility flag updated_at: %w", err)
		}
		return nil
	}

	return fmt.Errorf("upsert eligibility flag: no row returned")
}
