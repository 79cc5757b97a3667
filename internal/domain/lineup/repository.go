package lineup

import "context"

// Repository exposes lineup persistence operations. Save writes the header
// and its full assignment row set atomically; a partial lineup is never
// visible to readers.
type Repository interface {
	GetByID(ctx context.Context, teamID, lineupID string) (GameLineup, []AssignmentRow, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]GameLineup, error)
	Save(ctx context.Context, header GameLineup, rows []AssignmentRow) error
	Delete(ctx context.Context, teamID, lineupID string) (bool, error)
}
