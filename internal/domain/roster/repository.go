package roster

import "context"

// Repository exposes roster persistence operations.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	GetByIDs(ctx context.Context, teamID string, playerIDs []string) ([]Player, error)
	Upsert(ctx context.Context, player Player) error
	Delete(ctx context.Context, teamID, playerID string) error
}
