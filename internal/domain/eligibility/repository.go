package eligibility

import "context"

// Repository exposes eligibility flag persistence operations.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Flag, error)
	Set(ctx context.Context, teamID string, flag Flag) error
}
