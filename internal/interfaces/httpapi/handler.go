package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/dugouthq/dugout/internal/usecase"
)

type Handler struct {
	rosterService      *usecase.RosterService
	eligibilityService *usecase.EligibilityService
	lineupService      *usecase.LineupService
	auditService       *usecase.LineupAuditService
	swingService       *usecase.SwingReviewService
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	rosterService *usecase.RosterService,
	eligibilityService *usecase.EligibilityService,
	lineupService *usecase.LineupService,
	auditService *usecase.LineupAuditService,
	swingService *usecase.SwingReviewService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		rosterService:      rosterService,
		eligibilityService: eligibilityService,
		lineupService:      lineupService,
		auditService:       auditService,
		swingService:       swingService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// requireTeamAccess resolves the team path parameter and checks the caller
// coaches that team.
func (h *Handler) requireTeamAccess(ctx context.Context, r *http.Request) (string, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return "", fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}

	teamID := r.PathValue("teamID")
	if teamID == "" {
		return "", fmt.Errorf("%w: team id is required", usecase.ErrInvalidInput)
	}
	if !principal.CanManageTeam(teamID) {
		return "", fmt.Errorf("%w: no access to team %s", usecase.ErrUnauthorized, teamID)
	}

	return teamID, nil
}
