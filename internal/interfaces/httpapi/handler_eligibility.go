package httpapi

import (
	"net/http"

	"github.com/dugouthq/dugout/internal/usecase"
)

type setEligibilityRequest struct {
	TeamPlayerID string `json:"team_player_id" validate:"required"`
	Position     string `json:"position" validate:"required"`
	Eligible     bool   `json:"eligible"`
}

func (h *Handler) ListEligibility(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEligibility")
	defer span.End()

	teamID, err := h.requireTeamAccess(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	flags, err := h.eligibilityService.ListByTeam(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]eligibilityFlagResponse, 0, len(flags))
	for _, f := range flags {
		items = append(items, flagToResponse(f))
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) SetEligibility(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetEligibility")
	defer span.End()

	teamID, err := h.requireTeamAccess(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req setEligibilityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	flag, err := h.eligibilityService.Set(ctx, usecase.SetEligibilityInput{
		TeamID:       teamID,
		TeamPlayerID: req.TeamPlayerID,
		Position:     req.Position,
		Eligible:     req.Eligible,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, flagToResponse(flag))
}
