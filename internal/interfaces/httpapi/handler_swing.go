package httpapi

import (
	"net/http"

	"github.com/dugouthq/dugout/internal/usecase"
)

type analyzeSwingRequest struct {
	TeamPlayerID string `json:"team_player_id" validate:"required"`
	ClipURL      string `json:"clip_url" validate:"required,url"`
}

func (h *Handler) AnalyzeSwing(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AnalyzeSwing")
	defer span.End()

	teamID, err := h.requireTeamAccess(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req analyzeSwingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	analysis, err := h.swingService.Analyze(ctx, usecase.AnalyzeSwingInput{
		TeamID:       teamID,
		TeamPlayerID: req.TeamPlayerID,
		ClipURL:      req.ClipURL,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, swingAnalysisToResponse(analysis))
}
