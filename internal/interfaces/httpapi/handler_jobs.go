package httpapi

import (
	"net/http"

	"github.com/dugouthq/dugout/internal/usecase"
)

type auditLineupsRequest struct {
	TeamIDs []string `json:"team_ids" validate:"required,min=1,dive,required"`
}

// AuditLineups is the internal batch job entry point; it is guarded by
// RequireInternalJobToken rather than user auth.
func (h *Handler) AuditLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AuditLineups")
	defer span.End()

	var req auditLineupsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.auditService.Run(ctx, usecase.AuditInput{TeamIDs: req.TeamIDs})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auditToResponse(result))
}
