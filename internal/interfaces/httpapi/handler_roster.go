package httpapi

import (
	"fmt"
	"net/http"

	"github.com/dugouthq/dugout/internal/usecase"
)

type upsertPlayerRequest struct {
	TeamPlayerID       string   `json:"team_player_id"`
	Name               string   `json:"name" validate:"required"`
	JerseyNumber       int      `json:"jersey_number" validate:"gte=0,lte=99"`
	SecondaryPositions []string `json:"secondary_positions"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	teamID, err := h.requireTeamAccess(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.rosterService.ListByTeam(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]playerResponse, 0, len(players))
	for _, p := range players {
		items = append(items, playerToResponse(p))
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) UpsertPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertPlayer")
	defer span.End()

	teamID, err := h.requireTeamAccess(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req upsertPlayerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	player, err := h.rosterService.Upsert(ctx, usecase.UpsertPlayerInput{
		TeamPlayerID:       req.TeamPlayerID,
		TeamID:             teamID,
		Name:               req.Name,
		JerseyNumber:       req.JerseyNumber,
		SecondaryPositions: req.SecondaryPositions,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if req.TeamPlayerID == "" {
		status = http.StatusCreated
	}
	writeSuccess(ctx, w, status, playerToResponse(player))
}

// UpdatePlayer is the PUT form of UpsertPlayer: the path parameter names the
// player and wins over any id in the body.
func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	teamID, err := h.requireTeamAccess(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	playerID := r.PathValue("playerID")
	if playerID == "" {
		writeError(ctx, w, fmt.Errorf("%w: player id is required", usecase.ErrInvalidInput))
		return
	}

	var req upsertPlayerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	player, err := h.rosterService.Upsert(ctx, usecase.UpsertPlayerInput{
		TeamPlayerID:       playerID,
		TeamID:             teamID,
		Name:               req.Name,
		JerseyNumber:       req.JerseyNumber,
		SecondaryPositions: req.SecondaryPositions,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToResponse(player))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	teamID, err := h.requireTeamAccess(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	playerID := r.PathValue("playerID")
	if playerID == "" {
		writeError(ctx, w, fmt.Errorf("%w: player id is required", usecase.ErrInvalidInput))
		return
	}

	if err := h.rosterService.Delete(ctx, teamID, playerID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"team_player_id": playerID, "status": "deleted"})
}
