package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dugouthq/dugout/internal/domain/lineup"
	"github.com/dugouthq/dugout/internal/usecase"
)

type generateLineupRequest struct {
	Innings            int    `json:"innings" validate:"required,gte=4,lte=6"`
	FieldPositionCount int    `json:"field_position_count" validate:"required,gte=9,lte=11"`
	PitchingType       string `json:"pitching_type" validate:"required"`
	EveryoneBats       bool   `json:"everyone_bats"`
	Opponent           string `json:"opponent"`
	GameDate           string `json:"game_date"`
	Seed               *int64 `json:"seed"`
}

type saveLineupRequest struct {
	Lineup lineupPayload `json:"lineup" validate:"required"`
	Status string        `json:"status"`
}

type applySwapRequest struct {
	Inning        int    `json:"inning" validate:"required,gte=1"`
	TeamPlayerIDA string `json:"team_player_id_a" validate:"required"`
	TeamPlayerIDB string `json:"team_player_id_b" validate:"required"`
}

func (h *Handler) GenerateLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GenerateLineup")
	defer span.End()

	teamID, err := h.requireTeamAccess(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req generateLineupRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	var gameDate *time.Time
	if req.GameDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.GameDate)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: game_date must be RFC 3339: %v", usecase.ErrInvalidInput, err))
			return
		}
		gameDate = &parsed
	}

	generated, err := h.lineupService.Generate(ctx, usecase.GenerateLineupInput{
		TeamID:             teamID,
		Innings:            req.Innings,
		FieldPositionCount: req.FieldPositionCount,
		PitchingType:       req.PitchingType,
		EveryoneBats:       req.EveryoneBats,
		Opponent:           req.Opponent,
		GameDate:           gameDate,
		Seed:               req.Seed,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.rosterService.ListByTeam(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, generatedLineupToResponse(generated, players))
}

func (h *Handler) SaveLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveLineup")
	defer span.End()

	teamID, err := h.requireTeamAccess(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req saveLineupRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	parsed, err := lineupFromPayload(teamID, req.Lineup)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	header, err := h.lineupService.Save(ctx, usecase.SaveLineupInput{
		TeamID: teamID,
		Lineup: parsed,
		Status: req.Status,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, headerToResponse(header))
}

func (h *Handler) ListLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLineups")
	defer span.End()

	teamID, err := h.requireTeamAccess(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	headers, err := h.lineupService.ListByTeam(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]lineupHeaderResponse, 0, len(headers))
	for _, header := range headers {
		items = append(items, headerToResponse(header))
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) GetLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineup")
	defer span.End()

	teamID, err := h.requireTeamAccess(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	header, detail, err := h.lineupService.Get(ctx, teamID, r.PathValue("lineupID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.rosterService.ListByTeam(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"header": headerToResponse(header),
		"lineup": generatedLineupToResponse(detail, players),
	})
}

func (h *Handler) ApplySwap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplySwap")
	defer span.End()

	teamID, err := h.requireTeamAccess(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req applySwapRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	swapped, err := h.lineupService.ApplySwap(ctx, usecase.ApplySwapInput{
		TeamID:        teamID,
		LineupID:      r.PathValue("lineupID"),
		Inning:        req.Inning,
		TeamPlayerIDA: req.TeamPlayerIDA,
		TeamPlayerIDB: req.TeamPlayerIDB,
	})
	if err != nil {
		// A bad target is advisory: the unchanged lineup comes back as data.
		if !errors.Is(err, lineup.ErrInvalidSwapTarget) {
			writeError(ctx, w, err)
			return
		}
		h.logger.WarnContext(ctx, "swap target not in inning",
			"lineup_id", r.PathValue("lineupID"),
			"inning", req.Inning,
			"error", err,
		)
	}

	players, err := h.rosterService.ListByTeam(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, generatedLineupToResponse(swapped, players))
}

func (h *Handler) FinalizeLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinalizeLineup")
	defer span.End()

	teamID, err := h.requireTeamAccess(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	header, err := h.lineupService.Finalize(ctx, teamID, r.PathValue("lineupID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, headerToResponse(header))
}

func (h *Handler) DeleteLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteLineup")
	defer span.End()

	teamID, err := h.requireTeamAccess(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	lineupID := r.PathValue("lineupID")
	if err := h.lineupService.Delete(ctx, teamID, lineupID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"lineup_id": lineupID, "status": "deleted"})
}
