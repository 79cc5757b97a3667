package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/dugouthq/dugout/internal/domain/eligibility"
	"github.com/dugouthq/dugout/internal/domain/roster"
	"github.com/dugouthq/dugout/internal/domain/user"
	"github.com/dugouthq/dugout/internal/infrastructure/repository/memory"
	idgen "github.com/dugouthq/dugout/internal/platform/id"
	"github.com/dugouthq/dugout/internal/usecase"
)

const (
	testJobToken = "job-secret"
	coachToken   = "coach-token"
)

type staticVerifier struct {
	principals map[string]user.Principal
}

func (v staticVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	p, ok := v.principals[token]
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	return p, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	players := make([]roster.Player, 0, 11)
	for i := 1; i <= 11; i++ {
		players = append(players, roster.Player{
			TeamPlayerID: fmt.Sprintf("p%02d", i),
			TeamID:       "team-1",
			Name:         fmt.Sprintf("Player %02d", i),
			JerseyNumber: i,
		})
	}
	flags := map[string][]eligibility.Flag{
		"team-1": {
			{TeamPlayerID: "p03", Position: roster.PositionCatcher, Eligible: true},
			{TeamPlayerID: "p01", Position: roster.PositionFirstBase, Eligible: true},
		},
	}

	rosterRepo := memory.NewRosterRepository(players)
	eligibilityRepo := memory.NewEligibilityRepository(flags)
	lineupRepo := memory.NewLineupRepository()
	idGen := idgen.NewRandomGenerator()

	handler := NewHandler(
		usecase.NewRosterService(rosterRepo, idGen),
		usecase.NewEligibilityService(eligibilityRepo, rosterRepo),
		usecase.NewLineupService(rosterRepo, eligibilityRepo, lineupRepo, idGen),
		usecase.NewLineupAuditService(rosterRepo, lineupRepo),
		usecase.NewSwingReviewService(nil),
		nil,
	)
	verifier := staticVerifier{principals: map[string]user.Principal{
		coachToken: {UserID: "u1", Email: "coach@example.com", TeamIDs: []string{"team-1"}},
	}}

	return NewRouter(handler, verifier, nil, false, nil, testJobToken)
}

func doRequest(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
	}
	return envelope
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_ListPlayersRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/teams/team-1/players", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/teams/team-1/players", "bogus", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with unknown token, got %d", rec.Code)
	}
}

func TestRouter_ListPlayersRejectsForeignTeam(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/teams/team-9/players", coachToken, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for foreign team, got %d", rec.Code)
	}
}

func TestRouter_ListPlayers(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/teams/team-1/players", coachToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec)
	data, ok := envelope["data"].([]any)
	if !ok {
		t.Fatalf("expected array data, got %T", envelope["data"])
	}
	if len(data) != 11 {
		t.Fatalf("expected 11 players, got %d", len(data))
	}
}

func TestRouter_UpsertPlayerValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/teams/team-1/players", coachToken,
		`{"jersey_number": 120}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec)
	errBody, ok := envelope["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error body, got %v", envelope)
	}
	if errBody["status"] != "INVALID_ARGUMENT" {
		t.Fatalf("unexpected error status: %v", errBody["status"])
	}
}

func TestRouter_GenerateAndSaveLineup(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/teams/team-1/lineups/generate", coachToken,
		`{"innings": 6, "field_position_count": 9, "pitching_type": "machine", "everyone_bats": true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("generate: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec)
	generated, ok := envelope["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected lineup data, got %v", envelope)
	}
	innings, ok := generated["innings"].(map[string]any)
	if !ok || len(innings) != 6 {
		t.Fatalf("expected 6 innings, got %v", generated["innings"])
	}

	// The save payload carries no team_id; the path parameter is authoritative.
	delete(generated, "team_id")
	lineupJSON, err := sonic.Marshal(generated)
	if err != nil {
		t.Fatalf("re-marshal lineup: %v", err)
	}
	rec = doRequest(t, router, http.MethodPost, "/v1/teams/team-1/lineups", coachToken,
		`{"lineup": `+string(lineupJSON)+`}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("save: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/teams/team-1/lineups", coachToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	envelope = decodeEnvelope(t, rec)
	data, ok := envelope["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %T", envelope["data"])
	}
	items, ok := data["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one saved lineup, got %v", data["items"])
	}
}

func TestRouter_AnalyzeSwingUnconfigured(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/teams/team-1/swings/analyze", coachToken,
		`{"team_player_id": "p01", "clip_url": "https://clips.example.com/bp.mp4"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when analyzer is unconfigured, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_InternalAuditJobToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/audit-lineups",
		strings.NewReader(`{"team_ids": ["team-1"]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without job token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/audit-lineups",
		strings.NewReader(`{"team_ids": ["team-1"]}`))
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with job token, got %d: %s", rec.Code, rec.Body.String())
	}
}
