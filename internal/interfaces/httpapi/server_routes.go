package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedRosterRoutes(mux, handler, verifier)
	registerAuthorizedLineupRoutes(mux, handler, verifier)
	registerAuthorizedSwingRoutes(mux, handler, verifier)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/audit-lineups", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.AuditLineups)))
}

func registerAuthorizedRosterRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/teams/{teamID}/players", RequireAuth(verifier, http.HandlerFunc(handler.ListPlayers)))
	mux.Handle("POST /v1/teams/{teamID}/players", RequireAuth(verifier, http.HandlerFunc(handler.UpsertPlayer)))
	mux.Handle("PUT /v1/teams/{teamID}/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdatePlayer)))
	mux.Handle("DELETE /v1/teams/{teamID}/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.DeletePlayer)))
	mux.Handle("GET /v1/teams/{teamID}/eligibility", RequireAuth(verifier, http.HandlerFunc(handler.ListEligibility)))
	mux.Handle("PUT /v1/teams/{teamID}/eligibility", RequireAuth(verifier, http.HandlerFunc(handler.SetEligibility)))
}

func registerAuthorizedLineupRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/teams/{teamID}/lineups/generate", RequireAuth(verifier, http.HandlerFunc(handler.GenerateLineup)))
	mux.Handle("POST /v1/teams/{teamID}/lineups", RequireAuth(verifier, http.HandlerFunc(handler.SaveLineup)))
	mux.Handle("GET /v1/teams/{teamID}/lineups", RequireAuth(verifier, http.HandlerFunc(handler.ListLineups)))
	mux.Handle("GET /v1/teams/{teamID}/lineups/{lineupID}", RequireAuth(verifier, http.HandlerFunc(handler.GetLineup)))
	mux.Handle("POST /v1/teams/{teamID}/lineups/{lineupID}/swaps", RequireAuth(verifier, http.HandlerFunc(handler.ApplySwap)))
	mux.Handle("POST /v1/teams/{teamID}/lineups/{lineupID}/finalize", RequireAuth(verifier, http.HandlerFunc(handler.FinalizeLineup)))
	mux.Handle("DELETE /v1/teams/{teamID}/lineups/{lineupID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteLineup)))
}

func registerAuthorizedSwingRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/teams/{teamID}/swings/analyze", RequireAuth(verifier, http.HandlerFunc(handler.AnalyzeSwing)))
}
