package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dugouthq/dugout/internal/config"
	"github.com/dugouthq/dugout/internal/domain/eligibility"
	"github.com/dugouthq/dugout/internal/domain/lineup"
	"github.com/dugouthq/dugout/internal/domain/roster"
	"github.com/dugouthq/dugout/internal/infrastructure/account/clubhouse"
	cacherepo "github.com/dugouthq/dugout/internal/infrastructure/repository/cache"
	"github.com/dugouthq/dugout/internal/infrastructure/repository/memory"
	"github.com/dugouthq/dugout/internal/infrastructure/repository/postgres"
	"github.com/dugouthq/dugout/internal/infrastructure/swingvision"
	"github.com/dugouthq/dugout/internal/interfaces/httpapi"
	basecache "github.com/dugouthq/dugout/internal/platform/cache"
	idgen "github.com/dugouthq/dugout/internal/platform/id"
	"github.com/dugouthq/dugout/internal/platform/resilience"
	"github.com/dugouthq/dugout/internal/usecase"
)

// NewHTTPServer wires repositories, services and the HTTP router. The returned
// cleanup closes the database pool and must run on shutdown.
func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		rosterRepo      roster.Repository
		eligibilityRepo eligibility.Repository
		lineupRepo      lineup.Repository
	)
	cleanup := func() error { return nil }

	if strings.TrimSpace(cfg.DBURL) != "" {
		db, err := openDB(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		rosterRepo = postgres.NewRosterRepository(db)
		eligibilityRepo = postgres.NewEligibilityRepository(db)
		lineupRepo = postgres.NewLineupRepository(db)
		cleanup = db.Close
	} else {
		// No DB configured: run on seeded in-memory stores. Useful for local
		// development and demos, not for anything a coach would rely on.
		logger.Warn("DB_URL is empty, using in-memory repositories with seed data")
		rosterRepo = memory.NewRosterRepository(memory.SeedPlayers())
		eligibilityRepo = memory.NewEligibilityRepository(memory.SeedEligibilityFlags())
		lineupRepo = memory.NewLineupRepository()
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		rosterRepo = cacherepo.NewRosterRepository(rosterRepo, store)
		eligibilityRepo = cacherepo.NewEligibilityRepository(eligibilityRepo, store)
	}

	rosterSvc := usecase.NewRosterService(rosterRepo, idgen.NewRandomGenerator())
	eligibilitySvc := usecase.NewEligibilityService(eligibilityRepo, rosterRepo)
	lineupSvc := usecase.NewLineupService(rosterRepo, eligibilityRepo, lineupRepo, idgen.NewRandomGenerator())
	auditSvc := usecase.NewLineupAuditService(rosterRepo, lineupRepo)

	var analyzer usecase.SwingAnalyzer
	if cfg.SwingVisionEnabled {
		analyzer = swingvision.NewClient(swingvision.Config{
			BaseURL: cfg.SwingVisionBaseURL,
			APIKey:  cfg.SwingVisionAPIKey,
			Timeout: cfg.SwingVisionTimeout,
			Breaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.SwingVisionCircuitEnabled,
				FailureThreshold: cfg.SwingVisionCircuitFailureCount,
				OpenTimeout:      cfg.SwingVisionCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.SwingVisionCircuitHalfOpenMax,
			},
		}, logger)
	}
	swingSvc := usecase.NewSwingReviewService(analyzer)

	clubhouseClient := clubhouse.NewClient(
		&http.Client{Timeout: cfg.ClubhouseTimeout},
		cfg.ClubhouseBaseURL,
		cfg.ClubhouseIntrospectURL,
		logger,
	)

	handler := httpapi.NewHandler(rosterSvc, eligibilitySvc, lineupSvc, auditSvc, swingSvc, logger)
	router := httpapi.NewRouter(handler, clubhouseClient, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}
