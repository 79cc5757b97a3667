package swingvision

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/dugouthq/dugout/internal/platform/resilience"
	"github.com/dugouthq/dugout/internal/usecase"
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Breaker resilience.CircuitBreakerConfig
}

// Client forwards batting-practice clips to the swingvision pose-estimation
// service. Analysis is best-effort side content, so the breaker opens fast
// rather than letting a slow dependency drag lineup requests down.
type Client struct {
	httpClient *http.Client
	analyzeURL string
	apiKey     string
	breaker    *resilience.CircuitBreaker
	logger     *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	breaker := resilience.NormalizeCircuitBreakerConfig(cfg.Breaker)

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		analyzeURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/") + "/v1/analyze",
		apiKey:     strings.TrimSpace(cfg.APIKey),
		breaker:    resilience.NewCircuitBreaker(breaker.FailureThreshold, breaker.OpenTimeout, breaker.HalfOpenMaxReq),
		logger:     logger,
	}
}

type analyzeRequest struct {
	TeamPlayerID string `json:"team_player_id"`
	ClipURL      string `json:"clip_url"`
}

type analyzeResponse struct {
	ClipID         string   `json:"clip_id"`
	TeamPlayerID   string   `json:"team_player_id"`
	SwingCount     int      `json:"swing_count"`
	AvgBatSpeed    float64  `json:"avg_bat_speed"`
	ContactQuality string   `json:"contact_quality"`
	Highlights     []string `json:"highlights"`
}

func (c *Client) Analyze(ctx context.Context, teamPlayerID, clipURL string) (usecase.SwingAnalysis, error) {
	if err := c.breaker.Allow(); err != nil {
		return usecase.SwingAnalysis{}, errors.Wrapf(usecase.ErrDependencyUnavailable, "swingvision circuit open")
	}

	analysis, err := c.analyze(ctx, teamPlayerID, clipURL)
	if err != nil {
		c.breaker.RecordFailure()
		return usecase.SwingAnalysis{}, err
	}
	c.breaker.RecordSuccess()

	return analysis, nil
}

func (c *Client) analyze(ctx context.Context, teamPlayerID, clipURL string) (usecase.SwingAnalysis, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	encoded, err := sonic.Marshal(analyzeRequest{TeamPlayerID: teamPlayerID, ClipURL: clipURL})
	if err != nil {
		return usecase.SwingAnalysis{}, errors.Wrap(err, "marshal analyze request")
	}
	if _, err := buf.Write(encoded); err != nil {
		return usecase.SwingAnalysis{}, errors.Wrap(err, "buffer analyze request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.analyzeURL, bytes.NewReader(buf.B))
	if err != nil {
		return usecase.SwingAnalysis{}, errors.Wrap(err, "create analyze request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return usecase.SwingAnalysis{}, errors.Wrap(err, "request swingvision analysis")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return usecase.SwingAnalysis{}, errors.Wrap(err, "read analyze response")
	}

	if resp.StatusCode/100 != 2 {
		c.logger.WarnContext(ctx, "swingvision analyze non-2xx",
			"status_code", resp.StatusCode,
		)
		return usecase.SwingAnalysis{}, errors.Newf("swingvision analyze failed with status %d", resp.StatusCode)
	}

	var decoded analyzeResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return usecase.SwingAnalysis{}, errors.Wrap(err, "unmarshal analyze response")
	}

	return usecase.SwingAnalysis{
		ClipID:         decoded.ClipID,
		TeamPlayerID:   decoded.TeamPlayerID,
		SwingCount:     decoded.SwingCount,
		AvgBatSpeed:    decoded.AvgBatSpeed,
		ContactQuality: decoded.ContactQuality,
		Highlights:     decoded.Highlights,
	}, nil
}
