package usecase

import (
	"context"
	"fmt"
	"strings"
)

// SwingAnalysis is the pose-estimation summary swingvision returns for one
// uploaded batting-practice clip.
type SwingAnalysis struct {
	ClipID         string
	TeamPlayerID   string
	SwingCount     int
	AvgBatSpeed    float64
	ContactQuality string
	Highlights     []string
}

type AnalyzeSwingInput struct {
	TeamID       string
	TeamPlayerID string
	ClipURL      string
}

// SwingAnalyzer forwards clips to the swingvision service.
type SwingAnalyzer interface {
	Analyze(ctx context.Context, teamPlayerID, clipURL string) (SwingAnalysis, error)
}

type SwingReviewService struct {
	analyzer SwingAnalyzer
}

func NewSwingReviewService(analyzer SwingAnalyzer) *SwingReviewService {
	return &SwingReviewService{analyzer: analyzer}
}

func (s *SwingReviewService) Analyze(ctx context.Context, input AnalyzeSwingInput) (SwingAnalysis, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SwingReviewService.Analyze")
	defer span.End()

	input.TeamPlayerID = strings.TrimSpace(input.TeamPlayerID)
	input.ClipURL = strings.TrimSpace(input.ClipURL)
	if input.TeamPlayerID == "" || input.ClipURL == "" {
		return SwingAnalysis{}, fmt.Errorf("%w: team_player_id and clip_url are required", ErrInvalidInput)
	}
	if s.analyzer == nil {
		return SwingAnalysis{}, fmt.Errorf("%w: swing analysis is not configured", ErrDependencyUnavailable)
	}

	analysis, err := s.analyzer.Analyze(ctx, input.TeamPlayerID, input.ClipURL)
	if err != nil {
		return SwingAnalysis{}, fmt.Errorf("analyze swing clip: %w", err)
	}

	return analysis, nil
}
