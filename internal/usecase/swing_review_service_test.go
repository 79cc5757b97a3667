package usecase

import (
	"context"
	"errors"
	"testing"
)

type stubSwingAnalyzer struct {
	analysis SwingAnalysis
	err      error
	calls    int
}

func (s *stubSwingAnalyzer) Analyze(_ context.Context, teamPlayerID, clipURL string) (SwingAnalysis, error) {
	s.calls++
	if s.err != nil {
		return SwingAnalysis{}, s.err
	}
	analysis := s.analysis
	analysis.TeamPlayerID = teamPlayerID
	return analysis, nil
}

func TestSwingReviewService_Analyze(t *testing.T) {
	analyzer := &stubSwingAnalyzer{analysis: SwingAnalysis{
		ClipID:         "clip-1",
		SwingCount:     14,
		AvgBatSpeed:    41.2,
		ContactQuality: "solid",
	}}
	svc := NewSwingReviewService(analyzer)

	analysis, err := svc.Analyze(context.Background(), AnalyzeSwingInput{
		TeamID:       testTeamID,
		TeamPlayerID: "p01",
		ClipURL:      "https://clips.example.com/bp-1.mp4",
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if analysis.TeamPlayerID != "p01" || analysis.SwingCount != 14 {
		t.Fatalf("unexpected analysis: %+v", analysis)
	}
	if analyzer.calls != 1 {
		t.Fatalf("expected one analyzer call, got %d", analyzer.calls)
	}
}

func TestSwingReviewService_AnalyzeRejectsBlankInput(t *testing.T) {
	svc := NewSwingReviewService(&stubSwingAnalyzer{})

	_, err := svc.Analyze(context.Background(), AnalyzeSwingInput{TeamID: testTeamID, TeamPlayerID: " "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSwingReviewService_AnalyzeWithoutAnalyzer(t *testing.T) {
	svc := NewSwingReviewService(nil)

	_, err := svc.Analyze(context.Background(), AnalyzeSwingInput{
		TeamID:       testTeamID,
		TeamPlayerID: "p01",
		ClipURL:      "https://clips.example.com/bp-1.mp4",
	})
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
