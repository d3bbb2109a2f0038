package analyzer

import (
	"math"
	"testing"

	"github.com/abhisek/cadence/internal/telemetry"
)

func TestForgettingAnalyzer_RecencyWeightedStability(t *testing.T) {
	repo := &mockRepo{
		reviews: []telemetry.Review{
			{ReviewedAt: testDay, Rating: telemetry.RatingGood, StabilityAfter: 2},
			{ReviewedAt: testDay.AddDate(0, 0, 1), Rating: telemetry.RatingGood, StabilityAfter: 2},
			{ReviewedAt: testDay.AddDate(0, 0, 2), Rating: telemetry.RatingGood, StabilityAfter: 8},
		},
	}

	a := &ForgettingAnalyzer{Repo: repo}
	res, err := a.Analyze(t.Context(), "u1", telemetry.Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Last third (the 8-day sample) carries double weight:
	// (2 + 2 + 8*2) / 4 = 5.
	if math.Abs(res.StabilityDays-5) > 1e-9 {
		t.Errorf("expected stability 5, got %.2f", res.StabilityDays)
	}
	if math.Abs(res.HalfLifeDays-5*math.Ln2) > 1e-9 {
		t.Errorf("expected half-life %.2f, got %.2f", 5*math.Ln2, res.HalfLifeDays)
	}
	if res.ReviewCount != 3 {
		t.Errorf("expected 3 reviews, got %d", res.ReviewCount)
	}
}

func TestForgettingAnalyzer_NoReviews(t *testing.T) {
	a := &ForgettingAnalyzer{Repo: &mockRepo{}}
	res, err := a.Analyze(t.Context(), "u1", telemetry.Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StabilityDays != DefaultStabilityDays {
		t.Errorf("expected default stability, got %.2f", res.StabilityDays)
	}
	if res.Confidence != 0 {
		t.Errorf("expected zero confidence, got %.2f", res.Confidence)
	}

	// R(S) = 1/e.
	want := math.Exp(-1)
	if got := res.RetentionAt(DefaultStabilityDays); math.Abs(got-want) > 1e-9 {
		t.Errorf("expected retention %.3f, got %.3f", want, got)
	}
}

func TestForgettingAnalyzer_IgnoresZeroStability(t *testing.T) {
	repo := &mockRepo{
		reviews: []telemetry.Review{
			{ReviewedAt: testDay, Rating: telemetry.RatingAgain, StabilityAfter: 0},
			{ReviewedAt: testDay.AddDate(0, 0, 1), Rating: telemetry.RatingGood, StabilityAfter: 4},
		},
	}

	a := &ForgettingAnalyzer{Repo: repo}
	res, err := a.Analyze(t.Context(), "u1", telemetry.Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.StabilityDays-4) > 1e-9 {
		t.Errorf("expected stability 4, got %.2f", res.StabilityDays)
	}
}
