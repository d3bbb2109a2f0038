package analyzer

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/cadence/internal/telemetry"
)

func contentEvent(at time.Time, eventType string, ct telemetry.ContentType, engagedMin int, score float64) telemetry.Event {
	return telemetry.Event{
		Timestamp:   at,
		EventType:   eventType,
		ContentType: ct,
		EngagedMs:   int64(engagedMin) * 60_000,
		Score:       score,
		Completed:   true,
	}
}

func TestContentAnalyzer_NoEventsUniform(t *testing.T) {
	a := &ContentAnalyzer{Repo: &mockRepo{}}
	res, err := a.Analyze(t.Context(), "u1", telemetry.Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Confidence != 0 {
		t.Errorf("expected zero confidence, got %.2f", res.Confidence)
	}
	for _, ct := range telemetry.ContentTypes() {
		if res.Preferences[ct] != 0.25 {
			t.Errorf("expected uniform preference for %s, got %.2f", ct, res.Preferences[ct])
		}
	}
	if res.Profile.Visual != 0.25 || res.Profile.Kinesthetic != 0.25 {
		t.Errorf("expected uniform style profile, got %+v", res.Profile)
	}
}

func TestContentAnalyzer_VisualDominance(t *testing.T) {
	repo := &mockRepo{}
	for i := 0; i < 30; i++ {
		repo.events = append(repo.events,
			contentEvent(testDay.Add(time.Duration(i)*time.Hour), telemetry.EventGraphView, telemetry.ContentDiagram, 5, 0))
	}
	repo.events = append(repo.events,
		contentEvent(testDay, telemetry.EventContentEngagement, telemetry.ContentDiagram, 120, 80))

	a := &ContentAnalyzer{Repo: repo}
	res, err := a.Analyze(t.Context(), "u1", telemetry.Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := res.Profile.Dominant(); got != "visual" {
		t.Errorf("expected visual dominance, got %s (%+v)", got, res.Profile)
	}

	sum := res.Profile.Visual + res.Profile.Auditory + res.Profile.Reading + res.Profile.Kinesthetic
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("style components should sum to 1, got %.4f", sum)
	}

	prefSum := 0.0
	for _, v := range res.Preferences {
		prefSum += v
	}
	if math.Abs(prefSum-1) > 1e-9 {
		t.Errorf("preferences should sum to 1, got %.4f", prefSum)
	}
	if res.Preferences[telemetry.ContentDiagram] <= res.Preferences[telemetry.ContentText] {
		t.Error("diagram preference should dominate")
	}
}

func TestContentAnalyzer_Effectiveness(t *testing.T) {
	repo := &mockRepo{}
	// Two clinical case engagements: one completed, one not.
	e1 := contentEvent(testDay, telemetry.EventContentEngagement, telemetry.ContentClinicalCase, 10, 80)
	e1.SessionPerformance = 90
	e2 := contentEvent(testDay.Add(time.Hour), telemetry.EventContentEngagement, telemetry.ContentClinicalCase, 10, 60)
	e2.Completed = false
	e2.SessionPerformance = 70
	repo.events = append(repo.events, e1, e2)

	a := &ContentAnalyzer{Repo: repo}
	res, err := a.Analyze(t.Context(), "u1", telemetry.Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	eff := res.Effectiveness[telemetry.ContentClinicalCase]
	if eff.Samples != 2 {
		t.Fatalf("expected 2 samples, got %d", eff.Samples)
	}
	if eff.CompletionRate != 0.5 {
		t.Errorf("expected completion 0.5, got %.2f", eff.CompletionRate)
	}
	if math.Abs(eff.RetentionRate-0.8) > 1e-9 {
		t.Errorf("expected retention 0.8, got %.2f", eff.RetentionRate)
	}
	// 0.8*50 + 0.5*30 + 70*0.2 = 69.
	if math.Abs(eff.Score-69) > 1e-9 {
		t.Errorf("expected score 69, got %.2f", eff.Score)
	}

	// Untouched types stay zero.
	if res.Effectiveness[telemetry.ContentPrompt].Score != 0 {
		t.Error("expected zero score for unseen content type")
	}
}
