package burnout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"testing"
	"time"

	"github.com/abhisek/cadence/internal/telemetry"
)

var assessNow = time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

// overloadedWindow reproduces a learner deep in overload: ~6 hours a day,
// collapsing retention, chronically high load, frequent skips, no rest.
func overloadedWindow() *windowData {
	d := &windowData{now: assessNow}

	for day := 0; day < 14; day++ {
		at := assessNow.AddDate(0, 0, -day)
		for s := 0; s < 2; s++ {
			end := at.Add(3 * time.Hour)
			d.sessions = append(d.sessions, telemetry.Session{
				StartedAt:   at,
				CompletedAt: &end,
				DurationMs:  3 * 60 * 60_000,
			})
		}
		d.loads = append(d.loads, telemetry.LoadMetric{Timestamp: at, LoadScore: 80})

		retention := 0.9
		if day < 7 {
			retention = 0.5
		}
		d.perf = append(d.perf, telemetry.PerformanceMetric{Date: at, RetentionScore: retention})

		m := telemetry.Mission{Date: at, Status: telemetry.MissionCompleted}
		if day%3 == 0 {
			m.Status = telemetry.MissionSkipped
		}
		d.missions = append(d.missions, m)
	}
	return d
}

// calmWindow is a light, regular schedule with real rest days.
func calmWindow() *windowData {
	d := &windowData{now: assessNow}
	rating := 3

	for day := 0; day < 14; day++ {
		at := assessNow.AddDate(0, 0, -day)
		end := at.Add(30 * time.Minute)
		d.sessions = append(d.sessions, telemetry.Session{
			StartedAt:   at,
			CompletedAt: &end,
			DurationMs:  30 * 60_000,
		})
		d.loads = append(d.loads, telemetry.LoadMetric{Timestamp: at, LoadScore: 35})
		d.perf = append(d.perf, telemetry.PerformanceMetric{Date: at, RetentionScore: 0.85})
		d.missions = append(d.missions, telemetry.Mission{
			Date:             at,
			Status:           telemetry.MissionCompleted,
			DifficultyRating: &rating,
		})
	}
	return d
}

func TestAssess_CriticalRisk(t *testing.T) {
	e := NewEngine(nil, &memAssessments{}, &fixedClock{t: assessNow}, nil)
	a := e.assess("u1", overloadedWindow())

	if a.RiskLevel != RiskCritical {
		t.Fatalf("expected CRITICAL, got %s (score %.1f)", a.RiskLevel, a.RiskScore)
	}
	if a.RiskScore < 75 {
		t.Errorf("expected score >= 75, got %.1f", a.RiskScore)
	}
	if a.Intervention.Plan != PlanMandatoryRest {
		t.Errorf("expected mandatory rest, got %s", a.Intervention.Plan)
	}
	if len(a.Intervention.Actions) == 0 {
		t.Error("expected intervention actions")
	}

	detected := 0
	for _, s := range a.Signals {
		if s.Detected {
			detected++
		}
	}
	if detected != 5 {
		t.Errorf("expected all 5 signals detected, got %d", detected)
	}
}

func TestAssess_LowRisk(t *testing.T) {
	e := NewEngine(nil, &memAssessments{}, &fixedClock{t: assessNow}, nil)
	a := e.assess("u1", calmWindow())

	if a.RiskLevel != RiskLow {
		t.Fatalf("expected LOW, got %s (score %.1f)", a.RiskLevel, a.RiskScore)
	}
	if a.RiskScore >= 25 {
		t.Errorf("expected score below 25, got %.1f", a.RiskScore)
	}
	if a.Intervention.Plan != PlanContentSimplification {
		t.Errorf("expected content simplification, got %s", a.Intervention.Plan)
	}
	for _, s := range a.Signals {
		if s.Detected {
			t.Errorf("expected no signal, got %s", s.Name)
		}
	}
}

func TestAssess_PercentagesSumToHundred(t *testing.T) {
	e := NewEngine(nil, &memAssessments{}, &fixedClock{t: assessNow}, nil)

	for name, d := range map[string]*windowData{
		"overloaded": overloadedWindow(),
		"calm":       calmWindow(),
		"empty":      {now: assessNow},
	} {
		a := e.assess("u1", d)
		if len(a.Factors) != 6 {
			t.Fatalf("%s: expected 6 factors, got %d", name, len(a.Factors))
		}
		sum := 0.0
		for _, f := range a.Factors {
			sum += f.Percentage
		}
		if sum != 100 {
			t.Errorf("%s: percentages sum to %v, want exactly 100", name, sum)
		}
	}
}

func TestAssess_NoLoadTelemetryScoresNoRecoveryDeficit(t *testing.T) {
	e := NewEngine(nil, &memAssessments{}, &fixedClock{t: assessNow}, nil)

	d := calmWindow()
	d.loads = nil
	a := e.assess("u1", d)

	for _, f := range a.Factors {
		if f.Name == FactorRecoveryDeficit && f.Score != 0 {
			t.Errorf("recovery deficit = %.0f without load telemetry, want 0", f.Score)
		}
		if f.Name == FactorChronicLoad && f.Score != 0 {
			t.Errorf("chronic load = %.0f without load telemetry, want 0", f.Score)
		}
	}
	for _, s := range a.Signals {
		if s.Name == "no-recovery" && s.Detected {
			t.Error("no-recovery signal must not fire without load telemetry")
		}
	}
}

func TestAssess_ConfidenceDegradesOnSmallSamples(t *testing.T) {
	e := NewEngine(nil, &memAssessments{}, &fixedClock{t: assessNow}, nil)

	full := e.assess("u1", calmWindow())
	if full.Confidence != 0.8 {
		// 14 sessions (>=10) and 14 loads (10..19) -> 1.0 * 0.8.
		t.Errorf("expected confidence 0.8, got %.2f", full.Confidence)
	}

	sparse := &windowData{now: assessNow}
	end := assessNow.Add(time.Hour)
	sparse.sessions = append(sparse.sessions, telemetry.Session{StartedAt: assessNow, CompletedAt: &end})
	sparse.loads = append(sparse.loads, telemetry.LoadMetric{Timestamp: assessNow, LoadScore: 50})

	a := e.assess("u1", sparse)
	if math.Abs(a.Confidence-0.3) > 1e-9 {
		// <5 sessions (0.5) and <10 loads (0.6).
		t.Errorf("expected confidence 0.3, got %.2f", a.Confidence)
	}
}

func TestAssess_SafeDefaultOnReadFailure(t *testing.T) {
	repo := &memAssessments{}
	e := NewEngine(&failingTelemetry{}, repo, &fixedClock{t: assessNow}, nil)

	a, err := e.Assess(context.Background(), "u1")
	if err != nil {
		t.Fatalf("read failures must not propagate, got %v", err)
	}
	if a.RiskScore != SafeDefaultRiskScore {
		t.Errorf("expected safe default score %d, got %.1f", SafeDefaultRiskScore, a.RiskScore)
	}
	if a.RiskLevel != RiskLow {
		t.Errorf("expected LOW, got %s", a.RiskLevel)
	}
	if a.Confidence != 0 {
		t.Errorf("expected zero confidence, got %.2f", a.Confidence)
	}
	if len(repo.rows) != 1 {
		t.Error("safe default assessments are still persisted")
	}
}

func TestAssess_SaveFailurePropagates(t *testing.T) {
	repo := &memAssessments{saveErr: errors.New("disk full")}
	e := NewEngine(&emptyTelemetry{}, repo, &fixedClock{t: assessNow}, nil)

	if _, err := e.Assess(context.Background(), "u1"); err == nil {
		t.Fatal("expected write failure to propagate")
	}
}

func TestTrackRecovery(t *testing.T) {
	repo := &memAssessments{}
	e := NewEngine(&emptyTelemetry{}, repo, &fixedClock{t: assessNow}, nil)
	ctx := context.Background()

	rec, err := e.TrackRecovery(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Trend != TrendInsufficient {
		t.Errorf("expected insufficient history, got %s", rec.Trend)
	}

	repo.rows = append(repo.rows,
		&Assessment{UserID: "u1", RiskScore: 80, AssessmentDate: assessNow.AddDate(0, 0, -7)},
		&Assessment{UserID: "u1", RiskScore: 55, AssessmentDate: assessNow},
	)

	rec, err = e.TrackRecovery(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Trend != TrendImproving {
		t.Errorf("expected improving, got %s", rec.Trend)
	}
	if rec.ScoreChange != -25 {
		t.Errorf("expected change -25, got %.1f", rec.ScoreChange)
	}
	if rec.DaysBetween != 7 {
		t.Errorf("expected 7 days between, got %d", rec.DaysBetween)
	}

	// Small movement is stable.
	repo.rows = append(repo.rows,
		&Assessment{UserID: "u1", RiskScore: 50, AssessmentDate: assessNow.AddDate(0, 0, 1)})
	rec, _ = e.TrackRecovery(ctx, "u1")
	if rec.Trend != TrendStable {
		t.Errorf("expected stable, got %s", rec.Trend)
	}
}

// memAssessments is an in-memory Repo ordered newest first on read.
type memAssessments struct {
	rows    []*Assessment
	saveErr error
	seq     int
}

func (m *memAssessments) Save(ctx context.Context, a *Assessment) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.seq++
	a.ID = fmt.Sprintf("a-%d", m.seq)
	m.rows = append(m.rows, a)
	return nil
}

func (m *memAssessments) Recent(ctx context.Context, userID string, limit int) ([]*Assessment, error) {
	var out []*Assessment
	for _, a := range m.rows {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AssessmentDate.After(out[j].AssessmentDate)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// failingTelemetry errors on every read.
type failingTelemetry struct{}

func (failingTelemetry) Sessions(context.Context, string, telemetry.Window) ([]telemetry.Session, error) {
	return nil, errors.New("telemetry unavailable")
}

func (failingTelemetry) Reviews(context.Context, string, telemetry.Window) ([]telemetry.Review, error) {
	return nil, errors.New("telemetry unavailable")
}

func (failingTelemetry) Missions(context.Context, string, telemetry.Window) ([]telemetry.Mission, error) {
	return nil, errors.New("telemetry unavailable")
}

func (failingTelemetry) LoadMetrics(context.Context, string, telemetry.Window) ([]telemetry.LoadMetric, error) {
	return nil, errors.New("telemetry unavailable")
}

func (failingTelemetry) PerformanceMetrics(context.Context, string, telemetry.Window) ([]telemetry.PerformanceMetric, error) {
	return nil, errors.New("telemetry unavailable")
}

func (failingTelemetry) Events(context.Context, string, telemetry.Window) ([]telemetry.Event, error) {
	return nil, errors.New("telemetry unavailable")
}

// emptyTelemetry returns no rows.
type emptyTelemetry struct{}

func (emptyTelemetry) Sessions(context.Context, string, telemetry.Window) ([]telemetry.Session, error) {
	return nil, nil
}

func (emptyTelemetry) Reviews(context.Context, string, telemetry.Window) ([]telemetry.Review, error) {
	return nil, nil
}

func (emptyTelemetry) Missions(context.Context, string, telemetry.Window) ([]telemetry.Mission, error) {
	return nil, nil
}

func (emptyTelemetry) LoadMetrics(context.Context, string, telemetry.Window) ([]telemetry.LoadMetric, error) {
	return nil, nil
}

func (emptyTelemetry) PerformanceMetrics(context.Context, string, telemetry.Window) ([]telemetry.PerformanceMetric, error) {
	return nil, nil
}

func (emptyTelemetry) Events(context.Context, string, telemetry.Window) ([]telemetry.Event, error) {
	return nil, nil
}

// fixedClock returns a settable time.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time { return c.t }
