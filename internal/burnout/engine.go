package burnout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/cadence/internal/telemetry"
)

// RiskLevel buckets the continuous risk score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// levelFor maps a 0–100 risk score onto its level.
func levelFor(score float64) RiskLevel {
	switch {
	case score >= 75:
		return RiskCritical
	case score >= 50:
		return RiskHigh
	case score >= 25:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Factor is one contributing component of the risk score. Percentages
// across an assessment's factors always sum to 100.
type Factor struct {
	Name       string
	Score      float64 // 0–100 normalized factor score
	Weight     float64
	Percentage float64 // share of the weighted total
}

// Assessment is one immutable burnout snapshot. History is append-only.
type Assessment struct {
	ID             string
	UserID         string
	RiskScore      float64 // 0–100
	RiskLevel      RiskLevel
	Factors        []Factor
	Signals        []Signal
	Intervention   Intervention
	AssessmentDate time.Time
	Confidence     float64 // 0–1
}

// Repo persists assessments, newest first on read.
type Repo interface {
	Save(ctx context.Context, a *Assessment) error
	Recent(ctx context.Context, userID string, limit int) ([]*Assessment, error)
}

// WindowDays is the trailing window every assessment analyzes.
const WindowDays = 14

// SafeDefaultRiskScore is returned when telemetry cannot be read.
const SafeDefaultRiskScore = 25

// Engine computes burnout risk assessments.
type Engine struct {
	telemetry telemetry.Repository
	repo      Repo
	clock     telemetry.Clock
	log       *slog.Logger
	detectors []Detector
}

// NewEngine wires a burnout engine. A nil logger discards logs.
func NewEngine(repo telemetry.Repository, assessments Repo, clock telemetry.Clock, log *slog.Logger) *Engine {
	if clock == nil {
		clock = telemetry.SystemClock{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		telemetry: repo,
		repo:      assessments,
		clock:     clock,
		log:       log,
		detectors: DefaultDetectors(),
	}
}

// Assess computes, persists, and returns a burnout assessment over the
// trailing 14 days. Telemetry read failures downgrade to the documented
// safe default (score 25, LOW, confidence 0) instead of propagating.
func (e *Engine) Assess(ctx context.Context, userID string) (*Assessment, error) {
	now := e.clock.Now()

	d, err := e.loadWindow(ctx, userID, now)
	if err != nil {
		e.log.Warn("burnout telemetry read failed, using safe default", "user", userID, "err", err)
		a := safeDefault(userID, now)
		if saveErr := e.repo.Save(ctx, a); saveErr != nil {
			return nil, fmt.Errorf("save safe-default assessment: %w", saveErr)
		}
		return a, nil
	}

	a := e.assess(userID, d)
	if err := e.repo.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("save assessment: %w", err)
	}
	return a, nil
}

func (e *Engine) loadWindow(ctx context.Context, userID string, now time.Time) (*windowData, error) {
	w := telemetry.LastDays(now, WindowDays)

	sessions, err := e.telemetry.Sessions(ctx, userID, w)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	perf, err := e.telemetry.PerformanceMetrics(ctx, userID, w)
	if err != nil {
		return nil, fmt.Errorf("load performance metrics: %w", err)
	}
	loads, err := e.telemetry.LoadMetrics(ctx, userID, w)
	if err != nil {
		return nil, fmt.Errorf("load cognitive metrics: %w", err)
	}
	missions, err := e.telemetry.Missions(ctx, userID, w)
	if err != nil {
		return nil, fmt.Errorf("load missions: %w", err)
	}
	return &windowData{sessions: sessions, perf: perf, loads: loads, missions: missions, now: now}, nil
}

// assess is the pure scoring step, separated for deterministic testing.
func (e *Engine) assess(userID string, d *windowData) *Assessment {
	scores := map[string]float64{
		FactorIntensity:          intensityScore(d),
		FactorPerformanceDecline: performanceDeclineScore(d),
		FactorChronicLoad:        chronicLoadScore(d),
		FactorIrregularity:       irregularityScore(d),
		FactorEngagementDecay:    engagementDecayScore(d),
		FactorRecoveryDeficit:    recoveryDeficitScore(d),
	}

	risk := 0.0
	for name, score := range scores {
		risk += score * factorWeights[name]
	}
	if risk < 0 {
		risk = 0
	}
	if risk > 100 {
		risk = 100
	}

	factors := contributingFactors(scores)
	level := levelFor(risk)

	a := &Assessment{
		UserID:         userID,
		RiskScore:      risk,
		RiskLevel:      level,
		Factors:        factors,
		Intervention:   buildIntervention(level, factors),
		AssessmentDate: d.now,
		Confidence:     assessmentConfidence(d),
	}
	for _, det := range e.detectors {
		a.Signals = append(a.Signals, det.Detect(d))
	}
	return a
}

// contributingFactors converts weighted factor contributions into
// percentages that sum to exactly 100. The last factor absorbs the
// floating-point remainder.
func contributingFactors(scores map[string]float64) []Factor {
	factors := make([]Factor, 0, len(factorOrder))
	total := 0.0
	for _, name := range factorOrder {
		total += scores[name] * factorWeights[name]
	}

	running := 0.0
	for i, name := range factorOrder {
		f := Factor{Name: name, Score: scores[name], Weight: factorWeights[name]}
		if total > 0 {
			f.Percentage = scores[name] * factorWeights[name] / total * 100
		} else {
			// Nothing contributed; report shares by weight.
			f.Percentage = factorWeights[name] * 100
		}
		if i == len(factorOrder)-1 {
			f.Percentage = 100 - running
		}
		running += f.Percentage
		factors = append(factors, f)
	}
	return factors
}

// assessmentConfidence degrades multiplicatively under small samples.
func assessmentConfidence(d *windowData) float64 {
	conf := 1.0
	switch {
	case len(d.sessions) < 5:
		conf *= 0.5
	case len(d.sessions) < 10:
		conf *= 0.7
	}
	switch {
	case len(d.loads) < 10:
		conf *= 0.6
	case len(d.loads) < 20:
		conf *= 0.8
	}
	return conf
}

func safeDefault(userID string, now time.Time) *Assessment {
	scores := map[string]float64{}
	for _, name := range factorOrder {
		scores[name] = 0
	}
	factors := contributingFactors(scores)
	return &Assessment{
		UserID:         userID,
		RiskScore:      SafeDefaultRiskScore,
		RiskLevel:      RiskLow,
		Factors:        factors,
		Intervention:   buildIntervention(RiskLow, factors),
		AssessmentDate: now,
		Confidence:     0,
	}
}
