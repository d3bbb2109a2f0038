package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/abhisek/cadence/internal/burnout"
	"github.com/abhisek/cadence/internal/pattern"
	"github.com/abhisek/cadence/internal/telemetry"
)

const (
	// SourceThreshold is the minimum source confidence for candidacy.
	SourceThreshold = 0.7

	// MaxPerCycle caps recommendations persisted per generation cycle.
	MaxPerCycle = 5

	// MaxPerType is the diversification cap.
	MaxPerType = 2

	// FreshWindow is the recency window for the skip rule: generation is
	// skipped while MaxPerCycle open recommendations younger than this
	// exist.
	FreshWindow = 24 * time.Hour

	// defaultReadiness is assumed when no profile exists.
	defaultReadiness = 0.5
)

// Priority weights.
const (
	weightConfidence = 0.30
	weightImpact     = 0.40
	weightEase       = 0.20
	weightReadiness  = 0.10
)

// Engine turns patterns, insights, and pending interventions into
// prioritized recommendations.
type Engine struct {
	patterns    pattern.Repo
	insights    pattern.InsightRepo
	profiles    pattern.ProfileRepo
	assessments burnout.Repo
	recs        Repo
	applied     AppliedRepo
	telemetry   telemetry.Repository
	clock       telemetry.Clock
	log         *slog.Logger
}

// NewEngine wires a recommendations engine. A nil logger discards logs.
func NewEngine(
	patterns pattern.Repo,
	insights pattern.InsightRepo,
	profiles pattern.ProfileRepo,
	assessments burnout.Repo,
	recs Repo,
	applied AppliedRepo,
	repo telemetry.Repository,
	clock telemetry.Clock,
	log *slog.Logger,
) *Engine {
	if clock == nil {
		clock = telemetry.SystemClock{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		patterns:    patterns,
		insights:    insights,
		profiles:    profiles,
		assessments: assessments,
		recs:        recs,
		applied:     applied,
		telemetry:   repo,
		clock:       clock,
		log:         log,
	}
}

// Generate builds, prioritizes, diversifies, and persists up to five
// recommendations. When five fresh open recommendations already exist the
// existing set is returned unchanged.
func (e *Engine) Generate(ctx context.Context, userID string) ([]*Recommendation, error) {
	now := e.clock.Now()

	open, err := e.recs.ListOpen(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list open recommendations: %w", err)
	}
	if fresh := countFresh(open, now); fresh >= MaxPerCycle {
		return open, nil
	}

	candidates, err := e.collectCandidates(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	selected := Prioritize(candidates)
	persisted := make([]*Recommendation, 0, len(selected))
	existing := map[string]bool{}
	for _, r := range open {
		existing[dedupeKey(r.RecommendationType, r.Title)] = true
	}
	for _, r := range selected {
		if existing[dedupeKey(r.RecommendationType, r.Title)] {
			continue
		}
		if err := e.recs.Save(ctx, r); err != nil {
			return nil, fmt.Errorf("save recommendation %q: %w", r.Title, err)
		}
		persisted = append(persisted, r)
	}
	return persisted, nil
}

func countFresh(open []*Recommendation, now time.Time) int {
	n := 0
	for _, r := range open {
		if now.Sub(r.CreatedAt) < FreshWindow {
			n++
		}
	}
	return n
}

func dedupeKey(t Type, title string) string { return string(t) + "|" + title }

// collectCandidates combines the three source streams into scored
// candidates.
func (e *Engine) collectCandidates(ctx context.Context, userID string, now time.Time) ([]*Recommendation, error) {
	readiness := defaultReadiness
	if profile, err := e.profiles.Get(ctx, userID); err != nil {
		e.log.Warn("profile load failed, using default readiness", "user", userID, "err", err)
	} else if profile != nil {
		readiness = profile.DataQualityScore
	}

	var out []*Recommendation

	patterns, err := e.patterns.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list patterns: %w", err)
	}
	for _, p := range patterns {
		if p.Confidence < SourceThreshold {
			continue
		}
		tpl, ok := patternTemplates[p.PatternType]
		if !ok {
			continue
		}
		title, description, action, ok := fillFromPattern(p)
		if !ok {
			continue
		}
		out = append(out, newCandidate(userID, tpl, title, description, action, p.Confidence, readiness, now, []string{p.ID}, nil))
	}

	insights, err := e.insights.ListUnacknowledged(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list insights: %w", err)
	}
	for _, ins := range insights {
		if ins.Confidence < SourceThreshold {
			continue
		}
		tpl, ok := patternTemplates[ins.InsightType]
		if !ok {
			continue
		}
		title, description, action, ok := fillFromInsight(ins)
		if !ok {
			continue
		}
		out = append(out, newCandidate(userID, tpl, title, description, action, ins.Confidence, readiness, now, nil, []string{ins.ID}))
	}

	recent, err := e.assessments.Recent(ctx, userID, 1)
	if err != nil {
		return nil, fmt.Errorf("load latest assessment: %w", err)
	}
	if len(recent) > 0 && recent[0].RiskLevel != burnout.RiskLow {
		a := recent[0]
		title, description, action := fillFromIntervention(a.Intervention, a.RiskLevel)
		out = append(out, newCandidate(userID, interventionTemplate, title, description, action, a.Confidence, readiness, now, nil, nil))
	}

	return out, nil
}

func newCandidate(userID string, tpl template, title, description, action string, confidence, readiness float64, now time.Time, patternIDs, insightIDs []string) *Recommendation {
	r := &Recommendation{
		UserID:             userID,
		RecommendationType: tpl.recType,
		Title:              title,
		Description:        description,
		ActionableText:     action,
		Confidence:         clamp01(confidence),
		EstimatedImpact:    tpl.impact,
		Ease:               tpl.ease,
		UserReadiness:      clamp01(readiness),
		SourcePatternIDs:   patternIDs,
		SourceInsightIDs:   insightIDs,
		CreatedAt:          now,
	}
	r.PriorityScore = PriorityScore(r)
	return r
}

// PriorityScore is the fixed weighted blend.
func PriorityScore(r *Recommendation) float64 {
	return r.Confidence*weightConfidence +
		r.EstimatedImpact*weightImpact +
		r.Ease*weightEase +
		r.UserReadiness*weightReadiness
}

// Prioritize sorts candidates by priority (ties broken by source ID, then
// title, so equal scores resolve identically across runs), then greedily
// selects past rejected candidates under the per-type cap, truncating to
// MaxPerCycle.
func Prioritize(candidates []*Recommendation) []*Recommendation {
	sorted := make([]*Recommendation, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].PriorityScore != sorted[j].PriorityScore {
			return sorted[i].PriorityScore > sorted[j].PriorityScore
		}
		if a, b := tieBreakID(sorted[i]), tieBreakID(sorted[j]); a != b {
			return a < b
		}
		return sorted[i].Title < sorted[j].Title
	})

	perType := map[Type]int{}
	var out []*Recommendation
	for _, r := range sorted {
		if perType[r.RecommendationType] >= MaxPerType {
			continue // keep scanning lower-priority candidates
		}
		perType[r.RecommendationType]++
		out = append(out, r)
		if len(out) == MaxPerCycle {
			break
		}
	}
	return out
}

func tieBreakID(r *Recommendation) string {
	if len(r.SourcePatternIDs) > 0 {
		return r.SourcePatternIDs[0]
	}
	if len(r.SourceInsightIDs) > 0 {
		return r.SourceInsightIDs[0]
	}
	return ""
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
