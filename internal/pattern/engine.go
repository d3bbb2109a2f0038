package pattern

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/cadence/internal/analyzer"
	"github.com/abhisek/cadence/internal/telemetry"
)

// Config holds the engine's sufficiency gates and analysis window.
type Config struct {
	MinHistoryWeeks    int
	MinSessions        int
	MinReviews         int
	MinNewSessions     int // incremental mode gate
	AnalysisWindowDays int
}

// DefaultConfig returns the production gates.
func DefaultConfig() Config {
	return Config{
		MinHistoryWeeks:    6,
		MinSessions:        20,
		MinReviews:         50,
		MinNewSessions:     10,
		AnalysisWindowDays: 90,
	}
}

// Requirements reports the shortfall when data is insufficient.
type Requirements struct {
	WeeksNeeded    int
	SessionsNeeded int
	ReviewsNeeded  int
}

// Result is the outcome of one analysis run.
type Result struct {
	Patterns []*Pattern
	Insights []*Insight
	Profile  *Profile

	// InsufficientData marks the terminal not-enough-history state.
	// It is a result, not an error.
	InsufficientData bool
	Requirements     *Requirements

	// Skipped marks an incremental run that found too few new sessions.
	Skipped bool

	// Degraded marks a run downgraded to its safe default after a
	// data-access failure.
	Degraded bool
}

// Engine orchestrates the analyzers, owns the pattern lifecycle, and
// maintains the learning profile. Stateless apart from per-user run locks.
type Engine struct {
	telemetry telemetry.Repository
	patterns  Repo
	insights  InsightRepo
	profiles  ProfileRepo
	clock     telemetry.Clock
	log       *slog.Logger
	cfg       Config

	// locks serializes analysis runs per user so concurrent triggers
	// cannot double-apply the occurrence lifecycle.
	locks sync.Map // userID -> *sync.Mutex
}

// NewEngine wires an Engine. A nil logger discards engine logs.
func NewEngine(repo telemetry.Repository, patterns Repo, insights InsightRepo, profiles ProfileRepo, clock telemetry.Clock, log *slog.Logger, cfg Config) *Engine {
	if clock == nil {
		clock = telemetry.SystemClock{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		telemetry: repo,
		patterns:  patterns,
		insights:  insights,
		profiles:  profiles,
		clock:     clock,
		log:       log,
		cfg:       cfg,
	}
}

func (e *Engine) userLock(userID string) *sync.Mutex {
	mu, _ := e.locks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// RunFull executes a complete analysis run for one user: sufficiency gate,
// concurrent analyzers, pattern lifecycle, insight regeneration, and
// profile upsert. Data-access failures downgrade to a safe empty result.
func (e *Engine) RunFull(ctx context.Context, userID string) (*Result, error) {
	mu := e.userLock(userID)
	mu.Lock()
	defer mu.Unlock()
	return e.run(ctx, userID)
}

// RunIncremental re-analyzes only when at least MinNewSessions sessions
// arrived since the last full run; otherwise it is a no-op.
func (e *Engine) RunIncremental(ctx context.Context, userID string) (*Result, error) {
	mu := e.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	profile, err := e.profiles.Get(ctx, userID)
	if err != nil {
		e.log.Warn("profile load failed, degrading to safe default", "user", userID, "err", err)
		return &Result{Degraded: true}, nil
	}
	if profile == nil {
		return e.run(ctx, userID)
	}

	newSessions, err := e.telemetry.Sessions(ctx, userID, telemetry.Window{From: profile.LastAnalyzedAt})
	if err != nil {
		e.log.Warn("session load failed, degrading to safe default", "user", userID, "err", err)
		return &Result{Degraded: true}, nil
	}
	if len(newSessions) < e.cfg.MinNewSessions {
		return &Result{Skipped: true, Profile: profile}, nil
	}
	return e.run(ctx, userID)
}

func (e *Engine) run(ctx context.Context, userID string) (*Result, error) {
	now := e.clock.Now()

	sufficient, reqs, counts, err := e.checkSufficiency(ctx, userID, now)
	if err != nil {
		e.log.Warn("sufficiency check failed, degrading to safe default", "user", userID, "err", err)
		return &Result{Degraded: true}, nil
	}
	if !sufficient {
		return &Result{InsufficientData: true, Requirements: reqs}, nil
	}

	results := e.fanOut(ctx, userID, telemetry.LastDays(now, e.cfg.AnalysisWindowDays))
	candidates := e.candidates(userID, now, results)

	persisted, err := e.applyLifecycle(ctx, userID, candidates, now)
	if err != nil {
		return nil, fmt.Errorf("apply pattern lifecycle: %w", err)
	}

	insights, err := e.regenerateInsights(ctx, userID, persisted, now)
	if err != nil {
		return nil, fmt.Errorf("regenerate insights: %w", err)
	}

	profile := e.buildProfile(userID, now, results, counts)
	if err := e.profiles.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	return &Result{Patterns: persisted, Insights: insights, Profile: profile}, nil
}

type sampleCounts struct {
	sessions     int
	reviews      int
	loadSamples  int
	historyWeeks float64
}

func (e *Engine) checkSufficiency(ctx context.Context, userID string, now time.Time) (bool, *Requirements, sampleCounts, error) {
	var counts sampleCounts

	sessions, err := e.telemetry.Sessions(ctx, userID, telemetry.Window{})
	if err != nil {
		return false, nil, counts, fmt.Errorf("load sessions: %w", err)
	}
	reviews, err := e.telemetry.Reviews(ctx, userID, telemetry.Window{})
	if err != nil {
		return false, nil, counts, fmt.Errorf("load reviews: %w", err)
	}
	loads, err := e.telemetry.LoadMetrics(ctx, userID, telemetry.Window{})
	if err != nil {
		return false, nil, counts, fmt.Errorf("load cognitive metrics: %w", err)
	}

	completed := 0
	var earliest time.Time
	for i := range sessions {
		if sessions[i].Completed() {
			completed++
		}
		if earliest.IsZero() || sessions[i].StartedAt.Before(earliest) {
			earliest = sessions[i].StartedAt
		}
	}
	weeks := 0.0
	if !earliest.IsZero() {
		weeks = now.Sub(earliest).Hours() / (24 * 7)
	}

	counts = sampleCounts{
		sessions:     completed,
		reviews:      len(reviews),
		loadSamples:  len(loads),
		historyWeeks: weeks,
	}

	reqs := &Requirements{}
	if int(weeks) < e.cfg.MinHistoryWeeks {
		reqs.WeeksNeeded = e.cfg.MinHistoryWeeks - int(weeks)
	}
	if completed < e.cfg.MinSessions {
		reqs.SessionsNeeded = e.cfg.MinSessions - completed
	}
	if len(reviews) < e.cfg.MinReviews {
		reqs.ReviewsNeeded = e.cfg.MinReviews - len(reviews)
	}
	sufficient := reqs.WeeksNeeded == 0 && reqs.SessionsNeeded == 0 && reqs.ReviewsNeeded == 0
	if sufficient {
		reqs = nil
	}
	return sufficient, reqs, counts, nil
}

// analyzerResults carries the fan-out outputs. Failed analyzers leave their
// slot nil and the run continues with the remaining signals.
type analyzerResults struct {
	studyTime  *analyzer.StudyTimeResult
	duration   *analyzer.DurationResult
	content    *analyzer.ContentResult
	forgetting *analyzer.ForgettingResult
}

// fanOut runs the four analyzers concurrently. Analyzer errors are logged
// and downgraded, never propagated; one missing data source must not abort
// the run.
func (e *Engine) fanOut(ctx context.Context, userID string, w telemetry.Window) analyzerResults {
	var res analyzerResults
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r, err := (&analyzer.StudyTimeAnalyzer{Repo: e.telemetry}).Analyze(gctx, userID, w)
		if err != nil {
			e.log.Warn("study-time analyzer degraded", "user", userID, "err", err)
			return nil
		}
		res.studyTime = r
		return nil
	})
	g.Go(func() error {
		r, err := (&analyzer.DurationAnalyzer{Repo: e.telemetry}).Analyze(gctx, userID, w)
		if err != nil {
			e.log.Warn("duration analyzer degraded", "user", userID, "err", err)
			return nil
		}
		res.duration = r
		return nil
	})
	g.Go(func() error {
		r, err := (&analyzer.ContentAnalyzer{Repo: e.telemetry}).Analyze(gctx, userID, w)
		if err != nil {
			e.log.Warn("content analyzer degraded", "user", userID, "err", err)
			return nil
		}
		res.content = r
		return nil
	})
	g.Go(func() error {
		r, err := (&analyzer.ForgettingAnalyzer{Repo: e.telemetry}).Analyze(gctx, userID, w)
		if err != nil {
			e.log.Warn("forgetting analyzer degraded", "user", userID, "err", err)
			return nil
		}
		res.forgetting = r
		return nil
	})

	_ = g.Wait() // goroutines never return errors; Wait only joins
	return res
}

// candidates turns analyzer results into candidate patterns for this run.
func (e *Engine) candidates(userID string, now time.Time, r analyzerResults) []*Pattern {
	var out []*Pattern

	if st := r.studyTime; st != nil && len(st.OptimalWindows) > 0 {
		windows := make([]StudyWindow, 0, len(st.OptimalWindows))
		evidence := make([]string, 0, len(st.OptimalWindows)+1)
		for _, w := range st.OptimalWindows {
			windows = append(windows, StudyWindow{StartHour: w.StartHour, EndHour: w.EndHour, Score: w.Score})
			evidence = append(evidence, fmt.Sprintf("Sessions starting %02d:00-%02d:00 scored %.1f", w.StartHour, w.EndHour, w.Score))
		}
		evidence = append(evidence, fmt.Sprintf("Based on %d completed sessions", st.TotalSessions))
		out = append(out, &Pattern{
			UserID:          userID,
			PatternType:     TypeOptimalStudyTime,
			PatternName:     "Peak study hours",
			Confidence:      st.Confidence,
			Data:            StudyTimePayload{Windows: windows},
			Evidence:        evidence,
			OccurrenceCount: 1,
			FirstDetectedAt: now,
			LastSeenAt:      now,
		})
	}

	if d := r.duration; d != nil && d.Optimal != nil {
		byComplexity := map[string]int{}
		for c, m := range d.ByComplexity {
			byComplexity[string(c)] = m
		}
		out = append(out, &Pattern{
			UserID:      userID,
			PatternType: TypeOptimalDuration,
			PatternName: "Optimal session length",
			Confidence:  d.Confidence,
			Data: DurationPayload{
				RecommendedMinutes: d.RecommendedMinutes,
				DurationRange:      d.Optimal.DurationRange,
				ByComplexity:       byComplexity,
			},
			Evidence: []string{
				fmt.Sprintf("%d sessions in the %s range averaged %.1f%% performance", d.Optimal.SessionCount, d.Optimal.DurationRange, d.Optimal.AvgPerformance),
				fmt.Sprintf("Objective completion in that range: %.0f%%", d.Optimal.CompletionRate*100),
			},
			OccurrenceCount: 1,
			FirstDetectedAt: now,
			LastSeenAt:      now,
		})
	}

	if c := r.content; c != nil && c.TotalEvents > 0 {
		payload := contentPayloadFrom(c)
		top, share := topPreference(c)
		out = append(out, &Pattern{
			UserID:      userID,
			PatternType: TypeContentPreference,
			PatternName: "Content preference",
			Confidence:  c.Confidence,
			Data:        payload,
			Evidence: []string{
				fmt.Sprintf("%s content received %.0f%% of engagement", top, share*100),
				fmt.Sprintf("Dominant learning style: %s", payload.DominantStyle),
			},
			OccurrenceCount: 1,
			FirstDetectedAt: now,
			LastSeenAt:      now,
		})
	}

	if f := r.forgetting; f != nil && f.ReviewCount > 0 {
		out = append(out, &Pattern{
			UserID:      userID,
			PatternType: TypeForgettingCurve,
			PatternName: "Personal forgetting curve",
			Confidence:  f.Confidence,
			Data:        ForgettingPayload{StabilityDays: f.StabilityDays, HalfLifeDays: f.HalfLifeDays},
			Evidence: []string{
				fmt.Sprintf("Estimated memory stability %.1f days over %d reviews", f.StabilityDays, f.ReviewCount),
			},
			OccurrenceCount: 1,
			FirstDetectedAt: now,
			LastSeenAt:      now,
		})
	}

	return out
}

func topPreference(c *analyzer.ContentResult) (string, float64) {
	best, bestV := "", -1.0
	for ct, v := range c.Preferences {
		if v > bestV || (v == bestV && string(ct) < best) {
			best, bestV = string(ct), v
		}
	}
	return best, bestV
}

// applyLifecycle reconciles candidates against existing patterns: evolve on
// reoccurrence, decay on non-occurrence, save new candidates above the
// threshold, delete expired rows. Returns the surviving set.
func (e *Engine) applyLifecycle(ctx context.Context, userID string, candidates []*Pattern, now time.Time) ([]*Pattern, error) {
	existing, err := e.patterns.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list patterns: %w", err)
	}

	byType := map[Type]*Pattern{}
	for _, p := range existing {
		byType[p.PatternType] = p
	}

	var survivors []*Pattern
	seen := map[Type]bool{}

	for _, cand := range candidates {
		seen[cand.PatternType] = true

		if err := ValidatePayload(cand.Data); err != nil {
			e.log.Warn("dropping candidate with invalid payload", "user", userID, "type", cand.PatternType, "err", err)
			continue
		}

		if prev, ok := byType[cand.PatternType]; ok {
			Evolve(prev, cand, now)
			if err := e.patterns.Update(ctx, prev); err != nil {
				return nil, fmt.Errorf("update pattern %s: %w", prev.ID, err)
			}
			survivors = append(survivors, prev)
			continue
		}

		if cand.Confidence < SaveThreshold {
			continue
		}
		if err := e.patterns.Save(ctx, cand); err != nil {
			return nil, fmt.Errorf("save pattern %s: %w", cand.PatternType, err)
		}
		survivors = append(survivors, cand)
	}

	for _, prev := range existing {
		if seen[prev.PatternType] {
			continue
		}
		Decay(prev)
		if Expired(prev) {
			if err := e.patterns.Delete(ctx, prev.ID); err != nil {
				return nil, fmt.Errorf("delete pattern %s: %w", prev.ID, err)
			}
			continue
		}
		if err := e.patterns.Update(ctx, prev); err != nil {
			return nil, fmt.Errorf("update pattern %s: %w", prev.ID, err)
		}
		survivors = append(survivors, prev)
	}

	return survivors, nil
}

func (e *Engine) regenerateInsights(ctx context.Context, userID string, patterns []*Pattern, now time.Time) ([]*Insight, error) {
	existing, err := e.insights.ListUnacknowledged(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list insights: %w", err)
	}

	derived := DeriveInsights(patterns, existing, now)
	for _, ins := range derived {
		if err := e.insights.Save(ctx, ins); err != nil {
			return nil, fmt.Errorf("save insight %q: %w", ins.Title, err)
		}
	}
	return derived, nil
}

func (e *Engine) buildProfile(userID string, now time.Time, r analyzerResults, counts sampleCounts) *Profile {
	p := &Profile{
		UserID:             userID,
		OptimalDurationMin: analyzer.DefaultDurationMinutes,
		ContentPreferences: map[string]float64{},
		StabilityDays:      analyzer.DefaultStabilityDays,
		DataQualityScore:   dataQuality(counts.sessions, counts.reviews, counts.loadSamples, counts.historyWeeks),
		LastAnalyzedAt:     now,
	}
	if st := r.studyTime; st != nil {
		for _, w := range st.OptimalWindows {
			p.PreferredWindows = append(p.PreferredWindows, StudyWindow{StartHour: w.StartHour, EndHour: w.EndHour, Score: w.Score})
		}
	}
	if d := r.duration; d != nil {
		p.OptimalDurationMin = d.RecommendedMinutes
	}
	if c := r.content; c != nil {
		for ct, v := range c.Preferences {
			p.ContentPreferences[string(ct)] = v
		}
		p.LearningStyle = c.Profile
	}
	if f := r.forgetting; f != nil {
		p.StabilityDays = f.StabilityDays
		p.HalfLifeDays = f.HalfLifeDays
	}
	return p
}
