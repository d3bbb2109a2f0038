package recommend

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cadence/internal/burnout"
	"github.com/abhisek/cadence/internal/pattern"
)

var genNow = time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

func TestPriorityScore(t *testing.T) {
	r := &Recommendation{Confidence: 0.9, EstimatedImpact: 0.8, Ease: 0.7, UserReadiness: 0.6}
	assert.InDelta(t, 0.79, PriorityScore(r), 1e-9)

	// Impact carries the largest weight.
	impactful := &Recommendation{Confidence: 0.5, EstimatedImpact: 1.0, Ease: 0.5, UserReadiness: 0.5}
	confident := &Recommendation{Confidence: 1.0, EstimatedImpact: 0.5, Ease: 0.5, UserReadiness: 0.5}
	assert.Greater(t, PriorityScore(impactful), PriorityScore(confident))
}

func TestPrioritize_PerTypeCap(t *testing.T) {
	var candidates []*Recommendation
	for i, score := range []float64{0.9, 0.8, 0.7, 0.6, 0.5} {
		candidates = append(candidates, &Recommendation{
			RecommendationType: TypeSchedule,
			Title:              fmt.Sprintf("schedule %d", i),
			PriorityScore:      score,
		})
	}
	candidates = append(candidates, &Recommendation{
		RecommendationType: TypeContent,
		Title:              "content",
		PriorityScore:      0.4,
	})

	out := Prioritize(candidates)
	require.Len(t, out, 3)
	assert.Equal(t, 0.9, out[0].PriorityScore)
	assert.Equal(t, 0.8, out[1].PriorityScore)
	// The cap skips the remaining schedule candidates but keeps scanning.
	assert.Equal(t, TypeContent, out[2].RecommendationType)
}

func TestPrioritize_DeterministicTieBreak(t *testing.T) {
	a := &Recommendation{RecommendationType: TypeSchedule, Title: "same", PriorityScore: 0.7, SourcePatternIDs: []string{"pat-a"}}
	b := &Recommendation{RecommendationType: TypeContent, Title: "same", PriorityScore: 0.7, SourcePatternIDs: []string{"pat-b"}}

	first := Prioritize([]*Recommendation{a, b})
	second := Prioritize([]*Recommendation{b, a})
	require.Len(t, first, 2)
	assert.Equal(t, "pat-a", first[0].SourcePatternIDs[0])
	assert.Equal(t, first[0], second[0])
	assert.Equal(t, first[1], second[1])
}

func TestGenerate(t *testing.T) {
	f := newFixture()
	f.patterns.rows = []*pattern.Pattern{
		{
			ID: "p1", UserID: "u1", PatternType: pattern.TypeOptimalStudyTime, Confidence: 0.9,
			Data: pattern.StudyTimePayload{Windows: []pattern.StudyWindow{{StartHour: 9, EndHour: 11}}},
		},
		{
			ID: "p2", UserID: "u1", PatternType: pattern.TypeOptimalDuration, Confidence: 0.75,
			Data: pattern.DurationPayload{RecommendedMinutes: 45, DurationRange: "40-50 min"},
		},
		// Below the source threshold, never a candidate.
		{
			ID: "p3", UserID: "u1", PatternType: pattern.TypeContentPreference, Confidence: 0.5,
			Data: pattern.ContentPayload{DominantStyle: "visual"},
		},
	}
	f.insights.rows = []*pattern.Insight{
		{ID: "i1", UserID: "u1", InsightType: pattern.TypeForgettingCurve, Confidence: 0.8,
			Title: "Reviews are slipping past your forgetting window", Body: "details"},
	}
	f.assessments.rows = []*burnout.Assessment{{
		UserID: "u1", RiskLevel: burnout.RiskHigh, Confidence: 0.7, AssessmentDate: genNow,
		Intervention: burnout.Intervention{Plan: burnout.PlanWorkloadReduction, Actions: []string{"Cut volume by a third"}},
	}}

	recs, err := f.engine.Generate(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, recs, 4)

	// Sorted by priority; every persisted recommendation has an ID.
	for i, r := range recs {
		assert.NotEmpty(t, r.ID)
		assert.True(t, r.CreatedAt.Equal(genNow))
		if i > 0 {
			assert.GreaterOrEqual(t, recs[i-1].PriorityScore, r.PriorityScore)
		}
	}

	assert.Equal(t, "Schedule hard material at 09:00", recs[0].Title)
	assert.Equal(t, []string{"p1"}, recs[0].SourcePatternIDs)
	// readiness 0.6 from the profile: 0.9*0.3 + 0.85*0.4 + 0.7*0.2 + 0.6*0.1
	assert.InDelta(t, 0.81, recs[0].PriorityScore, 1e-9)

	types := map[Type]int{}
	for _, r := range recs {
		types[r.RecommendationType]++
	}
	assert.Equal(t, 1, types[TypeReviewScheduling])
	assert.Equal(t, 1, types[TypeWellbeing])
	assert.Zero(t, types[TypeContent])
}

func TestGenerate_SkipsWhileFreshOpenSetFull(t *testing.T) {
	f := newFixture()
	for i := 0; i < MaxPerCycle; i++ {
		f.recs.rows = append(f.recs.rows, &Recommendation{
			ID: fmt.Sprintf("r%d", i), UserID: "u1",
			RecommendationType: TypeSchedule, Title: fmt.Sprintf("t%d", i),
			CreatedAt: genNow.Add(-time.Hour),
		})
	}
	f.patterns.rows = []*pattern.Pattern{{
		ID: "p1", UserID: "u1", PatternType: pattern.TypeOptimalStudyTime, Confidence: 0.9,
		Data: pattern.StudyTimePayload{Windows: []pattern.StudyWindow{{StartHour: 9, EndHour: 11}}},
	}}

	recs, err := f.engine.Generate(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, recs, MaxPerCycle)
	assert.Equal(t, MaxPerCycle, len(f.recs.rows), "no new recommendations while the fresh set is full")
}

func TestGenerate_DeduplicatesAgainstOpen(t *testing.T) {
	f := newFixture()
	// Stale but still open: does not trip the fresh-set skip, does dedupe.
	f.recs.rows = append(f.recs.rows, &Recommendation{
		ID: "r1", UserID: "u1",
		RecommendationType: TypeSchedule, Title: "Schedule hard material at 09:00",
		CreatedAt: genNow.Add(-48 * time.Hour),
	})
	f.patterns.rows = []*pattern.Pattern{{
		ID: "p1", UserID: "u1", PatternType: pattern.TypeOptimalStudyTime, Confidence: 0.9,
		Data: pattern.StudyTimePayload{Windows: []pattern.StudyWindow{{StartHour: 9, EndHour: 11}}},
	}}

	recs, err := f.engine.Generate(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.Len(t, f.recs.rows, 1)
}

func TestApplyAndEvaluate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.patterns.rows = []*pattern.Pattern{
		{ID: "p1", UserID: "u1", PatternType: pattern.TypeOptimalStudyTime, Confidence: 0.8,
			Data: pattern.StudyTimePayload{Windows: []pattern.StudyWindow{{StartHour: 9, EndHour: 11}}}},
	}
	f.telemetry.weeklySessions = 3
	rec := &Recommendation{UserID: "u1", RecommendationType: TypeSchedule, Title: "t", CreatedAt: genNow}
	require.NoError(t, f.recs.Save(ctx, rec))

	a, err := f.engine.Apply(ctx, rec.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.InDelta(t, 0.8, a.Baseline.MeanPatternConfidence, 1e-9)
	assert.InDelta(t, 0.6, a.Baseline.DataQualityScore, 1e-9)
	assert.Equal(t, 3, a.Baseline.WeeklySessionCount)

	stored, err := f.recs.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.AppliedAt)
	assert.False(t, stored.Open())

	// Applying twice is rejected.
	_, err = f.engine.Apply(ctx, rec.ID)
	require.Error(t, err)

	// Too early to evaluate.
	f.clock.t = genNow.Add(7 * 24 * time.Hour)
	_, err = f.engine.Evaluate(ctx, a.ID)
	require.ErrorIs(t, err, ErrPrematureEvaluation)

	// Two weeks later the behavior has improved across all three metrics.
	f.clock.t = genNow.Add(15 * 24 * time.Hour)
	f.patterns.rows[0].Confidence = 0.9
	f.profiles.profile.DataQualityScore = 0.72
	f.telemetry.weeklySessions = 6

	eff, err := f.engine.Evaluate(ctx, a.ID)
	require.NoError(t, err)
	// Mean of 0.125, 0.2, and 1.0.
	assert.InDelta(t, 0.44166, eff, 1e-4)

	updated, err := f.applied.Get(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.Effectiveness)
	assert.InDelta(t, eff, *updated.Effectiveness, 1e-9)
	require.NotNil(t, updated.Current)
	assert.Equal(t, 6, updated.Current.WeeklySessionCount)
	require.NotNil(t, updated.EvaluatedAt)
}

func TestDismiss(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	rec := &Recommendation{UserID: "u1", RecommendationType: TypeSchedule, Title: "t", CreatedAt: genNow}
	require.NoError(t, f.recs.Save(ctx, rec))

	require.NoError(t, f.engine.Dismiss(ctx, rec.ID))
	stored, err := f.recs.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.DismissedAt)

	require.Error(t, f.engine.Dismiss(ctx, rec.ID))
}

func TestEffectiveness(t *testing.T) {
	base := Metrics{MeanPatternConfidence: 0.8, DataQualityScore: 0.6, WeeklySessionCount: 3}

	assert.Zero(t, Effectiveness(Metrics{}, base), "all-zero baseline has nothing to compare")

	// Regression clamps to zero, runaway improvement clamps to one.
	worse := Metrics{MeanPatternConfidence: 0.4, DataQualityScore: 0.3, WeeklySessionCount: 1}
	assert.Zero(t, Effectiveness(base, worse))

	surge := Metrics{MeanPatternConfidence: 0.8, DataQualityScore: 0.6, WeeklySessionCount: 30}
	assert.Equal(t, 1.0, Effectiveness(base, surge))

	// Zero-baseline metrics are excluded, not treated as infinite gains.
	partial := Metrics{MeanPatternConfidence: 0.5, DataQualityScore: 0, WeeklySessionCount: 0}
	got := Effectiveness(partial, Metrics{MeanPatternConfidence: 0.6, DataQualityScore: 0.9, WeeklySessionCount: 10})
	assert.InDelta(t, 0.2, got, 1e-9)
}
