package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/cadence/ent"
	"github.com/abhisek/cadence/ent/recommendation"
	entschema "github.com/abhisek/cadence/ent/schema"
	"github.com/abhisek/cadence/internal/recommend"
)

// recommendationRepo implements recommend.Repo over the ent client.
type recommendationRepo struct {
	client *ent.Client
}

func (r *recommendationRepo) ListOpen(ctx context.Context, userID string) ([]*recommend.Recommendation, error) {
	rows, err := r.client.Recommendation.Query().
		Where(
			recommendation.UserID(userID),
			recommendation.AppliedAtIsNil(),
			recommendation.DismissedAtIsNil(),
		).
		Order(ent.Desc(recommendation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query open recommendations: %w", err)
	}

	out := make([]*recommend.Recommendation, 0, len(rows))
	for _, row := range rows {
		out = append(out, recommendationFromRow(row))
	}
	return out, nil
}

func (r *recommendationRepo) Save(ctx context.Context, rec *recommend.Recommendation) error {
	row, err := r.client.Recommendation.Create().
		SetUserID(rec.UserID).
		SetRecType(string(rec.RecommendationType)).
		SetTitle(rec.Title).
		SetDescription(rec.Description).
		SetActionableText(rec.ActionableText).
		SetConfidence(rec.Confidence).
		SetEstimatedImpact(rec.EstimatedImpact).
		SetEase(rec.Ease).
		SetUserReadiness(rec.UserReadiness).
		SetPriorityScore(rec.PriorityScore).
		SetSourcePatternIds(rec.SourcePatternIDs).
		SetSourceInsightIds(rec.SourceInsightIDs).
		SetCreatedAt(rec.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save recommendation: %w", err)
	}
	rec.ID = row.ID
	return nil
}

func (r *recommendationRepo) Get(ctx context.Context, id string) (*recommend.Recommendation, error) {
	row, err := r.client.Recommendation.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recommendation %s: %w", id, err)
	}
	return recommendationFromRow(row), nil
}

func (r *recommendationRepo) SetApplied(ctx context.Context, id string, at time.Time) error {
	_, err := r.client.Recommendation.UpdateOneID(id).
		SetAppliedAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark recommendation applied: %w", err)
	}
	return nil
}

func (r *recommendationRepo) SetDismissed(ctx context.Context, id string, at time.Time) error {
	_, err := r.client.Recommendation.UpdateOneID(id).
		SetDismissedAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark recommendation dismissed: %w", err)
	}
	return nil
}

func recommendationFromRow(row *ent.Recommendation) *recommend.Recommendation {
	return &recommend.Recommendation{
		ID:                 row.ID,
		UserID:             row.UserID,
		RecommendationType: recommend.Type(row.RecType),
		Title:              row.Title,
		Description:        row.Description,
		ActionableText:     row.ActionableText,
		Confidence:         row.Confidence,
		EstimatedImpact:    row.EstimatedImpact,
		Ease:               row.Ease,
		UserReadiness:      row.UserReadiness,
		PriorityScore:      row.PriorityScore,
		SourcePatternIDs:   row.SourcePatternIds,
		SourceInsightIDs:   row.SourceInsightIds,
		CreatedAt:          row.CreatedAt,
		AppliedAt:          row.AppliedAt,
		DismissedAt:        row.DismissedAt,
	}
}

// appliedRepo implements recommend.AppliedRepo over the ent client.
type appliedRepo struct {
	client *ent.Client
}

func (r *appliedRepo) Save(ctx context.Context, a *recommend.Applied) error {
	row, err := r.client.AppliedRecommendation.Create().
		SetUserID(a.UserID).
		SetRecommendationID(a.RecommendationID).
		SetAppliedAt(a.AppliedAt).
		SetBaseline(metricsSample(a.Baseline)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save applied record: %w", err)
	}
	a.ID = row.ID
	return nil
}

func (r *appliedRepo) Get(ctx context.Context, id string) (*recommend.Applied, error) {
	row, err := r.client.AppliedRecommendation.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get applied record %s: %w", id, err)
	}

	a := &recommend.Applied{
		ID:               row.ID,
		RecommendationID: row.RecommendationID,
		UserID:           row.UserID,
		AppliedAt:        row.AppliedAt,
		Baseline:         metricsFromSample(row.Baseline),
		Effectiveness:    row.Effectiveness,
		EvaluatedAt:      row.EvaluatedAt,
	}
	if row.Current != nil {
		m := metricsFromSample(*row.Current)
		a.Current = &m
	}
	return a, nil
}

func (r *appliedRepo) Update(ctx context.Context, a *recommend.Applied) error {
	builder := r.client.AppliedRecommendation.UpdateOneID(a.ID)
	if a.Current != nil {
		sample := metricsSample(*a.Current)
		builder = builder.SetCurrent(&sample)
	}
	if a.Effectiveness != nil {
		builder = builder.SetEffectiveness(*a.Effectiveness)
	}
	if a.EvaluatedAt != nil {
		builder = builder.SetEvaluatedAt(*a.EvaluatedAt)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("update applied record: %w", err)
	}
	return nil
}

func metricsSample(m recommend.Metrics) entschema.MetricsSample {
	return entschema.MetricsSample{
		MeanPatternConfidence: m.MeanPatternConfidence,
		DataQualityScore:      m.DataQualityScore,
		WeeklySessionCount:    m.WeeklySessionCount,
	}
}

func metricsFromSample(s entschema.MetricsSample) recommend.Metrics {
	return recommend.Metrics{
		MeanPatternConfidence: s.MeanPatternConfidence,
		DataQualityScore:      s.DataQualityScore,
		WeeklySessionCount:    s.WeeklySessionCount,
	}
}
