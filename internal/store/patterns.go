package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cadence/ent"
	"github.com/abhisek/cadence/ent/behavioralinsight"
	"github.com/abhisek/cadence/ent/behavioralpattern"
	"github.com/abhisek/cadence/ent/learningprofile"
	entschema "github.com/abhisek/cadence/ent/schema"
	"github.com/abhisek/cadence/internal/analyzer"
	"github.com/abhisek/cadence/internal/pattern"
)

// patternRepo implements pattern.Repo over the ent client.
type patternRepo struct {
	client *ent.Client
}

func (r *patternRepo) ListByUser(ctx context.Context, userID string) ([]*pattern.Pattern, error) {
	rows, err := r.client.BehavioralPattern.Query().
		Where(behavioralpattern.UserID(userID)).
		Order(ent.Asc(behavioralpattern.FieldPatternType)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query patterns: %w", err)
	}

	out := make([]*pattern.Pattern, 0, len(rows))
	for _, row := range rows {
		p, err := patternFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *patternRepo) Save(ctx context.Context, p *pattern.Pattern) error {
	raw, err := pattern.EncodePayload(p.Data)
	if err != nil {
		return err
	}
	row, err := r.client.BehavioralPattern.Create().
		SetUserID(p.UserID).
		SetPatternType(string(p.PatternType)).
		SetPatternName(p.PatternName).
		SetConfidence(p.Confidence).
		SetData(raw).
		SetEvidence(p.Evidence).
		SetOccurrenceCount(p.OccurrenceCount).
		SetFirstDetectedAt(p.FirstDetectedAt).
		SetLastSeenAt(p.LastSeenAt).
		SetConsecutiveNonOccurrences(p.ConsecutiveNonOccurrences).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save pattern: %w", err)
	}
	p.ID = row.ID
	return nil
}

func (r *patternRepo) Update(ctx context.Context, p *pattern.Pattern) error {
	raw, err := pattern.EncodePayload(p.Data)
	if err != nil {
		return err
	}
	_, err = r.client.BehavioralPattern.UpdateOneID(p.ID).
		SetPatternName(p.PatternName).
		SetConfidence(p.Confidence).
		SetData(raw).
		SetEvidence(p.Evidence).
		SetOccurrenceCount(p.OccurrenceCount).
		SetLastSeenAt(p.LastSeenAt).
		SetConsecutiveNonOccurrences(p.ConsecutiveNonOccurrences).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update pattern: %w", err)
	}
	return nil
}

func (r *patternRepo) Delete(ctx context.Context, id string) error {
	if err := r.client.BehavioralPattern.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete pattern: %w", err)
	}
	return nil
}

func patternFromRow(row *ent.BehavioralPattern) (*pattern.Pattern, error) {
	payload, err := pattern.DecodePayload(pattern.Type(row.PatternType), row.Data)
	if err != nil {
		return nil, err
	}
	return &pattern.Pattern{
		ID:                        row.ID,
		UserID:                    row.UserID,
		PatternType:               pattern.Type(row.PatternType),
		PatternName:               row.PatternName,
		Confidence:                row.Confidence,
		Data:                      payload,
		Evidence:                  row.Evidence,
		OccurrenceCount:           row.OccurrenceCount,
		FirstDetectedAt:           row.FirstDetectedAt,
		LastSeenAt:                row.LastSeenAt,
		ConsecutiveNonOccurrences: row.ConsecutiveNonOccurrences,
	}, nil
}

// insightRepo implements pattern.InsightRepo over the ent client.
type insightRepo struct {
	client *ent.Client
}

func (r *insightRepo) ListUnacknowledged(ctx context.Context, userID string) ([]*pattern.Insight, error) {
	rows, err := r.client.BehavioralInsight.Query().
		Where(
			behavioralinsight.UserID(userID),
			behavioralinsight.Acknowledged(false),
		).
		Order(ent.Desc(behavioralinsight.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query insights: %w", err)
	}

	out := make([]*pattern.Insight, 0, len(rows))
	for _, row := range rows {
		out = append(out, &pattern.Insight{
			ID:               row.ID,
			UserID:           row.UserID,
			InsightType:      pattern.Type(row.InsightType),
			Title:            row.Title,
			Body:             row.Body,
			Impact:           row.Impact,
			Confidence:       row.Confidence,
			SourcePatternIDs: row.SourcePatternIds,
			Acknowledged:     row.Acknowledged,
			CreatedAt:        row.CreatedAt,
		})
	}
	return out, nil
}

func (r *insightRepo) Save(ctx context.Context, ins *pattern.Insight) error {
	row, err := r.client.BehavioralInsight.Create().
		SetUserID(ins.UserID).
		SetInsightType(string(ins.InsightType)).
		SetTitle(ins.Title).
		SetBody(ins.Body).
		SetImpact(ins.Impact).
		SetConfidence(ins.Confidence).
		SetSourcePatternIds(ins.SourcePatternIDs).
		SetAcknowledged(ins.Acknowledged).
		SetCreatedAt(ins.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save insight: %w", err)
	}
	ins.ID = row.ID
	return nil
}

// profileRepo implements pattern.ProfileRepo over the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, userID string) (*pattern.Profile, error) {
	row, err := r.client.LearningProfile.Query().
		Where(learningprofile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	p := &pattern.Profile{
		UserID:             row.UserID,
		OptimalDurationMin: row.OptimalDurationMin,
		ContentPreferences: row.ContentPreferences,
		StabilityDays:      row.StabilityDays,
		HalfLifeDays:       row.HalfLifeDays,
		DataQualityScore:   row.DataQualityScore,
		LastAnalyzedAt:     row.LastAnalyzedAt,
	}
	for _, w := range row.PreferredWindows {
		p.PreferredWindows = append(p.PreferredWindows, pattern.StudyWindow{
			StartHour: w.StartHour,
			EndHour:   w.EndHour,
			Score:     w.Score,
		})
	}
	if row.LearningStyle != nil {
		p.LearningStyle = analyzer.VARKProfile{
			Visual:      row.LearningStyle.Visual,
			Auditory:    row.LearningStyle.Auditory,
			Reading:     row.LearningStyle.Reading,
			Kinesthetic: row.LearningStyle.Kinesthetic,
		}
	}
	return p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, p *pattern.Profile) error {
	windows := make([]entschema.WindowSample, 0, len(p.PreferredWindows))
	for _, w := range p.PreferredWindows {
		windows = append(windows, entschema.WindowSample{
			StartHour: w.StartHour,
			EndHour:   w.EndHour,
			Score:     w.Score,
		})
	}
	style := &entschema.StyleSample{
		Visual:      p.LearningStyle.Visual,
		Auditory:    p.LearningStyle.Auditory,
		Reading:     p.LearningStyle.Reading,
		Kinesthetic: p.LearningStyle.Kinesthetic,
	}

	existing, err := r.client.LearningProfile.Query().
		Where(learningprofile.UserID(p.UserID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query profile: %w", err)
		}
		_, err = r.client.LearningProfile.Create().
			SetUserID(p.UserID).
			SetPreferredWindows(windows).
			SetOptimalDurationMin(p.OptimalDurationMin).
			SetContentPreferences(p.ContentPreferences).
			SetLearningStyle(style).
			SetStabilityDays(p.StabilityDays).
			SetHalfLifeDays(p.HalfLifeDays).
			SetDataQualityScore(p.DataQualityScore).
			SetLastAnalyzedAt(p.LastAnalyzedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetPreferredWindows(windows).
		SetOptimalDurationMin(p.OptimalDurationMin).
		SetContentPreferences(p.ContentPreferences).
		SetLearningStyle(style).
		SetStabilityDays(p.StabilityDays).
		SetHalfLifeDays(p.HalfLifeDays).
		SetDataQualityScore(p.DataQualityScore).
		SetLastAnalyzedAt(p.LastAnalyzedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
