package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cadence/ent"
	"github.com/abhisek/cadence/ent/burnoutassessment"
	entschema "github.com/abhisek/cadence/ent/schema"
	"github.com/abhisek/cadence/internal/burnout"
)

// burnoutRepo implements burnout.Repo over the ent client.
type burnoutRepo struct {
	client *ent.Client
}

func (r *burnoutRepo) Save(ctx context.Context, a *burnout.Assessment) error {
	factors := make([]entschema.FactorSample, 0, len(a.Factors))
	for _, f := range a.Factors {
		factors = append(factors, entschema.FactorSample{
			Name:       f.Name,
			Score:      f.Score,
			Weight:     f.Weight,
			Percentage: f.Percentage,
		})
	}
	signals := make([]entschema.SignalSample, 0, len(a.Signals))
	for _, s := range a.Signals {
		signals = append(signals, entschema.SignalSample{
			Name:        s.Name,
			Detected:    s.Detected,
			Severity:    s.Severity,
			Description: s.Description,
		})
	}
	intervention := &entschema.InterventionSample{
		Plan:    string(a.Intervention.Plan),
		Actions: a.Intervention.Actions,
	}

	row, err := r.client.BurnoutAssessment.Create().
		SetUserID(a.UserID).
		SetRiskScore(a.RiskScore).
		SetRiskLevel(string(a.RiskLevel)).
		SetFactors(factors).
		SetSignals(signals).
		SetIntervention(intervention).
		SetAssessmentDate(a.AssessmentDate).
		SetConfidence(a.Confidence).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}
	a.ID = row.ID
	return nil
}

func (r *burnoutRepo) Recent(ctx context.Context, userID string, limit int) ([]*burnout.Assessment, error) {
	rows, err := r.client.BurnoutAssessment.Query().
		Where(burnoutassessment.UserID(userID)).
		Order(ent.Desc(burnoutassessment.FieldAssessmentDate)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}

	out := make([]*burnout.Assessment, 0, len(rows))
	for _, row := range rows {
		a := &burnout.Assessment{
			ID:             row.ID,
			UserID:         row.UserID,
			RiskScore:      row.RiskScore,
			RiskLevel:      burnout.RiskLevel(row.RiskLevel),
			AssessmentDate: row.AssessmentDate,
			Confidence:     row.Confidence,
		}
		for _, f := range row.Factors {
			a.Factors = append(a.Factors, burnout.Factor{
				Name:       f.Name,
				Score:      f.Score,
				Weight:     f.Weight,
				Percentage: f.Percentage,
			})
		}
		for _, s := range row.Signals {
			a.Signals = append(a.Signals, burnout.Signal{
				Name:        s.Name,
				Detected:    s.Detected,
				Severity:    s.Severity,
				Description: s.Description,
			})
		}
		if row.Intervention != nil {
			a.Intervention = burnout.Intervention{
				Plan:    burnout.PlanType(row.Intervention.Plan),
				Actions: row.Intervention.Actions,
			}
		}
		out = append(out, a)
	}
	return out, nil
}
