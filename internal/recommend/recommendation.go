package recommend

import (
	"context"
	"time"
)

// Recommendation is one prioritized, actionable suggestion.
type Recommendation struct {
	ID                 string
	UserID             string
	RecommendationType Type
	Title              string
	Description        string
	ActionableText     string
	Confidence         float64 // 0–1, from the source
	EstimatedImpact    float64 // 0–1
	Ease               float64 // 0–1, ease of implementation
	UserReadiness      float64 // 0–1
	PriorityScore      float64
	SourcePatternIDs   []string
	SourceInsightIDs   []string
	CreatedAt          time.Time
	AppliedAt          *time.Time
	DismissedAt        *time.Time
}

// Open reports whether the recommendation is still actionable.
func (r *Recommendation) Open() bool {
	return r.AppliedAt == nil && r.DismissedAt == nil
}

// Metrics is the behavioral snapshot used for effectiveness evaluation.
type Metrics struct {
	MeanPatternConfidence float64
	DataQualityScore      float64
	WeeklySessionCount    int
}

// Applied tracks one application of a recommendation.
type Applied struct {
	ID               string
	RecommendationID string
	UserID           string
	AppliedAt        time.Time
	Baseline         Metrics
	Current          *Metrics
	Effectiveness    *float64 // 0–1, set at evaluation
	EvaluatedAt      *time.Time
}

// Repo persists recommendations.
type Repo interface {
	// ListOpen returns the user's unapplied, undismissed recommendations.
	ListOpen(ctx context.Context, userID string) ([]*Recommendation, error)

	// Save inserts a new recommendation and fills in its ID.
	Save(ctx context.Context, r *Recommendation) error

	// Get returns one recommendation by ID.
	Get(ctx context.Context, id string) (*Recommendation, error)

	// SetApplied / SetDismissed stamp the lifecycle timestamps.
	SetApplied(ctx context.Context, id string, at time.Time) error
	SetDismissed(ctx context.Context, id string, at time.Time) error
}

// AppliedRepo persists application tracking rows.
type AppliedRepo interface {
	Save(ctx context.Context, a *Applied) error
	Get(ctx context.Context, id string) (*Applied, error)
	Update(ctx context.Context, a *Applied) error
}
