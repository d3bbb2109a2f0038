package pattern

import "context"

// Repo persists behavioral patterns. Implementations live in the store
// package; the engine only sees this interface.
type Repo interface {
	// ListByUser returns all of a user's patterns.
	ListByUser(ctx context.Context, userID string) ([]*Pattern, error)

	// Save inserts a new pattern and fills in its ID.
	Save(ctx context.Context, p *Pattern) error

	// Update rewrites an existing pattern's mutable fields.
	Update(ctx context.Context, p *Pattern) error

	// Delete removes a pattern.
	Delete(ctx context.Context, id string) error
}

// InsightRepo persists behavioral insights.
type InsightRepo interface {
	// ListUnacknowledged returns the user's open insights.
	ListUnacknowledged(ctx context.Context, userID string) ([]*Insight, error)

	// Save inserts a new insight and fills in its ID.
	Save(ctx context.Context, ins *Insight) error
}

// ProfileRepo persists the per-user learning profile.
type ProfileRepo interface {
	// Get returns the user's profile, or nil if none exists yet.
	Get(ctx context.Context, userID string) (*Profile, error)

	// Upsert creates or replaces the profile.
	Upsert(ctx context.Context, p *Profile) error
}
