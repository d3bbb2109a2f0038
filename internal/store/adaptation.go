package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cadence/ent"
	"github.com/abhisek/cadence/ent/adaptationevent"
	"github.com/abhisek/cadence/internal/adapt"
)

// adaptationLog implements adapt.AdaptationLog over the ent client.
type adaptationLog struct {
	client *ent.Client
}

func (l *adaptationLog) Append(ctx context.Context, entry adapt.LogEntry) error {
	_, err := l.client.AdaptationEvent.Create().
		SetUserID(entry.UserID).
		SetTimestamp(entry.Timestamp).
		SetLoad(entry.Load).
		SetEffectiveLoad(entry.EffectiveLoad).
		SetZone(string(entry.Zone)).
		SetAction(string(entry.Action)).
		SetDifficultyChange(entry.DifficultyChange).
		SetReviewRatio(entry.ReviewRatio).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save adaptation event: %w", err)
	}
	return nil
}

// RecentAdaptations returns the user's latest adjustment decisions, newest
// first.
func (s *Store) RecentAdaptations(ctx context.Context, userID string, limit int) ([]adapt.LogEntry, error) {
	rows, err := s.client.AdaptationEvent.Query().
		Where(adaptationevent.UserID(userID)).
		Order(ent.Desc(adaptationevent.FieldTimestamp)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query adaptation events: %w", err)
	}

	out := make([]adapt.LogEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, adapt.LogEntry{
			UserID:           row.UserID,
			Timestamp:        row.Timestamp,
			Load:             row.Load,
			EffectiveLoad:    row.EffectiveLoad,
			Zone:             adapt.Zone(row.Zone),
			Action:           adapt.Action(row.Action),
			DifficultyChange: row.DifficultyChange,
			ReviewRatio:      row.ReviewRatio,
		})
	}
	return out, nil
}
