package store

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	entschema "github.com/abhisek/cadence/ent/schema"
	"github.com/abhisek/cadence/internal/telemetry"
	"github.com/google/uuid"
)

// SeedDemo writes a plausible telemetry history for userID covering the
// trailing days. Deterministic for a given user and day count so demo runs
// are reproducible.
func (s *Store) SeedDemo(ctx context.Context, userID string, days int) error {
	rng := rand.New(rand.NewSource(int64(len(userID)*1000 + days)))
	now := time.Now()
	start := now.AddDate(0, 0, -days)

	for day := 0; day < days; day++ {
		date := start.AddDate(0, 0, day)

		// One or two sessions per day, clustered in the morning and evening.
		nSessions := 1 + rng.Intn(2)
		for i := 0; i < nSessions; i++ {
			hour := 8 + rng.Intn(3)
			if i == 1 {
				hour = 19 + rng.Intn(2)
			}
			startedAt := time.Date(date.Year(), date.Month(), date.Day(), hour, rng.Intn(60), 0, 0, time.Local)
			durationMin := 35 + rng.Intn(25)
			completedAt := startedAt.Add(time.Duration(durationMin) * time.Minute)

			var reviews []entschema.ReviewSample
			nReviews := 10 + rng.Intn(15)
			for j := 0; j < nReviews; j++ {
				rating := telemetry.RatingGood
				switch rng.Intn(10) {
				case 0:
					rating = telemetry.RatingAgain
				case 1, 2:
					rating = telemetry.RatingHard
				case 3:
					rating = telemetry.RatingEasy
				}
				reviewedAt := startedAt.Add(time.Duration(j) * time.Duration(durationMin) * time.Minute / time.Duration(nReviews))
				stability := 1.5 + float64(day)*0.05 + rng.Float64()
				reviews = append(reviews, entschema.ReviewSample{
					ReviewedAt:     reviewedAt.UnixMilli(),
					Rating:         string(rating),
					StabilityAfter: stability,
				})

				_, err := s.client.ReviewEvent.Create().
					SetUserID(userID).
					SetReviewedAt(reviewedAt).
					SetRating(string(rating)).
					SetStabilityAfter(stability).
					Save(ctx)
				if err != nil {
					return fmt.Errorf("seed review: %w", err)
				}
			}

			objectives := []entschema.ObjectiveSample{
				{Completed: true, SelfAssessment: 4},
				{Completed: rng.Intn(4) > 0, SelfAssessment: 3 + rng.Intn(3)},
			}

			_, err := s.client.StudySession.Create().
				SetUserID(userID).
				SetSessionID(uuid.NewString()).
				SetStartedAt(startedAt).
				SetCompletedAt(completedAt).
				SetDurationMs(int64(durationMin) * 60_000).
				SetReviews(reviews).
				SetObjectives(objectives).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("seed session: %w", err)
			}

			if err := s.seedEvents(ctx, userID, startedAt, rng); err != nil {
				return err
			}
		}

		status := telemetry.MissionCompleted
		if rng.Intn(8) == 0 {
			status = telemetry.MissionSkipped
		}
		_, err := s.client.Mission.Create().
			SetUserID(userID).
			SetDate(date).
			SetStatus(string(status)).
			SetDifficultyRating(2 + rng.Intn(3)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("seed mission: %w", err)
		}

		_, err = s.client.LoadMetric.Create().
			SetUserID(userID).
			SetTimestamp(date.Add(12 * time.Hour)).
			SetLoadScore(35 + rng.Float64()*25).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("seed load metric: %w", err)
		}

		_, err = s.client.PerformanceMetric.Create().
			SetUserID(userID).
			SetDate(date).
			SetRetentionScore(0.7 + rng.Float64()*0.2).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("seed performance metric: %w", err)
		}
	}
	return nil
}

func (s *Store) seedEvents(ctx context.Context, userID string, at time.Time, rng *rand.Rand) error {
	kinds := []struct {
		eventType string
		content   telemetry.ContentType
	}{
		{telemetry.EventGraphView, telemetry.ContentDiagram},
		{telemetry.EventContentEngagement, telemetry.ContentText},
		{telemetry.EventContentEngagement, telemetry.ContentClinicalCase},
		{telemetry.EventPromptAnswer, telemetry.ContentPrompt},
		{telemetry.EventNoteTaking, telemetry.ContentText},
	}
	for i, k := range kinds {
		if rng.Intn(3) == 0 {
			continue
		}
		_, err := s.client.BehavioralEvent.Create().
			SetUserID(userID).
			SetTimestamp(at.Add(time.Duration(i*5) * time.Minute)).
			SetEventType(k.eventType).
			SetContentType(string(k.content)).
			SetEngagedMs(int64(2+rng.Intn(8)) * 60_000).
			SetScore(60 + rng.Float64()*35).
			SetCompleted(rng.Intn(5) > 0).
			SetSessionPerformance(65 + rng.Float64()*25).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("seed event: %w", err)
		}
	}
	return nil
}
