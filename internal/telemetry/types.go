package telemetry

import "time"

// Rating is the learner's self-graded outcome of a single spaced review.
type Rating string

const (
	RatingAgain Rating = "AGAIN"
	RatingHard  Rating = "HARD"
	RatingGood  Rating = "GOOD"
	RatingEasy  Rating = "EASY"
)

// Correct reports whether the review counts toward performance.
func (r Rating) Correct() bool {
	return r == RatingGood || r == RatingEasy
}

// Review is one spaced-review outcome.
type Review struct {
	ReviewedAt     time.Time
	Rating         Rating
	StabilityAfter float64 // FSRS stability (days) after this review
}

// ObjectiveCompletion records one session objective's outcome.
// An objective counts as completed when explicitly marked complete or
// when the learner's self-assessment is 4 or higher (1–5 scale).
type ObjectiveCompletion struct {
	Completed      bool
	SelfAssessment int
}

// Done applies the completion rule.
func (o ObjectiveCompletion) Done() bool {
	return o.Completed || o.SelfAssessment >= 4
}

// Session is one study session with its embedded review outcomes.
type Session struct {
	ID          string
	UserID      string
	StartedAt   time.Time
	CompletedAt *time.Time
	DurationMs  int64
	Reviews     []Review
	Objectives  []ObjectiveCompletion
	MissionID   string
}

// Completed reports whether the session was finished.
func (s *Session) Completed() bool {
	return s.CompletedAt != nil
}

// DurationMinutes returns the session length in minutes, preferring the
// recorded duration and falling back to the start/complete interval.
func (s *Session) DurationMinutes() float64 {
	if s.DurationMs > 0 {
		return float64(s.DurationMs) / 60000.0
	}
	if s.CompletedAt != nil {
		return s.CompletedAt.Sub(s.StartedAt).Minutes()
	}
	return 0
}

// Performance returns the percentage of correct reviews (0–100).
// Sessions with no reviews score 0.
func (s *Session) Performance() float64 {
	if len(s.Reviews) == 0 {
		return 0
	}
	correct := 0
	for _, r := range s.Reviews {
		if r.Rating.Correct() {
			correct++
		}
	}
	return float64(correct) / float64(len(s.Reviews)) * 100
}

// MissionStatus is the lifecycle state of a daily mission.
type MissionStatus string

const (
	MissionCompleted  MissionStatus = "COMPLETED"
	MissionInProgress MissionStatus = "IN_PROGRESS"
	MissionSkipped    MissionStatus = "SKIPPED"
)

// Mission is one scheduled daily mission.
type Mission struct {
	Date             time.Time
	Status           MissionStatus
	DifficultyRating *int // learner's 1–5 rating, nil if not given
}

// LoadMetric is one cognitive-load sample.
type LoadMetric struct {
	Timestamp time.Time
	LoadScore float64 // 0–100
}

// PerformanceMetric is one daily retention measurement.
type PerformanceMetric struct {
	Date           time.Time
	RetentionScore float64 // 0–1
}

// ContentType identifies one of the four tracked content families.
type ContentType string

const (
	ContentDiagram      ContentType = "diagram"
	ContentText         ContentType = "text"
	ContentClinicalCase ContentType = "clinical_case"
	ContentPrompt       ContentType = "practice_prompt"
)

// ContentTypes lists the tracked content types in stable order.
func ContentTypes() []ContentType {
	return []ContentType{ContentDiagram, ContentText, ContentClinicalCase, ContentPrompt}
}

// Event types recorded by the client surfaces.
const (
	EventGraphView         = "graph_view"
	EventNoteTaking        = "note_taking"
	EventContentEngagement = "content_engagement"
	EventPromptAnswer      = "prompt_answer"
)

// Event is one behavioral event. Score carries the grade for prompt
// answers (0–100) and the engagement rating for content engagement;
// SessionPerformance is the surrounding session's review performance
// when the client knows it.
type Event struct {
	Timestamp          time.Time
	EventType          string
	ContentType        ContentType
	EngagedMs          int64
	Score              float64
	Completed          bool
	SessionPerformance float64
}
