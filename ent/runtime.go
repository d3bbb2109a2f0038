// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/abhisek/cadence/ent/adaptationevent"
	"github.com/abhisek/cadence/ent/appliedrecommendation"
	"github.com/abhisek/cadence/ent/behavioralevent"
	"github.com/abhisek/cadence/ent/behavioralinsight"
	"github.com/abhisek/cadence/ent/behavioralpattern"
	"github.com/abhisek/cadence/ent/burnoutassessment"
	"github.com/abhisek/cadence/ent/learningprofile"
	"github.com/abhisek/cadence/ent/loadmetric"
	"github.com/abhisek/cadence/ent/mission"
	"github.com/abhisek/cadence/ent/performancemetric"
	"github.com/abhisek/cadence/ent/recommendation"
	"github.com/abhisek/cadence/ent/reviewevent"
	"github.com/abhisek/cadence/ent/schema"
	"github.com/abhisek/cadence/ent/studysession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adaptationeventMixin := schema.AdaptationEvent{}.Mixin()
	adaptationeventMixinFields0 := adaptationeventMixin[0].Fields()
	_ = adaptationeventMixinFields0
	adaptationeventFields := schema.AdaptationEvent{}.Fields()
	_ = adaptationeventFields
	// adaptationeventDescUserID is the schema descriptor for user_id field.
	adaptationeventDescUserID := adaptationeventMixinFields0[0].Descriptor()
	// adaptationevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	adaptationevent.UserIDValidator = adaptationeventDescUserID.Validators[0].(func(string) error)
	// adaptationeventDescZone is the schema descriptor for zone field.
	adaptationeventDescZone := adaptationeventFields[3].Descriptor()
	// adaptationevent.ZoneValidator is a validator for the "zone" field. It is called by the builders before save.
	adaptationevent.ZoneValidator = adaptationeventDescZone.Validators[0].(func(string) error)
	// adaptationeventDescAction is the schema descriptor for action field.
	adaptationeventDescAction := adaptationeventFields[4].Descriptor()
	// adaptationevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	adaptationevent.ActionValidator = adaptationeventDescAction.Validators[0].(func(string) error)
	appliedrecommendationMixin := schema.AppliedRecommendation{}.Mixin()
	appliedrecommendationMixinFields0 := appliedrecommendationMixin[0].Fields()
	_ = appliedrecommendationMixinFields0
	appliedrecommendationFields := schema.AppliedRecommendation{}.Fields()
	_ = appliedrecommendationFields
	// appliedrecommendationDescUserID is the schema descriptor for user_id field.
	appliedrecommendationDescUserID := appliedrecommendationMixinFields0[0].Descriptor()
	// appliedrecommendation.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	appliedrecommendation.UserIDValidator = appliedrecommendationDescUserID.Validators[0].(func(string) error)
	// appliedrecommendationDescRecommendationID is the schema descriptor for recommendation_id field.
	appliedrecommendationDescRecommendationID := appliedrecommendationFields[1].Descriptor()
	// appliedrecommendation.RecommendationIDValidator is a validator for the "recommendation_id" field. It is called by the builders before save.
	appliedrecommendation.RecommendationIDValidator = appliedrecommendationDescRecommendationID.Validators[0].(func(string) error)
	// appliedrecommendationDescID is the schema descriptor for id field.
	appliedrecommendationDescID := appliedrecommendationFields[0].Descriptor()
	// appliedrecommendation.DefaultID holds the default value on creation for the id field.
	appliedrecommendation.DefaultID = appliedrecommendationDescID.Default.(func() string)
	behavioraleventMixin := schema.BehavioralEvent{}.Mixin()
	behavioraleventMixinFields0 := behavioraleventMixin[0].Fields()
	_ = behavioraleventMixinFields0
	behavioraleventFields := schema.BehavioralEvent{}.Fields()
	_ = behavioraleventFields
	// behavioraleventDescUserID is the schema descriptor for user_id field.
	behavioraleventDescUserID := behavioraleventMixinFields0[0].Descriptor()
	// behavioralevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	behavioralevent.UserIDValidator = behavioraleventDescUserID.Validators[0].(func(string) error)
	// behavioraleventDescEventType is the schema descriptor for event_type field.
	behavioraleventDescEventType := behavioraleventFields[1].Descriptor()
	// behavioralevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	behavioralevent.EventTypeValidator = behavioraleventDescEventType.Validators[0].(func(string) error)
	// behavioraleventDescEngagedMs is the schema descriptor for engaged_ms field.
	behavioraleventDescEngagedMs := behavioraleventFields[3].Descriptor()
	// behavioralevent.DefaultEngagedMs holds the default value on creation for the engaged_ms field.
	behavioralevent.DefaultEngagedMs = behavioraleventDescEngagedMs.Default.(int64)
	// behavioraleventDescScore is the schema descriptor for score field.
	behavioraleventDescScore := behavioraleventFields[4].Descriptor()
	// behavioralevent.DefaultScore holds the default value on creation for the score field.
	behavioralevent.DefaultScore = behavioraleventDescScore.Default.(float64)
	// behavioraleventDescCompleted is the schema descriptor for completed field.
	behavioraleventDescCompleted := behavioraleventFields[5].Descriptor()
	// behavioralevent.DefaultCompleted holds the default value on creation for the completed field.
	behavioralevent.DefaultCompleted = behavioraleventDescCompleted.Default.(bool)
	// behavioraleventDescSessionPerformance is the schema descriptor for session_performance field.
	behavioraleventDescSessionPerformance := behavioraleventFields[6].Descriptor()
	// behavioralevent.DefaultSessionPerformance holds the default value on creation for the session_performance field.
	behavioralevent.DefaultSessionPerformance = behavioraleventDescSessionPerformance.Default.(float64)
	behavioralinsightMixin := schema.BehavioralInsight{}.Mixin()
	behavioralinsightMixinFields0 := behavioralinsightMixin[0].Fields()
	_ = behavioralinsightMixinFields0
	behavioralinsightFields := schema.BehavioralInsight{}.Fields()
	_ = behavioralinsightFields
	// behavioralinsightDescUserID is the schema descriptor for user_id field.
	behavioralinsightDescUserID := behavioralinsightMixinFields0[0].Descriptor()
	// behavioralinsight.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	behavioralinsight.UserIDValidator = behavioralinsightDescUserID.Validators[0].(func(string) error)
	// behavioralinsightDescInsightType is the schema descriptor for insight_type field.
	behavioralinsightDescInsightType := behavioralinsightFields[1].Descriptor()
	// behavioralinsight.InsightTypeValidator is a validator for the "insight_type" field. It is called by the builders before save.
	behavioralinsight.InsightTypeValidator = behavioralinsightDescInsightType.Validators[0].(func(string) error)
	// behavioralinsightDescTitle is the schema descriptor for title field.
	behavioralinsightDescTitle := behavioralinsightFields[2].Descriptor()
	// behavioralinsight.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	behavioralinsight.TitleValidator = behavioralinsightDescTitle.Validators[0].(func(string) error)
	// behavioralinsightDescAcknowledged is the schema descriptor for acknowledged field.
	behavioralinsightDescAcknowledged := behavioralinsightFields[7].Descriptor()
	// behavioralinsight.DefaultAcknowledged holds the default value on creation for the acknowledged field.
	behavioralinsight.DefaultAcknowledged = behavioralinsightDescAcknowledged.Default.(bool)
	// behavioralinsightDescID is the schema descriptor for id field.
	behavioralinsightDescID := behavioralinsightFields[0].Descriptor()
	// behavioralinsight.DefaultID holds the default value on creation for the id field.
	behavioralinsight.DefaultID = behavioralinsightDescID.Default.(func() string)
	behavioralpatternMixin := schema.BehavioralPattern{}.Mixin()
	behavioralpatternMixinFields0 := behavioralpatternMixin[0].Fields()
	_ = behavioralpatternMixinFields0
	behavioralpatternFields := schema.BehavioralPattern{}.Fields()
	_ = behavioralpatternFields
	// behavioralpatternDescUserID is the schema descriptor for user_id field.
	behavioralpatternDescUserID := behavioralpatternMixinFields0[0].Descriptor()
	// behavioralpattern.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	behavioralpattern.UserIDValidator = behavioralpatternDescUserID.Validators[0].(func(string) error)
	// behavioralpatternDescPatternType is the schema descriptor for pattern_type field.
	behavioralpatternDescPatternType := behavioralpatternFields[1].Descriptor()
	// behavioralpattern.PatternTypeValidator is a validator for the "pattern_type" field. It is called by the builders before save.
	behavioralpattern.PatternTypeValidator = behavioralpatternDescPatternType.Validators[0].(func(string) error)
	// behavioralpatternDescPatternName is the schema descriptor for pattern_name field.
	behavioralpatternDescPatternName := behavioralpatternFields[2].Descriptor()
	// behavioralpattern.PatternNameValidator is a validator for the "pattern_name" field. It is called by the builders before save.
	behavioralpattern.PatternNameValidator = behavioralpatternDescPatternName.Validators[0].(func(string) error)
	// behavioralpatternDescOccurrenceCount is the schema descriptor for occurrence_count field.
	behavioralpatternDescOccurrenceCount := behavioralpatternFields[6].Descriptor()
	// behavioralpattern.DefaultOccurrenceCount holds the default value on creation for the occurrence_count field.
	behavioralpattern.DefaultOccurrenceCount = behavioralpatternDescOccurrenceCount.Default.(int)
	// behavioralpatternDescConsecutiveNonOccurrences is the schema descriptor for consecutive_non_occurrences field.
	behavioralpatternDescConsecutiveNonOccurrences := behavioralpatternFields[9].Descriptor()
	// behavioralpattern.DefaultConsecutiveNonOccurrences holds the default value on creation for the consecutive_non_occurrences field.
	behavioralpattern.DefaultConsecutiveNonOccurrences = behavioralpatternDescConsecutiveNonOccurrences.Default.(int)
	// behavioralpatternDescID is the schema descriptor for id field.
	behavioralpatternDescID := behavioralpatternFields[0].Descriptor()
	// behavioralpattern.DefaultID holds the default value on creation for the id field.
	behavioralpattern.DefaultID = behavioralpatternDescID.Default.(func() string)
	burnoutassessmentMixin := schema.BurnoutAssessment{}.Mixin()
	burnoutassessmentMixinFields0 := burnoutassessmentMixin[0].Fields()
	_ = burnoutassessmentMixinFields0
	burnoutassessmentFields := schema.BurnoutAssessment{}.Fields()
	_ = burnoutassessmentFields
	// burnoutassessmentDescUserID is the schema descriptor for user_id field.
	burnoutassessmentDescUserID := burnoutassessmentMixinFields0[0].Descriptor()
	// burnoutassessment.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	burnoutassessment.UserIDValidator = burnoutassessmentDescUserID.Validators[0].(func(string) error)
	// burnoutassessmentDescRiskLevel is the schema descriptor for risk_level field.
	burnoutassessmentDescRiskLevel := burnoutassessmentFields[2].Descriptor()
	// burnoutassessment.RiskLevelValidator is a validator for the "risk_level" field. It is called by the builders before save.
	burnoutassessment.RiskLevelValidator = burnoutassessmentDescRiskLevel.Validators[0].(func(string) error)
	// burnoutassessmentDescID is the schema descriptor for id field.
	burnoutassessmentDescID := burnoutassessmentFields[0].Descriptor()
	// burnoutassessment.DefaultID holds the default value on creation for the id field.
	burnoutassessment.DefaultID = burnoutassessmentDescID.Default.(func() string)
	learningprofileFields := schema.LearningProfile{}.Fields()
	_ = learningprofileFields
	// learningprofileDescUserID is the schema descriptor for user_id field.
	learningprofileDescUserID := learningprofileFields[0].Descriptor()
	// learningprofile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learningprofile.UserIDValidator = learningprofileDescUserID.Validators[0].(func(string) error)
	// learningprofileDescOptimalDurationMin is the schema descriptor for optimal_duration_min field.
	learningprofileDescOptimalDurationMin := learningprofileFields[2].Descriptor()
	// learningprofile.DefaultOptimalDurationMin holds the default value on creation for the optimal_duration_min field.
	learningprofile.DefaultOptimalDurationMin = learningprofileDescOptimalDurationMin.Default.(int)
	// learningprofileDescStabilityDays is the schema descriptor for stability_days field.
	learningprofileDescStabilityDays := learningprofileFields[5].Descriptor()
	// learningprofile.DefaultStabilityDays holds the default value on creation for the stability_days field.
	learningprofile.DefaultStabilityDays = learningprofileDescStabilityDays.Default.(float64)
	// learningprofileDescHalfLifeDays is the schema descriptor for half_life_days field.
	learningprofileDescHalfLifeDays := learningprofileFields[6].Descriptor()
	// learningprofile.DefaultHalfLifeDays holds the default value on creation for the half_life_days field.
	learningprofile.DefaultHalfLifeDays = learningprofileDescHalfLifeDays.Default.(float64)
	// learningprofileDescDataQualityScore is the schema descriptor for data_quality_score field.
	learningprofileDescDataQualityScore := learningprofileFields[7].Descriptor()
	// learningprofile.DefaultDataQualityScore holds the default value on creation for the data_quality_score field.
	learningprofile.DefaultDataQualityScore = learningprofileDescDataQualityScore.Default.(float64)
	loadmetricMixin := schema.LoadMetric{}.Mixin()
	loadmetricMixinFields0 := loadmetricMixin[0].Fields()
	_ = loadmetricMixinFields0
	loadmetricFields := schema.LoadMetric{}.Fields()
	_ = loadmetricFields
	// loadmetricDescUserID is the schema descriptor for user_id field.
	loadmetricDescUserID := loadmetricMixinFields0[0].Descriptor()
	// loadmetric.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	loadmetric.UserIDValidator = loadmetricDescUserID.Validators[0].(func(string) error)
	missionMixin := schema.Mission{}.Mixin()
	missionMixinFields0 := missionMixin[0].Fields()
	_ = missionMixinFields0
	missionFields := schema.Mission{}.Fields()
	_ = missionFields
	// missionDescUserID is the schema descriptor for user_id field.
	missionDescUserID := missionMixinFields0[0].Descriptor()
	// mission.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	mission.UserIDValidator = missionDescUserID.Validators[0].(func(string) error)
	// missionDescStatus is the schema descriptor for status field.
	missionDescStatus := missionFields[1].Descriptor()
	// mission.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	mission.StatusValidator = missionDescStatus.Validators[0].(func(string) error)
	performancemetricMixin := schema.PerformanceMetric{}.Mixin()
	performancemetricMixinFields0 := performancemetricMixin[0].Fields()
	_ = performancemetricMixinFields0
	performancemetricFields := schema.PerformanceMetric{}.Fields()
	_ = performancemetricFields
	// performancemetricDescUserID is the schema descriptor for user_id field.
	performancemetricDescUserID := performancemetricMixinFields0[0].Descriptor()
	// performancemetric.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	performancemetric.UserIDValidator = performancemetricDescUserID.Validators[0].(func(string) error)
	recommendationMixin := schema.Recommendation{}.Mixin()
	recommendationMixinFields0 := recommendationMixin[0].Fields()
	_ = recommendationMixinFields0
	recommendationFields := schema.Recommendation{}.Fields()
	_ = recommendationFields
	// recommendationDescUserID is the schema descriptor for user_id field.
	recommendationDescUserID := recommendationMixinFields0[0].Descriptor()
	// recommendation.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	recommendation.UserIDValidator = recommendationDescUserID.Validators[0].(func(string) error)
	// recommendationDescRecType is the schema descriptor for rec_type field.
	recommendationDescRecType := recommendationFields[1].Descriptor()
	// recommendation.RecTypeValidator is a validator for the "rec_type" field. It is called by the builders before save.
	recommendation.RecTypeValidator = recommendationDescRecType.Validators[0].(func(string) error)
	// recommendationDescTitle is the schema descriptor for title field.
	recommendationDescTitle := recommendationFields[2].Descriptor()
	// recommendation.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	recommendation.TitleValidator = recommendationDescTitle.Validators[0].(func(string) error)
	// recommendationDescID is the schema descriptor for id field.
	recommendationDescID := recommendationFields[0].Descriptor()
	// recommendation.DefaultID holds the default value on creation for the id field.
	recommendation.DefaultID = recommendationDescID.Default.(func() string)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescUserID is the schema descriptor for user_id field.
	revieweventDescUserID := revieweventMixinFields0[0].Descriptor()
	// reviewevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reviewevent.UserIDValidator = revieweventDescUserID.Validators[0].(func(string) error)
	// revieweventDescRating is the schema descriptor for rating field.
	revieweventDescRating := revieweventFields[1].Descriptor()
	// reviewevent.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	reviewevent.RatingValidator = revieweventDescRating.Validators[0].(func(string) error)
	// revieweventDescStabilityAfter is the schema descriptor for stability_after field.
	revieweventDescStabilityAfter := revieweventFields[2].Descriptor()
	// reviewevent.DefaultStabilityAfter holds the default value on creation for the stability_after field.
	reviewevent.DefaultStabilityAfter = revieweventDescStabilityAfter.Default.(float64)
	studysessionMixin := schema.StudySession{}.Mixin()
	studysessionMixinFields0 := studysessionMixin[0].Fields()
	_ = studysessionMixinFields0
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescUserID is the schema descriptor for user_id field.
	studysessionDescUserID := studysessionMixinFields0[0].Descriptor()
	// studysession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	studysession.UserIDValidator = studysessionDescUserID.Validators[0].(func(string) error)
	// studysessionDescSessionID is the schema descriptor for session_id field.
	studysessionDescSessionID := studysessionFields[0].Descriptor()
	// studysession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	studysession.SessionIDValidator = studysessionDescSessionID.Validators[0].(func(string) error)
	// studysessionDescDurationMs is the schema descriptor for duration_ms field.
	studysessionDescDurationMs := studysessionFields[3].Descriptor()
	// studysession.DefaultDurationMs holds the default value on creation for the duration_ms field.
	studysession.DefaultDurationMs = studysessionDescDurationMs.Default.(int64)
}
