// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdaptationEvent is the predicate function for adaptationevent builders.
type AdaptationEvent func(*sql.Selector)

// AppliedRecommendation is the predicate function for appliedrecommendation builders.
type AppliedRecommendation func(*sql.Selector)

// BehavioralEvent is the predicate function for behavioralevent builders.
type BehavioralEvent func(*sql.Selector)

// BehavioralInsight is the predicate function for behavioralinsight builders.
type BehavioralInsight func(*sql.Selector)

// BehavioralPattern is the predicate function for behavioralpattern builders.
type BehavioralPattern func(*sql.Selector)

// BurnoutAssessment is the predicate function for burnoutassessment builders.
type BurnoutAssessment func(*sql.Selector)

// LearningProfile is the predicate function for learningprofile builders.
type LearningProfile func(*sql.Selector)

// LoadMetric is the predicate function for loadmetric builders.
type LoadMetric func(*sql.Selector)

// Mission is the predicate function for mission builders.
type Mission func(*sql.Selector)

// PerformanceMetric is the predicate function for performancemetric builders.
type PerformanceMetric func(*sql.Selector)

// Recommendation is the predicate function for recommendation builders.
type Recommendation func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)

// StudySession is the predicate function for studysession builders.
type StudySession func(*sql.Selector)
