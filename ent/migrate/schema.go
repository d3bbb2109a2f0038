// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdaptationEventsColumns holds the columns for the "adaptation_events" table.
	AdaptationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "load", Type: field.TypeFloat64},
		{Name: "effective_load", Type: field.TypeFloat64},
		{Name: "zone", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "difficulty_change", Type: field.TypeInt},
		{Name: "review_ratio", Type: field.TypeFloat64},
	}
	// AdaptationEventsTable holds the schema information for the "adaptation_events" table.
	AdaptationEventsTable = &schema.Table{
		Name:       "adaptation_events",
		Columns:    AdaptationEventsColumns,
		PrimaryKey: []*schema.Column{AdaptationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "adaptationevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[1]},
			},
			{
				Name:    "adaptationevent_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[1], AdaptationEventsColumns[2]},
			},
		},
	}
	// AppliedRecommendationsColumns holds the columns for the "applied_recommendations" table.
	AppliedRecommendationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "recommendation_id", Type: field.TypeString, Unique: true},
		{Name: "applied_at", Type: field.TypeTime},
		{Name: "baseline", Type: field.TypeJSON},
		{Name: "current", Type: field.TypeJSON, Nullable: true},
		{Name: "effectiveness", Type: field.TypeFloat64, Nullable: true},
		{Name: "evaluated_at", Type: field.TypeTime, Nullable: true},
	}
	// AppliedRecommendationsTable holds the schema information for the "applied_recommendations" table.
	AppliedRecommendationsTable = &schema.Table{
		Name:       "applied_recommendations",
		Columns:    AppliedRecommendationsColumns,
		PrimaryKey: []*schema.Column{AppliedRecommendationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appliedrecommendation_user_id",
				Unique:  false,
				Columns: []*schema.Column{AppliedRecommendationsColumns[1]},
			},
			{
				Name:    "appliedrecommendation_user_id_applied_at",
				Unique:  false,
				Columns: []*schema.Column{AppliedRecommendationsColumns[1], AppliedRecommendationsColumns[3]},
			},
		},
	}
	// BehavioralEventsColumns holds the columns for the "behavioral_events" table.
	BehavioralEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "event_type", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString, Nullable: true},
		{Name: "engaged_ms", Type: field.TypeInt64, Default: 0},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "session_performance", Type: field.TypeFloat64, Default: 0},
	}
	// BehavioralEventsTable holds the schema information for the "behavioral_events" table.
	BehavioralEventsTable = &schema.Table{
		Name:       "behavioral_events",
		Columns:    BehavioralEventsColumns,
		PrimaryKey: []*schema.Column{BehavioralEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "behavioralevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{BehavioralEventsColumns[1]},
			},
			{
				Name:    "behavioralevent_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BehavioralEventsColumns[1], BehavioralEventsColumns[2]},
			},
			{
				Name:    "behavioralevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{BehavioralEventsColumns[3]},
			},
		},
	}
	// BehavioralInsightsColumns holds the columns for the "behavioral_insights" table.
	BehavioralInsightsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "insight_type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Nullable: true},
		{Name: "impact", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "source_pattern_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "acknowledged", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BehavioralInsightsTable holds the schema information for the "behavioral_insights" table.
	BehavioralInsightsTable = &schema.Table{
		Name:       "behavioral_insights",
		Columns:    BehavioralInsightsColumns,
		PrimaryKey: []*schema.Column{BehavioralInsightsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "behavioralinsight_user_id",
				Unique:  false,
				Columns: []*schema.Column{BehavioralInsightsColumns[1]},
			},
			{
				Name:    "behavioralinsight_user_id_acknowledged",
				Unique:  false,
				Columns: []*schema.Column{BehavioralInsightsColumns[1], BehavioralInsightsColumns[8]},
			},
		},
	}
	// BehavioralPatternsColumns holds the columns for the "behavioral_patterns" table.
	BehavioralPatternsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "pattern_type", Type: field.TypeString},
		{Name: "pattern_name", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "data", Type: field.TypeJSON},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "occurrence_count", Type: field.TypeInt, Default: 1},
		{Name: "first_detected_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "consecutive_non_occurrences", Type: field.TypeInt, Default: 0},
	}
	// BehavioralPatternsTable holds the schema information for the "behavioral_patterns" table.
	BehavioralPatternsTable = &schema.Table{
		Name:       "behavioral_patterns",
		Columns:    BehavioralPatternsColumns,
		PrimaryKey: []*schema.Column{BehavioralPatternsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "behavioralpattern_user_id",
				Unique:  false,
				Columns: []*schema.Column{BehavioralPatternsColumns[1]},
			},
			{
				Name:    "behavioralpattern_user_id_pattern_type",
				Unique:  true,
				Columns: []*schema.Column{BehavioralPatternsColumns[1], BehavioralPatternsColumns[2]},
			},
		},
	}
	// BurnoutAssessmentsColumns holds the columns for the "burnout_assessments" table.
	BurnoutAssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "risk_score", Type: field.TypeFloat64},
		{Name: "risk_level", Type: field.TypeString},
		{Name: "factors", Type: field.TypeJSON},
		{Name: "signals", Type: field.TypeJSON, Nullable: true},
		{Name: "intervention", Type: field.TypeJSON, Nullable: true},
		{Name: "assessment_date", Type: field.TypeTime},
		{Name: "confidence", Type: field.TypeFloat64},
	}
	// BurnoutAssessmentsTable holds the schema information for the "burnout_assessments" table.
	BurnoutAssessmentsTable = &schema.Table{
		Name:       "burnout_assessments",
		Columns:    BurnoutAssessmentsColumns,
		PrimaryKey: []*schema.Column{BurnoutAssessmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "burnoutassessment_user_id",
				Unique:  false,
				Columns: []*schema.Column{BurnoutAssessmentsColumns[1]},
			},
			{
				Name:    "burnoutassessment_user_id_assessment_date",
				Unique:  false,
				Columns: []*schema.Column{BurnoutAssessmentsColumns[1], BurnoutAssessmentsColumns[7]},
			},
		},
	}
	// LearningProfilesColumns holds the columns for the "learning_profiles" table.
	LearningProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "preferred_windows", Type: field.TypeJSON, Nullable: true},
		{Name: "optimal_duration_min", Type: field.TypeInt, Default: 45},
		{Name: "content_preferences", Type: field.TypeJSON, Nullable: true},
		{Name: "learning_style", Type: field.TypeJSON, Nullable: true},
		{Name: "stability_days", Type: field.TypeFloat64, Default: 0},
		{Name: "half_life_days", Type: field.TypeFloat64, Default: 0},
		{Name: "data_quality_score", Type: field.TypeFloat64, Default: 0},
		{Name: "last_analyzed_at", Type: field.TypeTime},
	}
	// LearningProfilesTable holds the schema information for the "learning_profiles" table.
	LearningProfilesTable = &schema.Table{
		Name:       "learning_profiles",
		Columns:    LearningProfilesColumns,
		PrimaryKey: []*schema.Column{LearningProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningprofile_user_id",
				Unique:  false,
				Columns: []*schema.Column{LearningProfilesColumns[1]},
			},
		},
	}
	// LoadMetricsColumns holds the columns for the "load_metrics" table.
	LoadMetricsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "load_score", Type: field.TypeFloat64},
	}
	// LoadMetricsTable holds the schema information for the "load_metrics" table.
	LoadMetricsTable = &schema.Table{
		Name:       "load_metrics",
		Columns:    LoadMetricsColumns,
		PrimaryKey: []*schema.Column{LoadMetricsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "loadmetric_user_id",
				Unique:  false,
				Columns: []*schema.Column{LoadMetricsColumns[1]},
			},
			{
				Name:    "loadmetric_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LoadMetricsColumns[1], LoadMetricsColumns[2]},
			},
		},
	}
	// MissionsColumns holds the columns for the "missions" table.
	MissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "date", Type: field.TypeTime},
		{Name: "status", Type: field.TypeString},
		{Name: "difficulty_rating", Type: field.TypeInt, Nullable: true},
	}
	// MissionsTable holds the schema information for the "missions" table.
	MissionsTable = &schema.Table{
		Name:       "missions",
		Columns:    MissionsColumns,
		PrimaryKey: []*schema.Column{MissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mission_user_id",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[1]},
			},
			{
				Name:    "mission_user_id_date",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[1], MissionsColumns[2]},
			},
		},
	}
	// PerformanceMetricsColumns holds the columns for the "performance_metrics" table.
	PerformanceMetricsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "date", Type: field.TypeTime},
		{Name: "retention_score", Type: field.TypeFloat64},
	}
	// PerformanceMetricsTable holds the schema information for the "performance_metrics" table.
	PerformanceMetricsTable = &schema.Table{
		Name:       "performance_metrics",
		Columns:    PerformanceMetricsColumns,
		PrimaryKey: []*schema.Column{PerformanceMetricsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "performancemetric_user_id",
				Unique:  false,
				Columns: []*schema.Column{PerformanceMetricsColumns[1]},
			},
			{
				Name:    "performancemetric_user_id_date",
				Unique:  false,
				Columns: []*schema.Column{PerformanceMetricsColumns[1], PerformanceMetricsColumns[2]},
			},
		},
	}
	// RecommendationsColumns holds the columns for the "recommendations" table.
	RecommendationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "rec_type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "actionable_text", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "estimated_impact", Type: field.TypeFloat64},
		{Name: "ease", Type: field.TypeFloat64},
		{Name: "user_readiness", Type: field.TypeFloat64},
		{Name: "priority_score", Type: field.TypeFloat64},
		{Name: "source_pattern_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "source_insight_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "applied_at", Type: field.TypeTime, Nullable: true},
		{Name: "dismissed_at", Type: field.TypeTime, Nullable: true},
	}
	// RecommendationsTable holds the schema information for the "recommendations" table.
	RecommendationsTable = &schema.Table{
		Name:       "recommendations",
		Columns:    RecommendationsColumns,
		PrimaryKey: []*schema.Column{RecommendationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recommendation_user_id",
				Unique:  false,
				Columns: []*schema.Column{RecommendationsColumns[1]},
			},
			{
				Name:    "recommendation_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RecommendationsColumns[1], RecommendationsColumns[13]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "reviewed_at", Type: field.TypeTime},
		{Name: "rating", Type: field.TypeString},
		{Name: "stability_after", Type: field.TypeFloat64, Default: 0},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_user_id_reviewed_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1], ReviewEventsColumns[2]},
			},
		},
	}
	// StudySessionsColumns holds the columns for the "study_sessions" table.
	StudySessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "reviews", Type: field.TypeJSON, Nullable: true},
		{Name: "objectives", Type: field.TypeJSON, Nullable: true},
		{Name: "mission_id", Type: field.TypeString, Nullable: true},
	}
	// StudySessionsTable holds the schema information for the "study_sessions" table.
	StudySessionsTable = &schema.Table{
		Name:       "study_sessions",
		Columns:    StudySessionsColumns,
		PrimaryKey: []*schema.Column{StudySessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studysession_user_id",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[1]},
			},
			{
				Name:    "studysession_user_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[1], StudySessionsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdaptationEventsTable,
		AppliedRecommendationsTable,
		BehavioralEventsTable,
		BehavioralInsightsTable,
		BehavioralPatternsTable,
		BurnoutAssessmentsTable,
		LearningProfilesTable,
		LoadMetricsTable,
		MissionsTable,
		PerformanceMetricsTable,
		RecommendationsTable,
		ReviewEventsTable,
		StudySessionsTable,
	}
)

func init() {
}
