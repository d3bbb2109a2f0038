package burnout

import "sort"

// PlanType is the intervention category, a direct function of risk level.
type PlanType string

const (
	PlanMandatoryRest         PlanType = "MANDATORY_REST"
	PlanWorkloadReduction     PlanType = "WORKLOAD_REDUCTION"
	PlanScheduleAdjustment    PlanType = "SCHEDULE_ADJUSTMENT"
	PlanContentSimplification PlanType = "CONTENT_SIMPLIFICATION"
)

// Intervention is the proposed response to an assessment.
type Intervention struct {
	Plan    PlanType
	Actions []string
}

// maxFactorActions caps the factor-specific bullets added to a plan.
const maxFactorActions = 2

// factorActionThreshold is the factor score above which a factor earns a
// dedicated action bullet.
const factorActionThreshold = 60

var factorActions = map[string]string{
	FactorIntensity:          "Cap study time at 4 hours per day for the next week.",
	FactorPerformanceDecline: "Shift the next few sessions to review-only until retention recovers.",
	FactorChronicLoad:        "Insert a low-intensity day after every two high-load days.",
	FactorIrregularity:       "Pin missions to a fixed daily time slot to rebuild the routine.",
	FactorEngagementDecay:    "Swap in content types you rate as more engaging for a few days.",
	FactorRecoveryDeficit:    "Schedule one full rest day in the next three days.",
}

var basePlanActions = map[PlanType][]string{
	PlanMandatoryRest: {
		"Take at least 48 hours fully off from studying.",
		"Resume with half-length sessions for the first two days back.",
	},
	PlanWorkloadReduction: {
		"Reduce daily study volume by roughly a third this week.",
	},
	PlanScheduleAdjustment: {
		"Move sessions toward your strongest hours and shorten the longest ones.",
	},
	PlanContentSimplification: {
		"Keep difficulty at or below your current level for a few sessions.",
	},
}

// buildIntervention maps a risk level to its plan and augments it with up
// to two bullets for the highest-scoring factors above the threshold.
func buildIntervention(level RiskLevel, factors []Factor) Intervention {
	var plan PlanType
	switch level {
	case RiskCritical:
		plan = PlanMandatoryRest
	case RiskHigh:
		plan = PlanWorkloadReduction
	case RiskMedium:
		plan = PlanScheduleAdjustment
	default:
		plan = PlanContentSimplification
	}

	iv := Intervention{Plan: plan}
	iv.Actions = append(iv.Actions, basePlanActions[plan]...)

	hot := make([]Factor, 0, len(factors))
	for _, f := range factors {
		if f.Score > factorActionThreshold {
			hot = append(hot, f)
		}
	}
	sort.SliceStable(hot, func(i, j int) bool { return hot[i].Score > hot[j].Score })
	for i, f := range hot {
		if i >= maxFactorActions {
			break
		}
		if a, ok := factorActions[f.Name]; ok {
			iv.Actions = append(iv.Actions, a)
		}
	}
	return iv
}
