package recommend

import (
	"fmt"

	"github.com/abhisek/cadence/internal/burnout"
	"github.com/abhisek/cadence/internal/pattern"
)

// Type groups recommendations for the per-type diversification cap.
type Type string

const (
	TypeSchedule         Type = "schedule"
	TypeSessionStructure Type = "session-structure"
	TypeContent          Type = "content"
	TypeReviewScheduling Type = "review-scheduling"
	TypeWellbeing        Type = "wellbeing"
)

// template fixes the per-source-type text and scoring inputs. Impact and
// ease are properties of the advice itself; confidence and readiness come
// from the source and the user.
type template struct {
	recType Type
	impact  float64
	ease    float64
}

var patternTemplates = map[pattern.Type]template{
	pattern.TypeOptimalStudyTime:  {recType: TypeSchedule, impact: 0.85, ease: 0.7},
	pattern.TypeOptimalDuration:   {recType: TypeSessionStructure, impact: 0.75, ease: 0.8},
	pattern.TypeContentPreference: {recType: TypeContent, impact: 0.6, ease: 0.9},
	pattern.TypeForgettingCurve:   {recType: TypeReviewScheduling, impact: 0.8, ease: 0.6},
}

// interventionTemplate covers burnout-sourced recommendations.
var interventionTemplate = template{recType: TypeWellbeing, impact: 0.9, ease: 0.5}

// fillFromPattern renders the recommendation text for a pattern source.
func fillFromPattern(p *pattern.Pattern) (title, description, action string, ok bool) {
	switch data := p.Data.(type) {
	case pattern.StudyTimePayload:
		if len(data.Windows) == 0 {
			return "", "", "", false
		}
		w := data.Windows[0]
		title = fmt.Sprintf("Schedule hard material at %02d:00", w.StartHour)
		description = fmt.Sprintf(
			"Your review performance peaks between %02d:00 and %02d:00. Material studied there sticks better than the same material at other hours.",
			w.StartHour, w.EndHour)
		action = fmt.Sprintf("Block %02d:00-%02d:00 for your most demanding topics this week.", w.StartHour, w.EndHour)
	case pattern.DurationPayload:
		title = fmt.Sprintf("Keep sessions near %d minutes", data.RecommendedMinutes)
		description = fmt.Sprintf(
			"Sessions in the %s range give you the best mix of performance and completion; longer ones show a fatigue drop.",
			data.DurationRange)
		action = fmt.Sprintf("Set a timer for %d minutes and stop at the bell.", data.RecommendedMinutes)
	case pattern.ContentPayload:
		title = fmt.Sprintf("Lead with %s content", data.DominantStyle)
		description = fmt.Sprintf(
			"Your engagement profile is strongest for %s material; starting there lowers the cost of the first pass over new topics.",
			data.DominantStyle)
		action = fmt.Sprintf("Pick the %s version of new topics first, then branch out.", data.DominantStyle)
	case pattern.ForgettingPayload:
		title = fmt.Sprintf("Review within %.0f days", data.HalfLifeDays)
		description = fmt.Sprintf(
			"Your retention falls to half after about %.0f days. Reviews scheduled just inside that window cost the least effort.",
			data.HalfLifeDays)
		action = fmt.Sprintf("Bring review intervals in to at most %.0f days for weak material.", data.HalfLifeDays)
	default:
		return "", "", "", false
	}
	return title, description, action, true
}

// fillFromInsight renders the recommendation text for an insight source.
// Insights already carry templated text; the recommendation wraps it with
// an action line.
func fillFromInsight(ins *pattern.Insight) (title, description, action string, ok bool) {
	if ins.Title == "" {
		return "", "", "", false
	}
	title = ins.Title
	description = ins.Body
	action = "Apply this finding to how you plan this week's sessions."
	return title, description, action, true
}

// fillFromIntervention renders the recommendation for a pending burnout
// intervention.
func fillFromIntervention(iv burnout.Intervention, level burnout.RiskLevel) (title, description, action string) {
	switch iv.Plan {
	case burnout.PlanMandatoryRest:
		title = "Take a mandatory rest break"
		description = "Your burnout risk is critical. Recovery now prevents a much longer forced break later."
	case burnout.PlanWorkloadReduction:
		title = "Reduce this week's workload"
		description = "Your burnout risk is high; trimming volume for a week usually resets it."
	case burnout.PlanScheduleAdjustment:
		title = "Adjust your study schedule"
		description = "Your burnout indicators are elevated; small schedule changes keep them from climbing."
	default:
		title = "Simplify your content mix"
		description = fmt.Sprintf("Risk level %s: easing content difficulty keeps load in the productive band.", level)
	}
	if len(iv.Actions) > 0 {
		action = iv.Actions[0]
	} else {
		action = "Follow the intervention plan from your latest assessment."
	}
	return title, description, action
}
