package pattern

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	// InsightThreshold is the minimum pattern confidence for insight
	// derivation.
	InsightThreshold = 0.7

	// MaxInsights caps insights per analysis run.
	MaxInsights = 5
)

// typeWeights rank pattern families by actionability; impact is
// confidence × weight.
var typeWeights = map[Type]float64{
	TypeOptimalStudyTime:  1.0,
	TypeOptimalDuration:   0.9,
	TypeForgettingCurve:   0.8,
	TypeContentPreference: 0.7,
}

// Insight is an actionable projection of one or more high-confidence
// patterns.
type Insight struct {
	ID               string
	UserID           string
	InsightType      Type
	Title            string
	Body             string
	Impact           float64
	Confidence       float64
	SourcePatternIDs []string
	Acknowledged     bool
	CreatedAt        time.Time
}

// DeriveInsights projects patterns at or above the insight threshold into
// ranked, deduplicated insights, capped at MaxInsights. existing holds the
// user's unacknowledged insights for (type, title) deduplication.
func DeriveInsights(patterns []*Pattern, existing []*Insight, now time.Time) []*Insight {
	seen := map[string]bool{}
	for _, ins := range existing {
		if !ins.Acknowledged {
			seen[dedupeKey(ins.InsightType, ins.Title)] = true
		}
	}

	var out []*Insight
	for _, p := range patterns {
		if p.Confidence < InsightThreshold {
			continue
		}
		title, body := insightText(p)
		if title == "" {
			continue
		}
		key := dedupeKey(p.PatternType, title)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, &Insight{
			UserID:           p.UserID,
			InsightType:      p.PatternType,
			Title:            title,
			Body:             body,
			Impact:           p.Confidence * typeWeights[p.PatternType],
			Confidence:       p.Confidence,
			SourcePatternIDs: []string{p.ID},
			CreatedAt:        now,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Impact != out[j].Impact {
			return out[i].Impact > out[j].Impact
		}
		return out[i].Title < out[j].Title
	})
	if len(out) > MaxInsights {
		out = out[:MaxInsights]
	}
	return out
}

func dedupeKey(t Type, title string) string {
	return string(t) + "|" + title
}

// insightText fills the per-type template from the pattern payload.
func insightText(p *Pattern) (title, body string) {
	switch data := p.Data.(type) {
	case StudyTimePayload:
		if len(data.Windows) == 0 {
			return "", ""
		}
		w := data.Windows[0]
		title = fmt.Sprintf("You study best around %02d:00", w.StartHour)
		body = fmt.Sprintf(
			"Review performance peaks between %02d:00 and %02d:00. Scheduling demanding material in that window should raise retention.",
			w.StartHour, w.EndHour)
	case DurationPayload:
		title = fmt.Sprintf("Your sweet spot is %d-minute sessions", data.RecommendedMinutes)
		body = fmt.Sprintf(
			"Sessions in the %s range score highest on performance and completion. Aim for about %d minutes before taking a break.",
			data.DurationRange, data.RecommendedMinutes)
	case ContentPayload:
		title = fmt.Sprintf("You lean %s", data.DominantStyle)
		body = fmt.Sprintf(
			"Your engagement profile is strongest for %s material. Favoring it for first-pass learning should reduce effort per concept.",
			data.DominantStyle)
	case ForgettingPayload:
		title = fmt.Sprintf("Your memory half-life is about %.0f days", data.HalfLifeDays)
		body = fmt.Sprintf(
			"Material decays to 50%% retention in roughly %.0f days without review. Reviews spaced tighter than that will feel easy; looser will feel like relearning.",
			data.HalfLifeDays)
	}
	title = strings.TrimSpace(title)
	return title, strings.TrimSpace(body)
}
