package analyzer

import (
	"context"
	"fmt"

	"github.com/abhisek/cadence/internal/telemetry"
)

const (
	// readingTextCapHours caps the text-duration component of the reading
	// style score.
	readingTextCapHours = 10

	// readingNotesCap caps the note-taking-count component.
	readingNotesCap = 50

	// visualGraphCap caps the graph-view-count component of the visual score.
	visualGraphCap = 50

	// visualDiagramCapHours caps the diagram-engagement component.
	visualDiagramCapHours = 10

	// contentConfidenceSaturation is the event count at which content
	// confidence reaches 1.0.
	contentConfidenceSaturation = 100
)

// VARKProfile is the normalized learning-style distribution. The four
// components always sum to 1.
type VARKProfile struct {
	Visual      float64
	Auditory    float64
	Reading     float64
	Kinesthetic float64
}

// Dominant returns the strongest style.
func (p VARKProfile) Dominant() string {
	best, bestV := "visual", p.Visual
	if p.Auditory > bestV {
		best, bestV = "auditory", p.Auditory
	}
	if p.Reading > bestV {
		best, bestV = "reading", p.Reading
	}
	if p.Kinesthetic > bestV {
		best = "kinesthetic"
	}
	return best
}

// ContentEffectiveness is the per-type composite effectiveness.
type ContentEffectiveness struct {
	RetentionRate   float64 // 0–1
	CompletionRate  float64 // 0–1
	EngagementScore float64 // 0–100
	Score           float64
	Samples         int
}

// ContentResult holds the content-preference analysis.
type ContentResult struct {
	Preferences   map[telemetry.ContentType]float64 // sums to 1
	Profile       VARKProfile
	Effectiveness map[telemetry.ContentType]ContentEffectiveness
	Confidence    float64
	TotalEvents   int
}

// ContentAnalyzer derives content-type preferences, a VARK learning-style
// profile, and per-type effectiveness from behavioral events.
type ContentAnalyzer struct {
	Repo telemetry.Repository
}

// Analyze never divides by zero: with no events it returns uniform 0.25
// distributions and all-zero effectiveness at confidence 0.
func (a *ContentAnalyzer) Analyze(ctx context.Context, userID string, w telemetry.Window) (*ContentResult, error) {
	events, err := a.Repo.Events(ctx, userID, w)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	res := &ContentResult{
		Preferences:   uniformPreferences(),
		Profile:       VARKProfile{Visual: 0.25, Auditory: 0.25, Reading: 0.25, Kinesthetic: 0.25},
		Effectiveness: map[telemetry.ContentType]ContentEffectiveness{},
		TotalEvents:   len(events),
		Confidence:    sampleConfidence(len(events), contentConfidenceSaturation),
	}
	for _, ct := range telemetry.ContentTypes() {
		res.Effectiveness[ct] = ContentEffectiveness{}
	}
	if len(events) == 0 {
		res.Confidence = 0
		return res, nil
	}

	res.Preferences = preferenceDistribution(events)
	res.Profile = varkProfile(events)
	res.Effectiveness = effectivenessByType(events)
	return res, nil
}

func uniformPreferences() map[telemetry.ContentType]float64 {
	prefs := map[telemetry.ContentType]float64{}
	for _, ct := range telemetry.ContentTypes() {
		prefs[ct] = 0.25
	}
	return prefs
}

// preferenceDistribution scores each type on engaged time (60%) and event
// count (40%), then normalizes across the four tracked types.
func preferenceDistribution(events []telemetry.Event) map[telemetry.ContentType]float64 {
	engaged := map[telemetry.ContentType]float64{}
	counts := map[telemetry.ContentType]int{}
	for _, e := range events {
		if e.ContentType == "" {
			continue
		}
		engaged[e.ContentType] += float64(e.EngagedMs)
		counts[e.ContentType]++
	}

	raw := map[telemetry.ContentType]float64{}
	total := 0.0
	for _, ct := range telemetry.ContentTypes() {
		raw[ct] = engaged[ct]*0.6 + float64(counts[ct])*100*0.4
		total += raw[ct]
	}
	if total == 0 {
		return uniformPreferences()
	}
	for ct := range raw {
		raw[ct] /= total
	}
	return raw
}

// varkProfile blends event signals into the four learning-style components
// and normalizes them to sum 1.
func varkProfile(events []telemetry.Event) VARKProfile {
	graphViews := 0
	diagramMs := 0.0
	textMs := 0.0
	noteSessions := 0
	var promptScores, clinicalScores []float64

	for _, e := range events {
		switch e.EventType {
		case telemetry.EventGraphView:
			graphViews++
		case telemetry.EventNoteTaking:
			noteSessions++
		case telemetry.EventPromptAnswer:
			promptScores = append(promptScores, e.Score)
		case telemetry.EventContentEngagement:
			switch e.ContentType {
			case telemetry.ContentDiagram:
				diagramMs += float64(e.EngagedMs)
			case telemetry.ContentText:
				textMs += float64(e.EngagedMs)
			case telemetry.ContentClinicalCase:
				clinicalScores = append(clinicalScores, e.Score)
			}
		}
	}

	graphPart := clamp(float64(graphViews)/visualGraphCap, 0, 1)
	diagramPart := clamp(diagramMs/(visualDiagramCapHours*3600*1000), 0, 1)
	visual := 0.5*graphPart + 0.5*diagramPart

	auditory := clamp(mean(promptScores)/100, 0, 1)
	kinesthetic := clamp(mean(clinicalScores)/100, 0, 1)

	textPart := clamp(textMs/(readingTextCapHours*3600*1000), 0, 1)
	notesPart := clamp(float64(noteSessions)/readingNotesCap, 0, 1)
	reading := 0.6*textPart + 0.4*notesPart

	total := visual + auditory + reading + kinesthetic
	if total == 0 {
		return VARKProfile{Visual: 0.25, Auditory: 0.25, Reading: 0.25, Kinesthetic: 0.25}
	}
	return VARKProfile{
		Visual:      visual / total,
		Auditory:    auditory / total,
		Reading:     reading / total,
		Kinesthetic: kinesthetic / total,
	}
}

// effectivenessByType computes the composite effectiveness score per type.
// Types with no samples stay all-zero.
func effectivenessByType(events []telemetry.Event) map[telemetry.ContentType]ContentEffectiveness {
	type agg struct {
		retention  []float64
		engagement []float64
		completed  int
		total      int
	}
	aggs := map[telemetry.ContentType]*agg{}
	for _, ct := range telemetry.ContentTypes() {
		aggs[ct] = &agg{}
	}

	for _, e := range events {
		if e.EventType != telemetry.EventContentEngagement || e.ContentType == "" {
			continue
		}
		a, ok := aggs[e.ContentType]
		if !ok {
			continue
		}
		a.total++
		if e.Completed {
			a.completed++
		}
		a.engagement = append(a.engagement, e.Score)
		if e.SessionPerformance > 0 {
			a.retention = append(a.retention, e.SessionPerformance/100)
		}
	}

	out := map[telemetry.ContentType]ContentEffectiveness{}
	for ct, a := range aggs {
		eff := ContentEffectiveness{Samples: a.total}
		if a.total > 0 {
			eff.RetentionRate = clamp(mean(a.retention), 0, 1)
			eff.CompletionRate = float64(a.completed) / float64(a.total)
			eff.EngagementScore = clamp(mean(a.engagement), 0, 100)
			eff.Score = eff.RetentionRate*50 + eff.CompletionRate*30 + eff.EngagementScore*0.2
		}
		out[ct] = eff
	}
	return out
}
