package adapt

import "github.com/abhisek/cadence/internal/telemetry"

// errorRateTighten is the session error rate above which the envelope is
// tightened a further step.
const errorRateTighten = 0.3

// minPromptComplexity floors the validation-prompt multiplier.
const minPromptComplexity = 0.3

// Envelope bounds what content the session should serve next.
type Envelope struct {
	Preferred        []telemetry.ContentType
	Avoided          []telemetry.ContentType
	MaxComplexity    string
	Scaffolding      string
	PromptComplexity float64 // 0.3–1.0
}

// ContentEnvelope derives the content-recommendation envelope from the
// same load zone as Adjustment, tightened one step further when the
// session error rate exceeds 0.3.
func ContentEnvelope(currentLoad, tolerance float64, trend Trend, errorRate float64) Envelope {
	ad := Adjustment(currentLoad, tolerance, trend)

	var env Envelope
	switch ad.Zone {
	case ZoneEmergency:
		env = Envelope{
			Preferred: []telemetry.ContentType{telemetry.ContentDiagram, telemetry.ContentText},
			Avoided:   []telemetry.ContentType{telemetry.ContentClinicalCase, telemetry.ContentPrompt},
		}
	case ZoneReduce:
		env = Envelope{
			Preferred: []telemetry.ContentType{telemetry.ContentDiagram, telemetry.ContentText},
			Avoided:   []telemetry.ContentType{telemetry.ContentClinicalCase},
		}
	case ZoneMaintain:
		env = Envelope{}
	case ZoneIncrease:
		env = Envelope{
			Preferred: []telemetry.ContentType{telemetry.ContentClinicalCase, telemetry.ContentPrompt},
		}
	}
	env.MaxComplexity = ad.Mods.MaxComplexity
	env.Scaffolding = ad.Mods.Scaffolding
	env.PromptComplexity = ad.Mods.PromptComplexity

	if errorRate > errorRateTighten {
		env.MaxComplexity = stepDownComplexity(env.MaxComplexity)
		env.Scaffolding = stepUpScaffolding(env.Scaffolding)
		env.PromptComplexity -= 0.2
		if env.PromptComplexity < minPromptComplexity {
			env.PromptComplexity = minPromptComplexity
		}
	}
	return env
}

func stepDownComplexity(c string) string {
	switch c {
	case "ADVANCED":
		return "INTERMEDIATE"
	default:
		return "BASIC"
	}
}

func stepUpScaffolding(s string) string {
	switch s {
	case "none":
		return "light"
	case "light":
		return "moderate"
	default:
		return "high"
	}
}
