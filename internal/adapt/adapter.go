// Package adapt maps instantaneous cognitive load onto difficulty and
// content adjustments. Everything here sits on the live session path:
// calculations are synchronous and storage-free apart from the
// fire-and-forget adaptation log.
package adapt

import (
	"context"
	"log/slog"
	"sync"

	"github.com/abhisek/cadence/internal/telemetry"
)

// Zone is the cognitive-load band the learner is currently in.
type Zone string

const (
	ZoneEmergency Zone = "EMERGENCY"
	ZoneReduce    Zone = "REDUCE"
	ZoneMaintain  Zone = "MAINTAIN"
	ZoneIncrease  Zone = "INCREASE"
)

// Action is the difficulty adjustment direction.
type Action string

const (
	ActionEmergencyBrake Action = "EMERGENCY_BRAKE"
	ActionReduce         Action = "REDUCE"
	ActionMaintain       Action = "MAINTAIN"
	ActionIncrease       Action = "INCREASE"
)

// Urgency ranks how quickly the session should apply the adjustment.
type Urgency string

const (
	UrgencyLow      Urgency = "LOW"
	UrgencyMedium   Urgency = "MEDIUM"
	UrgencyHigh     Urgency = "HIGH"
	UrgencyCritical Urgency = "CRITICAL"
)

// Trend is the short-horizon load direction supplied by the caller.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendStable  Trend = "stable"
	TrendFalling Trend = "falling"
)

// DefaultTolerance is the personalized load tolerance assumed when no
// profile exists.
const DefaultTolerance = 60.0

// trendShift nudges the effective load when the trend is moving.
const trendShift = 5.0

// SessionMods are the per-zone session modifications.
type SessionMods struct {
	MaxComplexity    string  // BASIC / INTERMEDIATE / ADVANCED cap
	PromptComplexity float64 // validation-prompt complexity multiplier, 0.3–1.0
	BreakEveryMin    int
	Scaffolding      string // "none", "light", "moderate", "high"
}

// Adaptation is one difficulty adjustment decision.
type Adaptation struct {
	Zone             Zone
	Action           Action
	DifficultyChange int // -2 … +1
	ReviewRatio      float64
	Urgency          Urgency
	EffectiveLoad    float64
	Mods             SessionMods
}

// zoneMods is the fixed modification table.
var zoneMods = map[Zone]SessionMods{
	ZoneEmergency: {MaxComplexity: "BASIC", PromptComplexity: 0.3, BreakEveryMin: 15, Scaffolding: "high"},
	ZoneReduce:    {MaxComplexity: "INTERMEDIATE", PromptComplexity: 0.5, BreakEveryMin: 25, Scaffolding: "moderate"},
	ZoneMaintain:  {MaxComplexity: "INTERMEDIATE", PromptComplexity: 0.8, BreakEveryMin: 40, Scaffolding: "light"},
	ZoneIncrease:  {MaxComplexity: "ADVANCED", PromptComplexity: 1.0, BreakEveryMin: 50, Scaffolding: "none"},
}

// Adapter is the synchronous difficulty adapter. Log may be nil.
type Adapter struct {
	Log   AdaptationLog
	Clock telemetry.Clock
	Slog  *slog.Logger

	pending sync.WaitGroup
}

// NewAdapter wires an Adapter; log entries go to alog (nil disables them).
func NewAdapter(alog AdaptationLog, clock telemetry.Clock, logger *slog.Logger) *Adapter {
	if clock == nil {
		clock = telemetry.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{Log: alog, Clock: clock, Slog: logger}
}

// Adjust maps the current load to a zone and its fixed adjustment tuple.
// Tolerance shifts the effective load: a learner tolerant of high load sits
// lower in the zone table than the raw reading suggests. The adaptation is
// appended to the log without blocking the caller.
func (a *Adapter) Adjust(ctx context.Context, userID string, currentLoad, tolerance float64, trend Trend) Adaptation {
	ad := Adjustment(currentLoad, tolerance, trend)
	a.logAdaptation(userID, currentLoad, ad)
	return ad
}

// Adjustment is the pure zone mapping, usable without an Adapter.
func Adjustment(currentLoad, tolerance float64, trend Trend) Adaptation {
	load := effectiveLoad(currentLoad, tolerance, trend)

	var ad Adaptation
	ad.EffectiveLoad = load
	switch {
	case load > 80:
		ad.Zone = ZoneEmergency
		ad.Action = ActionEmergencyBrake
		ad.DifficultyChange = -2
		ad.ReviewRatio = 1.0
		ad.Urgency = UrgencyCritical
	case load > 60:
		ad.Zone = ZoneReduce
		ad.Action = ActionReduce
		ad.DifficultyChange = -1
		ad.ReviewRatio = 0.8
		ad.Urgency = UrgencyHigh
	case load >= 40:
		ad.Zone = ZoneMaintain
		ad.Action = ActionMaintain
		ad.DifficultyChange = 0
		ad.ReviewRatio = 0.6
		ad.Urgency = UrgencyMedium
	default:
		ad.Zone = ZoneIncrease
		ad.Action = ActionIncrease
		ad.ReviewRatio = 0.5
		ad.Urgency = UrgencyLow
		if load < 30 {
			ad.DifficultyChange = 1
		}
	}
	ad.Mods = zoneMods[ad.Zone]
	return ad
}

// effectiveLoad folds tolerance and trend into the raw reading. Tolerance
// above the default shifts the load down (the learner copes), below shifts
// it up; a moving trend nudges by a fixed margin.
func effectiveLoad(currentLoad, tolerance float64, trend Trend) float64 {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	load := currentLoad - (tolerance-DefaultTolerance)*0.5
	switch trend {
	case TrendRising:
		load += trendShift
	case TrendFalling:
		load -= trendShift
	}
	if load < 0 {
		return 0
	}
	if load > 100 {
		return 100
	}
	return load
}
