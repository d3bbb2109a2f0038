package burnout

import "fmt"

// Signal is one discrete burnout warning, evaluated independently of the
// continuous risk score.
type Signal struct {
	Name        string
	Detected    bool
	Severity    string // "low", "moderate", "high"
	Description string
}

// Detector evaluates one warning signal over the assessment window.
type Detector interface {
	Name() string
	Detect(d *windowData) Signal
}

// DefaultDetectors returns the five warning-signal detectors.
func DefaultDetectors() []Detector {
	return []Detector{
		&chronicOverloadDetector{},
		&performanceDropDetector{},
		&engagementLossDetector{},
		&irregularPatternDetector{},
		&noRecoveryDetector{},
	}
}

type chronicOverloadDetector struct{}

func (*chronicOverloadDetector) Name() string { return "chronic-overload" }

func (c *chronicOverloadDetector) Detect(d *windowData) Signal {
	score := chronicLoadScore(d)
	s := Signal{Name: c.Name()}
	if score < 75 {
		return s
	}
	s.Detected = true
	s.Severity = severityFor(score)
	s.Description = "Cognitive load has stayed above 60 on most study days in the last two weeks."
	return s
}

type performanceDropDetector struct{}

func (*performanceDropDetector) Name() string { return "performance-drop" }

func (p *performanceDropDetector) Detect(d *windowData) Signal {
	score := performanceDeclineScore(d)
	s := Signal{Name: p.Name()}
	if score < 50 {
		return s
	}
	s.Detected = true
	s.Severity = severityFor(score)
	s.Description = "Retention has dropped noticeably between the first and second week of the window."
	return s
}

type engagementLossDetector struct{}

func (*engagementLossDetector) Name() string { return "engagement-loss" }

func (e *engagementLossDetector) Detect(d *windowData) Signal {
	score := engagementDecayScore(d)
	s := Signal{Name: e.Name()}
	if score < 50 {
		return s
	}
	s.Detected = true
	s.Severity = severityFor(score)
	s.Description = "A growing share of missions are skipped or rated trivially easy."
	return s
}

type irregularPatternDetector struct{}

func (*irregularPatternDetector) Name() string { return "irregular-pattern" }

func (i *irregularPatternDetector) Detect(d *windowData) Signal {
	score := irregularityScore(d)
	s := Signal{Name: i.Name()}
	if score < 50 {
		return s
	}
	s.Detected = true
	s.Severity = severityFor(score)
	s.Description = "Daily missions are being skipped often enough to break the study rhythm."
	return s
}

type noRecoveryDetector struct{}

func (*noRecoveryDetector) Name() string { return "no-recovery" }

func (n *noRecoveryDetector) Detect(d *windowData) Signal {
	score := recoveryDeficitScore(d)
	s := Signal{Name: n.Name()}
	if score < 50 {
		return s
	}
	s.Detected = true
	s.Severity = severityFor(score)
	s.Description = fmt.Sprintf("No day in the last 7 dropped below load %d; there has been no real recovery time.", lowLoadThreshold)
	return s
}

func severityFor(score float64) string {
	switch {
	case score >= 100:
		return "high"
	case score >= 75:
		return "moderate"
	default:
		return "low"
	}
}
