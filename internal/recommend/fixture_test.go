package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/cadence/internal/burnout"
	"github.com/abhisek/cadence/internal/pattern"
	"github.com/abhisek/cadence/internal/telemetry"
)

// fixture wires an Engine against in-memory stores.
type fixture struct {
	patterns    *memPatterns
	insights    *memInsights
	profiles    *stubProfiles
	assessments *memAssessments
	recs        *memRecs
	applied     *memApplied
	telemetry   *stubTelemetry
	clock       *mutClock
	engine      *Engine
}

func newFixture() *fixture {
	f := &fixture{
		patterns:    &memPatterns{},
		insights:    &memInsights{},
		profiles:    &stubProfiles{profile: &pattern.Profile{UserID: "u1", DataQualityScore: 0.6}},
		assessments: &memAssessments{},
		recs:        &memRecs{},
		applied:     &memApplied{},
		telemetry:   &stubTelemetry{},
		clock:       &mutClock{t: genNow},
	}
	f.engine = NewEngine(f.patterns, f.insights, f.profiles, f.assessments, f.recs, f.applied, f.telemetry, f.clock, nil)
	return f
}

type memPatterns struct {
	rows []*pattern.Pattern
}

func (m *memPatterns) ListByUser(ctx context.Context, userID string) ([]*pattern.Pattern, error) {
	var out []*pattern.Pattern
	for _, p := range m.rows {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPatterns) Save(ctx context.Context, p *pattern.Pattern) error {
	m.rows = append(m.rows, p)
	return nil
}

func (m *memPatterns) Update(ctx context.Context, p *pattern.Pattern) error { return nil }

func (m *memPatterns) Delete(ctx context.Context, id string) error { return nil }

type memInsights struct {
	rows []*pattern.Insight
}

func (m *memInsights) ListUnacknowledged(ctx context.Context, userID string) ([]*pattern.Insight, error) {
	var out []*pattern.Insight
	for _, ins := range m.rows {
		if ins.UserID == userID && !ins.Acknowledged {
			out = append(out, ins)
		}
	}
	return out, nil
}

func (m *memInsights) Save(ctx context.Context, ins *pattern.Insight) error {
	m.rows = append(m.rows, ins)
	return nil
}

type stubProfiles struct {
	profile *pattern.Profile
}

func (s *stubProfiles) Get(ctx context.Context, userID string) (*pattern.Profile, error) {
	return s.profile, nil
}

func (s *stubProfiles) Upsert(ctx context.Context, p *pattern.Profile) error {
	s.profile = p
	return nil
}

// memAssessments keeps rows newest last; Recent reverses.
type memAssessments struct {
	rows []*burnout.Assessment
}

func (m *memAssessments) Save(ctx context.Context, a *burnout.Assessment) error {
	m.rows = append(m.rows, a)
	return nil
}

func (m *memAssessments) Recent(ctx context.Context, userID string, limit int) ([]*burnout.Assessment, error) {
	var out []*burnout.Assessment
	for i := len(m.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if m.rows[i].UserID == userID {
			out = append(out, m.rows[i])
		}
	}
	return out, nil
}

type memRecs struct {
	rows []*Recommendation
	seq  int
}

func (m *memRecs) ListOpen(ctx context.Context, userID string) ([]*Recommendation, error) {
	var out []*Recommendation
	for _, r := range m.rows {
		if r.UserID == userID && r.Open() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRecs) Save(ctx context.Context, r *Recommendation) error {
	m.seq++
	r.ID = fmt.Sprintf("rec-%d", m.seq)
	m.rows = append(m.rows, r)
	return nil
}

func (m *memRecs) Get(ctx context.Context, id string) (*Recommendation, error) {
	for _, r := range m.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("recommendation %s not found", id)
}

func (m *memRecs) SetApplied(ctx context.Context, id string, at time.Time) error {
	r, err := m.Get(ctx, id)
	if err != nil {
		return err
	}
	r.AppliedAt = &at
	return nil
}

func (m *memRecs) SetDismissed(ctx context.Context, id string, at time.Time) error {
	r, err := m.Get(ctx, id)
	if err != nil {
		return err
	}
	r.DismissedAt = &at
	return nil
}

type memApplied struct {
	rows []*Applied
	seq  int
}

func (m *memApplied) Save(ctx context.Context, a *Applied) error {
	m.seq++
	a.ID = fmt.Sprintf("app-%d", m.seq)
	m.rows = append(m.rows, a)
	return nil
}

func (m *memApplied) Get(ctx context.Context, id string) (*Applied, error) {
	for _, a := range m.rows {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("applied record %s not found", id)
}

func (m *memApplied) Update(ctx context.Context, a *Applied) error {
	for i, row := range m.rows {
		if row.ID == a.ID {
			m.rows[i] = a
			return nil
		}
	}
	return fmt.Errorf("applied record %s not found", a.ID)
}

// stubTelemetry serves a fixed number of recent sessions.
type stubTelemetry struct {
	weeklySessions int
}

func (s *stubTelemetry) Sessions(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.Session, error) {
	return make([]telemetry.Session, s.weeklySessions), nil
}

func (s *stubTelemetry) Reviews(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.Review, error) {
	return nil, nil
}

func (s *stubTelemetry) Missions(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.Mission, error) {
	return nil, nil
}

func (s *stubTelemetry) LoadMetrics(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.LoadMetric, error) {
	return nil, nil
}

func (s *stubTelemetry) PerformanceMetrics(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.PerformanceMetric, error) {
	return nil, nil
}

func (s *stubTelemetry) Events(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.Event, error) {
	return nil, nil
}

type mutClock struct {
	t time.Time
}

func (c *mutClock) Now() time.Time { return c.t }
