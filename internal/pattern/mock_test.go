package pattern

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/cadence/internal/telemetry"
)

// memTelemetry is an in-memory telemetry.Repository with real window
// filtering, so incremental-run gating behaves like the store.
type memTelemetry struct {
	sessions []telemetry.Session
	reviews  []telemetry.Review
	loads    []telemetry.LoadMetric
	events   []telemetry.Event
	err      error
}

func (m *memTelemetry) Sessions(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []telemetry.Session
	for _, s := range m.sessions {
		if w.Contains(s.StartedAt) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memTelemetry) Reviews(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []telemetry.Review
	for _, r := range m.reviews {
		if w.Contains(r.ReviewedAt) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memTelemetry) Missions(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.Mission, error) {
	return nil, m.err
}

func (m *memTelemetry) LoadMetrics(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.LoadMetric, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []telemetry.LoadMetric
	for _, l := range m.loads {
		if w.Contains(l.Timestamp) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memTelemetry) PerformanceMetrics(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.PerformanceMetric, error) {
	return nil, m.err
}

func (m *memTelemetry) Events(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []telemetry.Event
	for _, e := range m.events {
		if w.Contains(e.Timestamp) {
			out = append(out, e)
		}
	}
	return out, nil
}

// memPatterns is an in-memory Repo.
type memPatterns struct {
	rows map[string]*Pattern
	seq  int
}

func newMemPatterns() *memPatterns {
	return &memPatterns{rows: map[string]*Pattern{}}
}

func (m *memPatterns) ListByUser(ctx context.Context, userID string) ([]*Pattern, error) {
	var out []*Pattern
	for _, p := range m.rows {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPatterns) Save(ctx context.Context, p *Pattern) error {
	m.seq++
	p.ID = fmt.Sprintf("pat-%d", m.seq)
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *memPatterns) Update(ctx context.Context, p *Pattern) error {
	if _, ok := m.rows[p.ID]; !ok {
		return fmt.Errorf("pattern %s not found", p.ID)
	}
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *memPatterns) Delete(ctx context.Context, id string) error {
	delete(m.rows, id)
	return nil
}

// memInsights is an in-memory InsightRepo.
type memInsights struct {
	rows []*Insight
	seq  int
}

func (m *memInsights) ListUnacknowledged(ctx context.Context, userID string) ([]*Insight, error) {
	var out []*Insight
	for _, ins := range m.rows {
		if ins.UserID == userID && !ins.Acknowledged {
			out = append(out, ins)
		}
	}
	return out, nil
}

func (m *memInsights) Save(ctx context.Context, ins *Insight) error {
	m.seq++
	ins.ID = fmt.Sprintf("ins-%d", m.seq)
	cp := *ins
	m.rows = append(m.rows, &cp)
	return nil
}

// memProfiles is an in-memory ProfileRepo.
type memProfiles struct {
	rows map[string]*Profile
}

func newMemProfiles() *memProfiles {
	return &memProfiles{rows: map[string]*Profile{}}
}

func (m *memProfiles) Get(ctx context.Context, userID string) (*Profile, error) {
	p, ok := m.rows[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProfiles) Upsert(ctx context.Context, p *Profile) error {
	cp := *p
	m.rows[p.UserID] = &cp
	return nil
}

// fixedClock returns a settable time.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time { return c.t }
