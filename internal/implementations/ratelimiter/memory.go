package ratelimiter

import (
	"context"
	e "reachout/internal/core/domain/errors"
	ratelimiter "reachout/internal/core/domain/ratelimiter"
	"sync"
	"time"
)

type entry struct {
	count   uint16
	resetAt time.Time
}

// Memory is a fixed-window counter keyed by an arbitrary string. State is
// process-local and unbounded; it resets on restart. Bursts spanning a
// window boundary can momentarily admit up to twice the limit, a known
// approximation of this algorithm rather than a bug.
type Memory struct {
	entries map[string]*entry
	now     func() time.Time
	lock    sync.Mutex
}

func NewMemory(now func() time.Time) *Memory {
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Memory{entries: make(map[string]*entry), now: now}
}

func (m *Memory) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	now := m.now()

	m.lock.Lock()
	defer m.lock.Unlock()

	existing, ok := m.entries[key]
	if !ok || existing.resetAt.Before(now) {
		m.entries[key] = &entry{count: 1, resetAt: now.Add(limit.Interval.Duration())}
		return ratelimiter.Allowed()
	}

	if existing.count >= limit.Value {
		return ratelimiter.NotAllowed()
	}

	existing.count++
	return ratelimiter.Allowed()
}
