package mocks

import (
	"sync"
	"time"

	"github.com/user/pathkit/pkg/ports"
)

// System is a mock ports.System with a fixed, advanceable clock.
type System struct {
	requestLog

	mu  sync.Mutex
	now time.Time
}

// NewSystem creates a mock System starting at now.
func NewSystem(now time.Time) *System {
	return &System{now: now}
}

// Advance moves the clock forward by d.
func (m *System) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

func (m *System) CurrentTime() time.Time {
	m.record("GetCurrentTime")
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

var _ ports.System = (*System)(nil)
