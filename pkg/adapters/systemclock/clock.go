// Package systemclock provides the wall clock ports.System.
package systemclock

import (
	"time"

	"github.com/user/pathkit/pkg/ports"
)

// Clock implements ports.System with time.Now.
type Clock struct{}

// New creates a new Clock.
func New() *Clock {
	return &Clock{}
}

// CurrentTime returns the current wall clock time.
func (c *Clock) CurrentTime() time.Time {
	return time.Now()
}

var _ ports.System = (*Clock)(nil)
