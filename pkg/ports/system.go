package ports

import "time"

// System abstracts process wide system state.
type System interface {
	// CurrentTime returns the current wall clock time.
	CurrentTime() time.Time
}
