package platform

import (
	"sync"

	"github.com/user/pathkit/pkg/ports"
)

// Scope is a temporary capability binding. Close restores the binding that was
// in place before; calling it more than once has no further effect.
type Scope struct {
	once    sync.Once
	restore func()
}

// Close restores the previous binding.
func (s *Scope) Close() {
	s.once.Do(s.restore)
}

func bind[T any](p *Platform, slot *T, value T) *Scope {
	p.mu.Lock()
	previous := *slot
	*slot = value
	p.mu.Unlock()

	return &Scope{restore: func() {
		p.mu.Lock()
		*slot = previous
		p.mu.Unlock()
	}}
}

// BindFileSystem swaps in fs until the returned scope is closed.
func (p *Platform) BindFileSystem(fs ports.FileSystem) *Scope {
	return bind(p, &p.fileSystem, fs)
}

// BindProcessManager swaps in pm until the returned scope is closed.
func (p *Platform) BindProcessManager(pm ports.ProcessManager) *Scope {
	return bind(p, &p.processManager, pm)
}

// BindLibraryManager swaps in lm until the returned scope is closed.
func (p *Platform) BindLibraryManager(lm ports.LibraryManager) *Scope {
	return bind(p, &p.libraryManager, lm)
}

// BindSystem swaps in s until the returned scope is closed.
func (p *Platform) BindSystem(s ports.System) *Scope {
	return bind(p, &p.system, s)
}

// BindLogger swaps in l until the returned scope is closed.
func (p *Platform) BindLogger(l ports.Logger) *Scope {
	return bind(p, &p.logger, l)
}

// With runs fn and closes scope afterwards, including when fn panics.
func With(scope *Scope, fn func() error) error {
	defer scope.Close()
	return fn()
}
