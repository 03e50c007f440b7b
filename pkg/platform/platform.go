// Package platform bundles the capabilities path consumers need. A Platform is
// passed explicitly; there is no process-wide registry.
package platform

import (
	"errors"
	"fmt"
	"sync"

	"github.com/user/pathkit/pkg/adapters/osfilesystem"
	"github.com/user/pathkit/pkg/adapters/osprocess"
	"github.com/user/pathkit/pkg/adapters/pluginlibrary"
	"github.com/user/pathkit/pkg/adapters/systemclock"
	"github.com/user/pathkit/pkg/ports"
)

// ErrNotRegistered indicates that a capability was requested before one was
// bound.
var ErrNotRegistered = errors.New("capability not registered")

// Platform holds one implementation per capability. It is safe for concurrent
// use.
type Platform struct {
	mu             sync.RWMutex
	fileSystem     ports.FileSystem
	processManager ports.ProcessManager
	libraryManager ports.LibraryManager
	system         ports.System
	logger         ports.Logger
}

// Option configures a Platform.
type Option func(*Platform)

// UseFileSystem sets the file system.
func UseFileSystem(fs ports.FileSystem) Option {
	return func(p *Platform) { p.fileSystem = fs }
}

// UseProcessManager sets the process manager.
func UseProcessManager(pm ports.ProcessManager) Option {
	return func(p *Platform) { p.processManager = pm }
}

// UseLibraryManager sets the library manager.
func UseLibraryManager(lm ports.LibraryManager) Option {
	return func(p *Platform) { p.libraryManager = lm }
}

// UseSystem sets the system clock.
func UseSystem(s ports.System) Option {
	return func(p *Platform) { p.system = s }
}

// UseLogger sets the logger.
func UseLogger(l ports.Logger) Option {
	return func(p *Platform) { p.logger = l }
}

// New creates a Platform with the given capabilities. Unset capabilities
// report ErrNotRegistered.
func New(opts ...Option) *Platform {
	p := &Platform{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Native creates a Platform backed by the operating system.
func Native(logger ports.Logger) *Platform {
	return New(
		UseFileSystem(osfilesystem.New(logger)),
		UseProcessManager(osprocess.New(logger)),
		UseLibraryManager(pluginlibrary.New(logger)),
		UseSystem(systemclock.New()),
		UseLogger(logger),
	)
}

func get[T comparable](p *Platform, slot *T, name string) (T, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var zero T
	if *slot == zero {
		return zero, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	return *slot, nil
}

// FileSystem returns the bound file system.
func (p *Platform) FileSystem() (ports.FileSystem, error) {
	return get(p, &p.fileSystem, "file system")
}

// ProcessManager returns the bound process manager.
func (p *Platform) ProcessManager() (ports.ProcessManager, error) {
	return get(p, &p.processManager, "process manager")
}

// LibraryManager returns the bound library manager.
func (p *Platform) LibraryManager() (ports.LibraryManager, error) {
	return get(p, &p.libraryManager, "library manager")
}

// System returns the bound system clock.
func (p *Platform) System() (ports.System, error) {
	return get(p, &p.system, "system")
}

// Logger returns the bound logger.
func (p *Platform) Logger() (ports.Logger, error) {
	return get(p, &p.logger, "logger")
}
