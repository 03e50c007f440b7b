package mocks

import (
	"fmt"
	"sync"

	"github.com/user/pathkit/pkg/path"
	"github.com/user/pathkit/pkg/ports"
)

// LibraryManager is a mock ports.LibraryManager serving registered symbol
// tables.
type LibraryManager struct {
	requestLog

	mu        sync.RWMutex
	libraries map[string]map[string]any
}

// NewLibraryManager creates a mock LibraryManager.
func NewLibraryManager() *LibraryManager {
	return &LibraryManager{libraries: make(map[string]map[string]any)}
}

// RegisterLibrary makes symbols available under p.
func (m *LibraryManager) RegisterLibrary(p path.Path, symbols map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.libraries[p.String()] = symbols
}

func (m *LibraryManager) LoadDynamicLibrary(p path.Path) (ports.Library, error) {
	m.record("LoadDynamicLibrary: %s", p)
	m.mu.RLock()
	defer m.mu.RUnlock()
	symbols, ok := m.libraries[p.String()]
	if !ok {
		return nil, fmt.Errorf("library not registered: %s", p)
	}
	return &Library{manager: m, path: p, symbols: symbols}, nil
}

// Library is a mock ports.Library.
type Library struct {
	manager *LibraryManager
	path    path.Path
	symbols map[string]any
}

func (l *Library) Lookup(name string) (any, error) {
	l.manager.record("GetFunction: %s %s", l.path, name)
	symbol, ok := l.symbols[name]
	if !ok {
		return nil, fmt.Errorf("symbol %s not found in %s", name, l.path)
	}
	return symbol, nil
}

var (
	_ ports.LibraryManager = (*LibraryManager)(nil)
	_ ports.Library        = (*Library)(nil)
)
