// Package pluginlibrary provides a ports.LibraryManager backed by Go plugins.
package pluginlibrary

import (
	"plugin"

	"github.com/pkg/errors"

	"github.com/user/pathkit/pkg/path"
	"github.com/user/pathkit/pkg/ports"
)

// Manager implements ports.LibraryManager with the plugin package.
type Manager struct {
	logger ports.Logger
}

// New creates a new Manager.
func New(logger ports.Logger) *Manager {
	return &Manager{logger: logger.WithComponent("library")}
}

// LoadDynamicLibrary opens the plugin at p. Only file paths can be loaded.
func (m *Manager) LoadDynamicLibrary(p path.Path) (ports.Library, error) {
	if !p.HasFileName() {
		return nil, errors.Errorf("library path has no file name: %s", p)
	}

	m.logger.Debug("Loading library %s", p)
	plug, err := plugin.Open(p.OSString())
	if err != nil {
		return nil, errors.Wrapf(err, "load library %s", p)
	}
	return &Library{path: p, plugin: plug}, nil
}

// Library is an opened Go plugin.
type Library struct {
	path   path.Path
	plugin *plugin.Plugin
}

// Lookup returns the exported symbol with the given name.
func (l *Library) Lookup(name string) (any, error) {
	symbol, err := l.plugin.Lookup(name)
	if err != nil {
		return nil, errors.Wrapf(err, "lookup %s in %s", name, l.path)
	}
	return symbol, nil
}

var (
	_ ports.LibraryManager = (*Manager)(nil)
	_ ports.Library        = (*Library)(nil)
)
