package ports

import "github.com/user/pathkit/pkg/path"

// LibraryManager loads dynamic libraries.
type LibraryManager interface {
	// LoadDynamicLibrary opens the library at p.
	LoadDynamicLibrary(p path.Path) (Library, error)
}

// Library is a loaded dynamic library.
type Library interface {
	// Lookup returns the exported symbol with the given name.
	Lookup(name string) (any, error)
}
