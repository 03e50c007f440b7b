// Package locate finds files relative to a starting directory using only the
// ports.FileSystem capability.
package locate

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/user/pathkit/pkg/adapters/logger"
	"github.com/user/pathkit/pkg/path"
	"github.com/user/pathkit/pkg/ports"
)

// DefaultMaxDepth is how many ".." levels an unrooted search may climb above
// its starting point.
const DefaultMaxDepth = 32

// ErrNotFound indicates that no matching file exists.
var ErrNotFound = errors.New("not found")

type options struct {
	maxDepth int
	logger   ports.Logger
}

// Option configures a search.
type Option func(*options)

// WithMaxDepth limits how many ".." levels an unrooted search may climb.
func WithMaxDepth(depth int) Option {
	return func(o *options) { o.maxDepth = depth }
}

// WithLogger sets the logger used to trace the search.
func WithLogger(l ports.Logger) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) options {
	o := options{maxDepth: DefaultMaxDepth, logger: logger.NewNoop()}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = o.logger.WithComponent("locate")
	return o
}

// FindUpward looks for fileName in start and each of its parents and returns
// the first existing match. A start path with a file name begins in its
// directory. The search ends at the root, or for unrooted paths once the
// leading ".." chain exceeds the max depth.
func FindUpward(ctx context.Context, fs ports.FileSystem, start path.Path, fileName string, opts ...Option) (path.Path, error) {
	o := newOptions(opts)

	if fileName == "" {
		return path.Path{}, fmt.Errorf("%w: empty file name", path.ErrInvalidPath)
	}
	name, err := path.Empty().WithFileName(fileName)
	if err != nil {
		return path.Path{}, err
	}

	dir := start
	if dir.HasFileName() {
		dir = dir.Parent()
	}
	o.logger.Debug("Searching for %s from %s", fileName, dir)

	for {
		if err := ctx.Err(); err != nil {
			return path.Path{}, err
		}

		candidate, err := dir.Join(name)
		if err != nil {
			return path.Path{}, err
		}
		o.logger.Debug("Checking %s", candidate)

		exists, err := fs.Exists(candidate)
		if err != nil {
			return path.Path{}, err
		}
		if exists {
			o.logger.Debug("Found %s", candidate)
			return candidate, nil
		}

		parent := dir.Parent()
		if parent == dir {
			break
		}
		if leadingParents(parent) > o.maxDepth {
			o.logger.Debug("Search depth %d reached at %s", o.maxDepth, dir)
			break
		}
		dir = parent
	}

	return path.Path{}, fmt.Errorf("%w: %s above %s", ErrNotFound, fileName, start)
}

// leadingParents counts the ".." segments at the start of p.
func leadingParents(p path.Path) int {
	count := 0
	for _, directory := range p.Directories() {
		if directory != ".." {
			break
		}
		count++
	}
	return count
}

// ListFiles returns the files directly inside dir whose extension matches,
// sorted in path order. The extension may be given with or without the
// leading "."; an empty extension matches every file.
func ListFiles(ctx context.Context, fs ports.FileSystem, dir path.Path, extension string, opts ...Option) ([]path.Path, error) {
	o := newOptions(opts)

	if extension != "" && !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}
	o.logger.Debug("Listing %s files in %s", extension, dir)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := fs.DirectoryChildren(dir)
	if err != nil {
		o.logger.Warn("Failed to read directory %s: %s", dir, err)
		return nil, err
	}

	var files []path.Path
	for _, entry := range entries {
		if entry.IsDirectory || !entry.Path.HasFileName() {
			continue
		}
		if extension != "" {
			ext, err := entry.Path.FileExtension()
			if err != nil || ext != extension {
				continue
			}
		}
		files = append(files, entry.Path)
	}

	slices.SortFunc(files, path.Path.Compare)
	return files, nil
}

// Relativize expresses every target relative to base. Targets that cannot be
// related to base, such as those on a different root, are returned unchanged.
func Relativize(base path.Path, targets []path.Path) ([]path.Path, error) {
	result := make([]path.Path, 0, len(targets))
	for _, target := range targets {
		relative, err := target.RelativeTo(base)
		if err != nil {
			return nil, err
		}
		result = append(result, relative)
	}
	return result, nil
}
