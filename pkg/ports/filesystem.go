// Package ports defines the capability interfaces through which path consumers
// reach the operating system. Every interface accepts and returns path.Path
// values; implementations never expose raw OS strings.
package ports

import (
	"io"
	"time"

	"github.com/user/pathkit/pkg/path"
)

// DirectoryEntry describes one child of a directory.
type DirectoryEntry struct {
	Path         path.Path
	IsDirectory  bool
	Size         int64
	AccessTime   time.Time
	CreateTime   time.Time
	ModifiedTime time.Time
	Attributes   uint32
}

// FileSystem abstracts file system operations.
type FileSystem interface {
	// UserProfileDirectory returns the home directory of the current user.
	UserProfileDirectory() (path.Path, error)

	// CurrentDirectory returns the working directory of the running process.
	CurrentDirectory() (path.Path, error)

	// Exists checks if a file or directory exists.
	Exists(p path.Path) (bool, error)

	// LastWriteTime returns the modification time of a file or directory.
	// A missing entry yields an error wrapping fs.ErrNotExist.
	LastWriteTime(p path.Path) (time.Time, error)

	// SetLastWriteTime updates the modification time of a file or directory.
	SetLastWriteTime(p path.Path, t time.Time) error

	// DirectoryFilesLastWriteTime calls fn for the directory itself ("./") and
	// every file in it, passing paths relative to the directory.
	DirectoryFilesLastWriteTime(dir path.Path, fn func(file path.Path, t time.Time)) error

	// OpenRead opens a file for reading.
	OpenRead(p path.Path) (io.ReadCloser, error)

	// OpenWrite opens a file for writing, creating or truncating it.
	OpenWrite(p path.Path) (io.WriteCloser, error)

	// Rename moves source to destination.
	Rename(source, destination path.Path) error

	// CopyFile copies the contents of source to destination.
	CopyFile(source, destination path.Path) error

	// CreateDirectory creates a directory and all parent directories.
	CreateDirectory(p path.Path) error

	// DirectoryChildren lists the entries of a directory as full paths; files
	// carry a file name, subdirectories end with a separator.
	DirectoryChildren(dir path.Path) ([]DirectoryEntry, error)

	// DeleteDirectory removes a directory, and its contents when recursive is set.
	DeleteDirectory(dir path.Path, recursive bool) error
}
