// Package osfilesystem provides a ports.FileSystem backed by the os package.
package osfilesystem

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/user/pathkit/pkg/path"
	"github.com/user/pathkit/pkg/ports"
)

// FileSystem implements ports.FileSystem using the os package.
type FileSystem struct {
	logger ports.Logger
}

// New creates a new FileSystem.
func New(logger ports.Logger) *FileSystem {
	return &FileSystem{logger: logger.WithComponent("filesystem")}
}

// directoryFromNative parses an OS directory string so that its last segment
// is kept as a directory rather than a file name.
func directoryFromNative(dir string) path.Path {
	return path.FromNative(dir + "/")
}

// representable reports whether an entry name survives parsing as a single
// segment. On POSIX hosts '\' is a legal file name character but a
// separator to path.Parse.
func (fs *FileSystem) representable(dir path.Path, name string) bool {
	if strings.ContainsRune(name, '\\') {
		fs.logger.Warn("Skipping %s in %s: name contains a backslash", name, dir)
		return false
	}
	return true
}

// childPath builds the path of a directory entry.
func childPath(dir path.Path, name string, isDirectory bool) (path.Path, error) {
	relative := "./" + name
	if isDirectory {
		relative += "/"
	}
	return dir.Join(path.Parse(relative))
}

// UserProfileDirectory returns the home directory of the current user.
func (fs *FileSystem) UserProfileDirectory() (path.Path, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return path.Path{}, errors.Wrap(err, "user profile directory")
	}
	return directoryFromNative(home), nil
}

// CurrentDirectory returns the working directory of the running process.
func (fs *FileSystem) CurrentDirectory() (path.Path, error) {
	dir, err := os.Getwd()
	if err != nil {
		return path.Path{}, errors.Wrap(err, "current directory")
	}
	return directoryFromNative(dir), nil
}

// Exists checks if a file or directory exists.
func (fs *FileSystem) Exists(p path.Path) (bool, error) {
	_, err := os.Stat(p.OSString())
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, "exists %s", p)
}

// LastWriteTime returns the modification time of a file or directory.
func (fs *FileSystem) LastWriteTime(p path.Path) (time.Time, error) {
	info, err := os.Stat(p.OSString())
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "last write time %s", p)
	}
	return info.ModTime(), nil
}

// SetLastWriteTime updates the modification time, leaving the access time as is.
func (fs *FileSystem) SetLastWriteTime(p path.Path, t time.Time) error {
	if err := os.Chtimes(p.OSString(), time.Time{}, t); err != nil {
		return errors.Wrapf(err, "set last write time %s", p)
	}
	return nil
}

// DirectoryFilesLastWriteTime reports the directory itself as "./" followed by
// every regular file in it. Names containing '\' are skipped with a warning.
func (fs *FileSystem) DirectoryFilesLastWriteTime(dir path.Path, fn func(file path.Path, t time.Time)) error {
	info, err := os.Stat(dir.OSString())
	if err != nil {
		return errors.Wrapf(err, "directory files last write time %s", dir)
	}
	fn(path.Empty(), info.ModTime())

	entries, err := os.ReadDir(dir.OSString())
	if err != nil {
		return errors.Wrapf(err, "read directory %s", dir)
	}
	for _, entry := range entries {
		if entry.IsDir() || !fs.representable(dir, entry.Name()) {
			continue
		}
		entryInfo, err := entry.Info()
		if err != nil {
			return errors.Wrapf(err, "stat %s in %s", entry.Name(), dir)
		}
		fn(path.Parse("./"+entry.Name()), entryInfo.ModTime())
	}
	return nil
}

// OpenRead opens a file for reading.
func (fs *FileSystem) OpenRead(p path.Path) (io.ReadCloser, error) {
	f, err := os.Open(p.OSString())
	if err != nil {
		return nil, errors.Wrapf(err, "open %s for read", p)
	}
	return f, nil
}

// OpenWrite opens a file for writing, creating parent directories as needed.
func (fs *FileSystem) OpenWrite(p path.Path) (io.WriteCloser, error) {
	if err := fs.CreateDirectory(p.Parent()); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(p.OSString(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s for write", p)
	}
	return f, nil
}

// Rename moves source to destination.
func (fs *FileSystem) Rename(source, destination path.Path) error {
	if err := os.Rename(source.OSString(), destination.OSString()); err != nil {
		return errors.Wrapf(err, "rename %s to %s", source, destination)
	}
	return nil
}

// CopyFile copies the contents of source to destination.
func (fs *FileSystem) CopyFile(source, destination path.Path) error {
	in, err := fs.OpenRead(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fs.OpenWrite(destination)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrapf(err, "copy %s to %s", source, destination)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "close %s", destination)
	}
	return nil
}

// CreateDirectory creates a directory and all parent directories.
func (fs *FileSystem) CreateDirectory(p path.Path) error {
	if err := os.MkdirAll(p.OSString(), 0755); err != nil {
		return errors.Wrapf(err, "create directory %s", p)
	}
	return nil
}

// DirectoryChildren lists the entries of a directory. Names containing '\'
// are skipped with a warning.
func (fs *FileSystem) DirectoryChildren(dir path.Path) ([]ports.DirectoryEntry, error) {
	entries, err := os.ReadDir(dir.OSString())
	if err != nil {
		return nil, errors.Wrapf(err, "read directory %s", dir)
	}

	result := make([]ports.DirectoryEntry, 0, len(entries))
	for _, entry := range entries {
		if !fs.representable(dir, entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s in %s", entry.Name(), dir)
		}
		child, err := childPath(dir, entry.Name(), entry.IsDir())
		if err != nil {
			return nil, errors.Wrapf(err, "child %s of %s", entry.Name(), dir)
		}
		result = append(result, ports.DirectoryEntry{
			Path:         child,
			IsDirectory:  entry.IsDir(),
			Size:         info.Size(),
			ModifiedTime: info.ModTime(),
			Attributes:   uint32(info.Mode()),
		})
	}
	return result, nil
}

// DeleteDirectory removes a directory. Without recursive the directory must
// be empty.
func (fs *FileSystem) DeleteDirectory(dir path.Path, recursive bool) error {
	remove := os.Remove
	if recursive {
		remove = os.RemoveAll
	}
	if err := remove(dir.OSString()); err != nil {
		return errors.Wrapf(err, "delete directory %s", dir)
	}
	return nil
}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)
