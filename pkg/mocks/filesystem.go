// Package mocks provides in-memory implementations of the ports interfaces.
// Every double records the calls it receives so tests can assert on the exact
// sequence of requests.
package mocks

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/user/pathkit/pkg/path"
	"github.com/user/pathkit/pkg/ports"
)

// requestLog is a mutex-guarded list of request strings.
type requestLog struct {
	mu       sync.Mutex
	requests []string
}

func (l *requestLog) record(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests = append(l.requests, fmt.Sprintf(format, args...))
}

// Requests returns a copy of the recorded requests.
func (l *requestLog) Requests() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.requests)
}

// ClearRequests forgets all recorded requests.
func (l *requestLog) ClearRequests() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests = nil
}

// FileSystem is an in-memory ports.FileSystem keyed by canonical path.
type FileSystem struct {
	requestLog

	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool
	times map[string]time.Time

	// Home and Working are returned by UserProfileDirectory and
	// CurrentDirectory.
	Home    path.Path
	Working path.Path

	ExistsFunc            func(p path.Path) (bool, error)
	OpenReadFunc          func(p path.Path) (io.ReadCloser, error)
	DirectoryChildrenFunc func(dir path.Path) ([]ports.DirectoryEntry, error)
}

// NewFileSystem creates an empty mock FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files:   make(map[string][]byte),
		dirs:    make(map[string]bool),
		times:   make(map[string]time.Time),
		Home:    path.MustLoad("/home/user/"),
		Working: path.MustLoad("/work/"),
	}
}

// AddFile stores a file and creates its parent directories. Setup helpers do
// not record requests.
func (m *FileSystem) AddFile(p path.Path, data string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureDirectories(p.Parent())
	m.files[p.String()] = []byte(data)
}

// AddDirectory creates a directory and its parents.
func (m *FileSystem) AddDirectory(dir path.Path) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureDirectories(dir)
}

// File returns the contents of a file (for test verification).
func (m *FileSystem) File(p path.Path) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[p.String()]
	return string(data), ok
}

// ensureDirectories marks dir and every ancestor up to the root, the leading
// "." or a leading ".." as existing. Callers hold mu.
func (m *FileSystem) ensureDirectories(dir path.Path) {
	for p := dir; ; p = p.Parent() {
		m.dirs[p.String()] = true
		directories := p.Directories()
		if len(directories) == 0 ||
			(len(directories) == 1 && directories[0] == ".") ||
			directories[len(directories)-1] == ".." {
			return
		}
	}
}

func notExist(op string, p path.Path) error {
	return fmt.Errorf("%s %s: %w", op, p, fs.ErrNotExist)
}

func (m *FileSystem) UserProfileDirectory() (path.Path, error) {
	m.record("GetUserProfileDirectory")
	return m.Home, nil
}

func (m *FileSystem) CurrentDirectory() (path.Path, error) {
	m.record("GetCurrentDirectory")
	return m.Working, nil
}

func (m *FileSystem) Exists(p path.Path) (bool, error) {
	m.record("Exists: %s", p)
	if m.ExistsFunc != nil {
		return m.ExistsFunc(p)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, isFile := m.files[p.String()]
	return isFile || m.dirs[p.String()], nil
}

func (m *FileSystem) LastWriteTime(p path.Path) (time.Time, error) {
	m.record("GetLastWriteTime: %s", p)
	m.mu.RLock()
	defer m.mu.RUnlock()
	key := p.String()
	if _, ok := m.files[key]; !ok && !m.dirs[key] {
		return time.Time{}, notExist("last write time", p)
	}
	return m.times[key], nil
}

func (m *FileSystem) SetLastWriteTime(p path.Path, t time.Time) error {
	m.record("SetLastWriteTime: %s", p)
	m.mu.Lock()
	defer m.mu.Unlock()
	key := p.String()
	if _, ok := m.files[key]; !ok && !m.dirs[key] {
		return notExist("set last write time", p)
	}
	m.times[key] = t
	return nil
}

func (m *FileSystem) DirectoryFilesLastWriteTime(dir path.Path, fn func(file path.Path, t time.Time)) error {
	m.record("GetDirectoryFilesLastWriteTime: %s", dir)
	m.mu.RLock()
	key := dir.String()
	if !m.dirs[key] {
		m.mu.RUnlock()
		return notExist("directory files last write time", dir)
	}

	type stamp struct {
		file path.Path
		t    time.Time
	}
	stamps := []stamp{{path.Empty(), m.times[key]}}
	for name := range m.files {
		file := path.Parse(name)
		if file.Parent().String() != key {
			continue
		}
		relative, err := file.RelativeTo(dir)
		if err != nil {
			m.mu.RUnlock()
			return err
		}
		stamps = append(stamps, stamp{relative, m.times[name]})
	}
	m.mu.RUnlock()

	slices.SortFunc(stamps[1:], func(a, b stamp) int { return a.file.Compare(b.file) })
	for _, s := range stamps {
		fn(s.file, s.t)
	}
	return nil
}

func (m *FileSystem) OpenRead(p path.Path) (io.ReadCloser, error) {
	m.record("OpenRead: %s", p)
	if m.OpenReadFunc != nil {
		return m.OpenReadFunc(p)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[p.String()]
	if !ok {
		return nil, notExist("open", p)
	}
	return io.NopCloser(bytes.NewReader(slices.Clone(data))), nil
}

// fileWriter stores its contents into the mock when closed.
type fileWriter struct {
	bytes.Buffer
	fs   *FileSystem
	path path.Path
}

func (w *fileWriter) Close() error {
	w.fs.AddFile(w.path, w.String())
	return nil
}

func (m *FileSystem) OpenWrite(p path.Path) (io.WriteCloser, error) {
	m.record("OpenWrite: %s", p)
	if !p.HasFileName() {
		return nil, fmt.Errorf("open %s for write: not a file", p)
	}
	return &fileWriter{fs: m, path: p}, nil
}

func (m *FileSystem) Rename(source, destination path.Path) error {
	m.record("Rename: %s -> %s", source, destination)
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[source.String()]
	if !ok {
		return notExist("rename", source)
	}
	delete(m.files, source.String())
	m.ensureDirectories(destination.Parent())
	m.files[destination.String()] = data
	return nil
}

func (m *FileSystem) CopyFile(source, destination path.Path) error {
	m.record("CopyFile: %s -> %s", source, destination)
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[source.String()]
	if !ok {
		return notExist("copy", source)
	}
	m.ensureDirectories(destination.Parent())
	m.files[destination.String()] = slices.Clone(data)
	return nil
}

func (m *FileSystem) CreateDirectory(p path.Path) error {
	m.record("CreateDirectory: %s", p)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureDirectories(p)
	return nil
}

func (m *FileSystem) DirectoryChildren(dir path.Path) ([]ports.DirectoryEntry, error) {
	m.record("GetDirectoryChildren: %s", dir)
	if m.DirectoryChildrenFunc != nil {
		return m.DirectoryChildrenFunc(dir)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	key := dir.String()
	if !m.dirs[key] {
		return nil, notExist("read directory", dir)
	}

	var entries []ports.DirectoryEntry
	for name, data := range m.files {
		file := path.Parse(name)
		if file.Parent().String() == key {
			entries = append(entries, ports.DirectoryEntry{
				Path:         file,
				Size:         int64(len(data)),
				ModifiedTime: m.times[name],
			})
		}
	}
	for name := range m.dirs {
		child := path.Parse(name)
		if name != key && child.Parent().String() == key {
			entries = append(entries, ports.DirectoryEntry{
				Path:         child,
				IsDirectory:  true,
				ModifiedTime: m.times[name],
			})
		}
	}
	slices.SortFunc(entries, func(a, b ports.DirectoryEntry) int { return a.Path.Compare(b.Path) })
	return entries, nil
}

func (m *FileSystem) DeleteDirectory(dir path.Path, recursive bool) error {
	m.record("DeleteDirectory: %s", dir)
	m.mu.Lock()
	defer m.mu.Unlock()
	key := dir.String()
	if !m.dirs[key] {
		return notExist("delete directory", dir)
	}

	var nested []string
	for name := range m.files {
		if strings.HasPrefix(name, key) {
			nested = append(nested, name)
		}
	}
	for name := range m.dirs {
		if name != key && strings.HasPrefix(name, key) {
			nested = append(nested, name)
		}
	}
	if len(nested) > 0 && !recursive {
		return fmt.Errorf("delete directory %s: directory not empty", dir)
	}

	for _, name := range nested {
		delete(m.files, name)
		delete(m.dirs, name)
		delete(m.times, name)
	}
	delete(m.dirs, key)
	delete(m.times, key)
	return nil
}

var _ ports.FileSystem = (*FileSystem)(nil)
