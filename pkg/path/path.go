// Package path provides an immutable, normalized path value used to reason about
// file locations without touching the file system.
//
// A Path is stored as a single canonical string that always uses '/' as the
// directory separator. An optional root ("" for a POSIX root, "C:" for a letter
// drive) comes first; unrooted paths always start with "." or "..". Directories
// end with a separator, so a trailing segment without one is a file name.
package path

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const (
	directorySeparator          = '/'
	alternateDirectorySeparator = '\\'
	allDirectorySeparators      = "/\\"
	letterDriveSpecifier        = ':'
	fileExtensionSeparator      = '.'
	relativeDirectory           = "."
	parentDirectory             = ".."
)

var (
	// ErrInvalidPath indicates a malformed path string.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidOperation indicates a structurally disallowed combination of paths
	// or access to a component that does not exist.
	ErrInvalidOperation = errors.New("invalid path operation")
)

var emptyPath = Path{
	value:         "./",
	rootEnd:       -1,
	fileNameStart: 2,
}

// Path is a normalized file system path.
// The zero value is equivalent to Empty().
type Path struct {
	value         string
	rootEnd       int
	fileNameStart int
}

// Empty returns the path of the current directory, "./".
func Empty() Path {
	return emptyPath
}

// Parse decomposes and normalizes an arbitrary path string.
// Both '/' and '\' are accepted as separators.
func Parse(value string) Path {
	root, directories, fileName := decomposeRawPath(value)
	directories = normalizeDirectories(directories, root != nil)
	return build(directories, root, fileName)
}

// FromNative creates a path from a host string that uses '\' separators.
func FromNative(value string) Path {
	return Parse(strings.ReplaceAll(value, string(alternateDirectorySeparator), string(directorySeparator)))
}

// Load creates a path from a string that is already in canonical form without
// normalizing it. Use Parse for arbitrary input.
func Load(value string) (Path, error) {
	firstSeparator := strings.IndexByte(value, directorySeparator)
	if firstSeparator < 0 {
		return Path{}, fmt.Errorf("%w: a path must have a directory separator: %q", ErrInvalidPath, value)
	}

	result := Path{value: value}

	root := value[:firstSeparator]
	switch {
	case isRoot(root):
		result.rootEnd = firstSeparator
	case root == relativeDirectory || root == parentDirectory:
		result.rootEnd = -1
	default:
		return Path{}, fmt.Errorf("%w: unknown directory root %q", ErrInvalidPath, root)
	}

	lastSeparator := strings.LastIndexByte(value, directorySeparator)
	if lastSeparator != len(value)-1 {
		result.fileNameStart = lastSeparator + 1
	} else {
		result.fileNameStart = len(value)
	}

	return result, nil
}

// MustLoad is like Load but panics if the value is not a valid canonical path.
func MustLoad(value string) Path {
	p, err := Load(value)
	if err != nil {
		panic(err)
	}
	return p
}

// resolved maps the zero value onto the empty path.
func (p Path) resolved() Path {
	if p.value == "" {
		return emptyPath
	}
	return p
}

// IsEmpty reports whether the path is the current directory "./".
func (p Path) IsEmpty() bool {
	return p.resolved().value == emptyPath.value
}

// HasRoot reports whether the path is absolute.
func (p Path) HasRoot() bool {
	return p.resolved().rootEnd >= 0
}

// Root returns the root segment: "" for a POSIX root or a letter drive such as "C:".
func (p Path) Root() (string, error) {
	p = p.resolved()
	if !p.HasRoot() {
		return "", fmt.Errorf("%w: cannot access root on path that has none: %s", ErrInvalidOperation, p.value)
	}
	return p.value[:p.rootEnd], nil
}

// HasFileName reports whether the path ends in a file name.
func (p Path) HasFileName() bool {
	p = p.resolved()
	return p.fileNameStart < len(p.value)
}

// FileName returns the trailing file name.
func (p Path) FileName() (string, error) {
	p = p.resolved()
	if !p.HasFileName() {
		return "", fmt.Errorf("%w: cannot access file name on path that has none: %s", ErrInvalidOperation, p.value)
	}
	return p.value[p.fileNameStart:], nil
}

// HasFileStem reports whether the file name has a non-empty stem.
func (p Path) HasFileStem() bool {
	stem, err := p.FileStem()
	return err == nil && stem != ""
}

// FileStem returns the file name up to its last '.', or the whole file name
// when it has no extension.
func (p Path) FileStem() (string, error) {
	fileName, err := p.FileName()
	if err != nil {
		return "", err
	}
	if i := strings.LastIndexByte(fileName, fileExtensionSeparator); i >= 0 {
		return fileName[:i], nil
	}
	return fileName, nil
}

// HasFileExtension reports whether the file name has an extension.
func (p Path) HasFileExtension() bool {
	ext, err := p.FileExtension()
	return err == nil && ext != ""
}

// FileExtension returns the file name from its last '.' inclusive, or "" when
// the file name has no extension.
func (p Path) FileExtension() (string, error) {
	fileName, err := p.FileName()
	if err != nil {
		return "", err
	}
	if i := strings.LastIndexByte(fileName, fileExtensionSeparator); i >= 0 {
		return fileName[i:], nil
	}
	return "", nil
}

// WithFileName returns a copy of the path with its file name replaced.
// An empty name yields the directory portion of the path.
func (p Path) WithFileName(name string) (Path, error) {
	if strings.ContainsAny(name, allDirectorySeparators) {
		return Path{}, fmt.Errorf("%w: file name must not contain a separator: %q", ErrInvalidPath, name)
	}

	p = p.resolved()
	return build(p.Directories(), p.root(), &name), nil
}

// WithFileExtension returns a copy of the path with the extension of its file
// name set to ext, given without the leading '.'.
func (p Path) WithFileExtension(ext string) (Path, error) {
	stem, err := p.FileStem()
	if err != nil {
		return Path{}, err
	}
	return p.WithFileName(stem + string(fileExtensionSeparator) + ext)
}

// Directories returns the normalized directory segments, excluding the root and
// the file name.
func (p Path) Directories() []string {
	return decomposeDirectories(p.resolved().directories())
}

// Equal reports whether both paths have the same canonical form.
func (p Path) Equal(other Path) bool {
	return p.String() == other.String()
}

// Compare orders paths by their canonical form.
func (p Path) Compare(other Path) int {
	return strings.Compare(p.String(), other.String())
}

// Less reports whether p sorts before other.
func (p Path) Less(other Path) bool {
	return p.Compare(other) < 0
}

// String returns the canonical form.
func (p Path) String() string {
	return p.resolved().value
}

// NativeString returns the canonical form with '\' separators.
func (p Path) NativeString() string {
	return strings.ReplaceAll(p.String(), string(directorySeparator), string(alternateDirectorySeparator))
}

// OSString returns the form the host operating system expects: NativeString
// on Windows, String elsewhere.
func (p Path) OSString() string {
	if runtime.GOOS == "windows" {
		return p.NativeString()
	}
	return p.String()
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is parsed and
// normalized.
func (p *Path) UnmarshalText(text []byte) error {
	*p = Parse(string(text))
	return nil
}

// root returns the root segment or nil.
func (p Path) root() *string {
	if p.rootEnd < 0 {
		return nil
	}
	root := p.value[:p.rootEnd]
	return &root
}

// fileName returns the file name segment or nil.
func (p Path) fileName() *string {
	if p.fileNameStart >= len(p.value) {
		return nil
	}
	name := p.value[p.fileNameStart:]
	return &name
}

// directories returns the separator-terminated directory portion of the value.
func (p Path) directories() string {
	if p.rootEnd > 0 {
		return p.value[p.rootEnd:p.fileNameStart]
	}
	return p.value[:p.fileNameStart]
}
