package path

import (
	"fmt"
	"strings"
)

// Join resolves rhs relative to p, which is treated as a directory.
// Leading ".." segments of rhs cancel trailing directories of p.
func (p Path) Join(rhs Path) (Path, error) {
	p, rhs = p.resolved(), rhs.resolved()

	if p.HasFileName() {
		return Path{}, fmt.Errorf("%w: cannot combine a file path on the left hand side: %s", ErrInvalidOperation, p.value)
	}

	if rhs.HasRoot() {
		return Path{}, fmt.Errorf("%w: cannot combine a rooted path on the right hand side: %s", ErrInvalidOperation, rhs.value)
	}

	// Without parent references nothing can cancel across the boundary, so the
	// canonical strings concatenate directly
	if !strings.HasPrefix(rhs.value, parentDirectory+string(directorySeparator)) {
		return Load(p.value + strings.TrimPrefix(rhs.value, relativeDirectory+string(directorySeparator)))
	}

	directories := append(p.Directories(), rhs.Directories()...)
	directories = normalizeDirectories(directories, p.HasRoot())

	return build(directories, p.root(), rhs.fileName()), nil
}

// Parent returns the path one level up. A file path yields its directory and a
// root is its own parent. Walking above the start of an unrooted path adds ".."
// segments.
func (p Path) Parent() Path {
	p = p.resolved()

	if p.HasFileName() {
		value := p.value[:p.fileNameStart]
		return Path{
			value:         value,
			rootEnd:       p.rootEnd,
			fileNameStart: len(value),
		}
	}

	directories := p.Directories()
	switch {
	case len(directories) == 0:
		// Already at the root
	case len(directories) == 1 && directories[0] == relativeDirectory:
		directories[0] = parentDirectory
	case directories[len(directories)-1] == parentDirectory:
		directories = append(directories, parentDirectory)
	default:
		directories = directories[:len(directories)-1]
	}

	return build(directories, p.root(), nil)
}

// RelativeTo returns p expressed relative to the directory base.
//
// When only one of the paths is rooted, or both are rooted at different roots,
// no relative form exists and p is returned unchanged.
func (p Path) RelativeTo(base Path) (Path, error) {
	p, base = p.resolved(), base.resolved()

	if p.HasRoot() != base.HasRoot() ||
		(p.HasRoot() && p.value[:p.rootEnd] != base.value[:base.rootEnd]) {
		return p, nil
	}

	if base.HasFileName() {
		return Path{}, fmt.Errorf("%w: cannot use a file path as the base: %s", ErrInvalidOperation, base.value)
	}

	baseDirectories := trimRelativeDirectory(base.Directories())
	directories := trimRelativeDirectory(p.Directories())

	countMatching := 0
	for countMatching < len(baseDirectories) && countMatching < len(directories) {
		if baseDirectories[countMatching] != directories[countMatching] {
			break
		}
		countMatching++
	}

	var result []string
	if countMatching == len(baseDirectories) {
		result = append(result, relativeDirectory)
	} else {
		for range baseDirectories[countMatching:] {
			result = append(result, parentDirectory)
		}
	}
	result = append(result, directories[countMatching:]...)

	return build(normalizeDirectories(result, false), nil, p.fileName()), nil
}

// trimRelativeDirectory drops the leading "." marker of an unrooted path.
func trimRelativeDirectory(directories []string) []string {
	if len(directories) > 0 && directories[0] == relativeDirectory {
		return directories[1:]
	}
	return directories
}
