package path

import (
	"slices"
	"strings"
)

// decomposeRawPath splits a raw path string into its root, directory and file
// name segments. Redundant segments are kept; see normalizeDirectories.
func decomposeRawPath(value string) (root *string, directories []string, fileName *string) {
	current := 0
	isFirst := true
	for {
		next := strings.IndexAny(value[current:], allDirectorySeparators)
		if next < 0 {
			break
		}
		next += current

		directory := value[current:next]
		if isFirst {
			if isRoot(directory) {
				root = &directory
			} else {
				// Unrooted paths always start with a relative symbol
				if !isRelativeDirectory(directory) {
					directories = append(directories, relativeDirectory)
				}
				directories = append(directories, directory)
			}
			isFirst = false
		} else {
			directories = append(directories, directory)
		}

		current = next + 1
	}

	// Anything beyond the last separator is a file name, unless it is the only
	// segment and names a root or a relative directory
	if current != len(value) {
		last := value[current:]
		switch {
		case !isFirst:
			fileName = &last
		case isRoot(last):
			root = &last
		case isRelativeDirectory(last):
			directories = append(directories, last)
		default:
			directories = append(directories, relativeDirectory)
			fileName = &last
		}
		isFirst = false
	}

	if isFirst {
		directories = append(directories, relativeDirectory)
	}

	return root, directories, fileName
}

// decomposeDirectories splits a separator-terminated directory string into its
// non-empty segments.
func decomposeDirectories(value string) []string {
	segments := strings.Split(value, string(directorySeparator))
	directories := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment != "" {
			directories = append(directories, segment)
		}
	}
	return directories
}

// normalizeDirectories removes empty and redundant relative segments and
// resolves every ".." that follows a named directory. Only a leading run of
// ".." survives; an unrooted path keeps its leading ".".
func normalizeDirectories(directories []string, hasRoot bool) []string {
	for i := 0; i < len(directories); i++ {
		directory := directories[i]
		switch {
		case directory == "" || ((hasRoot || i != 0) && directory == relativeDirectory):
			directories = slices.Delete(directories, i, i+1)
			i--
		case i != 0 && directory == parentDirectory && directories[i-1] != parentDirectory:
			if directories[i-1] == relativeDirectory {
				// "./.." becomes ".."
				directories = slices.Delete(directories, i-1, i)
				i--
			} else {
				directories = slices.Delete(directories, i-1, i+1)
				i -= 2
			}
		}
	}
	return directories
}

// build assembles the canonical value and offsets from decomposed segments.
func build(directories []string, root, fileName *string) Path {
	if root == nil && len(directories) == 0 {
		directories = []string{relativeDirectory}
	}

	var sb strings.Builder
	if root != nil {
		sb.WriteString(*root)
		sb.WriteByte(directorySeparator)
	}
	for _, directory := range directories {
		sb.WriteString(directory)
		sb.WriteByte(directorySeparator)
	}
	if fileName != nil {
		sb.WriteString(*fileName)
	}

	result := Path{value: sb.String(), rootEnd: -1}
	if root != nil {
		result.rootEnd = len(*root)
	}
	result.fileNameStart = len(result.value)
	if fileName != nil {
		result.fileNameStart -= len(*fileName)
	}
	return result
}

// isRoot reports whether a first segment names a root: empty for a POSIX root
// or a single letter followed by ':'.
func isRoot(value string) bool {
	switch len(value) {
	case 0:
		return true
	case 2:
		c := value[0]
		return ((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) && value[1] == letterDriveSpecifier
	default:
		return false
	}
}

func isRelativeDirectory(value string) bool {
	return value == relativeDirectory || value == parentDirectory
}
