// Package semver provides a three part version number with optional minor and
// patch components.
package semver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidVersion indicates a version string that could not be parsed.
var ErrInvalidVersion = errors.New("invalid semantic version")

// Version is a "major(.minor(.patch))" version. Missing components compare as 0.
type Version struct {
	major    int
	minor    int
	patch    int
	hasMinor bool
	hasPatch bool
}

// New creates a version with only a major component.
func New(major int) Version {
	return Version{major: major}
}

// NewMinor creates a version with major and minor components.
func NewMinor(major, minor int) Version {
	return Version{major: major, minor: minor, hasMinor: true}
}

// NewPatch creates a version with all three components.
func NewPatch(major, minor, patch int) Version {
	return Version{major: major, minor: minor, patch: patch, hasMinor: true, hasPatch: true}
}

// Parse parses "major", "major.minor" or "major.minor.patch". Each component
// must start with an integer; anything after the leading digits is ignored, so
// "1.2.3-beta" parses as 1.2.3.
func Parse(value string) (Version, error) {
	parts := strings.SplitN(value, ".", 3)

	values := make([]int, 0, len(parts))
	for _, part := range parts {
		v, ok := leadingInt(part)
		if !ok {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, value)
		}
		values = append(values, v)
	}

	switch len(values) {
	case 1:
		return New(values[0]), nil
	case 2:
		return NewMinor(values[0], values[1]), nil
	default:
		return NewPatch(values[0], values[1], values[2]), nil
	}
}

// MustParse is like Parse but panics if the value cannot be parsed.
func MustParse(value string) Version {
	v, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return v
}

// leadingInt parses the optionally signed integer prefix of s.
func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && s[end] == '-' {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}

// Major returns the major component.
func (v Version) Major() int {
	return v.major
}

// HasMinor reports whether the minor component is set.
func (v Version) HasMinor() bool {
	return v.hasMinor
}

// Minor returns the minor component.
func (v Version) Minor() (int, error) {
	if !v.hasMinor {
		return 0, fmt.Errorf("semantic version does not have a minor value: %s", v)
	}
	return v.minor, nil
}

// MinorOrDefault returns the minor component or 0.
func (v Version) MinorOrDefault() int {
	return v.minor
}

// HasPatch reports whether the patch component is set.
func (v Version) HasPatch() bool {
	return v.hasPatch
}

// Patch returns the patch component.
func (v Version) Patch() (int, error) {
	if !v.hasPatch {
		return 0, fmt.Errorf("semantic version does not have a patch value: %s", v)
	}
	return v.patch, nil
}

// PatchOrDefault returns the patch component or 0.
func (v Version) PatchOrDefault() int {
	return v.patch
}

// Equal reports whether both versions are the same, treating missing
// components as 0.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Compare returns -1, 0 or 1 comparing major, minor then patch.
func (v Version) Compare(other Version) int {
	pairs := [][2]int{
		{v.major, other.major},
		{v.MinorOrDefault(), other.MinorOrDefault()},
		{v.PatchOrDefault(), other.PatchOrDefault()},
	}
	for _, pair := range pairs {
		switch {
		case pair[0] < pair[1]:
			return -1
		case pair[0] > pair[1]:
			return 1
		}
	}
	return 0
}

// Less reports whether v sorts before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// String renders the version with only the components that are set.
func (v Version) String() string {
	result := strconv.Itoa(v.major)
	if v.hasMinor {
		result += "." + strconv.Itoa(v.minor)
		if v.hasPatch {
			result += "." + strconv.Itoa(v.patch)
		}
	}
	return result
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
