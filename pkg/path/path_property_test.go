package path

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var (
	rawRoots    = []string{"", "/", "C:/", "d:\\"}
	rawSegments = []string{"a", "b", "src", "My Folder", ".", "..", "", "file.txt"}
	rawNames    = []string{"a", "b", "src", "My Folder"}
)

// rawPath joins generated segment indices into a path string using both
// separator styles.
func rawPath(root int, segments []int, tokens []string, trailing bool) string {
	var sb strings.Builder
	sb.WriteString(rawRoots[root])
	for i, segment := range segments {
		if i > 0 {
			if i%2 == 0 {
				sb.WriteByte('\\')
			} else {
				sb.WriteByte('/')
			}
		}
		sb.WriteString(tokens[segment])
	}
	if trailing && len(segments) > 0 {
		sb.WriteByte('/')
	}
	return sb.String()
}

func pathProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.MaxSize = 12
	return gopter.NewProperties(parameters)
}

func TestProperty_ParseIsCanonical(t *testing.T) {
	properties := pathProperties()

	rootGen := gen.IntRange(0, len(rawRoots)-1)
	segmentsGen := gen.SliceOf(gen.IntRange(0, len(rawSegments)-1))

	properties.Property("canonical strings round trip", prop.ForAll(
		func(root int, segments []int, trailing bool) bool {
			p := Parse(rawPath(root, segments, rawSegments, trailing))
			return Parse(p.String()).String() == p.String()
		},
		rootGen, segmentsGen, gen.Bool(),
	))

	properties.Property("direct load matches parse", prop.ForAll(
		func(root int, segments []int, trailing bool) bool {
			p := Parse(rawPath(root, segments, rawSegments, trailing))
			loaded, err := Load(p.String())
			return err == nil && loaded == p
		},
		rootGen, segmentsGen, gen.Bool(),
	))

	properties.Property("directories are normalized", prop.ForAll(
		func(root int, segments []int, trailing bool) bool {
			p := Parse(rawPath(root, segments, rawSegments, trailing))
			if !strings.ContainsRune(p.String(), '/') {
				return false
			}
			if !p.HasRoot() && !strings.HasPrefix(p.String(), "./") && !strings.HasPrefix(p.String(), "../") {
				return false
			}

			leadingParents := true
			for i, directory := range p.Directories() {
				switch {
				case directory == "":
					return false
				case directory == relativeDirectory:
					if p.HasRoot() || i != 0 {
						return false
					}
				case directory == parentDirectory:
					if !leadingParents {
						return false
					}
				default:
					leadingParents = false
				}
			}
			return true
		},
		rootGen, segmentsGen, gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestProperty_Join(t *testing.T) {
	properties := pathProperties()

	rootGen := gen.IntRange(0, len(rawRoots)-1)
	segmentsGen := gen.SliceOf(gen.IntRange(0, len(rawSegments)-1))
	namesGen := gen.SliceOf(gen.IntRange(0, len(rawNames)-1))

	properties.Property("rooted right hand side is rejected", prop.ForAll(
		func(lhsSegments, rhsSegments []int, root int) bool {
			lhs := Parse(rawPath(0, lhsSegments, rawNames, true))
			rhs := Parse(rawRoots[1+root%3] + rawPath(0, rhsSegments, rawSegments, false))
			_, err := lhs.Join(rhs)
			return rhs.HasRoot() && err != nil
		},
		namesGen, segmentsGen, rootGen,
	))

	properties.Property("file on left hand side is rejected", prop.ForAll(
		func(root int, lhsSegments, rhsSegments []int) bool {
			lhs := Parse(rawPath(root, append(append([]int{}, lhsSegments...), 0), rawNames, false))
			rhs := Parse(rawPath(0, rhsSegments, rawSegments, true))
			_, err := lhs.Join(rhs)
			return lhs.HasFileName() && err != nil
		},
		rootGen, namesGen, segmentsGen,
	))

	properties.Property("joined paths are canonical", prop.ForAll(
		func(root int, lhsSegments, rhsSegments []int, trailing bool) bool {
			lhs := Parse(rawPath(root, lhsSegments, rawSegments, true))
			rhs := Parse(rawPath(0, rhsSegments, rawSegments, trailing))
			if rhs.HasRoot() {
				return true
			}
			joined, err := lhs.Join(rhs)
			if err != nil {
				return false
			}
			return Parse(joined.String()) == joined
		},
		rootGen, segmentsGen, segmentsGen, gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestProperty_RelativeInverse(t *testing.T) {
	properties := pathProperties()

	properties.Property("base joined with relative path is the target", prop.ForAll(
		func(root int, baseSegments, targetSegments []int, trailing bool) bool {
			// An empty first segment would turn an unrooted path into a rooted one
			if root == 0 && len(targetSegments) > 0 && rawSegments[targetSegments[0]] == "" {
				return true
			}

			base := Parse(rawRoots[root] + rawPath(0, baseSegments, rawNames, true))
			target := Parse(rawRoots[root] + rawPath(0, targetSegments, rawSegments, trailing))

			relative, err := target.RelativeTo(base)
			if err != nil || relative.HasRoot() {
				return false
			}
			joined, err := base.Join(relative)
			if err != nil {
				return false
			}
			return joined.Equal(target)
		},
		gen.IntRange(0, len(rawRoots)-1),
		gen.SliceOf(gen.IntRange(0, len(rawNames)-1)),
		gen.SliceOf(gen.IntRange(0, len(rawSegments)-1)),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestProperty_ParentStabilizesAtRoot(t *testing.T) {
	properties := pathProperties()

	properties.Property("repeated parent reaches the root", prop.ForAll(
		func(root int, segments []int, trailing bool) bool {
			p := Parse(rawRoots[1+root] + rawPath(0, segments, rawNames, trailing))
			for range len(segments) + 1 {
				p = p.Parent()
			}
			return len(p.Directories()) == 0 && !p.HasFileName() && p.Parent() == p
		},
		gen.IntRange(0, len(rawRoots)-2),
		gen.SliceOf(gen.IntRange(0, len(rawNames)-1)),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
