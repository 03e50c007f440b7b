package semver_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/pathkit/pkg/semver"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  semver.Version
		str   string
	}{
		"major only":       {input: "1", want: semver.New(1), str: "1"},
		"major minor":      {input: "2.3", want: semver.NewMinor(2, 3), str: "2.3"},
		"full":             {input: "1.2.3", want: semver.NewPatch(1, 2, 3), str: "1.2.3"},
		"zeros":            {input: "0.0.0", want: semver.NewPatch(0, 0, 0), str: "0.0.0"},
		"prerelease tail":  {input: "1.2.3-beta", want: semver.NewPatch(1, 2, 3), str: "1.2.3"},
		"extra components": {input: "4.5.6.7", want: semver.NewPatch(4, 5, 6), str: "4.5.6"},
		"negative":         {input: "-1.0", want: semver.NewMinor(-1, 0), str: "-1.0"},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := semver.Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.str, got.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "a", "1.", "1.x", "1.2.", ".1", "1.2.beta"} {
		_, err := semver.Parse(input)
		require.ErrorIs(t, err, semver.ErrInvalidVersion, input)
	}

	assert.Panics(t, func() { semver.MustParse("nope") })
}

func TestVersion_Components(t *testing.T) {
	t.Parallel()

	v := semver.New(3)
	assert.Equal(t, 3, v.Major())
	assert.False(t, v.HasMinor())
	assert.False(t, v.HasPatch())
	assert.Equal(t, 0, v.MinorOrDefault())
	assert.Equal(t, 0, v.PatchOrDefault())

	_, err := v.Minor()
	require.Error(t, err)
	_, err = v.Patch()
	require.Error(t, err)

	full := semver.NewPatch(3, 4, 5)
	minor, err := full.Minor()
	require.NoError(t, err)
	assert.Equal(t, 4, minor)
	patch, err := full.Patch()
	require.NoError(t, err)
	assert.Equal(t, 5, patch)
}

func TestVersion_Compare(t *testing.T) {
	t.Parallel()

	assert.True(t, semver.New(1).Equal(semver.NewPatch(1, 0, 0)))
	assert.True(t, semver.NewMinor(1, 2).Equal(semver.NewPatch(1, 2, 0)))
	assert.False(t, semver.NewMinor(1, 2).Equal(semver.NewPatch(1, 2, 1)))

	// A higher major wins regardless of the lower components
	assert.True(t, semver.NewPatch(1, 9, 9).Less(semver.NewPatch(2, 0, 0)))
	assert.False(t, semver.NewPatch(2, 0, 0).Less(semver.NewPatch(1, 9, 9)))
	assert.Equal(t, 1, semver.NewPatch(2, 0, 0).Compare(semver.NewPatch(1, 9, 9)))
	assert.Equal(t, -1, semver.NewPatch(1, 2, 3).Compare(semver.NewPatch(1, 3, 0)))
	assert.Equal(t, 0, semver.NewMinor(5, 1).Compare(semver.NewPatch(5, 1, 0)))

	versions := []semver.Version{
		semver.MustParse("2.0"),
		semver.MustParse("1.10.0"),
		semver.MustParse("1.2.3"),
		semver.MustParse("1"),
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i].Less(versions[j]) })

	var got []string
	for _, v := range versions {
		got = append(got, v.String())
	}
	assert.Equal(t, []string{"1", "1.2.3", "1.10.0", "2.0"}, got)
}

func TestVersion_Text(t *testing.T) {
	t.Parallel()

	text, err := semver.NewMinor(1, 4).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1.4", string(text))

	var v semver.Version
	require.NoError(t, v.UnmarshalText([]byte("7.8.9")))
	assert.Equal(t, semver.NewPatch(7, 8, 9), v)

	require.ErrorIs(t, v.UnmarshalText([]byte("x")), semver.ErrInvalidVersion)
}
