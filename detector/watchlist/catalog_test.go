package watchlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFoldsDuplicatesToGreatestCeiling(t *testing.T) {
	permutations := [][]string{
		{"pkg@1.0.0", "pkg@2.0.0", "pkg@1.5.0"},
		{"pkg@2.0.0", "pkg@1.0.0", "pkg@1.5.0"},
		{"pkg@1.5.0", "pkg@2.0.0", "pkg@1.0.0"},
	}

	for _, lines := range permutations {
		catalog, err := Load(strings.NewReader(strings.Join(lines, "\n")))
		require.NoError(t, err)

		ceiling, exists := catalog.Ceiling("pkg")
		require.True(t, exists)
		assert.Equal(t, "2.0.0", ceiling.Original())
		assert.Equal(t, 1, catalog.Count())
		assert.Equal(t, 3, catalog.InputEntries())
	}
}

func TestLoadSkipsCommentsAndBlankLines(t *testing.T) {
	input := `
# this is a comment
   # indented comment

left-pad@1.3.0

`
	catalog, err := Load(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, catalog.Count())
	assert.Equal(t, 1, catalog.InputEntries())

	_, exists := catalog.Ceiling("left-pad")
	assert.True(t, exists)
}

func TestLoadDropsMalformedLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{
			name: "no separator",
			line: "left-pad",
		},
		{
			name: "scope marker only",
			line: "@1.2.3",
		},
		{
			name: "empty version",
			line: "left-pad@",
		},
		{
			name: "empty name",
			line: "   @1.2.3",
		},
		{
			name: "non-semantic version",
			line: "left-pad@banana",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			catalog, err := Load(strings.NewReader(test.line))
			require.NoError(t, err)
			assert.Equal(t, 0, catalog.Count())
			assert.Equal(t, 0, catalog.InputEntries())
		})
	}
}

func TestLoadAcceptsSemverVariants(t *testing.T) {
	// ceilings pass the same semver validation as discovered package versions
	tests := []struct {
		name    string
		line    string
		ceiling string
	}{
		{
			name:    "v prefix",
			line:    "left-pad@v1.3.0",
			ceiling: "v1.3.0",
		},
		{
			name:    "prerelease",
			line:    "left-pad@1.3.0-beta.1",
			ceiling: "1.3.0-beta.1",
		},
		{
			name:    "build metadata",
			line:    "left-pad@1.3.0+build.7",
			ceiling: "1.3.0+build.7",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			catalog, err := Load(strings.NewReader(test.line))
			require.NoError(t, err)

			ceiling, exists := catalog.Ceiling("left-pad")
			require.True(t, exists)
			assert.Equal(t, test.ceiling, ceiling.Original())
		})
	}
}

func TestLoadScopedPackageName(t *testing.T) {
	catalog, err := Load(strings.NewReader("@scope/name@1.2.3"))
	require.NoError(t, err)

	ceiling, exists := catalog.Ceiling("@scope/name")
	require.True(t, exists)
	assert.Equal(t, "1.2.3", ceiling.Original())
}

func TestCeilingLookupIsCaseInsensitive(t *testing.T) {
	catalog, err := Load(strings.NewReader("left-pad@1.3.0"))
	require.NoError(t, err)

	_, exists := catalog.Ceiling("Left-Pad")
	assert.True(t, exists)
}
