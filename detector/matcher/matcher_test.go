package matcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/degrootsam/shai-hulud-detector/detector/pkg"
	"github.com/degrootsam/shai-hulud-detector/detector/watchlist"
)

func catalogFromLines(t *testing.T, lines ...string) *watchlist.Catalog {
	t.Helper()
	catalog, err := watchlist.Load(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	return catalog
}

func TestMatchCeilingPolicy(t *testing.T) {
	tests := []struct {
		name     string
		watch    string
		pkg      pkg.Package
		expected bool
	}{
		{
			name:     "version below ceiling matches",
			watch:    "left-pad@1.3.0",
			pkg:      pkg.Package{Name: "left-pad", Version: "1.1.0"},
			expected: true,
		},
		{
			name:     "version equal to ceiling matches",
			watch:    "left-pad@1.3.0",
			pkg:      pkg.Package{Name: "left-pad", Version: "1.3.0"},
			expected: true,
		},
		{
			name:     "version above ceiling does not match",
			watch:    "left-pad@1.3.0",
			pkg:      pkg.Package{Name: "left-pad", Version: "1.3.1"},
			expected: false,
		},
		{
			name:     "package not on the watch list",
			watch:    "left-pad@1.3.0",
			pkg:      pkg.Package{Name: "chalk", Version: "1.0.0"},
			expected: false,
		},
		{
			name:     "prerelease sorts before its release",
			watch:    "left-pad@1.3.0",
			pkg:      pkg.Package{Name: "left-pad", Version: "1.3.1-beta.1"},
			expected: false,
		},
		{
			name:     "prerelease of the ceiling itself matches",
			watch:    "left-pad@1.3.0",
			pkg:      pkg.Package{Name: "left-pad", Version: "1.3.0-rc.1"},
			expected: true,
		},
		{
			name:     "build metadata does not affect precedence",
			watch:    "left-pad@1.3.0",
			pkg:      pkg.Package{Name: "left-pad", Version: "1.3.0+build.99"},
			expected: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := New(catalogFromLines(t, test.watch))
			_, actual := m.Match(test.pkg)
			assert.Equal(t, test.expected, actual)
		})
	}
}

func TestMatchIsCaseInsensitiveOnName(t *testing.T) {
	m := New(catalogFromLines(t, "left-pad@1.3.0"))

	result, matched := m.Match(pkg.Package{Name: "Left-Pad", Version: "1.1.0"})
	require.True(t, matched)
	// the declared casing and the exact discovered version are retained
	assert.Equal(t, "Left-Pad", result.Package)
	assert.Equal(t, "1.1.0", result.Version)
}

func TestMatchScopedPackageRoundTrip(t *testing.T) {
	m := New(catalogFromLines(t, "@scope/name@1.2.3"))

	_, matched := m.Match(pkg.Package{Name: "@scope/name", Version: "1.2.3"})
	assert.True(t, matched)
}
