package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesDeduplicatesRepositoriesPerFinding(t *testing.T) {
	matches := NewMatches()

	// the same package+version discovered twice within one repository
	matches.Add("org/repo-a", New("left-pad", "1.1.0"))
	matches.Add("org/repo-a", New("left-pad", "1.1.0"))
	matches.Add("org/repo-b", New("left-pad", "1.1.0"))

	require.Equal(t, 1, matches.Count())

	sorted := matches.Sorted()
	assert.Equal(t, []string{"org/repo-a", "org/repo-b"}, sorted[0].RepositoryNames())
}

func TestMatchesFingerprintIsCaseNormalized(t *testing.T) {
	matches := NewMatches()

	matches.Add("org/repo-a", New("Left-Pad", "1.1.0"))
	matches.Add("org/repo-b", New("left-pad", "1.1.0"))

	require.Equal(t, 1, matches.Count())
	// the first-seen declared casing is retained for output
	assert.Equal(t, "Left-Pad", matches.Sorted()[0].Package)
}

func TestMatchesDistinctVersionsAreDistinctFindings(t *testing.T) {
	matches := NewMatches()

	matches.Add("org/repo-a", New("left-pad", "1.1.0"))
	matches.Add("org/repo-b", New("left-pad", "1.2.0"))

	assert.Equal(t, 2, matches.Count())
}

func TestMatchesSortedOrdering(t *testing.T) {
	matches := NewMatches()

	matches.Add("org/repo-a", New("chalk", "4.1.2"))
	matches.Add("org/repo-a", New("left-pad", "1.10.0"))
	matches.Add("org/repo-a", New("left-pad", "1.2.0"))
	matches.Add("org/repo-a", New("Babel-core", "6.0.1"))

	var actual []string
	for _, m := range matches.Sorted() {
		actual = append(actual, m.Package+"@"+m.Version)
	}

	// package names sort case-sensitively as declared; versions sort lexicographically
	expected := []string{
		"Babel-core@6.0.1",
		"chalk@4.1.2",
		"left-pad@1.10.0",
		"left-pad@1.2.0",
	}
	assert.Equal(t, expected, actual)
}
