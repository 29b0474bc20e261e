package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scylladb/go-set/strset"
)

// Match represents a single affected finding: one watched package discovered at one exact version,
// across every repository where that pairing was seen.
type Match struct {
	// Package is the discovered package name as declared (original case preserved)
	Package string
	// Version is the exact version discovered, not the watch-list ceiling that it satisfied
	Version string
	// Repositories is the set of repository full names containing this package+version
	Repositories *strset.Set
}

// Fingerprint is the identity of a finding: package name (case-normalized) plus exact version.
type Fingerprint struct {
	packageName string
	version     string
}

func (f Fingerprint) String() string {
	return fmt.Sprintf("%s@%s", f.packageName, f.version)
}

// New creates a Match for the given discovered package name and exact version.
func New(name, version string) Match {
	return Match{
		Package:      name,
		Version:      version,
		Repositories: strset.New(),
	}
}

func (m Match) String() string {
	return fmt.Sprintf("Match(pkg=%s version=%s repos=%d)", m.Package, m.Version, m.Repositories.Size())
}

// Fingerprint returns the identity of this match for aggregation purposes.
func (m Match) Fingerprint() Fingerprint {
	return Fingerprint{
		packageName: strings.ToLower(m.Package),
		version:     m.Version,
	}
}

// RepositoryNames returns the repository full names for this match in lexicographic order.
func (m Match) RepositoryNames() []string {
	names := m.Repositories.List()
	sort.Strings(names)
	return names
}
