package match

import (
	"sort"
	"sync"
)

// Matches is the global accumulator of findings across all scanned repositories. It is safe for
// concurrent use: scan workers record findings as each repository settles.
type Matches struct {
	lock          sync.Mutex
	byFingerprint map[Fingerprint]Match
}

func NewMatches() *Matches {
	return &Matches{
		byFingerprint: make(map[Fingerprint]Match),
	}
}

// Add records that the given repository contains the given package at the given exact version.
// Re-adding the same repository for the same package+version is a no-op (set union semantics).
func (m *Matches) Add(repository string, matches ...Match) {
	m.lock.Lock()
	defer m.lock.Unlock()

	for _, newMatch := range matches {
		fingerprint := newMatch.Fingerprint()
		existing, exists := m.byFingerprint[fingerprint]
		if !exists {
			existing = New(newMatch.Package, newMatch.Version)
			m.byFingerprint[fingerprint] = existing
		}
		existing.Repositories.Add(repository)
	}
}

// Count returns the number of distinct package+version findings.
func (m *Matches) Count() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.byFingerprint)
}

// Sorted returns all matches ordered by package name (case-sensitive, as declared) and then by
// version string. The version ordering is lexicographic for output stability, not semantic.
func (m *Matches) Sorted() []Match {
	m.lock.Lock()
	matches := make([]Match, 0, len(m.byFingerprint))
	for _, value := range m.byFingerprint {
		matches = append(matches, value)
	}
	m.lock.Unlock()

	sort.Sort(ByElements(matches))

	return matches
}
