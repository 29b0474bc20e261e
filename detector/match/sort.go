package match

import "sort"

var _ sort.Interface = (*ByElements)(nil)

type ByElements []Match

// Len is the number of elements in the collection.
func (m ByElements) Len() int {
	return len(m)
}

// Less reports whether the element with index i should sort before the element with index j.
func (m ByElements) Less(i, j int) bool {
	if m[i].Package == m[j].Package {
		// this is an approximate ordering and is not accurate in terms of semver,
		// but stability is what is important here, not the accuracy of the sort.
		return m[i].Version < m[j].Version
	}
	return m[i].Package < m[j].Package
}

// Swap swaps the elements with indexes i and j.
func (m ByElements) Swap(i, j int) {
	m[i], m[j] = m[j], m[i]
}
