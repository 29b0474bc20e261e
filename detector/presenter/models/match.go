package models

import (
	"github.com/degrootsam/shai-hulud-detector/detector/match"
)

// Match is a single item for the JSON array reported
type Match struct {
	Package      string   `json:"package"`
	Version      string   `json:"version"`
	Repositories []string `json:"repositories"`
}

func newMatch(m match.Match) Match {
	return Match{
		Package:      m.Package,
		Version:      m.Version,
		Repositories: m.RepositoryNames(),
	}
}
