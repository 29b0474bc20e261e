package models

import (
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/degrootsam/shai-hulud-detector/internal"
	"github.com/degrootsam/shai-hulud-detector/internal/version"
)

// Document represents the JSON document to be presented
type Document struct {
	ID                  string     `json:"id"`
	Organization        string     `json:"organization"`
	Timestamp           string     `json:"timestamp"`
	WatchlistEntries    int        `json:"watchlistEntries"`
	RepositoriesScanned int        `json:"repositoriesScanned"`
	Matches             []Match    `json:"matches"`
	Host                string     `json:"host"`
	Descriptor          descriptor `json:"descriptor"`
}

// NewDocument creates and populates a new Document struct, representing the populated JSON document.
func NewDocument(config PresenterConfig) Document {
	// we must preallocate the findings to ensure the JSON document does not show "null" when no matches are found
	findings := make([]Match, 0)
	for _, m := range config.Matches.Sorted() {
		findings = append(findings, newMatch(m))
	}

	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	return Document{
		ID:                  uuid.New().String(),
		Organization:        config.Organization,
		Timestamp:           time.Now().UTC().Format(time.RFC3339),
		WatchlistEntries:    config.WatchlistEntries,
		RepositoriesScanned: config.Summary.RepositoriesScanned,
		Matches:             findings,
		Host:                host,
		Descriptor: descriptor{
			Name:          internal.ApplicationName,
			Version:       version.FromBuild().Version,
			Configuration: config.AppConfig,
		},
	}
}
