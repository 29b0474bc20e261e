package models

import (
	"github.com/degrootsam/shai-hulud-detector/detector/match"
	"github.com/degrootsam/shai-hulud-detector/detector/scanner"
)

type PresenterConfig struct {
	Organization     string
	WatchlistEntries int
	Summary          scanner.Summary
	Matches          *match.Matches
	AppConfig        interface{}
}
