package monitor

import "github.com/wagoodman/go-progress"

// Scan is the monitor payload published with an OrganizationScanStarted event, allowing consumers to
// observe fetch progress while repositories are being scanned.
type Scan struct {
	RepositoriesScanned progress.Progressable
	MatchesDiscovered   progress.Monitorable
	Stage               progress.Stager
}
