package ui

import (
	"io"
)

// Select chooses the UI for this run. All paths currently settle on the logging UI: scan progress
// is useful as log lines, and the final report must survive shell redirection untouched.
func Select(verbose, quiet bool, reportWriter io.Writer) UI {
	return NewLoggerUI(reportWriter)
}
