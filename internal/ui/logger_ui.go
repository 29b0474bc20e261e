package ui

import (
	"io"

	"github.com/wagoodman/go-partybus"

	detectorEvent "github.com/degrootsam/shai-hulud-detector/detector/event"
	"github.com/degrootsam/shai-hulud-detector/internal/log"
)

type loggerUI struct {
	unsubscribe  func() error
	reportOutput io.Writer
}

// NewLoggerUI writes all events to the common application logger and writes the final report to the given writer.
func NewLoggerUI(reportWriter io.Writer) UI {
	return &loggerUI{
		reportOutput: reportWriter,
	}
}

func (l *loggerUI) Setup(unsubscribe func() error) error {
	l.unsubscribe = unsubscribe
	return nil
}

func (l loggerUI) Handle(event partybus.Event) error {
	switch event.Type {
	case detectorEvent.OrganizationScanStarted:
		if err := handleOrganizationScanStarted(event); err != nil {
			log.Warnf("unable to show scan progress: %+v", err)
		}
		// progress is streamed in the background, keep listening
		return nil
	case detectorEvent.AppUpdateAvailable:
		if err := handleAppUpdateAvailable(event); err != nil {
			log.Warnf("unable to show app update event: %+v", err)
		}
		// there is still a scan result to come, keep listening
		return nil
	case detectorEvent.OrganizationScanFinished:
		if err := handleOrganizationScanFinished(event, l.reportOutput); err != nil {
			log.Warnf("unable to show scan finished event: %+v", err)
		}
	// ignore all events except for the final events
	default:
		return nil
	}

	// this is the last expected event, stop listening to events
	return l.unsubscribe()
}

func (l loggerUI) Teardown(_ bool) error {
	return nil
}
