package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"

	detectorEventParsers "github.com/degrootsam/shai-hulud-detector/detector/event/parsers"
	"github.com/degrootsam/shai-hulud-detector/internal"
	"github.com/degrootsam/shai-hulud-detector/internal/log"
)

// scanProgressInterval is how often repository scan progress is written to the log.
const scanProgressInterval = 5 * time.Second

func handleOrganizationScanStarted(event partybus.Event) error {
	mon, err := detectorEventParsers.ParseOrganizationScanStarted(event)
	if err != nil {
		return fmt.Errorf("bad %s event: %w", event.Type, err)
	}

	go func() {
		stream := progress.Stream(context.Background(), mon.RepositoriesScanned, scanProgressInterval)
		for p := range stream {
			log.Infof("scanned %d of %d repositories (current: %s, findings: %d)",
				p.Current(), p.Size(), mon.Stage.Stage(), mon.MatchesDiscovered.Current())
		}
	}()

	return nil
}

func handleOrganizationScanFinished(event partybus.Event, reportOutput io.Writer) error {
	// show the report to stdout
	pres, err := detectorEventParsers.ParseOrganizationScanFinished(event)
	if err != nil {
		return fmt.Errorf("bad OrganizationScanFinished event: %w", err)
	}

	if err := pres.Present(reportOutput); err != nil {
		return fmt.Errorf("unable to show scan report: %w", err)
	}
	return nil
}

func handleAppUpdateAvailable(event partybus.Event) error {
	newVersion, err := detectorEventParsers.ParseAppUpdateAvailable(event)
	if err != nil {
		return fmt.Errorf("bad %s event: %w", event.Type, err)
	}

	message := color.Magenta.Sprintf("New version of %s is available: %s", internal.ApplicationName, newVersion)
	fmt.Fprintln(os.Stderr, message)

	return nil
}
