package cmd

import (
	"errors"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/wagoodman/go-partybus"

	"github.com/degrootsam/shai-hulud-detector/detector/detectorerr"
	"github.com/degrootsam/shai-hulud-detector/internal/log"
	"github.com/degrootsam/shai-hulud-detector/internal/ui"
)

// eventLoop listens to worker errors (from execution path), worker events (from a partybus subscription), and
// signal interrupts. Is responsible for handling each event relative to a given UI an to coordinate eventing until
// an eventual graceful exit.
func eventLoop(workerErrs <-chan error, signals <-chan os.Signal, subscription *partybus.Subscription, cleanupFn func(), uxs ...ui.UI) error {
	defer cleanupFn()
	events := subscription.Events()
	var err error
	var ux ui.UI

	if ux, err = setupUI(subscription.Unsubscribe, uxs...); err != nil {
		return err
	}

	var retErr error
	var forceTeardown bool

	for {
		if workerErrs == nil && events == nil {
			break
		}
		select {
		case err, isOpen := <-workerErrs:
			if !isOpen {
				workerErrs = nil
				continue
			}
			if err != nil {
				retErr = multierror.Append(retErr, err)

				var expected detectorerr.ExpectedErr
				if !errors.As(err, &expected) {
					// the worker failed mid-run: unsubscribe to complete a shutdown, the UI may have been
					// mid-handling events which should now be ignored
					_ = subscription.Unsubscribe()
					forceTeardown = true
				}
				// expected errors still render the final report before the failing exit code is surfaced
			}
		case e, isOpen := <-events:
			if !isOpen {
				events = nil
				continue
			}

			if err := ux.Handle(e); err != nil {
				if errors.Is(err, partybus.ErrUnsubscribe) {
					events = nil
				} else {
					retErr = multierror.Append(retErr, err)
				}
			}
		case <-signals:
			// ignore further results from any event source and exit ASAP; we are bailing without a result
			events = nil
			workerErrs = nil
			forceTeardown = true
		}
	}

	if err := ux.Teardown(forceTeardown); err != nil {
		retErr = multierror.Append(retErr, err)
	}

	return retErr
}

// setupUI takes one or more UIs that respond to events and an event bus unsubscribe function for use
// during teardown. With the given UIs, the first UI which the ui.Setup() function does not return an error
// will be utilized in execution.
func setupUI(unsubscribe func() error, uxs ...ui.UI) (ui.UI, error) {
	for _, ux := range uxs {
		if err := ux.Setup(unsubscribe); err != nil {
			log.Errorf("unable to setup given UI, falling back to alternative: %+v", err)
			continue
		}
		return ux, nil
	}

	// fall back to a (simpler) logger UI
	ux := ui.NewLoggerUI(os.Stdout)
	if err := ux.Setup(unsubscribe); err != nil {
		// something is very wrong, bail.
		return ux, err
	}
	return ux, nil
}
