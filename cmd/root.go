package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/wagoodman/go-partybus"

	"github.com/degrootsam/shai-hulud-detector/detector/detectorerr"
	"github.com/degrootsam/shai-hulud-detector/detector/event"
	"github.com/degrootsam/shai-hulud-detector/detector/github"
	"github.com/degrootsam/shai-hulud-detector/detector/matcher"
	"github.com/degrootsam/shai-hulud-detector/detector/presenter"
	"github.com/degrootsam/shai-hulud-detector/detector/presenter/models"
	"github.com/degrootsam/shai-hulud-detector/detector/scanner"
	"github.com/degrootsam/shai-hulud-detector/detector/watchlist"
	"github.com/degrootsam/shai-hulud-detector/internal"
	"github.com/degrootsam/shai-hulud-detector/internal/bus"
	"github.com/degrootsam/shai-hulud-detector/internal/format"
	"github.com/degrootsam/shai-hulud-detector/internal/log"
	"github.com/degrootsam/shai-hulud-detector/internal/ui"
	"github.com/degrootsam/shai-hulud-detector/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s [ORGANIZATION]", internal.ApplicationName),
	Short: "A scanner for compromised npm packages across a GitHub organization",
	Long: format.Tprintf(`Scan every repository of a GitHub organization for npm packages at or below watch-listed versions:
    {{.appName}} -w watchlist.txt your-org             scan all of your-org's repositories
    {{.appName}} -w watchlist.txt -o table your-org    show findings as a table
`, map[string]interface{}{
		"appName": internal.ApplicationName,
	}),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if appConfig.Dev.ProfileCPU {
			defer profile.Start(profile.CPUProfile).Stop()
		}

		return rootExec(args[0])
	},
}

func rootExec(organization string) error {
	// a missing credential must surface before the report destination is touched and before
	// any network request (including the update check) is made
	if strings.TrimSpace(appConfig.GithubToken) == "" {
		return fmt.Errorf("no GitHub token provided (set GITHUB_TOKEN or the github-token config value)")
	}

	reporter, closer, err := reportWriter()
	defer func() {
		if err := closer(); err != nil {
			log.Warnf("unable to write to report destination: %+v", err)
		}
	}()
	if err != nil {
		return err
	}

	return eventLoop(
		startWorker(organization),
		setupSignals(),
		eventSubscription,
		func() {},
		ui.Select(isVerbose(), appConfig.Quiet, reporter),
	)
}

// startWorker runs the scan in the background, reporting progress over the event bus and
// terminal failures over the returned channel.
func startWorker(organization string) <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)

		ctx := context.Background()

		checkForAppUpdate(ctx)

		catalog, err := watchlist.FromFile(appConfig.Watchlist)
		if err != nil {
			errs <- fmt.Errorf("failed to load watch-list: %w", err)
			return
		}
		if catalog.Count() == 0 {
			log.Warnf("watch-list %q contains no usable entries", appConfig.Watchlist)
		}

		client, err := github.NewClient(ctx, github.Config{
			Token:       appConfig.GithubToken,
			APIEndpoint: appConfig.APIEndpoint,
		})
		if err != nil {
			errs <- err
			return
		}

		repositories, err := client.OrganizationRepositories(ctx, organization)
		if err != nil {
			errs <- fmt.Errorf("failed to list repositories for %q: %w", organization, err)
			return
		}

		selected := github.Filter(repositories, appConfig.IncludeForks, appConfig.IncludeArchived)
		log.Infof("scanning %d of %d repositories in %q", len(selected), len(repositories), organization)

		s := scanner.New(client, matcher.New(catalog), appConfig.Concurrency)
		matches, summary, scanErr := s.Scan(ctx, selected)
		if scanErr != nil {
			// failed repositories were skipped, the scan itself ran to completion
			log.Warnf("%d repositories could not be scanned: %v", summary.RepositoriesFailed, scanErr)
		}

		log.Infof("scanned %d repositories against %d watch entries: %d findings",
			summary.RepositoriesScanned, catalog.InputEntries(), matches.Count())

		pres := presenter.GetPresenter(appConfig.PresenterOpt, models.PresenterConfig{
			Organization:     organization,
			WatchlistEntries: catalog.InputEntries(),
			Summary:          summary,
			Matches:          matches,
			AppConfig:        appConfig,
		})

		bus.Publish(partybus.Event{
			Type:  event.OrganizationScanFinished,
			Value: pres,
		})

		if appConfig.FailOnMatch && matches.Count() > 0 {
			errs <- detectorerr.ErrWatchedPackagesFound
		}
	}()
	return errs
}

func checkForAppUpdate(ctx context.Context) {
	if !appConfig.CheckForAppUpdate {
		return
	}

	isAvailable, newVersion, err := version.IsUpdateAvailable(ctx)
	if err != nil {
		log.Errorf(err.Error())
		return
	}
	if isAvailable {
		log.Infof("new version of %s is available: %s", internal.ApplicationName, newVersion)

		bus.Publish(partybus.Event{
			Type:  event.AppUpdateAvailable,
			Value: newVersion,
		})
	} else {
		log.Debugf("no new %s update available", internal.ApplicationName)
	}
}
