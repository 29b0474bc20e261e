/*
Package scanner fans out SBOM fetches across an organization's repositories with bounded concurrency,
applying record normalization and watch-list matching to every package discovered.
*/
package scanner

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"

	"github.com/degrootsam/shai-hulud-detector/detector/event"
	"github.com/degrootsam/shai-hulud-detector/detector/event/monitor"
	"github.com/degrootsam/shai-hulud-detector/detector/github"
	"github.com/degrootsam/shai-hulud-detector/detector/match"
	"github.com/degrootsam/shai-hulud-detector/detector/matcher"
	"github.com/degrootsam/shai-hulud-detector/detector/pkg"
	"github.com/degrootsam/shai-hulud-detector/detector/sbom"
	"github.com/degrootsam/shai-hulud-detector/internal/bus"
	"github.com/degrootsam/shai-hulud-detector/internal/log"
)

const (
	// DefaultConcurrency is the default cap on in-flight SBOM fetches.
	DefaultConcurrency = 6

	// rateLimitPause is how long a worker pauses before taking its next repository after a
	// rate-limited fetch. This is a blunt backoff: the failed repository is not retried.
	rateLimitPause = 1 * time.Second
)

// Provider fetches the SBOM document for a single repository.
type Provider interface {
	FetchSBOM(ctx context.Context, repository github.Repository) (*sbom.Document, error)
}

// Summary describes the outcome of a scan run.
type Summary struct {
	// RepositoriesScanned is the number of repositories whose SBOM was fetched and processed
	RepositoriesScanned int
	// RepositoriesFailed is the number of repositories skipped due to fetch failures
	RepositoriesFailed int
}

// Scanner drives the fetch-and-match fan-out.
type Scanner struct {
	provider    Provider
	matcher     matcher.Matcher
	concurrency int
}

func New(provider Provider, m matcher.Matcher, concurrency int) Scanner {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return Scanner{
		provider:    provider,
		matcher:     m,
		concurrency: concurrency,
	}
}

// Scan fetches and matches the SBOM of every given repository, with at most the configured number
// of fetches in flight at once. Individual fetch failures are logged and skipped; the scan always
// runs to completion over every repository before returning. The returned error aggregates
// per-repository failures for reporting purposes and never indicates an aborted run.
func (s Scanner) Scan(ctx context.Context, repositories []github.Repository) (*match.Matches, Summary, error) {
	repoProgress, matchCount, stage := trackScan(len(repositories))
	defer repoProgress.SetCompleted()

	matches := match.NewMatches()

	var lock sync.Mutex
	var summary Summary
	var failures *multierror.Error

	jobs := make(chan github.Repository)

	var wg sync.WaitGroup
	for i := 0; i < s.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for repository := range jobs {
				err := s.scanRepository(ctx, repository, matches)
				repoProgress.Increment()
				matchCount.Set(int64(matches.Count()))

				lock.Lock()
				if err != nil {
					summary.RepositoriesFailed++
					failures = multierror.Append(failures, err)
				} else {
					summary.RepositoriesScanned++
				}
				lock.Unlock()

				if err != nil && github.IsRateLimit(err) {
					log.Warnf("rate limited by the API, pausing for %s", rateLimitPause)
					time.Sleep(rateLimitPause)
				}
			}
		}()
	}

	for _, repository := range repositories {
		stage.Set(repository.FullName)
		jobs <- repository
	}
	close(jobs)

	// all workers must settle before the results are frozen
	wg.Wait()

	return matches, summary, failures.ErrorOrNil()
}

// scanRepository fetches one repository's SBOM and records every watch-list hit. Records that
// cannot be normalized are skipped silently; duplicate findings within one SBOM collapse into a
// single repository entry per package+version.
func (s Scanner) scanRepository(ctx context.Context, repository github.Repository, matches *match.Matches) error {
	document, err := s.provider.FetchSBOM(ctx, repository)
	if err != nil {
		log.Warnf("unable to scan repository %q: %+v", repository.FullName, err)
		return err
	}

	for _, record := range document.SBOM.Packages {
		p := pkg.FromRecord(record)
		if p == nil {
			continue
		}
		if m, affected := s.matcher.Match(*p); affected {
			log.Infof("repository %q contains affected package %s", repository.FullName, p)
			matches.Add(repository.FullName, m)
		}
	}

	return nil
}

// trackScan publishes the scan-started event with monitors for progress reporting.
func trackScan(total int) (*progress.Manual, *progress.Manual, *progress.AtomicStage) {
	repoProgress := progress.NewManual(int64(total))
	matchCount := &progress.Manual{}
	stage := progress.NewAtomicStage("")

	bus.Publish(partybus.Event{
		Type: event.OrganizationScanStarted,
		Value: monitor.Scan{
			RepositoriesScanned: progress.Progressable(repoProgress),
			MatchesDiscovered:   progress.Monitorable(matchCount),
			Stage:               progress.Stager(stage),
		},
	})

	return repoProgress, matchCount, stage
}
