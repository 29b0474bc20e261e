package version

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v55/github"
	"github.com/hashicorp/go-cleanhttp"
	hashiVersion "github.com/hashicorp/go-version"
)

// the release coordinates for this application (used to discover newer versions)
var latestReleaseSource = struct {
	owner string
	repo  string
}{
	owner: "degrootsam",
	repo:  "shai-hulud-detector",
}

// IsUpdateAvailable indicates if there is a newer application version available, and if so, what the new version is.
func IsUpdateAvailable(ctx context.Context) (bool, string, error) {
	currentVersionStr := FromBuild().Version
	currentVersion, err := hashiVersion.NewVersion(currentVersionStr)
	if err != nil {
		if currentVersionStr == valueNotProvided {
			// this is the default build arg and should be ignored (this is not an error case)
			return false, "", nil
		}
		return false, "", fmt.Errorf("failed to parse current application version: %w", err)
	}

	latestVersion, err := fetchLatestApplicationVersion(ctx)
	if err != nil {
		return false, "", err
	}

	if latestVersion.GreaterThan(currentVersion) {
		return true, latestVersion.String(), nil
	}

	return false, "", nil
}

func fetchLatestApplicationVersion(ctx context.Context) (*hashiVersion.Version, error) {
	client := github.NewClient(cleanhttp.DefaultClient())
	release, _, err := client.Repositories.GetLatestRelease(ctx, latestReleaseSource.owner, latestReleaseSource.repo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest version: %w", err)
	}

	tag := strings.TrimPrefix(release.GetTagName(), "v")
	if tag == "" {
		return nil, fmt.Errorf("latest release has no tag name")
	}
	return hashiVersion.NewVersion(tag)
}
