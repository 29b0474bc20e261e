/*
Package github is the source-control hosting collaborator: it lists an organization's repositories
and retrieves the dependency-graph SBOM document for a repository's default branch head.
*/
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v55/github"
	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/oauth2"

	"github.com/degrootsam/shai-hulud-detector/detector/sbom"
	"github.com/degrootsam/shai-hulud-detector/internal/log"
)

const repositoriesPerPage = 100

// Config captures everything needed to talk to the GitHub API.
type Config struct {
	// Token is the personal access token used for authentication (required)
	Token string
	// APIEndpoint optionally overrides the API base URL (for GitHub Enterprise installations)
	APIEndpoint string
}

// Client wraps the GitHub API for the few operations the scanner needs.
type Client struct {
	api *github.Client
}

// NewClient creates an authenticated GitHub API client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, errors.New("no GitHub token provided")
	}

	// base the oauth2 transport on a clean transport (no shared global state)
	ctx = context.WithValue(ctx, oauth2.HTTPClient, cleanhttp.DefaultClient())
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}))

	api := github.NewClient(httpClient)
	if cfg.APIEndpoint != "" {
		baseURL, err := parseBaseURL(cfg.APIEndpoint)
		if err != nil {
			return nil, err
		}
		api.BaseURL = baseURL
	}

	return &Client{
		api: api,
	}, nil
}

func parseBaseURL(endpoint string) (*url.URL, error) {
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	baseURL, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid API endpoint %q: %w", endpoint, err)
	}
	return baseURL, nil
}

// OrganizationRepositories lists every repository in the organization (all pages).
func (c *Client) OrganizationRepositories(ctx context.Context, organization string) ([]Repository, error) {
	opts := &github.RepositoryListByOrgOptions{
		Type: "all",
		ListOptions: github.ListOptions{
			PerPage: repositoriesPerPage,
		},
	}

	var repositories []Repository
	for {
		page, resp, err := c.api.Repositories.ListByOrg(ctx, organization, opts)
		if err != nil {
			return nil, fmt.Errorf("unable to list repositories for organization %q: %w", organization, err)
		}

		for _, repo := range page {
			repositories = append(repositories, Repository{
				Owner:    repo.GetOwner().GetLogin(),
				Name:     repo.GetName(),
				FullName: repo.GetFullName(),
				Fork:     repo.GetFork(),
				Archived: repo.GetArchived(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		log.Debugf("fetching repository listing page %d for organization %q", resp.NextPage, organization)
	}

	return repositories, nil
}

// FetchSBOM retrieves the SPDX SBOM document for the repository's default branch head.
//
// This issues a raw request instead of using the typed dependency-graph API so that the package
// externalRefs (which carry the package-URL fallback identities) survive decoding.
func (c *Client) FetchSBOM(ctx context.Context, repository Repository) (*sbom.Document, error) {
	u := fmt.Sprintf("repos/%s/%s/dependency-graph/sbom", repository.Owner, repository.Name)
	req, err := c.api.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create SBOM request for %q: %w", repository.FullName, err)
	}

	var document sbom.Document
	if _, err := c.api.Do(ctx, req, &document); err != nil {
		return nil, fmt.Errorf("unable to fetch SBOM for %q: %w", repository.FullName, err)
	}

	return &document, nil
}

// IsRateLimit reports whether the given fetch error indicates GitHub rate limiting (either a
// primary rate limit or a secondary limit carrying a retry-after signal).
func IsRateLimit(err error) bool {
	var rateLimitErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	return errors.As(err, &rateLimitErr) || errors.As(err, &abuseErr)
}
