package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(context.Background(), Config{
		Token:       "test-token",
		APIEndpoint: server.URL,
	})
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresToken(t *testing.T) {
	_, err := NewClient(context.Background(), Config{})
	assert.Error(t, err)
}

func TestOrganizationRepositoriesPaginates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orgs/acme/repos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("page") {
		case "", "1":
			w.Header().Set("Link", fmt.Sprintf(`<%s?page=2>; rel="next"`, "http://"+r.Host+"/orgs/acme/repos"))
			fmt.Fprint(w, `[
				{"name": "api", "full_name": "acme/api", "owner": {"login": "acme"}, "fork": false, "archived": false},
				{"name": "legacy", "full_name": "acme/legacy", "owner": {"login": "acme"}, "fork": false, "archived": true}
			]`)
		case "2":
			fmt.Fprint(w, `[
				{"name": "fork-of-thing", "full_name": "acme/fork-of-thing", "owner": {"login": "acme"}, "fork": true, "archived": false}
			]`)
		}
	})

	client := newTestClient(t, mux)

	repositories, err := client.OrganizationRepositories(context.Background(), "acme")
	require.NoError(t, err)
	require.Len(t, repositories, 3)

	assert.Equal(t, Repository{Owner: "acme", Name: "api", FullName: "acme/api"}, repositories[0])
	assert.True(t, repositories[1].Archived)
	assert.True(t, repositories[2].Fork)
}

func TestFetchSBOMDecodesExternalRefs(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/api/dependency-graph/sbom", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"sbom": {
				"SPDXID": "SPDXRef-DOCUMENT",
				"spdxVersion": "SPDX-2.3",
				"name": "com.github.acme/api",
				"packages": [
					{
						"SPDXID": "SPDXRef-npm-left-pad",
						"name": "left-pad",
						"versionInfo": "1.1.0",
						"externalRefs": [
							{
								"referenceCategory": "PACKAGE-MANAGER",
								"referenceType": "purl",
								"referenceLocator": "pkg:npm/left-pad@1.1.0"
							}
						]
					}
				]
			}
		}`)
	})

	client := newTestClient(t, mux)

	document, err := client.FetchSBOM(context.Background(), Repository{Owner: "acme", Name: "api", FullName: "acme/api"})
	require.NoError(t, err)

	require.Len(t, document.SBOM.Packages, 1)
	p := document.SBOM.Packages[0]
	assert.Equal(t, "left-pad", p.Name)
	assert.Equal(t, "1.1.0", p.VersionInfo)
	require.Len(t, p.ExternalRefs, 1)
	assert.Equal(t, "purl", p.ExternalRefs[0].ReferenceType)
	assert.Equal(t, "pkg:npm/left-pad@1.1.0", p.ExternalRefs[0].ReferenceLocator)
}

func TestFetchSBOMRateLimitClassification(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/api/dependency-graph/sbom", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-RateLimit-Limit", "5000")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", "2524608000")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"message": "API rate limit exceeded"}`)
	})

	client := newTestClient(t, mux)

	_, err := client.FetchSBOM(context.Background(), Repository{Owner: "acme", Name: "api", FullName: "acme/api"})
	require.Error(t, err)
	assert.True(t, IsRateLimit(err))
}

func TestFetchSBOMNotFoundIsNotRateLimit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/api/dependency-graph/sbom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	})

	client := newTestClient(t, mux)

	_, err := client.FetchSBOM(context.Background(), Repository{Owner: "acme", Name: "api", FullName: "acme/api"})
	require.Error(t, err)
	assert.False(t, IsRateLimit(err))
}

func TestFilter(t *testing.T) {
	repositories := []Repository{
		{FullName: "acme/api"},
		{FullName: "acme/fork", Fork: true},
		{FullName: "acme/attic", Archived: true},
	}

	tests := []struct {
		name            string
		includeForks    bool
		includeArchived bool
		expected        []string
	}{
		{
			name:     "defaults exclude forks and archived",
			expected: []string{"acme/api"},
		},
		{
			name:         "include forks",
			includeForks: true,
			expected:     []string{"acme/api", "acme/fork"},
		},
		{
			name:            "include archived",
			includeArchived: true,
			expected:        []string{"acme/api", "acme/attic"},
		},
		{
			name:            "include everything",
			includeForks:    true,
			includeArchived: true,
			expected:        []string{"acme/api", "acme/fork", "acme/attic"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var actual []string
			for _, repo := range Filter(repositories, test.includeForks, test.includeArchived) {
				actual = append(actual, repo.FullName)
			}
			if d := cmp.Diff(test.expected, actual); d != "" {
				t.Errorf("unexpected repository selection (-want +got):\n%s", d)
			}
		})
	}
}
