package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/degrootsam/shai-hulud-detector/detector/sbom"
)

func TestFromRecordPrimaryPath(t *testing.T) {
	record := sbom.Package{
		Name:        "left-pad",
		VersionInfo: "1.1.0",
	}

	actual := FromRecord(record)
	require.NotNil(t, actual)
	assert.Equal(t, "left-pad", actual.Name)
	assert.Equal(t, "1.1.0", actual.Version)
}

func TestFromRecordPurlFallback(t *testing.T) {
	tests := []struct {
		name            string
		record          sbom.Package
		expectedName    string
		expectedVersion string
	}{
		{
			name: "unscoped purl",
			record: sbom.Package{
				Name:        "left-pad",
				VersionInfo: "unknown",
				ExternalRefs: []sbom.ExternalRef{
					{
						ReferenceCategory: "PACKAGE-MANAGER",
						ReferenceType:     "purl",
						ReferenceLocator:  "pkg:npm/left-pad@1.2.0",
					},
				},
			},
			expectedName:    "left-pad",
			expectedVersion: "1.2.0",
		},
		{
			name: "percent-encoded scope marker",
			record: sbom.Package{
				Name: "name",
				ExternalRefs: []sbom.ExternalRef{
					{
						ReferenceCategory: "PACKAGE-MANAGER",
						ReferenceType:     "purl",
						ReferenceLocator:  "pkg:npm/%40scope/name@1.2.3",
					},
				},
			},
			expectedName:    "@scope/name",
			expectedVersion: "1.2.3",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual := FromRecord(test.record)
			require.NotNil(t, actual)
			assert.Equal(t, test.expectedName, actual.Name)
			assert.Equal(t, test.expectedVersion, actual.Version)
		})
	}
}

func TestFromRecordNoResult(t *testing.T) {
	tests := []struct {
		name   string
		record sbom.Package
	}{
		{
			name:   "empty record",
			record: sbom.Package{},
		},
		{
			name: "name without a parseable version",
			record: sbom.Package{
				Name:        "left-pad",
				VersionInfo: "NOASSERTION",
			},
		},
		{
			name: "purl for another ecosystem",
			record: sbom.Package{
				Name: "requests",
				ExternalRefs: []sbom.ExternalRef{
					{
						ReferenceCategory: "PACKAGE-MANAGER",
						ReferenceType:     "purl",
						ReferenceLocator:  "pkg:pypi/requests@2.31.0",
					},
				},
			},
		},
		{
			name: "purl with unparseable version",
			record: sbom.Package{
				Name: "left-pad",
				ExternalRefs: []sbom.ExternalRef{
					{
						ReferenceCategory: "PACKAGE-MANAGER",
						ReferenceType:     "purl",
						ReferenceLocator:  "pkg:npm/left-pad@latest",
					},
				},
			},
		},
		{
			name: "non-purl reference only",
			record: sbom.Package{
				Name: "left-pad",
				ExternalRefs: []sbom.ExternalRef{
					{
						ReferenceCategory: "SECURITY",
						ReferenceType:     "cpe23Type",
						ReferenceLocator:  "cpe:2.3:a:left-pad:left-pad:1.2.0:*:*:*:*:*:*:*",
					},
				},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Nil(t, FromRecord(test.record))
		})
	}
}
