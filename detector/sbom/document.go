/*
Package sbom models the SPDX software-bill-of-materials document returned by GitHub's dependency-graph API
for a repository's default branch head.
*/
package sbom

// Document is the top-level response payload from the dependency-graph SBOM endpoint.
type Document struct {
	SBOM BillOfMaterials `json:"sbom"`
}

// BillOfMaterials is the SPDX document body.
type BillOfMaterials struct {
	SPDXID            string       `json:"SPDXID"`
	SPDXVersion       string       `json:"spdxVersion"`
	Name              string       `json:"name"`
	DataLicense       string       `json:"dataLicense,omitempty"`
	DocumentNamespace string       `json:"documentNamespace,omitempty"`
	CreationInfo      CreationInfo `json:"creationInfo"`
	Packages          []Package    `json:"packages"`
}

// CreationInfo describes when and by what tooling the document was produced.
type CreationInfo struct {
	Created  string   `json:"created"`
	Creators []string `json:"creators,omitempty"`
}

// Package is a single SPDX package record. Most fields are optional in practice; name and
// versionInfo are the primary source of package identity, with externalRefs as a fallback.
type Package struct {
	SPDXID           string        `json:"SPDXID"`
	Name             string        `json:"name"`
	VersionInfo      string        `json:"versionInfo,omitempty"`
	DownloadLocation string        `json:"downloadLocation,omitempty"`
	FilesAnalyzed    bool          `json:"filesAnalyzed,omitempty"`
	LicenseConcluded string        `json:"licenseConcluded,omitempty"`
	LicenseDeclared  string        `json:"licenseDeclared,omitempty"`
	ExternalRefs     []ExternalRef `json:"externalRefs,omitempty"`
}

// ExternalRef is an SPDX external reference; a referenceType of "purl" carries a package-URL locator.
type ExternalRef struct {
	ReferenceCategory string `json:"referenceCategory"`
	ReferenceType     string `json:"referenceType"`
	ReferenceLocator  string `json:"referenceLocator"`
}
