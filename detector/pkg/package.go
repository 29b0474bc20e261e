/*
Package pkg provides the normalized package representation used during matching.
*/
package pkg

import (
	"strings"

	"github.com/anchore/packageurl-go"
	hashiVersion "github.com/hashicorp/go-version"

	"github.com/degrootsam/shai-hulud-detector/detector/sbom"
)

const (
	npmPurlPrefix     = "pkg:npm/"
	purlReferenceType = "purl"
)

// Package represents a single discovered package+version pair normalized from an SBOM record.
type Package struct {
	// Name is the package name as declared (original case, scope prefix retained)
	Name string
	// Version is the exact discovered version string (guaranteed to parse as a semantic version)
	Version string
}

func (p Package) String() string {
	return p.Name + "@" + p.Version
}

// FromRecord normalizes one SBOM package record into a Package, preferring the declared
// name+versionInfo pair and falling back to an npm package-URL external reference. A nil return
// means the record carries no usable package identity (not an error condition).
func FromRecord(record sbom.Package) *Package {
	if record.Name != "" && isSemanticVersion(record.VersionInfo) {
		return &Package{
			Name:    record.Name,
			Version: record.VersionInfo,
		}
	}

	return fromPurlRef(record)
}

// fromPurlRef recovers a name+version pair from an npm package-URL reference, e.g.
// "pkg:npm/%40scope/name@1.2.3" (note the percent-encoded scope marker).
func fromPurlRef(record sbom.Package) *Package {
	for _, ref := range record.ExternalRefs {
		if !strings.EqualFold(ref.ReferenceType, purlReferenceType) {
			continue
		}
		if !strings.HasPrefix(ref.ReferenceLocator, npmPurlPrefix) {
			continue
		}

		purl, err := packageurl.FromString(ref.ReferenceLocator)
		if err != nil {
			continue
		}
		if !isSemanticVersion(purl.Version) {
			continue
		}

		name := purl.Name
		if purl.Namespace != "" {
			name = purl.Namespace + "/" + purl.Name
		}

		return &Package{
			Name:    name,
			Version: purl.Version,
		}
	}
	return nil
}

func isSemanticVersion(raw string) bool {
	if raw == "" {
		return false
	}
	_, err := hashiVersion.NewSemver(raw)
	return err == nil
}
