/*
Package matcher decides whether a discovered package+version is affected according to a watch-list catalog.
*/
package matcher

import (
	hashiVersion "github.com/hashicorp/go-version"

	"github.com/degrootsam/shai-hulud-detector/detector/match"
	"github.com/degrootsam/shai-hulud-detector/detector/pkg"
	"github.com/degrootsam/shai-hulud-detector/detector/watchlist"
	"github.com/degrootsam/shai-hulud-detector/internal/log"
)

// Matcher evaluates discovered packages against a read-only watch-list catalog.
type Matcher struct {
	catalog *watchlist.Catalog
}

func New(catalog *watchlist.Catalog) Matcher {
	return Matcher{
		catalog: catalog,
	}
}

// Match reports whether the given package is affected. A package is affected when its name is on
// the watch list (case-insensitive) and its version is less than or equal to the listed ceiling;
// any version at or below a known-bad release is treated as affected. The returned match carries
// the exact discovered version, not the ceiling.
func (m Matcher) Match(p pkg.Package) (match.Match, bool) {
	ceiling, watched := m.catalog.Ceiling(p.Name)
	if !watched {
		return match.Match{}, false
	}

	discovered, err := hashiVersion.NewSemver(p.Version)
	if err != nil {
		// should not happen: package versions are validated during normalization
		log.Debugf("unable to parse discovered version for %s: %+v", p, err)
		return match.Match{}, false
	}

	if discovered.GreaterThan(ceiling) {
		return match.Match{}, false
	}

	return match.New(p.Name, p.Version), true
}
