/*
Package watchlist provides parsing of user-supplied package watch lists into a catalog of version ceilings.
*/
package watchlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	hashiVersion "github.com/hashicorp/go-version"

	"github.com/degrootsam/shai-hulud-detector/internal/log"
)

// Entry is a single parsed watch-list line, pairing a package name with a version ceiling.
type Entry struct {
	// Name is the package name as given (may carry a scope prefix, e.g. "@scope/name")
	Name string
	// Ceiling is the highest version to treat as affected
	Ceiling *hashiVersion.Version
}

// Catalog is a read-only index of watch-list entries, keyed by lowercased package name. There is at
// most one ceiling per name: duplicate input entries are folded by keeping the greater version.
type Catalog struct {
	entries      map[string]Entry
	inputEntries int
}

// FromFile loads a watch-list catalog from the given file path.
func FromFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open watch list: %w", err)
	}
	defer f.Close()

	catalog, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("unable to load watch list %q: %w", path, err)
	}
	return catalog, nil
}

// Load parses watch-list lines from the given reader. Blank lines and comment lines are ignored;
// lines that cannot be parsed into a name plus a valid semantic version are dropped.
func Load(reader io.Reader) (*Catalog, error) {
	catalog := &Catalog{
		entries: make(map[string]Entry),
	}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		entry, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		catalog.inputEntries++
		catalog.add(entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read watch list: %w", err)
	}

	return catalog, nil
}

// parseLine extracts a watch-list entry from one line of input. The version is everything after the
// LAST "@" on the line, so that scoped package names ("@scope/name@1.2.3") parse correctly.
func parseLine(line string) (Entry, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Entry{}, false
	}

	idx := strings.LastIndex(trimmed, "@")
	if idx <= 0 {
		// no separator, or the only "@" is the leading scope marker
		return Entry{}, false
	}

	name := strings.TrimSpace(trimmed[:idx])
	rawVersion := strings.TrimSpace(trimmed[idx+1:])
	if name == "" || rawVersion == "" {
		return Entry{}, false
	}

	// NewSemver keeps watch-list ceilings under the same validation as discovered versions
	ceiling, err := hashiVersion.NewSemver(rawVersion)
	if err != nil {
		log.Debugf("dropping watch-list line with unparseable version %q: %+v", rawVersion, err)
		return Entry{}, false
	}

	return Entry{
		Name:    name,
		Ceiling: ceiling,
	}, true
}

func (c *Catalog) add(entry Entry) {
	key := strings.ToLower(entry.Name)
	if existing, exists := c.entries[key]; exists {
		// duplicate names keep the greater ceiling
		if existing.Ceiling.GreaterThanOrEqual(entry.Ceiling) {
			return
		}
	}
	c.entries[key] = entry
}

// Ceiling returns the version ceiling for the given package name (case-insensitive lookup).
func (c *Catalog) Ceiling(name string) (*hashiVersion.Version, bool) {
	entry, exists := c.entries[strings.ToLower(name)]
	if !exists {
		return nil, false
	}
	return entry.Ceiling, true
}

// Count returns the number of distinct watched package names.
func (c *Catalog) Count() int {
	return len(c.entries)
}

// InputEntries returns the number of semantically valid watch-list lines that were read (before folding).
func (c *Catalog) InputEntries() int {
	return c.inputEntries
}
