// Package logos maps team abbreviations to the bundled SVG logo assets.
package logos

import (
	"embed"
	"io/fs"
	"path"
	"regexp"
	"strings"
)

//go:embed assets/*.svg
var assets embed.FS

// PathPrefix is where the HTTP surface serves the assets.
const PathPrefix = "/logos/"

var assetName = regexp.MustCompile(`^([A-Z]{3})\.svg$`)

// Catalog is an immutable abbreviation -> asset reference table.
type Catalog struct {
	refs map[string]string
	fsys fs.FS
}

// Default returns the catalog built from the bundled assets.
func Default() *Catalog {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return New(sub)
}

// New builds a catalog from the top-level files of fsys. Files not named
// like "BOS.svg" are ignored.
func New(fsys fs.FS) *Catalog {
	c := &Catalog{refs: make(map[string]string), fsys: fsys}
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return c
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := assetName.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		c.refs[m[1]] = path.Join(PathPrefix, entry.Name())
	}
	return c
}

// Lookup returns the asset reference for abbr.
func (c *Catalog) Lookup(abbr string) (string, bool) {
	if c == nil {
		return "", false
	}
	ref, ok := c.refs[strings.ToUpper(strings.TrimSpace(abbr))]
	return ref, ok
}

// Has reports whether a logo exists for abbr.
func (c *Catalog) Has(abbr string) bool {
	_, ok := c.Lookup(abbr)
	return ok
}

// All returns a copy of the full table.
func (c *Catalog) All() map[string]string {
	out := make(map[string]string)
	if c == nil {
		return out
	}
	for k, v := range c.refs {
		out[k] = v
	}
	return out
}

// FS exposes the asset files for serving.
func (c *Catalog) FS() fs.FS {
	return c.fsys
}
