package guide

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed catalog.toml
var defaultCatalog string

type catalogFile struct {
	Title    string       `toml:"title"`
	Subtitle string       `toml:"subtitle"`
	Tabs     []catalogTab `toml:"tab"`
}

type catalogTab struct {
	ID       string    `toml:"id"`
	Label    string    `toml:"label"`
	Icon     Icon      `toml:"icon"`
	Title    string    `toml:"title"`
	Sections []Section `toml:"section"`
}

// Decode reads a TOML catalog and builds a validated Registry.
// Keys the catalog format does not know are rejected.
func Decode(r io.Reader) (*Registry, error) {
	var f catalogFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("decode catalog: unknown keys %s", strings.Join(keys, ", "))
	}
	entries := make([]Entry, 0, len(f.Tabs))
	for _, t := range f.Tabs {
		entries = append(entries, Entry{
			Tab:     Tab{ID: t.ID, Label: t.Label, Icon: t.Icon},
			Content: Content{Title: t.Title, Sections: t.Sections},
		})
	}
	reg, err := NewRegistry(f.Title, f.Subtitle, entries)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return reg, nil
}

// Default builds the registry from the embedded catalog.
func Default() (*Registry, error) {
	return Decode(strings.NewReader(defaultCatalog))
}

// MustDefault is Default for callers that treat a broken embedded
// catalog as a build defect.
func MustDefault() *Registry {
	reg, err := Default()
	if err != nil {
		panic(err)
	}
	return reg
}
