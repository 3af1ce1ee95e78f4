// Package palette derives the deduplicated set of concrete colors declared
// across all indexed custom properties.
package palette

import (
	"sort"
	"strings"

	"github.com/colorpeek/colorpeek/internal/color"
	"github.com/colorpeek/colorpeek/internal/registry"
	"github.com/colorpeek/colorpeek/internal/resolver"
)

// Entry is one distinct color in the workspace palette, with the property
// names that resolve to it.
type Entry struct {
	Canonical  string
	Color      color.Color
	Properties []string
}

// Extract resolves every indexed custom property and collects the distinct
// colors, keyed by canonical string form. Properties whose resolved value is
// not a color are skipped. Entries come back sorted by canonical string, and
// each entry's property list is sorted.
func Extract(reg *registry.Registry, res *resolver.Resolver) []Entry {
	byCanonical := make(map[string]*Entry)

	for _, name := range reg.PropertyNames() {
		value, ok := res.Resolve(name)
		if !ok {
			continue
		}
		c, _, ok := color.Parse(strings.TrimSpace(value))
		if !ok {
			continue
		}

		key := color.Canonical(c)
		e, exists := byCanonical[key]
		if !exists {
			e = &Entry{Canonical: key, Color: c}
			byCanonical[key] = e
		}
		e.Properties = append(e.Properties, name)
	}

	entries := make([]Entry, 0, len(byCanonical))
	for _, e := range byCanonical {
		sort.Strings(e.Properties)
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Canonical < entries[j].Canonical
	})
	return entries
}
