// Package resolver expands custom-property references against the registry,
// recursively resolving nested var() chains with cycle protection.
package resolver

import (
	"regexp"

	"github.com/colorpeek/colorpeek/internal/collections"
	"github.com/colorpeek/colorpeek/internal/log"
	"github.com/colorpeek/colorpeek/internal/registry"
)

// referencePattern matches a var(--name) reference inside a declaration value.
var referencePattern = regexp.MustCompile(`var\((--[A-Za-z0-9_-]+)\)`)

// Resolver walks the property registry to produce final resolved value text
// for a property name or raw value.
type Resolver struct {
	registry *registry.Registry
}

// New creates a Resolver over the given registry.
func New(reg *registry.Registry) *Resolver {
	return &Resolver{registry: reg}
}

// Default returns the declaration that wins as the default for a property
// name: the one with the lowest specificity score. Returns nil when the name
// has no declarations.
func (r *Resolver) Default(name string) *registry.PropertyDeclaration {
	decls := r.registry.DeclarationsFor(name)
	if len(decls) == 0 {
		return nil
	}
	return decls[0]
}

// Resolve produces the fully resolved value text for a property name.
// Returns ok=false when the name has no registry entry.
func (r *Resolver) Resolve(name string) (string, bool) {
	decl := r.Default(name)
	if decl == nil {
		return "", false
	}
	return r.ResolveValue(decl.Value, collections.NewSet(name)), true
}

// ResolveValue expands every var() reference in a raw value. Each referenced
// name is looked up as its lowest-specificity declaration and resolved
// recursively with the visited set extended by that name; the first
// occurrence of the var(...) text is then substituted with the result.
//
// When a chain revisits a name already being expanded, the whole resolution
// aborts and the original unexpanded value comes back. That value will
// typically fail to parse as a color downstream, which is the intended
// fail-open behavior. References to unknown names are left in place.
func (r *Resolver) ResolveValue(value string, visited collections.Set[string]) string {
	result, _ := r.resolveValue(value, visited)
	return result
}

// resolveValue reports abortion separately so a cycle detected deep in the
// chain unwinds every level back to the caller's original value.
func (r *Resolver) resolveValue(value string, visited collections.Set[string]) (string, bool) {
	result := value
	searchFrom := 0

	for {
		loc := referencePattern.FindStringSubmatchIndex(result[searchFrom:])
		if loc == nil {
			return result, false
		}

		start := searchFrom + loc[0]
		end := searchFrom + loc[1]
		name := result[searchFrom+loc[2] : searchFrom+loc[3]]

		if visited.Has(name) {
			log.Warn("circular custom property reference involving %s; leaving value unexpanded", name)
			return value, true
		}

		decl := r.Default(name)
		if decl == nil {
			// Unresolved reference: not an error, skip past it
			searchFrom = end
			continue
		}

		branch := visited.Clone()
		branch.Add(name)
		expanded, aborted := r.resolveValue(decl.Value, branch)
		if aborted {
			return value, true
		}

		result = result[:start] + expanded + result[end:]
		searchFrom = start + len(expanded)
	}
}

// Variants groups the theme-specific declarations of one property name.
// The three need not be distinct entries; any of them may be nil.
type Variants struct {
	// Default is the lowest-specificity declaration
	Default *registry.PropertyDeclaration
	// Dark is the first declaration whose selector carries a dark theme hint
	Dark *registry.PropertyDeclaration
	// Light is the first declaration whose selector carries a light theme hint
	Light *registry.PropertyDeclaration
}

// ThemeVariants exposes the default, dark and light declarations for a
// property name. Dark and light are picked in indexing order.
func (r *Resolver) ThemeVariants(name string) Variants {
	v := Variants{Default: r.Default(name)}
	for _, decl := range r.registry.RawDeclarationsFor(name) {
		switch decl.Context.Theme {
		case registry.ThemeDark:
			if v.Dark == nil {
				v.Dark = decl
			}
		case registry.ThemeLight:
			if v.Light == nil {
				v.Light = decl
			}
		}
	}
	return v
}
