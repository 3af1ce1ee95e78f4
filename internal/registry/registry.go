package registry

import (
	"sort"
	"sync"
)

// Registry holds every custom-property and class-color declaration found
// across the indexed corpus. Multiple declarations may exist for the same
// property name (root default plus theme overrides); they are kept in
// insertion order and sorted by specificity only at resolution time.
//
// The registry is owned by a workspace session, never package-global. It is
// cleared and rebuilt wholesale on a full re-index, pruned per file when a
// source file is deleted, and appended to when a file is indexed.
type Registry struct {
	mu         sync.RWMutex
	properties map[string][]*PropertyDeclaration
	classes    map[string][]*ClassColorDeclaration
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		properties: make(map[string][]*PropertyDeclaration),
		classes:    make(map[string][]*ClassColorDeclaration),
	}
}

// AddProperty appends a property declaration. Declarations are not
// deduplicated; callers re-indexing a file should call RemoveFile first.
func (r *Registry) AddProperty(decl *PropertyDeclaration) {
	if decl == nil || decl.Name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.properties[decl.Name] = append(r.properties[decl.Name], decl)
}

// AddClassColor appends a class-color declaration.
func (r *Registry) AddClassColor(decl *ClassColorDeclaration) {
	if decl == nil || decl.ClassName == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes[decl.ClassName] = append(r.classes[decl.ClassName], decl)
}

// DeclarationsFor returns the declarations for a property name sorted by
// ascending specificity, so the first entry is the default at resolution
// time. Among equal scores, declarations without a theme hint sort first,
// then insertion order is preserved. The returned slice is a copy.
func (r *Registry) DeclarationsFor(name string) []*PropertyDeclaration {
	r.mu.RLock()
	decls := r.properties[name]
	sorted := make([]*PropertyDeclaration, len(decls))
	copy(sorted, decls)
	r.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Context.Specificity != sorted[j].Context.Specificity {
			return sorted[i].Context.Specificity < sorted[j].Context.Specificity
		}
		return sorted[i].Context.Theme == ThemeNone && sorted[j].Context.Theme != ThemeNone
	})
	return sorted
}

// RawDeclarationsFor returns the declarations for a property name in
// insertion order. Used by theme-variant lookup, which wants the first dark
// or light declaration as indexed rather than the cascade winner.
func (r *Registry) RawDeclarationsFor(name string) []*PropertyDeclaration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	decls := make([]*PropertyDeclaration, len(r.properties[name]))
	copy(decls, r.properties[name])
	return decls
}

// Has reports whether any declaration exists for the property name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.properties[name]) > 0
}

// PropertyNames returns all declared property names, sorted.
func (r *Registry) PropertyNames() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.properties))
	for name := range r.properties {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// ClassColorsFor returns the class-color declarations for a class name in
// insertion order. The returned slice is a copy.
func (r *Registry) ClassColorsFor(className string) []*ClassColorDeclaration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	decls := make([]*ClassColorDeclaration, len(r.classes[className]))
	copy(decls, r.classes[className])
	return decls
}

// HasClass reports whether any color declaration exists for the class name.
func (r *Registry) HasClass(className string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.classes[className]) > 0
}

// RemoveFile removes every declaration that originated in the given file.
// Returns the number of declarations removed.
func (r *Registry) RemoveFile(filePath string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for name, decls := range r.properties {
		kept := decls[:0]
		for _, d := range decls {
			if d.FilePath == filePath {
				removed++
				continue
			}
			kept = append(kept, d)
		}
		if len(kept) == 0 {
			delete(r.properties, name)
		} else {
			r.properties[name] = kept
		}
	}
	for class, decls := range r.classes {
		kept := decls[:0]
		for _, d := range decls {
			if d.FilePath == filePath {
				removed++
				continue
			}
			kept = append(kept, d)
		}
		if len(kept) == 0 {
			delete(r.classes, class)
		} else {
			r.classes[class] = kept
		}
	}
	return removed
}

// Clear removes all declarations. Called at the start of a full re-index.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.properties = make(map[string][]*PropertyDeclaration)
	r.classes = make(map[string][]*ClassColorDeclaration)
}

// Count returns the number of property declarations.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, decls := range r.properties {
		n += len(decls)
	}
	return n
}

// ClassCount returns the number of class-color declarations.
func (r *Registry) ClassCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, decls := range r.classes {
		n += len(decls)
	}
	return n
}
