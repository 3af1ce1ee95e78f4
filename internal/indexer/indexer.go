// Package indexer extracts custom-property and class-color declarations from
// stylesheet text and feeds them into the registry.
//
// Extraction is deliberately regex-based with single-level brace matching
// rather than a full CSS parse; the known edge cases of that approach are
// part of the contract under test.
package indexer

import (
	"regexp"
	"strings"

	"github.com/colorpeek/colorpeek/internal/collections"
	"github.com/colorpeek/colorpeek/internal/color"
	"github.com/colorpeek/colorpeek/internal/log"
	"github.com/colorpeek/colorpeek/internal/registry"
	"github.com/colorpeek/colorpeek/internal/resolver"
)

var (
	declarationPattern = regexp.MustCompile(`(--[A-Za-z0-9_-]+)\s*:\s*([^;{}]+);`)
	classRulePattern   = regexp.MustCompile(`\.([A-Za-z_][A-Za-z0-9_-]*)\s*\{([^{}]*)\}`)
	colorPropPattern   = regexp.MustCompile(`(?:^|[;\s])(background-color|border-color|background|color)\s*:\s*([^;}]+)`)
	referencePattern   = regexp.MustCompile(`var\((--[A-Za-z0-9_-]+)\)`)
)

// Indexer scans stylesheet documents for declarations and appends them to
// the registry, resolving class-color values through the resolver.
type Indexer struct {
	registry *registry.Registry
	resolver *resolver.Resolver
}

// New creates an Indexer over the given registry and resolver.
func New(reg *registry.Registry, res *resolver.Resolver) *Indexer {
	return &Indexer{registry: reg, resolver: res}
}

// IndexDocument extracts all declarations from one stylesheet and stores
// them in the registry. Any previous declarations from the same file are
// removed first, so repeated re-indexing of an edited file cannot accumulate
// stale duplicates.
func (ix *Indexer) IndexDocument(filePath, text string) {
	ix.registry.RemoveFile(filePath)
	ix.indexProperties(filePath, text)
	ix.indexClassColors(filePath, text)
}

func (ix *Indexer) indexProperties(filePath, text string) {
	for _, m := range declarationPattern.FindAllStringSubmatchIndex(text, -1) {
		name := text[m[2]:m[3]]
		value := strings.TrimSpace(text[m[4]:m[5]])
		selector := enclosingSelector(text, m[0])

		ix.registry.AddProperty(&registry.PropertyDeclaration{
			Name:     name,
			Value:    value,
			FilePath: filePath,
			Line:     lineAt(text, m[0]),
			Selector: selector,
			Context:  registry.DeriveContext(selector),
		})
	}
}

// indexClassColors runs the single-level class rule scan: `.name { ... }`
// bodies are searched for color-bearing properties, values are resolved
// through the registry, and only entries whose resolved value parses as a
// color are stored.
func (ix *Indexer) indexClassColors(filePath, text string) {
	for _, rule := range classRulePattern.FindAllStringSubmatchIndex(text, -1) {
		className := text[rule[2]:rule[3]]
		body := text[rule[4]:rule[5]]

		for _, m := range colorPropPattern.FindAllStringSubmatch(body, -1) {
			property := m[1]
			value := strings.TrimSpace(m[2])

			if referencePattern.MatchString(value) {
				value = strings.TrimSpace(ix.resolver.ResolveValue(value, collections.NewSet[string]()))
			}
			if _, _, ok := color.Parse(value); !ok {
				continue
			}

			ix.registry.AddClassColor(&registry.ClassColorDeclaration{
				ClassName: className,
				Property:  property,
				Value:     value,
				FilePath:  filePath,
				Line:      lineAt(text, rule[0]),
				Selector:  "." + className,
			})
		}
	}
}

// enclosingSelector finds the selector governing the declaration at pos by
// searching backward for the nearest unmatched open brace, then backward
// from the brace for the nearest non-empty, non-comment line. Declarations
// with no enclosing brace default to :root.
func enclosingSelector(text string, pos int) string {
	brace := -1
	depth := 0
	for i := pos - 1; i >= 0; i-- {
		switch text[i] {
		case '}':
			depth++
		case '{':
			if depth == 0 {
				brace = i
			} else {
				depth--
			}
		}
		if brace >= 0 {
			break
		}
	}
	if brace < 0 {
		return ":root"
	}

	lines := strings.Split(text[:brace], "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" || isCommentLine(line) {
			continue
		}
		return strings.Join(strings.Fields(line), " ")
	}
	return ":root"
}

func isCommentLine(line string) bool {
	return strings.HasPrefix(line, "/*") ||
		strings.HasPrefix(line, "*") ||
		strings.HasPrefix(line, "//")
}

// lineAt returns the 0-based line number of a byte offset.
func lineAt(text string, pos int) int {
	if pos > len(text) {
		pos = len(text)
	}
	return strings.Count(text[:pos], "\n")
}

// Log a summary after bulk operations; useful when tracing re-index churn.
func (ix *Indexer) logCounts() {
	log.Debug("registry holds %d property and %d class declarations",
		ix.registry.Count(), ix.registry.ClassCount())
}
