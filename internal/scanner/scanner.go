// Package scanner locates color-bearing spans in document text: literals,
// custom-property references and utility-class references.
package scanner

import (
	"regexp"
	"sort"
	"strings"

	"github.com/colorpeek/colorpeek/internal/collections"
	"github.com/colorpeek/colorpeek/internal/color"
	"github.com/colorpeek/colorpeek/internal/registry"
	"github.com/colorpeek/colorpeek/internal/resolver"
)

// UtilityPrefixes is the fixed set of CSS utility-class prefixes that map to
// a synthesized custom-property name: bg-primary looks up --primary.
var UtilityPrefixes = []string{
	"bg", "text", "border", "ring", "shadow", "from", "via", "to",
	"outline", "decoration", "divide", "accent", "caret",
}

var (
	hexLiteralPattern = regexp.MustCompile(`#(?:[0-9a-fA-F]{8}|[0-9a-fA-F]{6}|[0-9a-fA-F]{4}|[0-9a-fA-F]{3})\b`)

	// Functional arguments match up to the first line break inside the
	// parens: multi-line function arguments are not supported.
	functionalPattern = regexp.MustCompile(`(?:rgba?|hsla?)\([^)\r\n]*\)`)

	// The leading group stands in for a negative lookbehind: a bare triple
	// must not be preceded by #, a word character, or an open parenthesis,
	// to avoid matching inside other tokens.
	bareTriplePattern = regexp.MustCompile(`(?:^|[^#\w(])(\d{1,3}(?:\.\d+)?\s+\d{1,3}(?:\.\d+)?%\s+\d{1,3}(?:\.\d+)?%(?:\s*/\s*[0-9.]+%?)?)`)

	propertyRefPattern = regexp.MustCompile(`var\((--[A-Za-z0-9_-]+)\)`)
	wrappedRefPattern  = regexp.MustCompile(`(rgba?|hsla?)\(\s*var\((--[A-Za-z0-9_-]+)\)\s*\)`)

	utilityClassPattern = regexp.MustCompile(`(?:^|[^\w-])((` + strings.Join(UtilityPrefixes, "|") + `)-([A-Za-z][A-Za-z0-9-]*))`)

	classAttrPattern = regexp.MustCompile(`class\s*=\s*["']([^"']*)["']`)
)

// Scanner runs every matcher over a document's text and accumulates the
// located color occurrences. Reference matchers resolve through the registry
// and silently discard candidates that do not resolve to a parseable color.
type Scanner struct {
	registry *registry.Registry
	resolver *resolver.Resolver
}

// New creates a Scanner over the given registry and resolver.
func New(reg *registry.Registry, res *resolver.Resolver) *Scanner {
	return &Scanner{registry: reg, resolver: res}
}

// span identifies one claimed half-open byte range.
type span struct {
	start, end int
}

// scanState threads the shared seen-set and accumulated results through the
// matchers, so the first matcher to claim an exact span wins regardless of
// how individual matchers are implemented.
type scanState struct {
	text        string
	lineOffsets []int
	seen        collections.Set[span]
	results     []Occurrence
}

// Scan returns every color occurrence in the text, ordered by position and
// deduplicated by exact span. Matchers run in a fixed order: hex literals,
// functional notation, bare triples, var() references, function-wrapped
// var() references, utility classes, markup class attributes.
func (s *Scanner) Scan(text string) []Occurrence {
	st := &scanState{
		text:        text,
		lineOffsets: lineOffsets(text),
		seen:        collections.NewSet[span](),
	}

	s.matchHexLiterals(st)
	s.matchFunctional(st)
	s.matchBareTriples(st)
	s.matchPropertyRefs(st)
	s.matchWrappedRefs(st)
	s.matchUtilityClasses(st)
	s.matchClassAttributes(st)

	sort.SliceStable(st.results, func(i, j int) bool {
		if st.results[i].Start != st.results[j].Start {
			return st.results[i].Start < st.results[j].Start
		}
		return st.results[i].End < st.results[j].End
	})
	return st.results
}

// emit claims the span and records an occurrence unless another matcher
// already claimed the exact same span.
func (st *scanState) emit(start, end int, c color.Color, format color.Format, kind Kind) {
	sp := span{start, end}
	if st.seen.Has(sp) {
		return
	}
	st.seen.Add(sp)

	line, char := positionAt(st.lineOffsets, start)
	st.results = append(st.results, Occurrence{
		Start:     start,
		End:       end,
		Line:      line,
		Character: char,
		Text:      st.text[start:end],
		Color:     c,
		Canonical: color.Canonical(c),
		Format:    format,
		Kind:      kind,
	})
}

func (s *Scanner) matchHexLiterals(st *scanState) {
	for _, m := range hexLiteralPattern.FindAllStringIndex(st.text, -1) {
		if c, format, ok := color.Parse(st.text[m[0]:m[1]]); ok {
			st.emit(m[0], m[1], c, format, KindLiteral)
		}
	}
}

func (s *Scanner) matchFunctional(st *scanState) {
	for _, m := range functionalPattern.FindAllStringIndex(st.text, -1) {
		if c, format, ok := color.Parse(st.text[m[0]:m[1]]); ok {
			st.emit(m[0], m[1], c, format, KindLiteral)
		}
	}
}

func (s *Scanner) matchBareTriples(st *scanState) {
	for _, m := range bareTriplePattern.FindAllStringSubmatchIndex(st.text, -1) {
		start, end := m[2], m[3]
		if c, format, ok := color.Parse(st.text[start:end]); ok {
			st.emit(start, end, c, format, KindLiteral)
		}
	}
}

func (s *Scanner) matchPropertyRefs(st *scanState) {
	for _, m := range propertyRefPattern.FindAllStringSubmatchIndex(st.text, -1) {
		name := st.text[m[2]:m[3]]
		resolved, ok := s.resolver.Resolve(name)
		if !ok {
			continue
		}
		if c, format, ok := color.Parse(strings.TrimSpace(resolved)); ok {
			st.emit(m[0], m[1], c, format, KindPropertyReference)
		}
	}
}

// matchWrappedRefs handles hsl(var(--name)) and friends: the inner reference
// resolves first, then the outer function name is prefixed onto the resolved
// value before parsing, so `--x: 217 91% 60%` wrapped in hsl() parses as
// hsl(217 91% 60%).
func (s *Scanner) matchWrappedRefs(st *scanState) {
	for _, m := range wrappedRefPattern.FindAllStringSubmatchIndex(st.text, -1) {
		fn := st.text[m[2]:m[3]]
		name := st.text[m[4]:m[5]]

		resolved, ok := s.resolver.Resolve(name)
		if !ok {
			continue
		}
		candidate := fn + "(" + strings.TrimSpace(resolved) + ")"
		if c, format, ok := color.Parse(candidate); ok {
			st.emit(m[0], m[1], c, format, KindPropertyReferenceWrappedInFunction)
		}
	}
}

func (s *Scanner) matchUtilityClasses(st *scanState) {
	for _, m := range utilityClassPattern.FindAllStringSubmatchIndex(st.text, -1) {
		start, end := m[2], m[3]
		token := st.text[m[6]:m[7]]

		resolved, ok := s.resolver.Resolve("--" + token)
		if !ok {
			continue
		}
		if c, format, ok := color.Parse(strings.TrimSpace(resolved)); ok {
			st.emit(start, end, c, format, KindUtilityClassReference)
		}
	}
}

// matchClassAttributes extracts class="..." attribute contents and emits an
// occurrence for every listed class name present in the class-color registry,
// anchored at that class name's own position.
func (s *Scanner) matchClassAttributes(st *scanState) {
	for _, m := range classAttrPattern.FindAllStringSubmatchIndex(st.text, -1) {
		attrStart := m[2]
		contents := st.text[m[2]:m[3]]

		offset := 0
		for _, name := range strings.Fields(contents) {
			idx := strings.Index(contents[offset:], name)
			if idx < 0 {
				continue
			}
			start := attrStart + offset + idx
			end := start + len(name)
			offset += idx + len(name)

			decls := s.registry.ClassColorsFor(name)
			if len(decls) == 0 {
				continue
			}
			if c, format, ok := color.Parse(decls[0].Value); ok {
				st.emit(start, end, c, format, KindClassSelectorColor)
			}
		}
	}
}

// lineOffsets returns the byte offset of the start of each line.
func lineOffsets(text string) []int {
	offsets := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// positionAt converts a byte offset to a 0-based line/character pair.
func positionAt(offsets []int, pos int) (line, character int) {
	line = sort.Search(len(offsets), func(i int) bool { return offsets[i] > pos }) - 1
	return line, pos - offsets[line]
}
