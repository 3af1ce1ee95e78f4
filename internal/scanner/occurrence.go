package scanner

import "github.com/colorpeek/colorpeek/internal/color"

// Kind tags how a color occurrence was written in the document.
type Kind int

const (
	// KindLiteral is a direct color literal (#fff, rgb(...), bare triple)
	KindLiteral Kind = iota
	// KindPropertyReference is a bare var(--name) reference
	KindPropertyReference
	// KindPropertyReferenceWrappedInFunction is hsl(var(--name)) and friends
	KindPropertyReferenceWrappedInFunction
	// KindUtilityClassReference is a utility class like bg-primary
	KindUtilityClassReference
	// KindClassSelectorColor is a class name in a markup class attribute
	KindClassSelectorColor
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindPropertyReference:
		return "property-reference"
	case KindPropertyReferenceWrappedInFunction:
		return "wrapped-property-reference"
	case KindUtilityClassReference:
		return "utility-class"
	case KindClassSelectorColor:
		return "class-selector"
	default:
		return "unknown"
	}
}

// Occurrence is one located, resolved color match within a document: the
// unit of output from a scan. Occurrences are created fresh on every scan
// and immutable once produced.
type Occurrence struct {
	// Start and End delimit the half-open byte range of the matched text
	Start int
	End   int

	// Line and Character are the 0-based position of Start
	Line      int
	Character int

	// Text is the original matched text
	Text string

	// Color is the resolved canonical value
	Color color.Color

	// Canonical is the normalized canonical string form of Color
	Canonical string

	// Format is the notation the color (or its resolved value) was written in
	Format color.Format

	Kind Kind
}
