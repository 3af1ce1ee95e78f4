// Package registry stores custom-property and class-color declarations found
// across a stylesheet corpus, keyed by property and class name.
package registry

// ContextType classifies the selector a declaration was found under.
type ContextType int

const (
	// ContextOther is any selector that fits no more specific bucket
	ContextOther ContextType = iota
	// ContextRoot is an exact :root or html selector
	ContextRoot
	// ContextClassScoped is a selector containing a class or attribute part
	ContextClassScoped
	// ContextMediaScoped is a declaration under an @media block
	ContextMediaScoped
)

func (t ContextType) String() string {
	switch t {
	case ContextRoot:
		return "root"
	case ContextClassScoped:
		return "class"
	case ContextMediaScoped:
		return "media"
	default:
		return "other"
	}
}

// ThemeHint is a heuristic classification of a selector as targeting a light
// or dark theme variant, based on substring patterns.
type ThemeHint int

const (
	ThemeNone ThemeHint = iota
	ThemeLight
	ThemeDark
)

func (h ThemeHint) String() string {
	switch h {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "none"
	}
}

// Context captures where a declaration sits in the cascade, as far as the
// simplified selector heuristics can tell.
type Context struct {
	Type ContextType

	Theme ThemeHint

	// MediaQuery is the literal text following "@media", when present
	MediaQuery string

	// Specificity is the simplified ranking used to pick a default
	// declaration among duplicates. It is not full CSS specificity.
	Specificity int
}

// PropertyDeclaration is one `--name: value;` found in a stylesheet. The raw
// value may itself contain nested var() references.
type PropertyDeclaration struct {
	// Name is the property name including the leading dashes, e.g. "--brand"
	Name string

	// Value is the raw declaration value text
	Value string

	// FilePath identifies the source file the declaration came from
	FilePath string

	// Line is the 0-based line the declaration starts on
	Line int

	// Selector is the whitespace-collapsed enclosing selector text
	Selector string

	Context Context
}

// ClassColorDeclaration is one class selector's color-relevant property,
// e.g. `.badge { background-color: var(--brand); }`. Value holds the text
// after nested property references have been resolved.
type ClassColorDeclaration struct {
	ClassName string
	Property  string
	Value     string
	FilePath  string
	Line      int
	Selector  string
}
