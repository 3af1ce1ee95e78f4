package registry

import "strings"

// darkPatterns and lightPatterns are the selector substrings that mark a
// declaration as theme-scoped. Matching is case-insensitive.
var (
	darkPatterns  = []string{".dark", `[data-theme="dark"]`, `[data-mode="dark"]`}
	lightPatterns = []string{".light", `[data-theme="light"]`}
)

// DeriveContext classifies a selector and computes its simplified
// specificity score. The score ranks :root/html lowest among real matches so
// the root declaration wins as the default at resolution time.
func DeriveContext(selector string) Context {
	trimmed := strings.TrimSpace(selector)
	lower := strings.ToLower(trimmed)

	ctx := Context{
		Type:        ContextOther,
		Theme:       deriveThemeHint(lower),
		Specificity: Specificity(trimmed),
	}

	switch {
	case lower == ":root" || lower == "html":
		ctx.Type = ContextRoot
	case strings.Contains(lower, "@media"):
		ctx.Type = ContextMediaScoped
		if i := strings.Index(lower, "@media"); i >= 0 {
			ctx.MediaQuery = strings.TrimSpace(trimmed[i+len("@media"):])
		}
	case strings.ContainsAny(trimmed, ".["):
		ctx.Type = ContextClassScoped
	}

	return ctx
}

func deriveThemeHint(lowerSelector string) ThemeHint {
	for _, p := range darkPatterns {
		if strings.Contains(lowerSelector, p) {
			return ThemeDark
		}
	}
	for _, p := range lightPatterns {
		if strings.Contains(lowerSelector, p) {
			return ThemeLight
		}
	}
	return ThemeNone
}

// Specificity computes the simplified ranking used to pick a default
// declaration among duplicates of the same property name:
//
//	:root or html            -> 1
//	contains an ID marker    -> 100
//	contains class/attribute -> 10 + 10 per class marker
//	anything else            -> 0
func Specificity(selector string) int {
	trimmed := strings.ToLower(strings.TrimSpace(selector))
	switch {
	case trimmed == ":root" || trimmed == "html":
		return 1
	case strings.Contains(trimmed, "#"):
		return 100
	case strings.ContainsAny(trimmed, ".["):
		return 10 + 10*strings.Count(trimmed, ".")
	default:
		return 0
	}
}
