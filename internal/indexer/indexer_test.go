package indexer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorpeek/colorpeek/internal/indexer"
	"github.com/colorpeek/colorpeek/internal/registry"
	"github.com/colorpeek/colorpeek/internal/resolver"
)

func newIndexer() (*indexer.Indexer, *registry.Registry, *resolver.Resolver) {
	reg := registry.New()
	res := resolver.New(reg)
	return indexer.New(reg, res), reg, res
}

func TestIndexDocumentExtractsProperties(t *testing.T) {
	ix, reg, _ := newIndexer()

	ix.IndexDocument("theme.css", `:root {
  --brand: #112233;
  --accent: rgb(255, 0, 0);
}

.dark {
  --brand: #eeeeee;
}
`)

	require.True(t, reg.Has("--brand"))
	require.True(t, reg.Has("--accent"))

	decls := reg.DeclarationsFor("--brand")
	require.Len(t, decls, 2)
	assert.Equal(t, "#112233", decls[0].Value)
	assert.Equal(t, ":root", decls[0].Selector)
	assert.Equal(t, registry.ContextRoot, decls[0].Context.Type)
	assert.Equal(t, 1, decls[0].Line)

	assert.Equal(t, ".dark", decls[1].Selector)
	assert.Equal(t, registry.ThemeDark, decls[1].Context.Theme)
	assert.Equal(t, 6, decls[1].Line)
}

// TestIndexDocumentBracelessDefaultsToRoot checks that a declaration with no
// enclosing brace is treated as if it were declared on :root.
func TestIndexDocumentBracelessDefaultsToRoot(t *testing.T) {
	ix, reg, _ := newIndexer()

	ix.IndexDocument("loose.css", "--brand: #112233;\n")

	decls := reg.DeclarationsFor("--brand")
	require.Len(t, decls, 1)
	assert.Equal(t, ":root", decls[0].Selector)
	assert.Equal(t, registry.ContextRoot, decls[0].Context.Type)
}

func TestIndexDocumentSelectorBackscanSkipsComments(t *testing.T) {
	ix, reg, _ := newIndexer()

	ix.IndexDocument("a.css", `/* brand palette */

.theme-dark
{
  --brand: #000;
}
`)

	decls := reg.DeclarationsFor("--brand")
	require.Len(t, decls, 1)
	assert.Equal(t, ".theme-dark", decls[0].Selector)
}

func TestIndexDocumentCollapsesSelectorWhitespace(t *testing.T) {
	ix, reg, _ := newIndexer()

	ix.IndexDocument("a.css", ".sidebar   .dark  {\n  --bg: #000;\n}\n")

	decls := reg.DeclarationsFor("--bg")
	require.Len(t, decls, 1)
	assert.Equal(t, ".sidebar .dark", decls[0].Selector)
}

func TestIndexDocumentMediaContext(t *testing.T) {
	ix, reg, _ := newIndexer()

	ix.IndexDocument("a.css", `@media (prefers-color-scheme: dark) {
  --bg: #000;
}
`)

	decls := reg.DeclarationsFor("--bg")
	require.Len(t, decls, 1)
	assert.Equal(t, registry.ContextMediaScoped, decls[0].Context.Type)
	assert.Equal(t, "(prefers-color-scheme: dark)", decls[0].Context.MediaQuery)
}

func TestIndexDocumentClassColors(t *testing.T) {
	ix, reg, _ := newIndexer()

	ix.IndexDocument("a.css", `:root {
  --brand: #112233;
}

.badge {
  background-color: var(--brand);
  color: #ffffff;
  border: 1px solid gray;
}
`)

	require.True(t, reg.HasClass("badge"))
	decls := reg.ClassColorsFor("badge")
	require.Len(t, decls, 2)
	assert.Equal(t, "background-color", decls[0].Property)
	assert.Equal(t, "#112233", decls[0].Value, "var reference resolved at index time")
	assert.Equal(t, "color", decls[1].Property)
	assert.Equal(t, "#ffffff", decls[1].Value)
}

// TestIndexDocumentClassColorsDiscardsNonColors checks that a color-bearing
// property whose value does not parse as a color is dropped rather than
// stored as garbage.
func TestIndexDocumentClassColorsDiscardsNonColors(t *testing.T) {
	ix, reg, _ := newIndexer()

	ix.IndexDocument("a.css", `.hero {
  background: url(hero.png);
  color: var(--undefined);
}
`)

	assert.False(t, reg.HasClass("hero"))
}

// TestReindexIsIdempotent checks the clear-then-reinsert behavior: indexing
// the same file twice must not accumulate duplicate declarations, and an
// edit that removes a property removes it from the registry too.
func TestReindexIsIdempotent(t *testing.T) {
	ix, reg, _ := newIndexer()

	text := ":root {\n  --brand: #111;\n  --accent: #222;\n}\n"
	ix.IndexDocument("a.css", text)
	ix.IndexDocument("a.css", text)

	assert.Len(t, reg.DeclarationsFor("--brand"), 1)
	assert.Equal(t, 2, reg.Count())

	ix.IndexDocument("a.css", ":root {\n  --brand: #333;\n}\n")
	decls := reg.DeclarationsFor("--brand")
	require.Len(t, decls, 1)
	assert.Equal(t, "#333", decls[0].Value)
	assert.False(t, reg.Has("--accent"), "removed property disappears on re-index")
}

func TestRemoveFileBreaksResolution(t *testing.T) {
	ix, reg, res := newIndexer()

	ix.IndexDocument("base.css", ":root {\n  --base: #112233;\n}\n")
	ix.IndexDocument("brand.css", ":root {\n  --brand: var(--base);\n}\n")

	value, ok := res.Resolve("--brand")
	require.True(t, ok)
	assert.Equal(t, "#112233", value)

	reg.RemoveFile("base.css")
	value, ok = res.Resolve("--brand")
	require.True(t, ok)
	assert.Equal(t, "var(--base)", value, "unresolvable reference stays in place")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscoverStylesheets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "theme.css"), ":root { --a: #111; }")
	writeFile(t, filepath.Join(dir, "styles", "app.scss"), "")
	writeFile(t, filepath.Join(dir, "main.go"), "package main")
	writeFile(t, filepath.Join(dir, "node_modules", "pkg", "vendor.css"), "")
	writeFile(t, filepath.Join(dir, ".cache", "hidden.css"), "")

	files, err := indexer.DiscoverStylesheets(dir, nil)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Contains(t, files, filepath.Join(dir, "theme.css"))
	assert.Contains(t, files, filepath.Join(dir, "styles", "app.scss"))
}

func TestDiscoverStylesheetsCustomPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "theme.css"), "")
	writeFile(t, filepath.Join(dir, "tokens", "colors.css"), "")

	files, err := indexer.DiscoverStylesheets(dir, []string{"tokens/**/*.css"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "tokens", "colors.css"), files[0])
}

func TestDiscoverStylesheetsRequiresRoot(t *testing.T) {
	_, err := indexer.DiscoverStylesheets("", nil)
	assert.Error(t, err)
}

func TestReindexWorkspace(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "theme.css"), ":root {\n  --brand: #111;\n}\n")
	writeFile(t, filepath.Join(dir, "dark.css"), ".dark {\n  --brand: #eee;\n}\n")

	ix, reg, _ := newIndexer()
	reg.AddProperty(&registry.PropertyDeclaration{
		Name: "--stale", Value: "#000", FilePath: "gone.css", Selector: ":root",
	})

	require.NoError(t, ix.ReindexWorkspace(dir, nil))

	assert.False(t, reg.Has("--stale"), "workspace re-index starts from a clean registry")
	assert.Len(t, reg.DeclarationsFor("--brand"), 2)
}
