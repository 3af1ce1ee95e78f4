package documents_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorpeek/colorpeek/internal/documents"
)

func TestDidOpenAndGet(t *testing.T) {
	m := documents.NewManager()
	require.NoError(t, m.DidOpen("file:///a.css", "css", 1, ":root { --a: #111; }"))

	doc := m.Get("file:///a.css")
	require.NotNil(t, doc)
	assert.Equal(t, "file:///a.css", doc.URI())
	assert.Equal(t, "css", doc.LanguageID())
	assert.Equal(t, 1, doc.Version())
	assert.Equal(t, ":root { --a: #111; }", doc.Content())

	assert.Nil(t, m.Get("file:///missing.css"))
}

func TestDidChangeReplacesContent(t *testing.T) {
	m := documents.NewManager()
	require.NoError(t, m.DidOpen("file:///a.css", "css", 1, "old"))
	require.NoError(t, m.DidChange("file:///a.css", 2, "new"))

	doc := m.Get("file:///a.css")
	assert.Equal(t, "new", doc.Content())
	assert.Equal(t, 2, doc.Version())
}

func TestDidChangeUnknownDocument(t *testing.T) {
	m := documents.NewManager()
	assert.Error(t, m.DidChange("file:///missing.css", 1, "content"))
}

// TestDidChangeRejectsStaleVersion checks that an update carrying an older
// revision than the current one is refused and leaves the document untouched.
func TestDidChangeRejectsStaleVersion(t *testing.T) {
	m := documents.NewManager()
	require.NoError(t, m.DidOpen("file:///a.css", "css", 5, "current"))

	err := m.DidChange("file:///a.css", 3, "stale")
	require.Error(t, err)

	doc := m.Get("file:///a.css")
	assert.Equal(t, "current", doc.Content())
	assert.Equal(t, 5, doc.Version())
}

func TestDidClose(t *testing.T) {
	m := documents.NewManager()
	require.NoError(t, m.DidOpen("file:///a.css", "css", 1, ""))
	require.NoError(t, m.DidClose("file:///a.css"))
	assert.Nil(t, m.Get("file:///a.css"))

	assert.Error(t, m.DidClose("file:///a.css"), "closing twice reports the missing document")
}

func TestGetAll(t *testing.T) {
	m := documents.NewManager()
	require.NoError(t, m.DidOpen("file:///a.css", "css", 1, ""))
	require.NoError(t, m.DidOpen("file:///b.html", "html", 1, ""))

	docs := m.GetAll()
	assert.Len(t, docs, 2)
}

func TestReopenReplacesDocument(t *testing.T) {
	m := documents.NewManager()
	require.NoError(t, m.DidOpen("file:///a.css", "css", 7, "first"))
	require.NoError(t, m.DidOpen("file:///a.css", "css", 1, "second"))

	doc := m.Get("file:///a.css")
	assert.Equal(t, "second", doc.Content())
	assert.Equal(t, 1, doc.Version(), "reopening resets the revision")
}
